package offer

import (
	"github.com/google/uuid"
)

// Offer is the validated listing record. It only exists after a Draft passed
// validation; the store assigns ID on insert.
type Offer struct {
	ID       uuid.UUID
	Title    string
	Type     string
	Name     string
	Guests   int64
	Price    int64
	Rooms    int64
	Address  string
	Checkin  string
	Checkout string
	Location *Location
	Avatar   *ImageMeta
	Preview  *ImageMeta
}

// Location holds grid coordinates derived from the address field.
type Location struct {
	X int64
	Y int64
}

// ImageMeta describes an uploaded image part; the bytes themselves live in the
// blob store, never on the record.
type ImageMeta struct {
	Name      string
	MediaType string
}

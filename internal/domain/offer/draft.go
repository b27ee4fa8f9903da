package offer

import (
	"math"
	"strconv"
)

// NotANumber marks a numeric field whose submitted value did not parse as a
// base-10 integer. Parsing never fails; validation rejects the sentinel.
const NotANumber int64 = math.MinInt64

// Draft is the untyped candidate built from a raw submission. It is a distinct
// type from Offer on purpose: only Validate can turn one into the other.
type Draft struct {
	fields map[string]string

	Guests int64
	Price  int64
	Rooms  int64

	Avatar  *ImageMeta
	Preview *ImageMeta
}

// NewDraft copies the submitted fields and coerces the numeric ones. The input
// map is not mutated.
func NewDraft(fields map[string]string) *Draft {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &Draft{
		fields: copied,
		Guests: parseSubmittedInt(copied, "guests"),
		Price:  parseSubmittedInt(copied, "price"),
		Rooms:  parseSubmittedInt(copied, "rooms"),
	}
}

// Field returns the raw submitted value and whether the field was present.
func (d *Draft) Field(name string) (string, bool) {
	v, ok := d.fields[name]
	return v, ok
}

func parseSubmittedInt(fields map[string]string, name string) int64 {
	raw, ok := fields[name]
	if !ok {
		return NotANumber
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return NotANumber
	}
	return v
}

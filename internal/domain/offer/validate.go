package offer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field rule bounds. The battery below is the full policy table: presence,
// type, then range, checked per field in submission order.
const (
	MinTitleLength   = 30
	MaxTitleLength   = 140
	MaxAddressLength = 100
	MaxPrice         = 100000
	MaxRooms         = 1000
	MaxGuests        = 100
)

var offerTypes = map[string]struct{}{
	"flat":     {},
	"palace":   {},
	"house":    {},
	"bungalow": {},
}

var clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Violation struct {
	Field  string
	Reason string
}

// ValidationError carries every violation found in a submission, not just the
// first, so a single response can report all of them.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		reasons[i] = v.Field + " " + v.Reason
	}
	return "offer validation failed: " + strings.Join(reasons, "; ")
}

// Validate runs the whole rule battery and either produces the typed Offer or
// a ValidationError listing every violation. No store is touched either way.
func (d *Draft) Validate() (*Offer, error) {
	var vs []Violation

	vs = appendTextViolations(vs, d, "title", MinTitleLength, MaxTitleLength)

	if typ, ok := d.Field("type"); !ok || typ == "" {
		vs = append(vs, Violation{Field: "type", Reason: "is required"})
	} else if _, known := offerTypes[typ]; !known {
		vs = append(vs, Violation{Field: "type", Reason: "must be one of flat, palace, house, bungalow"})
	}

	vs = appendIntViolations(vs, d, "price", d.Price, 0, MaxPrice)

	if addr, ok := d.Field("address"); !ok || addr == "" {
		vs = append(vs, Violation{Field: "address", Reason: "is required"})
	} else if utf8.RuneCountInString(addr) > MaxAddressLength {
		vs = append(vs, Violation{Field: "address", Reason: fmt.Sprintf("must be at most %d characters", MaxAddressLength)})
	}

	vs = appendIntViolations(vs, d, "rooms", d.Rooms, 0, MaxRooms)
	vs = appendIntViolations(vs, d, "guests", d.Guests, 0, MaxGuests)

	vs = appendClockTimeViolations(vs, d, "checkin")
	vs = appendClockTimeViolations(vs, d, "checkout")

	if len(vs) > 0 {
		return nil, &ValidationError{Violations: vs}
	}

	name, _ := d.Field("name")
	title, _ := d.Field("title")
	typ, _ := d.Field("type")
	address, _ := d.Field("address")
	checkin, _ := d.Field("checkin")
	checkout, _ := d.Field("checkout")

	return &Offer{
		Title:    title,
		Type:     typ,
		Name:     name,
		Guests:   d.Guests,
		Price:    d.Price,
		Rooms:    d.Rooms,
		Address:  address,
		Checkin:  checkin,
		Checkout: checkout,
		Avatar:   d.Avatar,
		Preview:  d.Preview,
	}, nil
}

func appendTextViolations(vs []Violation, d *Draft, field string, minLen, maxLen int) []Violation {
	v, ok := d.Field(field)
	switch {
	case !ok || v == "":
		return append(vs, Violation{Field: field, Reason: "is required"})
	case utf8.RuneCountInString(v) < minLen || utf8.RuneCountInString(v) > maxLen:
		return append(vs, Violation{Field: field, Reason: fmt.Sprintf("must be between %d and %d characters", minLen, maxLen)})
	}
	return vs
}

func appendIntViolations(vs []Violation, d *Draft, field string, parsed, minVal, maxVal int64) []Violation {
	_, ok := d.Field(field)
	switch {
	case !ok:
		return append(vs, Violation{Field: field, Reason: "is required"})
	case parsed == NotANumber:
		return append(vs, Violation{Field: field, Reason: "must be a number"})
	case parsed < minVal || parsed > maxVal:
		return append(vs, Violation{Field: field, Reason: fmt.Sprintf("must be between %d and %d", minVal, maxVal)})
	}
	return vs
}

func appendClockTimeViolations(vs []Violation, d *Draft, field string) []Violation {
	v, ok := d.Field(field)
	if !ok || v == "" {
		return vs
	}
	if !clockTimePattern.MatchString(v) {
		return append(vs, Violation{Field: field, Reason: "must be a time in HH:MM format"})
	}
	return vs
}

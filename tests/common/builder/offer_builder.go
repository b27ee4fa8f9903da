//go:build unit || e2e

package builder

import (
	"time"

	"offers-service/internal/domain/offer"
	"offers-service/internal/usecase/queries"

	"github.com/google/uuid"
)

// OfferBuilder assembles valid raw submissions and read models for tests;
// mutate fields to provoke specific violations.
type OfferBuilder struct {
	Fields map[string]string
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		Fields: map[string]string{
			"title":    "Cozy and spacious flat right in the city center",
			"type":     "flat",
			"price":    "52000",
			"address":  "570,500",
			"rooms":    "3",
			"guests":   "4",
			"checkin":  "12:00",
			"checkout": "14:00",
		},
	}
}

func (b *OfferBuilder) WithField(name, value string) *OfferBuilder {
	b.Fields[name] = value
	return b
}

func (b *OfferBuilder) WithoutField(name string) *OfferBuilder {
	delete(b.Fields, name)
	return b
}

// BuildFields returns a fresh copy so tests can keep mutating the builder.
func (b *OfferBuilder) BuildFields() map[string]string {
	copied := make(map[string]string, len(b.Fields))
	for k, v := range b.Fields {
		copied[k] = v
	}
	return copied
}

func (b *OfferBuilder) BuildDraft() *offer.Draft {
	return offer.NewDraft(b.BuildFields())
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:        uuid.New(),
		Title:     b.Fields["title"],
		Type:      b.Fields["type"],
		Name:      "Keks",
		Guests:    4,
		Price:     52000,
		Rooms:     3,
		Address:   b.Fields["address"],
		Checkin:   b.Fields["checkin"],
		Checkout:  b.Fields["checkout"],
		Location:  &queries.LocationView{X: 570, Y: 500},
		CreatedAt: time.Now(),
	}
}

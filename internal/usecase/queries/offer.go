package queries

import (
	"context"
	"io"
	"strconv"
	"time"

	"offers-service/internal/domain/offer"
	"offers-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OfferView struct {
	ID       uuid.UUID      `json:"id"`
	Title    string         `json:"title"`
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	Guests   int64          `json:"guests"`
	Price    int64          `json:"price"`
	Rooms    int64          `json:"rooms"`
	Address  string         `json:"address"`
	Checkin  string         `json:"checkin,omitempty"`
	Checkout string         `json:"checkout,omitempty"`
	Location *LocationView  `json:"location,omitempty"`
	Avatar   *ImageMetaView `json:"avatar,omitempty"`
	Preview  *ImageMetaView `json:"preview,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type LocationView struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

type ImageMetaView struct {
	Name      string `json:"name"`
	MediaType string `json:"mimetype"`
}

const (
	DefaultLimit = 20
	DefaultSkip  = 0
)

// ListingParams lives for one request: built from the query string, validated,
// handed to the read store, discarded.
type ListingParams struct {
	Limit int32
	Skip  int32
}

// NewListingParams applies defaults for absent parameters and validates the
// rest; violations come back as a ValidationError so the boundary reports
// them like any other bad submission.
func NewListingParams(rawLimit, rawSkip string) (ListingParams, error) {
	var vs []offer.Violation

	limit := int64(DefaultLimit)
	if rawLimit != "" {
		v, err := strconv.ParseInt(rawLimit, 10, 32)
		if err != nil {
			vs = append(vs, offer.Violation{Field: "limit", Reason: "must be a number"})
		} else {
			limit = v
		}
	}
	if limit <= 0 {
		vs = append(vs, offer.Violation{Field: "limit", Reason: "must be a positive integer"})
	}

	skip := int64(DefaultSkip)
	if rawSkip != "" {
		v, err := strconv.ParseInt(rawSkip, 10, 32)
		if err != nil {
			vs = append(vs, offer.Violation{Field: "skip", Reason: "must be a number"})
		} else {
			skip = v
		}
	}
	if skip < 0 {
		vs = append(vs, offer.Violation{Field: "skip", Reason: "must be a non-negative integer"})
	}

	if len(vs) > 0 {
		return ListingParams{}, &offer.ValidationError{Violations: vs}
	}
	return ListingParams{Limit: int32(limit), Skip: int32(skip)}, nil
}

// OfferReadStore is the read side of the record store. Absence is reported as
// (nil, nil), not an error; the query layer owns the not-found decision.
type OfferReadStore interface {
	FindPage(ctx context.Context, limit, skip int32) ([]*OfferView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

// ImageBlobReads resolves stored image bytes. Absence is (nil, 0, nil).
type ImageBlobReads interface {
	Avatar(ctx context.Context, offerID uuid.UUID) (io.ReadCloser, int64, error)
}

type OfferQueries interface {
	List(ctx context.Context, params ListingParams) ([]*OfferView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	Avatar(ctx context.Context, id uuid.UUID) (io.ReadCloser, int64, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
	blobs ImageBlobReads
}

func NewOfferQueries(store OfferReadStore, blobs ImageBlobReads) OfferQueries {
	return &offerQueriesImpl{store: store, blobs: blobs}
}

func (q *offerQueriesImpl) List(ctx context.Context, params ListingParams) ([]*OfferView, error) {
	return q.store.FindPage(ctx, params.Limit, params.Skip)
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errs.NotFound("offer not found")
	}
	return view, nil
}

func (q *offerQueriesImpl) Avatar(ctx context.Context, id uuid.UUID) (io.ReadCloser, int64, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if view == nil {
		return nil, 0, errs.NotFound("offer not found")
	}

	rc, length, err := q.blobs.Avatar(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if rc == nil {
		return nil, 0, errs.NotFound("offer has no avatar")
	}
	return rc, length, nil
}

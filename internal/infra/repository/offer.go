package repository

import (
	"context"

	"offers-service/internal/domain/offer"
	"offers-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertOfferSQL = `
INSERT INTO offers (
	title, type, name, guests, price, rooms, address, checkin, checkout,
	location_x, location_y,
	avatar_name, avatar_media_type, preview_name, preview_media_type
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`

// OfferRepository is the write side of the record store.
type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func (r *OfferRepository) SaveOffer(ctx context.Context, o *offer.Offer) (uuid.UUID, error) {
	var locX, locY *int64
	if o.Location != nil {
		locX, locY = &o.Location.X, &o.Location.Y
	}
	var avatarName, avatarType, previewName, previewType *string
	if o.Avatar != nil {
		avatarName, avatarType = &o.Avatar.Name, &o.Avatar.MediaType
	}
	if o.Preview != nil {
		previewName, previewType = &o.Preview.Name, &o.Preview.MediaType
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertOfferSQL,
		o.Title, o.Type, o.Name, o.Guests, o.Price, o.Rooms, o.Address,
		nullIfEmpty(o.Checkin), nullIfEmpty(o.Checkout),
		locX, locY,
		avatarName, avatarType, previewName, previewType,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert offer", err)
	}
	return id, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package readstore

import (
	"context"
	"errors"
	"time"

	"offers-service/internal/infra"
	"offers-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerColumns = `
	id, title, type, name, guests, price, rooms, address, checkin, checkout,
	location_x, location_y,
	avatar_name, avatar_media_type, preview_name, preview_media_type,
	created_at`

// OfferReadStore serves the listing and fetch paths straight from Postgres.
type OfferReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferReadStore(pool *pgxpool.Pool) *OfferReadStore {
	return &OfferReadStore{pool: pool}
}

func (r *OfferReadStore) FindPage(ctx context.Context, limit, skip int32) ([]*queries.OfferView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, skip)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query offers page", err)
	}
	defer rows.Close()

	var views []*queries.OfferView
	for rows.Next() {
		view, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers page", err)
	}
	return views, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	view, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// absent-marker, not an error; the query layer decides not-found
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}
	return view, nil
}

func scanOffer(row pgx.Row) (*queries.OfferView, error) {
	var (
		v                        queries.OfferView
		checkin, checkout        *string
		locX, locY               *int64
		avatarName, avatarType   *string
		previewName, previewType *string
		createdAt                time.Time
	)
	err := row.Scan(
		&v.ID, &v.Title, &v.Type, &v.Name, &v.Guests, &v.Price, &v.Rooms, &v.Address,
		&checkin, &checkout,
		&locX, &locY,
		&avatarName, &avatarType, &previewName, &previewType,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if checkin != nil {
		v.Checkin = *checkin
	}
	if checkout != nil {
		v.Checkout = *checkout
	}
	if locX != nil && locY != nil {
		v.Location = &queries.LocationView{X: *locX, Y: *locY}
	}
	if avatarName != nil && avatarType != nil {
		v.Avatar = &queries.ImageMetaView{Name: *avatarName, MediaType: *avatarType}
	}
	if previewName != nil && previewType != nil {
		v.Preview = &queries.ImageMetaView{Name: *previewName, MediaType: *previewType}
	}
	v.CreatedAt = createdAt
	return &v, nil
}

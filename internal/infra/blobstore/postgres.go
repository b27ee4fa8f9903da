package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"

	"offers-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	kindAvatar  = "avatar"
	kindPreview = "preview"
)

const upsertImageSQL = `
INSERT INTO offer_images (offer_id, kind, data)
VALUES ($1, $2, $3)
ON CONFLICT (offer_id, kind) DO UPDATE SET data = EXCLUDED.data`

// ImageStore keeps attachment bytes in an offer_images table, one row per
// (offer, kind). It shares the pgx pool with the record store but is a
// separate handle; no transaction spans the two.
type ImageStore struct {
	pool *pgxpool.Pool
}

func NewImageStore(pool *pgxpool.Pool) *ImageStore {
	return &ImageStore{pool: pool}
}

func (s *ImageStore) SaveAvatar(ctx context.Context, offerID uuid.UUID, src io.Reader) error {
	return s.save(ctx, offerID, kindAvatar, src)
}

func (s *ImageStore) SavePreview(ctx context.Context, offerID uuid.UUID, src io.Reader) error {
	return s.save(ctx, offerID, kindPreview, src)
}

func (s *ImageStore) save(ctx context.Context, offerID uuid.UUID, kind string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return infra.WrapRepoErr("failed to read image source", err)
	}
	if _, err := s.pool.Exec(ctx, upsertImageSQL, offerID, kind, data); err != nil {
		return infra.WrapRepoErr("failed to store "+kind+" image", err)
	}
	return nil
}

// Avatar returns the stored bytes as a stream plus their length, or
// (nil, 0, nil) when no avatar row exists.
func (s *ImageStore) Avatar(ctx context.Context, offerID uuid.UUID) (io.ReadCloser, int64, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM offer_images WHERE offer_id = $1 AND kind = $2`,
		offerID, kindAvatar,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, infra.WrapRepoErr("failed to get avatar image", err)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

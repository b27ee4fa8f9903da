package commands

import (
	"context"
	"io"

	"offers-service/internal/domain/offer"
	"offers-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// OfferRecords is the write side of the structured record store.
type OfferRecords interface {
	SaveOffer(ctx context.Context, o *offer.Offer) (uuid.UUID, error)
}

// ImageBlobs is the write side of the binary blob store. The two stores are
// independent; nothing transactional spans them.
type ImageBlobs interface {
	SaveAvatar(ctx context.Context, offerID uuid.UUID, src io.Reader) error
	SavePreview(ctx context.Context, offerID uuid.UUID, src io.Reader) error
}

type AttachmentKind string

const (
	AttachmentAvatar  AttachmentKind = "avatar"
	AttachmentPreview AttachmentKind = "preview"
)

// Attachment is one uploaded file part routed to the blob store. Its byte
// source is owned by the request scope and consumed exactly once.
type Attachment struct {
	Kind      AttachmentKind
	Name      string
	MediaType string
	Source    *ByteSource
}

func (a *Attachment) Close() error {
	return a.Source.Close()
}

// ByteSource guards a single-use reader against double consumption at run
// time, since nothing in the type system stops a second persistence call from
// re-reading an already-drained stream.
type ByteSource struct {
	r     io.Reader
	taken bool
}

func NewByteSource(r io.Reader) *ByteSource {
	return &ByteSource{r: r}
}

// Take hands out the underlying reader once; every later call fails.
func (s *ByteSource) Take() (io.Reader, error) {
	if s.taken {
		return nil, errs.New("byte source already consumed")
	}
	s.taken = true
	return s.r, nil
}

func (s *ByteSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

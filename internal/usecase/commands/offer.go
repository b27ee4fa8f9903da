package commands

import (
	"context"

	"offers-service/internal/domain/offer"
	"offers-service/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type OfferCommands interface {
	Create(ctx context.Context, fields map[string]string, attachments []Attachment) (*offer.Offer, error)
}

type offerCommandsImpl struct {
	records OfferRecords
	blobs   ImageBlobs
}

func NewOfferCommands(records OfferRecords, blobs ImageBlobs) OfferCommands {
	return &offerCommandsImpl{records: records, blobs: blobs}
}

// Create runs the whole submission pipeline: normalize, merge attachment
// metadata, validate, fill defaults, persist the record, then fan out the
// attachment writes keyed by the new identity.
//
// Consistency caveat: the record write and the blob writes are independent.
// If a blob write fails after the record was inserted, the error propagates
// and the already-written record stays behind; there is no compensating
// delete. Callers see the failure and may retry the upload.
func (uc *offerCommandsImpl) Create(ctx context.Context, fields map[string]string, attachments []Attachment) (*offer.Offer, error) {
	draft := offer.NewDraft(fields)
	for _, att := range attachments {
		meta := &offer.ImageMeta{Name: att.Name, MediaType: att.MediaType}
		switch att.Kind {
		case AttachmentAvatar:
			draft.Avatar = meta
		case AttachmentPreview:
			draft.Preview = meta
		}
	}

	validated, err := draft.Validate()
	if err != nil {
		return nil, err
	}

	if validated.Name == "" {
		validated.Name = offer.RandomName()
	}
	if validated.Address != "" {
		loc := offer.ParseLocation(validated.Address)
		validated.Location = &loc
	}

	id, err := uc.records.SaveOffer(ctx, validated)
	if err != nil {
		return nil, err
	}
	validated.ID = id

	// Plain Group, not WithContext: the first failure surfaces from Wait but
	// an already-started sibling write runs to completion.
	var g errgroup.Group
	for _, att := range attachments {
		g.Go(func() error {
			src, err := att.Source.Take()
			if err != nil {
				return err
			}
			switch att.Kind {
			case AttachmentAvatar:
				return uc.blobs.SaveAvatar(ctx, id, src)
			case AttachmentPreview:
				return uc.blobs.SavePreview(ctx, id, src)
			default:
				return errs.New("unknown attachment kind: " + string(att.Kind))
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "failed to store offer images")
	}

	return validated, nil
}

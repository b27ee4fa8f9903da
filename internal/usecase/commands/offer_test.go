//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"offers-service/internal/domain/offer"
	"offers-service/internal/usecase/commands"
	"offers-service/tests/common/builder"
	commandsmock "offers-service/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRecords *commandsmock.MockOfferRecords
	mockBlobs   *commandsmock.MockImageBlobs
	uc          commands.OfferCommands
}

func (s *OfferCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRecords = commandsmock.NewMockOfferRecords(s.mockCtrl)
	s.mockBlobs = commandsmock.NewMockImageBlobs(s.mockCtrl)
	s.uc = commands.NewOfferCommands(s.mockRecords, s.mockBlobs)
}

func (s *OfferCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferCommandsSuite(t *testing.T) {
	suite.Run(t, new(OfferCommandsTestSuite))
}

func attachment(kind commands.AttachmentKind, name, mediaType, content string) commands.Attachment {
	return commands.Attachment{
		Kind:      kind,
		Name:      name,
		MediaType: mediaType,
		Source:    commands.NewByteSource(strings.NewReader(content)),
	}
}

func (s *OfferCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("validation failure touches no store", func() {
		fields := builder.NewOfferBuilder().WithoutField("title").WithField("guests", "many").BuildFields()

		// no EXPECT on either mock: any store call fails the test
		_, err := s.uc.Create(ctx, fields, nil)

		var verr *offer.ValidationError
		s.Require().ErrorAs(err, &verr)
		fieldNames := make([]string, len(verr.Violations))
		for i, v := range verr.Violations {
			fieldNames[i] = v.Field
		}
		s.Equal([]string{"title", "guests"}, fieldNames)
	})

	s.Run("persists the record and returns the assigned identity", func() {
		id := uuid.New()
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(id, nil)

		created, err := s.uc.Create(ctx, builder.NewOfferBuilder().BuildFields(), nil)

		s.Require().NoError(err)
		s.Equal(id, created.ID)
	})

	s.Run("missing name is drawn from the fixed pool", func() {
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		created, err := s.uc.Create(ctx, builder.NewOfferBuilder().BuildFields(), nil)

		s.Require().NoError(err)
		s.Contains(offer.NamePool(), created.Name)
	})

	s.Run("submitted name is kept", func() {
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		fields := builder.NewOfferBuilder().WithField("name", "Boris").BuildFields()
		created, err := s.uc.Create(ctx, fields, nil)

		s.Require().NoError(err)
		s.Equal("Boris", created.Name)
	})

	s.Run("location is derived from the address", func() {
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		fields := builder.NewOfferBuilder().WithField("address", "55,37").BuildFields()
		created, err := s.uc.Create(ctx, fields, nil)

		s.Require().NoError(err)
		s.Require().NotNil(created.Location)
		s.Equal(int64(55), created.Location.X)
		s.Equal(int64(37), created.Location.Y)
	})

	s.Run("malformed address half becomes the sentinel without failing", func() {
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		fields := builder.NewOfferBuilder().WithField("address", "abc,37").BuildFields()
		created, err := s.uc.Create(ctx, fields, nil)

		s.Require().NoError(err)
		s.Require().NotNil(created.Location)
		s.Equal(offer.NotANumber, created.Location.X)
		s.Equal(int64(37), created.Location.Y)
	})

	s.Run("both attachments are written under the new identity", func() {
		id := uuid.New()
		var saved *offer.Offer
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *offer.Offer) (uuid.UUID, error) {
				saved = o
				return id, nil
			})

		var avatarBytes, previewBytes []byte
		s.mockBlobs.EXPECT().SaveAvatar(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, src io.Reader) error {
				b, err := io.ReadAll(src)
				avatarBytes = b
				return err
			})
		s.mockBlobs.EXPECT().SavePreview(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, src io.Reader) error {
				b, err := io.ReadAll(src)
				previewBytes = b
				return err
			})

		atts := []commands.Attachment{
			attachment(commands.AttachmentAvatar, "keks.png", "image/png", "avatar-bytes"),
			attachment(commands.AttachmentPreview, "flat.jpg", "image/jpeg", "preview-bytes"),
		}
		created, err := s.uc.Create(ctx, builder.NewOfferBuilder().BuildFields(), atts)

		s.Require().NoError(err)
		s.Equal(id, created.ID)
		s.Equal([]byte("avatar-bytes"), avatarBytes)
		s.Equal([]byte("preview-bytes"), previewBytes)

		// metadata was merged onto the record before it was saved
		s.Require().NotNil(saved.Avatar)
		s.Equal("keks.png", saved.Avatar.Name)
		s.Equal("image/png", saved.Avatar.MediaType)
		s.Require().NotNil(saved.Preview)
		s.Equal("flat.jpg", saved.Preview.Name)
	})

	s.Run("blob failure after the record write surfaces and leaves the record behind", func() {
		id := uuid.New()
		// the record write happens and is NOT compensated on blob failure
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(id, nil)
		s.mockBlobs.EXPECT().SaveAvatar(gomock.Any(), id, gomock.Any()).
			Return(errors.New("disk full"))

		atts := []commands.Attachment{
			attachment(commands.AttachmentAvatar, "keks.png", "image/png", "avatar-bytes"),
		}
		_, err := s.uc.Create(ctx, builder.NewOfferBuilder().BuildFields(), atts)

		s.Require().Error(err)
		s.Contains(err.Error(), "disk full")
	})

	s.Run("sibling write still runs when the other one fails", func() {
		id := uuid.New()
		s.mockRecords.EXPECT().SaveOffer(gomock.Any(), gomock.Any()).Return(id, nil)
		s.mockBlobs.EXPECT().SaveAvatar(gomock.Any(), id, gomock.Any()).
			Return(errors.New("disk full"))
		previewWritten := false
		s.mockBlobs.EXPECT().SavePreview(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, src io.Reader) error {
				_, _ = io.ReadAll(src)
				previewWritten = true
				return nil
			})

		atts := []commands.Attachment{
			attachment(commands.AttachmentAvatar, "keks.png", "image/png", "a"),
			attachment(commands.AttachmentPreview, "flat.jpg", "image/jpeg", "p"),
		}
		_, err := s.uc.Create(ctx, builder.NewOfferBuilder().BuildFields(), atts)

		s.Require().Error(err)
		s.True(previewWritten)
	})
}

func TestByteSource(t *testing.T) {
	src := commands.NewByteSource(strings.NewReader("payload"))

	r, err := src.Take()
	if err != nil {
		t.Fatalf("first Take failed: %v", err)
	}
	b, _ := io.ReadAll(r)
	if string(b) != "payload" {
		t.Fatalf("unexpected payload: %q", b)
	}

	if _, err := src.Take(); err == nil {
		t.Fatal("second Take should fail: the stream is single-use")
	}
}

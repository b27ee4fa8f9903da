//go:build unit

package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"

	"offers-service/internal/domain/offer"
	"offers-service/internal/handler"
	"offers-service/internal/handler/api"
	"offers-service/internal/handler/httperr"
	"offers-service/internal/pkg/config"
	"offers-service/internal/pkg/errs"
	"offers-service/internal/usecase/commands"
	"offers-service/internal/usecase/queries"
	"offers-service/tests/common/builder"
	commonhttp "offers-service/tests/common/httptest"
	commandsmock "offers-service/tests/mock/commands"
	queriesmock "offers-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockCmds  *commandsmock.MockOfferCommands
	mockQuery *queriesmock.MockOfferQueries
	router    *gin.Engine
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQuery = queriesmock.NewMockOfferQueries(s.mockCtrl)

	s.router = gin.New()
	handler.NewRouter(s.router, config.NewTestConfig(), api.NewOfferHandler(s.mockCmds, s.mockQuery))
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) decodeEnvelope(body []byte) httperr.Envelope {
	var env httperr.Envelope
	s.Require().NoError(json.Unmarshal(body, &env))
	return env
}

func nopReadCloser(content string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(content))
}

func (s *OfferHandlerTestSuite) TestList() {
	s.Run("returns the page as JSON", func() {
		view := builder.NewOfferBuilder().BuildView()
		s.mockQuery.EXPECT().
			List(gomock.Any(), queries.ListingParams{Limit: 20, Skip: 0}).
			Return([]*queries.OfferView{view}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers", nil)

		s.Equal(http.StatusOK, w.Code)
		var got []map[string]any
		commonhttp.DecodeJSON(s.T(), w, &got)
		s.Require().Len(got, 1)
		s.Equal(view.ID.String(), got[0]["id"])
		s.Equal(view.Title, got[0]["title"])
	})

	s.Run("empty page is an empty array, not null", func() {
		s.mockQuery.EXPECT().
			List(gomock.Any(), queries.ListingParams{Limit: 20, Skip: 0}).
			Return(nil, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Equal("[]", w.Body.String())
	})

	s.Run("window parameters are forwarded", func() {
		s.mockQuery.EXPECT().
			List(gomock.Any(), queries.ListingParams{Limit: 3, Skip: 6}).
			Return(nil, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers?limit=3&skip=6", nil)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("bad window parameter yields the validation envelope", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers?limit=nope", nil)

		s.Equal(http.StatusBadRequest, w.Code)
		env := s.decodeEnvelope(w.Body.Bytes())
		s.Equal(http.StatusBadRequest, env.StatusCode)
		s.Require().Len(env.Errors, 1)
		s.Equal("Validation Error", env.Errors[0].Error)
		s.Equal("limit must be a number", env.Errors[0].ErrorMessage)
	})
}

func (s *OfferHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		view := builder.NewOfferBuilder().BuildView()
		s.mockQuery.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/"+view.ID.String(), nil)

		s.Equal(http.StatusOK, w.Code)
		var got map[string]any
		commonhttp.DecodeJSON(s.T(), w, &got)
		s.Equal(view.ID.String(), got["id"])
	})

	s.Run("unknown id yields the not-found envelope", func() {
		id := uuid.New()
		s.mockQuery.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.NotFound("offer not found"))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/"+id.String(), nil)

		s.Equal(http.StatusNotFound, w.Code)
		env := s.decodeEnvelope(w.Body.Bytes())
		s.Equal(http.StatusNotFound, env.StatusCode)
		s.Require().Len(env.Errors, 1)
		s.Equal("No data found", env.Errors[0].Error)
		s.Equal("offer not found", env.Errors[0].ErrorMessage)
	})

	s.Run("an unparsable id is not-found, not a server error", func() {
		// no EXPECT on the query mock: the handler rejects before reaching it
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/not-a-uuid", nil)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("internal failures never leak details", func() {
		id := uuid.New()
		s.mockQuery.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.New("pg: connection refused"))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/"+id.String(), nil)

		s.Equal(http.StatusInternalServerError, w.Code)
		env := s.decodeEnvelope(w.Body.Bytes())
		s.Require().Len(env.Errors, 1)
		s.Equal("Internal Error", env.Errors[0].Error)
		s.Equal("internal server error", env.Errors[0].ErrorMessage)
		s.NotContains(w.Body.String(), "connection refused")
	})
}

func (s *OfferHandlerTestSuite) TestAvatar() {
	s.Run("streams the image with length and content type", func() {
		id := uuid.New()
		s.mockQuery.EXPECT().Avatar(gomock.Any(), id).
			Return(nopReadCloser("png-bytes"), int64(9), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/"+id.String()+"/avatar", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Equal("image/png", w.Header().Get("Content-Type"))
		s.Equal("9", w.Header().Get("Content-Length"))
		s.Equal("png-bytes", w.Body.String())
	})

	s.Run("missing avatar yields the not-found envelope", func() {
		id := uuid.New()
		s.mockQuery.EXPECT().Avatar(gomock.Any(), id).
			Return(nil, int64(0), errs.NotFound("offer has no avatar"))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/"+id.String()+"/avatar", nil)

		s.Equal(http.StatusNotFound, w.Code)
		env := s.decodeEnvelope(w.Body.Bytes())
		s.Equal("offer has no avatar", env.Errors[0].ErrorMessage)
	})
}

func (s *OfferHandlerTestSuite) TestCreate() {
	s.Run("JSON submission reaches the pipeline as strings", func() {
		created := &offer.Offer{ID: uuid.New(), Title: "Cozy and spacious flat right in the city center", Type: "flat", Name: "Keks"}
		s.mockCmds.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Len(0)).
			DoAndReturn(func(_ any, fields map[string]string, _ []commands.Attachment) (*offer.Offer, error) {
				s.Equal("52000", fields["price"])
				s.Equal("flat", fields["type"])
				return created, nil
			})

		body := map[string]any{
			"title":   "Cozy and spacious flat right in the city center",
			"type":    "flat",
			"price":   52000,
			"address": "570,500",
			"rooms":   3,
			"guests":  4,
		}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/offers", body)

		s.Equal(http.StatusOK, w.Code)
		var got map[string]any
		commonhttp.DecodeJSON(s.T(), w, &got)
		s.Equal(created.ID.String(), got["id"])
		s.Equal("Keks", got["name"])
	})

	s.Run("multipart submission carries the file parts", func() {
		created := &offer.Offer{ID: uuid.New(), Title: "Cozy and spacious flat right in the city center", Type: "flat"}
		s.mockCmds.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(_ any, fields map[string]string, atts []commands.Attachment) (*offer.Offer, error) {
				s.Equal(commands.AttachmentAvatar, atts[0].Kind)
				s.Equal("keks.png", atts[0].Name)
				s.Equal("image/png", atts[0].MediaType)
				s.Equal(commands.AttachmentPreview, atts[1].Kind)
				return created, nil
			})

		files := []commonhttp.FilePart{
			{Field: "avatar", Name: "keks.png", MediaType: "image/png", Data: []byte("avatar-bytes")},
			{Field: "preview", Name: "flat.jpg", MediaType: "image/jpeg", Data: []byte("preview-bytes")},
		}
		w := commonhttp.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/api/offers",
			builder.NewOfferBuilder().BuildFields(), files)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("validation failure yields one envelope entry per violation", func() {
		s.mockCmds.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &offer.ValidationError{Violations: []offer.Violation{
				{Field: "title", Reason: "is required"},
				{Field: "price", Reason: "must be between 0 and 100000"},
			}})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/offers", map[string]any{"price": 999999})

		s.Equal(http.StatusBadRequest, w.Code)
		env := s.decodeEnvelope(w.Body.Bytes())
		s.Equal(http.StatusBadRequest, env.StatusCode)
		s.Require().Len(env.Errors, 2)
		s.Equal("title is required", env.Errors[0].ErrorMessage)
		s.Equal("price must be between 0 and 100000", env.Errors[1].ErrorMessage)
	})

	s.Run("malformed JSON body is a validation failure", func() {
		// no EXPECT on the command mock: decoding fails first
		req := stdhttptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := stdhttptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
		env := s.decodeEnvelope(w.Body.Bytes())
		s.Equal("body must be a well-formed JSON object", env.Errors[0].ErrorMessage)
	})
}

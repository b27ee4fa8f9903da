package api

import (
	"net/http"

	reqdto "offers-service/internal/handler/dto/request"
	resdto "offers-service/internal/handler/dto/response"
	"offers-service/internal/handler/httperr"
	"offers-service/internal/pkg/errs"
	"offers-service/internal/usecase/commands"
	"offers-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const avatarMediaType = "image/png"

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary List offers
// @Description List offers, newest first
// @Tags offers
// @Produce json
// @Param limit query int false "Page size (default 20, must be positive)"
// @Param skip query int false "Offset (default 0, must be non-negative)"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Envelope
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	params, err := queries.NewListingParams(c.Query("limit"), c.Query("skip"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

// @Summary Get offer
// @Description Get a single offer by ID
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Envelope
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// an unparsable key cannot match anything
		httperr.Abort(c, errs.NotFound("offer not found"))
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Stream offer avatar
// @Description Stream the avatar image attached to an offer
// @Tags offers
// @Produce png
// @Param id path string true "Offer ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Envelope
// @Router /offers/{id}/avatar [get]
func (h *OfferHandler) Avatar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, errs.NotFound("offer not found"))
		return
	}
	rc, length, err := h.q.Avatar(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	defer rc.Close() // best-effort teardown if the copy breaks mid-stream

	c.DataFromReader(http.StatusOK, length, avatarMediaType, rc, nil)
}

// @Summary Create offer
// @Description Create an offer from a multipart form (optional avatar/preview parts) or a JSON body
// @Tags offers
// @Accept mpfd
// @Accept json
// @Produce json
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Envelope
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	fields, attachments, err := reqdto.OfferSubmission(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	defer func() {
		for i := range attachments {
			_ = attachments[i].Close()
		}
	}()

	created, err := h.cmds.Create(c.Request.Context(), fields, attachments)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffer(created))
}

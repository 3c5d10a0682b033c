package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
	"github.com/noah-isme/alumni-mentorship-api/pkg/response"
)

type linkService interface {
	Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateLinkRequest) (*dto.LinkResponse, error)
	Resolve(ctx context.Context, token string) (*dto.ResolvedLink, error)
}

// LinkHandler issues and resolves signed identity links.
type LinkHandler struct {
	service linkService
}

// NewLinkHandler constructs the handler.
func NewLinkHandler(svc linkService) *LinkHandler {
	return &LinkHandler{service: svc}
}

// Create godoc
// @Summary Create a signed link
// @Tags Links
// @Accept json
// @Produce json
// @Param payload body dto.CreateLinkRequest true "Link purpose"
// @Success 201 {object} response.Envelope
// @Router /links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid link payload"))
		return
	}
	link, err := h.service.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, link)
}

// Resolve godoc
// @Summary Resolve a signed link
// @Tags Links
// @Produce json
// @Param token query string true "Link token"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /links/resolve [get]
func (h *LinkHandler) Resolve(c *gin.Context) {
	resolved, err := h.service.Resolve(c.Request.Context(), c.Query("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resolved, nil)
}

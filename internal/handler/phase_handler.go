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

type phaseService interface {
	List(ctx context.Context) ([]models.Phase, error)
	Active(ctx context.Context) (*models.Phase, error)
	Create(ctx context.Context, req dto.CreatePhaseRequest) (*models.Phase, error)
}

// PhaseHandler exposes program phases.
type PhaseHandler struct {
	service phaseService
}

// NewPhaseHandler constructs the handler.
func NewPhaseHandler(svc phaseService) *PhaseHandler {
	return &PhaseHandler{service: svc}
}

// List godoc
// @Summary List phases
// @Tags Phases
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /phase [get]
func (h *PhaseHandler) List(c *gin.Context) {
	phases, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.PhaseListResponse{Phases: phases}, nil)
}

// Active godoc
// @Summary Current phase
// @Tags Phases
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /phase/active [get]
func (h *PhaseHandler) Active(c *gin.Context) {
	phase, err := h.service.Active(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, phase, nil)
}

// Create godoc
// @Summary Create phase
// @Tags Phases
// @Accept json
// @Produce json
// @Param payload body dto.CreatePhaseRequest true "Phase payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /phase [post]
func (h *PhaseHandler) Create(c *gin.Context) {
	var req dto.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid phase payload"))
		return
	}
	phase, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, phase)
}

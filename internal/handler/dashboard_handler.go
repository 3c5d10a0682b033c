package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/middleware"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
	"github.com/noah-isme/alumni-mentorship-api/pkg/response"
)

type dashboardService interface {
	Meetings(ctx context.Context, actor *models.JWTClaims, query dto.MeetingDashboardQuery) (*dto.MeetingDashboardResponse, bool, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Meetings godoc
// @Summary Meeting status badges
// @Tags Dashboard
// @Produce json
// @Param phaseId query string false "Phase ID. Defaults to the active phase"
// @Param mentorId query string false "Mentor ID (admin only)"
// @Param menteeId query string false "Mentee ID (admin only)"
// @Success 200 {object} response.Envelope
// @Router /dashboard/meetings [get]
func (h *DashboardHandler) Meetings(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	query := dto.MeetingDashboardQuery{
		PhaseID:  strings.TrimSpace(c.Query("phaseId")),
		MentorID: strings.TrimSpace(c.Query("mentorId")),
		MenteeID: strings.TrimSpace(c.Query("menteeId")),
	}
	summary, cacheHit, err := h.service.Meetings(c.Request.Context(), claims, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	if summary != nil {
		middleware.SetPhase(c, summary.PhaseID)
	}
	response.JSON(c, http.StatusOK, summary, nil, middleware.Meta(c))
}

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

type mentorshipService interface {
	Assign(ctx context.Context, actor *models.JWTClaims, req dto.AssignMentorRequest) (*models.MentorshipAssignment, error)
	GetByMentor(ctx context.Context, mentorID, phaseID string) (*models.MentorshipAssignment, error)
	GetByMentee(ctx context.Context, menteeID, phaseID string) (*models.MentorshipAssignment, error)
}

// MentorshipHandler manages mentor/mentee assignments.
type MentorshipHandler struct {
	service mentorshipService
}

// NewMentorshipHandler constructs the handler.
func NewMentorshipHandler(svc mentorshipService) *MentorshipHandler {
	return &MentorshipHandler{service: svc}
}

// Assign godoc
// @Summary Assign mentees to a mentor
// @Tags Mentorship
// @Accept json
// @Produce json
// @Param payload body dto.AssignMentorRequest true "Assignment"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /mentor-mentee/assign [post]
func (h *MentorshipHandler) Assign(c *gin.Context) {
	var req dto.AssignMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	assignment, err := h.service.Assign(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// ByMentor godoc
// @Summary Mentees of a mentor
// @Tags Mentorship
// @Produce json
// @Param mentorId path string true "Mentor ID"
// @Param phaseId query string false "Phase ID"
// @Success 200 {object} response.Envelope
// @Router /mentor-mentee/mentor/{mentorId} [get]
func (h *MentorshipHandler) ByMentor(c *gin.Context) {
	assignment, err := h.service.GetByMentor(c.Request.Context(), c.Param("mentorId"), c.Query("phaseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}

// ByMentee godoc
// @Summary Mentor of a mentee
// @Tags Mentorship
// @Produce json
// @Param menteeId path string true "Mentee ID"
// @Param phaseId query string false "Phase ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /mentor-mentee/mentee/{menteeId} [get]
func (h *MentorshipHandler) ByMentee(c *gin.Context) {
	assignment, err := h.service.GetByMentee(c.Request.Context(), c.Param("menteeId"), c.Query("phaseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}

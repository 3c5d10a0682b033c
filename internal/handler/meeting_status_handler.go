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

type meetingStatusService interface {
	Submit(ctx context.Context, actor *models.JWTClaims, req dto.SubmitStatusRequest) ([]models.MeetingStatus, error)
	Resolve(ctx context.Context, actor *models.JWTClaims, req dto.ApproveRejectRequest) (*models.MeetingStatus, error)
	List(ctx context.Context, actor *models.JWTClaims, query dto.MeetingStatusQuery) ([]models.MeetingStatus, error)
}

// MeetingStatusHandler exposes the status submission and approval workflow.
type MeetingStatusHandler struct {
	service meetingStatusService
}

// NewMeetingStatusHandler constructs the handler.
func NewMeetingStatusHandler(svc meetingStatusService) *MeetingStatusHandler {
	return &MeetingStatusHandler{service: svc}
}

// Submit godoc
// @Summary Report meeting outcome
// @Tags MeetingStatus
// @Accept json
// @Produce json
// @Param payload body dto.SubmitStatusRequest true "Status"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meeting-status/update [post]
func (h *MeetingStatusHandler) Submit(c *gin.Context) {
	var req dto.SubmitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	records, err := h.service.Submit(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, records)
}

// Resolve godoc
// @Summary Approve or reject a status
// @Tags MeetingStatus
// @Accept json
// @Produce json
// @Param payload body dto.ApproveRejectRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meeting-status/approve-reject [post]
func (h *MeetingStatusHandler) Resolve(c *gin.Context) {
	var req dto.ApproveRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid approval payload"))
		return
	}
	record, err := h.service.Resolve(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// List godoc
// @Summary List status records
// @Tags MeetingStatus
// @Produce json
// @Param meetingId query string false "Meeting ID"
// @Param menteeId query string false "Mentee ID"
// @Param mentorId query string false "Mentor ID"
// @Param phaseId query string false "Phase ID"
// @Param approval query string false "Pending, Approved or Rejected"
// @Success 200 {object} response.Envelope
// @Router /meeting-status/all [get]
func (h *MeetingStatusHandler) List(c *gin.Context) {
	query := dto.MeetingStatusQuery{
		MeetingID: c.Query("meetingId"),
		MenteeID:  c.Query("menteeId"),
		MentorID:  c.Query("mentorId"),
		PhaseID:   c.Query("phaseId"),
		Approval:  models.ApprovalState(c.Query("approval")),
	}
	records, err := h.service.List(c.Request.Context(), claimsFromContext(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

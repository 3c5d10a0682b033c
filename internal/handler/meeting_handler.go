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

type meetingService interface {
	PreviewDates(req dto.PreviewDatesRequest) (*dto.PreviewDatesResponse, error)
	Schedule(ctx context.Context, actor *models.JWTClaims, req dto.ScheduleMeetingRequest) (*models.ScheduledMeeting, error)
	ListByMentor(ctx context.Context, mentorID, phaseID string) ([]models.ScheduledMeeting, error)
	ListByMentee(ctx context.Context, menteeID, phaseID string) ([]models.ScheduledMeeting, error)
	Get(ctx context.Context, meetingID string) (*models.MeetingDateDetail, error)
	UpdateDate(ctx context.Context, actor *models.JWTClaims, meetingID string, req dto.UpdateMeetingRequest) (*models.MeetingDateDetail, error)
}

// MeetingHandler exposes meeting scheduling endpoints.
type MeetingHandler struct {
	service meetingService
}

// NewMeetingHandler constructs the handler.
func NewMeetingHandler(svc meetingService) *MeetingHandler {
	return &MeetingHandler{service: svc}
}

// Preview godoc
// @Summary Preview generated meeting dates
// @Tags Meetings
// @Accept json
// @Produce json
// @Param payload body dto.PreviewDatesRequest true "Date range"
// @Success 200 {object} response.Envelope
// @Router /meetings/preview-dates [post]
func (h *MeetingHandler) Preview(c *gin.Context) {
	var req dto.PreviewDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid preview payload"))
		return
	}
	plan, err := h.service.PreviewDates(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}

// Schedule godoc
// @Summary Schedule a meeting series
// @Tags Meetings
// @Accept json
// @Produce json
// @Param payload body dto.ScheduleMeetingRequest true "Meeting series"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /meetings/schedule [post]
func (h *MeetingHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid meeting payload"))
		return
	}
	meeting, err := h.service.Schedule(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, meeting)
}

// ByMentor godoc
// @Summary Meetings of a mentor
// @Tags Meetings
// @Produce json
// @Param mentorId path string true "Mentor ID"
// @Param phaseId query string false "Phase ID"
// @Success 200 {object} response.Envelope
// @Router /meetings/mentor/{mentorId} [get]
func (h *MeetingHandler) ByMentor(c *gin.Context) {
	meetings, err := h.service.ListByMentor(c.Request.Context(), c.Param("mentorId"), c.Query("phaseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meetings, nil)
}

// ByMentee godoc
// @Summary Meetings of a mentee
// @Tags Meetings
// @Produce json
// @Param menteeId path string true "Mentee ID"
// @Param phaseId query string false "Phase ID"
// @Success 200 {object} response.Envelope
// @Router /meetings/mentee/{menteeId} [get]
func (h *MeetingHandler) ByMentee(c *gin.Context) {
	meetings, err := h.service.ListByMentee(c.Request.Context(), c.Param("menteeId"), c.Query("phaseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meetings, nil)
}

// Get godoc
// @Summary Meeting occurrence
// @Tags Meetings
// @Produce json
// @Param meetingId path string true "Meeting ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /meetings/meeting/{meetingId} [get]
func (h *MeetingHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("meetingId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Update godoc
// @Summary Reschedule a meeting occurrence
// @Description Refused with MEETING_LOCKED once a Completed status is Approved.
// @Tags Meetings
// @Accept json
// @Produce json
// @Param meetingId path string true "Meeting ID"
// @Param payload body dto.UpdateMeetingRequest true "New date and time"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/meeting/{meetingId} [put]
func (h *MeetingHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid meeting payload"))
		return
	}
	detail, err := h.service.UpdateDate(c.Request.Context(), claimsFromContext(c), c.Param("meetingId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

package dto

import "github.com/noah-isme/alumni-mentorship-api/internal/models"

// SubmitStatusRequest reports the outcome of a meeting occurrence for mentees.
type SubmitStatusRequest struct {
	MentorEmail     string                    `json:"mentorEmail" validate:"required,email"`
	MenteeIDs       []string                  `json:"menteeIds" validate:"required,min=1,dive,required"`
	MeetingID       string                    `json:"meetingId" validate:"required"`
	Status          models.MeetingStatusValue `json:"status" validate:"required"`
	MeetingMinutes  string                    `json:"meetingMinutes"`
	PostponedReason string                    `json:"postponedReason"`
	PhaseID         string                    `json:"phaseId"`
}

// ApproveRejectRequest resolves a pending status record.
type ApproveRejectRequest struct {
	StatusID string               `json:"statusId" validate:"required"`
	Action   models.ApprovalState `json:"action" validate:"required"`
}

// MeetingStatusQuery mirrors supported listing filters.
type MeetingStatusQuery struct {
	MeetingID string
	MenteeID  string
	MentorID  string
	PhaseID   string
	Approval  models.ApprovalState
}

package models

import "time"

// MeetingStatusValue is the outcome reported for a meeting occurrence.
type MeetingStatusValue string

const (
	MeetingStatusScheduled MeetingStatusValue = "Scheduled"
	MeetingStatusCompleted MeetingStatusValue = "Completed"
	MeetingStatusPostponed MeetingStatusValue = "Postponed"
	MeetingStatusCancelled MeetingStatusValue = "Cancelled"
)

// ApprovalState is the counterpart review of a submitted status.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "Pending"
	ApprovalApproved ApprovalState = "Approved"
	ApprovalRejected ApprovalState = "Rejected"
)

// MeetingStatus is the per (meeting, mentee) status record.
type MeetingStatus struct {
	ID              string             `db:"id" json:"id"`
	MeetingID       string             `db:"meeting_id" json:"meetingId"`
	MenteeID        string             `db:"mentee_id" json:"menteeId"`
	MentorID        string             `db:"mentor_id" json:"mentorId"`
	Status          MeetingStatusValue `db:"status" json:"status"`
	MeetingMinutes  *string            `db:"meeting_minutes" json:"meetingMinutes,omitempty"`
	PostponedReason *string            `db:"postponed_reason" json:"postponedReason,omitempty"`
	Approval        ApprovalState      `db:"approval" json:"approval"`
	SubmittedBy     string             `db:"submitted_by" json:"submittedBy"`
	SubmittedRole   UserRole           `db:"submitted_role" json:"submittedRole"`
	ReviewedBy      *string            `db:"reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time         `db:"reviewed_at" json:"reviewedAt,omitempty"`
	PhaseID         string             `db:"phase_id" json:"phaseId"`
	CreatedAt       time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `db:"updated_at" json:"updatedAt"`
}

// MeetingStatusFilter constrains listing queries.
type MeetingStatusFilter struct {
	MeetingIDs []string
	MenteeID   string
	MentorID   string
	PhaseID    string
	Approval   ApprovalState
}

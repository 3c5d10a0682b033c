package dto

import "github.com/noah-isme/alumni-mentorship-api/internal/models"

// MeetingDashboardQuery scopes the badge listing.
type MeetingDashboardQuery struct {
	PhaseID  string
	MentorID string
	MenteeID string
}

// MeetingBadge is the display summary of one meeting occurrence.
type MeetingBadge struct {
	MeetingID     string                            `json:"meetingId"`
	MeetingDate   string                            `json:"meetingDate"`
	MeetingTime   string                            `json:"meetingTime"`
	MentorID      string                            `json:"mentorId"`
	OverallStatus string                            `json:"overallStatus"`
	Locked        bool                              `json:"locked"`
	StatusCounts  map[models.MeetingStatusValue]int `json:"statusCounts"`
}

// MeetingDashboardResponse aggregates badges and totals for a dashboard.
type MeetingDashboardResponse struct {
	PhaseID string         `json:"phaseId,omitempty"`
	Badges  []MeetingBadge `json:"badges"`
	Totals  map[string]int `json:"totals"`
}

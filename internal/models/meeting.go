package models

import "time"

// ScheduledMeeting is a mentor's recurring meeting series for a set of mentees.
type ScheduledMeeting struct {
	ID               string    `db:"id" json:"id"`
	MentorID         string    `db:"mentor_id" json:"mentor_user_id"`
	MeetingTime      string    `db:"meeting_time" json:"meeting_time"`
	DurationMinutes  int       `db:"duration_minutes" json:"duration_minutes"`
	Platform         string    `db:"platform" json:"platform"`
	MeetingLink      string    `db:"meeting_link" json:"meeting_link"`
	Agenda           string    `db:"agenda" json:"agenda"`
	PreferredDay     string    `db:"preferred_day" json:"preferred_day"`
	NumberOfMeetings int       `db:"number_of_meetings" json:"number_of_meetings"`
	PhaseID          string    `db:"phase_id" json:"phaseId"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`

	MenteeIDs []string           `db:"-" json:"mentee_user_ids"`
	Dates     []MeetingDateEntry `db:"-" json:"meeting_dates"`
}

// MeetingDateEntry is one calendar occurrence of a scheduled meeting. MeetingID
// is the identifier status records and edits refer to.
type MeetingDateEntry struct {
	ID                 string    `db:"id" json:"id"`
	ScheduledMeetingID string    `db:"scheduled_meeting_id" json:"scheduled_meeting_id"`
	MeetingID          string    `db:"meeting_id" json:"meeting_id"`
	MeetingDate        time.Time `db:"meeting_date" json:"meeting_date"`
	MeetingTime        string    `db:"meeting_time" json:"meeting_time"`
	Position           int       `db:"position" json:"position"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`

	Locked        bool   `db:"-" json:"locked"`
	OverallStatus string `db:"-" json:"overall_status,omitempty"`
}

// MeetingDateDetail joins a date entry with the series it belongs to.
type MeetingDateDetail struct {
	MeetingDateEntry
	MentorID        string `db:"mentor_id" json:"mentor_user_id"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
	Platform        string `db:"platform" json:"platform"`
	MeetingLink     string `db:"meeting_link" json:"meeting_link"`
	Agenda          string `db:"agenda" json:"agenda"`
	PhaseID         string `db:"phase_id" json:"phaseId"`

	MenteeIDs []string `db:"-" json:"mentee_user_ids"`
}

// MeetingFilter scopes meeting listings.
type MeetingFilter struct {
	MentorID string
	MenteeID string
	PhaseID  string
}

package models

import "time"

// ProgramFeedback is an append-only survey response.
type ProgramFeedback struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Role           UserRole  `db:"role" json:"role"`
	OverallRating  int       `db:"overall_rating" json:"overall_rating"`
	MentorRating   int       `db:"mentor_rating" json:"mentor_rating"`
	ContentRating  int       `db:"content_rating" json:"content_rating"`
	ScheduleRating int       `db:"schedule_rating" json:"schedule_rating"`
	Highlights     string    `db:"highlights" json:"highlights"`
	Improvements   string    `db:"improvements" json:"improvements"`
	Comments       string    `db:"comments" json:"comments"`
	PhaseID        *string   `db:"phase_id" json:"phaseId,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// FeedbackFilter defines filters supported by list endpoints.
type FeedbackFilter struct {
	PhaseID  string
	Role     UserRole
	Page     int
	PageSize int
}

// FeedbackSummary aggregates rating averages.
type FeedbackSummary struct {
	Responses      int     `db:"responses" json:"responses"`
	OverallAverage float64 `db:"overall_average" json:"overall_average"`
	MentorAverage  float64 `db:"mentor_average" json:"mentor_average"`
	ContentAverage float64 `db:"content_average" json:"content_average"`
	ScheduleAvg    float64 `db:"schedule_average" json:"schedule_average"`
}

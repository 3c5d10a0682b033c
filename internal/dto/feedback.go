package dto

import "github.com/noah-isme/alumni-mentorship-api/internal/models"

// SubmitFeedbackRequest is a program feedback survey answer.
type SubmitFeedbackRequest struct {
	OverallRating  int    `json:"overall_rating" validate:"required,min=1,max=5"`
	MentorRating   int    `json:"mentor_rating" validate:"required,min=1,max=5"`
	ContentRating  int    `json:"content_rating" validate:"required,min=1,max=5"`
	ScheduleRating int    `json:"schedule_rating" validate:"required,min=1,max=5"`
	Highlights     string `json:"highlights" validate:"max=4000"`
	Improvements   string `json:"improvements" validate:"max=4000"`
	Comments       string `json:"comments" validate:"max=4000"`
	PhaseID        string `json:"phaseId"`
}

// FeedbackListResponse bundles feedback rows with rating averages.
type FeedbackListResponse struct {
	Items   []models.ProgramFeedback `json:"items"`
	Summary models.FeedbackSummary   `json:"summary"`
}

package dto

// AssignMentorRequest binds a mentor to mentees for the active phase.
type AssignMentorRequest struct {
	MentorUserID  string   `json:"mentor_user_id" validate:"required"`
	MenteeUserIDs []string `json:"mentee_user_ids" validate:"required,min=1,dive,required"`
	PhaseID       string   `json:"phaseId"`
}

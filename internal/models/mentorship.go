package models

import "time"

// MentorMenteeLink is one row binding a mentee to a mentor within a phase.
type MentorMenteeLink struct {
	ID        string    `db:"id" json:"id"`
	MentorID  string    `db:"mentor_id" json:"mentor_user_id"`
	MenteeID  string    `db:"mentee_id" json:"mentee_user_id"`
	PhaseID   string    `db:"phase_id" json:"phaseId"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MentorshipAssignment groups a mentor's ordered mentees for a phase.
type MentorshipAssignment struct {
	MentorID  string   `json:"mentor_user_id"`
	MenteeIDs []string `json:"mentee_user_ids"`
	PhaseID   string   `json:"phaseId"`
}

// AssignmentFromLinks folds link rows (ordered by position) into an assignment.
func AssignmentFromLinks(mentorID, phaseID string, links []MentorMenteeLink) *MentorshipAssignment {
	assignment := &MentorshipAssignment{MentorID: mentorID, PhaseID: phaseID, MenteeIDs: make([]string, 0, len(links))}
	for _, link := range links {
		assignment.MenteeIDs = append(assignment.MenteeIDs, link.MenteeID)
	}
	return assignment
}

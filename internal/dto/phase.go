package dto

import "github.com/noah-isme/alumni-mentorship-api/internal/models"

// PhaseListResponse mirrors the `{ phases: [...] }` contract consumed by the frontend.
type PhaseListResponse struct {
	Phases []models.Phase `json:"phases"`
}

// CreatePhaseRequest describes payload for creating a phase.
type CreatePhaseRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

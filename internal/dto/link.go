package dto

import "time"

// CreateLinkRequest asks for a signed link identifying the caller.
type CreateLinkRequest struct {
	Purpose string `json:"purpose" validate:"required,oneof=dashboard meeting-status feedback"`
	Path    string `json:"path" validate:"omitempty,startswith=/"`
}

// LinkResponse carries a signed token and the frontend URL embedding it.
type LinkResponse struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ResolvedLink is the identity recovered from a token.
type ResolvedLink struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Purpose   string    `json:"purpose"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package models

import "time"

// NotificationKind classifies in-app notifications.
type NotificationKind string

const (
	NotificationStatusSubmitted NotificationKind = "MEETING_STATUS_SUBMITTED"
	NotificationStatusResolved  NotificationKind = "MEETING_STATUS_RESOLVED"
	NotificationMeetingUpdated  NotificationKind = "MEETING_RESCHEDULED"
)

// Notification is an in-app message for a user.
type Notification struct {
	ID          string           `db:"id" json:"id"`
	UserID      string           `db:"user_id" json:"user_id"`
	Kind        NotificationKind `db:"kind" json:"kind"`
	Message     string           `db:"message" json:"message"`
	ReferenceID *string          `db:"reference_id" json:"reference_id,omitempty"`
	ReadAt      *time.Time       `db:"read_at" json:"read_at,omitempty"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

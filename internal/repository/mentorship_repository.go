package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
)

// MentorshipRepository persists mentor/mentee links.
type MentorshipRepository struct {
	db *sqlx.DB
}

// NewMentorshipRepository constructs the repository.
func NewMentorshipRepository(db *sqlx.DB) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// ListByMentor returns the mentor's links for a phase ordered by position.
func (r *MentorshipRepository) ListByMentor(ctx context.Context, mentorID, phaseID string) ([]models.MentorMenteeLink, error) {
	const query = `SELECT id, mentor_id, mentee_id, phase_id, position, created_at
FROM mentorship_assignments WHERE mentor_id = $1 AND phase_id = $2 ORDER BY position ASC`
	var links []models.MentorMenteeLink
	if err := r.db.SelectContext(ctx, &links, query, mentorID, phaseID); err != nil {
		return nil, fmt.Errorf("list mentorship by mentor: %w", err)
	}
	return links, nil
}

// ListByMentees returns existing links of any of the mentees in a phase.
func (r *MentorshipRepository) ListByMentees(ctx context.Context, menteeIDs []string, phaseID string) ([]models.MentorMenteeLink, error) {
	if len(menteeIDs) == 0 {
		return nil, nil
	}
	const query = `SELECT id, mentor_id, mentee_id, phase_id, position, created_at
FROM mentorship_assignments WHERE mentee_id = ANY($1) AND phase_id = $2`
	var links []models.MentorMenteeLink
	if err := r.db.SelectContext(ctx, &links, query, pq.Array(menteeIDs), phaseID); err != nil {
		return nil, fmt.Errorf("list mentorship by mentees: %w", err)
	}
	return links, nil
}

// CreateLinks appends menteeIDs to the mentor's roster for a phase and returns
// the full roster in position order. The mentor row is locked for the length of
// the transaction so concurrent assignments to one mentor are counted one after
// another; a roster that would exceed maxMentees yields a *CapacityError. A
// unique violation on (mentee_id, phase_id) yields ErrDuplicate.
func (r *MentorshipRepository) CreateLinks(ctx context.Context, mentorID, phaseID string, menteeIDs []string, maxMentees int) (links []models.MentorMenteeLink, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create mentorship: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var locked string
	if err = tx.GetContext(ctx, &locked, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, mentorID); err != nil {
		return nil, fmt.Errorf("lock mentor: %w", err)
	}

	var existing []models.MentorMenteeLink
	if err = tx.SelectContext(ctx, &existing, `SELECT id, mentor_id, mentee_id, phase_id, position, created_at
FROM mentorship_assignments WHERE mentor_id = $1 AND phase_id = $2 ORDER BY position ASC`, mentorID, phaseID); err != nil {
		return nil, fmt.Errorf("count mentor roster: %w", err)
	}
	if len(existing)+len(menteeIDs) > maxMentees {
		err = &CapacityError{Current: len(existing), Max: maxMentees}
		return nil, err
	}

	startPosition := 0
	if n := len(existing); n > 0 {
		startPosition = existing[n-1].Position + 1
	}
	now := time.Now().UTC()
	links = append(make([]models.MentorMenteeLink, 0, len(existing)+len(menteeIDs)), existing...)
	for i, menteeID := range menteeIDs {
		link := models.MentorMenteeLink{
			ID:        uuid.NewString(),
			MentorID:  mentorID,
			MenteeID:  menteeID,
			PhaseID:   phaseID,
			Position:  startPosition + i,
			CreatedAt: now,
		}
		if _, err = tx.NamedExecContext(ctx, `INSERT INTO mentorship_assignments (id, mentor_id, mentee_id, phase_id, position, created_at)
			VALUES (:id, :mentor_id, :mentee_id, :phase_id, :position, :created_at)`, &link); err != nil {
			if isUniqueViolation(err) {
				err = ErrDuplicate
				return nil, err
			}
			return nil, fmt.Errorf("insert mentorship link: %w", err)
		}
		links = append(links, link)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit mentorship links: %w", err)
	}
	return links, nil
}

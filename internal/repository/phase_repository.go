package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
)

// PhaseRepository persists program phases.
type PhaseRepository struct {
	db *sqlx.DB
}

// NewPhaseRepository constructs the repository.
func NewPhaseRepository(db *sqlx.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// List returns every phase ordered by start date.
func (r *PhaseRepository) List(ctx context.Context) ([]models.Phase, error) {
	const query = `SELECT id, name, start_date, end_date, created_at, updated_at FROM phases ORDER BY start_date ASC`
	var phases []models.Phase
	if err := r.db.SelectContext(ctx, &phases, query); err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	return phases, nil
}

// FindByID fetches a phase.
func (r *PhaseRepository) FindByID(ctx context.Context, id string) (*models.Phase, error) {
	const query = `SELECT id, name, start_date, end_date, created_at, updated_at FROM phases WHERE id = $1`
	var phase models.Phase
	if err := r.db.GetContext(ctx, &phase, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find phase: %w", err)
	}
	return &phase, nil
}

// FindContaining returns the phase whose window covers day. When windows
// overlap the most recently started phase wins.
func (r *PhaseRepository) FindContaining(ctx context.Context, day time.Time) (*models.Phase, error) {
	const query = `SELECT id, name, start_date, end_date, created_at, updated_at FROM phases
WHERE start_date <= $1 AND end_date >= $1
ORDER BY start_date DESC LIMIT 1`
	var phase models.Phase
	if err := r.db.GetContext(ctx, &phase, query, day); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find active phase: %w", err)
	}
	return &phase, nil
}

// Create inserts a phase.
func (r *PhaseRepository) Create(ctx context.Context, phase *models.Phase) error {
	if phase.ID == "" {
		phase.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if phase.CreatedAt.IsZero() {
		phase.CreatedAt = now
	}
	phase.UpdatedAt = now
	const query = `INSERT INTO phases (id, name, start_date, end_date, created_at, updated_at)
		VALUES (:id, :name, :start_date, :end_date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, phase); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create phase: %w", err)
	}
	return nil
}

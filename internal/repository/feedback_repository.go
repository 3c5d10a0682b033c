package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
)

// FeedbackRepository stores program feedback; rows are never updated.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository constructs the repository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create appends a feedback response.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.ProgramFeedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO program_feedback (id, email, role, overall_rating, mentor_rating, content_rating, schedule_rating,
		highlights, improvements, comments, phase_id, created_at)
		VALUES (:id, :email, :role, :overall_rating, :mentor_rating, :content_rating, :schedule_rating,
		:highlights, :improvements, :comments, :phase_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, feedback); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// List returns a page of feedback plus the total matching count.
func (r *FeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter) ([]models.ProgramFeedback, int, error) {
	where, args := feedbackConditions(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM program_feedback`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count feedback: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	query := fmt.Sprintf(`SELECT id, email, role, overall_rating, mentor_rating, content_rating, schedule_rating,
       highlights, improvements, comments, phase_id, created_at FROM program_feedback%s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		where, size, (page-1)*size)
	var items []models.ProgramFeedback
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list feedback: %w", err)
	}
	return items, total, nil
}

// Summary averages ratings across the feedback matching the filter.
func (r *FeedbackRepository) Summary(ctx context.Context, filter models.FeedbackFilter) (*models.FeedbackSummary, error) {
	where, args := feedbackConditions(filter)
	query := `SELECT COUNT(*) AS responses,
       COALESCE(AVG(overall_rating), 0) AS overall_average,
       COALESCE(AVG(mentor_rating), 0) AS mentor_average,
       COALESCE(AVG(content_rating), 0) AS content_average,
       COALESCE(AVG(schedule_rating), 0) AS schedule_average
FROM program_feedback` + where
	var summary models.FeedbackSummary
	if err := r.db.GetContext(ctx, &summary, query, args...); err != nil {
		return nil, fmt.Errorf("summarize feedback: %w", err)
	}
	return &summary, nil
}

func feedbackConditions(filter models.FeedbackFilter) (string, []interface{}) {
	args := make([]interface{}, 0, 2)
	conditions := make([]string, 0, 2)
	if filter.PhaseID != "" {
		args = append(args, filter.PhaseID)
		conditions = append(conditions, fmt.Sprintf("phase_id = $%d", len(args)))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

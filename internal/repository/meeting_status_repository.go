package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
)

const statusColumns = `id, meeting_id, mentee_id, mentor_id, status, meeting_minutes, postponed_reason, approval,
       submitted_by, submitted_role, reviewed_by, reviewed_at, phase_id, created_at, updated_at`

// MeetingStatusRepository persists per (meeting, mentee) status records.
type MeetingStatusRepository struct {
	db *sqlx.DB
}

// NewMeetingStatusRepository constructs the repository.
func NewMeetingStatusRepository(db *sqlx.DB) *MeetingStatusRepository {
	return &MeetingStatusRepository{db: db}
}

// FindByID fetches a status record.
func (r *MeetingStatusRepository) FindByID(ctx context.Context, id string) (*models.MeetingStatus, error) {
	var status models.MeetingStatus
	if err := r.db.GetContext(ctx, &status, `SELECT `+statusColumns+` FROM meeting_statuses WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find meeting status: %w", err)
	}
	return &status, nil
}

// List returns status records matching the filter, newest first.
func (r *MeetingStatusRepository) List(ctx context.Context, filter models.MeetingStatusFilter) ([]models.MeetingStatus, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 5)
	builder.WriteString(`SELECT ` + statusColumns + ` FROM meeting_statuses`)

	conditions := make([]string, 0, 5)
	if len(filter.MeetingIDs) > 0 {
		args = append(args, pq.Array(filter.MeetingIDs))
		conditions = append(conditions, fmt.Sprintf("meeting_id = ANY($%d)", len(args)))
	}
	if filter.MenteeID != "" {
		args = append(args, filter.MenteeID)
		conditions = append(conditions, fmt.Sprintf("mentee_id = $%d", len(args)))
	}
	if filter.MentorID != "" {
		args = append(args, filter.MentorID)
		conditions = append(conditions, fmt.Sprintf("mentor_id = $%d", len(args)))
	}
	if filter.PhaseID != "" {
		args = append(args, filter.PhaseID)
		conditions = append(conditions, fmt.Sprintf("phase_id = $%d", len(args)))
	}
	if filter.Approval != "" {
		args = append(args, filter.Approval)
		conditions = append(conditions, fmt.Sprintf("approval = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY created_at ASC, id ASC")

	var statuses []models.MeetingStatus
	if err := r.db.SelectContext(ctx, &statuses, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list meeting statuses: %w", err)
	}
	return statuses, nil
}

// SubmitBatch writes one Pending record per entry in a single transaction. A
// Rejected record for the same pair is moved to meeting_status_history first so
// each live record is reviewed at most once; any other existing record aborts
// the batch with ErrDuplicate.
func (r *MeetingStatusRepository) SubmitBatch(ctx context.Context, statuses []*models.MeetingStatus) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submit statuses: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const archive = `WITH superseded AS (
	DELETE FROM meeting_statuses WHERE meeting_id = $1 AND mentee_id = $2 AND approval = 'Rejected'
	RETURNING ` + statusColumns + `
)
INSERT INTO meeting_status_history (` + statusColumns + `, superseded_at)
SELECT ` + statusColumns + `, $3 FROM superseded`

	const query = `INSERT INTO meeting_statuses (id, meeting_id, mentee_id, mentor_id, status, meeting_minutes, postponed_reason,
	approval, submitted_by, submitted_role, phase_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'Pending', $8, $9, $10, $11, $11)
ON CONFLICT (meeting_id, mentee_id) DO NOTHING
RETURNING id, created_at`

	now := time.Now().UTC()
	for _, status := range statuses {
		if status.ID == "" {
			status.ID = uuid.NewString()
		}
		if _, err = tx.ExecContext(ctx, archive, status.MeetingID, status.MenteeID, now); err != nil {
			return fmt.Errorf("archive rejected meeting status: %w", err)
		}
		row := tx.QueryRowxContext(ctx, query,
			status.ID, status.MeetingID, status.MenteeID, status.MentorID, status.Status,
			status.MeetingMinutes, status.PostponedReason, status.SubmittedBy, status.SubmittedRole,
			status.PhaseID, now)
		if err = row.Scan(&status.ID, &status.CreatedAt); err != nil {
			if err == sql.ErrNoRows {
				err = ErrDuplicate
				return err
			}
			return fmt.Errorf("insert meeting status: %w", err)
		}
		status.Approval = models.ApprovalPending
		status.ReviewedBy = nil
		status.ReviewedAt = nil
		status.UpdatedAt = now
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit meeting statuses: %w", err)
	}
	return nil
}

// Resolve moves a Pending record to the given approval. It returns
// sql.ErrNoRows when the record is missing or no longer Pending.
func (r *MeetingStatusRepository) Resolve(ctx context.Context, id string, approval models.ApprovalState, reviewer string, reviewedAt time.Time) error {
	const query = `UPDATE meeting_statuses SET approval = :approval, reviewed_by = :reviewed_by, reviewed_at = :reviewed_at, updated_at = :reviewed_at
WHERE id = :id AND approval = 'Pending'`
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          id,
		"approval":    approval,
		"reviewed_by": reviewer,
		"reviewed_at": reviewedAt,
	})
	if err != nil {
		return fmt.Errorf("resolve meeting status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check meeting status update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

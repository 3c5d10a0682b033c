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

const meetingColumns = `id, mentor_id, meeting_time, duration_minutes, platform, meeting_link, agenda,
       preferred_day, number_of_meetings, phase_id, created_at, updated_at`

const meetingDateDetailQuery = `SELECT d.id, d.scheduled_meeting_id, d.meeting_id, d.meeting_date, d.meeting_time,
       d.position, d.updated_at, m.mentor_id, m.duration_minutes, m.platform, m.meeting_link, m.agenda, m.phase_id
FROM meeting_dates d
JOIN scheduled_meetings m ON m.id = d.scheduled_meeting_id`

// lockedPredicate matches meeting dates with a Completed and Approved status.
const lockedPredicate = `EXISTS (SELECT 1 FROM meeting_statuses s
    WHERE s.meeting_id = meeting_dates.meeting_id AND s.status = 'Completed' AND s.approval = 'Approved')`

// MeetingRepository persists scheduled meetings and their date entries.
type MeetingRepository struct {
	db *sqlx.DB
}

// NewMeetingRepository constructs the repository.
func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create inserts the meeting, its mentees and one entry per date in a single
// transaction. Each entry receives a fresh meeting identifier.
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.ScheduledMeeting, dates []time.Time) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create meeting: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	if meeting.ID == "" {
		meeting.ID = uuid.NewString()
	}
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	const insertMeeting = `INSERT INTO scheduled_meetings (id, mentor_id, meeting_time, duration_minutes, platform, meeting_link, agenda,
		preferred_day, number_of_meetings, phase_id, created_at, updated_at)
		VALUES (:id, :mentor_id, :meeting_time, :duration_minutes, :platform, :meeting_link, :agenda,
		:preferred_day, :number_of_meetings, :phase_id, :created_at, :updated_at)`
	if _, err = tx.NamedExecContext(ctx, insertMeeting, meeting); err != nil {
		return fmt.Errorf("insert scheduled meeting: %w", err)
	}

	for _, menteeID := range meeting.MenteeIDs {
		if _, err = tx.ExecContext(ctx, `INSERT INTO scheduled_meeting_mentees (scheduled_meeting_id, mentee_id) VALUES ($1, $2)`, meeting.ID, menteeID); err != nil {
			return fmt.Errorf("insert meeting mentee: %w", err)
		}
	}

	meeting.Dates = make([]models.MeetingDateEntry, 0, len(dates))
	for i, day := range dates {
		entry := models.MeetingDateEntry{
			ID:                 uuid.NewString(),
			ScheduledMeetingID: meeting.ID,
			MeetingID:          uuid.NewString(),
			MeetingDate:        day,
			MeetingTime:        meeting.MeetingTime,
			Position:           i,
			UpdatedAt:          now,
		}
		if _, err = tx.NamedExecContext(ctx, `INSERT INTO meeting_dates (id, scheduled_meeting_id, meeting_id, meeting_date, meeting_time, position, updated_at)
			VALUES (:id, :scheduled_meeting_id, :meeting_id, :meeting_date, :meeting_time, :position, :updated_at)`, &entry); err != nil {
			return fmt.Errorf("insert meeting date: %w", err)
		}
		meeting.Dates = append(meeting.Dates, entry)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit meeting: %w", err)
	}
	return nil
}

// List returns meetings matching the filter with their mentees and dates loaded.
func (r *MeetingRepository) List(ctx context.Context, filter models.MeetingFilter) ([]models.ScheduledMeeting, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 3)
	builder.WriteString(`SELECT ` + meetingColumns + ` FROM scheduled_meetings`)

	conditions := make([]string, 0, 3)
	if filter.MentorID != "" {
		args = append(args, filter.MentorID)
		conditions = append(conditions, fmt.Sprintf("mentor_id = $%d", len(args)))
	}
	if filter.MenteeID != "" {
		args = append(args, filter.MenteeID)
		conditions = append(conditions, fmt.Sprintf("id IN (SELECT scheduled_meeting_id FROM scheduled_meeting_mentees WHERE mentee_id = $%d)", len(args)))
	}
	if filter.PhaseID != "" {
		args = append(args, filter.PhaseID)
		conditions = append(conditions, fmt.Sprintf("phase_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY created_at DESC")

	var meetings []models.ScheduledMeeting
	if err := r.db.SelectContext(ctx, &meetings, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	if len(meetings) == 0 {
		return meetings, nil
	}

	ids := make([]string, len(meetings))
	for i := range meetings {
		ids[i] = meetings[i].ID
	}
	mentees, err := r.menteesByMeeting(ctx, ids)
	if err != nil {
		return nil, err
	}

	var entries []models.MeetingDateEntry
	const datesQuery = `SELECT id, scheduled_meeting_id, meeting_id, meeting_date, meeting_time, position, updated_at
FROM meeting_dates WHERE scheduled_meeting_id = ANY($1) ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &entries, datesQuery, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("list meeting dates: %w", err)
	}
	byMeeting := make(map[string][]models.MeetingDateEntry, len(meetings))
	for _, entry := range entries {
		byMeeting[entry.ScheduledMeetingID] = append(byMeeting[entry.ScheduledMeetingID], entry)
	}
	for i := range meetings {
		meetings[i].MenteeIDs = mentees[meetings[i].ID]
		meetings[i].Dates = byMeeting[meetings[i].ID]
	}
	return meetings, nil
}

// FindDateByMeetingID loads a single date entry joined with its series.
func (r *MeetingRepository) FindDateByMeetingID(ctx context.Context, meetingID string) (*models.MeetingDateDetail, error) {
	var detail models.MeetingDateDetail
	if err := r.db.GetContext(ctx, &detail, meetingDateDetailQuery+` WHERE d.meeting_id = $1`, meetingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find meeting date: %w", err)
	}
	mentees, err := r.menteesByMeeting(ctx, []string{detail.ScheduledMeetingID})
	if err != nil {
		return nil, err
	}
	detail.MenteeIDs = mentees[detail.ScheduledMeetingID]
	return &detail, nil
}

// ListDateDetails returns every date entry matching the filter, ordered by date.
func (r *MeetingRepository) ListDateDetails(ctx context.Context, filter models.MeetingFilter) ([]models.MeetingDateDetail, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 3)
	builder.WriteString(meetingDateDetailQuery)

	conditions := make([]string, 0, 3)
	if filter.MentorID != "" {
		args = append(args, filter.MentorID)
		conditions = append(conditions, fmt.Sprintf("m.mentor_id = $%d", len(args)))
	}
	if filter.MenteeID != "" {
		args = append(args, filter.MenteeID)
		conditions = append(conditions, fmt.Sprintf("m.id IN (SELECT scheduled_meeting_id FROM scheduled_meeting_mentees WHERE mentee_id = $%d)", len(args)))
	}
	if filter.PhaseID != "" {
		args = append(args, filter.PhaseID)
		conditions = append(conditions, fmt.Sprintf("m.phase_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY d.meeting_date ASC, d.position ASC")

	var details []models.MeetingDateDetail
	if err := r.db.SelectContext(ctx, &details, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list meeting date details: %w", err)
	}
	return details, nil
}

// UpdateDate rewrites the date and time of an unlocked entry. It returns
// sql.ErrNoRows when the entry is missing or became locked.
func (r *MeetingRepository) UpdateDate(ctx context.Context, meetingID string, day time.Time, meetingTime string) error {
	query := `UPDATE meeting_dates SET meeting_date = $2, meeting_time = $3, updated_at = $4
WHERE meeting_id = $1 AND NOT ` + lockedPredicate
	result, err := r.db.ExecContext(ctx, query, meetingID, day, meetingTime, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update meeting date: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check meeting date update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *MeetingRepository) menteesByMeeting(ctx context.Context, meetingIDs []string) (map[string][]string, error) {
	var rows []struct {
		MeetingID string `db:"scheduled_meeting_id"`
		MenteeID  string `db:"mentee_id"`
	}
	const query = `SELECT scheduled_meeting_id, mentee_id FROM scheduled_meeting_mentees
WHERE scheduled_meeting_id = ANY($1) ORDER BY mentee_id ASC`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(meetingIDs)); err != nil {
		return nil, fmt.Errorf("list meeting mentees: %w", err)
	}
	out := make(map[string][]string, len(meetingIDs))
	for _, row := range rows {
		out[row.MeetingID] = append(out[row.MeetingID], row.MenteeID)
	}
	return out, nil
}

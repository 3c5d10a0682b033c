package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
)

func newPendingStatus(menteeID string) *models.MeetingStatus {
	minutes := "discussed goals"
	return &models.MeetingStatus{
		MeetingID:      "mt-1",
		MenteeID:       menteeID,
		MentorID:       "mentor-1",
		Status:         models.MeetingStatusCompleted,
		MeetingMinutes: &minutes,
		SubmittedBy:    "mentor-1",
		SubmittedRole:  models.RoleMentor,
		PhaseID:        "phase-1",
	}
}

func TestMeetingStatusRepositorySubmitBatch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`WITH superseded AS \(\s*DELETE FROM meeting_statuses WHERE meeting_id = \$1 AND mentee_id = \$2 AND approval = 'Rejected'.*INSERT INTO meeting_status_history`).
		WithArgs("mt-1", "m-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO meeting_statuses .*ON CONFLICT \(meeting_id, mentee_id\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("st-1", now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO meeting_status_history")).
		WithArgs("mt-1", "m-2", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO meeting_statuses")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("st-new", now))
	mock.ExpectCommit()

	first, second := newPendingStatus("m-1"), newPendingStatus("m-2")
	require.NoError(t, NewMeetingStatusRepository(db).SubmitBatch(context.Background(), []*models.MeetingStatus{first, second}))
	assert.Equal(t, "st-1", first.ID)
	assert.Equal(t, "st-new", second.ID)
	assert.Equal(t, models.ApprovalPending, second.Approval)
	assert.Nil(t, second.ReviewedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingStatusRepositorySubmitBatchConflict(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO meeting_status_history")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO meeting_statuses")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
	mock.ExpectRollback()

	err := NewMeetingStatusRepository(db).SubmitBatch(context.Background(), []*models.MeetingStatus{newPendingStatus("m-1")})
	require.ErrorIs(t, err, ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingStatusRepositoryResolveOnlyFromPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMeetingStatusRepository(db)
	now := time.Now()

	mock.ExpectExec(`UPDATE meeting_statuses SET approval = .* WHERE id = .* AND approval = 'Pending'`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Resolve(context.Background(), "st-1", models.ApprovalApproved, "mentor-1", now))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE meeting_statuses SET approval")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Resolve(context.Background(), "st-1", models.ApprovalRejected, "mentor-1", now)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingStatusRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "meeting_id", "mentee_id", "mentor_id", "status", "meeting_minutes", "postponed_reason", "approval",
		"submitted_by", "submitted_role", "reviewed_by", "reviewed_at", "phase_id", "created_at", "updated_at"}).
		AddRow("st-1", "mt-1", "m-1", "mentor-1", "Completed", "notes", nil, "Pending", "mentor-1", "MENTOR", nil, nil, "phase-1", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM meeting_statuses WHERE mentee_id = $1 AND approval = $2")).
		WithArgs("m-1", models.ApprovalPending).
		WillReturnRows(rows)

	list, err := NewMeetingStatusRepository(db).List(context.Background(), models.MeetingStatusFilter{MenteeID: "m-1", Approval: models.ApprovalPending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].MeetingMinutes)
	assert.Equal(t, "notes", *list[0].MeetingMinutes)
	assert.Nil(t, list[0].PostponedReason)
	require.NoError(t, mock.ExpectationsWereMet())
}

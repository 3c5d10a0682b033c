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

func TestMeetingRepositoryCreateAssignsMeetingIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_meetings")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_meeting_mentees")).
		WithArgs(sqlmock.AnyArg(), "m-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO meeting_dates")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO meeting_dates")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	meeting := &models.ScheduledMeeting{MentorID: "mentor-1", MeetingTime: "18:00", MenteeIDs: []string{"m-1"}, PhaseID: "phase-1"}
	dates := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewMeetingRepository(db).Create(context.Background(), meeting, dates))

	require.Len(t, meeting.Dates, 2)
	assert.NotEmpty(t, meeting.ID)
	assert.NotEqual(t, meeting.Dates[0].MeetingID, meeting.Dates[1].MeetingID)
	assert.Equal(t, meeting.ID, meeting.Dates[1].ScheduledMeetingID)
	assert.Equal(t, "18:00", meeting.Dates[0].MeetingTime)
	assert.Equal(t, 1, meeting.Dates[1].Position)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepositoryCreateRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_meetings")).WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := NewMeetingRepository(db).Create(context.Background(), &models.ScheduledMeeting{MentorID: "mentor-1"}, nil)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepositoryUpdateDate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMeetingRepository(db)
	day := time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE meeting_dates SET meeting_date = \$2, meeting_time = \$3.*AND NOT EXISTS`).
		WithArgs("mt-1", day, "19:00", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateDate(context.Background(), "mt-1", day, "19:00"))

	mock.ExpectExec(`UPDATE meeting_dates`).
		WithArgs("mt-locked", day, "19:00", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateDate(context.Background(), "mt-locked", day, "19:00")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepositoryFindDateByMeetingID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM meeting_dates d")).
		WithArgs("mt-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "scheduled_meeting_id", "meeting_id", "meeting_date", "meeting_time", "position", "updated_at",
			"mentor_id", "duration_minutes", "platform", "meeting_link", "agenda", "phase_id"}).
			AddRow("d-1", "sm-1", "mt-1", now, "18:00", 0, now, "mentor-1", 60, "Zoom", "https://zoom.test/1", "Intro", "phase-1"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_meeting_mentees")).
		WillReturnRows(sqlmock.NewRows([]string{"scheduled_meeting_id", "mentee_id"}).
			AddRow("sm-1", "m-1").
			AddRow("sm-1", "m-2"))

	detail, err := NewMeetingRepository(db).FindDateByMeetingID(context.Background(), "mt-1")
	require.NoError(t, err)
	assert.Equal(t, "mentor-1", detail.MentorID)
	assert.Equal(t, "mt-1", detail.MeetingID)
	assert.Equal(t, []string{"m-1", "m-2"}, detail.MenteeIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeetingRepositoryListLoadsDatesAndMentees(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_meetings WHERE mentor_id = $1 AND phase_id = $2")).
		WithArgs("mentor-1", "phase-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id", "meeting_time", "duration_minutes", "platform", "meeting_link", "agenda",
			"preferred_day", "number_of_meetings", "phase_id", "created_at", "updated_at"}).
			AddRow("sm-1", "mentor-1", "18:00", 60, "Zoom", "", "", "Wednesday", 2, "phase-1", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM scheduled_meeting_mentees")).
		WillReturnRows(sqlmock.NewRows([]string{"scheduled_meeting_id", "mentee_id"}).AddRow("sm-1", "m-1"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM meeting_dates WHERE scheduled_meeting_id = ANY($1)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "scheduled_meeting_id", "meeting_id", "meeting_date", "meeting_time", "position", "updated_at"}).
			AddRow("d-1", "sm-1", "mt-1", now, "18:00", 0, now).
			AddRow("d-2", "sm-1", "mt-2", now, "18:00", 1, now))

	meetings, err := NewMeetingRepository(db).List(context.Background(), models.MeetingFilter{MentorID: "mentor-1", PhaseID: "phase-1"})
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, []string{"m-1"}, meetings[0].MenteeIDs)
	require.Len(t, meetings[0].Dates, 2)
	assert.Equal(t, "mt-2", meetings[0].Dates[1].MeetingID)
	require.NoError(t, mock.ExpectationsWereMet())
}

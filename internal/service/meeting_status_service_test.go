package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type statusFixture struct {
	*meetingFixture
	statusSvc *MeetingStatusService
	notes     *recordingNotifier
	meetingID string
}

func newStatusFixture(t *testing.T) *statusFixture {
	t.Helper()
	mf := newMeetingFixture()
	meeting, err := mf.svc.Schedule(context.Background(), mentorClaims("mentor-1"), generatedScheduleRequest())
	require.NoError(t, err)

	notes := &recordingNotifier{}
	users := newStubUsers(
		models.User{ID: "mentor-1", Email: "mentor-1@alumni.test", Role: models.RoleMentor, Active: true},
		models.User{ID: "mentor-2", Email: "mentor-2@alumni.test", Role: models.RoleMentor, Active: true},
	)
	svc := NewMeetingStatusService(MeetingStatusServiceParams{
		Statuses: mf.statuses,
		Meetings: mf.meetings,
		Users:    users,
		Audit:    mf.audit,
		Cache:    mf.cache,
		Notifier: notes,
	})
	return &statusFixture{meetingFixture: mf, statusSvc: svc, notes: notes, meetingID: meeting.Dates[0].MeetingID}
}

func (f *statusFixture) completedRequest(menteeIDs ...string) dto.SubmitStatusRequest {
	return dto.SubmitStatusRequest{
		MentorEmail:    "mentor-1@alumni.test",
		MenteeIDs:      menteeIDs,
		MeetingID:      f.meetingID,
		Status:         models.MeetingStatusCompleted,
		MeetingMinutes: "Reviewed CV and set goals",
	}
}

func TestMeetingStatusApprovalLocksMeeting(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	created, err := f.statusSvc.Submit(ctx, menteeClaims("mentee-1"), f.completedRequest("mentee-1"))
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, models.ApprovalPending, created[0].Approval)
	assert.Equal(t, models.RoleMentee, created[0].SubmittedRole)
	require.Len(t, f.notes.sent, 1)
	assert.Equal(t, []string{"mentor-1"}, f.notes.sent[0].userIDs)

	resolved, err := f.statusSvc.Resolve(ctx, mentorClaims("mentor-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalApproved})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, resolved.Approval)
	require.NotNil(t, resolved.ReviewedBy)
	assert.Equal(t, "mentor-1", *resolved.ReviewedBy)

	_, err = f.svc.UpdateDate(ctx, mentorClaims("mentor-1"), f.meetingID, dto.UpdateMeetingRequest{MeetingDate: "2025-01-03", MeetingTime: "18:00"})
	require.ErrorIs(t, err, appErrors.ErrMeetingLocked)
}

func TestMeetingStatusResolveOnlyOnce(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	created, err := f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("mentee-1", "mentee-2"))
	require.NoError(t, err)
	require.Len(t, created, 2)

	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalRejected})
	require.NoError(t, err)

	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalApproved})
	require.ErrorIs(t, err, appErrors.ErrAlreadyResolved)

	stored, err := f.statuses.FindByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, stored.Approval)
}

func TestMeetingStatusResolveRequiresCounterpart(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	created, err := f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("mentee-1"))
	require.NoError(t, err)

	_, err = f.statusSvc.Resolve(ctx, mentorClaims("mentor-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalApproved})
	require.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-2"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalApproved})
	require.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = f.statusSvc.Resolve(ctx, adminClaims(), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalApproved})
	require.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: "Maybe"})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-1"), dto.ApproveRejectRequest{StatusID: "missing", Action: models.ApprovalApproved})
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestMeetingStatusSubmitValidation(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	req := f.completedRequest("mentee-1")
	req.MeetingMinutes = "  "
	_, err := f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), req)
	require.ErrorIs(t, err, appErrors.ErrValidation)

	req = f.completedRequest("mentee-1")
	req.Status = models.MeetingStatusPostponed
	_, err = f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), req)
	require.ErrorIs(t, err, appErrors.ErrValidation)

	req = f.completedRequest("mentee-1")
	req.Status = models.MeetingStatusScheduled
	_, err = f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), req)
	require.ErrorIs(t, err, appErrors.ErrValidation)

	req = f.completedRequest("mentee-1")
	req.MentorEmail = "mentor-2@alumni.test"
	_, err = f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), req)
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = f.statusSvc.Submit(ctx, menteeClaims("mentee-1"), f.completedRequest("mentee-2"))
	require.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("outsider"))
	require.ErrorIs(t, err, appErrors.ErrValidation)

	req = f.completedRequest("mentee-1")
	req.MeetingID = "missing"
	_, err = f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), req)
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestMeetingStatusResubmitOnlyAfterRejection(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	created, err := f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("mentee-1"))
	require.NoError(t, err)

	_, err = f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("mentee-1"))
	require.ErrorIs(t, err, appErrors.ErrConflict)

	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalRejected})
	require.NoError(t, err)

	resubmitted, err := f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("mentee-1"))
	require.NoError(t, err)
	assert.NotEqual(t, created[0].ID, resubmitted[0].ID)
	assert.Equal(t, models.ApprovalPending, resubmitted[0].Approval)
	assert.Nil(t, resubmitted[0].ReviewedBy)

	// The rejected record is kept as history and never reviewed again.
	require.Len(t, f.statuses.history, 1)
	assert.Equal(t, created[0].ID, f.statuses.history[0].ID)
	assert.Equal(t, models.ApprovalRejected, f.statuses.history[0].Approval)
	_, err = f.statusSvc.Resolve(ctx, menteeClaims("mentee-1"), dto.ApproveRejectRequest{StatusID: created[0].ID, Action: models.ApprovalApproved})
	require.ErrorIs(t, err, appErrors.ErrNotFound)

	live, err := f.statusSvc.List(ctx, adminClaims(), dto.MeetingStatusQuery{MeetingID: f.meetingID})
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, resubmitted[0].ID, live[0].ID)
}

func TestMeetingStatusListScopesByRole(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	_, err := f.statusSvc.Submit(ctx, mentorClaims("mentor-1"), f.completedRequest("mentee-1", "mentee-2"))
	require.NoError(t, err)

	all, err := f.statusSvc.List(ctx, adminClaims(), dto.MeetingStatusQuery{MeetingID: f.meetingID})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := f.statusSvc.List(ctx, menteeClaims("mentee-2"), dto.MeetingStatusQuery{MenteeID: "mentee-1"})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "mentee-2", own[0].MenteeID)

	none, err := f.statusSvc.List(ctx, mentorClaims("mentor-2"), dto.MeetingStatusQuery{})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.statusSvc.List(ctx, adminClaims(), dto.MeetingStatusQuery{Approval: "Unknown"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

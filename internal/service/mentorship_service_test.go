package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/repository"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type mentorshipRepoStub struct {
	mu        sync.Mutex
	links     []models.MentorMenteeLink
	createErr error
	// checked, when set, holds every caller after its pre-insert checks until
	// all expected callers have reached the same point.
	checked *sync.WaitGroup
}

func (s *mentorshipRepoStub) ListByMentor(ctx context.Context, mentorID, phaseID string) ([]models.MentorMenteeLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster(mentorID, phaseID), nil
}

func (s *mentorshipRepoStub) roster(mentorID, phaseID string) []models.MentorMenteeLink {
	var out []models.MentorMenteeLink
	for _, l := range s.links {
		if l.MentorID == mentorID && l.PhaseID == phaseID {
			out = append(out, l)
		}
	}
	return out
}

func (s *mentorshipRepoStub) ListByMentees(ctx context.Context, menteeIDs []string, phaseID string) ([]models.MentorMenteeLink, error) {
	if s.checked != nil {
		defer func() {
			s.checked.Done()
			s.checked.Wait()
		}()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.MentorMenteeLink
	for _, l := range s.links {
		if l.PhaseID == phaseID && containsID(menteeIDs, l.MenteeID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *mentorshipRepoStub) CreateLinks(ctx context.Context, mentorID, phaseID string, menteeIDs []string, maxMentees int) ([]models.MentorMenteeLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	roster := s.roster(mentorID, phaseID)
	if len(roster)+len(menteeIDs) > maxMentees {
		return nil, &repository.CapacityError{Current: len(roster), Max: maxMentees}
	}
	for i, id := range menteeIDs {
		link := models.MentorMenteeLink{MentorID: mentorID, MenteeID: id, PhaseID: phaseID, Position: len(roster) + i}
		s.links = append(s.links, link)
		roster = append(roster, link)
	}
	return roster, nil
}

func newMentorshipFixture() (*MentorshipService, *mentorshipRepoStub, *recordingAudit) {
	repo := &mentorshipRepoStub{}
	audit := &recordingAudit{}
	users := newStubUsers(
		models.User{ID: "mentor-1", Role: models.RoleMentor, Active: true},
		models.User{ID: "mentor-2", Role: models.RoleMentor, Active: true},
		models.User{ID: "mentee-1", Role: models.RoleMentee, Active: true},
		models.User{ID: "mentee-2", Role: models.RoleMentee, Active: true},
		models.User{ID: "mentee-3", Role: models.RoleMentee, Active: true},
		models.User{ID: "mentee-4", Role: models.RoleMentee, Active: true},
		models.User{ID: "mentee-off", Role: models.RoleMentee, Active: false},
	)
	svc := NewMentorshipService(repo, users, stubPhases{active: &models.Phase{ID: "phase-1"}}, audit, nil, nil, nil, 3)
	return svc, repo, audit
}

func TestMentorshipServiceAssign(t *testing.T) {
	svc, _, audit := newMentorshipFixture()

	assignment, err := svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{
		MentorUserID:  "mentor-1",
		MenteeUserIDs: []string{"mentee-2", "mentee-1"},
		PhaseID:       "phase-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"mentee-2", "mentee-1"}, assignment.MenteeIDs)
	assert.Equal(t, "phase-1", assignment.PhaseID)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditActionMentorshipAssign, audit.entries[0].Action)

	appended, err := svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-3"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"mentee-2", "mentee-1", "mentee-3"}, appended.MenteeIDs)
}

func TestMentorshipServiceAssignEnforcesCapacity(t *testing.T) {
	svc, _, _ := newMentorshipFixture()

	_, err := svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1", "mentee-2", "mentee-3", "mentee-4"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1", "mentee-2"}})
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-3", "mentee-4"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestMentorshipServiceConcurrentAssignKeepsCapacity(t *testing.T) {
	svc, repo, _ := newMentorshipFixture()
	repo.checked = &sync.WaitGroup{}
	repo.checked.Add(2)

	batches := [][]string{{"mentee-1", "mentee-2"}, {"mentee-3", "mentee-4"}}
	errs := make([]error, len(batches))
	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			_, errs[i] = svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: batch})
		}(i, batch)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, appErrors.ErrValidation)
			failed++
		}
	}
	assert.Equal(t, 1, failed)
	roster, err := repo.ListByMentor(context.Background(), "mentor-1", "phase-1")
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestMentorshipServiceAssignRejectsSecondMentor(t *testing.T) {
	svc, _, _ := newMentorshipFixture()

	_, err := svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1"}})
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-2", MenteeUserIDs: []string{"mentee-1"}})
	require.ErrorIs(t, err, appErrors.ErrConflict)
}

func TestMentorshipServiceAssignValidation(t *testing.T) {
	svc, repo, _ := newMentorshipFixture()
	ctx := context.Background()

	_, err := svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1"}, PhaseID: "phase-old"})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1", "mentee-1"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentee-2", MenteeUserIDs: []string{"mentee-1"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-off"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"ghost"}})
	require.ErrorIs(t, err, appErrors.ErrNotFound)

	repo.createErr = repository.ErrDuplicate
	_, err = svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1"}})
	require.ErrorIs(t, err, appErrors.ErrConflict)
}

func TestMentorshipServiceAssignWithoutActivePhase(t *testing.T) {
	users := newStubUsers(models.User{ID: "mentor-1", Role: models.RoleMentor, Active: true})
	svc := NewMentorshipService(&mentorshipRepoStub{}, users, stubPhases{err: appErrors.ErrNoActivePhase}, nil, nil, nil, nil, 0)

	_, err := svc.Assign(context.Background(), adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1"}})
	require.ErrorIs(t, err, appErrors.ErrNoActivePhase)
}

func TestMentorshipServiceLookups(t *testing.T) {
	svc, _, _ := newMentorshipFixture()
	ctx := context.Background()
	_, err := svc.Assign(ctx, adminClaims(), dto.AssignMentorRequest{MentorUserID: "mentor-1", MenteeUserIDs: []string{"mentee-1", "mentee-2"}})
	require.NoError(t, err)

	byMentee, err := svc.GetByMentee(ctx, "mentee-2", "")
	require.NoError(t, err)
	assert.Equal(t, "mentor-1", byMentee.MentorID)
	assert.Equal(t, []string{"mentee-1", "mentee-2"}, byMentee.MenteeIDs)

	_, err = svc.GetByMentee(ctx, "mentee-3", "")
	require.ErrorIs(t, err, appErrors.ErrNotFound)

	empty, err := svc.GetByMentor(ctx, "mentor-2", "")
	require.NoError(t, err)
	assert.Empty(t, empty.MenteeIDs)
}

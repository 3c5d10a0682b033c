package service

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/repository"
)

type memStatusStore struct {
	mu      sync.Mutex
	records []*models.MeetingStatus
	history []models.MeetingStatus
}

func (m *memStatusStore) FindByID(ctx context.Context, id string) (*models.MeetingStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStatusStore) List(ctx context.Context, filter models.MeetingStatusFilter) ([]models.MeetingStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MeetingStatus
	for _, r := range m.records {
		if len(filter.MeetingIDs) > 0 && !containsID(filter.MeetingIDs, r.MeetingID) {
			continue
		}
		if filter.MenteeID != "" && r.MenteeID != filter.MenteeID {
			continue
		}
		if filter.MentorID != "" && r.MentorID != filter.MentorID {
			continue
		}
		if filter.Approval != "" && r.Approval != filter.Approval {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memStatusStore) SubmitBatch(ctx context.Context, statuses []*models.MeetingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range statuses {
		if existing := m.pair(st.MeetingID, st.MenteeID); existing != nil && existing.Approval != models.ApprovalRejected {
			return repository.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	for _, st := range statuses {
		m.archiveRejected(st.MeetingID, st.MenteeID)
		st.Approval = models.ApprovalPending
		st.ReviewedBy = nil
		st.ReviewedAt = nil
		st.UpdatedAt = now
		st.ID = uuid.NewString()
		st.CreatedAt = now
		cp := *st
		m.records = append(m.records, &cp)
	}
	return nil
}

func (m *memStatusStore) Resolve(ctx context.Context, id string, approval models.ApprovalState, reviewer string, reviewedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id && r.Approval == models.ApprovalPending {
			r.Approval = approval
			r.ReviewedBy = &reviewer
			r.ReviewedAt = &reviewedAt
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStatusStore) archiveRejected(meetingID, menteeID string) {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.MeetingID == meetingID && r.MenteeID == menteeID && r.Approval == models.ApprovalRejected {
			m.history = append(m.history, *r)
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
}

func (m *memStatusStore) pair(meetingID, menteeID string) *models.MeetingStatus {
	for _, r := range m.records {
		if r.MeetingID == meetingID && r.MenteeID == menteeID {
			return r
		}
	}
	return nil
}

type memMeetingStore struct {
	mu       sync.Mutex
	statuses *memStatusStore
	meetings []*models.ScheduledMeeting
	details  map[string]*models.MeetingDateDetail
	// forceNoRows makes UpdateDate lose a race against a concurrent approval.
	forceNoRows bool
}

func newMemMeetingStore(statuses *memStatusStore) *memMeetingStore {
	return &memMeetingStore{statuses: statuses, details: map[string]*models.MeetingDateDetail{}}
}

func (m *memMeetingStore) Create(ctx context.Context, meeting *models.ScheduledMeeting, dates []time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	meeting.ID = uuid.NewString()
	for i, d := range dates {
		entry := models.MeetingDateEntry{
			ID:                 uuid.NewString(),
			ScheduledMeetingID: meeting.ID,
			MeetingID:          uuid.NewString(),
			MeetingDate:        d,
			MeetingTime:        meeting.MeetingTime,
			Position:           i,
		}
		meeting.Dates = append(meeting.Dates, entry)
		m.details[entry.MeetingID] = &models.MeetingDateDetail{
			MeetingDateEntry: entry,
			MentorID:         meeting.MentorID,
			PhaseID:          meeting.PhaseID,
			MenteeIDs:        append([]string(nil), meeting.MenteeIDs...),
		}
	}
	m.meetings = append(m.meetings, meeting)
	return nil
}

func (m *memMeetingStore) List(ctx context.Context, filter models.MeetingFilter) ([]models.ScheduledMeeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScheduledMeeting
	for _, meeting := range m.meetings {
		if filter.MentorID != "" && meeting.MentorID != filter.MentorID {
			continue
		}
		if filter.MenteeID != "" && !containsID(meeting.MenteeIDs, filter.MenteeID) {
			continue
		}
		cp := *meeting
		cp.Dates = append([]models.MeetingDateEntry(nil), meeting.Dates...)
		out = append(out, cp)
	}
	return out, nil
}

func (m *memMeetingStore) ListDateDetails(ctx context.Context, filter models.MeetingFilter) ([]models.MeetingDateDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MeetingDateDetail
	for _, meeting := range m.meetings {
		if filter.MentorID != "" && meeting.MentorID != filter.MentorID {
			continue
		}
		for _, entry := range meeting.Dates {
			out = append(out, *m.details[entry.MeetingID])
		}
	}
	return out, nil
}

func (m *memMeetingStore) FindDateByMeetingID(ctx context.Context, meetingID string) (*models.MeetingDateDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	detail, ok := m.details[meetingID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *detail
	return &cp, nil
}

func (m *memMeetingStore) UpdateDate(ctx context.Context, meetingID string, day time.Time, meetingTime string) error {
	statuses, _ := m.statuses.List(ctx, models.MeetingStatusFilter{MeetingIDs: []string{meetingID}})
	m.mu.Lock()
	defer m.mu.Unlock()
	detail, ok := m.details[meetingID]
	if !ok || m.forceNoRows || IsLocked(statuses) {
		return sql.ErrNoRows
	}
	detail.MeetingDate = day
	detail.MeetingTime = meetingTime
	return nil
}

type stubPhases struct {
	active *models.Phase
	err    error
}

func (s stubPhases) Active(ctx context.Context) (*models.Phase, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.active, nil
}

func (s stubPhases) Resolve(ctx context.Context, phaseID string) (*models.Phase, error) {
	if phaseID == "" || (s.active != nil && phaseID == s.active.ID) {
		return s.Active(ctx)
	}
	return &models.Phase{ID: phaseID}, nil
}

type stubUsers struct {
	users map[string]models.User
}

func newStubUsers(users ...models.User) *stubUsers {
	s := &stubUsers{users: map[string]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (s *stubUsers) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

type recordingAudit struct {
	entries []*models.AuditLog
}

func (r *recordingAudit) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	r.entries = append(r.entries, log)
	return nil
}

type recordingCache struct {
	invalidated []string
}

func (r *recordingCache) Invalidate(ctx context.Context, pattern string) error {
	r.invalidated = append(r.invalidated, pattern)
	return nil
}

type sentNotification struct {
	userIDs []string
	kind    models.NotificationKind
	ref     string
}

type recordingNotifier struct {
	sent []sentNotification
}

func (r *recordingNotifier) Notify(ctx context.Context, userIDs []string, kind models.NotificationKind, message, referenceID string) {
	r.sent = append(r.sent, sentNotification{userIDs: userIDs, kind: kind, ref: referenceID})
}

func mentorClaims(id string) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Role: models.RoleMentor, Email: id + "@alumni.test", FullName: "Mentor " + id}
}

func menteeClaims(id string) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Role: models.RoleMentee, Email: id + "@alumni.test", FullName: "Mentee " + id}
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin, Email: "admin@alumni.test"}
}

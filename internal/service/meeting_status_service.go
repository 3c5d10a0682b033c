package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/repository"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type meetingStatusRepository interface {
	FindByID(ctx context.Context, id string) (*models.MeetingStatus, error)
	List(ctx context.Context, filter models.MeetingStatusFilter) ([]models.MeetingStatus, error)
	SubmitBatch(ctx context.Context, statuses []*models.MeetingStatus) error
	Resolve(ctx context.Context, id string, approval models.ApprovalState, reviewer string, reviewedAt time.Time) error
}

type meetingOccurrenceReader interface {
	FindDateByMeetingID(ctx context.Context, meetingID string) (*models.MeetingDateDetail, error)
}

type userByEmailReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// MeetingStatusServiceParams groups constructor dependencies.
type MeetingStatusServiceParams struct {
	Statuses  meetingStatusRepository
	Meetings  meetingOccurrenceReader
	Users     userByEmailReader
	Audit     auditWriter
	Cache     cacheInvalidator
	Notifier  notifier
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
}

// MeetingStatusService runs the submit and approve/reject workflow.
type MeetingStatusService struct {
	statuses  meetingStatusRepository
	meetings  meetingOccurrenceReader
	users     userByEmailReader
	audit     auditWriter
	cache     cacheInvalidator
	notifier  notifier
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMeetingStatusService constructs the service.
func NewMeetingStatusService(params MeetingStatusServiceParams) *MeetingStatusService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingStatusService{
		statuses:  params.Statuses,
		meetings:  params.Meetings,
		users:     params.Users,
		audit:     params.Audit,
		cache:     params.Cache,
		notifier:  params.Notifier,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit records a status for each listed mentee of a meeting occurrence.
func (s *MeetingStatusService) Submit(ctx context.Context, actor *models.JWTClaims, req dto.SubmitStatusRequest) ([]models.MeetingStatus, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}
	if actor.Role != models.RoleMentor && actor.Role != models.RoleMentee {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only mentors and mentees submit meeting statuses")
	}
	minutes, reason, err := statusDetails(req)
	if err != nil {
		return nil, err
	}
	menteeIDs, dup := uniqueIDs(req.MenteeIDs)
	if dup != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("mentee %s listed more than once", dup))
	}

	detail, err := s.meetings.FindDateByMeetingID(ctx, req.MeetingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting")
	}
	if req.PhaseID != "" && req.PhaseID != detail.PhaseID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "phaseId does not match the meeting's phase")
	}

	mentor, err := s.users.FindByEmail(ctx, req.MentorEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "mentor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mentor")
	}
	if mentor.ID != detail.MentorID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "mentorEmail does not belong to the meeting's mentor")
	}

	switch actor.Role {
	case models.RoleMentor:
		if actor.UserID != detail.MentorID {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "only the meeting's mentor can submit on its behalf")
		}
	case models.RoleMentee:
		if len(menteeIDs) != 1 || menteeIDs[0] != actor.UserID {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "mentees can only submit their own status")
		}
	}
	for _, id := range menteeIDs {
		if !containsID(detail.MenteeIDs, id) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("mentee %s does not belong to this meeting", id))
		}
	}

	records := make([]*models.MeetingStatus, 0, len(menteeIDs))
	for _, id := range menteeIDs {
		records = append(records, &models.MeetingStatus{
			MeetingID:       detail.MeetingID,
			MenteeID:        id,
			MentorID:        detail.MentorID,
			Status:          req.Status,
			MeetingMinutes:  minutes,
			PostponedReason: reason,
			Approval:        models.ApprovalPending,
			SubmittedBy:     actor.UserID,
			SubmittedRole:   actor.Role,
			PhaseID:         detail.PhaseID,
		})
	}
	if err := s.statuses.SubmitBatch(ctx, records); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.metrics.RecordWorkflowEvent(EventStatusConflict)
			return nil, appErrors.Clone(appErrors.ErrConflict, "a status for this meeting and mentee is already pending or approved")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save meeting status")
	}

	out := make([]models.MeetingStatus, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
		writeAudit(ctx, s.audit, s.logger, actor, models.AuditActionStatusSubmit, "meeting_status", record.ID, nil, record)
		s.metrics.RecordWorkflowEvent(EventStatusSubmitted)
	}
	invalidateDashboards(ctx, s.cache, s.logger)

	if s.notifier != nil {
		recipients := menteeIDs
		if actor.Role == models.RoleMentee {
			recipients = []string{detail.MentorID}
		}
		s.notifier.Notify(ctx, recipients, models.NotificationStatusSubmitted,
			fmt.Sprintf("%s marked the meeting on %s as %s; your review is required", actor.FullName, dto.FormatDate(detail.MeetingDate), req.Status),
			detail.MeetingID)
	}
	return out, nil
}

// Resolve approves or rejects a Pending status. Only the counterpart of the
// submitter may act, and a record resolves exactly once.
func (s *MeetingStatusService) Resolve(ctx context.Context, actor *models.JWTClaims, req dto.ApproveRejectRequest) (*models.MeetingStatus, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid approval payload")
	}
	if req.Action != models.ApprovalApproved && req.Action != models.ApprovalRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "action must be Approved or Rejected")
	}

	record, err := s.statuses.FindByID(ctx, req.StatusID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "meeting status not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting status")
	}
	if !isCounterpart(actor, record) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the counterpart of the submitter can review this status")
	}
	if record.Approval != models.ApprovalPending {
		s.metrics.RecordWorkflowEvent(EventStatusConflict)
		return nil, appErrors.ErrAlreadyResolved
	}

	reviewedAt := s.now().UTC()
	if err := s.statuses.Resolve(ctx, record.ID, req.Action, actor.UserID, reviewedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.RecordWorkflowEvent(EventStatusConflict)
			return nil, appErrors.ErrAlreadyResolved
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve meeting status")
	}

	previous := record.Approval
	reviewer := actor.UserID
	record.Approval = req.Action
	record.ReviewedBy = &reviewer
	record.ReviewedAt = &reviewedAt
	record.UpdatedAt = reviewedAt

	writeAudit(ctx, s.audit, s.logger, actor, models.AuditActionStatusResolve, "meeting_status", record.ID,
		map[string]string{"approval": string(previous)}, map[string]string{"approval": string(record.Approval)})
	invalidateDashboards(ctx, s.cache, s.logger)
	if record.Approval == models.ApprovalApproved {
		s.metrics.RecordWorkflowEvent(EventStatusApproved)
	} else {
		s.metrics.RecordWorkflowEvent(EventStatusRejected)
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, []string{record.SubmittedBy}, models.NotificationStatusResolved,
			fmt.Sprintf("Your %s status was %s", strings.ToLower(string(record.Status)), strings.ToLower(string(record.Approval))),
			record.MeetingID)
	}
	return record, nil
}

// List returns status records visible to the caller. Mentors see their own
// meetings, mentees their own records, admins everything.
func (s *MeetingStatusService) List(ctx context.Context, actor *models.JWTClaims, query dto.MeetingStatusQuery) ([]models.MeetingStatus, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	filter := models.MeetingStatusFilter{
		MenteeID: query.MenteeID,
		MentorID: query.MentorID,
		PhaseID:  query.PhaseID,
		Approval: query.Approval,
	}
	if query.MeetingID != "" {
		filter.MeetingIDs = []string{query.MeetingID}
	}
	switch actor.Role {
	case models.RoleMentor:
		filter.MentorID = actor.UserID
	case models.RoleMentee:
		filter.MenteeID = actor.UserID
	}
	if filter.Approval != "" && filter.Approval != models.ApprovalPending &&
		filter.Approval != models.ApprovalApproved && filter.Approval != models.ApprovalRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "approval must be Pending, Approved or Rejected")
	}

	statuses, err := s.statuses.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list meeting statuses")
	}
	if statuses == nil {
		statuses = []models.MeetingStatus{}
	}
	return statuses, nil
}

func isCounterpart(actor *models.JWTClaims, record *models.MeetingStatus) bool {
	switch record.SubmittedRole {
	case models.RoleMentor:
		return actor.Role == models.RoleMentee && actor.UserID == record.MenteeID
	case models.RoleMentee:
		return actor.Role == models.RoleMentor && actor.UserID == record.MentorID
	}
	return false
}

// statusDetails checks the per-status requirements and returns the optional texts.
func statusDetails(req dto.SubmitStatusRequest) (*string, *string, error) {
	minutes := strings.TrimSpace(req.MeetingMinutes)
	reason := strings.TrimSpace(req.PostponedReason)
	switch req.Status {
	case models.MeetingStatusCompleted:
		if minutes == "" {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "meetingMinutes are required for a completed meeting")
		}
		return &minutes, nil, nil
	case models.MeetingStatusPostponed:
		if reason == "" {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "postponedReason is required for a postponed meeting")
		}
		return nil, &reason, nil
	case models.MeetingStatusCancelled:
		if minutes != "" {
			return &minutes, nil, nil
		}
		return nil, nil, nil
	}
	return nil, nil, appErrors.Clone(appErrors.ErrValidation, "status must be Completed, Postponed or Cancelled")
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type meetingRepository interface {
	Create(ctx context.Context, meeting *models.ScheduledMeeting, dates []time.Time) error
	List(ctx context.Context, filter models.MeetingFilter) ([]models.ScheduledMeeting, error)
	FindDateByMeetingID(ctx context.Context, meetingID string) (*models.MeetingDateDetail, error)
	UpdateDate(ctx context.Context, meetingID string, day time.Time, meetingTime string) error
}

type statusLister interface {
	List(ctx context.Context, filter models.MeetingStatusFilter) ([]models.MeetingStatus, error)
}

type mentorshipLister interface {
	ListByMentor(ctx context.Context, mentorID, phaseID string) ([]models.MentorMenteeLink, error)
}

// MeetingServiceParams groups constructor dependencies.
type MeetingServiceParams struct {
	Meetings   meetingRepository
	Statuses   statusLister
	Mentorship mentorshipLister
	Phases     phaseResolver
	Audit      auditWriter
	Cache      cacheInvalidator
	Notifier   notifier
	Metrics    *MetricsService
	Validator  *validator.Validate
	Logger     *zap.Logger
}

// MeetingService schedules meeting series and guards date edits.
type MeetingService struct {
	meetings   meetingRepository
	statuses   statusLister
	mentorship mentorshipLister
	phases     phaseResolver
	audit      auditWriter
	cache      cacheInvalidator
	notifier   notifier
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewMeetingService constructs the service.
func NewMeetingService(params MeetingServiceParams) *MeetingService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{
		meetings:   params.Meetings,
		statuses:   params.Statuses,
		mentorship: params.Mentorship,
		phases:     params.Phases,
		audit:      params.Audit,
		cache:      params.Cache,
		notifier:   params.Notifier,
		metrics:    params.Metrics,
		validator:  validate,
		logger:     logger,
	}
}

// PreviewDates runs the generator without persisting anything.
func (s *MeetingService) PreviewDates(req dto.PreviewDatesRequest) (*dto.PreviewDatesResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preview payload")
	}
	plan, err := planFromRange(req.CommencementDate, req.EndDate, req.PreferredDay, req.NumberOfMeetings, nil)
	if err != nil {
		return nil, err
	}
	resp := &dto.PreviewDatesResponse{Dates: make([]string, 0, len(plan.Dates)), Shortfall: plan.Shortfall}
	for _, d := range plan.Dates {
		resp.Dates = append(resp.Dates, dto.FormatDate(d))
	}
	return resp, nil
}

// Schedule creates a meeting series for a mentor and assigned mentees.
func (s *MeetingService) Schedule(ctx context.Context, actor *models.JWTClaims, req dto.ScheduleMeetingRequest) (*models.ScheduledMeeting, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	if actor.Role != models.RoleAdmin && !(actor.Role == models.RoleMentor && actor.UserID == req.MentorUserID) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the mentor or an admin can schedule meetings")
	}
	meetingTime, err := normalizeClock(req.MeetingTime)
	if err != nil {
		return nil, err
	}
	menteeIDs, dup := uniqueIDs(req.MenteeUserIDs)
	if dup != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("mentee %s listed more than once", dup))
	}

	phase, err := s.phases.Resolve(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}

	links, err := s.mentorship.ListByMentor(ctx, req.MentorUserID, phase.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mentor assignment")
	}
	assigned := models.AssignmentFromLinks(req.MentorUserID, phase.ID, links)
	for _, id := range menteeIDs {
		if !containsID(assigned.MenteeIDs, id) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("mentee %s is not assigned to this mentor in the phase", id))
		}
	}

	dates, err := s.resolveDates(req)
	if err != nil {
		return nil, err
	}

	meeting := &models.ScheduledMeeting{
		MentorID:         req.MentorUserID,
		MeetingTime:      meetingTime,
		DurationMinutes:  req.DurationMinutes,
		Platform:         req.Platform,
		MeetingLink:      req.MeetingLink,
		Agenda:           req.Agenda,
		PreferredDay:     req.PreferredDay,
		NumberOfMeetings: req.NumberOfMeetings,
		PhaseID:          phase.ID,
		MenteeIDs:        menteeIDs,
	}
	if err := s.meetings.Create(ctx, meeting, dates); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule meeting")
	}
	for i := range meeting.Dates {
		annotateEntry(&meeting.Dates[i], nil)
	}

	writeAudit(ctx, s.audit, s.logger, actor, models.AuditActionMeetingSchedule, "meeting", meeting.ID, nil, meeting)
	invalidateDashboards(ctx, s.cache, s.logger)
	s.metrics.RecordWorkflowEvent(EventMeetingScheduled)
	s.logger.Info("meeting scheduled", zap.String("meeting_id", meeting.ID), zap.String("mentor_id", meeting.MentorID), zap.Int("dates", len(meeting.Dates)))
	return meeting, nil
}

// ListByMentor returns the mentor's meetings with lock state per date.
func (s *MeetingService) ListByMentor(ctx context.Context, mentorID, phaseID string) ([]models.ScheduledMeeting, error) {
	return s.list(ctx, models.MeetingFilter{MentorID: mentorID, PhaseID: phaseID})
}

// ListByMentee returns meetings the mentee participates in.
func (s *MeetingService) ListByMentee(ctx context.Context, menteeID, phaseID string) ([]models.ScheduledMeeting, error) {
	return s.list(ctx, models.MeetingFilter{MenteeID: menteeID, PhaseID: phaseID})
}

// Get returns a single meeting occurrence with its lock state.
func (s *MeetingService) Get(ctx context.Context, meetingID string) (*models.MeetingDateDetail, error) {
	detail, statuses, err := s.loadOccurrence(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	annotateEntry(&detail.MeetingDateEntry, statuses)
	return detail, nil
}

// UpdateDate moves an occurrence to a new date and time unless it is locked.
func (s *MeetingService) UpdateDate(ctx context.Context, actor *models.JWTClaims, meetingID string, req dto.UpdateMeetingRequest) (*models.MeetingDateDetail, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting update payload")
	}
	day, err := dto.ParseDate(req.MeetingDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting_date")
	}
	meetingTime, err := normalizeClock(req.MeetingTime)
	if err != nil {
		return nil, err
	}

	detail, statuses, err := s.loadOccurrence(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.UserID != detail.MentorID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the meeting's mentor or an admin can edit it")
	}
	if IsLocked(statuses) {
		s.metrics.RecordWorkflowEvent(EventMeetingEditLocked)
		return nil, appErrors.ErrMeetingLocked
	}

	before := map[string]string{"meeting_date": dto.FormatDate(detail.MeetingDate), "meeting_time": detail.MeetingTime}
	if err := s.meetings.UpdateDate(ctx, meetingID, day, meetingTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.RecordWorkflowEvent(EventMeetingEditLocked)
			return nil, appErrors.ErrMeetingLocked
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update meeting")
	}
	detail.MeetingDate = day
	detail.MeetingTime = meetingTime
	detail.UpdatedAt = time.Now().UTC()
	annotateEntry(&detail.MeetingDateEntry, statuses)

	after := map[string]string{"meeting_date": dto.FormatDate(day), "meeting_time": meetingTime}
	writeAudit(ctx, s.audit, s.logger, actor, models.AuditActionMeetingReschedule, "meeting_date", meetingID, before, after)
	invalidateDashboards(ctx, s.cache, s.logger)
	s.metrics.RecordWorkflowEvent(EventMeetingRescheduled)
	if s.notifier != nil {
		s.notifier.Notify(ctx, detail.MenteeIDs, models.NotificationMeetingUpdated,
			fmt.Sprintf("Meeting moved to %s at %s", after["meeting_date"], meetingTime), meetingID)
	}
	return detail, nil
}

func (s *MeetingService) list(ctx context.Context, filter models.MeetingFilter) ([]models.ScheduledMeeting, error) {
	meetings, err := s.meetings.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list meetings")
	}
	ids := make([]string, 0)
	for _, meeting := range meetings {
		for _, entry := range meeting.Dates {
			ids = append(ids, entry.MeetingID)
		}
	}
	grouped := map[string][]models.MeetingStatus{}
	if len(ids) > 0 {
		statuses, err := s.statuses.List(ctx, models.MeetingStatusFilter{MeetingIDs: ids})
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting statuses")
		}
		grouped = groupStatusesByMeeting(statuses)
	}
	for i := range meetings {
		for j := range meetings[i].Dates {
			annotateEntry(&meetings[i].Dates[j], grouped[meetings[i].Dates[j].MeetingID])
		}
	}
	if meetings == nil {
		meetings = []models.ScheduledMeeting{}
	}
	return meetings, nil
}

func (s *MeetingService) loadOccurrence(ctx context.Context, meetingID string) (*models.MeetingDateDetail, []models.MeetingStatus, error) {
	detail, err := s.meetings.FindDateByMeetingID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting")
	}
	statuses, err := s.statuses.List(ctx, models.MeetingStatusFilter{MeetingIDs: []string{meetingID}})
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting statuses")
	}
	return detail, statuses, nil
}

// resolveDates uses explicit dates when given, otherwise plans them from the range.
func (s *MeetingService) resolveDates(req dto.ScheduleMeetingRequest) ([]time.Time, error) {
	if len(req.MeetingDates) > 0 {
		dates, err := dto.ParseDates(req.MeetingDates)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting_dates")
		}
		if len(dates) != req.NumberOfMeetings {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("expected %d meeting_dates, got %d", req.NumberOfMeetings, len(dates)))
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		for i := 1; i < len(dates); i++ {
			if dates[i].Equal(dates[i-1]) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "meeting_dates must be distinct")
			}
		}
		return dates, nil
	}

	if req.CommencementDate == "" || req.EndDate == "" || req.PreferredDay == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "meeting_dates or commencement_date, end_date and preferred_day are required")
	}
	custom, err := dto.ParseDates(req.CustomDates)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid custom_dates")
	}
	plan, err := planFromRange(req.CommencementDate, req.EndDate, req.PreferredDay, req.NumberOfMeetings, custom)
	if err != nil {
		return nil, err
	}
	if plan.Shortfall > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%d more custom_dates required to reach %d meetings", plan.Shortfall, req.NumberOfMeetings))
	}
	return plan.Dates, nil
}

func planFromRange(commencementRaw, endRaw, weekdayRaw string, count int, custom []time.Time) (MeetingDatePlan, error) {
	commencement, err := dto.ParseDate(commencementRaw)
	if err != nil {
		return MeetingDatePlan{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid commencement_date")
	}
	end, err := dto.ParseDate(endRaw)
	if err != nil {
		return MeetingDatePlan{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid end_date")
	}
	if !end.After(commencement) {
		return MeetingDatePlan{}, appErrors.Clone(appErrors.ErrValidation, "end_date must be after commencement_date")
	}
	weekday, err := ParseWeekday(weekdayRaw)
	if err != nil {
		return MeetingDatePlan{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preferred_day")
	}
	if count < 1 {
		return MeetingDatePlan{}, appErrors.Clone(appErrors.ErrValidation, "number_of_meetings must be at least 1")
	}
	return PlanMeetingDates(commencement, end, weekday, count, custom), nil
}

// normalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM.
func normalizeClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", appErrors.Clone(appErrors.ErrValidation, "meeting_time must be HH:MM")
}

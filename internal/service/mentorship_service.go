package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/repository"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type mentorshipRepository interface {
	ListByMentor(ctx context.Context, mentorID, phaseID string) ([]models.MentorMenteeLink, error)
	ListByMentees(ctx context.Context, menteeIDs []string, phaseID string) ([]models.MentorMenteeLink, error)
	CreateLinks(ctx context.Context, mentorID, phaseID string, menteeIDs []string, maxMentees int) ([]models.MentorMenteeLink, error)
}

type userDirectory interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

type phaseResolver interface {
	Active(ctx context.Context) (*models.Phase, error)
	Resolve(ctx context.Context, phaseID string) (*models.Phase, error)
}

// MentorshipService binds mentors to mentees within the active phase.
type MentorshipService struct {
	repo       mentorshipRepository
	users      userDirectory
	phases     phaseResolver
	audit      auditWriter
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
	maxMentees int
}

// NewMentorshipService constructs the service.
func NewMentorshipService(repo mentorshipRepository, users userDirectory, phases phaseResolver, audit auditWriter, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, maxMentees int) *MentorshipService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxMentees <= 0 {
		maxMentees = 3
	}
	return &MentorshipService{
		repo:       repo,
		users:      users,
		phases:     phases,
		audit:      audit,
		metrics:    metrics,
		validator:  validate,
		logger:     logger,
		maxMentees: maxMentees,
	}
}

// Assign adds mentees to a mentor for the active phase.
func (s *MentorshipService) Assign(ctx context.Context, actor *models.JWTClaims, req dto.AssignMentorRequest) (*models.MentorshipAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	mentorID := strings.TrimSpace(req.MentorUserID)
	menteeIDs, dup := uniqueIDs(req.MenteeUserIDs)
	if dup != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("mentee %s listed more than once", dup))
	}
	if containsID(menteeIDs, mentorID) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a mentor cannot mentor themself")
	}
	if len(menteeIDs) > s.maxMentees {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("a mentor can have at most %d mentees per phase", s.maxMentees))
	}

	phase, err := s.phases.Active(ctx)
	if err != nil {
		return nil, err
	}
	if req.PhaseID != "" && req.PhaseID != phase.ID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "phaseId does not match the active phase")
	}

	if err := s.checkParticipants(ctx, mentorID, menteeIDs); err != nil {
		return nil, err
	}

	taken, err := s.repo.ListByMentees(ctx, menteeIDs, phase.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing assignments")
	}
	if len(taken) > 0 {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("mentee %s is already assigned in this phase", taken[0].MenteeID))
	}

	roster, err := s.repo.CreateLinks(ctx, mentorID, phase.ID, menteeIDs, s.maxMentees)
	if err != nil {
		var full *repository.CapacityError
		switch {
		case errors.As(err, &full):
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("mentor already has %d mentees; at most %d allowed per phase", full.Current, s.maxMentees))
		case errors.Is(err, repository.ErrDuplicate):
			return nil, appErrors.Clone(appErrors.ErrConflict, "a mentee was assigned concurrently in this phase")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	assignment := models.AssignmentFromLinks(mentorID, phase.ID, roster)
	writeAudit(ctx, s.audit, s.logger, actor, models.AuditActionMentorshipAssign, "mentorship", mentorID, nil, assignment)
	s.metrics.RecordWorkflowEvent(EventMentorshipAssigned)
	s.logger.Info("mentees assigned", zap.String("mentor_id", mentorID), zap.String("phase_id", phase.ID), zap.Int("mentees", len(assignment.MenteeIDs)))
	return assignment, nil
}

// GetByMentor returns the mentor's ordered mentees for a phase (active when empty).
func (s *MentorshipService) GetByMentor(ctx context.Context, mentorID, phaseID string) (*models.MentorshipAssignment, error) {
	phase, err := s.phases.Resolve(ctx, phaseID)
	if err != nil {
		return nil, err
	}
	links, err := s.repo.ListByMentor(ctx, mentorID, phase.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return models.AssignmentFromLinks(mentorID, phase.ID, links), nil
}

// GetByMentee returns the assignment the mentee belongs to for a phase.
func (s *MentorshipService) GetByMentee(ctx context.Context, menteeID, phaseID string) (*models.MentorshipAssignment, error) {
	phase, err := s.phases.Resolve(ctx, phaseID)
	if err != nil {
		return nil, err
	}
	links, err := s.repo.ListByMentees(ctx, []string{menteeID}, phase.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if len(links) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "mentee has no mentor in this phase")
	}
	return s.GetByMentor(ctx, links[0].MentorID, phase.ID)
}

func (s *MentorshipService) checkParticipants(ctx context.Context, mentorID string, menteeIDs []string) error {
	mentor, err := s.users.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "mentor not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mentor")
	}
	if mentor.Role != models.RoleMentor || !mentor.Active {
		return appErrors.Clone(appErrors.ErrValidation, "mentor_user_id must reference an active mentor")
	}

	mentees, err := s.users.FindByIDs(ctx, menteeIDs)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mentees")
	}
	found := make(map[string]models.User, len(mentees))
	for _, mentee := range mentees {
		found[mentee.ID] = mentee
	}
	for _, id := range menteeIDs {
		mentee, ok := found[id]
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("mentee %s not found", id))
		}
		if mentee.Role != models.RoleMentee || !mentee.Active {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("user %s is not an active mentee", id))
		}
	}
	return nil
}

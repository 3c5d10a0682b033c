package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/repository"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type phaseRepository interface {
	List(ctx context.Context) ([]models.Phase, error)
	FindByID(ctx context.Context, id string) (*models.Phase, error)
	FindContaining(ctx context.Context, day time.Time) (*models.Phase, error)
	Create(ctx context.Context, phase *models.Phase) error
}

// PhaseService resolves the program phases scoping mentorship activity.
type PhaseService struct {
	repo      phaseRepository
	validator *validator.Validate
	logger    *zap.Logger
	location  *time.Location
	now       func() time.Time
}

// NewPhaseService constructs the service. Today is evaluated in loc.
func NewPhaseService(repo phaseRepository, validate *validator.Validate, logger *zap.Logger, loc *time.Location) *PhaseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PhaseService{repo: repo, validator: validate, logger: logger, location: loc, now: time.Now}
}

// List returns every phase.
func (s *PhaseService) List(ctx context.Context) ([]models.Phase, error) {
	phases, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list phases")
	}
	if phases == nil {
		phases = []models.Phase{}
	}
	return phases, nil
}

// Active returns the phase whose window contains today.
func (s *PhaseService) Active(ctx context.Context) (*models.Phase, error) {
	today := models.DateOnly(s.now().In(s.location))
	phase, err := s.repo.FindContaining(ctx, today)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNoActivePhase
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve active phase")
	}
	return phase, nil
}

// Resolve returns the named phase, or the active one when phaseID is empty.
func (s *PhaseService) Resolve(ctx context.Context, phaseID string) (*models.Phase, error) {
	if phaseID == "" {
		return s.Active(ctx)
	}
	phase, err := s.repo.FindByID(ctx, phaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "phase not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load phase")
	}
	return phase, nil
}

// Create registers a new phase.
func (s *PhaseService) Create(ctx context.Context, req dto.CreatePhaseRequest) (*models.Phase, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid phase payload")
	}
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid startDate")
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid endDate")
	}
	if !end.After(start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must be after startDate")
	}

	phase := &models.Phase{Name: req.Name, StartDate: start, EndDate: end}
	if err := s.repo.Create(ctx, phase); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "phase already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create phase")
	}
	s.logger.Info("phase created", zap.String("phase_id", phase.ID), zap.String("name", phase.Name))
	return phase, nil
}

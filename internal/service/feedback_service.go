package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type feedbackRepository interface {
	Create(ctx context.Context, feedback *models.ProgramFeedback) error
	List(ctx context.Context, filter models.FeedbackFilter) ([]models.ProgramFeedback, int, error)
	Summary(ctx context.Context, filter models.FeedbackFilter) (*models.FeedbackSummary, error)
}

// FeedbackService collects program feedback surveys.
type FeedbackService struct {
	repo      feedbackRepository
	audit     auditWriter
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedbackService constructs the service.
func NewFeedbackService(repo feedbackRepository, audit auditWriter, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{repo: repo, audit: audit, metrics: metrics, validator: validate, logger: logger}
}

// Submit appends a response attributed to the authenticated caller.
func (s *FeedbackService) Submit(ctx context.Context, actor *models.JWTClaims, req dto.SubmitFeedbackRequest) (*models.ProgramFeedback, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}
	feedback := &models.ProgramFeedback{
		Email:          actor.Email,
		Role:           actor.Role,
		OverallRating:  req.OverallRating,
		MentorRating:   req.MentorRating,
		ContentRating:  req.ContentRating,
		ScheduleRating: req.ScheduleRating,
		Highlights:     req.Highlights,
		Improvements:   req.Improvements,
		Comments:       req.Comments,
	}
	if req.PhaseID != "" {
		phaseID := req.PhaseID
		feedback.PhaseID = &phaseID
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save feedback")
	}
	writeAudit(ctx, s.audit, s.logger, actor, models.AuditActionFeedbackSubmit, "feedback", feedback.ID, nil, nil)
	s.metrics.RecordWorkflowEvent(EventFeedbackSubmitted)
	return feedback, nil
}

// List returns a page of feedback with averages over the whole filter.
func (s *FeedbackService) List(ctx context.Context, filter models.FeedbackFilter) (*dto.FeedbackListResponse, *models.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	summary, err := s.repo.Summary(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to summarize feedback")
	}
	if items == nil {
		items = []models.ProgramFeedback{}
	}
	return &dto.FeedbackListResponse{Items: items, Summary: *summary},
		&models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
	"github.com/noah-isme/alumni-mentorship-api/pkg/jobs"
)

const notificationJobType = "notification.deliver"

type notificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string, ts time.Time) error
}

type jobQueue interface {
	Enqueue(job jobs.Job) error
}

// NotificationService persists in-app notifications off the request path.
type NotificationService struct {
	repo    notificationRepository
	queue   jobQueue
	metrics *MetricsService
	logger  *zap.Logger
}

// NewNotificationService constructs the service. Call AttachQueue before
// Notify to deliver asynchronously; without a queue delivery is synchronous.
func NewNotificationService(repo notificationRepository, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, metrics: metrics, logger: logger}
}

// AttachQueue routes deliveries through queue.
func (s *NotificationService) AttachQueue(queue jobQueue) {
	s.queue = queue
}

// Notify stores one notification per recipient. Failures are logged, never returned.
func (s *NotificationService) Notify(ctx context.Context, userIDs []string, kind models.NotificationKind, message, referenceID string) {
	if s == nil {
		return
	}
	for _, userID := range userIDs {
		n := &models.Notification{
			ID:      uuid.NewString(),
			UserID:  userID,
			Kind:    kind,
			Message: message,
		}
		if referenceID != "" {
			ref := referenceID
			n.ReferenceID = &ref
		}
		if s.queue == nil {
			if err := s.repo.Create(ctx, n); err != nil {
				s.metrics.RecordWorkflowEvent(EventNotificationFailed)
				s.logger.Warn("failed to store notification", zap.String("user_id", userID), zap.Error(err))
			}
			continue
		}
		if err := s.queue.Enqueue(jobs.Job{ID: n.ID, Type: notificationJobType, Payload: n}); err != nil {
			s.metrics.RecordWorkflowEvent(EventNotificationFailed)
			s.logger.Warn("failed to enqueue notification", zap.String("user_id", userID), zap.Error(err))
		}
	}
}

// Deliver is the queue handler persisting a notification job.
func (s *NotificationService) Deliver(ctx context.Context, job jobs.Job) error {
	n, ok := job.Payload.(*models.Notification)
	if !ok {
		return fmt.Errorf("unexpected notification payload %T", job.Payload)
	}
	return s.repo.Create(ctx, n)
}

// List returns the caller's notifications.
func (s *NotificationService) List(ctx context.Context, actor *models.JWTClaims, unreadOnly bool, limit int) ([]models.Notification, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByUser(ctx, actor.UserID, unreadOnly, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	if items == nil {
		items = []models.Notification{}
	}
	return items, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, actor *models.JWTClaims, id string) error {
	if err := requireClaims(actor); err != nil {
		return err
	}
	if err := s.repo.MarkRead(ctx, id, actor.UserID, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update notification")
	}
	return nil
}

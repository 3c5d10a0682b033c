package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/alumni-mentorship-api/api/swagger"
	"github.com/noah-isme/alumni-mentorship-api/internal/handler"
	"github.com/noah-isme/alumni-mentorship-api/internal/repository"
	"github.com/noah-isme/alumni-mentorship-api/internal/router"
	"github.com/noah-isme/alumni-mentorship-api/internal/service"
	"github.com/noah-isme/alumni-mentorship-api/pkg/cache"
	"github.com/noah-isme/alumni-mentorship-api/pkg/config"
	"github.com/noah-isme/alumni-mentorship-api/pkg/database"
	"github.com/noah-isme/alumni-mentorship-api/pkg/jobs"
	"github.com/noah-isme/alumni-mentorship-api/pkg/linktoken"
	"github.com/noah-isme/alumni-mentorship-api/pkg/logger"
)

// @title Alumni Mentorship API
// @version 1.0.0
// @description Mentor assignment, meeting scheduling and status approval workflow
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type dbPinger struct {
	db *sqlx.DB
}

func (p dbPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Dashboard.CacheEnabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
			redisClient = nil
		}
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	phaseRepo := repository.NewPhaseRepository(db)
	mentorshipRepo := repository.NewMentorshipRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	statusRepo := repository.NewMeetingStatusRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, cacheRepo.Enabled())

	notificationSvc := service.NewNotificationService(notificationRepo, metrics, logr)
	queue := jobs.NewQueue("notifications", notificationSvc.Deliver, jobs.QueueConfig{
		Workers:    cfg.Notifications.Workers,
		MaxRetries: cfg.Notifications.MaxRetries,
		RetryDelay: cfg.Notifications.RetryDelay,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()
	notificationSvc.AttachQueue(queue)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	phaseSvc := service.NewPhaseService(phaseRepo, validate, logr, cfg.Mentorship.Location())
	mentorshipSvc := service.NewMentorshipService(mentorshipRepo, userRepo, phaseSvc, userRepo, metrics, validate, logr, cfg.Mentorship.MaxMenteesPerMentor)
	meetingSvc := service.NewMeetingService(service.MeetingServiceParams{
		Meetings:   meetingRepo,
		Statuses:   statusRepo,
		Mentorship: mentorshipRepo,
		Phases:     phaseSvc,
		Audit:      userRepo,
		Cache:      cacheSvc,
		Notifier:   notificationSvc,
		Metrics:    metrics,
		Validator:  validate,
		Logger:     logr,
	})
	statusSvc := service.NewMeetingStatusService(service.MeetingStatusServiceParams{
		Statuses:  statusRepo,
		Meetings:  meetingRepo,
		Users:     userRepo,
		Audit:     userRepo,
		Cache:     cacheSvc,
		Notifier:  notificationSvc,
		Metrics:   metrics,
		Validator: validate,
		Logger:    logr,
	})
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Meetings: meetingRepo,
		Statuses: statusRepo,
		Phases:   phaseSvc,
		Cache:    cacheSvc,
		Logger:   logr,
		Config:   service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})
	feedbackSvc := service.NewFeedbackService(feedbackRepo, userRepo, metrics, validate, logr)
	linkSvc := service.NewLinkService(linktoken.NewSigner(cfg.Links.SigningSecret, cfg.Links.TTL), userRepo, cfg.Links.BaseURL, validate, logr)

	checks := map[string]handler.Pinger{"postgres": dbPinger{db: db}}
	if cacheRepo.Enabled() {
		checks["redis"] = cacheRepo
	}

	engine := router.New(router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Phase:         handler.NewPhaseHandler(phaseSvc),
		Mentorship:    handler.NewMentorshipHandler(mentorshipSvc),
		Meeting:       handler.NewMeetingHandler(meetingSvc),
		MeetingStatus: handler.NewMeetingStatusHandler(statusSvc),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc),
		Feedback:      handler.NewFeedbackHandler(feedbackSvc),
		Link:          handler.NewLinkHandler(linkSvc),
		Notification:  handler.NewNotificationHandler(notificationSvc),
		Metrics:       handler.NewMetricsHandler(metrics, checks),
	}, router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Tokens:         authSvc,
		Audit:          userRepo,
		Metrics:        metrics,
		Logger:         logr,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("failed to shutdown server", zap.Error(err))
	}
	logr.Info("application shutdown completed")
}

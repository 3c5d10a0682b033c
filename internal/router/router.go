package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/handler"
	"github.com/noah-isme/alumni-mentorship-api/internal/middleware"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/service"
	"github.com/noah-isme/alumni-mentorship-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/alumni-mentorship-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/alumni-mentorship-api/pkg/middleware/requestid"
)

// Handlers bundles every HTTP handler mounted by the router.
type Handlers struct {
	Auth          *handler.AuthHandler
	Phase         *handler.PhaseHandler
	Mentorship    *handler.MentorshipHandler
	Meeting       *handler.MeetingHandler
	MeetingStatus *handler.MeetingStatusHandler
	Dashboard     *handler.DashboardHandler
	Feedback      *handler.FeedbackHandler
	Link          *handler.LinkHandler
	Notification  *handler.NotificationHandler
	Metrics       *handler.MetricsHandler
}

// Options carries cross-cutting dependencies.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	Tokens         middleware.TokenValidator
	Audit          middleware.AuditWriter
	Metrics        *service.MetricsService
	Logger         *zap.Logger
}

// New builds the gin engine with the mentorship API routes.
func New(h Handlers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := middleware.RequireRoles(models.RoleAdmin)
	participants := middleware.RequireRoles(models.RoleMentor, models.RoleMentee)

	api := r.Group(opts.APIPrefix)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/links/resolve", h.Link.Resolve)

	secured := api.Group("")
	secured.Use(middleware.JWT(opts.Tokens), middleware.WithResponseMeta())

	secured.GET("/auth/me", h.Auth.Me)

	phase := secured.Group("/phase")
	phase.GET("", h.Phase.List)
	phase.GET("/active", h.Phase.Active)
	phase.POST("", admin, middleware.Audit(opts.Audit, opts.Logger, models.AuditActionPhaseCreate, "phase"), h.Phase.Create)

	mentorship := secured.Group("/mentor-mentee")
	mentorship.POST("/assign", admin, h.Mentorship.Assign)
	mentorship.GET("/mentor/:mentorId", middleware.RBAC(string(models.RoleAdmin), middleware.SelfParam("mentorId")), h.Mentorship.ByMentor)
	mentorship.GET("/mentee/:menteeId", middleware.RBAC(string(models.RoleAdmin), middleware.SelfParam("menteeId")), h.Mentorship.ByMentee)

	meetings := secured.Group("/meetings")
	meetings.POST("/preview-dates", h.Meeting.Preview)
	meetings.POST("/schedule", middleware.RequireRoles(models.RoleAdmin, models.RoleMentor), h.Meeting.Schedule)
	meetings.GET("/mentor/:mentorId", middleware.RBAC(string(models.RoleAdmin), middleware.SelfParam("mentorId")), h.Meeting.ByMentor)
	meetings.GET("/mentee/:menteeId", middleware.RBAC(string(models.RoleAdmin), middleware.SelfParam("menteeId")), h.Meeting.ByMentee)
	meetings.GET("/meeting/:meetingId", h.Meeting.Get)
	meetings.PUT("/meeting/:meetingId", middleware.RequireRoles(models.RoleAdmin, models.RoleMentor), h.Meeting.Update)

	statuses := secured.Group("/meeting-status")
	statuses.POST("/update", participants, h.MeetingStatus.Submit)
	statuses.POST("/approve-reject", participants, h.MeetingStatus.Resolve)
	statuses.GET("/all", h.MeetingStatus.List)

	secured.GET("/dashboard/meetings", h.Dashboard.Meetings)

	secured.POST("/feedback", h.Feedback.Submit)
	secured.GET("/feedback", admin, h.Feedback.List)

	secured.POST("/links", h.Link.Create)

	secured.GET("/notifications", h.Notification.List)
	secured.POST("/notifications/:id/read", h.Notification.MarkRead)

	return r
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/alumni-mentorship-api/internal/handler"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type denyAll struct{}

func (denyAll) ValidateToken(string) (*models.JWTClaims, error) {
	return nil, appErrors.ErrUnauthorized
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handlers{
		Auth:          handler.NewAuthHandler(nil),
		Phase:         handler.NewPhaseHandler(nil),
		Mentorship:    handler.NewMentorshipHandler(nil),
		Meeting:       handler.NewMeetingHandler(nil),
		MeetingStatus: handler.NewMeetingStatusHandler(nil),
		Dashboard:     handler.NewDashboardHandler(nil),
		Feedback:      handler.NewFeedbackHandler(nil),
		Link:          handler.NewLinkHandler(nil),
		Notification:  handler.NewNotificationHandler(nil),
		Metrics:       handler.NewMetricsHandler(nil, nil),
	}
	return New(h, Options{Tokens: denyAll{}})
}

func TestRouterRegistersWorkflowRoutes(t *testing.T) {
	r := newTestEngine()
	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/phase",
		"GET /api/phase/active",
		"POST /api/mentor-mentee/assign",
		"GET /api/mentor-mentee/mentor/:mentorId",
		"GET /api/mentor-mentee/mentee/:menteeId",
		"POST /api/meetings/schedule",
		"POST /api/meetings/preview-dates",
		"GET /api/meetings/mentor/:mentorId",
		"GET /api/meetings/mentee/:menteeId",
		"GET /api/meetings/meeting/:meetingId",
		"PUT /api/meetings/meeting/:meetingId",
		"POST /api/meeting-status/update",
		"POST /api/meeting-status/approve-reject",
		"GET /api/meeting-status/all",
		"GET /api/dashboard/meetings",
		"POST /api/feedback",
		"GET /api/feedback",
		"POST /api/links",
		"GET /api/links/resolve",
		"GET /api/notifications",
		"POST /api/notifications/:id/read",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"GET /health",
		"GET /ready",
		"GET /metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRouterRequiresTokenOnWorkflowRoutes(t *testing.T) {
	r := newTestEngine()

	for _, target := range []struct{ method, path string }{
		{http.MethodPost, "/api/meeting-status/approve-reject"},
		{http.MethodPut, "/api/meetings/meeting/m-1"},
		{http.MethodGet, "/api/dashboard/meetings"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(target.method, target.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target.path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

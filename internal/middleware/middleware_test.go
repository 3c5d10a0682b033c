package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	"github.com/noah-isme/alumni-mentorship-api/internal/service"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type staticValidator struct {
	claims *models.JWTClaims
}

func (v staticValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "good" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return v.claims, nil
}

type auditSink struct {
	logs []*models.AuditLog
}

func (a *auditSink) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	a.logs = append(a.logs, log)
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAndRBAC(t *testing.T) {
	validator := staticValidator{claims: &models.JWTClaims{UserID: "mentor-1", Role: models.RoleMentor}}
	r := gin.New()
	r.GET("/admin", JWT(validator), RequireRoles(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/mentor/:mentorId", JWT(validator), RBAC(string(models.RoleAdmin), SelfParam("mentorId")), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/admin", "").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/admin", "bad").Code)
	assert.Equal(t, http.StatusForbidden, perform(r, http.MethodGet, "/admin", "good").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/mentor/mentor-1", "good").Code)
	assert.Equal(t, http.StatusForbidden, perform(r, http.MethodGet, "/mentor/mentor-2", "good").Code)
}

func TestOptionalJWTNeverBlocks(t *testing.T) {
	validator := staticValidator{claims: &models.JWTClaims{UserID: "mentee-1", Role: models.RoleMentee}}
	r := gin.New()
	r.GET("/open", OptionalJWT(validator), func(c *gin.Context) {
		_, ok := c.Get(ContextUserKey)
		if ok {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodGet, "/open", "bad").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/open", "good").Code)
}

func TestAuditSkipsFailures(t *testing.T) {
	sink := &auditSink{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
		c.Next()
	})
	r.POST("/ok", Audit(sink, nil, models.AuditActionPhaseCreate, "phase"), func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.POST("/fail", Audit(sink, nil, models.AuditActionPhaseCreate, "phase"), func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	perform(r, http.MethodPost, "/ok", "")
	perform(r, http.MethodPost, "/fail", "")
	require.Len(t, sink.logs, 1)
	assert.Equal(t, "admin-1", *sink.logs[0].UserID)
	assert.Equal(t, "phase", sink.logs[0].Resource)
}

func TestResponseMetaRecordsCacheHitAndPhase(t *testing.T) {
	r := gin.New()
	var meta map[string]interface{}
	r.GET("/dash", WithResponseMeta(), func(c *gin.Context) {
		SetCacheHit(c, false)
		SetPhase(c, "phase-1")
		meta = Meta(c)
		c.Status(http.StatusOK)
	})

	perform(r, http.MethodGet, "/dash", "")
	require.NotNil(t, meta)
	assert.Equal(t, false, meta["cache_hit"])
	assert.Equal(t, "phase-1", meta["phase_id"])
	assert.Contains(t, meta, "processing_time_ms")
}

func TestResponseMetaEmptyWithoutMiddleware(t *testing.T) {
	r := gin.New()
	var meta map[string]interface{}
	r.GET("/plain", func(c *gin.Context) {
		meta = Meta(c)
		c.Status(http.StatusOK)
	})

	perform(r, http.MethodGet, "/plain", "")
	assert.Nil(t, meta)
	assert.Nil(t, Meta(nil))
}

func TestMetricsSkipsProbeRoutes(t *testing.T) {
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/meetings/meeting/:meetingId", func(c *gin.Context) { c.Status(http.StatusConflict) })

	perform(r, http.MethodGet, "/health", "")
	perform(r, http.MethodGet, "/api/meetings/meeting/mt-1", "")
	perform(r, http.MethodGet, "/nowhere", "")

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/meetings/meeting/:meetingId",status="409"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="unmatched",status="404"} 1`)
	assert.NotContains(t, body, `path="/health"`)
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "responseMeta"

// ResponseMeta collects envelope metadata while a request is handled.
type ResponseMeta struct {
	started  time.Time
	cacheHit *bool
	phaseID  string
}

// WithResponseMeta starts the request clock used for processing_time_ms.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, &ResponseMeta{started: time.Now()})
		c.Next()
	}
}

// SetCacheHit records whether the payload came from the dashboard cache.
func SetCacheHit(c *gin.Context, hit bool) {
	metaFor(c).cacheHit = &hit
}

// SetPhase records the phase a response was scoped to.
func SetPhase(c *gin.Context, phaseID string) {
	metaFor(c).phaseID = phaseID
}

// Meta renders the collected metadata for the response envelope. It returns
// nil when nothing was recorded.
func Meta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	raw, ok := c.Get(responseMetaKey)
	if !ok {
		return nil
	}
	meta, ok := raw.(*ResponseMeta)
	if !ok {
		return nil
	}
	out := map[string]interface{}{}
	if meta.cacheHit != nil {
		out["cache_hit"] = *meta.cacheHit
	}
	if meta.phaseID != "" {
		out["phase_id"] = meta.phaseID
	}
	if !meta.started.IsZero() {
		out["processing_time_ms"] = time.Since(meta.started).Milliseconds()
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func metaFor(c *gin.Context) *ResponseMeta {
	if raw, ok := c.Get(responseMetaKey); ok {
		if meta, ok := raw.(*ResponseMeta); ok {
			return meta
		}
	}
	meta := &ResponseMeta{}
	c.Set(responseMetaKey, meta)
	return meta
}

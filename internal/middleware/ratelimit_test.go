package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

func newTestContext(t *testing.T, remoteAddr string, identity map[contextKey]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts", nil)
	req.RemoteAddr = remoteAddr
	ctx := req.Context()
	for k, v := range identity {
		ctx = context.WithValue(ctx, k, v)
	}
	c.Request = req.WithContext(ctx)
	return c
}

func TestLimiterKey_PrefersStaffIdentity(t *testing.T) {
	c := newTestContext(t, "203.0.113.7:1234", map[contextKey]string{
		userIDKey:  "user-1",
		orgIDKey:   "org-1",
		staffIDKey: "staff-1",
	})
	assert.Equal(t, "staff:staff-1", limiterKey(c))
}

func TestLimiterKey_OrgTokenWithoutStaff(t *testing.T) {
	c := newTestContext(t, "203.0.113.7:1234", map[contextKey]string{
		userIDKey: "user-1",
		orgIDKey:  "org-1",
	})
	assert.Equal(t, "org:org-1", limiterKey(c))
}

func TestLimiterKey_AnonymousFallsBackToIP(t *testing.T) {
	c := newTestContext(t, "203.0.113.7:1234", nil)
	assert.Equal(t, "ip:203.0.113.7", limiterKey(c))
}

func TestRateLimit_SameStaffLimitedAcrossAddresses(t *testing.T) {
	rate := limiter.Rate{Period: time.Minute, Limit: 1}
	mw := RateLimit(limiter.New(memorystore.NewStore(), rate))
	identity := map[contextKey]string{userIDKey: "user-1", staffIDKey: "staff-1"}

	first := newTestContext(t, "203.0.113.7:1234", identity)
	mw(first)
	require.False(t, first.IsAborted())

	// Same staff member from a different address still hits the same bucket.
	second := newTestContext(t, "198.51.100.9:5678", identity)
	mw(second)
	assert.True(t, second.IsAborted())
	assert.Equal(t, http.StatusTooManyRequests, second.Writer.Status())
}

func TestRateLimit_DistinctStaffHaveDistinctBuckets(t *testing.T) {
	rate := limiter.Rate{Period: time.Minute, Limit: 1}
	mw := RateLimit(limiter.New(memorystore.NewStore(), rate))

	first := newTestContext(t, "203.0.113.7:1234", map[contextKey]string{staffIDKey: "staff-1"})
	mw(first)
	require.False(t, first.IsAborted())

	second := newTestContext(t, "203.0.113.7:1234", map[contextKey]string{staffIDKey: "staff-2"})
	mw(second)
	assert.False(t, second.IsAborted())
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-web/middleware"
	"food-ordering-web/models"
)

func limitedRouter(rl *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// stand-in for the gate: identity arrives before the limiter runs
	r.Use(func(c *gin.Context) {
		if u := c.GetHeader("X-Test-User"); u != "" {
			c.Set("userID", u)
		}
	})
	r.Use(rl.Handler())
	r.GET("/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func limitedGet(r *gin.Engine, user string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.RemoteAddr = "10.0.0.1:4000" // one NAT, every caller shares the IP
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLimiterKeysAuthenticatedCallersByUser(t *testing.T) {
	r := limitedRouter(middleware.NewRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, limitedGet(r, "u1"))
	assert.Equal(t, http.StatusTooManyRequests, limitedGet(r, "u1"))
	assert.Equal(t, http.StatusOK, limitedGet(r, "u2"),
		"a second user behind the same IP must get its own bucket")
}

func TestLimiterFallsBackToClientIP(t *testing.T) {
	r := limitedRouter(middleware.NewRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, limitedGet(r, ""))
	assert.Equal(t, http.StatusTooManyRequests, limitedGet(r, ""))
}

// The gate must run before the limiter so the admitted user ID is what gets
// keyed; wired the other way round every dashboard request would fall back
// to the shared client IP.
func TestGateBeforeLimiterKeysByAdmittedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := &fakeSessions{user: testUser(models.RoleCustomer)}
	gate := middleware.NewGate(sessions, gateSecret, time.Minute)
	rl := middleware.NewRateLimiter(1, 1)

	r := gin.New()
	r.GET("/dashboard", gate.Require(models.RoleCustomer), rl.Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	get := func(remoteAddr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.RemoteAddr = remoteAddr
		r.ServeHTTP(w, req)
		return w.Code
	}

	// same user from two different addresses shares one bucket, which can
	// only happen if the limiter sees the gate's user ID
	require.Equal(t, http.StatusOK, get("10.0.0.1:4000"))
	assert.Equal(t, http.StatusTooManyRequests, get("10.0.0.2:4000"))
}

package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"food-ordering-web/gateway"
	"food-ordering-web/models"

	"github.com/gin-gonic/gin"
)

// SessionFetcher is the slice of the user gateway the gate depends on
type SessionFetcher interface {
	GetSession(ctx context.Context, auth gateway.AuthContext) gateway.Result[models.UserSession]
}

// RoleHomes maps each role to its dashboard prefix. A session landing on a
// dashboard outside its role is sent home rather than rejected.
var RoleHomes = map[models.UserRole]string{
	models.RoleAdmin:    "/admin-dashboard",
	models.RoleProvider: "/provider-dashboard",
	models.RoleCustomer: "/dashboard",
}

// Gate is the request-time role gate for dashboard areas. Three branches
// only: no session redirects to login with a callback, a role mismatch
// redirects to the caller's own dashboard, anything else passes.
type Gate struct {
	sessions SessionFetcher
	secret   []byte
	tokenTTL time.Duration
}

func NewGate(sessions SessionFetcher, secret []byte, tokenTTL time.Duration) *Gate {
	return &Gate{sessions: sessions, secret: secret, tokenTTL: tokenTTL}
}

// Require gates a route group to one role
func (g *Gate) Require(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Gate-token fast path: a still-valid memoized session skips the
		// remote lookup entirely.
		if tokenStr, err := c.Cookie(GateCookieName); err == nil && tokenStr != "" {
			if claims, err := parseGateToken(tokenStr, g.secret); err == nil {
				g.admit(c, role, claims.Role, claims.UserID, claims.Email)
				return
			}
		}

		res := g.sessions.GetSession(c.Request.Context(), gateway.AuthFromRequest(c.Request))
		if !res.OK() {
			c.Redirect(http.StatusTemporaryRedirect, loginRedirect(c.Request.URL.Path))
			c.Abort()
			return
		}

		user := res.Data.User
		if token, err := GenerateGateToken(&user, g.secret, g.tokenTTL); err == nil {
			c.SetCookie(GateCookieName, token, int(g.tokenTTL.Seconds()), "/", "", false, true)
		}
		g.admit(c, role, user.Role, user.ID, user.Email)
	}
}

func (g *Gate) admit(c *gin.Context, required, actual models.UserRole, userID, email string) {
	if actual != required {
		home, ok := RoleHomes[actual]
		if !ok {
			c.Redirect(http.StatusTemporaryRedirect, loginRedirect(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, home)
		c.Abort()
		return
	}
	c.Set("userID", userID)
	c.Set("email", email)
	c.Set("role", string(actual))
	c.Next()
}

// loginRedirect escapes the requested path into the callback parameter so a
// path carrying query-reserved characters survives the round trip
func loginRedirect(path string) string {
	return "/login?callbackUrl=" + url.QueryEscape(path)
}

// GetUserID extracts the caller's user ID from context
func GetUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString("role"))
}

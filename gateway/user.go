package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"food-ordering-web/models"
)

// UserClient talks to the external session provider, not the backend API
type UserClient struct {
	core *Client
}

// NewUser builds a session client against the auth service base URL
func NewUser(core *Client) *UserClient {
	return &UserClient{core: core}
}

// GetSession resolves the caller's session from forwarded cookies. The auth
// provider returns the session object directly (no envelope), or null when
// the cookies carry no valid session. Every failure collapses to a generic
// Unauthorized fault; the gate treats any fault as unauthenticated.
func (u *UserClient) GetSession(ctx context.Context, auth AuthContext) Result[models.UserSession] {
	status, raw, err := u.core.do(ctx, http.MethodGet, "/get-session", nil, nil, auth)
	if err != nil || status >= http.StatusBadRequest {
		return fail[models.UserSession]("Unauthorized")
	}

	var session models.UserSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return fail[models.UserSession]("Unauthorized")
	}
	if session.User.ID == "" {
		return fail[models.UserSession]("Unauthorized")
	}
	return ok(&session, nil)
}

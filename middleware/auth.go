package middleware

import (
	"time"

	"food-ordering-web/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of the gate token: a short-lived signed cookie set
// after a successful remote session fetch so repeat requests inside the TTL
// skip the auth-provider round trip. The remote session remains the source
// of truth; the token only memoizes it.
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GateCookieName is the cookie carrying the gate token
const GateCookieName = "gate_token"

// GenerateGateToken creates a signed gate token for a given user
func GenerateGateToken(user *models.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseGateToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

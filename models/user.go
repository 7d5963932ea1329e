package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleProvider UserRole = "PROVIDER"
	RoleAdmin    UserRole = "ADMIN"
)

// UserStatus is admin-mutable in the backend; this layer only displays it
type UserStatus string

const (
	UserActive  UserStatus = "ACTIVE"
	UserBlocked UserStatus = "BLOCKED"
	UserPending UserStatus = "PENDING"
)

type User struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	EmailVerified bool        `json:"emailVerified"`
	Image         *string     `json:"image"`
	Role          UserRole    `json:"role"`
	Phone         *string     `json:"phone"`
	Status        *UserStatus `json:"status"`
	Counts        *UserCounts `json:"_count,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// UserCounts mirrors the backend's joined aggregate counts
type UserCounts struct {
	Orders  int `json:"orders"`
	Reviews int `json:"reviews"`
}

// Session is issued by the external auth provider; never minted here
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSession is the combined payload returned by the auth provider's
// get-session endpoint
type UserSession struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

// UpdateProfilePayload carries the user-editable profile fields; empty
// fields are omitted so the backend PATCH stays partial
type UpdateProfilePayload struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Image string `json:"image,omitempty"`
}

package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of adapter concerns.

import (
	"strings"
	"time"
)

// Role represents a platform authorization role as the upstream API reports it.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleUser      Role = "USER"
)

// ParseRole normalizes a raw role claim into a Role. Unknown values pass
// through upper-cased so the gate can reject them without losing the claim.
func ParseRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

// User is the profile slice of the upstream login response we keep on a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// LoginResult is the upstream login response the console consumes.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// Identity represents the authenticated principal returned by an SSO IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Groups    []string
	// AccessToken is the provider token forwarded to the platform API as the
	// bearer for this session.
	AccessToken string
	ExpiresAt   time.Time
}

// Session is the server-side record we persist for an authenticated console user.
// ID is an opaque session identifier; Token is the upstream bearer token the
// session acts with.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

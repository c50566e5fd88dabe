package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are carried by the signed session cookie.
type SessionClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens.
type SessionService interface {
	// Issue creates a session token bound to the user id and role.
	Issue(userID uint, role string) (string, error)

	// Validate checks signature and expiry of a session token.
	Validate(token string) (*SessionClaims, error)

	// TTL returns how long an issued session stays valid.
	TTL() time.Duration
}

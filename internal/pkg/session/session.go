// Package session keeps the registry of live login sessions. A token is only
// honoured while its session is present here, so logout revokes it at once.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jazbaa/showcase/internal/app/models"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is one authenticated login.
type Session struct {
	ID        string      `json:"id"`
	UID       string      `json:"uid"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Store persists sessions until they expire or are deleted.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// New builds a session for user that lives for ttl.
func New(user *models.User, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UID:       user.UID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the session is past its expiry at t.
func (s *Session) Expired(t time.Time) bool {
	return !s.ExpiresAt.IsZero() && !t.Before(s.ExpiresAt)
}

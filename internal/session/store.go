package session

import (
	"context"

	"foodexpress-storefront/internal/backend"
)

// Flash is a one-shot notification queued for the next page render, the
// server-side equivalent of a toast.
type Flash struct {
	Level   string `json:"level"` // "success" or "error"
	Message string `json:"message"`
}

// Session is the per-browser state the storefront keeps between requests:
// the identity issued at login and any pending flashes. It is the single
// process-wide source of identity — written once at login, read by every view.
type Session struct {
	Token     string  `json:"token"`
	UserID    string  `json:"userId"`
	UserEmail string  `json:"userEmail"`
	Flashes   []Flash `json:"flashes,omitempty"`
}

// Identity returns the headers-worth of the session. UserID falls back to the
// default mock identity when nobody has logged in.
func (s *Session) Identity() backend.Identity {
	userID := s.UserID
	if userID == "" {
		userID = backend.DefaultUserID
	}
	return backend.Identity{Token: s.Token, UserID: userID}
}

func (s *Session) AddFlash(level, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
}

// TakeFlashes drains pending flashes; each is shown exactly once.
func (s *Session) TakeFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Store persists sessions by id. Load returns a fresh empty session for
// unknown ids so first-time visitors need no special casing.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, sessionID string, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

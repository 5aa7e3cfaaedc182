// Package identity gives every visitor a stable, anonymous user ID kept in a
// signed session cookie.
package identity

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"threadboard/internal/logger"
)

const userIDKey = "user_id"

// Options configure the session cookie.
type Options struct {
	Name   string
	Secure bool
	MaxAge int
}

// Manager reads and issues the user-identity cookie.
type Manager struct {
	store sessions.Store
	name  string
}

// NewManager creates a Manager backed by a cookie store signed with key.
func NewManager(key string, opts Options) (*Manager, error) {
	if len(key) < 32 {
		return nil, errors.New("session key must be at least 32 characters long")
	}
	store := sessions.NewCookieStore([]byte(key))
	store.Options.HttpOnly = true
	store.Options.Path = "/"
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Secure = opts.Secure
	store.MaxAge(opts.MaxAge)

	return NewManagerWithStore(store, opts.Name), nil
}

// NewManagerWithStore creates a Manager over an existing session store.
func NewManagerWithStore(store sessions.Store, name string) *Manager {
	return &Manager{store: store, name: name}
}

// Identify returns the visitor's user ID. A visitor without a valid session
// gets a fresh ID and the cookie carrying it is attached to w.
func (m *Manager) Identify(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		// Undecodable cookie, e.g. after a key rotation. Get still returns a
		// new session, so the visitor is re-issued an ID.
		logger.Log.Debug("discarding session cookie", "error", err)
	}

	if userID, ok := session.Values[userIDKey].(string); ok && userID != "" {
		return userID, nil
	}

	userID := uuid.NewString()
	session.Values[userIDKey] = userID
	if err := session.Save(r, w); err != nil {
		return "", fmt.Errorf("error saving session: %w", err)
	}
	return userID, nil
}

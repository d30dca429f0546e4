package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// User is the logged-in identity stored for the current session
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"` // "user" or "admin"
}

// IsAdmin reports whether the user may use admin commands
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// DisplayName returns the author_name used when the user posts comments
func (u *User) DisplayName() string {
	if u.IsAdmin() {
		return "Support Admin"
	}
	return "Customer"
}

type credential struct {
	Username string
	Password string
	Role     string
}

// The same fixed credential table the web front end ships with.
// Advisory gating only, not a security boundary.
var credentials = []credential{
	{Username: "user", Password: "user123", Role: "user"},
	{Username: "admin", Password: "admin123", Role: "admin"},
}

// SessionManager owns the login session lifecycle: created at login,
// read by commands, torn down at logout.
type SessionManager struct {
	path string
}

// NewSessionManager creates a manager persisting at the given file path
func NewSessionManager(path string) *SessionManager {
	return &SessionManager{path: path}
}

// DefaultSessionPath returns the session file location in the user's home
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ticket-desk-session.json"), nil
}

// Login checks the credential table and persists the session on success
func (sm *SessionManager) Login(username, password string) (*User, error) {
	for _, cred := range credentials {
		if cred.Username == username && cred.Password == password {
			user := &User{Username: cred.Username, Role: cred.Role}
			if err := sm.save(user); err != nil {
				return nil, err
			}
			return user, nil
		}
	}
	return nil, fmt.Errorf("invalid username or password")
}

// Current returns the logged-in user, or nil when no session exists
func (sm *SessionManager) Current() (*User, error) {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &SessionError{Op: "load", Err: err}
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		// A corrupt session file is treated as logged out
		LogWarn("Discarding unreadable session file: %v", err)
		_ = os.Remove(sm.path)
		return nil, nil
	}
	return &user, nil
}

// Logout removes the persisted session
func (sm *SessionManager) Logout() error {
	if err := os.Remove(sm.path); err != nil && !os.IsNotExist(err) {
		return &SessionError{Op: "clear", Err: err}
	}
	return nil
}

func (sm *SessionManager) save(user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return &SessionError{Op: "save", Err: err}
	}
	if err := os.WriteFile(sm.path, data, 0600); err != nil {
		return &SessionError{Op: "save", Err: err}
	}
	return nil
}

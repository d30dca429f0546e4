package internal

import "fmt"

// APIError represents a non-2xx response from the support API
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api error: %s %s: %d - %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("api error: %s %s: %d", e.Method, e.Path, e.StatusCode)
}

// SessionError represents errors accessing the local login session
type SessionError struct {
	Op  string // "load", "save", "clear"
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error: %s: %v", e.Op, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// CacheError represents errors accessing the local ticket cache
type CacheError struct {
	Path string
	Op   string // "open", "read", "write", "clear"
	Err  error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// ConfigError represents errors loading the config file
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MaxCacheAge bounds how stale the local ticket cache may be before the
// list and export commands refetch from the API.
const MaxCacheAge = 5 * time.Minute

const (
	metaKeyAPIURL    = "api_url"
	metaKeyFetchedAt = "fetched_at"
)

// CacheManager owns the local ticket cache. The cache is purely a
// display convenience: every operation is best-effort and callers fall
// back to the network when it fails.
type CacheManager struct {
	cacheDir string
	now      func() time.Time
}

// NewCacheManager creates a cache manager rooted at cacheDir
func NewCacheManager(cacheDir string) *CacheManager {
	return &CacheManager{cacheDir: cacheDir, now: time.Now}
}

// DefaultCacheDir returns the cache location in the user's home
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ticket-desk-cache"), nil
}

// DBPath returns the path of the cache database file
func (cm *CacheManager) DBPath() string {
	return filepath.Join(cm.cacheDir, "tickets.db")
}

// IsValid reports whether the cache holds a fresh snapshot for apiURL
func (cm *CacheManager) IsValid(apiURL string) (bool, error) {
	if _, err := os.Stat(cm.DBPath()); os.IsNotExist(err) {
		return false, nil
	}

	db, err := OpenCacheDB(cm.DBPath())
	if err != nil {
		return false, &CacheError{Path: cm.DBPath(), Op: "open", Err: err}
	}
	defer func() { _ = db.Close() }()

	cachedURL, err := QueryCacheMeta(db, metaKeyAPIURL)
	if err != nil || cachedURL != apiURL {
		return false, err
	}

	fetchedAt, err := QueryCacheMeta(db, metaKeyFetchedAt)
	if err != nil || fetchedAt == "" {
		return false, err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return false, nil
	}
	return cm.now().Sub(t) < MaxCacheAge, nil
}

// SaveTickets replaces the cached snapshot with the given tickets
func (cm *CacheManager) SaveTickets(tickets []Ticket, apiURL string) error {
	db, err := OpenCacheDB(cm.DBPath())
	if err != nil {
		return &CacheError{Path: cm.DBPath(), Op: "open", Err: err}
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return &CacheError{Path: cm.DBPath(), Op: "write", Err: err}
	}

	if err := cm.writeSnapshot(tx, tickets, apiURL); err != nil {
		_ = tx.Rollback()
		return &CacheError{Path: cm.DBPath(), Op: "write", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &CacheError{Path: cm.DBPath(), Op: "write", Err: err}
	}
	return nil
}

func (cm *CacheManager) writeSnapshot(tx *sql.Tx, tickets []Ticket, apiURL string) error {
	if _, err := tx.Exec("DELETE FROM tickets"); err != nil {
		return err
	}
	for i, t := range tickets {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal ticket %s: %w", t.ID, err)
		}
		if _, err := tx.Exec("INSERT INTO tickets (id, seq, data) VALUES (?, ?, ?)", t.ID, i, string(data)); err != nil {
			return err
		}
	}

	upsert := "INSERT INTO cache_meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"
	if _, err := tx.Exec(upsert, metaKeyAPIURL, apiURL); err != nil {
		return err
	}
	if _, err := tx.Exec(upsert, metaKeyFetchedAt, cm.now().Format(time.RFC3339)); err != nil {
		return err
	}
	return nil
}

// LoadTickets returns the cached snapshot in its original order
func (cm *CacheManager) LoadTickets() ([]Ticket, error) {
	db, err := OpenCacheDB(cm.DBPath())
	if err != nil {
		return nil, &CacheError{Path: cm.DBPath(), Op: "open", Err: err}
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query("SELECT data FROM tickets ORDER BY seq")
	if err != nil {
		return nil, &CacheError{Path: cm.DBPath(), Op: "read", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var tickets []Ticket
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, &CacheError{Path: cm.DBPath(), Op: "read", Err: err}
		}
		var t Ticket
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			LogWarn("Skipping unreadable cached ticket: %v", err)
			continue
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &CacheError{Path: cm.DBPath(), Op: "read", Err: err}
	}

	return tickets, nil
}

// ClearCache removes the cache database entirely
func (cm *CacheManager) ClearCache() error {
	if err := os.Remove(cm.DBPath()); err != nil && !os.IsNotExist(err) {
		return &CacheError{Path: cm.DBPath(), Op: "clear", Err: err}
	}
	return nil
}

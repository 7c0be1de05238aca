package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BerryBytes/ccactl/models"

	"github.com/spf13/afero"
)

// ErrNotAuthenticated is returned by Current for both an absent record and
// an expired one. Callers cannot distinguish the two; either way the fix is
// a fresh login.
var ErrNotAuthenticated = errors.New("not authenticated")

const credentialsFileName = "credentials.json"

// Store persists the single cached credential record. The filesystem is
// injected so tests can run against afero's in-memory implementation.
type Store struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir, now: time.Now}
}

// NewStoreWithClock is used by tests exercising the expiry boundary.
func NewStoreWithClock(fs afero.Fs, dir string, now func() time.Time) *Store {
	return &Store{fs: fs, dir: dir, now: now}
}

// DefaultDir returns the per-user cache directory (~/.ccactl).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".ccactl"), nil
}

// Save overwrites the cached record wholesale. The file is owner-only; it
// holds live credentials.
func (s *Store) Save(record *models.CachedCredentials) error {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	path := filepath.Join(s.dir, credentialsFileName)
	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials cache: %w", err)
	}
	return nil
}

// Load returns the persisted record, or nil if none has been written.
func (s *Store) Load() (*models.CachedCredentials, error) {
	path := filepath.Join(s.dir, credentialsFileName)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials cache: %w", err)
	}

	var record models.CachedCredentials
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse credentials cache: %w", err)
	}
	return &record, nil
}

// IsValid reports whether the record's credentials are still usable. The
// boundary is strict: a record expiring exactly now is already expired.
func (s *Store) IsValid(record *models.CachedCredentials) bool {
	if record == nil {
		return false
	}
	return s.now().UTC().Before(record.Credentials.ExpiresAt())
}

// Current is the read path used by every credentialed operation: load, then
// check validity. Absent and expired records are reported identically.
func (s *Store) Current() (*models.CachedCredentials, error) {
	record, err := s.Load()
	if err != nil {
		return nil, err
	}
	if !s.IsValid(record) {
		return nil, ErrNotAuthenticated
	}
	return record, nil
}

// Invalidate deletes the cached record. Deleting an absent record is a
// no-op.
func (s *Store) Invalidate() error {
	path := filepath.Join(s.dir, credentialsFileName)
	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials cache: %w", err)
	}
	return nil
}

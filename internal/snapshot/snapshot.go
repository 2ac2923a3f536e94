// Package snapshot persists a partial view of the auth store to local disk
// so the next process start can rehydrate optimistically before remote
// re-validation completes.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/fishlog/cli/internal/models"
)

const (
	// slotAuth is the fixed key the {user, preferences} snapshot lives under.
	slotAuth = "auth-storage"
	// slotSession holds the session secret so separate CLI invocations
	// share one remote session.
	slotSession = "session"
)

// Store is a diskv-backed key-value store rooted at a local data directory.
type Store struct {
	d *diskv.Diskv
}

// Open creates a Store under basePath ("~" is expanded).
func Open(basePath string) (*Store, error) {
	path, err := homedir.Expand(basePath)
	if err != nil {
		return nil, fmt.Errorf("expanding data dir: %w", err)
	}
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     path,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// LoadAuth reads the persisted snapshot. ok is false when no snapshot has
// been written yet.
func (s *Store) LoadAuth() (snap *models.Snapshot, ok bool, err error) {
	data, err := s.d.Read(slotAuth)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var out models.Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &out, true, nil
}

// SaveAuth overwrites the snapshot slot.
func (s *Store) SaveAuth(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.d.Write(slotAuth, data)
}

// ClearAuth removes the snapshot slot. Clearing an absent slot is not an
// error.
func (s *Store) ClearAuth() error {
	err := s.d.Erase(slotAuth)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// LoadSession reads the persisted session secret; ok is false when absent.
func (s *Store) LoadSession() (secret string, ok bool, err error) {
	data, err := s.d.Read(slotSession)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// SaveSession overwrites the session slot.
func (s *Store) SaveSession(secret string) error {
	return s.d.Write(slotSession, []byte(secret))
}

// ClearSession removes the session slot; absent is not an error.
func (s *Store) ClearSession() error {
	err := s.d.Erase(slotSession)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

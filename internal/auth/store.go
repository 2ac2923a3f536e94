// Package auth holds the account/session/preferences store: the single
// source of truth for who is logged in and what they prefer. It coordinates
// multi-step sequences against the BaaS adapter and keeps a local snapshot
// in sync with committed state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fishlog/cli/internal/appwrite"
	"github.com/fishlog/cli/internal/logging"
	"github.com/fishlog/cli/internal/models"
	"github.com/fishlog/cli/internal/notify"
)

// Status is the store's authentication state.
type Status int

const (
	// StatusUnknown is the initial state, before the first CheckAuth
	// completes.
	StatusUnknown Status = iota
	StatusAnonymous
	StatusAuthenticated
)

// SnapshotStore persists the {user, preferences} subset of store state.
type SnapshotStore interface {
	LoadAuth() (snap *models.Snapshot, ok bool, err error)
	SaveAuth(snap *models.Snapshot) error
	ClearAuth() error
}

// newID is a test seam for unique document/file id generation.
var newID = uuid.NewString

// now is a test seam for document timestamps.
var now = func() string { return time.Now().UTC().Format(time.RFC3339) }

// Store coordinates session lifecycle, the user document, avatar files, and
// the local snapshot.
//
// Each action runs its adapter calls strictly in order and aborts on the
// first failure; state committed by earlier steps is not rolled back. Every
// mutating action emits a success or failure notification independent of its
// return value. The mutex guards the state fields for safe reads; concurrent
// mutating actions are not mutually excluded, the last write wins.
type Store struct {
	accounts  appwrite.AccountAPI
	documents appwrite.DatabasesAPI
	files     appwrite.StorageAPI
	snapshots SnapshotStore
	notify    notify.Notifier
	log       logging.Logger

	mu        sync.Mutex
	user      *models.User
	prefs     *models.Preferences
	isLoading bool
}

// NewStore creates a Store in the Unknown state (isLoading=true).
func NewStore(
	accounts appwrite.AccountAPI,
	documents appwrite.DatabasesAPI,
	files appwrite.StorageAPI,
	snapshots SnapshotStore,
	notifier notify.Notifier,
	log logging.Logger,
) *Store {
	return &Store{
		accounts:  accounts,
		documents: documents,
		files:     files,
		snapshots: snapshots,
		notify:    notifier,
		log:       log,
		isLoading: true,
	}
}

// Hydrate loads the persisted snapshot into memory as optimistic state. It
// does not clear isLoading: the snapshot is UI state, not authority, and
// only CheckAuth settles the real status. A missing or unreadable snapshot
// is not an error.
func (s *Store) Hydrate(ctx context.Context) {
	snap, ok, err := s.snapshots.LoadAuth()
	if err != nil {
		s.log.Warn(ctx, "loading snapshot failed", "err", err)
		return
	}
	if !ok {
		return
	}
	s.mu.Lock()
	s.user = snap.User
	s.prefs = snap.Preferences
	s.mu.Unlock()
	if snap.User != nil {
		s.log.Debug(ctx, "hydrated from snapshot", "user", snap.User.ID)
	}
}

// Current returns the user, preferences, and loading flag. The returned
// pointers are read-only references; callers must not mutate them.
func (s *Store) Current() (user *models.User, prefs *models.Preferences, isLoading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.prefs, s.isLoading
}

// Status derives the authentication state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.isLoading:
		return StatusUnknown
	case s.user != nil:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// commit replaces state and rewrites (or clears) the snapshot. Snapshot
// write failures are logged, not surfaced: local persistence must never
// fail a completed remote sequence.
func (s *Store) commit(ctx context.Context, user *models.User, prefs *models.Preferences) {
	s.mu.Lock()
	s.user = user
	s.prefs = prefs
	s.mu.Unlock()

	var err error
	if user == nil {
		err = s.snapshots.ClearAuth()
	} else {
		err = s.snapshots.SaveAuth(&models.Snapshot{User: user, Preferences: prefs})
	}
	if err != nil {
		s.log.Warn(ctx, "persisting snapshot failed", "err", err)
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}

// CheckAuth re-validates the session against the remote service. Any
// failure is treated as "not logged in" rather than an error; this is the
// only operation that swallows its errors. It always clears isLoading and
// it is the sole authority over rehydrated state.
func (s *Store) CheckAuth(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.accounts.Get(ctx)
	if err != nil {
		s.log.Debug(ctx, "session check failed", "err", err)
		s.commit(ctx, nil, nil)
		return
	}

	var doc models.UserDocument
	if err := s.documents.GetDocument(ctx, appwrite.CollectionUsers, user.ID, &doc); err != nil {
		s.log.Warn(ctx, "fetching user document failed", "user", user.ID, "err", err)
		s.commit(ctx, nil, nil)
		return
	}

	user.Avatar = doc.Avatar
	prefs := docPreferences(&doc)
	s.commit(ctx, user, &prefs)
	s.log.Info(ctx, "session valid", "user", user.ID)
}

// Login creates a session, fetches the identity and the user document, and
// commits Authenticated state. Preferences default when the document lacks
// the field. On any step's failure the state is left unchanged and the
// error is returned after a failure notification.
func (s *Store) Login(ctx context.Context, email, password string) error {
	err := s.login(ctx, email, password)
	if err != nil {
		s.notify.Failure("Login failed: " + err.Error())
		return err
	}
	s.notify.Success("Welcome back!")
	return nil
}

func (s *Store) login(ctx context.Context, email, password string) error {
	if err := s.accounts.CreateEmailSession(ctx, email, password); err != nil {
		return err
	}

	user, err := s.accounts.Get(ctx)
	if err != nil {
		return err
	}

	var doc models.UserDocument
	if err := s.documents.GetDocument(ctx, appwrite.CollectionUsers, user.ID, &doc); err != nil {
		return err
	}

	user.Avatar = doc.Avatar
	prefs := docPreferences(&doc)
	s.commit(ctx, user, &prefs)
	s.log.Info(ctx, "logged in", "user", user.ID)
	return nil
}

// Register creates the account, uploads the avatar when given, creates the
// user document with default preferences, opens a session, and commits the
// fetched identity. No compensating rollback is performed: an avatar upload
// failure leaves the already-created account orphaned remotely while the
// flow reports failure.
func (s *Store) Register(ctx context.Context, email, password, name, avatarPath string) error {
	err := s.register(ctx, email, password, name, avatarPath)
	if err != nil {
		s.notify.Failure("Registration failed: " + err.Error())
		return err
	}
	s.notify.Success("Account created successfully!")
	return nil
}

func (s *Store) register(ctx context.Context, email, password, name, avatarPath string) error {
	account, err := s.accounts.Create(ctx, newID(), email, password, name)
	if err != nil {
		return err
	}

	avatarID := ""
	if avatarPath != "" {
		avatarID, err = s.uploadAvatar(ctx, avatarPath)
		if err != nil {
			return err
		}
	}

	defaults := models.DefaultPreferences()
	doc := models.UserDocument{
		Email:       email,
		Name:        name,
		Avatar:      avatarID,
		Preferences: &defaults,
		CreatedAt:   now(),
	}
	if err := s.documents.CreateDocument(ctx, appwrite.CollectionUsers, account.ID, doc); err != nil {
		return err
	}

	if err := s.accounts.CreateEmailSession(ctx, email, password); err != nil {
		return err
	}

	user, err := s.accounts.Get(ctx)
	if err != nil {
		return err
	}
	user.Avatar = avatarID

	s.commit(ctx, user, &defaults)
	s.log.Info(ctx, "registered", "user", user.ID)
	return nil
}

// Logout deletes the current session and always leaves the store Anonymous
// when the deletion settles, including when the session already expired
// remotely.
func (s *Store) Logout(ctx context.Context) error {
	err := s.accounts.DeleteSession(ctx, "current")
	if err != nil && !errors.Is(err, appwrite.ErrNotAuthenticated) {
		s.notify.Failure("Logout failed: " + err.Error())
		return err
	}
	s.commit(ctx, nil, nil)
	s.log.Info(ctx, "logged out")
	s.notify.Success("Logged out successfully")
	return nil
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Name  *string
	Email *string
}

// UpdateProfile replaces the avatar when a new one is supplied (deleting
// the previous file first, so at most one avatar reference stays live),
// merges the patch into the user document, mirrors email/name changes onto
// the account, and commits the refetched identity. Requires prior
// authentication.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch, avatarPath string) error {
	err := s.updateProfile(ctx, patch, avatarPath)
	if err != nil {
		s.notify.Failure("Failed to update profile: " + err.Error())
		return err
	}
	s.notify.Success("Profile updated successfully!")
	return nil
}

func (s *Store) updateProfile(ctx context.Context, patch ProfilePatch, avatarPath string) error {
	user, prefs, _ := s.Current()
	if user == nil {
		return appwrite.ErrNotAuthenticated
	}

	avatarID := user.Avatar
	if avatarPath != "" {
		if avatarID != "" {
			if err := s.files.DeleteFile(ctx, appwrite.BucketUserAvatars, avatarID); err != nil {
				return err
			}
		}
		var err error
		avatarID, err = s.uploadAvatar(ctx, avatarPath)
		if err != nil {
			return err
		}
	}

	fields := map[string]any{
		"avatar":    avatarID,
		"updatedAt": now(),
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if err := s.documents.UpdateDocument(ctx, appwrite.CollectionUsers, user.ID, fields); err != nil {
		return err
	}

	if patch.Email != nil {
		if err := s.accounts.UpdateEmail(ctx, *patch.Email); err != nil {
			return err
		}
	}
	if patch.Name != nil {
		if err := s.accounts.UpdateName(ctx, *patch.Name); err != nil {
			return err
		}
	}

	updated, err := s.accounts.Get(ctx)
	if err != nil {
		return err
	}
	updated.Avatar = avatarID

	s.commit(ctx, updated, prefs)
	s.log.Info(ctx, "profile updated", "user", updated.ID)
	return nil
}

// UpdatePreferences shallow-merges the patch at the group level onto the
// current (or default) preferences, persists the merged record to the user
// document, and commits it. Requires prior authentication.
func (s *Store) UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) error {
	err := s.updatePreferences(ctx, patch)
	if err != nil {
		s.notify.Failure("Failed to update preferences: " + err.Error())
		return err
	}
	s.notify.Success("Preferences updated successfully!")
	return nil
}

func (s *Store) updatePreferences(ctx context.Context, patch models.PreferencesPatch) error {
	user, prefs, _ := s.Current()
	if user == nil {
		return appwrite.ErrNotAuthenticated
	}

	current := models.DefaultPreferences()
	if prefs != nil {
		current = *prefs
	}
	merged := current.Apply(patch)

	fields := map[string]any{
		"preferences": merged,
		"updatedAt":   now(),
	}
	if err := s.documents.UpdateDocument(ctx, appwrite.CollectionUsers, user.ID, fields); err != nil {
		return err
	}

	s.commit(ctx, user, &merged)
	s.log.Info(ctx, "preferences updated", "user", user.ID)
	return nil
}

// DeleteAccount removes the avatar file (when present), the user document,
// and the account, in that fixed order, then clears state. A failure aborts
// the remaining steps and leaves the account partially deleted. Requires
// prior authentication; a repeated call therefore fails with
// ErrNotAuthenticated instead of re-attempting remote deletion.
func (s *Store) DeleteAccount(ctx context.Context) error {
	err := s.deleteAccount(ctx)
	if err != nil {
		s.notify.Failure("Failed to delete account: " + err.Error())
		return err
	}
	s.notify.Success("Account deleted successfully")
	return nil
}

func (s *Store) deleteAccount(ctx context.Context) error {
	user, _, _ := s.Current()
	if user == nil {
		return appwrite.ErrNotAuthenticated
	}

	if user.Avatar != "" {
		if err := s.files.DeleteFile(ctx, appwrite.BucketUserAvatars, user.Avatar); err != nil {
			return err
		}
	}
	if err := s.documents.DeleteDocument(ctx, appwrite.CollectionUsers, user.ID); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx); err != nil {
		return err
	}

	s.commit(ctx, nil, nil)
	s.log.Info(ctx, "account deleted", "user", user.ID)
	return nil
}

// uploadAvatar validates the file against the user-avatars bucket policy
// and uploads it under a fresh id.
func (s *Store) uploadAvatar(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening avatar: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat avatar: %w", err)
	}

	policy, _ := appwrite.Bucket(appwrite.BucketUserAvatars)
	if err := policy.ValidateFile(fi.Name(), fi.Size()); err != nil {
		return "", err
	}

	return s.files.CreateFile(ctx, appwrite.BucketUserAvatars, newID(), fi.Name(), io.Reader(f))
}

// docPreferences returns the document's preference record, defaulted when
// the field is absent so the invariant "always fully populated" holds.
func docPreferences(doc *models.UserDocument) models.Preferences {
	if doc.Preferences != nil {
		return *doc.Preferences
	}
	return models.DefaultPreferences()
}

package appwrite

import (
	"context"
	"errors"
	"net/http"

	"github.com/fishlog/cli/internal/models"
)

// AccountAPI is the identity/session surface the store depends on.
type AccountAPI interface {
	Create(ctx context.Context, userID, email, password, name string) (*models.User, error)
	CreateEmailSession(ctx context.Context, email, password string) error
	Get(ctx context.Context) (*models.User, error)
	DeleteSession(ctx context.Context, sessionID string) error
	UpdateEmail(ctx context.Context, email string) error
	UpdateName(ctx context.Context, name string) error
	Delete(ctx context.Context) error
}

// Account implements AccountAPI against the remote service.
type Account struct {
	c *Client
}

var _ AccountAPI = (*Account)(nil)

// accountObject is the wire shape of the remote identity record.
type accountObject struct {
	ID    string `json:"$id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a accountObject) user() *models.User {
	return &models.User{ID: a.ID, Email: a.Email, Name: a.Name}
}

// sessionObject is the wire shape of a created session. Secret is only
// returned at creation time.
type sessionObject struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

// Create registers a new account. Fails with ErrConflict on a duplicate
// email and ErrValidation on rejected fields.
func (a *Account) Create(ctx context.Context, userID, email, password, name string) (*models.User, error) {
	body := map[string]string{
		"userId":   userID,
		"email":    email,
		"password": password,
		"name":     name,
	}
	var obj accountObject
	if err := a.c.call(ctx, http.MethodPost, "/account", body, &obj); err != nil {
		return nil, err
	}
	return obj.user(), nil
}

// CreateEmailSession authenticates with email/password and installs the
// returned session secret on the client. Fails with ErrInvalidCredentials
// when the pair is rejected.
func (a *Account) CreateEmailSession(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var sess sessionObject
	err := a.c.call(ctx, http.MethodPost, "/account/sessions/email", body, &sess)
	if err != nil {
		// A 401 here means the credentials were rejected, not that a
		// session is missing.
		var reqErr *RequestError
		if errors.As(err, &reqErr) && errors.Is(err, ErrNotAuthenticated) {
			return &RequestError{Status: reqErr.Status, Message: reqErr.Message, sentinel: ErrInvalidCredentials}
		}
		return err
	}
	a.c.SetSession(sess.Secret)
	return nil
}

// Get returns the identity of the current session, or ErrNotAuthenticated.
func (a *Account) Get(ctx context.Context) (*models.User, error) {
	var obj accountObject
	if err := a.c.call(ctx, http.MethodGet, "/account", nil, &obj); err != nil {
		return nil, err
	}
	return obj.user(), nil
}

// DeleteSession destroys the given session ("current" for the active one)
// and drops the client's session secret on success.
func (a *Account) DeleteSession(ctx context.Context, sessionID string) error {
	if err := a.c.call(ctx, http.MethodDelete, "/account/sessions/"+sessionID, nil, nil); err != nil {
		return err
	}
	a.c.SetSession("")
	return nil
}

// UpdateEmail changes the account email.
func (a *Account) UpdateEmail(ctx context.Context, email string) error {
	return a.c.call(ctx, http.MethodPatch, "/account/email", map[string]string{"email": email}, nil)
}

// UpdateName changes the account display name.
func (a *Account) UpdateName(ctx context.Context, name string) error {
	return a.c.call(ctx, http.MethodPatch, "/account/name", map[string]string{"name": name}, nil)
}

// Delete removes the account itself. Requires an active session.
func (a *Account) Delete(ctx context.Context) error {
	if err := a.c.call(ctx, http.MethodDelete, "/account", nil, nil); err != nil {
		return err
	}
	a.c.SetSession("")
	return nil
}

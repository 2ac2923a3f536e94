package cli

import (
	"context"

	"github.com/fishlog/cli/internal/auth"
)

// UpdateProfile applies name/email/avatar changes. Empty values mean "leave
// untouched".
func (a *App) UpdateProfile(ctx context.Context, name, email, avatarPath string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var patch auth.ProfilePatch
	if name != "" {
		patch.Name = &name
	}
	if email != "" {
		patch.Email = &email
	}

	return a.store.UpdateProfile(ctx, patch, avatarPath)
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

// DeleteAccount removes the account after confirmation. Pass force=true to
// skip the prompt (the --yes flag).
func (a *App) DeleteAccount(ctx context.Context, force bool) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	if !force {
		answer, err := getSimpleText(a.reader, "This permanently deletes your account and avatar. Type 'yes' to continue", a.out)
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "yes" {
			fmt.Fprintln(a.out, "Aborted.")
			return nil
		}
	}

	if err := a.store.DeleteAccount(ctx); err != nil {
		return err
	}
	a.persistSession(ctx)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/gosuri/uitable"
)

// RegisterInteractive prompts for email, password, display name, and an
// optional avatar path, then runs the registration flow. The password is
// wiped before returning.
func (a *App) RegisterInteractive(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	avatarPath, err := getSimpleText(a.reader, "Avatar file path (empty to skip)", a.out)
	if err != nil {
		return err
	}

	return a.Register(ctx, email, string(password), name, avatarPath)
}

// Register runs the registration flow and persists the resulting session.
func (a *App) Register(ctx context.Context, email, password, name, avatarPath string) error {
	if err := a.store.Register(ctx, email, password, name, avatarPath); err != nil {
		return err
	}
	a.persistSession(ctx)
	return nil
}

// LoginInteractive prompts for credentials and authenticates.
func (a *App) LoginInteractive(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.Login(ctx, email, string(password))
}

// Login authenticates and persists the resulting session.
func (a *App) Login(ctx context.Context, email, password string) error {
	if err := a.store.Login(ctx, email, password); err != nil {
		return err
	}
	a.persistSession(ctx)
	return nil
}

// Logout destroys the session remotely and locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.persistSession(ctx)
	return nil
}

// Whoami prints the authenticated user and preference summary.
func (a *App) Whoami(ctx context.Context) error {
	user, prefs, _ := a.store.Current()
	if user == nil {
		return errNotLoggedIn
	}

	table := uitable.New()
	table.AddRow("ID:", user.ID)
	table.AddRow("Name:", user.Name)
	table.AddRow("Email:", user.Email)
	if user.Avatar != "" {
		table.AddRow("Avatar:", user.Avatar)
	}
	if prefs != nil {
		table.AddRow("Theme:", string(prefs.Theme))
		table.AddRow("Default view:", string(prefs.DisplaySettings.DefaultCatchView))
	}
	fmt.Fprintln(a.out, table)
	return nil
}

var errNotLoggedIn = fmt.Errorf("not authenticated, run \"fishlog login\" first")

// Package cli implements the fishlog command surface: one-shot cobra
// commands plus an interactive REPL mode, both driving the auth store.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/fishlog/cli/internal/appwrite"
	"github.com/fishlog/cli/internal/auth"
	"github.com/fishlog/cli/internal/config"
	"github.com/fishlog/cli/internal/logging"
	"github.com/fishlog/cli/internal/notify"
	"github.com/fishlog/cli/internal/snapshot"
)

// App wires the adapter, the store, and local persistence together for the
// duration of one CLI invocation.
type App struct {
	cfg    *config.Config
	client *appwrite.Client
	store  *auth.Store
	snaps  *snapshot.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds an App from config: opens the local store, restores a
// persisted session secret if one exists, and constructs the auth store.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	snaps, err := snapshot.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	client := appwrite.New(cfg.Endpoint, cfg.Project)
	if secret, ok, err := snaps.LoadSession(); err == nil && ok {
		client.SetSession(secret)
	}

	store := auth.NewStore(
		client.Account(),
		client.Databases(),
		client.Storage(),
		snaps,
		notify.NewTerminal(os.Stdout),
		log,
	)

	return &App{
		cfg:    cfg,
		client: client,
		store:  store,
		snaps:  snaps,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Bootstrap runs the process-start sequence the web app ran on page load:
// rehydrate the snapshot as optimistic state, then let CheckAuth settle the
// authoritative status against the remote service.
func (a *App) Bootstrap(ctx context.Context) {
	a.store.Hydrate(ctx)
	a.store.CheckAuth(ctx)
	a.persistSession(ctx)
}

// persistSession mirrors the client's session secret into the local slot so
// the next invocation stays logged in (or logged out).
func (a *App) persistSession(ctx context.Context) {
	var err error
	if secret := a.client.Session(); secret != "" {
		err = a.snaps.SaveSession(secret)
	} else {
		err = a.snaps.ClearSession()
	}
	if err != nil {
		a.log.Warn(ctx, "persisting session failed", "err", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Status() == auth.StatusAuthenticated
}

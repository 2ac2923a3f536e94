package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fishlog/cli/internal/config"
	"github.com/fishlog/cli/internal/logging"
)

var (
	flagEndpoint string
	flagProject  string
	flagVerbose  bool

	app *App
)

// New builds the root command and its subcommands.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "fishlog",
		Short: "Fishing log from the terminal",
		Long: `Fishlog lets you manage your fishing-log account, preferences,
and dashboard without leaving the terminal.

Get started:
  fishlog register            Create an account
  fishlog login               Authenticate
  fishlog dashboard           Show your catch log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if flagEndpoint != "" {
				cfg.Endpoint = flagEndpoint
			}
			if flagProject != "" {
				cfg.Project = flagProject
			}

			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			log := logging.New(os.Stderr, level)

			app, err = NewApp(cfg, log)
			if err != nil {
				return fmt.Errorf("initializing: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "Override the service endpoint URL")
	root.PersistentFlags().StringVar(&flagProject, "project", "", "Override the project id")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	addRegister(root)
	addLogin(root)
	addLogout(root)
	addWhoami(root)
	addProfile(root)
	addPrefs(root)
	addDashboard(root)
	addAccount(root)
	addREPL(root)

	return root
}

// Execute runs the root command.
func Execute() error {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

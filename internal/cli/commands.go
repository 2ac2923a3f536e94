package cli

import (
	"github.com/spf13/cobra"
)

func addRegister(root *cobra.Command) {
	var name, avatar string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return app.RegisterInteractive(cmd.Context())
			}
			email, err := getSimpleText(app.reader, "Enter email", app.out)
			if err != nil {
				return err
			}
			password, err := getPassword(app.out)
			if err != nil {
				return err
			}
			defer wipe(password)
			return app.Register(cmd.Context(), email, string(password), name, avatar)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name (omit for fully interactive registration)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Path to an avatar image (jpg, jpeg, png, webp; max 5 MiB)")
	root.AddCommand(cmd)
}

func addLogin(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Authenticate with your fishlog account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.LoginInteractive(cmd.Context())
		},
	})
}

func addLogout(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			return app.Logout(cmd.Context())
		},
	})
}

func addWhoami(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the current authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			return app.Whoami(cmd.Context())
		},
	})
}

func addProfile(root *cobra.Command) {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}

	var name, email, avatar string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change display name, email, or avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			return app.UpdateProfile(cmd.Context(), name, email, avatar)
		},
	}
	update.Flags().StringVar(&name, "name", "", "New display name")
	update.Flags().StringVar(&email, "email", "", "New email address")
	update.Flags().StringVar(&avatar, "avatar", "", "Path to a new avatar image (replaces the old one)")

	profile.AddCommand(update)
	root.AddCommand(profile)
}

func addPrefs(root *cobra.Command) {
	prefs := &cobra.Command{
		Use:   "prefs",
		Short: "Show your preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			return app.ShowPrefs(cmd.Context())
		},
	}

	var theme, view, units, dateFormat string
	var nEmail, nPush, nGroupInvites, nChallengeUpdates, nNewComments bool
	var showEmail, showLocation, publicProfile bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())

			var upd PrefsUpdate
			if cmd.Flags().Changed("theme") {
				upd.Theme = &theme
			}
			if cmd.Flags().Changed("view") {
				upd.View = &view
			}
			if cmd.Flags().Changed("units") {
				upd.Units = &units
			}
			if cmd.Flags().Changed("date-format") {
				upd.DateFormat = &dateFormat
			}
			if cmd.Flags().Changed("notify-email") {
				upd.NotifyEmail = &nEmail
			}
			if cmd.Flags().Changed("notify-push") {
				upd.NotifyPush = &nPush
			}
			if cmd.Flags().Changed("notify-group-invites") {
				upd.NotifyGroupInvites = &nGroupInvites
			}
			if cmd.Flags().Changed("notify-challenge-updates") {
				upd.NotifyChallengeUpdates = &nChallengeUpdates
			}
			if cmd.Flags().Changed("notify-new-comments") {
				upd.NotifyNewComments = &nNewComments
			}
			if cmd.Flags().Changed("show-email") {
				upd.ShowEmail = &showEmail
			}
			if cmd.Flags().Changed("show-location") {
				upd.ShowLocation = &showLocation
			}
			if cmd.Flags().Changed("public-profile") {
				upd.PublicProfile = &publicProfile
			}

			return app.SetPrefs(cmd.Context(), upd)
		},
	}
	set.Flags().StringVar(&theme, "theme", "", "Theme: light, dark, or system")
	set.Flags().StringVar(&view, "view", "", "Default catch view: table, grid, or timeline")
	set.Flags().StringVar(&units, "units", "", "Measurement system: imperial or metric")
	set.Flags().StringVar(&dateFormat, "date-format", "", "Date format: MM/DD/YYYY, DD/MM/YYYY, or YYYY-MM-DD")
	set.Flags().BoolVar(&nEmail, "notify-email", false, "Email notifications")
	set.Flags().BoolVar(&nPush, "notify-push", false, "Push notifications")
	set.Flags().BoolVar(&nGroupInvites, "notify-group-invites", false, "Group invite notifications")
	set.Flags().BoolVar(&nChallengeUpdates, "notify-challenge-updates", false, "Challenge update notifications")
	set.Flags().BoolVar(&nNewComments, "notify-new-comments", false, "New comment notifications")
	set.Flags().BoolVar(&showEmail, "show-email", false, "Show email on your profile")
	set.Flags().BoolVar(&showLocation, "show-location", false, "Show catch locations")
	set.Flags().BoolVar(&publicProfile, "public-profile", false, "Make your profile public")

	prefs.AddCommand(set)
	root.AddCommand(prefs)
}

func addDashboard(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:       "dashboard [view]",
		Short:     "Show the catch-log dashboard (table, grid, or timeline)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"table", "grid", "timeline"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			view := ""
			if len(args) > 0 {
				view = args[0]
			}
			return app.Dashboard(cmd.Context(), view)
		},
	})
}

func addAccount(root *cobra.Command) {
	account := &cobra.Command{
		Use:   "account",
		Short: "Manage your account",
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete",
		Short: "Permanently delete your account, avatar, and data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			return app.DeleteAccount(cmd.Context(), yes)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	account.AddCommand(del)
	root.AddCommand(account)
}

func addREPL(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Interactive mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Bootstrap(cmd.Context())
			app.RunREPL(cmd.Context())
			return nil
		},
	})
}

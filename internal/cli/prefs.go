package cli

import (
	"context"
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/fishlog/cli/internal/models"
)

// ShowPrefs prints the full preference record.
func (a *App) ShowPrefs(ctx context.Context) error {
	_, prefs, _ := a.store.Current()
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if prefs == nil {
		p := models.DefaultPreferences()
		prefs = &p
	}

	table := uitable.New()
	table.AddRow("Theme:", string(prefs.Theme))
	table.AddRow("Default view:", string(prefs.DisplaySettings.DefaultCatchView))
	table.AddRow("Units:", string(prefs.DisplaySettings.MeasurementSystem))
	table.AddRow("Date format:", string(prefs.DisplaySettings.DateFormat))
	table.AddRow("Notify email:", onOff(prefs.Notifications.Email))
	table.AddRow("Notify push:", onOff(prefs.Notifications.Push))
	table.AddRow("Notify group invites:", onOff(prefs.Notifications.GroupInvites))
	table.AddRow("Notify challenge updates:", onOff(prefs.Notifications.ChallengeUpdates))
	table.AddRow("Notify new comments:", onOff(prefs.Notifications.NewComments))
	table.AddRow("Show email:", onOff(prefs.Privacy.ShowEmail))
	table.AddRow("Show location:", onOff(prefs.Privacy.ShowLocation))
	table.AddRow("Public profile:", onOff(prefs.Privacy.PublicProfile))
	fmt.Fprintln(a.out, table)
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// PrefsUpdate collects the pieces of a "prefs set" invocation. Nil fields
// were not supplied on the command line.
//
// Because the store's merge is shallow at the group level, the CLI builds a
// complete replacement group from the current record plus the supplied
// flags before handing it to the store.
type PrefsUpdate struct {
	Theme      *string
	View       *string
	Units      *string
	DateFormat *string

	NotifyEmail            *bool
	NotifyPush             *bool
	NotifyGroupInvites     *bool
	NotifyChallengeUpdates *bool
	NotifyNewComments      *bool

	ShowEmail     *bool
	ShowLocation  *bool
	PublicProfile *bool
}

// SetPrefs validates the update, builds a group-level patch, and persists it.
func (a *App) SetPrefs(ctx context.Context, upd PrefsUpdate) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	_, prefs, _ := a.store.Current()
	current := models.DefaultPreferences()
	if prefs != nil {
		current = *prefs
	}

	patch, err := buildPatch(current, upd)
	if err != nil {
		return err
	}

	return a.store.UpdatePreferences(ctx, patch)
}

func buildPatch(current models.Preferences, upd PrefsUpdate) (models.PreferencesPatch, error) {
	var patch models.PreferencesPatch

	if upd.Theme != nil {
		theme := models.Theme(*upd.Theme)
		if !theme.Valid() {
			return patch, fmt.Errorf("unknown theme %q (light, dark, system)", *upd.Theme)
		}
		patch.Theme = &theme
	}

	if upd.View != nil || upd.Units != nil || upd.DateFormat != nil {
		ds := current.DisplaySettings
		if upd.View != nil {
			view := models.CatchView(*upd.View)
			if !view.Valid() {
				return patch, fmt.Errorf("unknown view %q (table, grid, timeline)", *upd.View)
			}
			ds.DefaultCatchView = view
		}
		if upd.Units != nil {
			units := models.MeasurementSystem(*upd.Units)
			if !units.Valid() {
				return patch, fmt.Errorf("unknown measurement system %q (imperial, metric)", *upd.Units)
			}
			ds.MeasurementSystem = units
		}
		if upd.DateFormat != nil {
			df := models.DateFormat(*upd.DateFormat)
			if !df.Valid() {
				return patch, fmt.Errorf("unknown date format %q (MM/DD/YYYY, DD/MM/YYYY, YYYY-MM-DD)", *upd.DateFormat)
			}
			ds.DateFormat = df
		}
		patch.DisplaySettings = &ds
	}

	if upd.NotifyEmail != nil || upd.NotifyPush != nil || upd.NotifyGroupInvites != nil ||
		upd.NotifyChallengeUpdates != nil || upd.NotifyNewComments != nil {
		n := current.Notifications
		if upd.NotifyEmail != nil {
			n.Email = *upd.NotifyEmail
		}
		if upd.NotifyPush != nil {
			n.Push = *upd.NotifyPush
		}
		if upd.NotifyGroupInvites != nil {
			n.GroupInvites = *upd.NotifyGroupInvites
		}
		if upd.NotifyChallengeUpdates != nil {
			n.ChallengeUpdates = *upd.NotifyChallengeUpdates
		}
		if upd.NotifyNewComments != nil {
			n.NewComments = *upd.NotifyNewComments
		}
		patch.Notifications = &n
	}

	if upd.ShowEmail != nil || upd.ShowLocation != nil || upd.PublicProfile != nil {
		p := current.Privacy
		if upd.ShowEmail != nil {
			p.ShowEmail = *upd.ShowEmail
		}
		if upd.ShowLocation != nil {
			p.ShowLocation = *upd.ShowLocation
		}
		if upd.PublicProfile != nil {
			p.PublicProfile = *upd.PublicProfile
		}
		patch.Privacy = &p
	}

	return patch, nil
}

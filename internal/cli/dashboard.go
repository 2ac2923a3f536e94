package cli

import (
	"context"
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/fishlog/cli/internal/dashboard"
	"github.com/fishlog/cli/internal/models"
)

// Dashboard renders the dashboard in the active view. An empty view keeps
// the preferred default; a named view switches to it for this rendering.
func (a *App) Dashboard(ctx context.Context, view string) error {
	user, prefs, _ := a.store.Current()
	if user == nil {
		return errNotLoggedIn
	}

	ctrl := dashboard.New(prefs)
	if view != "" {
		if err := ctrl.Set(models.CatchView(view)); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "Catch log, %s view (tight lines, %s!)\n\n", ctrl.View(), user.Name)

	switch ctrl.View() {
	case models.ViewTable:
		table := uitable.New()
		table.AddRow("DATE", "SPECIES", "WEIGHT", "LOCATION")
		table.AddRow("-", "no catches recorded yet", "", "")
		fmt.Fprintln(a.out, table)
	case models.ViewGrid:
		fmt.Fprintln(a.out, "[ no catches recorded yet ]")
	case models.ViewTimeline:
		fmt.Fprintln(a.out, "· no catches recorded yet")
	}

	if prefs != nil {
		fmt.Fprintf(a.out, "\nUnits: %s, dates: %s\n",
			prefs.DisplaySettings.MeasurementSystem, prefs.DisplaySettings.DateFormat)
	}
	return nil
}

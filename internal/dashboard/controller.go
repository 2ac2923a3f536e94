// Package dashboard holds the currently selected dashboard view. The
// controller has no remote calls and no persistence of its own: its value
// is seeded from the preferred default view and changed by navigation.
package dashboard

import (
	"fmt"

	"github.com/fishlog/cli/internal/models"
)

// Controller tracks the active catch-log view.
type Controller struct {
	view models.CatchView
	seed models.CatchView
}

// New seeds the controller from the given preferences; nil preferences use
// the default record.
func New(prefs *models.Preferences) *Controller {
	seed := defaultView(prefs)
	return &Controller{view: seed, seed: seed}
}

// View returns the active view.
func (c *Controller) View() models.CatchView {
	return c.view
}

// Set switches to an explicitly chosen view.
func (c *Controller) Set(v models.CatchView) error {
	if !v.Valid() {
		return fmt.Errorf("unknown view %q", v)
	}
	c.view = v
	return nil
}

// Reseed re-applies the preferred default view, but only when the
// preference actually changed; explicit navigation survives preference
// refreshes that leave the default untouched.
func (c *Controller) Reseed(prefs *models.Preferences) {
	seed := defaultView(prefs)
	if seed == c.seed {
		return
	}
	c.seed = seed
	c.view = seed
}

func defaultView(prefs *models.Preferences) models.CatchView {
	if prefs == nil {
		return models.DefaultPreferences().DisplaySettings.DefaultCatchView
	}
	return prefs.DisplaySettings.DefaultCatchView
}

package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishlog/cli/internal/models"
)

func prefsWithDefaultView(v models.CatchView) *models.Preferences {
	p := models.DefaultPreferences()
	p.DisplaySettings.DefaultCatchView = v
	return &p
}

func TestNew_SeedsFromPreferences(t *testing.T) {
	c := New(prefsWithDefaultView(models.ViewTimeline))
	assert.Equal(t, models.ViewTimeline, c.View())
}

func TestNew_NilPreferencesUseDefaultRecord(t *testing.T) {
	c := New(nil)
	assert.Equal(t, models.ViewGrid, c.View())
}

func TestSet(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.Set(models.ViewTable))
	assert.Equal(t, models.ViewTable, c.View())

	err := c.Set(models.CatchView("calendar"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar")
	assert.Equal(t, models.ViewTable, c.View())
}

func TestReseed_AppliesChangedDefault(t *testing.T) {
	c := New(prefsWithDefaultView(models.ViewGrid))
	require.NoError(t, c.Set(models.ViewTable))

	c.Reseed(prefsWithDefaultView(models.ViewTimeline))
	assert.Equal(t, models.ViewTimeline, c.View())
}

func TestReseed_UnchangedDefaultKeepsNavigation(t *testing.T) {
	c := New(prefsWithDefaultView(models.ViewGrid))
	require.NoError(t, c.Set(models.ViewTable))

	// a preference refresh that leaves the default untouched must not
	// clobber the explicitly chosen view
	c.Reseed(prefsWithDefaultView(models.ViewGrid))
	assert.Equal(t, models.ViewTable, c.View())
}

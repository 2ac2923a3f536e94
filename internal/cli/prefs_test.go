package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishlog/cli/internal/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildPatch_Empty(t *testing.T) {
	patch, err := buildPatch(models.DefaultPreferences(), PrefsUpdate{})
	require.NoError(t, err)
	assert.Equal(t, models.PreferencesPatch{}, patch)
}

func TestBuildPatch_Theme(t *testing.T) {
	patch, err := buildPatch(models.DefaultPreferences(), PrefsUpdate{Theme: strPtr("dark")})
	require.NoError(t, err)
	require.NotNil(t, patch.Theme)
	assert.Equal(t, models.ThemeDark, *patch.Theme)
	assert.Nil(t, patch.DisplaySettings)
	assert.Nil(t, patch.Notifications)
	assert.Nil(t, patch.Privacy)
}

func TestBuildPatch_InvalidValuesNameTheOptions(t *testing.T) {
	tests := []struct {
		name string
		upd  PrefsUpdate
		want string
	}{
		{"theme", PrefsUpdate{Theme: strPtr("sepia")}, "light, dark, system"},
		{"view", PrefsUpdate{View: strPtr("calendar")}, "table, grid, timeline"},
		{"units", PrefsUpdate{Units: strPtr("nautical")}, "imperial, metric"},
		{"date_format", PrefsUpdate{DateFormat: strPtr("YYYY/MM/DD")}, "MM/DD/YYYY, DD/MM/YYYY, YYYY-MM-DD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildPatch(models.DefaultPreferences(), tt.upd)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildPatch_DisplayGroupCarriesCurrentValues(t *testing.T) {
	current := models.DefaultPreferences()
	current.DisplaySettings.MeasurementSystem = models.MeasurementMetric

	// only the view flag was given; the replacement group must carry the
	// current units and date format so the group-level merge loses nothing
	patch, err := buildPatch(current, PrefsUpdate{View: strPtr("timeline")})

	require.NoError(t, err)
	require.NotNil(t, patch.DisplaySettings)
	assert.Equal(t, models.ViewTimeline, patch.DisplaySettings.DefaultCatchView)
	assert.Equal(t, models.MeasurementMetric, patch.DisplaySettings.MeasurementSystem)
	assert.Equal(t, current.DisplaySettings.DateFormat, patch.DisplaySettings.DateFormat)
}

func TestBuildPatch_NotificationGroupCarriesCurrentValues(t *testing.T) {
	current := models.DefaultPreferences()
	current.Notifications.Push = false

	patch, err := buildPatch(current, PrefsUpdate{NotifyEmail: boolPtr(false)})

	require.NoError(t, err)
	require.NotNil(t, patch.Notifications)
	assert.False(t, patch.Notifications.Email)
	assert.False(t, patch.Notifications.Push)
	assert.True(t, patch.Notifications.GroupInvites)
}

func TestBuildPatch_PrivacyGroup(t *testing.T) {
	patch, err := buildPatch(models.DefaultPreferences(), PrefsUpdate{
		ShowEmail:     boolPtr(true),
		PublicProfile: boolPtr(false),
	})

	require.NoError(t, err)
	require.NotNil(t, patch.Privacy)
	assert.True(t, patch.Privacy.ShowEmail)
	assert.False(t, patch.Privacy.PublicProfile)
	// untouched flag keeps the current value
	assert.True(t, patch.Privacy.ShowLocation)
}

func TestBuildPatch_AllGroupsAtOnce(t *testing.T) {
	patch, err := buildPatch(models.DefaultPreferences(), PrefsUpdate{
		Theme:      strPtr("light"),
		View:       strPtr("table"),
		NotifyPush: boolPtr(false),
		ShowEmail:  boolPtr(true),
	})

	require.NoError(t, err)
	assert.NotNil(t, patch.Theme)
	assert.NotNil(t, patch.DisplaySettings)
	assert.NotNil(t, patch.Notifications)
	assert.NotNil(t, patch.Privacy)
}

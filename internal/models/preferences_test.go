package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.Equal(t, ThemeSystem, p.Theme)
	assert.True(t, p.Notifications.Email)
	assert.True(t, p.Notifications.Push)
	assert.True(t, p.Notifications.GroupInvites)
	assert.True(t, p.Notifications.ChallengeUpdates)
	assert.True(t, p.Notifications.NewComments)
	assert.False(t, p.Privacy.ShowEmail)
	assert.True(t, p.Privacy.ShowLocation)
	assert.True(t, p.Privacy.PublicProfile)
	assert.Equal(t, ViewGrid, p.DisplaySettings.DefaultCatchView)
	assert.Equal(t, MeasurementImperial, p.DisplaySettings.MeasurementSystem)
	assert.Equal(t, DateFormatUS, p.DisplaySettings.DateFormat)
}

func TestApply_ThemeOnly_LeavesOtherGroupsUntouched(t *testing.T) {
	defaults := DefaultPreferences()
	theme := ThemeDark

	merged := defaults.Apply(PreferencesPatch{Theme: &theme})

	want := DefaultPreferences()
	want.Theme = ThemeDark
	assert.Equal(t, want, merged)
	// the receiver must not be modified
	assert.Equal(t, ThemeSystem, defaults.Theme)
}

func TestApply_GroupReplacedWholesale(t *testing.T) {
	defaults := DefaultPreferences()

	// A partial-looking notifications group replaces the entire group:
	// unmentioned flags become the zero value, they are not merged.
	n := NotificationPrefs{Email: true}
	merged := defaults.Apply(PreferencesPatch{Notifications: &n})

	assert.True(t, merged.Notifications.Email)
	assert.False(t, merged.Notifications.Push)
	assert.False(t, merged.Notifications.GroupInvites)
	assert.False(t, merged.Notifications.ChallengeUpdates)
	assert.False(t, merged.Notifications.NewComments)
	// other groups untouched
	assert.Equal(t, defaults.Privacy, merged.Privacy)
	assert.Equal(t, defaults.DisplaySettings, merged.DisplaySettings)
}

func TestApply_EmptyPatch_IsIdentity(t *testing.T) {
	defaults := DefaultPreferences()
	assert.Equal(t, defaults, defaults.Apply(PreferencesPatch{}))
}

func TestPreferences_JSONRoundTrip_KeepsDocumentShape(t *testing.T) {
	p := DefaultPreferences()
	data, err := json.Marshal(p)
	require.NoError(t, err)

	// field names must match the remote document shape
	assert.Contains(t, string(data), `"defaultCatchView":"grid"`)
	assert.Contains(t, string(data), `"measurementSystem":"imperial"`)
	assert.Contains(t, string(data), `"groupInvites":true`)

	var back Preferences
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)
}

func TestValidators(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("solarized").Valid())
	assert.True(t, ViewTimeline.Valid())
	assert.False(t, CatchView("calendar").Valid())
	assert.True(t, MeasurementMetric.Valid())
	assert.False(t, MeasurementSystem("nautical").Valid())
	assert.True(t, DateFormatISO.Valid())
	assert.False(t, DateFormat("YYYY/MM/DD").Valid())
}

package models

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// CatchView names a dashboard view of the catch log.
type CatchView string

const (
	ViewTable    CatchView = "table"
	ViewGrid     CatchView = "grid"
	ViewTimeline CatchView = "timeline"
)

// Valid reports whether v is one of the known views.
func (v CatchView) Valid() bool {
	switch v {
	case ViewTable, ViewGrid, ViewTimeline:
		return true
	}
	return false
}

// MeasurementSystem selects units for weights and lengths.
type MeasurementSystem string

const (
	MeasurementImperial MeasurementSystem = "imperial"
	MeasurementMetric   MeasurementSystem = "metric"
)

// Valid reports whether m is one of the known measurement systems.
func (m MeasurementSystem) Valid() bool {
	return m == MeasurementImperial || m == MeasurementMetric
}

// DateFormat is one of the three supported date display patterns.
type DateFormat string

const (
	DateFormatUS  DateFormat = "MM/DD/YYYY"
	DateFormatEU  DateFormat = "DD/MM/YYYY"
	DateFormatISO DateFormat = "YYYY-MM-DD"
)

// Valid reports whether d is one of the known formats.
func (d DateFormat) Valid() bool {
	switch d {
	case DateFormatUS, DateFormatEU, DateFormatISO:
		return true
	}
	return false
}

// NotificationPrefs are the per-channel notification toggles.
type NotificationPrefs struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	GroupInvites     bool `json:"groupInvites"`
	ChallengeUpdates bool `json:"challengeUpdates"`
	NewComments      bool `json:"newComments"`
}

// PrivacyPrefs control what other users can see.
type PrivacyPrefs struct {
	ShowEmail     bool `json:"showEmail"`
	ShowLocation  bool `json:"showLocation"`
	PublicProfile bool `json:"publicProfile"`
}

// DisplaySettings control how the catch log is rendered.
type DisplaySettings struct {
	DefaultCatchView  CatchView         `json:"defaultCatchView"`
	MeasurementSystem MeasurementSystem `json:"measurementSystem"`
	DateFormat        DateFormat        `json:"dateFormat"`
}

// Preferences is the full user preference record. Once a user document
// exists the record is always fully populated: either the defaults or the
// defaults overlaid with a patch, never a partial record.
type Preferences struct {
	Theme           Theme             `json:"theme"`
	Notifications   NotificationPrefs `json:"notifications"`
	Privacy         PrivacyPrefs      `json:"privacy"`
	DisplaySettings DisplaySettings   `json:"displaySettings"`
}

// DefaultPreferences returns the record every new account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme: ThemeSystem,
		Notifications: NotificationPrefs{
			Email:            true,
			Push:             true,
			GroupInvites:     true,
			ChallengeUpdates: true,
			NewComments:      true,
		},
		Privacy: PrivacyPrefs{
			ShowEmail:     false,
			ShowLocation:  true,
			PublicProfile: true,
		},
		DisplaySettings: DisplaySettings{
			DefaultCatchView:  ViewGrid,
			MeasurementSystem: MeasurementImperial,
			DateFormat:        DateFormatUS,
		},
	}
}

// PreferencesPatch is a partial preference update. The merge is shallow at
// the group level: a supplied group replaces that whole group, individual
// flags inside it are not merged.
type PreferencesPatch struct {
	Theme           *Theme             `json:"theme,omitempty"`
	Notifications   *NotificationPrefs `json:"notifications,omitempty"`
	Privacy         *PrivacyPrefs      `json:"privacy,omitempty"`
	DisplaySettings *DisplaySettings   `json:"displaySettings,omitempty"`
}

// Apply overlays the patch on p and returns the merged record. p itself is
// not modified.
func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	merged := p
	if patch.Theme != nil {
		merged.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		merged.Notifications = *patch.Notifications
	}
	if patch.Privacy != nil {
		merged.Privacy = *patch.Privacy
	}
	if patch.DisplaySettings != nil {
		merged.DisplaySettings = *patch.DisplaySettings
	}
	return merged
}

package domain

import "time"

// Persona is a named reading-mode preset affecting digest tone and format.
// The preset itself is opaque to this service, only the identifier with its
// display label and description are carried around.
type Persona string

// available personas
const (
	PersonaMorningBrief Persona = "morning_brief"
	PersonaDeepDive     Persona = "deep_dive"
	PersonaCasualReader Persona = "casual_reader"
	PersonaHeadlines    Persona = "headlines_only"
)

// Valid reports whether the persona is one of the known presets
func (p Persona) Valid() bool {
	switch p {
	case PersonaMorningBrief, PersonaDeepDive, PersonaCasualReader, PersonaHeadlines:
		return true
	}
	return false
}

// Label returns the display name for the persona
func (p Persona) Label() string {
	switch p {
	case PersonaMorningBrief:
		return "Morning Brief"
	case PersonaDeepDive:
		return "Deep Dive"
	case PersonaCasualReader:
		return "Casual Reader"
	case PersonaHeadlines:
		return "Headlines Only"
	}
	return string(p)
}

// Description returns a short explanation of the persona's reading mode
func (p Persona) Description() string {
	switch p {
	case PersonaMorningBrief:
		return "concise summaries to start the day"
	case PersonaDeepDive:
		return "long-form analysis with full context"
	case PersonaCasualReader:
		return "light tone, easy reading"
	case PersonaHeadlines:
		return "titles only, no summaries"
	}
	return ""
}

// Personas lists all known personas in display order
func Personas() []Persona {
	return []Persona{PersonaMorningBrief, PersonaDeepDive, PersonaCasualReader, PersonaHeadlines}
}

// Theme is the UI color scheme preference
type Theme string

// supported themes
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is supported
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// NotificationFrequency controls how often digest notifications are delivered
type NotificationFrequency string

// notification frequency values
const (
	FrequencyOff             NotificationFrequency = "off"
	FrequencyDaily           NotificationFrequency = "daily"
	FrequencyEveryOtherDay   NotificationFrequency = "every_other_day"
	FrequencyThreeTimesDaily NotificationFrequency = "three_times_daily"
	FrequencyWeekly          NotificationFrequency = "weekly"
)

// Valid reports whether the frequency is one of the known values
func (f NotificationFrequency) Valid() bool {
	switch f {
	case FrequencyOff, FrequencyDaily, FrequencyEveryOtherDay, FrequencyThreeTimesDaily, FrequencyWeekly:
		return true
	}
	return false
}

// PermissionState is the notification permission reported by the platform
type PermissionState string

// permission states
const (
	PermissionUnsupported PermissionState = "unsupported"
	PermissionDefault     PermissionState = "default" // not asked yet
	PermissionGranted     PermissionState = "granted"
	PermissionDenied      PermissionState = "denied"
)

// LegalMode selects which legal document is shown. A single enumeration
// instead of independent booleans, invalid overlay combinations can't exist.
type LegalMode string

// legal document modes
const (
	LegalTerms   LegalMode = "terms"
	LegalPrivacy LegalMode = "privacy"
	LegalSupport LegalMode = "support"
)

// Valid reports whether the mode names a known legal document
func (m LegalMode) Valid() bool {
	return m == LegalTerms || m == LegalPrivacy || m == LegalSupport
}

// Profile is the persisted set of user preferences
type Profile struct {
	Persona               Persona
	City                  string
	Theme                 Theme
	NotificationFrequency NotificationFrequency
	UpdatedAt             time.Time
}

// DefaultProfile returns the profile a fresh install starts with
func DefaultProfile() Profile {
	return Profile{
		Persona:               PersonaMorningBrief,
		City:                  "",
		Theme:                 ThemeLight,
		NotificationFrequency: FrequencyOff,
	}
}

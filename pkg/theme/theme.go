package theme

// Theme is the visual theme choice exposed by the shell's toggle.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case Light, Dark, System:
		return true
	}
	return false
}

// Class returns the CSS class applied to the document root.
// System defers to the client's media query and gets no class.
func (t Theme) Class() string {
	switch t {
	case Light:
		return "theme-light"
	case Dark:
		return "theme-dark"
	default:
		return ""
	}
}

// Next cycles light -> dark -> system -> light, the order the shell's
// toggle button steps through.
func (t Theme) Next() Theme {
	switch t {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

// NewThemePref creates the theme preference, defaulting to System.
func NewThemePref() *Pref[Theme] {
	return NewPref("theme", System)
}

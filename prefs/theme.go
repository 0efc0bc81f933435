package prefs

// Theme names as saved by the settings screen.
const (
	ThemeLight               = "Light"
	ThemeDark                = "Dark"
	ThemeTransparentDark     = "Transparent Dark"
	ThemeDayNight            = "DayNight"
	ThemeTransparentDayNight = "Transparent DayNight"
	ThemeTransparent         = "Transparent"
)

// Layout identifies the widget layout a theme renders with.
type Layout int

const (
	LayoutDefault Layout = iota
	LayoutDark
	LayoutTransparentDark
	LayoutAuto
	LayoutTransparentAuto
	LayoutTransparent
)

var layoutNames = map[Layout]string{
	LayoutDefault:         "widget_layout",
	LayoutDark:            "widget_layout_dark",
	LayoutTransparentDark: "widget_layout_transparent_dark",
	LayoutAuto:            "widget_layout_auto",
	LayoutTransparentAuto: "widget_layout_transparent_auto",
	LayoutTransparent:     "widget_layout_transparent",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return layoutNames[LayoutDefault]
}

// IsAuto reports whether the layout follows the host's day/night mode.
func (l Layout) IsAuto() bool {
	return l == LayoutAuto || l == LayoutTransparentAuto
}

// LayoutForTheme maps a stored theme name to its layout.
// Unrecognized names use LayoutDefault.
func LayoutForTheme(theme string) Layout {
	switch theme {
	case ThemeDark:
		return LayoutDark
	case ThemeTransparentDark:
		return LayoutTransparentDark
	case ThemeDayNight:
		return LayoutAuto
	case ThemeTransparentDayNight:
		return LayoutTransparentAuto
	case ThemeTransparent:
		return LayoutTransparent
	default:
		return LayoutDefault
	}
}

// IsTransparentTheme reports whether theme draws without a background.
func IsTransparentTheme(theme string) bool {
	switch theme {
	case ThemeTransparent, ThemeTransparentDark, ThemeTransparentDayNight:
		return true
	default:
		return false
	}
}

// isLightLayout resolves whether a layout renders light content.
// Auto layouts depend on nightMode, which the caller reads from the host UI.
func isLightLayout(l Layout, nightMode bool) bool {
	if l.IsAuto() {
		return !nightMode
	}
	return l == LayoutDefault || l == LayoutTransparent
}

// Orientation selects one of the two text size slots.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) key() Key {
	if o == Landscape {
		return KeyLandscapeTextSize
	}
	return KeyPortraitTextSize
}

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation accepts "portrait" or "landscape".
func ParseOrientation(name string) (Orientation, bool) {
	switch name {
	case "portrait":
		return Portrait, true
	case "landscape":
		return Landscape, true
	default:
		return Portrait, false
	}
}

package demo

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ThemePreferenceKey is the preferences key storing the theme choice.
const ThemePreferenceKey = "appTheme"

// forcedVariant wraps a theme to force a specific variant (light/dark).
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme. Mode is "dark", "light", or
// "system" (default).
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case "dark":
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// LoadThemePreference applies the saved theme preference on startup.
func LoadThemePreference(a fyne.App) {
	ApplyTheme(a, a.Preferences().StringWithFallback(ThemePreferenceKey, "system"))
}

// NewThemeSelector returns a selector widget that saves and applies the
// chosen theme.
func NewThemeSelector(a fyne.App) *widget.Select {
	selector := widget.NewSelect([]string{"System Default", "Light", "Dark"}, func(selected string) {
		var mode string
		switch selected {
		case "Dark":
			mode = "dark"
		case "Light":
			mode = "light"
		default:
			mode = "system"
		}
		a.Preferences().SetString(ThemePreferenceKey, mode)
		ApplyTheme(a, mode)
	})

	switch a.Preferences().StringWithFallback(ThemePreferenceKey, "system") {
	case "dark":
		selector.SetSelected("Dark")
	case "light":
		selector.SetSelected("Light")
	default:
		selector.SetSelected("System Default")
	}
	return selector
}

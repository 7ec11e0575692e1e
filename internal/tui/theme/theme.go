// Package theme defines color themes for the spendbuddy TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color
	Surface      lipgloss.Color
	SurfaceHover lipgloss.Color
	Border       lipgloss.Color
	BorderBright lipgloss.Color
	TextDim      lipgloss.Color
	TextMuted    lipgloss.Color
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	Green        lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
	Blue         lipgloss.Color
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderBright: lipgloss.Color("#575653"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	Green:        lipgloss.Color("#879A39"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// FlexokiLight is the light counterpart.
var FlexokiLight = Theme{
	Name:         "flexoki-light",
	Background:   lipgloss.Color("#FFFCF0"),
	Surface:      lipgloss.Color("#F2F0E5"),
	SurfaceHover: lipgloss.Color("#E6E4D9"),
	Border:       lipgloss.Color("#DAD8CE"),
	BorderBright: lipgloss.Color("#B7B5AC"),
	TextDim:      lipgloss.Color("#B7B5AC"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#100F0F"),
	Accent:       lipgloss.Color("#24837B"),
	Green:        lipgloss.Color("#66800B"),
	Orange:       lipgloss.Color("#BC5215"),
	Red:          lipgloss.Color("#AF3029"),
	Blue:         lipgloss.Color("#205EA6"),
	Yellow:       lipgloss.Color("#AD8301"),
}

// All lists the selectable themes.
var All = []Theme{FlexokiDark, FlexokiLight}

// SetActive switches the active theme by name. Unknown names keep the
// current theme.
func SetActive(name string) {
	for _, t := range All {
		if t.Name == name {
			Active = t
			return
		}
	}
}

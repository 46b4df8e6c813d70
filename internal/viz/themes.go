package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/atomsim/internal/atom"
)

// Theme defines color scheme for the TUI. Scene colors come from the
// composer; the theme only styles chrome and orbit guides.
type Theme struct {
	Name       string
	Primary    atom.Color
	Secondary  atom.Color
	Accent     atom.Color
	Background atom.Color
	Text       atom.Color
	Muted      atom.Color
	Running    atom.Color
	Paused     atom.Color
	Recording  atom.Color
	// GuideMix is how far orbit guides fade from the electron color toward Background.
	GuideMix float64
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    atom.MustColor("#ff00ff"),
		Secondary:  atom.MustColor("#00ffff"),
		Accent:     atom.MustColor("#ffff00"),
		Background: atom.MustColor("#0a0a0a"),
		Text:       atom.MustColor("#ffffff"),
		Muted:      atom.MustColor("#666666"),
		Running:    atom.MustColor("#00ff88"),
		Paused:     atom.MustColor("#ff8800"),
		Recording:  atom.MustColor("#ff0000"),
		GuideMix:   0.55,
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    atom.MustColor("#00ff00"),
		Secondary:  atom.MustColor("#00cc00"),
		Accent:     atom.MustColor("#88ff88"),
		Background: atom.MustColor("#001100"),
		Text:       atom.MustColor("#00ff00"),
		Muted:      atom.MustColor("#005500"),
		Running:    atom.MustColor("#88ff88"),
		Paused:     atom.MustColor("#ffff00"),
		Recording:  atom.MustColor("#ff0000"),
		GuideMix:   0.7,
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    atom.MustColor("#ffffff"),
		Secondary:  atom.MustColor("#cccccc"),
		Accent:     atom.MustColor("#0088ff"),
		Background: atom.MustColor("#000000"),
		Text:       atom.MustColor("#ffffff"),
		Muted:      atom.MustColor("#888888"),
		Running:    atom.MustColor("#00ff00"),
		Paused:     atom.MustColor("#ffaa00"),
		Recording:  atom.MustColor("#ff0000"),
		GuideMix:   0.4,
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    atom.MustColor("#0077be"),
		Secondary:  atom.MustColor("#00a8cc"),
		Accent:     atom.MustColor("#ffd700"),
		Background: atom.MustColor("#001a33"),
		Text:       atom.MustColor("#e0f0ff"),
		Muted:      atom.MustColor("#4488aa"),
		Running:    atom.MustColor("#00ff88"),
		Paused:     atom.MustColor("#ffcc00"),
		Recording:  atom.MustColor("#ff4444"),
		GuideMix:   0.5,
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    atom.MustColor("#ff6b6b"),
		Secondary:  atom.MustColor("#feca57"),
		Accent:     atom.MustColor("#ff9ff3"),
		Background: atom.MustColor("#2d1b2e"),
		Text:       atom.MustColor("#fff5f5"),
		Muted:      atom.MustColor("#8b6b8c"),
		Running:    atom.MustColor("#5fd068"),
		Paused:     atom.MustColor("#ffc048"),
		Recording:  atom.MustColor("#ff4757"),
		GuideMix:   0.5,
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, cyberpunk when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Guide is the faded orbit color for an electron of color c.
func (t Theme) Guide(c atom.Color) atom.Color {
	return c.Blend(t.Background, t.GuideMix)
}

func fg(c atom.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

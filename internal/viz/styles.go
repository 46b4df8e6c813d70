package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/atomsim/internal/atom"
)

// styles are the lipgloss styles derived from a Theme.
type styles struct {
	canvas    lipgloss.Style
	panel     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	active    lipgloss.Style
	inactive  lipgloss.Style
	graph     lipgloss.Style
	help      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	recording lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Muted.Hex())).
			Padding(1, 2).
			Width(46),
		header:    fg(t.Secondary).Bold(true).MarginBottom(1),
		label:     fg(t.Muted).Width(10),
		value:     fg(t.Text),
		active:    fg(t.Primary).Bold(true).Reverse(true),
		inactive:  fg(t.Muted),
		graph:     fg(t.Accent).Padding(1, 0),
		help:      fg(t.Muted).Italic(true).MarginTop(1),
		running:   fg(t.Running).Bold(true),
		paused:    fg(t.Paused).Bold(true),
		recording: fg(t.Recording).Bold(true).Blink(true),
	}
}

// GradientText colors each rune of text along a Lab blend from start to end.
func GradientText(text string, start, end atom.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		result.WriteString(fg(start.Blend(end, t)).Render(string(r)))
	}
	return result.String()
}

// Swatch is a colored bullet followed by text.
func Swatch(c atom.Color, text string) string {
	return fg(c).Render("●") + " " + text
}

// Separator is a muted rule with a centered diamond.
func Separator(width int, muted atom.Color) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return fg(muted).Render(left + " ◆ " + right)
}

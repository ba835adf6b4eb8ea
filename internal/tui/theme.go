package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the token set consumed by the shell. Routing logic never reads
// it; only headers, labels and screen chrome do.
type Theme struct {
	Accent lipgloss.Color
	Soft   lipgloss.Color
	Text   lipgloss.Color
	Dim    lipgloss.Color
	Error  lipgloss.Color
	Bg     lipgloss.Color
}

var themes = map[string]Theme{
	// Default: warm, high-contrast palette for readability.
	"warm": {
		Accent: lipgloss.Color("#E8A33D"),
		Soft:   lipgloss.Color("#D98E73"),
		Text:   lipgloss.Color("#F2E9DE"),
		Dim:    lipgloss.Color("#8C7B6C"),
		Error:  lipgloss.Color("#E05C4B"),
		Bg:     lipgloss.Color("#241F1A"),
	},
	"calm": {
		Accent: lipgloss.Color("#6FA8DC"),
		Soft:   lipgloss.Color("#93C4BC"),
		Text:   lipgloss.Color("#E6EDF3"),
		Dim:    lipgloss.Color("#6B7A8C"),
		Error:  lipgloss.Color("#D46A6A"),
		Bg:     lipgloss.Color("#1A2026"),
	},
}

// LoadTheme returns the named token set, falling back to "warm".
func LoadTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["warm"]
}

// styles derived from a theme. Built once per theme selection.
type styleSet struct {
	Title      lipgloss.Style
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Header     lipgloss.Style
	Body       lipgloss.Style
	RowCursor  lipgloss.Style
	Row        lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	OverlayBox lipgloss.Style
	Help       lipgloss.Style
}

func newStyles(t Theme) styleSet {
	return styleSet{
		Title: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		TabActive: lipgloss.NewStyle().Foreground(t.Bg).Background(t.Accent).
			Bold(true).Padding(0, 1),
		TabIdle: lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1),
		Header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Dim),
		Body:      lipgloss.NewStyle().Foreground(t.Text).Padding(1, 2),
		RowCursor: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Row:       lipgloss.NewStyle().Foreground(t.Text),
		Dim:       lipgloss.NewStyle().Foreground(t.Dim),
		Error:     lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Soft).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(t.Dim),
	}
}

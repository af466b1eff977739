// Package styles holds the colors and lipgloss styles of the sample list.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette plus styles derived from it.
type Theme struct {
	Accent    lipgloss.Color // selected row marker, title gradient start
	AccentAlt lipgloss.Color // title gradient end

	Fg       lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color
	BgToast  lipgloss.Color

	Checked lipgloss.Color
	Danger  lipgloss.Color

	styles *Styles
}

// Styles are the pre-built styles used by the row templates and the app.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Cursor  lipgloss.Style // selected row background
	Marker  lipgloss.Style // selection marker in the gutter
	Checked lipgloss.Style
	Delete  lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
	Empty   lipgloss.Style // placeholder shown for an empty list
	Toast   lipgloss.Style
}

var defaultTheme = Theme{
	Accent:    lipgloss.Color("#a78bfa"),
	AccentAlt: lipgloss.Color("#f1a208"),

	Fg:       lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),
	BgToast:  lipgloss.Color("#262626"),

	Checked: lipgloss.Color("#42b883"),
	Danger:  lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of this theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.build()
	}
	return t.styles
}

func (t *Theme) build() *Styles {
	base := lipgloss.NewStyle().Foreground(t.Fg)
	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.Fg),
		Marker:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Checked: lipgloss.NewStyle().Foreground(t.Checked),
		Delete:  lipgloss.NewStyle().Foreground(t.Danger),
		Info:    lipgloss.NewStyle().Foreground(t.AccentAlt),
		Header:  base.Bold(true),
		Empty:   lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Toast: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Background(t.BgToast).
			Foreground(t.Fg).
			Padding(0, 1),
	}
}

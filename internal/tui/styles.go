package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thisguymartin/stylebook/internal/convert"
	"github.com/thisguymartin/stylebook/internal/style"
)

// Color palette
const (
	ColorPrimary = lipgloss.Color("#FF6B9D") // rose pink
	ColorAccent  = lipgloss.Color("#C8B8F5") // lavender
	ColorMuted   = lipgloss.Color("#6C7086") // subdued gray
	ColorError   = lipgloss.Color("#F38BA8")
)

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 4)

	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError)
)

// palette is a style's colors flattened to opaque hex for terminal drawing.
type palette struct {
	bg, surface, raised      lipgloss.Color
	text, textSoft, textFade lipgloss.Color
	accent, border           lipgloss.Color
}

func paletteOf(c style.Colors) palette {
	base := convert.Flatten(c.BgPrimary, "#ffffff")
	flat := func(v string) lipgloss.Color { return lipgloss.Color(convert.Flatten(v, base)) }
	return palette{
		bg:       lipgloss.Color(base),
		surface:  flat(c.BgSecondary),
		raised:   flat(c.BgTertiary),
		text:     flat(c.TextPrimary),
		textSoft: flat(c.TextSecondary),
		textFade: flat(c.TextTertiary),
		accent:   flat(c.Accent),
		border:   flat(c.Border),
	}
}

// Swatch renders a two-cell block in color, flattened over background.
func Swatch(color, background string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(convert.Flatten(color, background))).
		Render("  ")
}

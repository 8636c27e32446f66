package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/thisguymartin/stylebook/internal/contrast"
	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

const minMockWidth = 24

// mockStyles are the lipgloss styles for one record's mock, all painted on
// the record's flattened palette.
type mockStyles struct {
	frame, soft, fade, strong lipgloss.Style
	card, field, button, tab  lipgloss.Style
	inner                     int
}

func newMockStyles(rec style.Record, width int) mockStyles {
	p := paletteOf(rec.Colors)
	border := lipgloss.RoundedBorder()
	if strings.HasPrefix(strings.TrimSpace(rec.Radius), "0") {
		border = lipgloss.NormalBorder()
	}
	inner := width - 4
	on := func(bg lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Background(bg) }

	return mockStyles{
		frame:  on(p.bg).Foreground(p.text).Width(width).Padding(1, 2),
		soft:   on(p.bg).Foreground(p.textSoft),
		fade:   on(p.bg).Foreground(p.textFade),
		strong: on(p.bg).Foreground(p.text).Bold(true),
		card: on(p.surface).Foreground(p.text).
			Border(border).BorderForeground(p.border).BorderBackground(p.bg).
			Padding(0, 1).Width(inner - 2),
		field: on(p.raised).Foreground(p.textSoft).
			Border(border).BorderForeground(p.border).BorderBackground(p.bg).
			Padding(0, 1).Width(inner - 2),
		button: on(p.accent).Foreground(p.bg).Bold(true).Padding(0, 2),
		tab:    on(p.accent).Foreground(p.bg).Padding(0, 1),
		inner:  inner,
	}
}

// renderMock draws the app or website mock for rec in its own palette.
func renderMock(rec style.Record, view preview.ViewMode, width int) string {
	if width < minMockWidth {
		width = minMockWidth
	}
	s := newMockStyles(rec, width)

	var lines []string
	if view == preview.ViewWebsite {
		lines = websiteMock(rec, s)
	} else {
		lines = appMock(s)
	}
	if deco := decorationLine(rec); deco != "" {
		lines = append([]string{s.fade.Render(deco)}, lines...)
	}
	if ov := style.Overlays(rec); len(ov) > 0 {
		labels := make([]string, len(ov))
		for i, o := range ov {
			labels[i] = o.Label()
		}
		lines = append(lines, s.fade.Render("overlay: "+strings.Join(labels, " · ")))
	}

	rows := strings.Split(strings.Join(lines, "\n"), "\n")
	for i, r := range rows {
		rows[i] = ansi.Truncate(r, s.inner, "…")
	}
	return s.frame.Render(strings.Join(rows, "\n"))
}

func appMock(s mockStyles) []string {
	return []string{
		s.strong.Render("語 日本語") + s.soft.Render("  Quick Guide"),
		"",
		s.field.Render("⌕ Search phrases..."),
		s.tab.Render("Restaurant") + s.soft.Render("  Shopping  Conversation  Counters"),
		s.card.Render(strings.Join([]string{
			"Japanese Typography",
			"あいうえお かきくけこ",
			"アイウエオ カキクケコ",
			"日本語 漢字 勉強",
		}, "\n")),
		s.card.Render("いらっしゃいませ\nIrasshaimase · Welcome to the store"),
		s.card.Render("何名様ですか？\nNanmei-sama desu ka? · How many people?"),
	}
}

func websiteMock(rec style.Record, s mockStyles) []string {
	lines := []string{
		s.strong.Render(rec.Name) + s.soft.Render("   Work  Studio  Journal  Contact"),
		"",
		s.strong.Render("Design that sets the tone."),
		s.soft.Render(ansi.Truncate(rec.Description, s.inner, "…")),
		s.button.Render("Get started"),
		"",
	}
	features := [][2]string{
		{"Consistent", "One palette, every surface."},
		{"Accessible", "Contrast checked against WCAG AA."},
		{"Portable", "Export to CSS, SwiftUI or a prompt."},
	}
	for _, f := range features {
		lines = append(lines, s.card.Render(f[0]+"\n"+f[1]))
	}
	return append(lines,
		"",
		s.strong.Render("Stay in the loop"),
		s.field.Render("you@example.com"),
		s.button.Render("Subscribe"),
		"",
		s.fade.Render("© Studio "+rec.Name),
	)
}

func decorationLine(rec style.Record) string {
	var glyphs []string
	for _, d := range style.Decorations(rec.ID) {
		if d.Glyph != "" {
			glyphs = append(glyphs, d.Glyph)
		}
	}
	return strings.Join(glyphs, "  ")
}

// renderInfo is the side panel: palette, typography, properties and the
// compliance verdict for platform.
func renderInfo(rec style.Record, platform generator.Platform, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(rec.Name) + "\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(MutedStyle.Render(rec.Description)) + "\n\n")

	sum := style.Summarize(rec)
	for _, row := range sum.PaletteRows {
		b.WriteString(fmt.Sprintf("%-11s", row.Name))
		for _, c := range row.Colors {
			b.WriteString(Swatch(c, rec.Colors.BgPrimary) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + HeaderStyle.Render("Typography") + "\n")
	b.WriteString("Display  " + sum.DisplayFont + "\n")
	b.WriteString("Body     " + sum.BodyFont + "\n")

	b.WriteString("\n" + HeaderStyle.Render("Properties") + "\n")
	b.WriteString("Radius   " + sum.Radius + "\n")
	b.WriteString("Shadow   " + sum.Shadow + "\n")
	if sum.Gradient != "" {
		b.WriteString("Gradient yes\n")
	}

	b.WriteString("\n" + HeaderStyle.Render("Compliance · "+platform.Label()) + "\n")
	var table contrast.Table
	if platform == generator.PlatformIOS {
		table = contrast.IOSOverrides()
	}
	report := contrast.Evaluate(rec.Colors, table, rec.ID)
	switch {
	case report.Overridden:
		b.WriteString(SelectedStyle.Render("adjusted") + MutedStyle.Render(" · platform overrides applied") + "\n")
	case report.Compliant:
		b.WriteString(SelectedStyle.Render(report.Status()) + "\n")
	default:
		b.WriteString(ErrorStyle.Render(report.Status()) + "\n")
	}
	for _, is := range report.Issues {
		b.WriteString(lipgloss.NewStyle().Width(width).Render(MutedStyle.Render("· "+is.Message)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

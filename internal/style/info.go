package style

import "strings"

// PaletteRow is one labelled group of swatches in a style summary.
type PaletteRow struct {
	Name   string
	Colors []string
}

// Summary is the condensed view of a style shown beside its preview.
type Summary struct {
	PaletteRows []PaletteRow
	DisplayFont string
	BodyFont    string
	Radius      string
	// Shadow is "None" or "Custom".
	Shadow   string
	Gradient string
	Overlays []Overlay
}

// Summarize builds the summary for r.
func Summarize(r Record) Summary {
	c := r.Colors
	shadow := "None"
	if r.HasShadow() {
		shadow = "Custom"
	}
	return Summary{
		PaletteRows: []PaletteRow{
			{Name: "Background", Colors: []string{c.BgPrimary, c.BgSecondary, c.BgTertiary}},
			{Name: "Text", Colors: []string{c.TextPrimary, c.TextSecondary, c.TextTertiary}},
			{Name: "Accent", Colors: []string{c.Accent, c.AccentSoft, c.Secondary}},
			{Name: "Border", Colors: []string{c.Border, c.BorderStrong}},
		},
		DisplayFont: FirstFamily(r.Fonts.Display),
		BodyFont:    FirstFamily(r.Fonts.Body),
		Radius:      r.Radius,
		Shadow:      shadow,
		Gradient:    r.Gradient,
		Overlays:    Overlays(r),
	}
}

// FirstFamily returns the first family of a CSS font stack with quotes
// removed, e.g. `"Inter", sans-serif` -> "Inter".
func FirstFamily(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.TrimSpace(strings.ReplaceAll(first, `"`, ""))
}

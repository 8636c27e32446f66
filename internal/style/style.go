// Package style holds the catalog of design styles: the immutable style
// records, the category tree that indexes them, and the decoration table
// each preview draws on top of a style's palette.
//
// Everything in this package is built once at program start and never
// mutated. Lookups of unknown ids are an expected outcome and are reported
// with a boolean, never an error.
package style

import "strings"

// DefaultID is substituted whenever an external id does not name a style.
const DefaultID = "minimalist"

// JapaneseFallback is used when a style does not define a Japanese font stack.
const JapaneseFallback = `"Noto Sans JP", sans-serif`

// Slot names one color role in a style's palette.
type Slot string

const (
	SlotBgPrimary     Slot = "bgPrimary"
	SlotBgSecondary   Slot = "bgSecondary"
	SlotBgTertiary    Slot = "bgTertiary"
	SlotTextPrimary   Slot = "textPrimary"
	SlotTextSecondary Slot = "textSecondary"
	SlotTextTertiary  Slot = "textTertiary"
	SlotAccent        Slot = "accent"
	SlotAccentSoft    Slot = "accentSoft"
	SlotSecondary     Slot = "secondary"
	SlotBorder        Slot = "border"
	SlotBorderStrong  Slot = "borderStrong"
)

// Slots lists every color slot in display order.
var Slots = []Slot{
	SlotBgPrimary, SlotBgSecondary, SlotBgTertiary,
	SlotTextPrimary, SlotTextSecondary, SlotTextTertiary,
	SlotAccent, SlotAccentSoft, SlotSecondary,
	SlotBorder, SlotBorderStrong,
}

// CSSVar returns the custom-property name for the slot, e.g. "--bg-primary".
func (s Slot) CSSVar() string {
	var b strings.Builder
	b.WriteString("--")
	for _, r := range string(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Colors is a style's palette. Values are CSS color strings: 6-digit hex,
// rgb()/rgba(), or the literal "transparent".
type Colors struct {
	BgPrimary     string `json:"bgPrimary"`
	BgSecondary   string `json:"bgSecondary"`
	BgTertiary    string `json:"bgTertiary"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextTertiary  string `json:"textTertiary"`
	Accent        string `json:"accent"`
	AccentSoft    string `json:"accentSoft"`
	Secondary     string `json:"secondary"`
	Border        string `json:"border"`
	BorderStrong  string `json:"borderStrong"`
}

// Get returns the value stored in slot, or "" for an unknown slot.
func (c Colors) Get(slot Slot) string {
	switch slot {
	case SlotBgPrimary:
		return c.BgPrimary
	case SlotBgSecondary:
		return c.BgSecondary
	case SlotBgTertiary:
		return c.BgTertiary
	case SlotTextPrimary:
		return c.TextPrimary
	case SlotTextSecondary:
		return c.TextSecondary
	case SlotTextTertiary:
		return c.TextTertiary
	case SlotAccent:
		return c.Accent
	case SlotAccentSoft:
		return c.AccentSoft
	case SlotSecondary:
		return c.Secondary
	case SlotBorder:
		return c.Border
	case SlotBorderStrong:
		return c.BorderStrong
	}
	return ""
}

// With returns a copy of c with the given slots replaced. The receiver is
// not modified.
func (c Colors) With(overrides map[Slot]string) Colors {
	for slot, v := range overrides {
		switch slot {
		case SlotBgPrimary:
			c.BgPrimary = v
		case SlotBgSecondary:
			c.BgSecondary = v
		case SlotBgTertiary:
			c.BgTertiary = v
		case SlotTextPrimary:
			c.TextPrimary = v
		case SlotTextSecondary:
			c.TextSecondary = v
		case SlotTextTertiary:
			c.TextTertiary = v
		case SlotAccent:
			c.Accent = v
		case SlotAccentSoft:
			c.AccentSoft = v
		case SlotSecondary:
			c.Secondary = v
		case SlotBorder:
			c.Border = v
		case SlotBorderStrong:
			c.BorderStrong = v
		}
	}
	return c
}

// Fonts holds CSS font-family stacks.
type Fonts struct {
	Display  string `json:"display"`
	Body     string `json:"body"`
	Japanese string `json:"japanese,omitempty"`
}

// JapaneseOrFallback returns the Japanese stack, or JapaneseFallback when unset.
func (f Fonts) JapaneseOrFallback() string {
	if f.Japanese == "" {
		return JapaneseFallback
	}
	return f.Japanese
}

// Record describes one design style.
type Record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples"`
	Colors      Colors   `json:"colors"`
	Fonts       Fonts    `json:"fonts"`
	Radius      string   `json:"radius"`
	Shadow      string   `json:"shadow"`
	// Gradient, when set, replaces the flat bgPrimary background.
	Gradient string `json:"gradient,omitempty"`

	HasScanlines bool `json:"hasScanlines,omitempty"`
	HasGrid      bool `json:"hasGrid,omitempty"`
	HasNoise     bool `json:"hasNoise,omitempty"`
	HasGrain     bool `json:"hasGrain,omitempty"`
}

// HasShadow reports whether the style defines a shadow.
func (r Record) HasShadow() bool {
	return r.Shadow != "" && r.Shadow != "none"
}

// Background returns the gradient when present, otherwise bgPrimary.
func (r Record) Background() string {
	if r.Gradient != "" {
		return r.Gradient
	}
	return r.Colors.BgPrimary
}

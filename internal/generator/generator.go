// Package generator renders a style record into export text: an AI prompt,
// a markdown style guide, a SwiftUI color extension and a CSS variable
// block.
//
// Every generator is a pure function of its arguments. Output contains no
// timestamps or map-ordered data, so identical inputs give identical bytes.
package generator

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/thisguymartin/stylebook/internal/contrast"
	"github.com/thisguymartin/stylebook/internal/style"
)

// Platform selects the export target.
type Platform string

const (
	PlatformWeb Platform = "web"
	PlatformIOS Platform = "ios"
)

// ParsePlatform maps free-form input to a Platform, defaulting to web. The
// boolean reports whether s named a platform.
func ParsePlatform(s string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "web", "":
		return PlatformWeb, s != ""
	case "ios", "swift", "swiftui":
		return PlatformIOS, true
	}
	return PlatformWeb, false
}

// Label is the human-readable platform name.
func (p Platform) Label() string {
	if p == PlatformIOS {
		return "iOS (SwiftUI)"
	}
	return "Web"
}

// sampleDescriptionLen bounds the description quoted in the markdown sample
// prompt.
const sampleDescriptionLen = 60

var iosOverrides = contrast.IOSOverrides()

type token struct {
	Slot  style.Slot
	Var   string
	Value string
}

// compliance is the iOS status block. Zero value means web output.
type compliance struct {
	Status    string
	Reason    string
	Note      string
	Issues    []contrast.Issue
	Adjusted  []token
	Evaluated bool
}

// view is the data every template renders from.
type view struct {
	Rec        style.Record
	PreviewURL string
	Platform   Platform
	Colors     style.Colors
	Tokens     []token
	Japanese   string
	Effects    []string
	Compliance compliance
	// Sample is the description as quoted by the markdown sample prompt.
	Sample string
}

func newView(rec style.Record, previewURL string, p Platform) view {
	v := view{
		Rec:        rec,
		PreviewURL: previewURL,
		Platform:   p,
		Colors:     rec.Colors,
		Japanese:   rec.Fonts.JapaneseOrFallback(),
		Effects:    effects(rec),
		Sample:     truncate(sampleDescriptionLen, rec.Description),
	}

	if p == PlatformIOS {
		report := contrast.Evaluate(rec.Colors, iosOverrides, rec.ID)
		v.Compliance = compliance{Evaluated: true, Status: "pass"}
		if o, ok := iosOverrides.Lookup(rec.ID); ok {
			v.Colors = rec.Colors.With(o.Colors)
			v.Compliance.Status = "adjusted"
			v.Compliance.Reason = o.Reason
			v.Compliance.Note = o.Note
			for _, slot := range style.Slots {
				if val, ok := o.Colors[slot]; ok {
					v.Compliance.Adjusted = append(v.Compliance.Adjusted, token{slot, slot.CSSVar(), val})
				}
			}
		} else if !report.Compliant {
			v.Compliance.Status = "needs adjustment"
			v.Compliance.Issues = report.Issues
		}
	}

	for _, slot := range style.Slots {
		v.Tokens = append(v.Tokens, token{slot, slot.CSSVar(), v.Colors.Get(slot)})
	}
	return v
}

// effects lists the active decorative effects by label.
func effects(rec style.Record) []string {
	var out []string
	for _, o := range style.Overlays(rec) {
		out = append(out, o.Label())
	}
	if rec.Gradient != "" {
		out = append(out, "Gradient background")
	}
	return out
}

var funcs = template.FuncMap{
	"join": func(s []string) string { return strings.Join(s, ", ") },
	"orNone": func(s []string) string {
		if len(s) == 0 {
			return "None"
		}
		return strings.Join(s, ", ")
	},
	"first": style.FirstFamily,
}

func render(t *template.Template, v view) string {
	var buf bytes.Buffer
	// Templates are parsed at init and only reference fields of view, so
	// execution cannot fail.
	if err := t.Execute(&buf, v); err != nil {
		panic("generator: " + err.Error())
	}
	return buf.String()
}

// truncate shortens s to at most n runes, appending "..." when cut.
func truncate(n int, s string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRight(string(r[:n]), " ,.;:") + "..."
}

package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thisguymartin/stylebook/internal/convert"
	"github.com/thisguymartin/stylebook/internal/style"
)

// Swift renders rec's palette as a SwiftUI Color extension with one static
// member per slot. Colors that cannot be converted become Color.clear for
// "transparent" and Color.gray otherwise, annotated with the original value.
func Swift(rec style.Record, p Platform) string {
	v := newView(rec, "", p)

	var b strings.Builder
	b.WriteString("import SwiftUI\n\n")
	fmt.Fprintf(&b, "// %s design tokens (%s)\n", rec.Name, p.Label())
	if v.Compliance.Evaluated {
		fmt.Fprintf(&b, "// Compliance: %s\n", v.Compliance.Status)
		if v.Compliance.Reason != "" {
			fmt.Fprintf(&b, "// %s\n", v.Compliance.Reason)
		}
	}
	b.WriteString("extension Color {\n")
	fmt.Fprintf(&b, "    enum %s {\n", TypeName(rec.ID))
	for _, t := range v.Tokens {
		fmt.Fprintf(&b, "        static let %s = %s\n", t.Slot, swiftColor(t.Value))
	}
	b.WriteString("    }\n}\n")
	return b.String()
}

func swiftColor(value string) string {
	u, err := convert.ToUnitTriple(value)
	if err == nil {
		return "Color(" + u.String() + ")"
	}
	if strings.EqualFold(strings.TrimSpace(value), "transparent") {
		return "Color.clear"
	}
	return fmt.Sprintf("Color.gray // unsupported color %q", value)
}

// TypeName converts a style id into an UpperCamelCase Swift identifier,
// e.g. "retro-futuristic" -> "RetroFuturistic". Ids starting with a digit
// are prefixed with "Style".
func TypeName(id string) string {
	var b strings.Builder
	upper := true
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "Style" + name
	}
	return name
}

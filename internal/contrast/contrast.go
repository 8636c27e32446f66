// Package contrast implements WCAG relative luminance and contrast ratio
// checks over style palettes.
//
// The parsers here never fail. Colors that cannot be measured map to fixed
// fallback luminances so callers can keep generating text:
//
//   - "transparent" and anything that is neither hex nor rgb()/rgba()
//     measure as 1.0, i.e. treated as maximally light.
//   - An rgb()/rgba() string whose channels cannot be read measures as 0.5.
//
// The two fallbacks are inconsistent with each other and both are kept.
package contrast

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MinTextRatio is the WCAG AA minimum for normal-size text.
const MinTextRatio = 4.5

const (
	lightFallback   = 1.0
	neutralFallback = 0.5
)

var (
	hexColor    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	rgbChannels = regexp.MustCompile(`^rgba?\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)`)
)

// Luminance returns the relative luminance of color in [0,1].
func Luminance(color string) float64 {
	c := strings.TrimSpace(color)
	lower := strings.ToLower(c)

	switch {
	case lower == "transparent":
		return lightFallback
	case strings.HasPrefix(lower, "rgb"):
		m := rgbChannels.FindStringSubmatch(lower)
		if m == nil {
			return neutralFallback
		}
		return relative(channel(m[1]), channel(m[2]), channel(m[3]))
	case hexColor.MatchString(c):
		col, err := colorful.Hex(c)
		if err != nil {
			return lightFallback
		}
		return relative(col.R, col.G, col.B)
	}
	return lightFallback
}

// Ratio returns the contrast ratio between a and b, always >= 1. It is
// symmetric in its arguments.
func Ratio(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// channel parses an 8-bit channel string and scales it to [0,1].
func channel(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return math.Min(math.Max(v, 0), 255) / 255
}

func relative(r, g, b float64) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize applies the sRGB transfer function to a channel in [0,1].
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Package convert translates CSS color strings into the representations used
// by export targets and terminal renderers.
package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/thisguymartin/stylebook/internal/errors"
)

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbaPattern = regexp.MustCompile(`^rgba?\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*(?:,\s*(\d+(?:\.\d+)?|\.\d+)\s*)?\)$`)
)

// FormatError reports a color string that is neither 6-digit hex nor
// rgb()/rgba().
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported color format %q", e.Input)
}

// Code implements the coded-error contract of internal/errors.
func (e *FormatError) Code() errors.Code {
	return errors.ErrCodeInvalidColor
}

// UnitTriple is a color with each channel scaled to [0,1] and rounded to
// three decimals.
type UnitTriple struct {
	R, G, B, A float64
}

// String formats the triple the way SwiftUI's Color initializer expects its
// arguments.
func (u UnitTriple) String() string {
	return fmt.Sprintf("red: %s, green: %s, blue: %s, opacity: %s",
		trim(u.R), trim(u.G), trim(u.B), trim(u.A))
}

// CSS formats the triple as an rgba() color with 8-bit channels.
func (u UnitTriple) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(math.Round(u.R*255)), int(math.Round(u.G*255)), int(math.Round(u.B*255)), trim(u.A))
}

// ToUnitTriple converts a 6-digit hex or rgb()/rgba() color. Hex colors and
// rgb() have alpha 1. Any other input, "transparent" included, returns a
// *FormatError.
func ToUnitTriple(color string) (UnitTriple, error) {
	c := strings.TrimSpace(color)

	if m := hexPattern.FindStringSubmatch(c); m != nil {
		return UnitTriple{
			R: round3(hexByte(m[1]) / 255),
			G: round3(hexByte(m[2]) / 255),
			B: round3(hexByte(m[3]) / 255),
			A: 1,
		}, nil
	}

	if m := rgbaPattern.FindStringSubmatch(strings.ToLower(c)); m != nil {
		a := 1.0
		if m[4] != "" {
			v, err := strconv.ParseFloat(m[4], 64)
			if err != nil {
				return UnitTriple{}, &FormatError{Input: color}
			}
			a = clamp(v, 0, 1)
		}
		return UnitTriple{
			R: round3(clamp(parse(m[1]), 0, 255) / 255),
			G: round3(clamp(parse(m[2]), 0, 255) / 255),
			B: round3(clamp(parse(m[3]), 0, 255) / 255),
			A: round3(a),
		}, nil
	}

	return UnitTriple{}, &FormatError{Input: color}
}

// Flatten resolves color to an opaque 6-digit hex string by compositing it
// over background. Transparent and unparseable colors return background. It
// is meant for terminals, which cannot draw translucency.
func Flatten(color, background string) string {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}
	u, err := ToUnitTriple(color)
	if err != nil {
		return bg.Hex()
	}
	fg := colorful.Color{R: u.R, G: u.G, B: u.B}
	if u.A >= 1 {
		return fg.Clamped().Hex()
	}
	return bg.BlendRgb(fg, u.A).Clamped().Hex()
}

func hexByte(s string) float64 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return float64(v)
}

func parse(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package style

// DecorationKind classifies a decorative element drawn over a preview.
type DecorationKind string

const (
	KindShape DecorationKind = "shape" // filled geometric element
	KindLine  DecorationKind = "line"  // rule, stripe or beam
	KindGlyph DecorationKind = "glyph" // a single character
	KindField DecorationKind = "field" // full-surface pattern
)

// Decoration is one decorative element. Class is the stable element name
// used by HTML renderers; Glyph is what text renderers print.
type Decoration struct {
	Kind  DecorationKind `json:"kind"`
	Class string         `json:"class"`
	Glyph string         `json:"glyph"`
}

func shape(class, glyph string) Decoration { return Decoration{KindShape, class, glyph} }
func line(class, glyph string) Decoration  { return Decoration{KindLine, class, glyph} }
func glyph(class, g string) Decoration     { return Decoration{KindGlyph, class, g} }
func field(class, glyph string) Decoration { return Decoration{KindField, class, glyph} }

var (
	decoBrutal = []Decoration{
		line("brutal-stripe-1", "▬"), line("brutal-stripe-2", "▬"), glyph("brutal-asterisk", "*"),
	}
	decoOrganic = []Decoration{
		shape("organic-blob-1", "●"), shape("organic-blob-2", "◍"), glyph("organic-leaf", "❦"),
	}
	decoKinetic = []Decoration{
		shape("kinetic-ring-1", "◯"), shape("kinetic-ring-2", "◯"),
	}
)

// decorations maps style ids to their decoration sets. Ids that share a
// visual language share a slice.
var decorations = map[string][]Decoration{
	"glassmorphism": {shape("glass-orb-1", "◉"), shape("glass-orb-2", "◉"), shape("glass-orb-3", "◉")},
	"neomorphism":   {shape("neo-circle-1", "◐"), shape("neo-circle-2", "◑")},
	"brutalist":     decoBrutal,
	"neubrutalism":  decoBrutal,
	"memphis": {
		line("memphis-squiggle", "〰"), shape("memphis-circle", "●"),
		shape("memphis-triangle", "▲"), field("memphis-dots", "∴"),
	},
	"retro-futuristic": {shape("retro-sun", "◓"), shape("retro-mountains", "⛰")},
	"vaporwave":        {field("vapor-grid", "▦"), shape("vapor-sun", "◓"), glyph("vapor-palm", "🌴")},
	"cyberpunk": {
		field("cyber-glitch", "▚"), line("cyber-line-1", "━"), line("cyber-line-2", "━"),
		glyph("cyber-corner-tl", "┏"), glyph("cyber-corner-br", "┛"),
	},
	"art-deco":    {shape("artdeco-fan-1", "◠"), shape("artdeco-fan-2", "◠"), line("artdeco-line", "═")},
	"bauhaus":     {shape("bauhaus-circle", "●"), shape("bauhaus-square", "■"), shape("bauhaus-triangle", "▲")},
	"swiss":       {field("swiss-grid", "┼"), shape("swiss-dot-1", "●"), shape("swiss-dot-2", "●")},
	"terminal":    {glyph("terminal-cursor", "█"), glyph("terminal-prompt", ">_")},
	"y2k":         {glyph("y2k-star-1", "✦"), glyph("y2k-star-2", "✧"), shape("y2k-bubble-1", "○"), shape("y2k-bubble-2", "○")},
	"kawaii":      {glyph("kawaii-star", "★"), glyph("kawaii-heart", "♥"), glyph("kawaii-sparkle", "✨"), shape("kawaii-cloud", "☁")},
	"organic":     decoOrganic,
	"wabi-sabi":   decoOrganic,
	"luxury":      {line("luxury-line-h", "─"), line("luxury-line-v", "│"), glyph("luxury-diamond", "◆")},
	"editorial":   {line("editorial-rule-1", "─"), line("editorial-rule-2", "─"), glyph("editorial-drop-cap", "A")},
	"grunge":      {line("grunge-scratch-1", "╱"), line("grunge-scratch-2", "╲"), field("grunge-splatter", "⁂")},
	"industrial":  {glyph("industrial-bolt-1", "⊕"), glyph("industrial-bolt-2", "⊕"), line("industrial-stripe", "▞")},
	"collage":     {shape("collage-torn-1", "▱"), line("collage-tape", "▭"), glyph("collage-stamp", "〒")},
	"gradient":    {field("gradient-mesh", "░")},
	"kinetic":     decoKinetic,
	"atmospheric": decoKinetic,
	"isometric":   {shape("iso-cube", "⬡"), shape("iso-cube-2", "⬡")},
	"claymorphism": {
		shape("clay-blob-1", "⬤"), shape("clay-blob-2", "⬤"),
	},
	"skeuomorphic":  {line("skeu-stitch", "┄"), shape("skeu-knob", "◎")},
	"monochromatic": {shape("mono-circle", "◯")},
	"dark-mode":     {shape("darkmode-moon", "☾"), glyph("darkmode-star", "·")},
	"soft-pastel":   {shape("pastel-blob-1", "◌"), shape("pastel-blob-2", "◌")},
	"playful":       {glyph("playful-squiggle", "〜"), shape("playful-dot", "●"), glyph("playful-star", "✶")},
	"handcrafted":   {line("handcrafted-scribble", "〰"), glyph("handcrafted-heart", "♡")},
	"academic":      {line("academic-rule", "─"), glyph("academic-footnote", "†")},
	"corporate":     {shape("corporate-bar", "▮"), line("corporate-rule", "─")},
	"maximalist": {
		shape("max-shape-1", "◆"), shape("max-shape-2", "●"), shape("max-shape-3", "▲"), line("max-zigzag", "⩘"),
	},
	"corporate-memphis": {shape("corp-blob-1", "⬬"), shape("corp-blob-2", "⬬"), field("corp-dots", "∵")},
	"metro":             {shape("metro-tile-1", "■"), shape("metro-tile-2", "■"), shape("metro-tile-3", "■")},
	"data-viz": {
		shape("dataviz-bar-1", "▃"), shape("dataviz-bar-2", "▅"), shape("dataviz-bar-3", "▇"), line("dataviz-line", "╱"),
	},
	"outlined":     {shape("outlined-circle", "○"), shape("outlined-square", "□"), line("outlined-line", "─")},
	"focus-mode":   {field("focus-glow", "◌")},
	"grid-modular": {line("grid-mod-line-h", "─"), line("grid-mod-line-v", "│")},
}

// Decorations returns the decoration set for id in drawing order. Unknown
// ids and styles without decorations return nil.
func Decorations(id string) []Decoration {
	d := decorations[id]
	if len(d) == 0 {
		return nil
	}
	out := make([]Decoration, len(d))
	copy(out, d)
	return out
}

// Overlay is a full-surface effect toggled by one of a style's flags.
type Overlay string

const (
	OverlayScanlines Overlay = "scanlines"
	OverlayGrid      Overlay = "grid"
	OverlayNoise     Overlay = "noise"
	OverlayGrain     Overlay = "grain"
)

// Label returns the human-readable name used in generated text.
func (o Overlay) Label() string {
	switch o {
	case OverlayScanlines:
		return "Scanlines effect"
	case OverlayGrid:
		return "Grid overlay"
	case OverlayNoise:
		return "Noise texture"
	case OverlayGrain:
		return "Film grain"
	}
	return string(o)
}

// Overlays returns the overlays enabled on r, always in the order
// scanlines, grid, noise, grain.
func Overlays(r Record) []Overlay {
	var out []Overlay
	if r.HasScanlines {
		out = append(out, OverlayScanlines)
	}
	if r.HasGrid {
		out = append(out, OverlayGrid)
	}
	if r.HasNoise {
		out = append(out, OverlayNoise)
	}
	if r.HasGrain {
		out = append(out, OverlayGrain)
	}
	return out
}

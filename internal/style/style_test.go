package style

import (
	"reflect"
	"testing"
)

func TestLookupEveryID(t *testing.T) {
	for _, id := range IDs() {
		rec, ok := Lookup(id)
		if !ok {
			t.Errorf("Lookup(%q) not found", id)
			continue
		}
		if rec.ID != id {
			t.Errorf("Lookup(%q).ID = %q", id, rec.ID)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	for _, id := range []string{"", "nope", "MINIMALIST", "art deco", "../etc"} {
		if _, ok := Lookup(id); ok {
			t.Errorf("Lookup(%q) should miss", id)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in     string
		wantID string
		wantOK bool
	}{
		{"cyberpunk", "cyberpunk", true},
		{"Art Deco", "art-deco", true},
		{"  Wabi Sabi ", "wabi-sabi", true},
		{"garbled%%", DefaultID, false},
		{"", DefaultID, false},
	}
	for _, tt := range tests {
		rec, ok := Resolve(tt.in)
		if rec.ID != tt.wantID || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = (%q, %v); want (%q, %v)", tt.in, rec.ID, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestDefaultExists(t *testing.T) {
	if _, ok := Lookup(DefaultID); !ok {
		t.Fatalf("default style %q missing from registry", DefaultID)
	}
}

func TestCategoriesReferenceRegisteredStyles(t *testing.T) {
	for _, c := range Categories() {
		if len(c.Styles) == 0 {
			t.Errorf("category %q is empty", c.Name)
		}
		for _, id := range c.Styles {
			if _, ok := Lookup(id); !ok {
				t.Errorf("category %q references unknown style %q", c.Name, id)
			}
		}
	}
}

func TestCategoryRecordsSkipsDangling(t *testing.T) {
	c := Category{Name: "Test", Styles: []string{"minimalist", "does-not-exist", "terminal"}}
	recs := c.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records; want 2", len(recs))
	}
	if recs[0].ID != "minimalist" || recs[1].ID != "terminal" {
		t.Errorf("got ids %q, %q", recs[0].ID, recs[1].ID)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Styles[0] = "mutated"
	if Categories()[0].Styles[0] == "mutated" {
		t.Error("Categories() exposes internal state")
	}
}

func TestCategoriesOf(t *testing.T) {
	got := CategoriesOf("art-deco")
	want := []string{"Retro & Nostalgic", "Editorial & Luxury"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoriesOf(art-deco) = %v; want %v", got, want)
	}
	if got := CategoriesOf("nope"); got != nil {
		t.Errorf("CategoriesOf(nope) = %v; want nil", got)
	}
}

func TestIndexPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("index should panic on duplicate ids")
		}
	}()
	index([]Record{{ID: "a"}, {ID: "a"}})
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Art Deco", "art-deco"},
		{"retro-futuristic", "retro-futuristic"},
		{"Dark--Mode", "dark-mode"},
		{"trailing dash-", "trailing-dash"},
		{"Y2K", "y2k"},
		{"  spaced  out  ", "spaced-out"},
		{"punctuation: removed!", "punctuation-removed"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestSlotCSSVar(t *testing.T) {
	cases := map[Slot]string{
		SlotBgPrimary:    "--bg-primary",
		SlotTextTertiary: "--text-tertiary",
		SlotAccent:       "--accent",
		SlotBorderStrong: "--border-strong",
	}
	for slot, want := range cases {
		if got := slot.CSSVar(); got != want {
			t.Errorf("%s.CSSVar() = %q; want %q", slot, got, want)
		}
	}
}

func TestColorsGetAndWith(t *testing.T) {
	rec, _ := Lookup("neomorphism")
	for _, slot := range Slots {
		if rec.Colors.Get(slot) == "" {
			t.Errorf("neomorphism slot %s is empty", slot)
		}
	}

	merged := rec.Colors.With(map[Slot]string{SlotBorder: "#B8BEC7", SlotTextSecondary: "#4A5568"})
	if merged.Border != "#B8BEC7" || merged.TextSecondary != "#4A5568" {
		t.Errorf("With did not apply overrides: %+v", merged)
	}
	if rec.Colors.Border != "transparent" {
		t.Error("With mutated the receiver")
	}
	again, _ := Lookup("neomorphism")
	if again.Colors.Border != "transparent" {
		t.Error("With mutated the registry")
	}
	if got := rec.Colors.Get(Slot("nope")); got != "" {
		t.Errorf("Get(unknown) = %q", got)
	}
}

func TestFontsFallback(t *testing.T) {
	if got := (Fonts{}).JapaneseOrFallback(); got != JapaneseFallback {
		t.Errorf("JapaneseOrFallback() = %q", got)
	}
	if got := (Fonts{Japanese: "X"}).JapaneseOrFallback(); got != "X" {
		t.Errorf("JapaneseOrFallback() = %q", got)
	}
}

func TestRecordsWellFormed(t *testing.T) {
	for _, r := range All() {
		if r.Name == "" || r.Description == "" {
			t.Errorf("%s: missing name or description", r.ID)
		}
		if r.Fonts.Display == "" || r.Fonts.Body == "" {
			t.Errorf("%s: missing fonts", r.ID)
		}
		if r.Radius == "" || r.Shadow == "" {
			t.Errorf("%s: missing radius or shadow", r.ID)
		}
		if Normalize(r.ID) != r.ID {
			t.Errorf("%s: id is not in normalized form", r.ID)
		}
	}
	if Count() != len(IDs()) {
		t.Errorf("Count() = %d, len(IDs()) = %d", Count(), len(IDs()))
	}
}

func TestTerminalScenario(t *testing.T) {
	rec, ok := Lookup("terminal")
	if !ok {
		t.Fatal("terminal style missing")
	}
	if !rec.HasScanlines {
		t.Error("terminal should have scanlines")
	}
	if rec.Colors.Border != "transparent" {
		t.Errorf("terminal border = %q", rec.Colors.Border)
	}
}

func TestDecorations(t *testing.T) {
	if got := Decorations("minimalist"); got != nil {
		t.Errorf("minimalist decorations = %v; want nil", got)
	}
	if got := Decorations("unknown-style"); got != nil {
		t.Errorf("unknown decorations = %v; want nil", got)
	}

	brutal := Decorations("brutalist")
	if !reflect.DeepEqual(brutal, Decorations("neubrutalism")) {
		t.Error("brutalist and neubrutalism should share decorations")
	}
	if len(brutal) != 3 || brutal[2].Glyph != "*" {
		t.Errorf("brutalist decorations = %v", brutal)
	}

	brutal[0].Glyph = "mutated"
	if Decorations("brutalist")[0].Glyph == "mutated" {
		t.Error("Decorations exposes internal state")
	}

	cyber := Decorations("cyberpunk")
	classes := make([]string, len(cyber))
	for i, d := range cyber {
		classes[i] = d.Class
	}
	want := []string{"cyber-glitch", "cyber-line-1", "cyber-line-2", "cyber-corner-tl", "cyber-corner-br"}
	if !reflect.DeepEqual(classes, want) {
		t.Errorf("cyberpunk classes = %v; want %v", classes, want)
	}
}

func TestDecorationsKeyedByRegisteredIDs(t *testing.T) {
	for id := range decorations {
		if _, ok := Lookup(id); !ok {
			t.Errorf("decorations has entry for unregistered style %q", id)
		}
	}
	if !reflect.DeepEqual(Decorations("kinetic"), Decorations("atmospheric")) {
		t.Error("kinetic and atmospheric should share decorations")
	}
	if !reflect.DeepEqual(Decorations("organic"), Decorations("wabi-sabi")) {
		t.Error("organic and wabi-sabi should share decorations")
	}
}

func TestRegistryCoversCatalog(t *testing.T) {
	if Count() != 42 {
		t.Errorf("Count() = %d; want 42", Count())
	}
	listed := map[string]bool{}
	for _, c := range Categories() {
		for _, id := range c.Styles {
			listed[id] = true
		}
	}
	for _, id := range IDs() {
		if !listed[id] {
			t.Errorf("style %q is not in any category", id)
		}
	}
}

func TestOverlays(t *testing.T) {
	r := Record{HasGrain: true, HasScanlines: true, HasGrid: true, HasNoise: true}
	got := Overlays(r)
	want := []Overlay{OverlayScanlines, OverlayGrid, OverlayNoise, OverlayGrain}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Overlays() = %v; want %v", got, want)
	}
	if got := Overlays(Record{}); got != nil {
		t.Errorf("Overlays(empty) = %v", got)
	}

	labels := map[Overlay]string{
		OverlayGrid:      "Grid overlay",
		OverlayScanlines: "Scanlines effect",
		OverlayNoise:     "Noise texture",
		OverlayGrain:     "Film grain",
	}
	for o, want := range labels {
		if o.Label() != want {
			t.Errorf("%s.Label() = %q; want %q", o, o.Label(), want)
		}
	}
}

func TestSummarize(t *testing.T) {
	rec, _ := Lookup("glassmorphism")
	s := Summarize(rec)
	if len(s.PaletteRows) != 4 {
		t.Fatalf("got %d palette rows", len(s.PaletteRows))
	}
	if s.PaletteRows[3].Name != "Border" || len(s.PaletteRows[3].Colors) != 2 {
		t.Errorf("border row = %+v", s.PaletteRows[3])
	}
	if s.DisplayFont != "SF Pro Display" {
		t.Errorf("DisplayFont = %q", s.DisplayFont)
	}
	if s.Shadow != "Custom" {
		t.Errorf("Shadow = %q", s.Shadow)
	}
	if s.Gradient == "" {
		t.Error("glassmorphism should expose its gradient")
	}

	plain, _ := Lookup("minimalist")
	if got := Summarize(plain).Shadow; got != "None" {
		t.Errorf("minimalist Shadow = %q", got)
	}
}

func TestBackground(t *testing.T) {
	glass, _ := Lookup("glassmorphism")
	if glass.Background() != glass.Gradient {
		t.Error("gradient should win over bgPrimary")
	}
	plain, _ := Lookup("minimalist")
	if plain.Background() != "#FFFFFF" {
		t.Errorf("minimalist background = %q", plain.Background())
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest("cyberpnk", 3)
	if len(got) == 0 || got[0] != "cyberpunk" {
		t.Errorf("Suggest(cyberpnk) = %v", got)
	}
	if got := Suggest("Glass", 1); len(got) != 1 || got[0] != "glassmorphism" {
		t.Errorf("Suggest(Glass) = %v", got)
	}
	if got := Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v", got)
	}
	if got := Suggest("zzzzqqq", 3); len(got) != 0 {
		t.Errorf("Suggest(zzzzqqq) = %v", got)
	}
}

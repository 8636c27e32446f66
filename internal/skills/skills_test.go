package skills

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/thisguymartin/stylebook/internal/style"
)

func TestAll(t *testing.T) {
	skills := All()
	want := []string{"color-palette", "design-styles", "frontend-design-complete"}
	if len(skills) != len(want) {
		t.Fatalf("got %d skills; want %d", len(skills), len(want))
	}
	for i, s := range skills {
		if s.Name != want[i] {
			t.Errorf("skill %d = %q; want %q", i, s.Name, want[i])
		}
		if s.Version == nil || s.Description == "" {
			t.Errorf("%s: incomplete metadata", s.Name)
		}
		if strings.Contains(s.Body, catalogMarker) {
			t.Errorf("%s: catalog marker not replaced", s.Name)
		}
	}
}

func TestCatalogListsEveryCategorizedStyle(t *testing.T) {
	cat := Catalog()
	for _, c := range style.Categories() {
		if !strings.Contains(cat, "### "+c.Name) {
			t.Errorf("catalog missing category %q", c.Name)
		}
		for _, id := range c.Styles {
			if !strings.Contains(cat, "(`"+id+"`)") {
				t.Errorf("catalog missing style %q", id)
			}
		}
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"no frontmatter": "# Title\n",
		"unterminated":   "---\nname: a\n",
		"no description": "---\nname: a\nversion: 1.0.0\n---\nbody\n",
		"bad version":    "---\nname: a\ndescription: d\nversion: one\n---\nbody\n",
		"short version":  "---\nname: a\ndescription: d\nversion: 1.0\n---\nbody\n",
		"name mismatch":  "---\nname: b\ndescription: d\nversion: 1.0.0\n---\nbody\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"a/SKILL.md": {Data: []byte(doc)}}
			if _, err := Load(fsys); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadParsesFrontmatter(t *testing.T) {
	fsys := fstest.MapFS{
		"zeta/SKILL.md":  {Data: []byte("---\nname: zeta\ndescription: last: with colon\nversion: 2.1.0\n---\n# Z\n")},
		"alpha/SKILL.md": {Data: []byte("---\nname: alpha\ndescription: first\nversion: 0.1.0\n---\n# A\n")},
		"notes.md":       {Data: []byte("ignored")},
	}
	skills, err := Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if len(skills) != 2 || skills[0].Name != "alpha" || skills[1].Name != "zeta" {
		t.Fatalf("got %+v", skills)
	}
	if skills[1].Description != "last: with colon" {
		t.Errorf("description = %q", skills[1].Description)
	}
	if skills[1].Version.Major() != 2 || skills[1].Version.Minor() != 1 {
		t.Errorf("version = %v", skills[1].Version)
	}
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		files[f.Name] = string(b)
	}
	return files
}

func TestArchive(t *testing.T) {
	if ArchiveName != "claude-skills.zip" {
		t.Errorf("ArchiveName = %q", ArchiveName)
	}
	data, err := Archive()
	if err != nil {
		t.Fatal(err)
	}
	files := readZip(t, data)

	for _, s := range All() {
		body, ok := files["claude-skills/"+s.Name+"/SKILL.md"]
		if !ok {
			t.Errorf("archive missing %s", s.Name)
			continue
		}
		if body != s.Body {
			t.Errorf("%s: body differs", s.Name)
		}
	}
	readme, ok := files["claude-skills/README.md"]
	if !ok {
		t.Fatal("archive missing README")
	}
	for _, want := range []string{"/color-palette\n", "**frontend-design-complete** (v1.0.0)", "cp -r claude-skills/*"} {
		if !strings.Contains(readme, want) {
			t.Errorf("README missing %q", want)
		}
	}
	if len(files) != len(All())+1 {
		t.Errorf("archive has %d entries", len(files))
	}
}

func TestArchiveDeterministic(t *testing.T) {
	a, err := Archive()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Archive()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("archives differ between runs")
	}
}

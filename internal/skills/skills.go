// Package skills bundles the companion skill documents shipped with
// stylebook and packages them as a zip archive.
package skills

import (
	"archive/zip"
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/thisguymartin/stylebook/internal/style"
)

//go:embed docs/*/SKILL.md
var docs embed.FS

// Folder is the top-level directory inside the archive.
const Folder = "claude-skills"

// ArchiveName is the default file name for the archive.
const ArchiveName = Folder + ".zip"

// catalogMarker is replaced with a generated table of every registered style.
const catalogMarker = "<!-- catalog -->"

// archiveTime stamps every entry so archives are byte-identical across runs.
var archiveTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Skill is one skill document.
type Skill struct {
	Name        string
	Description string
	Version     *semver.Version
	// Body is the full SKILL.md content, frontmatter included.
	Body string
}

// Path is the entry name of the skill inside the archive.
func (s Skill) Path() string {
	return path.Join(Folder, s.Name, "SKILL.md")
}

// Load reads every <name>/SKILL.md under fsys, sorted by name. Each document
// needs frontmatter with name, description and a semantic version, and the
// name must match its directory.
func Load(fsys fs.FS) ([]Skill, error) {
	matches, err := fs.Glob(fsys, "*/SKILL.md")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	out := make([]Skill, 0, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", m, err)
		}
		s, err := parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m, err)
		}
		if dir := path.Dir(m); s.Name != dir {
			return nil, fmt.Errorf("%s: name %q does not match directory %q", m, s.Name, dir)
		}
		out = append(out, s)
	}
	return out, nil
}

// All returns the embedded skills with the design-styles catalog filled in.
// It panics if the embedded documents are malformed.
func All() []Skill {
	sub, err := fs.Sub(docs, "docs")
	if err != nil {
		panic(err)
	}
	out, err := Load(sub)
	if err != nil {
		panic("skills: " + err.Error())
	}
	for i := range out {
		out[i].Body = strings.Replace(out[i].Body, catalogMarker, Catalog(), 1)
	}
	return out
}

// parse reads the "---" delimited frontmatter of a skill document.
func parse(doc string) (Skill, error) {
	rest, ok := strings.CutPrefix(doc, "---\n")
	if !ok {
		return Skill{}, fmt.Errorf("missing frontmatter")
	}
	front, _, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return Skill{}, fmt.Errorf("unterminated frontmatter")
	}

	s := Skill{Body: doc}
	var version string
	for _, line := range strings.Split(front, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "name":
			s.Name = value
		case "description":
			s.Description = value
		case "version":
			version = value
		}
	}
	if s.Name == "" || s.Description == "" {
		return Skill{}, fmt.Errorf("frontmatter needs name and description")
	}
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return Skill{}, fmt.Errorf("version %q: %w", version, err)
	}
	s.Version = v
	return s, nil
}

// Catalog renders a markdown table of every registered style grouped by
// category.
func Catalog() string {
	var b strings.Builder
	for _, c := range style.Categories() {
		fmt.Fprintf(&b, "### %s\n\n", c.Name)
		b.WriteString("| Style | Palette | Best for |\n|-------|---------|----------|\n")
		for _, r := range c.Records() {
			fmt.Fprintf(&b, "| %s (`%s`) | %s on %s, accent %s | %s |\n",
				r.Name, r.ID, r.Colors.TextPrimary, r.Colors.BgPrimary, r.Colors.Accent, strings.Join(r.Tags, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

const readmeTmpl = `# Design Skills

## Installation

1. Extract this archive.
2. Copy the skill folders into your skills directory:

` + "```bash" + `
cp -r {{.Folder}}/* ~/.claude/skills/
` + "```" + `

## Usage

Invoke a skill by name:

` + "```" + `
{{- range .Skills}}
/{{.Name}}
{{- end}}
` + "```" + `

## Skills Included
{{range .Skills}}
- **{{.Name}}** (v{{.Version}}): {{.Description}}
{{- end}}
`

var readmeTemplate = template.Must(template.New("readme").Parse(readmeTmpl))

// README renders the archive's README.md for skills.
func README(skills []Skill) string {
	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, struct {
		Folder string
		Skills []Skill
	}{Folder, skills}); err != nil {
		panic("skills: " + err.Error())
	}
	return buf.String()
}

// WriteArchive writes skills and a README to w as a zip archive.
func WriteArchive(w io.Writer, skills []Skill) error {
	zw := zip.NewWriter(w)

	add := func(name, body string) error {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: archiveTime,
		})
		if err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		if _, err := io.WriteString(f, body); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}

	for _, s := range skills {
		if err := add(s.Path(), s.Body); err != nil {
			return err
		}
	}
	if err := add(path.Join(Folder, "README.md"), README(skills)); err != nil {
		return err
	}
	return zw.Close()
}

// Archive returns the zip of All as bytes.
func Archive() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, All()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

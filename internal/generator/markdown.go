package generator

import (
	"text/template"

	"github.com/thisguymartin/stylebook/internal/style"
)

const cssVarsTmpl = `{{define "cssvars"}}:root {
{{- range .Tokens}}
  {{.Var}}: {{.Value}};
{{- end}}
  --radius: {{.Rec.Radius}};
  --shadow: {{.Rec.Shadow}};
  --font-display: {{.Rec.Fonts.Display}};
  --font-body: {{.Rec.Fonts.Body}};
  --font-japanese: {{.Japanese}};
{{- with .Rec.Gradient}}
  --gradient: {{.}};
{{- end}}
}
{{end}}`

const markdownTmpl = `# {{.Rec.Name}} Design Style

> {{.Rec.Description}}

- **Platform:** {{.Platform.Label}}
- **Best for:** {{join .Rec.Tags}}
- **Inspired by:** {{join .Rec.Examples}}
{{- with .PreviewURL}}
- **Preview:** {{.}}
{{- end}}

## Color Tokens

| Token | Value |
|-------|-------|
{{- range .Tokens}}
| ` + "`{{.Var}}`" + ` | ` + "`{{.Value}}`" + ` |
{{- end}}

` + "```css" + `
{{template "cssvars" .}}` + "```" + `

## Typography

| Role | Font stack |
|------|------------|
| Display | {{.Rec.Fonts.Display}} |
| Body | {{.Rec.Fonts.Body}} |
| Japanese | {{.Japanese}} |

## Visual Properties

| Property | Value |
|----------|-------|
| Border radius | {{.Rec.Radius}} |
| Shadow | {{.Rec.Shadow}} |
{{- with .Rec.Gradient}}
| Gradient | {{.}} |
{{- end}}
| Effects | {{orNone .Effects}} |
{{- if .Compliance.Evaluated}}

## iOS Compliance

**Status:** {{.Compliance.Status}}
{{- with .Compliance.Reason}}

{{.}}
{{- end}}
{{- with .Compliance.Note}}

_{{.}}_
{{- end}}
{{- if .Compliance.Adjusted}}

| Token | Adjusted value |
|-------|----------------|
{{- range .Compliance.Adjusted}}
| ` + "`{{.Var}}`" + ` | ` + "`{{.Value}}`" + ` |
{{- end}}
{{- end}}
{{- range .Compliance.Issues}}
- {{.Message}}
{{- end}}
{{- end}}

## Form Styling

` + "```css" + `
input,
textarea,
select {
  background: {{.Colors.BgSecondary}};
  color: {{.Colors.TextPrimary}};
  border: 1px solid {{.Colors.Border}};
  border-radius: {{.Rec.Radius}};
  font-family: {{.Rec.Fonts.Body}};
  padding: 12px 16px;
}

input:focus,
textarea:focus,
select:focus {
  outline: 2px solid {{.Colors.Accent}};
  outline-offset: 2px;
}

button[type="submit"] {
  background: {{.Colors.Accent}};
  color: {{.Colors.BgPrimary}};
  border-radius: {{.Rec.Radius}};
  box-shadow: {{.Rec.Shadow}};
}
` + "```" + `

## Responsive Layout

` + "```css" + `
.container {
  width: 100%;
  max-width: 1200px;
  margin: 0 auto;
  padding: 0 24px;
}

.grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
  gap: 24px;
}

@media (max-width: 768px) {
  .container {
    padding: 0 16px;
  }
  .grid {
    grid-template-columns: 1fr;
    gap: 16px;
  }
}
` + "```" + `

## Sample Prompt

` + "```" + `
Create a {{.Platform.Label}} UI in the {{.Rec.Name}} style: {{.Sample}}
Colors: background {{.Colors.BgPrimary}}, text {{.Colors.TextPrimary}}, accent {{.Colors.Accent}}, border {{.Colors.Border}}.
Fonts: {{first .Rec.Fonts.Display}} for headings, {{first .Rec.Fonts.Body}} for body text.
Radius {{.Rec.Radius}}, shadow {{.Rec.Shadow}}{{if .Rec.Gradient}}, gradient background{{end}}.
` + "```" + `
`

var (
	markdownTemplate = template.Must(template.Must(
		template.New("markdown").Funcs(funcs).Parse(cssVarsTmpl)).Parse(markdownTmpl))
	cssTemplate = template.Must(template.New("css").Funcs(funcs).Parse(cssVarsTmpl + `{{template "cssvars" .}}`))
)

// Markdown renders rec as a style-guide document suitable for saving as
// FileName(rec.ID).
func Markdown(rec style.Record, previewURL string, p Platform) string {
	return render(markdownTemplate, newView(rec, previewURL, p))
}

// CSSVariables renders a :root block declaring every color slot plus
// radius, shadow, fonts and, when present, the gradient.
func CSSVariables(rec style.Record, p Platform) string {
	return render(cssTemplate, newView(rec, "", p))
}

// FileName is the download name for a style's markdown export.
func FileName(id string) string {
	return id + "-design-style.md"
}

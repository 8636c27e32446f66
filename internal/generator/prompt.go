package generator

import (
	"text/template"

	"github.com/thisguymartin/stylebook/internal/style"
)

const promptTmpl = `Design a {{.Platform.Label}} interface in the "{{.Rec.Name}}" style.

{{.Rec.Description}}
{{- if .PreviewURL}}

Reference preview: {{.PreviewURL}}
{{- end}}

Color palette:
{{- range .Tokens}}
- {{.Slot}}: {{.Value}}
{{- end}}

Typography:
- Display: {{.Rec.Fonts.Display}}
- Body: {{.Rec.Fonts.Body}}
- Japanese: {{.Japanese}}

Visual properties:
- Border radius: {{.Rec.Radius}}
- Shadow: {{.Rec.Shadow}}
{{- if .Rec.Gradient}}
- Gradient: {{.Rec.Gradient}}
{{- end}}

Effects: {{orNone .Effects}}

Best for: {{join .Rec.Tags}}
Inspired by: {{join .Rec.Examples}}
{{- if .Compliance.Evaluated}}

Compliance: {{.Compliance.Status}}
{{- with .Compliance.Reason}}
Rationale: {{.}}
{{- end}}
{{- with .Compliance.Note}}
Note: {{.}}
{{- end}}
{{- range .Compliance.Issues}}
- {{.Message}}
{{- end}}

Follow the Human Interface Guidelines: support Dynamic Type and Dark Mode, and keep touch targets at least 44pt.
{{- end}}
`

var promptTemplate = template.Must(template.New("prompt").Funcs(funcs).Parse(promptTmpl))

// Prompt renders rec as a natural-language prompt for an AI design tool.
// previewURL is quoted as a reference link when non-empty. On PlatformIOS
// the palette reflects the iOS override table and a compliance block is
// appended.
func Prompt(rec style.Record, previewURL string, p Platform) string {
	return render(promptTemplate, newView(rec, previewURL, p))
}

package contrast

import (
	"fmt"
	"strings"

	"github.com/thisguymartin/stylebook/internal/style"
)

// IssueKind classifies a compliance problem.
type IssueKind string

const (
	IssueContrast   IssueKind = "contrast"
	IssueVisibility IssueKind = "visibility"
)

// Issue is one failed compliance rule.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// Report is the outcome of Evaluate.
type Report struct {
	Compliant bool    `json:"compliant"`
	Issues    []Issue `json:"issues"`
	// Overridden is set when the override table lists the style; it forces
	// Compliant to false even when Issues is empty.
	Overridden bool `json:"overridden"`
}

// Status returns "pass" or "needs adjustment".
func (r Report) Status() string {
	if r.Compliant {
		return "pass"
	}
	return "needs adjustment"
}

// Override is a curated palette adjustment for one style on one platform.
type Override struct {
	Reason string                `json:"reason"`
	Colors map[style.Slot]string `json:"overrides"`
	Note   string                `json:"note,omitempty"`
}

// Table maps style ids to overrides.
type Table map[string]Override

// Lookup returns the override for id.
func (t Table) Lookup(id string) (Override, bool) {
	o, ok := t[id]
	return o, ok
}

// Evaluate checks colors against the text-contrast and border-visibility
// rules and reports every failure in rule order. A style listed in table is
// never compliant: the entry records a manual judgement the formulas do not
// capture.
func Evaluate(colors style.Colors, table Table, styleID string) Report {
	var issues []Issue

	pairs := []struct {
		fg, bg     style.Slot
		fgVal, bgV string
	}{
		{style.SlotTextPrimary, style.SlotBgPrimary, colors.TextPrimary, colors.BgPrimary},
		{style.SlotTextSecondary, style.SlotBgPrimary, colors.TextSecondary, colors.BgPrimary},
	}
	for _, p := range pairs {
		ratio := Ratio(p.fgVal, p.bgV)
		if ratio < MinTextRatio {
			issues = append(issues, Issue{
				Kind: IssueContrast,
				Message: fmt.Sprintf("%s %s on %s %s: contrast %.1f:1 is below %.1f:1",
					p.fg, p.fgVal, p.bg, p.bgV, ratio, MinTextRatio),
			})
		}
	}

	if invisible(colors.Border) {
		issues = append(issues, Issue{
			Kind:    IssueVisibility,
			Message: fmt.Sprintf("%s %s is invisible; form fields and cards need a visible edge", style.SlotBorder, colors.Border),
		})
	}

	_, overridden := table.Lookup(styleID)
	return Report{
		Compliant:  len(issues) == 0 && !overridden,
		Issues:     issues,
		Overridden: overridden,
	}
}

func invisible(color string) bool {
	c := strings.ToLower(strings.Join(strings.Fields(color), ""))
	return c == "transparent" || c == "rgba(0,0,0,0)"
}

package style

import (
	"fmt"
	"strings"
	"unicode"
)

// Category groups style ids for the two-level navigation tree. The same id
// may appear in several categories.
type Category struct {
	Name   string   `json:"name"`
	Styles []string `json:"styles"`
}

// Records returns the category's styles in order, skipping ids that are not
// in the registry.
func (c Category) Records() []Record {
	out := make([]Record, 0, len(c.Styles))
	for _, id := range c.Styles {
		if rec, ok := registry[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

var registry = index(records)

func index(recs []Record) map[string]Record {
	m := make(map[string]Record, len(recs))
	for _, r := range recs {
		if _, dup := m[r.ID]; dup {
			panic(fmt.Sprintf("style: duplicate id %q", r.ID))
		}
		m[r.ID] = r
	}
	return m
}

// Lookup returns the style registered under id. The id is matched exactly;
// use Normalize first for user-supplied input.
func Lookup(id string) (Record, bool) {
	r, ok := registry[id]
	return r, ok
}

// Resolve normalizes id and returns the matching style, or the DefaultID
// style when nothing matches. The boolean reports whether id matched.
func Resolve(id string) (Record, bool) {
	if r, ok := registry[Normalize(id)]; ok {
		return r, true
	}
	return registry[DefaultID], false
}

// Count returns the number of registered styles.
func Count() int {
	return len(records)
}

// All returns every style in registration order.
func All() []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// IDs returns every style id in registration order.
func IDs() []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// Categories returns the navigation groups in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Styles: append([]string(nil), c.Styles...)}
	}
	return out
}

// CategoriesOf returns the names of every category listing id.
func CategoriesOf(id string) []string {
	var names []string
	for _, c := range categories {
		for _, s := range c.Styles {
			if s == id {
				names = append(names, c.Name)
				break
			}
		}
	}
	return names
}

// Normalize converts free-form input into the id form used by the
// registry, e.g. "Art Deco" -> "art-deco".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevDash = false
		} else if !prevDash && b.Len() > 0 {
			b.WriteRune('-')
			prevDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

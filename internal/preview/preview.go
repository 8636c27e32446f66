// Package preview owns the state carried by preview links and the intro
// screen policy.
//
// A preview link has the form ?style=<id>&view=<mode>&preview=true. Loading
// one renders only the preview pane. Unknown style ids and view modes are
// replaced by their defaults rather than rejected.
package preview

import (
	"context"
	"net/url"
	"strings"

	"github.com/thisguymartin/stylebook/internal/prefs"
	"github.com/thisguymartin/stylebook/internal/style"
)

// ViewMode selects the mock layout a style is rendered into.
type ViewMode string

const (
	ViewApp     ViewMode = "app"
	ViewWebsite ViewMode = "website"

	DefaultView = ViewApp
)

// Views lists every mode in toggle order.
var Views = []ViewMode{ViewApp, ViewWebsite}

// ParseView maps s to a ViewMode, falling back to DefaultView. The boolean
// reports whether s named a mode.
func ParseView(s string) (ViewMode, bool) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewApp:
		return ViewApp, true
	case ViewWebsite:
		return ViewWebsite, true
	}
	return DefaultView, false
}

// Toggle returns the other mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewWebsite {
		return ViewApp
	}
	return ViewWebsite
}

// Label is the display name of the mode.
func (v ViewMode) Label() string {
	if v == ViewWebsite {
		return "Website"
	}
	return "App"
}

// Query parameter names.
const (
	ParamStyle   = "style"
	ParamView    = "view"
	ParamPreview = "preview"
)

// State is the resolved content of a preview query.
type State struct {
	StyleID string
	View    ViewMode
	// PreviewOnly is set by preview=true and hides all chrome.
	PreviewOnly bool
	// Direct reports that the query named a style, which suppresses the
	// intro screen.
	Direct bool
	// Fallback is set when the requested style or view was replaced by a
	// default.
	Fallback bool
}

// FromQuery resolves q into a State. Missing or unknown values fall back to
// style.DefaultID and DefaultView.
func FromQuery(q url.Values) State {
	rawStyle := q.Get(ParamStyle)
	rec, styleOK := style.Resolve(rawStyle)
	rawView := q.Get(ParamView)
	view, viewOK := ParseView(rawView)

	return State{
		StyleID:     rec.ID,
		View:        view,
		PreviewOnly: q.Get(ParamPreview) == "true",
		Direct:      q.Has(ParamStyle),
		Fallback:    (rawStyle != "" && !styleOK) || (rawView != "" && !viewOK),
	}
}

// URL returns the read-only preview link for s relative to base. Any query
// or fragment already on base is dropped. An empty base yields a bare query
// string.
func (s State) URL(base string) string {
	q := "?" + ParamStyle + "=" + url.QueryEscape(s.StyleID) +
		"&" + ParamView + "=" + url.QueryEscape(string(s.View)) +
		"&" + ParamPreview + "=true"
	if base == "" {
		return q
	}
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimRight(base, "?") + q
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String() + q
}

// Link is shorthand for the preview URL of id in view.
func Link(base, id string, view ViewMode) string {
	return State{StyleID: id, View: view}.URL(base)
}

// IntroDismissedKey is the preference that hides the intro screen for good.
const IntroDismissedKey = "hideIntro"

// ShouldShowIntro reports whether the intro screen is shown. A direct link
// always skips it; otherwise it is shown until dismissed. A store failure
// shows the intro and returns the error for logging.
func ShouldShowIntro(ctx context.Context, store prefs.Store, direct bool) (bool, error) {
	if direct {
		return false, nil
	}
	hidden, err := prefs.GetBool(ctx, store, IntroDismissedKey)
	if err != nil {
		return true, err
	}
	return !hidden, nil
}

// DismissIntro records that the intro should not be shown again.
func DismissIntro(ctx context.Context, store prefs.Store) error {
	return prefs.SetBool(ctx, store, IntroDismissedKey, true)
}

// ResetIntro clears the dismissal so the intro shows on the next start.
func ResetIntro(ctx context.Context, store prefs.Store) error {
	return store.Remove(ctx, IntroDismissedKey)
}

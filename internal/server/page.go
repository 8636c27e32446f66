package server

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/thisguymartin/stylebook/internal/contrast"
	"github.com/thisguymartin/stylebook/internal/convert"
	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type navItem struct {
	ID, Name, Link string
	Active         bool
}

type navGroup struct {
	Name  string
	Items []navItem
}

type swatch struct {
	Value string
	Style template.CSS
}

type swatchRow struct {
	Name   string
	Colors []swatch
}

type pageData struct {
	State       preview.State
	Rec         style.Record
	Vars        template.CSS
	Background  template.CSS
	Decorations []style.Decoration
	Overlays    []style.Overlay
	Summary     style.Summary
	Swatches    []swatchRow
	Nav         []navGroup
	Report      contrast.Report
	PreviewLink string
	ToggleLink  string
	Guide       template.HTML
	ShowIntro   bool
	StyleCount  int
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	state := preview.FromQuery(r.URL.Query())
	if r.URL.Query().Get(preview.ParamView) == "" {
		state.View = s.opts.DefaultView
	}
	rec, _ := s.lookup(r.URL.Query().Get(preview.ParamStyle))
	state.StyleID = rec.ID
	if state.Fallback {
		w.Header().Set(FallbackHeader, rec.ID)
	}

	data := pageData{
		State:       state,
		Rec:         rec,
		Vars:        cssVars(rec),
		Background:  template.CSS("background: " + rec.Background()),
		Decorations: style.Decorations(rec.ID),
		Overlays:    style.Overlays(rec),
	}

	if !state.PreviewOnly {
		show, err := preview.ShouldShowIntro(r.Context(), cookieStore{r: r}, state.Direct)
		if err != nil {
			s.log.Warn("read intro preference", "err", err, "request_id", RequestIDFrom(r.Context()))
		}
		data.ShowIntro = show
		data.StyleCount = style.Count()
		data.Summary = style.Summarize(rec)
		data.Swatches = swatches(data.Summary)
		data.Nav = nav(rec.ID, state.View)
		data.Report = contrast.Evaluate(rec.Colors, nil, rec.ID)
		data.PreviewLink = preview.Link(s.opts.BaseURL, rec.ID, state.View)
		data.ToggleLink = pageLink(rec.ID, state.View.Toggle())
		data.Guide = s.renderGuide(rec, data.PreviewLink)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.log.Error("render page", "err", err, "request_id", RequestIDFrom(r.Context()))
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleDismissIntro hides the intro and returns to the page. Without
// "forever" the dismissal lasts for the browser session.
func (s *Server) handleDismissIntro(w http.ResponseWriter, r *http.Request) {
	store := cookieStore{w: w, session: r.FormValue("forever") != "true"}
	if err := preview.DismissIntro(r.Context(), store); err != nil {
		s.log.Warn("store intro preference", "err", err, "request_id", RequestIDFrom(r.Context()))
	}
	target := "/"
	if id := r.FormValue(preview.ParamStyle); id != "" {
		rec, _ := s.lookup(id)
		target = "/?" + preview.ParamStyle + "=" + url.QueryEscape(rec.ID)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) renderGuide(rec style.Record, link string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(generator.Markdown(rec, link, generator.PlatformWeb)), &buf); err != nil {
		s.log.Error("render guide", "style", rec.ID, "err", err)
		return ""
	}
	// goldmark escapes raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String())
}

func cssVars(rec style.Record) template.CSS {
	var b strings.Builder
	for _, slot := range style.Slots {
		b.WriteString(slot.CSSVar())
		b.WriteString(": ")
		b.WriteString(rec.Colors.Get(slot))
		b.WriteString("; ")
	}
	b.WriteString("--font-display: " + rec.Fonts.Display + "; ")
	b.WriteString("--font-body: " + rec.Fonts.Body + "; ")
	b.WriteString("--font-japanese: " + rec.Fonts.JapaneseOrFallback() + "; ")
	b.WriteString("--radius: " + rec.Radius + "; ")
	b.WriteString("--shadow: " + rec.Shadow + ";")
	return template.CSS(b.String())
}

// swatches builds the info panel swatches. html/template rejects
// parentheses in CSS values, so colors are re-emitted from their parsed
// channels instead of passed through.
func swatches(sum style.Summary) []swatchRow {
	rows := make([]swatchRow, len(sum.PaletteRows))
	for i, row := range sum.PaletteRows {
		rows[i].Name = row.Name
		for _, c := range row.Colors {
			rows[i].Colors = append(rows[i].Colors, swatch{Value: c, Style: swatchStyle(c)})
		}
	}
	return rows
}

func swatchStyle(color string) template.CSS {
	u, err := convert.ToUnitTriple(color)
	if err != nil {
		return "background: transparent"
	}
	return template.CSS("background: " + u.CSS())
}

func nav(active string, view preview.ViewMode) []navGroup {
	cats := style.Categories()
	out := make([]navGroup, 0, len(cats))
	for _, c := range cats {
		g := navGroup{Name: c.Name}
		for _, rec := range c.Records() {
			g.Items = append(g.Items, navItem{
				ID:     rec.ID,
				Name:   rec.Name,
				Link:   pageLink(rec.ID, view),
				Active: rec.ID == active,
			})
		}
		out = append(out, g)
	}
	return out
}

// pageLink addresses the full explorer page, unlike preview.Link.
func pageLink(id string, view preview.ViewMode) string {
	return "/?" + preview.ParamStyle + "=" + url.QueryEscape(id) + "&" + preview.ParamView + "=" + url.QueryEscape(string(view))
}

func cookieName(key string) string { return "stylebook_" + key }

// cookieStore adapts request cookies (reads) and response cookies (writes)
// to prefs.Store. Session stores write cookies that expire with the browser.
type cookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	session bool
}

func (c cookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if c.r == nil {
		return "", false, nil
	}
	ck, err := c.r.Cookie(cookieName(key))
	if err != nil {
		return "", false, nil
	}
	return ck.Value, true, nil
}

func (c cookieStore) Set(_ context.Context, key, value string) error {
	ck := &http.Cookie{
		Name:     cookieName(key),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if !c.session {
		ck.MaxAge = 365 * 24 * 60 * 60
	}
	http.SetCookie(c.w, ck)
	return nil
}

func (c cookieStore) Remove(_ context.Context, key string) error {
	http.SetCookie(c.w, &http.Cookie{Name: cookieName(key), Path: "/", MaxAge: -1})
	return nil
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thisguymartin/stylebook/internal/contrast"
	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/skills"
	"github.com/thisguymartin/stylebook/internal/style"
)

// styleEntry is one row of GET /api/styles.
type styleEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
}

// styleDetail is the body of GET /api/styles/{id}.
type styleDetail struct {
	Style       style.Record              `json:"style"`
	Categories  []string                  `json:"categories"`
	Decorations []style.Decoration        `json:"decorations"`
	Overlays    []style.Overlay           `json:"overlays"`
	PreviewURL  string                    `json:"previewUrl"`
	Compliance  map[string]complianceBody `json:"compliance"`
}

type complianceBody struct {
	contrast.Report
	Status string `json:"status"`
}

var iosOverrides = contrast.IOSOverrides()

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	all := style.All()
	out := make([]styleEntry, 0, len(all))
	for _, rec := range all {
		out = append(out, styleEntry{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Tags:        nonNil(rec.Tags),
			Categories:  nonNil(style.CategoriesOf(rec.ID)),
		})
	}
	s.writeJSON(w, r, out)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, style.Categories())
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	rec := s.resolve(w, r)
	view := s.view(r)

	web := contrast.Evaluate(rec.Colors, nil, rec.ID)
	ios := contrast.Evaluate(rec.Colors, iosOverrides, rec.ID)
	s.writeJSON(w, r, styleDetail{
		Style:       rec,
		Categories:  nonNil(style.CategoriesOf(rec.ID)),
		Decorations: style.Decorations(rec.ID),
		Overlays:    style.Overlays(rec),
		PreviewURL:  preview.Link(s.opts.BaseURL, rec.ID, view),
		Compliance: map[string]complianceBody{
			string(generator.PlatformWeb): {web, web.Status()},
			string(generator.PlatformIOS): {ios, ios.Status()},
		},
	})
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	rec := s.resolve(w, r)
	link := preview.Link(s.opts.BaseURL, rec.ID, s.view(r))
	s.writeText(w, "text/plain", generator.Prompt(rec, link, s.platform(r)))
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	rec := s.resolve(w, r)
	link := preview.Link(s.opts.BaseURL, rec.ID, s.view(r))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generator.FileName(rec.ID)))
	s.writeText(w, "text/markdown", generator.Markdown(rec, link, s.platform(r)))
}

func (s *Server) handleSwift(w http.ResponseWriter, r *http.Request) {
	rec := s.resolve(w, r)
	s.writeText(w, "text/plain", generator.Swift(rec, s.platform(r)))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	rec := s.resolve(w, r)
	s.writeText(w, "text/css", generator.CSSVariables(rec, s.platform(r)))
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	data, err := skills.Archive()
	if err != nil {
		s.log.Error("build skills archive", "err", err, "request_id", RequestIDFrom(r.Context()))
		http.Error(w, "could not build archive", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", skills.ArchiveName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// resolve reads the {id} URL parameter, substituting the default style for
// unknown ids.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) style.Record {
	raw := chi.URLParam(r, "id")
	rec, ok := s.lookup(raw)
	if !ok {
		w.Header().Set(FallbackHeader, rec.ID)
		s.log.Debug("unknown style, using default", "requested", raw, "style", rec.ID)
	}
	return rec
}

// lookup normalizes raw and returns its style, or the configured default
// style when raw names none.
func (s *Server) lookup(raw string) (style.Record, bool) {
	if rec, ok := style.Resolve(raw); ok {
		return rec, true
	}
	return s.fallback, false
}

func (s *Server) view(r *http.Request) preview.ViewMode {
	raw := r.URL.Query().Get(preview.ParamView)
	if raw == "" {
		return s.opts.DefaultView
	}
	v, _ := preview.ParseView(raw)
	return v
}

func (s *Server) platform(r *http.Request) generator.Platform {
	p, _ := generator.ParsePlatform(r.URL.Query().Get("platform"))
	return p
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.log.Error("encode response", "err", err, "request_id", RequestIDFrom(r.Context()))
	}
}

func (s *Server) writeText(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.Write([]byte(body))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

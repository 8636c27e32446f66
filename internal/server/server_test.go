package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return New(Options{BaseURL: "https://styles.example.com/", Logger: logger}), &buf
}

func get(t *testing.T, s *Server, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, body io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestPage(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/?style=cyberpunk&view=website")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get(FallbackHeader); got != "" {
		t.Errorf("unexpected fallback header %q", got)
	}
	doc := parse(t, rec.Body)

	if n := doc.Find("nav.nav a").Length(); n < style.Count() {
		t.Errorf("nav has %d links; want at least %d", n, style.Count())
	}
	if active := doc.Find("nav.nav a.active").First().AttrOr("data-style", ""); active != "cyberpunk" {
		t.Errorf("active nav item = %q", active)
	}
	p := doc.Find(".preview")
	if p.AttrOr("data-style", "") != "cyberpunk" || p.AttrOr("data-view", "") != "website" {
		t.Errorf("preview attrs = %q/%q", p.AttrOr("data-style", ""), p.AttrOr("data-view", ""))
	}
	if doc.Find(".site-nav").Length() != 1 {
		t.Error("website mock not rendered")
	}
	if doc.Find(".overlay-scanlines").Length() != 1 {
		t.Error("cyberpunk scanline overlay missing")
	}
	if got := doc.Find("a.toggle-view").AttrOr("href", ""); got != "/?style=cyberpunk&view=app" {
		t.Errorf("toggle link = %q", got)
	}
	if got := doc.Find("a.preview-link").AttrOr("href", ""); !strings.HasPrefix(got, "https://styles.example.com/?style=cyberpunk&view=website") {
		t.Errorf("preview link = %q", got)
	}
	if doc.Find("article.guide h1").Length() == 0 {
		t.Error("guide markdown not rendered")
	}
	if doc.Find("#intro").Length() != 0 {
		t.Error("intro shown for a direct style link")
	}
}

func TestPagePreviewOnly(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/?style=terminal&view=app&preview=true")
	doc := parse(t, rec.Body)

	if doc.Find("nav.nav").Length() != 0 || doc.Find("aside.info").Length() != 0 {
		t.Error("preview-only page renders chrome")
	}
	if doc.Find(".preview.view-app").Length() != 1 {
		t.Error("app preview missing")
	}
	if doc.Find(".app-header").Length() != 1 {
		t.Error("app mock not rendered")
	}
}

func TestPageFallback(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/?style=does-not-exist")
	if got := rec.Header().Get(FallbackHeader); got != style.DefaultID {
		t.Errorf("fallback header = %q; want %q", got, style.DefaultID)
	}
	doc := parse(t, rec.Body)
	if got := doc.Find(".preview").AttrOr("data-style", ""); got != style.DefaultID {
		t.Errorf("rendered style = %q", got)
	}
}

func TestIntroDismissal(t *testing.T) {
	s, _ := newTestServer(t)

	if parse(t, get(t, s, "/").Body).Find("#intro").Length() != 1 {
		t.Fatal("intro not shown on a plain visit")
	}

	form := url.Values{"forever": {"true"}, "style": {"Art Deco"}}
	req := httptest.NewRequest(http.MethodPost, "/intro/dismiss", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/?style=art-deco" {
		t.Errorf("redirect = %q", got)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName(preview.IntroDismissedKey) {
		t.Fatalf("cookies = %v", cookies)
	}
	if cookies[0].MaxAge <= 0 {
		t.Errorf("forever dismissal cookie MaxAge = %d", cookies[0].MaxAge)
	}

	if parse(t, get(t, s, "/", cookies[0]).Body).Find("#intro").Length() != 0 {
		t.Error("intro shown after dismissal")
	}
}

func TestIntroDismissOnce(t *testing.T) {
	s, _ := newTestServer(t)
	form := url.Values{"style": {"cyberpunk"}}
	req := httptest.NewRequest(http.MethodPost, "/intro/dismiss", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v", cookies)
	}
	if cookies[0].MaxAge != 0 || !cookies[0].Expires.IsZero() {
		t.Errorf("dismissal without forever should set a session cookie: %+v", cookies[0])
	}
	loc := rec.Header().Get("Location")
	if loc != "/?style=cyberpunk" {
		t.Errorf("redirect = %q", loc)
	}

	// The redirect target and later plain visits in the same session skip
	// the intro.
	for _, target := range []string{loc, "/"} {
		if parse(t, get(t, s, target, cookies[0]).Body).Find("#intro").Length() != 0 {
			t.Errorf("intro shown on %s after dismissal", target)
		}
	}
}

func TestIntroFormCarriesStyle(t *testing.T) {
	s, _ := newTestServer(t)
	doc := parse(t, get(t, s, "/").Body)
	if got := doc.Find(`#intro input[name="style"]`).AttrOr("value", ""); got != style.DefaultID {
		t.Errorf("intro form style = %q; want %q", got, style.DefaultID)
	}
}

func TestPageSwatchesAcceptFunctionalColors(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/?style=glassmorphism")
	body := rec.Body.String()
	if strings.Contains(body, "ZgotmplZ") {
		t.Fatal("template rejected a palette value")
	}
	doc := parse(t, strings.NewReader(body))
	found := false
	doc.Find("aside.info .swatch").Each(func(_ int, sel *goquery.Selection) {
		if sel.AttrOr("title", "") == "rgba(255,255,255,0.12)" {
			found = true
			if got := sel.AttrOr("style", ""); got != "background: rgba(255, 255, 255, 0.12)" {
				t.Errorf("swatch style = %q", got)
			}
		}
	})
	if !found {
		t.Error("rgba swatch missing from info panel")
	}
}

func TestConfiguredDefaultStyle(t *testing.T) {
	var buf bytes.Buffer
	s := New(Options{
		DefaultStyle: "Terminal",
		Logger:       log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}),
	})

	doc := parse(t, get(t, s, "/").Body)
	if got := doc.Find(".preview").AttrOr("data-style", ""); got != "terminal" {
		t.Errorf("root page style = %q; want terminal", got)
	}

	rec := get(t, s, "/api/styles/bogus")
	if got := rec.Header().Get(FallbackHeader); got != "terminal" {
		t.Errorf("fallback header = %q; want terminal", got)
	}
	var detail struct {
		Style style.Record `json:"style"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatal(err)
	}
	if detail.Style.ID != "terminal" {
		t.Errorf("fallback style = %q", detail.Style.ID)
	}

	if got := get(t, s, "/?style=bogus").Header().Get(FallbackHeader); got != "terminal" {
		t.Errorf("page fallback header = %q", got)
	}

	if New(Options{DefaultStyle: "nope"}).fallback.ID != style.DefaultID {
		t.Error("unknown configured default should select the built-in default")
	}
}

func TestListStyles(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/styles")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
	var got []styleEntry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != style.Count() {
		t.Fatalf("got %d styles; want %d", len(got), style.Count())
	}
	for _, e := range got {
		if e.ID == "" || e.Name == "" || e.Tags == nil || e.Categories == nil {
			t.Errorf("incomplete entry %+v", e)
		}
	}
}

func TestCategories(t *testing.T) {
	s, _ := newTestServer(t)
	var got []style.Category
	if err := json.NewDecoder(get(t, s, "/api/categories").Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(style.Categories()) {
		t.Errorf("got %d categories", len(got))
	}
}

func TestStyleDetail(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/styles/neomorphism?view=website")
	var got struct {
		Style      style.Record `json:"style"`
		PreviewURL string       `json:"previewUrl"`
		Compliance map[string]struct {
			Compliant  bool   `json:"compliant"`
			Overridden bool   `json:"overridden"`
			Status     string `json:"status"`
		} `json:"compliance"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Style.ID != "neomorphism" {
		t.Errorf("style = %q", got.Style.ID)
	}
	if got.PreviewURL != "https://styles.example.com/?style=neomorphism&view=website&preview=true" {
		t.Errorf("preview url = %q", got.PreviewURL)
	}
	if web := got.Compliance["web"]; web.Compliant || web.Status != "needs adjustment" {
		t.Errorf("web compliance = %+v", web)
	}
	if ios := got.Compliance["ios"]; ios.Compliant || !ios.Overridden {
		t.Errorf("ios compliance = %+v", ios)
	}
}

func TestStyleFallback(t *testing.T) {
	s, logs := newTestServer(t)
	rec := get(t, s, "/api/styles/nope/prompt")
	if got := rec.Header().Get(FallbackHeader); got != style.DefaultID {
		t.Errorf("fallback header = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Minimalist") {
		t.Error("fallback prompt does not describe the default style")
	}
	if !strings.Contains(logs.String(), "unknown style") {
		t.Errorf("fallback not logged: %s", logs.String())
	}
}

func TestGenerators(t *testing.T) {
	s, _ := newTestServer(t)
	tests := []struct {
		target, contentType, want string
	}{
		{"/api/styles/terminal/prompt", "text/plain", `"Terminal" style`},
		{"/api/styles/terminal/prompt?platform=ios", "text/plain", "Compliance: adjusted"},
		{"/api/styles/terminal/swift", "text/plain", "import SwiftUI"},
		{"/api/styles/terminal/css", "text/css", ":root {"},
		{"/api/styles/terminal/markdown", "text/markdown", "# Terminal Design Style"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("content type = %q", ct)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestMarkdownAttachment(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/styles/art-deco/markdown")
	want := `attachment; filename="art-deco-design-style.md"`
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Errorf("Content-Disposition = %q; want %q", got, want)
	}
}

func TestSkillsArchive(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/skills.zip")
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) == 0 {
		t.Error("empty archive")
	}
}

func TestRequestID(t *testing.T) {
	s, logs := newTestServer(t)

	rec := get(t, s, "/healthz")
	id := rec.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("no request id assigned")
	}
	if !strings.Contains(logs.String(), id) {
		t.Error("request id not logged")
	}

	const given = "5f0c5a52-9a2e-4a4e-9d1e-3b9f7b3e2c11"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, given)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != given {
		t.Errorf("request id = %q; want %q", got, given)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" || got == "" {
		t.Errorf("invalid request id reused: %q", got)
	}
}

func TestRequestLogging(t *testing.T) {
	s, logs := newTestServer(t)
	get(t, s, "/api/styles/terminal/css")
	out := logs.String()
	for _, want := range []string{"request", "path=/api/styles/terminal/css", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

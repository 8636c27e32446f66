package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(m browserModel, msgs ...tea.Msg) (browserModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(browserModel)
	}
	return m, cmd
}

func TestBuildRows(t *testing.T) {
	rows := buildRows()
	if len(rows) == 0 || rows[0].header == "" {
		t.Fatal("tree must start with a category header")
	}
	headers := 0
	for _, r := range rows {
		if r.header != "" {
			headers++
			continue
		}
		if _, ok := style.Lookup(r.id); !ok {
			t.Errorf("row names unknown style %q", r.id)
		}
	}
	if headers != len(style.Categories()) {
		t.Errorf("got %d headers; want %d", headers, len(style.Categories()))
	}
}

func TestBrowserInitialSelection(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"terminal", "terminal"},
		{"Art Deco", "art-deco"},
		{"missing", style.DefaultID},
	}
	for _, tt := range tests {
		m := newBrowserModel(BrowserOptions{StyleID: tt.in})
		if got := m.selected().ID; got != tt.want {
			t.Errorf("StyleID %q selected %q; want %q", tt.in, got, tt.want)
		}
		if m.rows[m.cursor].header != "" {
			t.Errorf("StyleID %q left cursor on a header", tt.in)
		}
	}
}

func TestBrowserCursorSkipsHeaders(t *testing.T) {
	m := newBrowserModel(BrowserOptions{})
	m.cursor = m.next(-1, 1)
	first := m.cursor

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != first {
		t.Errorf("cursor moved above the first style to %d", m.cursor)
	}

	for i := 0; i < len(m.rows)*2; i++ {
		m, _ = send(m, runes("j"))
		if m.rows[m.cursor].header != "" {
			t.Fatalf("cursor landed on header %q", m.rows[m.cursor].header)
		}
	}
	last := m.cursor
	if last != m.next(len(m.rows), -1) {
		t.Errorf("cursor stopped at %d; want last style row", last)
	}
}

func TestBrowserToggles(t *testing.T) {
	m := newBrowserModel(BrowserOptions{View: preview.ViewApp})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != preview.ViewWebsite {
		t.Errorf("view = %q after tab", m.view)
	}
	m, _ = send(m, runes("i"))
	if m.platform != generator.PlatformIOS {
		t.Errorf("platform = %q after i", m.platform)
	}
	m, _ = send(m, runes("i"), tea.KeyMsg{Type: tea.KeyTab})
	if m.platform != generator.PlatformWeb || m.view != preview.ViewApp {
		t.Errorf("toggles did not return: %q %q", m.platform, m.view)
	}
}

func TestBrowserCopyPrompt(t *testing.T) {
	cb := &fakeClipboard{}
	m := newBrowserModel(BrowserOptions{StyleID: "cyberpunk", Clipboard: cb, BaseURL: "https://x.test/"})
	m, cmd := send(m, runes("c"))

	if !strings.Contains(cb.text, `"Cyberpunk" style`) {
		t.Errorf("clipboard = %q", cb.text)
	}
	if !strings.Contains(cb.text, "https://x.test/?style=cyberpunk") {
		t.Error("prompt lacks preview link")
	}
	if m.statusErr || !strings.HasPrefix(m.status, "copied") {
		t.Errorf("status = %q (err %v)", m.status, m.statusErr)
	}
	if cmd == nil {
		t.Error("status should schedule its own clearing")
	}
}

func TestBrowserCopyFailure(t *testing.T) {
	cb := &fakeClipboard{err: fmt.Errorf("no clipboard utility")}
	m := newBrowserModel(BrowserOptions{StyleID: "terminal", Clipboard: cb})
	before := m.selected().ID

	m, _ = send(m, runes("m"))
	if !m.statusErr || m.status == "" {
		t.Fatalf("status = %q (err %v)", m.status, m.statusErr)
	}
	if m.selected().ID != before || m.pane {
		t.Error("failed copy changed browser state")
	}

	stale := clearStatusMsg{seq: m.statusSeq - 1}
	m, _ = send(m, stale)
	if m.status == "" {
		t.Error("stale clear message removed the current status")
	}
	m, _ = send(m, clearStatusMsg{seq: m.statusSeq})
	if m.status != "" || m.statusErr {
		t.Error("status not cleared")
	}
}

func TestBrowserExport(t *testing.T) {
	dir := t.TempDir()
	m := newBrowserModel(BrowserOptions{StyleID: "neomorphism", ExportDir: dir, Clipboard: &fakeClipboard{}})
	m, _ = send(m, runes("i"), runes("e"))

	data, err := os.ReadFile(filepath.Join(dir, "neomorphism-design-style.md"))
	if err != nil {
		t.Fatalf("export not written: %v (status %q)", err, m.status)
	}
	if !strings.Contains(string(data), "## iOS Compliance") {
		t.Error("export ignored the selected platform")
	}
	if !strings.HasPrefix(m.status, "wrote ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestBrowserMarkdownPane(t *testing.T) {
	m := newBrowserModel(BrowserOptions{StyleID: "terminal"})
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.pane {
		t.Fatal("enter did not open the markdown pane")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Terminal") {
		t.Error("pane does not show the style")
	}
	m, _ = send(m, runes("j"))
	if !m.pane || m.selected().ID != "terminal" {
		t.Error("keys inside the pane leaked to the list")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.pane {
		t.Error("esc did not close the pane")
	}
}

func TestBrowserView(t *testing.T) {
	m := newBrowserModel(BrowserOptions{StyleID: "cyberpunk", View: preview.ViewWebsite})
	out := ansi.Strip(m.View())
	for _, want := range []string{"Cyberpunk", "Design that sets the tone.", "overlay: Scanlines effect", "Compliance"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = send(m, runes("q"))
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestRenderMockWidth(t *testing.T) {
	for _, id := range style.IDs() {
		rec, _ := style.Lookup(id)
		for _, v := range preview.Views {
			out := renderMock(rec, v, 40)
			for _, line := range strings.Split(out, "\n") {
				if w := ansi.StringWidth(line); w > 40 {
					t.Errorf("%s/%s: line width %d exceeds 40", id, v, w)
					break
				}
			}
		}
	}
}

func TestPaletteIsOpaque(t *testing.T) {
	for _, id := range style.IDs() {
		rec, _ := style.Lookup(id)
		p := paletteOf(rec.Colors)
		for _, c := range []string{string(p.bg), string(p.surface), string(p.text), string(p.border)} {
			if len(c) != 7 || c[0] != '#' {
				t.Errorf("%s: color %q is not opaque hex", id, c)
			}
		}
	}
}

func TestIntroModel(t *testing.T) {
	var m tea.Model = newIntroModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.(introModel).forever {
		t.Fatal("space did not toggle the preference")
	}
	if !strings.Contains(m.View(), "[x]") {
		t.Error("toggle not shown as checked")
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	final := m.(introModel)
	if !final.proceed || !final.forever || cmd == nil {
		t.Errorf("enter: %+v", final)
	}

	m, _ = newIntroModel().Update(runes("q"))
	if m.(introModel).proceed {
		t.Error("q should not proceed")
	}
}

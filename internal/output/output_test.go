package output

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thisguymartin/stylebook/internal/errors"
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

func TestValidMode(t *testing.T) {
	for _, m := range []string{"stdout", "file", "clipboard"} {
		if !ValidMode(m) {
			t.Errorf("ValidMode(%q) = false", m)
		}
	}
	if ValidMode("pr") {
		t.Error("ValidMode(pr) = true")
	}
}

func TestHandleStdout(t *testing.T) {
	var buf bytes.Buffer
	res, err := Handle(Options{Content: "hello\n", Stdout: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n" || res.Bytes != 6 || res.Mode != ModeStdout {
		t.Errorf("got %q, %+v", buf.String(), res)
	}
}

func TestHandleFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	res, err := Handle(Options{Mode: ModeFile, Content: "# Zen\n", FileName: "zen-design-style.md", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "zen-design-style.md")
	if res.Path != want {
		t.Errorf("Path = %q; want %q", res.Path, want)
	}
	data, err := os.ReadFile(want)
	if err != nil || string(data) != "# Zen\n" {
		t.Errorf("file content = %q, %v", data, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
	if !strings.HasPrefix(res.Summary(), "wrote ") || !strings.Contains(res.Summary(), "6 B") {
		t.Errorf("Summary() = %q", res.Summary())
	}
}

func TestHandleFileNeedsName(t *testing.T) {
	_, err := Handle(Options{Mode: ModeFile, Content: "x", Dir: t.TempDir()})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestHandleFileFailureLeavesDirClean(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory in place of the target makes the final rename fail.
	blocked := filepath.Join(dir, "blocked.md")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(blocked, "child"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Handle(Options{Mode: ModeFile, Content: "new", FileName: "blocked.md", Dir: dir})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("err = %v; want IO error", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp file left behind: %v", entries)
	}
	if _, err := os.Stat(filepath.Join(blocked, "child")); err != nil {
		t.Errorf("existing target disturbed: %v", err)
	}
}

func TestHandleClipboard(t *testing.T) {
	cb := &fakeClipboard{}
	res, err := Handle(Options{Mode: ModeClipboard, Content: "prompt", Clipboard: cb})
	if err != nil {
		t.Fatal(err)
	}
	if cb.text != "prompt" || res.Summary() != "copied 6 B to clipboard" {
		t.Errorf("clipboard = %q, summary = %q", cb.text, res.Summary())
	}

	failing := &fakeClipboard{err: stderrors.New("no display")}
	_, err = Handle(Options{Mode: ModeClipboard, Content: "prompt", Clipboard: failing})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("err = %v; want IO error", err)
	}
}

func TestHandleUnknownMode(t *testing.T) {
	_, err := Handle(Options{Mode: "fax"})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("err = %v", err)
	}
}

// Package output delivers generated text to the user: stdout, a file in the
// export directory, or the system clipboard.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	"github.com/thisguymartin/stylebook/internal/errors"
)

// Mode represents the output dispatch mode.
type Mode string

const (
	ModeStdout    Mode = "stdout"
	ModeFile      Mode = "file"
	ModeClipboard Mode = "clipboard"
)

// ValidMode returns true if m is a known output mode.
func ValidMode(m string) bool {
	switch Mode(m) {
	case ModeStdout, ModeFile, ModeClipboard:
		return true
	}
	return false
}

// Clipboard abstracts the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard writes to the OS clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// Options holds everything needed to dispatch one export.
type Options struct {
	Mode     Mode
	Content  string
	FileName string
	Dir      string
	// Stdout defaults to os.Stdout.
	Stdout io.Writer
	// Clipboard defaults to SystemClipboard.
	Clipboard Clipboard
}

// Result describes a completed export.
type Result struct {
	Mode  Mode
	Path  string
	Bytes int
}

// Summary is a one-line human description of r.
func (r Result) Summary() string {
	size := humanize.Bytes(uint64(r.Bytes))
	switch r.Mode {
	case ModeFile:
		return fmt.Sprintf("wrote %s (%s)", r.Path, size)
	case ModeClipboard:
		return fmt.Sprintf("copied %s to clipboard", size)
	}
	return fmt.Sprintf("printed %s", size)
}

// Handle dispatches the content according to Mode. On failure nothing has
// been written to the destination.
func Handle(opts Options) (Result, error) {
	switch opts.Mode {
	case ModeStdout, "":
		return handleStdout(opts)
	case ModeFile:
		return handleFile(opts)
	case ModeClipboard:
		return handleClipboard(opts)
	default:
		return Result{}, errors.New(errors.ErrCodeUnsupported, "unknown output mode %q", opts.Mode)
	}
}

func handleStdout(opts Options) (Result, error) {
	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}
	n, err := io.WriteString(w, opts.Content)
	if err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "write output")
	}
	return Result{Mode: ModeStdout, Bytes: n}, nil
}

// handleFile writes Content to Dir/FileName through a temp file so a failed
// export leaves any previous file intact.
func handleFile(opts Options) (Result, error) {
	if opts.FileName == "" {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "file output needs a file name")
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "create output dir %q", dir)
	}

	path := filepath.Join(dir, opts.FileName)
	tmp, err := os.CreateTemp(dir, "."+opts.FileName+".*")
	if err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "create temp file in %q", dir)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(opts.Content); err != nil {
		tmp.Close()
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "write %q", path)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "write %q", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "write %q", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "write %q", path)
	}
	return Result{Mode: ModeFile, Path: path, Bytes: len(opts.Content)}, nil
}

func handleClipboard(opts Options) (Result, error) {
	cb := opts.Clipboard
	if cb == nil {
		cb = SystemClipboard
	}
	if err := cb.WriteAll(opts.Content); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "copy to clipboard")
	}
	return Result{Mode: ModeClipboard, Bytes: len(opts.Content)}, nil
}

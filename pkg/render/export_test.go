package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matzehuels/squashgraph/pkg/errors"
)

const testDOT = "digraph migrations {\n    \"blog/0001_initial\" -> \"shop/0001_initial\";\n}\n"

// fakeDot writes an executable shell script standing in for the dot binary.
func fakeDot(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "dot")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewRenderer(t *testing.T) {
	for _, name := range []string{"", RendererDot, RendererBuiltin} {
		if _, err := NewRenderer(name); err != nil {
			t.Errorf("NewRenderer(%q) error: %v", name, err)
		}
	}
	if _, err := NewRenderer("neato"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NewRenderer(neato) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestExternalRenderer(t *testing.T) {
	r := ExternalRenderer{Binary: fakeDot(t, "echo \"$1\"\ncat\n")}

	var buf bytes.Buffer
	if err := r.Render(context.Background(), []byte(testDOT), FormatSVG, &buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if want := "-Tsvg\n" + testDOT; buf.String() != want {
		t.Errorf("Render() wrote %q, want %q", buf.String(), want)
	}
}

func TestExternalRenderer_Failure(t *testing.T) {
	r := ExternalRenderer{Binary: fakeDot(t, "echo 'syntax error in line 1' >&2\nexit 1\n")}

	err := r.Render(context.Background(), []byte(testDOT), FormatPNG, &bytes.Buffer{})
	if !errors.Is(err, errors.ErrCodeRenderer) {
		t.Fatalf("Render() error = %v, want %v", err, errors.ErrCodeRenderer)
	}
	if !strings.Contains(err.Error(), "syntax error in line 1") {
		t.Errorf("error %q should carry stderr", err)
	}
}

func TestExternalRenderer_MissingBinary(t *testing.T) {
	r := ExternalRenderer{Binary: filepath.Join(t.TempDir(), "no-such-dot")}

	err := r.Render(context.Background(), []byte(testDOT), FormatPNG, &bytes.Buffer{})
	if !errors.Is(err, errors.ErrCodeRenderer) {
		t.Errorf("Render() error = %v, want %v", err, errors.ErrCodeRenderer)
	}
}

func TestExport_DOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrations.dot")

	if err := Export(context.Background(), testDOT, path, nil); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testDOT {
		t.Errorf("Export() wrote %q", got)
	}
}

func TestExport_Image(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "migrations.png")
	r := ExternalRenderer{Binary: fakeDot(t, "printf 'PNG:'\ncat\n")}

	if err := Export(context.Background(), testDOT, path, r); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "PNG:"+testDOT {
		t.Errorf("Export() wrote %q", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestExport_FailureKeepsPreviousImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "migrations.svg")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := ExternalRenderer{Binary: fakeDot(t, "printf partial\nexit 2\n")}

	if err := Export(context.Background(), testDOT, path, r); !errors.Is(err, errors.ErrCodeRenderer) {
		t.Fatalf("Export() error = %v, want %v", err, errors.ErrCodeRenderer)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("previous image replaced with %q", got)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestBuiltinRenderer_PDFUnsupported(t *testing.T) {
	err := BuiltinRenderer{}.Render(context.Background(), []byte(testDOT), FormatPDF, &bytes.Buffer{})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Render(pdf) error = %v, want %v", err, errors.ErrCodeUnsupported)
	}
}

func TestBuiltinRenderer_SVG(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz rendering in short mode")
	}

	var buf bytes.Buffer
	if err := (BuiltinRenderer{}).Render(context.Background(), []byte(testDOT), FormatSVG, &buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "blog/0001_initial") {
		t.Errorf("unexpected SVG output: %.200s", out)
	}
}

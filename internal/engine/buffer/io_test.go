package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !reflect.DeepEqual(b.Lines(), []string{"one", "two"}) {
		t.Errorf("lines = %q", b.Lines())
	}
	if b.Name() != "sample.txt" {
		t.Errorf("name = %q", b.Name())
	}
	if b.Dirty() {
		t.Error("freshly loaded buffer should not be dirty")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	b, err := Load(path, LoadOptions{})
	if err == nil {
		t.Fatal("expected a retained error for the missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	// The buffer is still fully constructed.
	if b == nil {
		t.Fatal("load must always return a buffer")
	}
	if b.LineCount() != 1 || b.LineText(0) != "" {
		t.Errorf("fallback buffer should hold a single empty line, got %q", b.Lines())
	}
	if b.Path() != path {
		t.Errorf("fallback buffer should keep the path, got %q", b.Path())
	}
}

func TestLoadTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path, LoadOptions{Truncate: true})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if b.LineCount() != 1 || b.LineText(0) != "" {
		t.Errorf("truncated buffer should be empty, got %q", b.Lines())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("file should be truncated on disk, has %d bytes", len(data))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a\nb"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := b.Apply(InsertText{Pos: Position{0, 1}, Text: "x"}); err != nil {
		t.Fatal(err)
	}

	n, err := b.Save(false)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if n != len("ax\nb") {
		t.Errorf("wrote %d bytes, want %d", n, len("ax\nb"))
	}
	if b.Dirty() {
		t.Error("save should clear the dirty flag")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "ax\nb" {
		t.Errorf("file content = %q", data)
	}
}

func TestSaveDetectsExternalChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conflict.txt")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	// Another process rewrites the file after we loaded it.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Save(false); !errors.Is(err, ErrFileChanged) {
		t.Fatalf("expected ErrFileChanged, got %v", err)
	}

	// Forcing the overwrite succeeds.
	if _, err := b.Save(true); err != nil {
		t.Fatalf("forced save failed: %v", err)
	}
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	b := NewFromString("data")

	target := filepath.Join(dir, "new.txt")
	if _, err := b.SaveAs(target, false); err != nil {
		t.Fatalf("save-as failed: %v", err)
	}
	if b.Path() != target {
		t.Errorf("path = %q, want %q", b.Path(), target)
	}
	if b.Name() != "new.txt" {
		t.Errorf("name = %q", b.Name())
	}

	// Save-as over an existing file requires overwrite.
	other := NewFromString("other")
	if _, err := other.SaveAs(target, false); !errors.Is(err, ErrPathExists) {
		t.Fatalf("expected ErrPathExists, got %v", err)
	}
	if _, err := other.SaveAs(target, true); err != nil {
		t.Fatalf("forced save-as failed: %v", err)
	}
}

func TestSaveReadOnly(t *testing.T) {
	b := NewFromString("text", WithPath(filepath.Join(t.TempDir(), "ro.txt")), WithReadOnly())

	if _, err := b.Save(false); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

package editor

import (
	"fmt"

	"github.com/ternedit/tern/internal/config"
	"github.com/ternedit/tern/internal/engine"
	"github.com/ternedit/tern/internal/engine/buffer"
)

// Document is one open buffer with its engine state. The session owns
// the collection and the active index.
type Document struct {
	eng *engine.Engine
}

// newDocument wraps a buffer.
func newDocument(b *buffer.Buffer) *Document {
	return &Document{eng: engine.New(b)}
}

// Engine returns the document's engine.
func (d *Document) Engine() *engine.Engine {
	return d.eng
}

// Buffer returns the document's buffer.
func (d *Document) Buffer() *buffer.Buffer {
	return d.eng.Buffer()
}

// openDocument loads path into a new document, honoring the readonly
// and truncate options. A load failure still yields a usable empty
// document along with the error, so the editor can open and report.
func openDocument(path string, cfg config.Config, opts buffer.LoadOptions) (*Document, error) {
	if path == "" {
		return newDocument(buffer.New(buffer.WithName(cfg.UntitledName), applyEnding(cfg))), nil
	}

	b, err := buffer.Load(path, opts)
	return newDocument(b), err
}

// applyEnding maps the configured line ending override to a buffer
// option. An empty setting keeps the detected ending.
func applyEnding(cfg config.Config) buffer.Option {
	switch cfg.LineEnding {
	case "crlf":
		return buffer.WithLineEnding(buffer.LineEndingCRLF)
	case "lf":
		return buffer.WithLineEnding(buffer.LineEndingLF)
	default:
		return func(*buffer.Buffer) {}
	}
}

// untitledName numbers scratch buffers: Untitled, Untitled-2, and so
// on, skipping names already in use.
func untitledName(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s-%d", base, i)
		if !taken(name) {
			return name
		}
	}
}

package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Errors returned by save operations.
var (
	// ErrFileChanged reports that the backing file was modified by
	// another process since this buffer last read or wrote it.
	ErrFileChanged = errors.New("file was modified externally")

	// ErrPathExists reports a save-as to a path that already exists.
	ErrPathExists = errors.New("path already exists")
)

// LoadOptions controls how a file is opened into a buffer.
type LoadOptions struct {
	// ReadOnly marks the buffer as not saveable.
	ReadOnly bool

	// Truncate empties the file on open.
	Truncate bool
}

// Load reads path into a new buffer.
//
// Load never fails to construct: on a missing or unreadable file the
// returned buffer is a valid single-empty-line buffer still associated
// with path, and the returned error is retained for status display
// only. A nil error means the file's content was loaded.
func Load(path string, opts LoadOptions) (*Buffer, error) {
	bopts := []Option{WithPath(path), WithName(filepath.Base(path))}
	if opts.ReadOnly {
		bopts = append(bopts, WithReadOnly())
	}

	if opts.Truncate {
		if err := os.Truncate(path, 0); err != nil && !os.IsNotExist(err) {
			return New(bopts...), err
		}
		b := New(bopts...)
		b.modTime = time.Now()
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return New(bopts...), err
	}

	b := NewFromString(string(data), bopts...)

	if info, statErr := os.Stat(path); statErr == nil {
		b.modTime = info.ModTime()
	}
	return b, nil
}

// ChangedOnDisk reports whether the backing file is newer than this
// buffer's last-known state.
func (b *Buffer) ChangedOnDisk() bool {
	if b.path == "" {
		return false
	}
	info, err := os.Stat(b.path)
	if err != nil {
		return false
	}
	return info.ModTime().After(b.modTime)
}

// Save writes the buffer back to its associated path. The write is
// refused with ErrFileChanged if the on-disk file is newer than this
// buffer's last-known state, unless overwrite is set. Returns the
// number of bytes written.
func (b *Buffer) Save(overwrite bool) (int, error) {
	n, err := b.writeTo(b.path, overwrite)
	if err != nil {
		return 0, err
	}
	b.dirty = false
	b.modTime = time.Now()
	return n, nil
}

// SaveAs writes the buffer to a new path and re-associates it. Saving
// over an existing file requires overwrite.
func (b *Buffer) SaveAs(path string, overwrite bool) (int, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return 0, ErrPathExists
		}
	}

	n, err := b.writeTo(path, overwrite)
	if err != nil {
		return 0, err
	}
	b.dirty = false
	b.modTime = time.Now()
	b.path = path
	b.name = filepath.Base(path)
	return n, nil
}

func (b *Buffer) writeTo(path string, overwrite bool) (int, error) {
	if b.readonly {
		return 0, ErrReadOnly
	}

	if info, err := os.Stat(path); err == nil {
		if info.ModTime().After(b.modTime) && !overwrite {
			return 0, ErrFileChanged
		}
	}

	data := []byte(b.Text())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

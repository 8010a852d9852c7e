package buffer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Errors returned by buffer operations.
var (
	// ErrInvalidPosition reports a command referencing a line or column
	// outside buffer bounds. This is a contract violation by the caller,
	// not a recoverable runtime condition.
	ErrInvalidPosition = errors.New("position out of range")

	// ErrReadOnly reports a write to a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")
)

// LineEnding specifies the on-disk line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the conventional name of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "CRLF"
	}
	return "LF"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// Buffer is an ordered collection of Lines with a file association and a
// dirty flag. A buffer always holds at least one line. Buffers do not
// know about cursors: every mutation returns a Change so the caller can
// re-synchronize whatever cursor set observes this buffer.
type Buffer struct {
	id       uuid.UUID
	path     string
	name     string
	lines    []*Line
	ending   LineEnding
	dirty    bool
	readonly bool
	revision uint64

	// modTime is the backing file's modification time as of the last
	// load or save, used to detect external changes before overwriting.
	modTime time.Time
}

// Option configures a buffer at construction.
type Option func(*Buffer)

// WithPath associates the buffer with a file path.
func WithPath(path string) Option {
	return func(b *Buffer) { b.path = path }
}

// WithName sets the buffer's display name.
func WithName(name string) Option {
	return func(b *Buffer) { b.name = name }
}

// WithLineEnding sets the on-disk line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) { b.ending = le }
}

// WithReadOnly marks the buffer read-only.
func WithReadOnly() Option {
	return func(b *Buffer) { b.readonly = true }
}

// New creates an empty buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:     uuid.New(),
		lines:  []*Line{NewLine()},
		ending: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer with initial content. Both LF and CRLF
// input are accepted; the detected ending is retained for saving.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	if strings.Contains(s, "\r\n") {
		b.ending = LineEndingCRLF
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}

	raw := strings.Split(s, "\n")
	// A trailing terminator delimits the last line rather than opening
	// a new one.
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	b.lines = make([]*Line, len(raw))
	for i, s := range raw {
		b.lines[i] = NewLineFromString(s)
	}
	return b
}

// Read Operations

// ID returns the buffer's identity.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Path returns the associated file path, empty for scratch buffers.
func (b *Buffer) Path() string {
	return b.path
}

// Name returns the display name.
func (b *Buffer) Name() string {
	return b.name
}

// SetName sets the display name.
func (b *Buffer) SetName(name string) {
	b.name = name
}

// Dirty returns true if the buffer has unsaved changes.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// ReadOnly returns true if the buffer refuses writes.
func (b *Buffer) ReadOnly() bool {
	return b.readonly
}

// LineEnding returns the on-disk line ending style.
func (b *Buffer) LineEnding() LineEnding {
	return b.ending
}

// Revision returns a counter incremented by every successful mutation.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// LineCount returns the number of lines, always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at the given index.
func (b *Buffer) Line(i int) *Line {
	return b.lines[i]
}

// LineText returns the text of a line, without terminator.
func (b *Buffer) LineText(i int) string {
	return b.lines[i].Text()
}

// LineLen returns the rune length of a line.
func (b *Buffer) LineLen(i int) int {
	return b.lines[i].Len()
}

// Lines returns a copy of all line contents, for rendering.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.Text()
	}
	return out
}

// Text returns the full content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sep := b.ending.Sequence()
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// TextRange returns the text between from and to (exclusive), with line
// breaks rendered as "\n" regardless of the on-disk ending. Positions
// must be valid.
func (b *Buffer) TextRange(from, to Position) string {
	if from.Line == to.Line {
		return b.lines[from.Line].Slice(from.Column, to.Column)
	}

	var sb strings.Builder
	first := b.lines[from.Line]
	sb.WriteString(first.Slice(from.Column, first.Len()))
	for i := from.Line + 1; i < to.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i].Text())
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[to.Line].Slice(0, to.Column))
	return sb.String()
}

// End returns the position just past the last rune of the buffer.
func (b *Buffer) End() Position {
	last := len(b.lines) - 1
	return Position{Line: last, Column: b.lines[last].Len()}
}

// ValidPosition reports whether p addresses an existing line and a
// column within it (the column one past the end is valid).
func (b *Buffer) ValidPosition(p Position) bool {
	return p.Line >= 0 && p.Line < len(b.lines) &&
		p.Column >= 0 && p.Column <= b.lines[p.Line].Len()
}

// Clamp returns p constrained to valid buffer bounds.
func (b *Buffer) Clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if max := b.lines[p.Line].Len(); p.Column > max {
		p.Column = max
	}
	return p
}

// Mutation

// Checkpoint captures the dirty flag and revision counter ahead of a
// batch of commands.
type Checkpoint struct {
	dirty    bool
	revision uint64
}

// Checkpoint records the buffer's current metadata. A caller unwinding
// a partially applied batch restores it so the rolled-back commands
// leave no trace in the dirty flag or revision counter.
func (b *Buffer) Checkpoint() Checkpoint {
	return Checkpoint{dirty: b.dirty, revision: b.revision}
}

// Restore resets the dirty flag and revision counter to a previously
// taken checkpoint. Line content is untouched; callers unwind content
// by applying inverse commands.
func (b *Buffer) Restore(cp Checkpoint) {
	b.dirty = cp.dirty
	b.revision = cp.revision
}

// Apply executes a command and returns its exact inverse along with a
// Change for cursor translation.
//
// Apply is atomic: it either fully succeeds or leaves the buffer
// untouched. The only failure mode is ErrInvalidPosition, which
// indicates a defect in the caller; validly built commands cannot
// trigger it.
func (b *Buffer) Apply(cmd Command) (Command, Change, error) {
	switch c := cmd.(type) {
	case InsertText:
		return b.applyInsert(c.Pos, c.Text)

	case DeleteRange:
		return b.applyDelete(c.From, c.To)

	case SplitLine:
		_, change, err := b.applyInsert(c.Pos, "\n")
		if err != nil {
			return nil, Change{}, err
		}
		return JoinLines{Line: c.Pos.Line}, change, nil

	case JoinLines:
		if c.Line < 0 || c.Line >= len(b.lines)-1 {
			return nil, Change{}, ErrInvalidPosition
		}
		pos := Position{Line: c.Line, Column: b.lines[c.Line].Len()}
		_, change, err := b.applyDelete(pos, Position{Line: c.Line + 1, Column: 0})
		if err != nil {
			return nil, Change{}, err
		}
		return SplitLine{Pos: pos}, change, nil

	default:
		// Command is a closed set; a new variant must be handled here.
		return nil, Change{}, ErrInvalidPosition
	}
}

// applyInsert inserts text at pos, splitting lines at every "\n".
func (b *Buffer) applyInsert(pos Position, text string) (Command, Change, error) {
	if !b.ValidPosition(pos) {
		return nil, Change{}, ErrInvalidPosition
	}

	segments := strings.Split(text, "\n")
	line := b.lines[pos.Line]

	var end Position
	if len(segments) == 1 {
		runes := []rune(text)
		line.Insert(pos.Column, runes)
		end = Position{Line: pos.Line, Column: pos.Column + len(runes)}
	} else {
		// The remainder of the target line becomes the tail of the new
		// trailing line.
		tail := line.SplitOff(pos.Column)
		line.Insert(pos.Column, []rune(segments[0]))

		inserted := make([]*Line, 0, len(segments)-1)
		for _, seg := range segments[1:] {
			inserted = append(inserted, NewLineFromString(seg))
		}
		last := inserted[len(inserted)-1]
		lastLen := last.Len()
		last.Append(tail)

		updated := make([]*Line, 0, len(b.lines)+len(inserted))
		updated = append(updated, b.lines[:pos.Line+1]...)
		updated = append(updated, inserted...)
		updated = append(updated, b.lines[pos.Line+1:]...)
		b.lines = updated

		end = Position{Line: pos.Line + len(segments) - 1, Column: lastLen}
	}

	b.dirty = true
	b.revision++

	change := Change{From: pos, To: pos, End: end}
	return DeleteRange{From: pos, To: end}, change, nil
}

// applyDelete removes the text between from and to, joining the
// surrounding lines when the range spans a line break.
func (b *Buffer) applyDelete(from, to Position) (Command, Change, error) {
	if !b.ValidPosition(from) || !b.ValidPosition(to) || from.After(to) {
		return nil, Change{}, ErrInvalidPosition
	}

	removed := b.TextRange(from, to)

	if from.Line == to.Line {
		b.lines[from.Line].Delete(from.Column, to.Column)
	} else {
		first := b.lines[from.Line]
		last := b.lines[to.Line]
		first.Delete(from.Column, first.Len())
		last.Delete(0, to.Column)
		first.Append(last)

		// Drop the joined line and everything strictly between.
		b.lines = append(b.lines[:from.Line+1], b.lines[to.Line+1:]...)
	}

	b.dirty = true
	b.revision++

	change := Change{From: from, To: to, End: from}
	return InsertText{Pos: from, Text: removed}, change, nil
}

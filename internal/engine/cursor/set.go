package cursor

import (
	"sort"

	"github.com/google/uuid"

	"github.com/ternedit/tern/internal/engine/buffer"
)

// Set is the collection of cursors observing one buffer. The set is
// kept sorted by start position with overlapping selections merged; the
// first cursor is the primary one.
//
// The buffer does not own or reference the set: the owner of both must
// hand every buffer Change to ApplyChange so positions stay consistent.
type Set struct {
	cursors []Cursor
}

// NewSet creates a set with a single primary cursor at p.
func NewSet(p buffer.Position) *Set {
	return &Set{cursors: []Cursor{New(p)}}
}

// Primary returns the primary (first) cursor.
func (s *Set) Primary() Cursor {
	return s.cursors[0]
}

// Count returns the number of cursors, always at least 1.
func (s *Set) Count() int {
	return len(s.cursors)
}

// IsMulti returns true if more than one cursor is active.
func (s *Set) IsMulti() bool {
	return len(s.cursors) > 1
}

// All returns a copy of all cursors in order.
func (s *Set) All() []Cursor {
	out := make([]Cursor, len(s.cursors))
	copy(out, s.cursors)
	return out
}

// Positions returns every cursor's head position in order.
func (s *Set) Positions() []buffer.Position {
	out := make([]buffer.Position, len(s.cursors))
	for i, c := range s.cursors {
		out[i] = c.Head
	}
	return out
}

// HasSelection returns true if any cursor holds a non-empty selection.
func (s *Set) HasSelection() bool {
	for _, c := range s.cursors {
		if !c.IsEmpty() {
			return true
		}
	}
	return false
}

// Add spawns an additional cursor at p and returns its identity.
// Overlapping cursors are merged immediately.
func (s *Set) Add(p buffer.Position) uuid.UUID {
	c := New(p)
	s.cursors = append(s.cursors, c)
	s.normalize()
	return c.ID
}

// Remove drops the cursor with the given identity. The last remaining
// cursor is never removed.
func (s *Set) Remove(id uuid.UUID) {
	if len(s.cursors) <= 1 {
		return
	}
	for i, c := range s.cursors {
		if c.ID == id {
			s.cursors = append(s.cursors[:i], s.cursors[i+1:]...)
			return
		}
	}
}

// Collapse reduces the set to its primary cursor with no selection.
func (s *Set) Collapse() {
	primary := s.cursors[0]
	primary.Selection = primary.Selection.Collapse()
	s.cursors = []Cursor{primary}
}

// ApplyChange translates every cursor across a buffer change. Both
// anchor and head are transposed, so selections stay aligned with the
// text they covered.
func (s *Set) ApplyChange(ch buffer.Change) {
	for i := range s.cursors {
		s.cursors[i].Anchor = ch.Transpose(s.cursors[i].Anchor)
		s.cursors[i].Head = ch.Transpose(s.cursors[i].Head)
		s.cursors[i].desiredColumn = s.cursors[i].Head.Column
	}
	s.normalize()
}

// Clamp constrains every cursor to valid positions in b.
func (s *Set) Clamp(b *buffer.Buffer) {
	for i := range s.cursors {
		s.cursors[i].Anchor = b.Clamp(s.cursors[i].Anchor)
		s.cursors[i].Head = b.Clamp(s.cursors[i].Head)
	}
	s.normalize()
}

// Snapshot returns a deep copy of the set's cursors, suitable for
// storing in an undo entry.
func (s *Set) Snapshot() []Cursor {
	return s.All()
}

// Restore replaces the set's cursors with a previously taken snapshot.
func (s *Set) Restore(snapshot []Cursor) {
	if len(snapshot) == 0 {
		return
	}
	s.cursors = make([]Cursor, len(snapshot))
	copy(s.cursors, snapshot)
}

// normalize sorts cursors by start position and merges overlaps. The
// earlier cursor's identity survives a merge.
func (s *Set) normalize() {
	if len(s.cursors) <= 1 {
		return
	}

	sort.SliceStable(s.cursors, func(i, j int) bool {
		return s.cursors[i].Start().Before(s.cursors[j].Start())
	})

	merged := s.cursors[:1]
	for _, c := range s.cursors[1:] {
		last := &merged[len(merged)-1]
		if !c.Start().After(last.End()) {
			// Overlapping or touching: merge into one.
			last.Selection = last.Selection.Merge(c.Selection)
		} else {
			merged = append(merged, c)
		}
	}
	s.cursors = merged
}

package cursor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ternedit/tern/internal/engine/buffer"
)

// Cursor is a selection with an identity. The identity is what ties a
// cursor to history snapshots and render state; cursors never hold a
// reference back to their buffer, only buffer-relative positions.
type Cursor struct {
	ID uuid.UUID
	Selection

	// desiredColumn remembers the column the user is aiming for during
	// vertical movement across shorter lines.
	desiredColumn int
}

// New creates a cursor at p with a fresh identity.
func New(p buffer.Position) Cursor {
	return Cursor{
		ID:            uuid.New(),
		Selection:     NewSelection(p),
		desiredColumn: p.Column,
	}
}

// Position returns the cursor's head position.
func (c Cursor) Position() buffer.Position {
	return c.Head
}

// String returns a human-readable representation.
func (c Cursor) String() string {
	if c.IsEmpty() {
		return fmt.Sprintf("Cursor%s", c.Head)
	}
	return fmt.Sprintf("Cursor%s-%s", c.Anchor, c.Head)
}

// moveTo places the head at p, either extending the selection or
// collapsing it so anchor and head travel together.
func (c *Cursor) moveTo(p buffer.Position, extend bool) {
	c.Head = p
	if !extend {
		c.Anchor = p
	}
	c.desiredColumn = p.Column
}

package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single decoded key press.
// It is an immutable value type.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Extend marks a movement event that should extend the current
	// selection instead of collapsing it.
	Extend bool
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewNamedEvent creates a key event for a named key.
func NewNamedEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsText returns true if this event should insert its character as text:
// a printable rune with neither Ctrl nor Alt held. Shift is part of the
// character itself and does not count.
func (e Event) IsText() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.Has(ModCtrl|ModAlt)
}

// IsMovement returns true for events that move the cursor.
func (e Event) IsMovement() bool {
	return e.Key.IsMovement()
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers &&
		e.Extend == other.Extend
}

// String returns a canonical representation such as "a", "Ctrl+q" or "Shift+Up".
func (e Event) String() string {
	var parts []string
	if mods := e.Modifiers.String(); mods != "" {
		parts = append(parts, mods)
	}

	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			parts = append(parts, "Space")
		} else {
			parts = append(parts, string(e.Rune))
		}
	default:
		parts = append(parts, e.Key.String())
	}

	return strings.Join(parts, "+")
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Extend: %v}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Extend)
}

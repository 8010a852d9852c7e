package key

import "strings"

// Modifier represents keyboard modifier keys.
// Modifiers are independently combinable bits.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModAlt indicates the Alt key.
	ModAlt

	// ModCtrl indicates the Control key.
	ModCtrl
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// csiModifier decodes the xterm CSI modifier parameter.
// The wire value is 1 + bitmask, where shift=1, alt=2, ctrl=4.
// A parameter of 0 or 1 means no modifiers.
func csiModifier(param int) Modifier {
	if param < 2 {
		return ModNone
	}
	bits := param - 1

	var m Modifier
	if bits&1 != 0 {
		m = m.With(ModShift)
	}
	if bits&2 != 0 {
		m = m.With(ModAlt)
	}
	if bits&4 != 0 {
		m = m.With(ModCtrl)
	}
	return m
}

package key

// csiEntry maps a CSI final byte to a key with implicit modifiers.
type csiEntry struct {
	Key  Key
	Mods Modifier
}

// Table maps completed CSI sequences to keys. The xterm "1 + bitmask"
// modifier convention is assumed; terminals speaking a richer protocol
// can install a different table on the decoder.
type Table struct {
	// letters maps a final letter byte (ESC [ ... <letter>) to a key.
	letters map[byte]csiEntry

	// tildes maps the first numeric parameter of ESC [ <n> ~ to a key.
	tildes map[int]Key
}

// DefaultTable returns the legacy xterm/VT sequence table.
func DefaultTable() *Table {
	return &Table{
		letters: map[byte]csiEntry{
			'A': {Key: KeyUp},
			'B': {Key: KeyDown},
			'C': {Key: KeyRight},
			'D': {Key: KeyLeft},
			'H': {Key: KeyHome},
			'F': {Key: KeyEnd},
			'Z': {Key: KeyTab, Mods: ModShift}, // back-tab
		},
		tildes: map[int]Key{
			1: KeyHome,
			2: KeyInsert,
			3: KeyDelete,
			4: KeyEnd,
			5: KeyPageUp,
			6: KeyPageDown,
			7: KeyHome,
			8: KeyEnd,
		},
	}
}

// Lookup resolves a completed (parameters, final byte) pair to an event.
// The second return value is false for sequences not in the table.
func (t *Table) Lookup(params []int, final byte) (Event, bool) {
	var (
		k    Key
		mods Modifier
	)

	if final == '~' {
		if len(params) == 0 {
			return Event{}, false
		}
		key, ok := t.tildes[params[0]]
		if !ok {
			return Event{}, false
		}
		k = key
		if len(params) >= 2 {
			mods = csiModifier(params[1])
		}
	} else {
		entry, ok := t.letters[final]
		if !ok {
			return Event{}, false
		}
		k = entry.Key
		mods = entry.Mods
		// xterm encodes modified keys as ESC [ 1 ; <mod> <letter>.
		if len(params) == 2 && params[0] == 1 {
			mods = mods.With(csiModifier(params[1]))
		} else if len(params) != 0 {
			return Event{}, false
		}
	}

	ev := NewNamedEvent(k, mods)
	ev.Extend = k.IsMovement() && mods.HasShift()
	return ev, true
}

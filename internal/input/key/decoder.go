package key

import "unicode/utf8"

// decoderState enumerates the decoder's escape-parsing states.
type decoderState uint8

const (
	stateGround decoderState = iota // normal text and control bytes
	stateEscape                     // ESC consumed, successor pending
	stateCSI                        // ESC [ consumed, accumulating parameters
)

// maxCSIParams bounds accumulated parameter bytes. A stream exceeding it
// is not a key sequence and triggers resynchronization.
const maxCSIParams = 32

// Decoder converts a raw terminal byte stream into key events.
//
// The decoder is a persistent state machine: a multi-byte escape sequence
// or UTF-8 character split across reads decodes correctly once the
// remaining bytes arrive. A sequence that cannot be completed is
// resynchronized by flushing a literal Escape event and reprocessing the
// offending byte from the ground state.
//
// Known protocol ambiguity: Tab and Ctrl+Tab arrive as the same byte
// (0x09), so both decode to a plain Tab event.
type Decoder struct {
	state   decoderState
	params  []byte // CSI parameter bytes (digits and ';')
	utf8    []byte // partial multi-byte character
	altNext bool   // Alt-prefixed character still accumulating
	table   *Table
}

// NewDecoder creates a decoder using the legacy xterm sequence table.
func NewDecoder() *Decoder {
	return &Decoder{table: DefaultTable()}
}

// SetTable replaces the CSI lookup table.
func (d *Decoder) SetTable(t *Table) {
	if t != nil {
		d.table = t
	}
}

// Pending returns true if the decoder is mid-sequence and waiting for
// more bytes. This is not an error state.
func (d *Decoder) Pending() bool {
	return d.state != stateGround || len(d.utf8) > 0
}

// Feed decodes a chunk of bytes. Chunk boundaries are arbitrary; partial
// sequences are carried over to the next call.
func (d *Decoder) Feed(p []byte) []Event {
	var events []Event
	for _, b := range p {
		events = append(events, d.Put(b)...)
	}
	return events
}

// Put decodes a single byte, returning zero or more events.
func (d *Decoder) Put(b byte) []Event {
	switch d.state {
	case stateEscape:
		return d.putEscape(b)
	case stateCSI:
		return d.putCSI(b)
	default:
		return d.putGround(b)
	}
}

func (d *Decoder) putGround(b byte) []Event {
	if len(d.utf8) > 0 {
		return d.putUTF8(b)
	}

	switch {
	case b == 0x1B:
		d.state = stateEscape
		return nil
	case b < 0x20 || b == 0x7F:
		return []Event{controlEvent(b)}
	case b < 0x80:
		return []Event{NewRuneEvent(rune(b), ModNone)}
	default:
		return d.putUTF8(b)
	}
}

// putUTF8 accumulates bytes of a multi-byte character.
func (d *Decoder) putUTF8(b byte) []Event {
	if len(d.utf8) > 0 && !isContinuation(b) {
		// Truncated character: surface a replacement rune and start over.
		d.utf8 = d.utf8[:0]
		events := []Event{d.runeEvent(utf8.RuneError)}
		return append(events, d.putGround(b)...)
	}

	d.utf8 = append(d.utf8, b)
	if !utf8.FullRune(d.utf8) {
		if len(d.utf8) < utf8.UTFMax {
			return nil // wait for the rest
		}
		d.utf8 = d.utf8[:0]
		return []Event{d.runeEvent(utf8.RuneError)}
	}

	r, _ := utf8.DecodeRune(d.utf8)
	d.utf8 = d.utf8[:0]
	return []Event{d.runeEvent(r)}
}

// runeEvent emits a decoded character, attaching the Alt modifier when
// a pending escape prefix left one for it.
func (d *Decoder) runeEvent(r rune) Event {
	ev := NewRuneEvent(r, ModNone)
	if d.altNext {
		d.altNext = false
		ev.Modifiers = ev.Modifiers.With(ModAlt)
	}
	return ev
}

func (d *Decoder) putEscape(b byte) []Event {
	if b == '[' {
		d.state = stateCSI
		d.params = d.params[:0]
		return nil
	}

	// Legacy Alt-prefix convention: ESC followed by any other byte is
	// that key with Alt added.
	d.state = stateGround
	if b == 0x1B {
		return []Event{NewNamedEvent(KeyEscape, ModAlt)}
	}
	if b >= 0x80 {
		// Multi-byte character: the Alt modifier attaches when the
		// rune completes, however many reads that takes.
		d.altNext = true
		return d.putUTF8(b)
	}
	events := d.putGround(b)
	for i := range events {
		events[i].Modifiers = events[i].Modifiers.With(ModAlt)
	}
	return events
}

func (d *Decoder) putCSI(b byte) []Event {
	switch {
	case b >= '0' && b <= '9' || b == ';':
		if len(d.params) >= maxCSIParams {
			return d.resync(b)
		}
		d.params = append(d.params, b)
		return nil

	case b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b == '~':
		params := parseCSIParams(d.params)
		d.state = stateGround
		ev, ok := d.table.Lookup(params, b)
		if !ok {
			return d.resync(b)
		}
		return []Event{ev}

	default:
		return d.resync(b)
	}
}

// resync abandons the current escape sequence: the buffered ESC becomes a
// literal Escape event and the breaking byte is reprocessed from ground.
func (d *Decoder) resync(b byte) []Event {
	d.state = stateGround
	d.params = d.params[:0]
	events := []Event{NewNamedEvent(KeyEscape, ModNone)}
	return append(events, d.putGround(b)...)
}

// controlEvent maps a C0 byte (or DEL) to its canonical key. The ctrl
// modifier is set only when the byte differs from the unmodified key's
// own code; plain Tab and Ctrl+Tab are byte-identical on the wire, so
// 0x09 always decodes without ctrl.
func controlEvent(b byte) Event {
	switch b {
	case 0x09:
		return NewNamedEvent(KeyTab, ModNone)
	case 0x0D:
		return NewNamedEvent(KeyEnter, ModNone)
	case 0x7F:
		return NewNamedEvent(KeyBackspace, ModNone)
	case 0x08:
		// Ctrl+H, historically backspace.
		return NewNamedEvent(KeyBackspace, ModCtrl)
	case 0x0A:
		// Ctrl+J, line feed.
		return NewNamedEvent(KeyEnter, ModCtrl)
	case 0x00:
		return NewRuneEvent(' ', ModCtrl)
	}

	if b >= 0x01 && b <= 0x1A {
		return NewRuneEvent(rune('a'+b-1), ModCtrl)
	}
	// 0x1C..0x1F: Ctrl+\ Ctrl+] Ctrl+^ Ctrl+_
	return NewRuneEvent(rune(b+0x40), ModCtrl)
}

// isContinuation reports whether b is a UTF-8 continuation byte.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// parseCSIParams splits accumulated digit/';' bytes into integers.
// Empty positions decode as zero, matching terminal behavior.
func parseCSIParams(raw []byte) []int {
	if len(raw) == 0 {
		return nil
	}

	params := []int{0}
	for _, b := range raw {
		if b == ';' {
			params = append(params, 0)
			continue
		}
		last := len(params) - 1
		params[last] = params[last]*10 + int(b-'0')
	}
	return params
}

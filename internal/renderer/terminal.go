package renderer

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal owns the tty state for an editing session: raw mode on the
// input and the alternate screen on the output.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
}

// OpenTerminal switches the tty into raw mode and the alternate
// screen. Callers must Close it to give the shell its terminal back.
func OpenTerminal(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", in.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	if _, err := out.WriteString(escAltScreenOn + escClearAll + goTo(1, 1)); err != nil {
		_ = term.Restore(fd, state)
		return nil, err
	}

	return &Terminal{in: in, out: out, state: state}, nil
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	return term.GetSize(int(t.in.Fd()))
}

// In returns the raw input stream.
func (t *Terminal) In() *os.File {
	return t.in
}

// Out returns the output stream.
func (t *Terminal) Out() *os.File {
	return t.out
}

// Close restores the terminal to its original state.
func (t *Terminal) Close() error {
	_, werr := t.out.WriteString(escResetColors + escShowCursor + escCursorBar + escAltScreenOff)
	rerr := term.Restore(int(t.in.Fd()), t.state)
	if rerr != nil {
		return rerr
	}
	return werr
}

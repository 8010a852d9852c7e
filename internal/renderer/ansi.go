package renderer

import "fmt"

// ANSI escape fragments used by the renderer. Only what the editor
// actually emits; this is not a general terminal library.
const (
	escClearAll    = "\x1b[2J"
	escResetColors = "\x1b[0m"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"

	escCursorBar       = "\x1b[5 q"
	escCursorBlock     = "\x1b[1 q"
	escCursorUnderline = "\x1b[3 q"

	escAltScreenOn  = "\x1b[?1049h"
	escAltScreenOff = "\x1b[?1049l"
)

// goTo moves the terminal cursor to a 1-based row and column.
func goTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// fgRGB selects a 24-bit foreground color.
func fgRGB(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// bgRGB selects a 24-bit background color.
func bgRGB(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

const (
	fgReset = "\x1b[39m"
	bgReset = "\x1b[49m"
)

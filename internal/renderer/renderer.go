package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ternedit/tern/internal/config"
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
)

// Colors shared with the status line, matching a dim highlight for the
// current row and a light grey status bar.
var (
	lineHighlightBg = bgRGB(39, 39, 39)
	lineNumberFg    = fgRGB(90, 90, 90)
	statusBg        = bgRGB(184, 184, 184)
	statusFg        = fgRGB(32, 32, 32)
	selectionBg     = bgRGB(60, 60, 90)
)

// Frame is everything one redraw needs.
type Frame struct {
	Buffer    *buffer.Buffer
	Cursors   *cursor.Set
	Message   *Message
	Overwrite bool
}

// Renderer draws frames as ANSI escape streams. Each draw builds the
// whole screen into one buffer and writes it in a single call, so the
// terminal never shows a half-painted frame.
type Renderer struct {
	out  io.Writer
	cfg  config.Config
	view Viewport

	width  int
	height int
}

// New creates a renderer writing to out.
func New(out io.Writer, cfg config.Config) *Renderer {
	return &Renderer{out: out, cfg: cfg}
}

// SetSize updates the terminal dimensions, typically on SIGWINCH.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Viewport exposes the current viewport, mainly for page movement.
func (r *Renderer) Viewport() *Viewport {
	return &r.view
}

// Draw paints a full frame.
func (r *Renderer) Draw(f Frame) error {
	if r.width <= 0 || r.height <= 1 {
		return nil
	}

	gutter := 0
	if r.cfg.LineNumbers {
		gutter = digits(f.Buffer.LineCount()) + 1
	}

	r.view.Width = r.width - gutter
	r.view.Height = r.height - 1

	primary := f.Cursors.Primary().Position()
	cursorVisual := visualColumn(f.Buffer.LineText(primary.Line), primary.Column, r.cfg.TabWidth)
	r.view.EnsureVisible(primary.Line, cursorVisual)

	var out bytes.Buffer
	out.WriteString(escHideCursor)
	out.WriteString(escClearAll)

	for row := 0; row < r.view.Height; row++ {
		line := r.view.Line + row
		if line >= f.Buffer.LineCount() {
			break
		}
		r.drawLine(&out, f, line, row, gutter)
	}

	r.drawStatus(&out, f, primary)

	// Park the terminal cursor on the primary cursor.
	out.WriteString(goTo(primary.Line-r.view.Line+1, cursorVisual-r.view.Col+gutter+1))
	if f.Overwrite {
		out.WriteString(escCursorBlock)
	} else {
		out.WriteString(escCursorBar)
	}
	out.WriteString(escShowCursor)

	_, err := r.out.Write(out.Bytes())
	return err
}

// drawLine paints one buffer line into its screen row.
func (r *Renderer) drawLine(out *bytes.Buffer, f Frame, line, row, gutter int) {
	primary := f.Cursors.Primary().Position()
	current := line == primary.Line

	out.WriteString(goTo(row+1, 1))
	if current {
		out.WriteString(lineHighlightBg)
	}

	if gutter > 0 {
		out.WriteString(lineNumberFg)
		fmt.Fprintf(out, "%*d ", gutter-1, line+1)
		out.WriteString(fgReset)
	}

	text := f.Buffer.LineText(line)
	printed := 0
	for _, c := range layoutLine(text, r.cfg.TabWidth) {
		if c.visual+c.width <= r.view.Col {
			continue
		}
		if c.visual >= r.view.Col+r.view.Width {
			break
		}

		selected := r.inSelection(f, buffer.Position{Line: line, Column: c.column})
		if selected {
			out.WriteString(selectionBg)
		}

		switch {
		case c.visual < r.view.Col:
			// Partially scrolled off the left edge.
			out.WriteString(strings.Repeat("<", c.visual+c.width-r.view.Col))
			printed += c.visual + c.width - r.view.Col
		case c.visual+c.width > r.view.Col+r.view.Width:
			out.WriteString(strings.Repeat(">", r.view.Col+r.view.Width-c.visual))
			printed += r.view.Col + r.view.Width - c.visual
		case c.text == "\t":
			out.WriteString(strings.Repeat(" ", c.width))
			printed += c.width
		default:
			out.WriteString(c.text)
			printed += c.width
		}

		if selected {
			if current {
				out.WriteString(lineHighlightBg)
			} else {
				out.WriteString(bgReset)
			}
		}
	}

	if current {
		// Extend the highlight across the rest of the row.
		if pad := r.view.Width - printed; pad > 0 {
			out.WriteString(strings.Repeat(" ", pad))
		}
		out.WriteString(bgReset)
	}
	out.WriteString(escResetColors)
}

// drawStatus paints the bottom row: the pending message if one is
// set, otherwise the buffer name, position and line ending.
func (r *Renderer) drawStatus(out *bytes.Buffer, f Frame, primary buffer.Position) {
	out.WriteString(goTo(r.height, 1))

	if f.Message != nil {
		bg, fg := f.Message.style()
		out.WriteString(bg)
		out.WriteString(fg)
		fmt.Fprintf(out, " %s", padTo(f.Message.Text, r.width-1))
		out.WriteString(escResetColors)
		return
	}

	out.WriteString(statusBg)
	out.WriteString(statusFg)

	name := f.Buffer.Name()
	if f.Buffer.Dirty() {
		name += " *"
	}
	if f.Buffer.ReadOnly() {
		name += " [ro]"
	}

	mode := ""
	if f.Overwrite {
		mode = "OVR "
	}
	rhs := fmt.Sprintf("%s(%d, %d) %s", mode, primary.Line+1, primary.Column+1, f.Buffer.LineEnding())
	if f.Cursors.IsMulti() {
		rhs = fmt.Sprintf("%d cursors %s", f.Cursors.Count(), rhs)
	}

	pad := r.width - runewidth.StringWidth(name) - runewidth.StringWidth(rhs) - 3
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(out, " %s%s%s ", name, strings.Repeat(" ", pad), rhs)
	out.WriteString(escResetColors)
}

// DrawPrompt paints a minibuffer prompt over the status line and
// parks the terminal cursor after the input.
func (r *Renderer) DrawPrompt(label, input string) error {
	if r.width <= 0 || r.height < 1 {
		return nil
	}

	var out bytes.Buffer
	out.WriteString(goTo(r.height, 1))
	out.WriteString(statusBg)
	out.WriteString(statusFg)
	fmt.Fprintf(&out, " %s %s", label, padTo(input, r.width-runewidth.StringWidth(label)-3))
	out.WriteString(escResetColors)
	out.WriteString(goTo(r.height, runewidth.StringWidth(label)+runewidth.StringWidth(input)+3))
	out.WriteString(escCursorUnderline)

	_, err := r.out.Write(out.Bytes())
	return err
}

// inSelection reports whether a position falls inside any cursor's
// selection.
func (r *Renderer) inSelection(f Frame, p buffer.Position) bool {
	if !f.Cursors.HasSelection() {
		return false
	}
	for _, c := range f.Cursors.All() {
		if !c.IsEmpty() && c.Contains(p) {
			return true
		}
	}
	return false
}

// padTo truncates or right-pads s to exactly width screen cells.
func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

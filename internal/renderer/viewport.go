package renderer

// Viewport is the window onto the buffer: a top-left origin in line
// and visual-column space plus the text area size in screen cells.
type Viewport struct {
	Line   int // first visible buffer line
	Col    int // first visible screen column
	Width  int
	Height int
}

// EnsureVisible scrolls the viewport the minimal distance needed to
// bring the given line and visual column into view.
func (v *Viewport) EnsureVisible(line, visual int) {
	if line < v.Line {
		v.Line = line
	}
	if line >= v.Line+v.Height {
		v.Line = line - v.Height + 1
	}

	if visual < v.Col {
		v.Col = visual
	}
	if visual >= v.Col+v.Width {
		v.Col = visual - v.Width + 1
	}
}

// Page returns the number of lines a page movement jumps.
func (v *Viewport) Page() int {
	if v.Height <= 1 {
		return 1
	}
	return v.Height - 1
}

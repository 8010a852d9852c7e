package renderer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cell is one grapheme cluster placed on the screen.
type cell struct {
	text   string
	column int // rune column in the line
	visual int // leftmost screen column
	width  int // screen columns occupied
}

// layoutLine maps a line of text to screen cells. Columns count runes
// to stay aligned with buffer positions; widths count screen columns,
// so CJK and other wide clusters occupy two and tabs snap to the next
// tab stop.
func layoutLine(text string, tabWidth int) []cell {
	var cells []cell
	column, visual := 0, 0

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		s := g.Str()

		w := runewidth.StringWidth(s)
		if s == "\t" {
			w = tabWidth - visual%tabWidth
		}

		cells = append(cells, cell{text: s, column: column, visual: visual, width: w})
		column += len(g.Runes())
		visual += w
	}
	return cells
}

// visualColumn returns the screen column where the given rune column
// starts.
func visualColumn(text string, column, tabWidth int) int {
	for _, c := range layoutLine(text, tabWidth) {
		if c.column >= column {
			return c.visual
		}
	}
	return visualWidth(text, tabWidth)
}

// visualWidth returns the total screen width of a line.
func visualWidth(text string, tabWidth int) int {
	cells := layoutLine(text, tabWidth)
	if len(cells) == 0 {
		return 0
	}
	last := cells[len(cells)-1]
	return last.visual + last.width
}

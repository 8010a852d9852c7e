// Package renderer paints the editor onto a terminal with raw ANSI
// escapes: a scrolling viewport with a line number gutter, a current
// line highlight, selection shading and a status line. Widths are
// measured in screen cells so tabs and wide characters line up.
package renderer

package renderer

import "testing"

func TestLayoutLineASCII(t *testing.T) {
	cells := layoutLine("abc", 8)
	if len(cells) != 3 {
		t.Fatalf("cells = %d, want 3", len(cells))
	}
	for i, c := range cells {
		if c.column != i || c.visual != i || c.width != 1 {
			t.Errorf("cell %d = %+v", i, c)
		}
	}
}

func TestLayoutLineWideRunes(t *testing.T) {
	cells := layoutLine("a日b", 8)
	if len(cells) != 3 {
		t.Fatalf("cells = %d, want 3", len(cells))
	}
	if cells[1].width != 2 {
		t.Errorf("CJK width = %d, want 2", cells[1].width)
	}
	if cells[2].column != 2 {
		t.Errorf("rune column after CJK = %d, want 2", cells[2].column)
	}
	if cells[2].visual != 3 {
		t.Errorf("visual column after CJK = %d, want 3", cells[2].visual)
	}
}

func TestLayoutLineTabStops(t *testing.T) {
	cells := layoutLine("a\tb", 4)
	if cells[1].width != 3 {
		t.Errorf("tab width = %d, want 3", cells[1].width)
	}
	if cells[2].visual != 4 {
		t.Errorf("column after tab = %d, want 4", cells[2].visual)
	}

	// A tab on a stop still advances a full stop.
	cells = layoutLine("\t", 4)
	if cells[0].width != 4 {
		t.Errorf("leading tab width = %d, want 4", cells[0].width)
	}
}

func TestVisualColumn(t *testing.T) {
	tests := []struct {
		text   string
		column int
		want   int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 3, 3},
		{"日本", 1, 2},
		{"日本", 2, 4},
		{"a\tb", 2, 4},
	}

	for _, tt := range tests {
		if got := visualColumn(tt.text, tt.column, 4); got != tt.want {
			t.Errorf("visualColumn(%q, %d) = %d, want %d", tt.text, tt.column, got, tt.want)
		}
	}
}

func TestVisualWidth(t *testing.T) {
	if got := visualWidth("", 4); got != 0 {
		t.Errorf("empty width = %d", got)
	}
	if got := visualWidth("日本語", 4); got != 6 {
		t.Errorf("CJK width = %d, want 6", got)
	}
}

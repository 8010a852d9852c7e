package renderer

import "testing"

func TestEnsureVisibleScrollsDown(t *testing.T) {
	v := Viewport{Width: 80, Height: 10}

	v.EnsureVisible(25, 0)
	if v.Line != 16 {
		t.Errorf("line origin = %d, want 16", v.Line)
	}

	// Already visible: no movement.
	v.EnsureVisible(20, 0)
	if v.Line != 16 {
		t.Errorf("line origin moved to %d", v.Line)
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	v := Viewport{Line: 30, Width: 80, Height: 10}

	v.EnsureVisible(5, 0)
	if v.Line != 5 {
		t.Errorf("line origin = %d, want 5", v.Line)
	}
}

func TestEnsureVisibleHorizontal(t *testing.T) {
	v := Viewport{Width: 20, Height: 10}

	v.EnsureVisible(0, 45)
	if v.Col != 26 {
		t.Errorf("col origin = %d, want 26", v.Col)
	}

	v.EnsureVisible(0, 3)
	if v.Col != 3 {
		t.Errorf("col origin = %d, want 3", v.Col)
	}
}

func TestPage(t *testing.T) {
	v := Viewport{Height: 24}
	if v.Page() != 23 {
		t.Errorf("page = %d, want 23", v.Page())
	}

	v.Height = 1
	if v.Page() != 1 {
		t.Errorf("degenerate page = %d, want 1", v.Page())
	}
}

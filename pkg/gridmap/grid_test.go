package gridmap

import (
	"errors"
	"testing"
)

func TestNewGridIsFree(t *testing.T) {
	g := NewGrid(6)
	if g.Size() != 6 {
		t.Fatalf("expected size 6, got %d", g.Size())
	}
	if got := g.BlockedCount(); got != 0 {
		t.Errorf("expected 0 blocked cells, got %d", got)
	}
}

func TestMarkBlockedAndFree(t *testing.T) {
	g := NewGrid(3)
	c := Cell{Row: 1, Col: 2}

	if err := g.MarkBlocked(c); err != nil {
		t.Fatalf("MarkBlocked: unexpected error %v", err)
	}
	blocked, err := g.IsBlocked(c)
	if err != nil || !blocked {
		t.Errorf("expected cell to be blocked, got blocked=%v err=%v", blocked, err)
	}
	if g.BlockedCount() != 1 {
		t.Errorf("expected 1 blocked cell, got %d", g.BlockedCount())
	}

	if err := g.MarkFree(c); err != nil {
		t.Fatalf("MarkFree: unexpected error %v", err)
	}
	blocked, _ = g.IsBlocked(c)
	if blocked {
		t.Error("expected cell to be free after MarkFree")
	}
}

func TestOutOfBounds(t *testing.T) {
	g := NewGrid(4)
	bad := []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {10, 10}}
	for _, c := range bad {
		if err := g.MarkBlocked(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MarkBlocked(%v): expected ErrOutOfBounds, got %v", c, err)
		}
		if err := g.MarkFree(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MarkFree(%v): expected ErrOutOfBounds, got %v", c, err)
		}
		if _, err := g.IsBlocked(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("IsBlocked(%v): expected ErrOutOfBounds, got %v", c, err)
		}
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b Cell
		want int
	}{
		{Cell{3, 3}, Cell{3, 3}, 0},
		{Cell{3, 3}, Cell{4, 4}, 1},
		{Cell{3, 3}, Cell{0, 5}, 3},
		{Cell{0, 0}, Cell{2, 1}, 2},
	}
	for _, tt := range tests {
		if got := tt.a.Chebyshev(tt.b); got != tt.want {
			t.Errorf("Chebyshev(%v, %v): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestPixelConversion(t *testing.T) {
	c := Cell{Row: 2, Col: 3}
	x, y := c.TopLeft(40)
	if x != 120 || y != 80 {
		t.Errorf("expected (120, 80), got (%v, %v)", x, y)
	}
	if got := CellAt(x+39, y+1, 40); got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
}

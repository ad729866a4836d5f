package input

import "testing"

func TestNormalized(t *testing.T) {
	tests := []struct {
		in         Intent
		wantDX     int
		wantDY     int
		wantMoving bool
	}{
		{Intent{}, 0, 0, false},
		{Intent{DX: 5, DY: -3}, 1, -1, true},
		{Intent{DX: -1}, -1, 0, true},
		{Intent{DY: 2}, 0, 1, true},
	}
	for _, tt := range tests {
		got := tt.in.Normalized()
		if got.DX != tt.wantDX || got.DY != tt.wantDY {
			t.Errorf("%+v: expected (%d, %d), got (%d, %d)", tt.in, tt.wantDX, tt.wantDY, got.DX, got.DY)
		}
		if got.Moving() != tt.wantMoving {
			t.Errorf("%+v: expected moving=%v", tt.in, tt.wantMoving)
		}
	}
}

func TestKeyStatePriority(t *testing.T) {
	tests := []struct {
		name   string
		keys   KeyState
		dx, dy int
	}{
		{"none", KeyState{}, 0, 0},
		{"up wins over everything", KeyState{Up: true, Down: true, Left: true, Right: true}, 0, -1},
		{"down wins over sideways", KeyState{Down: true, Left: true, Right: true}, 0, 1},
		{"left wins over right", KeyState{Left: true, Right: true}, -1, 0},
		{"right alone", KeyState{Right: true}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.keys.Intent()
			if got.DX != tt.dx || got.DY != tt.dy {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.dx, tt.dy, got.DX, got.DY)
			}
		})
	}
}

func TestKeyStateCarriesButtons(t *testing.T) {
	got := KeyState{Shoot: true, Back: true}.Intent()
	if !got.Shoot || !got.Back {
		t.Errorf("expected shoot and back to be carried, got %+v", got)
	}
}

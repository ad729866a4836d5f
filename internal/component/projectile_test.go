package component

import "testing"

func TestBulletAdvance(t *testing.T) {
	tests := []struct {
		facing       Direction
		wantX, wantY float64
	}{
		{Up, 100, 60},
		{Right, 140, 100},
		{Down, 100, 140},
		{Left, 60, 100},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			b := NewBullet(1, 100, 100, tt.facing, 1, true)
			b.Advance(0.5)
			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, b.X, b.Y)
			}
		})
	}
}

func TestBulletOutOfBounds(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, false},
		{240, 240, false},
		{-0.1, 10, true},
		{240.1, 10, true},
		{10, -1, true},
		{10, 241, true},
	}
	for _, tt := range tests {
		b := NewBullet(1, tt.x, tt.y, Up, 1, true)
		if got := b.OutOfBounds(arena); got != tt.want {
			t.Errorf("(%v, %v): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestViewHealthBarPolicy(t *testing.T) {
	ids := &counterIDs{}
	p := NewPlayer(ids.NewEntity(), 0, 0)
	e := NewEnemy(ids.NewEntity(), 0, 0, heavyDef)
	b := NewBullet(ids.NewEntity(), 0, 0, Up, 1, true)

	if !p.View().ShowsHealthBar() {
		t.Error("expected player to show a health bar")
	}
	if !e.View().ShowsHealthBar() {
		t.Error("expected enemy to show a health bar")
	}
	if b.View().ShowsHealthBar() {
		t.Error("expected bullet without health bar")
	}
	if e.View().EnemyKind != heavyDef.Kind {
		t.Errorf("expected enemy kind %s in view", heavyDef.Kind)
	}
}

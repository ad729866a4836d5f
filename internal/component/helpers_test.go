package component

import "go-arena-shooter/internal/types"

type counterIDs struct {
	next types.EntityID
}

func (c *counterIDs) NewEntity() types.EntityID {
	c.next++
	return c.next
}

type fixedRand struct {
	value int
}

func (f fixedRand) Intn(n int) int {
	return f.value % n
}

var arena = Rect{X: 0, Y: 0, W: 240, H: 240}

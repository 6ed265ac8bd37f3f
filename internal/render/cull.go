package render

import "git.lost.host/meutraa/apex/internal/game"

// Cull counts the objects whose hit time has passed. It walks the
// beatmap objects in time order, which are the tail of the reversed
// instance stream, so the first Visible instances are the ones left to draw.
type Cull struct {
	back int
}

// Advance moves past every object with time + offset <= now.
func (c *Cull) Advance(objects []game.TaikoCircle, offsetMs, nowMs float64) int {
	for c.back < len(objects) && float64(objects[c.back].Time.Ms())+offsetMs <= nowMs {
		c.back++
	}
	return c.back
}

func (c *Cull) Reset() {
	c.back = 0
}

func (c *Cull) Back() int {
	return c.back
}

func (c *Cull) Visible(total int) int {
	if n := total - c.back; n > 0 {
		return n
	}
	return 0
}

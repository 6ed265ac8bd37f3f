package timeline

import (
	"math"

	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/render"
	"github.com/go-gl/mathgl/mgl32"
)

// Circle is an object placed on a terminal lane.
type Circle struct {
	Column int
	Big    bool
	Color  game.Color
}

// Lane draws the conveyor on a single terminal row. It takes the place of
// the GPU renderer, so the row scrolls and culls the way the window does.
type Lane struct {
	Hit  int     // column of the hit position
	Unit float32 // conveyor units per column

	instances []render.Instance
	offset    float32
	visible   uint32
}

var _ render.Renderer = &Lane{}

func (l *Lane) WriteInstances(baked []byte) error {
	l.instances = render.Unbake(baked, l.instances[:0])
	return nil
}

func (l *Lane) WriteScene(mgl32.Mat4) error { return nil }

func (l *Lane) WriteTime(offset float32) error {
	l.offset = offset
	return nil
}

func (l *Lane) DrawHitPosition(render.Pass) {}

func (l *Lane) DrawCircles(_ render.Pass, count uint32) {
	l.visible = count
}

func (l *Lane) Release() {
	l.instances = nil
	l.visible = 0
}

// Circles places the circles of the last drawn frame onto width columns.
// They come latest first, so drawing them in order leaves the nearest one
// on top.
func (l *Lane) Circles(width int) []Circle {
	n := int(l.visible)
	if n > len(l.instances) {
		n = len(l.instances)
	}
	var circles []Circle
	for _, in := range l.instances[:n] {
		x := (in.Time + l.offset) * in.Velocity
		col := l.Hit + int(math.Round(float64(x/l.Unit)))
		if col < 0 || col >= width {
			continue
		}
		circles = append(circles, Circle{Column: col, Big: in.Finisher != 0, Color: in.Color})
	}
	return circles
}

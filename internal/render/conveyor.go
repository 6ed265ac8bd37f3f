package render

import (
	"fmt"

	"git.lost.host/meutraa/apex/internal/game"
	"github.com/go-gl/mathgl/mgl32"
)

// Conveyor turns a beatmap and the current time into draw calls.
type Conveyor struct {
	renderer    Renderer
	scene       Scene
	deviceScale float32
	cull        Cull
	instances   []Instance
	baked       []byte
}

func NewConveyor(r Renderer, width, height uint32, scale float32) *Conveyor {
	return &Conveyor{
		renderer:    r,
		scene:       Scene{Projection: Projection{float32(width), float32(height)}, Camera: NewCamera()},
		deviceScale: scale,
	}
}

// Draw records one frame. rebuild regenerates the instance buffer first.
func (c *Conveyor) Draw(rebuild bool, state *game.TaikoState, bm *game.Beatmap, timeMs float64, pass Pass) error {
	if rebuild {
		c.instances = BuildInstances(bm, state, c.instances[:0])
		c.baked = Bake(c.instances, c.baked[:0])
		if err := c.renderer.WriteInstances(c.baked); nil != err {
			state.RebuildPending = true
			return fmt.Errorf("unable to upload instances: %w", err)
		}
	}

	if state.HitCircles {
		c.cull.Advance(bm.Objects, state.AudioOffset, timeMs)
	}

	s := c.deviceScale * state.Scale
	c.scene.Camera.Scale = mgl32.Vec3{s, s, 1}
	c.scene.Camera.Position = mgl32.Vec3{state.HitPosition.X(), state.HitPosition.Y(), -50}
	if err := c.renderer.WriteScene(c.scene.Matrix()); nil != err {
		return fmt.Errorf("unable to upload scene: %w", err)
	}

	offset := float32(-timeMs+state.AudioOffset) * state.Zoom() * bm.VelocityMultiplier
	if err := c.renderer.WriteTime(offset); nil != err {
		return fmt.Errorf("unable to upload time: %w", err)
	}

	c.renderer.DrawHitPosition(pass)
	c.renderer.DrawCircles(pass, uint32(c.cull.Visible(len(c.instances))))
	return nil
}

// Resize changes the projection only.
func (c *Conveyor) Resize(width, height uint32) {
	c.scene.Projection = Projection{float32(width), float32(height)}
}

// Scale changes the device scale factor only.
func (c *Conveyor) Scale(scale float32) {
	c.deviceScale = scale
}

func (c *Conveyor) ResetCull() {
	c.cull.Reset()
}

func (c *Conveyor) CullBack() int {
	return c.cull.Back()
}

func (c *Conveyor) Instances() []Instance {
	return c.instances
}

func (c *Conveyor) Scene() Scene {
	return c.scene
}

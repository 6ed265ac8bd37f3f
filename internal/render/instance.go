package render

import (
	"encoding/binary"
	"math"

	"git.lost.host/meutraa/apex/internal/game"
	"github.com/go-gl/mathgl/mgl32"
)

// InstanceSize is the stride of a baked Instance:
// size_offset vec3, velocity f32, color vec4, finisher u32.
const InstanceSize = 36

// Instance is the per circle data read by the circle vertex shader.
type Instance struct {
	Size     mgl32.Vec2
	Time     float32 // ms scaled by zoom
	Velocity float32
	Color    game.Color
	Finisher uint32
}

// BuildInstances appends one instance per object to dst, latest object
// first, so the circles still to come are drawn on top and the ones
// already passed sit at the tail.
func BuildInstances(bm *game.Beatmap, state *game.TaikoState, dst []Instance) []Instance {
	idx := len(bm.Velocity) - 1
	scale := state.Zoom() * bm.VelocityMultiplier

	for i := len(bm.Objects) - 1; i >= 0; i-- {
		o := bm.Objects[i]
		for idx > 0 && bm.Velocity[idx].Time > o.Time {
			idx--
		}
		v := float32(1)
		if idx >= 0 {
			v = float32(bm.Velocity[idx].Velocity)
		}

		base := o.BaseSize()
		var finisher uint32
		if o.Big {
			finisher = 1
		}
		dst = append(dst, Instance{
			Size:     mgl32.Vec2{base / v, base},
			Time:     float32(o.Time.Ms()) * scale,
			Velocity: v,
			Color:    state.ColorOf(o.Color),
			Finisher: finisher,
		})
	}
	return dst
}

// Bake appends the little endian GPU layout of instances to dst.
func Bake(instances []Instance, dst []byte) []byte {
	var rec [InstanceSize]byte
	put := func(off int, f float32) {
		binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(f))
	}
	for _, in := range instances {
		put(0, in.Size.X())
		put(4, in.Size.Y())
		put(8, in.Time)
		put(12, in.Velocity)
		put(16, in.Color.R)
		put(20, in.Color.G)
		put(24, in.Color.B)
		put(28, in.Color.A)
		binary.LittleEndian.PutUint32(rec[32:], in.Finisher)
		dst = append(dst, rec[:]...)
	}
	return dst
}

// Unbake reads instances back from their GPU layout. Trailing bytes short
// of a full record are ignored.
func Unbake(baked []byte, dst []Instance) []Instance {
	get := func(rec []byte, off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(rec[off:]))
	}
	for len(baked) >= InstanceSize {
		rec := baked[:InstanceSize]
		dst = append(dst, Instance{
			Size:     mgl32.Vec2{get(rec, 0), get(rec, 4)},
			Time:     get(rec, 8),
			Velocity: get(rec, 12),
			Color:    game.Color{R: get(rec, 16), G: get(rec, 20), B: get(rec, 24), A: get(rec, 28)},
			Finisher: binary.LittleEndian.Uint32(rec[32:]),
		})
		baked = baked[InstanceSize:]
	}
	return dst
}

package game

import "github.com/go-gl/mathgl/mgl32"

var (
	DefaultDonColor = Color{R: 0.973, G: 0.596, B: 0.651, A: 1}
	DefaultKatColor = Color{R: 0.741, G: 0.698, B: 0.827, A: 1}
)

// TaikoState holds the presentation parameters of the conveyor.
//
// Zoom and the two colors are baked into the instance buffer, so they are
// only writable through setters that mark a rebuild. Everything else is
// read every frame.
type TaikoState struct {
	Scale       float32
	AudioOffset float64 // ms added to every object time
	HitPosition mgl32.Vec2
	HitCircles  bool // when false nothing is culled

	// ForceRebuild rebuilds the instance buffer every frame.
	ForceRebuild   bool
	RebuildPending bool

	zoom     float32
	donColor Color
	katColor Color
}

func NewTaikoState() *TaikoState {
	return &TaikoState{
		Scale:       0.8,
		AudioOffset: 45,
		HitPosition: mgl32.Vec2{256, 256},
		HitCircles:  true,
		zoom:        1,
		donColor:    DefaultDonColor,
		katColor:    DefaultKatColor,
	}
}

func (s *TaikoState) Zoom() float32   { return s.zoom }
func (s *TaikoState) DonColor() Color { return s.donColor }
func (s *TaikoState) KatColor() Color { return s.katColor }

func (s *TaikoState) SetZoom(z float32) {
	s.zoom = z
	s.RebuildPending = true
}

func (s *TaikoState) SetDonColor(c Color) {
	s.donColor = c
	s.RebuildPending = true
}

func (s *TaikoState) SetKatColor(c Color) {
	s.katColor = c
	s.RebuildPending = true
}

// ColorOf returns the tint for a circle color.
func (s *TaikoState) ColorOf(c TaikoColor) Color {
	if c == Don {
		return s.donColor
	}
	return s.katColor
}

// TakeRebuild reports whether the instances must be rebuilt this frame and
// consumes the pending flag.
func (s *TaikoState) TakeRebuild() bool {
	rebuild := s.RebuildPending || s.ForceRebuild
	s.RebuildPending = false
	return rebuild
}

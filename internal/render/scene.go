package render

import "github.com/go-gl/mathgl/mgl32"

// Projection maps window pixels to clip space with the origin top left.
type Projection struct {
	Width, Height float32
}

func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(0, p.Width, p.Height, 0, -100, 100)
}

type Camera struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Quat
}

func NewCamera() Camera {
	return Camera{Scale: mgl32.Vec3{1, 1, 1}, Rotation: mgl32.QuatIdent()}
}

// Matrix applies rotation, then translation, then scale.
func (c Camera) Matrix() mgl32.Mat4 {
	return mgl32.Scale3D(c.Scale.X(), c.Scale.Y(), c.Scale.Z()).
		Mul4(mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z())).
		Mul4(c.Rotation.Mat4())
}

type Scene struct {
	Projection Projection
	Camera     Camera
}

func (s Scene) Matrix() mgl32.Mat4 {
	return s.Projection.Matrix().Mul4(s.Camera.Matrix())
}

// Model places a single quad.
type Model struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Quat
}

func (m Model) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())).
		Mul4(m.Rotation.Mat4())
}

package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a linear RGBA tint with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

func FromRGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

func FromRGB(r, g, b uint8) Color {
	return FromRGBA(r, g, b, 0xff)
}

// FromHex reads 0xRRGGBB.
func FromHex(hex uint32) Color {
	return FromRGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// FromHexAlpha reads 0xRRGGBBAA.
func FromHexAlpha(hex uint32) Color {
	return FromRGBA(uint8(hex>>24), uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

func (c Color) String() string {
	r, g, b, a := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func to8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xff
	}
	return uint8(f*255 + 0.5)
}

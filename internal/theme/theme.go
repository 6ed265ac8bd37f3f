// Package theme provides the conveyor sprites.
package theme

import "image"

type Kind uint8

const (
	HitCircle Kind = iota
	HitCircleOverlay
	BigCircle
	BigCircleOverlay
	HitPosition
)

// Kinds lists every sprite in upload order.
var Kinds = [...]Kind{HitCircle, HitCircleOverlay, BigCircle, BigCircleOverlay, HitPosition}

func (k Kind) String() string {
	return skinFiles[k]
}

// Theme returns straight alpha, square sprites whose rows are tightly
// packed (Stride == 4 * width).
type Theme interface {
	Texture(k Kind) (*image.NRGBA, error)
}

// Package layer composes the audio, the clock and the conveyor into the
// playable viewer.
package layer

import "git.lost.host/meutraa/apex/internal/render"

// Layer is anything the window host draws every frame.
type Layer interface {
	Draw(pass render.Pass) error
	Resize(width, height uint32)
	Scale(scale float32)
}

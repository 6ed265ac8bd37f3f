package input

import "github.com/gogpu/gpucontext"

var windowKeys = map[gpucontext.Key]Action{
	gpucontext.KeySpace:  PlayPause,
	gpucontext.KeyLeft:   SeekBack,
	gpucontext.KeyRight:  SeekForward,
	gpucontext.KeyUp:     ZoomIn,
	gpucontext.KeyDown:   ZoomOut,
	gpucontext.KeyH:      ToggleHitCircles,
	gpucontext.KeyHome:   Rewind,
	gpucontext.KeyC:      CloseBeatmap,
	gpucontext.KeyEscape: Quit,
}

// FromKey maps a window key press.
func FromKey(k gpucontext.Key) Action {
	return windowKeys[k]
}

// Package input maps window and terminal keys onto viewer actions.
package input

import "git.lost.host/meutraa/apex/internal/game"

// Action is a user command, independent of where the key came from.
type Action uint8

const (
	None Action = iota
	PlayPause
	SeekBack
	SeekForward
	ZoomIn
	ZoomOut
	ToggleHitCircles
	Rewind
	CloseBeatmap
	Quit
)

// Bind describes an action for the help text.
type Bind struct {
	Action      Action
	Keys        string
	Description string
}

var Binds = []Bind{
	{PlayPause, "Space", "Play or pause"},
	{SeekBack, "Left", "Seek backwards"},
	{SeekForward, "Right", "Seek forwards"},
	{ZoomIn, "Up", "Zoom in"},
	{ZoomOut, "Down", "Zoom out"},
	{ToggleHitCircles, "H", "Toggle hiding passed circles"},
	{Rewind, "Home", "Rewind to the start"},
	{CloseBeatmap, "C", "Close the beatmap"},
	{Quit, "Escape", "Quit"},
}

func (a Action) String() string {
	for _, b := range Binds {
		if b.Action == a {
			return b.Description
		}
	}
	return "None"
}

// Target is what actions are applied to.
type Target interface {
	TogglePaused()
	MoveBack(d game.Time)
	MoveForward(d game.Time)
	SetTime(t game.Time)
	CloseBeatmap()
	Zoom() float32
	SetZoom(z float32)
	ToggleHitCircles()
}

const (
	zoomStep = 0.1
	minZoom  = 0.1
)

// Apply runs a on t, seeking by step. It returns false once the user asked
// to quit.
func Apply(a Action, t Target, step game.Time) bool {
	switch a {
	case PlayPause:
		t.TogglePaused()
	case SeekBack:
		t.MoveBack(step)
	case SeekForward:
		t.MoveForward(step)
	case ZoomIn:
		t.SetZoom(t.Zoom() + zoomStep)
	case ZoomOut:
		if z := t.Zoom() - zoomStep; z >= minZoom {
			t.SetZoom(z)
		}
	case ToggleHitCircles:
		t.ToggleHitCircles()
	case Rewind:
		t.SetTime(0)
	case CloseBeatmap:
		t.CloseBeatmap()
	case Quit:
		return false
	}
	return true
}

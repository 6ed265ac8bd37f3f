package graphics

import "errors"

// Action is what the frame loop does after a failed frame.
type Action uint8

const (
	Continue Action = iota
	Reconfigure
	Quit
)

func (a Action) String() string {
	switch a {
	case Reconfigure:
		return "reconfigure"
	case Quit:
		return "quit"
	}
	return "continue"
}

// Policy classifies a frame error. Unknown errors are logged by the caller
// and the next frame is attempted.
func Policy(err error) Action {
	switch {
	case nil == err:
		return Continue
	case errors.Is(err, ErrOutOfMemory):
		return Quit
	case errors.Is(err, ErrSurfaceLost):
		return Reconfigure
	}
	return Continue
}

package graphics

import (
	"fmt"
	"io"

	"github.com/gogpu/gputypes"
)

// PresentModes is the order --mode indexes into.
var PresentModes = []gputypes.PresentMode{
	gputypes.PresentModeFifo,
	gputypes.PresentModeFifoRelaxed,
	gputypes.PresentModeImmediate,
	gputypes.PresentModeMailbox,
}

// PresentMode returns the mode at index. A negative index selects fifo,
// which every surface supports.
func PresentMode(index int) (gputypes.PresentMode, error) {
	if index < 0 {
		return gputypes.PresentModeFifo, nil
	}
	if index >= len(PresentModes) {
		return gputypes.PresentModeUndefined, fmt.Errorf("present mode %v of %v does not exist", index, len(PresentModes))
	}
	return PresentModes[index], nil
}

func WritePresentModes(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Available present modes:"); nil != err {
		return err
	}
	for i, m := range PresentModes {
		if _, err := fmt.Fprintf(w, "- [%v] %v\n", i, m); nil != err {
			return err
		}
	}
	return nil
}

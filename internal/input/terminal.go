package input

import (
	"unicode"

	"github.com/eiannone/keyboard"
)

var terminalKeys = map[keyboard.Key]Action{
	keyboard.KeySpace:      PlayPause,
	keyboard.KeyArrowLeft:  SeekBack,
	keyboard.KeyArrowRight: SeekForward,
	keyboard.KeyArrowUp:    ZoomIn,
	keyboard.KeyArrowDown:  ZoomOut,
	keyboard.KeyHome:       Rewind,
	keyboard.KeyEsc:        Quit,
	keyboard.KeyCtrlC:      Quit,
}

var terminalRunes = map[rune]Action{
	' ': PlayPause,
	'h': ToggleHitCircles,
	'c': CloseBeatmap,
	'q': Quit,
}

// FromTerminal maps a key read by the keyboard package. Letters are
// matched case insensitively.
func FromTerminal(ev keyboard.KeyEvent) Action {
	if nil != ev.Err {
		return None
	}
	if ev.Key != 0 {
		return terminalKeys[ev.Key]
	}
	return terminalRunes[unicode.ToLower(ev.Rune)]
}

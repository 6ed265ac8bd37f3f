// Package timeline formats the playback position and draws it as a
// terminal status line.
package timeline

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/apex/internal/game"
)

// Stamp formats t as mm:ss:mmm.
func Stamp(t game.Time) string {
	ms := t.Ms()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d:%03d", ms/60000, ms/1000%60, ms%1000)
}

// Format is the position label, "mm:ss:mmm / mm:ss:mmm".
func Format(t, length game.Time) string {
	return Stamp(t) + " / " + Stamp(length)
}

// Progress is t as a fraction of length in [0, 1].
func Progress(t, length game.Time) float64 {
	if length <= 0 {
		return 0
	}
	p := float64(t) / float64(length)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Bar draws a width cell progress bar.
func Bar(t, length game.Time, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(Progress(t, length) * float64(width))
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

// Status is the full line: state, position and bar filling width columns.
func Status(paused bool, t, length game.Time, width int) string {
	state := "▶"
	if paused {
		state = "⏸"
	}
	label := state + " " + Format(t, length) + " "
	return label + Bar(t, length, width-len([]rune(label)))
}

// Package audio plays the beatmap track and reports its position.
package audio

import (
	"time"

	"github.com/faiface/beep"
)

type Backend interface {
	// Play replaces the current track. The new track starts paused at 0.
	Play(s *Stream) error
	TogglePaused()
	SetPaused(paused bool)
	IsPaused() bool
	Stop()
	SetTime(t time.Duration) error
	Time() time.Duration
	Length() time.Duration
	Close() error
}

// Output is the device mixer a backend plays into.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// Stream is a decoded, seekable track.
type Stream struct {
	Streamer beep.StreamSeekCloser
	Format   beep.Format
}

func (s *Stream) Length() time.Duration {
	return s.Format.SampleRate.D(s.Streamer.Len())
}

func (s *Stream) Close() error {
	return s.Streamer.Close()
}

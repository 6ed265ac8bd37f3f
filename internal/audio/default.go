package audio

import (
	"time"

	"git.lost.host/meutraa/apex/internal/logger"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// SpeakerOutput is the system speaker.
type SpeakerOutput struct{}

func (SpeakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}
func (SpeakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (SpeakerOutput) Clear()               { speaker.Clear() }
func (SpeakerOutput) Lock()                { speaker.Lock() }
func (SpeakerOutput) Unlock()              { speaker.Unlock() }

// DefaultBackend plays one track at a time through an Output.
// Methods must be called from a single goroutine; the Output lock guards
// the state shared with the mixer.
type DefaultBackend struct {
	Output Output
	// Buffer is the mixer latency, one 60 Hz frame when zero.
	Buffer time.Duration

	rate   beep.SampleRate
	stream *Stream
	ctrl   *beep.Ctrl
}

func NewDefaultBackend() *DefaultBackend {
	return &DefaultBackend{Output: SpeakerOutput{}}
}

func (b *DefaultBackend) Play(s *Stream) error {
	b.Stop()

	if s.Format.SampleRate != b.rate {
		buffer := b.Buffer
		if buffer <= 0 {
			buffer = time.Second / 60
		}
		if err := b.Output.Init(s.Format.SampleRate, s.Format.SampleRate.N(buffer)); nil != err {
			return err
		}
		b.rate = s.Format.SampleRate
		logger.L().Debug("audio output initialized", "rate", int(b.rate), "buffer", buffer)
	}

	b.stream = s
	b.ctrl = &beep.Ctrl{Streamer: &sustain{s.Streamer}, Paused: true}
	b.Output.Play(b.ctrl)
	return nil
}

func (b *DefaultBackend) TogglePaused() {
	if nil == b.ctrl {
		return
	}
	b.Output.Lock()
	b.ctrl.Paused = !b.ctrl.Paused
	b.Output.Unlock()
}

func (b *DefaultBackend) SetPaused(paused bool) {
	if nil == b.ctrl {
		return
	}
	b.Output.Lock()
	b.ctrl.Paused = paused
	b.Output.Unlock()
}

func (b *DefaultBackend) IsPaused() bool {
	if nil == b.ctrl {
		return true
	}
	b.Output.Lock()
	defer b.Output.Unlock()
	return b.ctrl.Paused
}

// Stop detaches the current track from the output and releases it.
func (b *DefaultBackend) Stop() {
	if nil == b.stream {
		return
	}
	b.Output.Clear()
	if err := b.stream.Close(); nil != err {
		logger.L().Warn("unable to close audio stream", "err", err)
	}
	b.stream = nil
	b.ctrl = nil
}

// SetTime seeks, clamping to the track bounds.
func (b *DefaultBackend) SetTime(t time.Duration) error {
	if nil == b.stream {
		return nil
	}
	n := b.rate.N(t)
	if n < 0 {
		n = 0
	}
	if l := b.stream.Streamer.Len(); n > l {
		n = l
	}
	b.Output.Lock()
	defer b.Output.Unlock()
	return b.stream.Streamer.Seek(n)
}

func (b *DefaultBackend) Time() time.Duration {
	if nil == b.stream {
		return 0
	}
	b.Output.Lock()
	pos := b.stream.Streamer.Position()
	b.Output.Unlock()
	return b.rate.D(pos)
}

func (b *DefaultBackend) Length() time.Duration {
	if nil == b.stream {
		return 0
	}
	return b.stream.Length()
}

func (b *DefaultBackend) Close() error {
	b.Stop()
	return nil
}

// sustain pads the end of a track with silence so the mixer keeps the
// streamer and the position holds at the last sample.
type sustain struct {
	s beep.Streamer
}

func (h *sustain) Stream(samples [][2]float64) (int, bool) {
	n, _ := h.s.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (h *sustain) Err() error {
	return h.s.Err()
}

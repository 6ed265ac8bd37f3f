package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"git.lost.host/meutraa/apex/internal/testdata"
	"github.com/faiface/beep"
)

type fakeOutput struct {
	sync.Mutex
	inits   []beep.SampleRate
	playing []beep.Streamer
	cleared int
}

func (o *fakeOutput) Init(sr beep.SampleRate, bufferSize int) error {
	o.inits = append(o.inits, sr)
	o.playing = nil
	return nil
}
func (o *fakeOutput) Play(s beep.Streamer) { o.playing = append(o.playing, s) }
func (o *fakeOutput) Clear() {
	o.cleared++
	o.playing = nil
}

// pull drains n samples from every playing streamer, as the mixer would.
func (o *fakeOutput) pull(n int) {
	buf := make([][2]float64, n)
	for _, s := range o.playing {
		s.Stream(buf)
	}
}

func decodeSilence(t *testing.T, sr beep.SampleRate, d time.Duration) *Stream {
	data, err := testdata.SilentWAV(sr, d)
	if nil != err {
		t.Fatal(err)
	}
	s, err := Decode(data, "wav")
	if nil != err {
		t.Fatal(err)
	}
	return s
}

func TestDecodeWav(t *testing.T) {
	s := decodeSilence(t, 44100, time.Second)
	if s.Format.SampleRate != 44100 || s.Streamer.Len() != 44100 {
		t.Log(s.Format, s.Streamer.Len())
		t.Fail()
	}
	if s.Length() != time.Second {
		t.Log(s.Length())
		t.Fail()
	}
}

func TestDecodeUnsupported(t *testing.T) {
	for _, hint := range []string{"", "mid", "txt"} {
		if _, err := Decode([]byte{0}, hint); !errors.Is(err, ErrUnsupportedFormat) {
			t.Log(hint, err)
			t.Fail()
		}
	}
	if _, err := Decode([]byte("garbage"), "wav"); nil == err || errors.Is(err, ErrUnsupportedFormat) {
		t.Log("expected a decode error, got", err)
		t.Fail()
	}
}

func TestBackendStartsPaused(t *testing.T) {
	out := &fakeOutput{}
	b := &DefaultBackend{Output: out}
	var _ Backend = b

	if err := b.Play(decodeSilence(t, 44100, time.Second)); nil != err {
		t.Fatal(err)
	}
	if !b.IsPaused() {
		t.Log("new track must start paused")
		t.Fail()
	}
	out.pull(4410)
	if b.Time() != 0 {
		t.Log("paused track advanced to", b.Time())
		t.Fail()
	}

	b.TogglePaused()
	out.pull(4410)
	if b.Time() != 100*time.Millisecond {
		t.Log("expected 100ms, got", b.Time())
		t.Fail()
	}

	b.SetPaused(true)
	out.pull(4410)
	if b.Time() != 100*time.Millisecond {
		t.Fail()
	}
}

func TestBackendSeekAndSustain(t *testing.T) {
	out := &fakeOutput{}
	b := &DefaultBackend{Output: out}
	if err := b.Play(decodeSilence(t, 44100, time.Second)); nil != err {
		t.Fatal(err)
	}

	if err := b.SetTime(500 * time.Millisecond); nil != err {
		t.Fatal(err)
	}
	if b.Time() != 500*time.Millisecond {
		t.Log(b.Time())
		t.Fail()
	}
	if err := b.SetTime(5 * time.Second); nil != err {
		t.Fatal(err)
	}
	if b.Time() != b.Length() {
		t.Log("seek past the end must clamp, got", b.Time())
		t.Fail()
	}

	b.SetPaused(false)
	out.pull(44100)
	if len(out.playing) != 1 || b.Time() != time.Second {
		t.Log("track must stay attached at its end", len(out.playing), b.Time())
		t.Fail()
	}
}

func TestBackendStop(t *testing.T) {
	out := &fakeOutput{}
	b := &DefaultBackend{Output: out}
	if err := b.Play(decodeSilence(t, 44100, time.Second)); nil != err {
		t.Fatal(err)
	}
	b.Stop()
	if out.cleared != 1 || b.Length() != 0 || b.Time() != 0 || !b.IsPaused() {
		t.Fail()
	}
	if err := b.SetTime(0); nil != err {
		t.Fail()
	}
}

func TestBackendReinitOnRateChange(t *testing.T) {
	out := &fakeOutput{}
	b := &DefaultBackend{Output: out}
	for _, sr := range []beep.SampleRate{44100, 44100, 48000} {
		if err := b.Play(decodeSilence(t, sr, 100*time.Millisecond)); nil != err {
			t.Fatal(err)
		}
	}
	if len(out.inits) != 2 || out.inits[0] != 44100 || out.inits[1] != 48000 {
		t.Log(out.inits)
		t.Fail()
	}
}

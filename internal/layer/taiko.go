package layer

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/apex/internal/archive"
	"git.lost.host/meutraa/apex/internal/audio"
	"git.lost.host/meutraa/apex/internal/clock"
	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/logger"
	"git.lost.host/meutraa/apex/internal/parser"
	"git.lost.host/meutraa/apex/internal/render"
)

// TaikoLayer plays one beatmap at a time. All methods are called from the
// host loop.
type TaikoLayer struct {
	State *game.TaikoState

	audio    audio.Backend
	clock    *clock.SyncClock
	parser   parser.Parser
	conveyor *render.Conveyor

	beatmap *game.Beatmap
	name    string
}

var _ Layer = &TaikoLayer{}

func NewTaikoLayer(r render.Renderer, a audio.Backend, p parser.Parser, state *game.TaikoState, width, height uint32, scale float32) *TaikoLayer {
	return &TaikoLayer{
		State:    state,
		audio:    a,
		clock:    clock.New(a),
		parser:   p,
		conveyor: render.NewConveyor(r, width, height, scale),
	}
}

// Load opens an archive from disk. On failure the current beatmap keeps
// playing.
func (l *TaikoLayer) Load(file string) error {
	a, err := archive.Open(file)
	if nil != err {
		return err
	}
	return l.LoadArchive(a, file)
}

func (l *TaikoLayer) LoadArchive(a *archive.Archive, name string) error {
	loaded, err := a.Load(l.parser)
	if nil != err {
		return err
	}
	stream, err := audio.Decode(loaded.Audio, archive.Hint(loaded.AudioName))
	if nil != err {
		return fmt.Errorf("unable to decode %v: %w", loaded.AudioName, err)
	}
	if err := l.audio.Play(stream); nil != err {
		stream.Close()
		l.CloseBeatmap()
		return fmt.Errorf("unable to play %v: %w", loaded.AudioName, err)
	}

	l.beatmap = loaded.Beatmap
	l.name = name
	l.clock.SetLength(l.audio.Length())
	l.clock.SetPaused(true, 0)
	l.clock.SetTime(0)
	l.State.RebuildPending = true
	l.conveyor.ResetCull()

	don, kat, big := l.beatmap.Counts()
	logger.L().Info("beatmap loaded",
		"name", name,
		"title", l.beatmap.Metadata.Title(),
		"version", l.beatmap.Metadata.Version,
		"don", don, "kat", kat, "big", big,
		"length", l.clock.Length(),
	)
	return nil
}

func (l *TaikoLayer) CloseBeatmap() {
	l.clock.SetTime(0)
	l.clock.SetPaused(true, 0)
	l.clock.SetLength(0)
	l.audio.Stop()
	if err := l.audio.SetTime(0); nil != err {
		logger.L().Warn("unable to rewind audio", "err", err)
	}
	l.beatmap = nil
	l.name = ""
	l.conveyor.ResetCull()
}

// TogglePaused flips playback. Toggling at or past the end of the track
// rewinds to the start.
func (l *TaikoLayer) TogglePaused() {
	t := l.audio.Time()
	l.clock.TogglePaused(t)
	l.audio.TogglePaused()
	if length := l.clock.Length(); length > 0 && t >= length {
		l.SetTime(0)
	}
}

func (l *TaikoLayer) SetPaused(paused bool) {
	l.clock.SetPaused(paused, l.audio.Time())
	l.audio.SetPaused(paused)
}

func (l *TaikoLayer) IsPaused() bool {
	return l.clock.IsPaused()
}

// SetTime seeks both the clock and the audio, and restarts culling.
func (l *TaikoLayer) SetTime(t game.Time) {
	d := t.Duration()
	l.clock.SetTime(d)
	if err := l.audio.SetTime(d); nil != err {
		logger.L().Warn("unable to seek audio", "time", d, "err", err)
	}
	l.conveyor.ResetCull()
}

func (l *TaikoLayer) Time() game.Time {
	return game.FromDuration(l.clock.Time())
}

func (l *TaikoLayer) Length() game.Time {
	return game.FromDuration(l.clock.Length())
}

// Seek moves to t the way a timeline slider does: playback is held while
// seeking and restored afterwards.
func (l *TaikoLayer) Seek(t game.Time) {
	if t < 0 {
		t = 0
	}
	if length := l.Length(); t > length {
		t = length
	}
	paused := l.IsPaused()
	l.SetPaused(true)
	l.SetTime(t)
	l.SetPaused(paused)
}

func (l *TaikoLayer) MoveForward(d game.Time) {
	l.Seek(l.Time().Add(d))
}

func (l *TaikoLayer) MoveBack(d game.Time) {
	l.Seek(l.Time().Sub(d))
}

func (l *TaikoLayer) Zoom() float32 {
	return l.State.Zoom()
}

func (l *TaikoLayer) SetZoom(z float32) {
	l.State.SetZoom(z)
}

func (l *TaikoLayer) ToggleHitCircles() {
	l.State.HitCircles = !l.State.HitCircles
	if l.State.HitCircles {
		l.conveyor.ResetCull()
	}
}

func (l *TaikoLayer) Beatmap() *game.Beatmap {
	return l.beatmap
}

// Name is the archive the current beatmap came from.
func (l *TaikoLayer) Name() string {
	return l.name
}

// CullBack is the number of circles already past the hit position.
func (l *TaikoLayer) CullBack() int {
	return l.conveyor.CullBack()
}

func (l *TaikoLayer) Draw(pass render.Pass) error {
	if nil == l.beatmap {
		return nil
	}
	now := float64(l.clock.Time()) / float64(time.Millisecond)
	return l.conveyor.Draw(l.State.TakeRebuild(), l.State, l.beatmap, now, pass)
}

func (l *TaikoLayer) Resize(width, height uint32) {
	l.conveyor.Resize(width, height)
}

func (l *TaikoLayer) Scale(scale float32) {
	l.conveyor.Scale(scale)
}

package clock

import (
	"testing"
	"time"
)

type fakeSource struct {
	t time.Duration
}

func (s *fakeSource) Time() time.Duration { return s.t }

func TestPausedIsPinned(t *testing.T) {
	src := &fakeSource{}
	c := New(src)
	c.SetLength(10 * time.Second)
	if !c.IsPaused() || c.Time() != 0 {
		t.Fail()
	}
	src.t = 3 * time.Second
	if c.Time() != 0 {
		t.Log("paused clock followed the source")
		t.Fail()
	}
	c.SetTime(2 * time.Second)
	if c.Time() != 2*time.Second {
		t.Fail()
	}
}

func TestPlayingFollowsSource(t *testing.T) {
	src := &fakeSource{}
	c := New(src)
	c.SetLength(10 * time.Second)
	c.SetPaused(false, 0)

	for _, ms := range []int{0, 16, 33, 50, 1000} {
		src.t = time.Duration(ms) * time.Millisecond
		if c.Time() != src.t {
			t.Log("expected", src.t, "got", c.Time())
			t.Fail()
		}
	}

	c.TogglePaused(src.t)
	src.t = 4 * time.Second
	if !c.IsPaused() || c.Time() != time.Second {
		t.Log("expected pause at 1s, got", c.Time())
		t.Fail()
	}
}

func TestMonotonicFloor(t *testing.T) {
	src := &fakeSource{t: time.Second}
	c := New(src)
	c.SetLength(10 * time.Second)
	c.SetPaused(false, time.Second)
	c.Time()

	src.t = 900 * time.Millisecond
	if c.Time() != time.Second {
		t.Log("clock went backwards while playing:", c.Time())
		t.Fail()
	}

	c.SetTime(0)
	src.t = 0
	if c.Time() != 0 {
		t.Log("SetTime must reset the floor, got", c.Time())
		t.Fail()
	}
}

func TestClampToLength(t *testing.T) {
	src := &fakeSource{t: 6 * time.Second}
	c := New(src)
	c.SetLength(5 * time.Second)
	c.SetPaused(false, 0)
	if c.Time() != 5*time.Second {
		t.Log(c.Time())
		t.Fail()
	}
	c.SetTime(-time.Second)
	c.SetPaused(true, -time.Second)
	if c.Time() != 0 {
		t.Fail()
	}
	if c.Length() != 5*time.Second {
		t.Fail()
	}
}

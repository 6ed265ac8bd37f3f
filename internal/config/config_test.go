package config

import (
	"errors"
	"testing"
	"time"

	"git.lost.host/meutraa/apex/internal/game"
)

func TestDefaults(t *testing.T) {
	c, err := New().Parse(nil)
	if nil != err {
		t.Fatal(err)
	}
	if c.Backend != "auto" || c.PowerPreference != "low" || c.GPU != -1 || c.Mode != -1 {
		t.Log(c)
		t.Fail()
	}
	if c.Scale != 0 || c.Zoom != 1 || c.Offset != 45*time.Millisecond || c.SeekStep != 5*time.Second {
		t.Log(c)
		t.Fail()
	}
	if c.ListGPUs || c.ListModes || c.TTY || c.Archive != "" {
		t.Fail()
	}
}

func TestFlags(t *testing.T) {
	c, err := New().Parse([]string{"-b", "vulkan", "-p", "high", "--gpu", "1", "--modes", "--zoom", "1.5", "--offset=-20ms", "--kat-color", "#00ff00"})
	if nil != err {
		t.Fatal(err)
	}
	if c.Backend != "vulkan" || c.PowerPreference != "high" || c.GPU != 1 || !c.ListModes || c.Zoom != 1.5 {
		t.Log(c)
		t.Fail()
	}

	s, err := c.State()
	if nil != err {
		t.Fatal(err)
	}
	if s.AudioOffset != -20 || s.Zoom() != 1.5 {
		t.Log(s.AudioOffset, s.Zoom())
		t.Fail()
	}
	if s.KatColor() != (game.Color{R: 0, G: 1, B: 0, A: 1}) {
		t.Log(s.KatColor())
		t.Fail()
	}
}

func TestApiAlias(t *testing.T) {
	c, err := New().Parse([]string{"--api", "gl"})
	if nil != err {
		t.Fatal(err)
	}
	if c.Backend != "gl" {
		t.Log(c.Backend)
		t.Fail()
	}
}

var invalid = [][]string{
	{"--scale=-1"},
	{"--zoom=-1"},
	{"--seek-step", "0s"},
	{"--mode", "9"},
	{"--don-color", "#12"},
	{"--kat-color", "purple"},
}

func TestInvalid(t *testing.T) {
	for _, args := range invalid {
		if _, err := New().Parse(args); !errors.Is(err, ErrInvalid) {
			t.Log(args, "expected an invalid configuration, got", err)
			t.Fail()
		}
	}
	if _, err := New().Parse([]string{"--backend", "glide"}); nil == err {
		t.Fail()
	}
	if _, err := New().Parse([]string{"/does/not/exist.osz"}); nil == err {
		t.Fail()
	}
}

var colorTests = map[string]game.Color{
	"#fff":      {R: 1, G: 1, B: 1, A: 1},
	"000000":    {R: 0, G: 0, B: 0, A: 1},
	"#ff000000": {R: 1, G: 0, B: 0, A: 0},
}

func TestParseColor(t *testing.T) {
	for hex, expected := range colorTests {
		c, err := ParseColor(hex)
		if nil != err || c != expected {
			t.Log(hex, "expected", expected, "got", c, err)
			t.Fail()
		}
	}
}

func TestDefaultColorsRoundTrip(t *testing.T) {
	c, err := ParseColor(game.DefaultDonColor.String())
	if nil != err {
		t.Fatal(err)
	}
	if c.String() != game.DefaultDonColor.String() {
		t.Fail()
	}
}

func TestDeviceScale(t *testing.T) {
	c, err := New().Parse(nil)
	if nil != err {
		t.Fatal(err)
	}
	if s := c.DeviceScale(2); s != 2 {
		t.Log("expected the window factor, got", s)
		t.Fail()
	}
	if s := c.DeviceScale(0); s != 1 {
		t.Log("expected 1 without a window factor, got", s)
		t.Fail()
	}

	c, err = New().Parse([]string{"--scale", "1.5"})
	if nil != err {
		t.Fatal(err)
	}
	if s := c.DeviceScale(2); s != 1.5 {
		t.Log("expected the flag to win, got", s)
		t.Fail()
	}
}

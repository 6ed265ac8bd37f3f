package game

import (
	"math"
	"testing"
)

var msTests = map[float64]int64{
	0:      0,
	1:      1,
	199.6:  200,
	800:    800,
	1234.4: 1234,
	2.5:    2,
	3.5:    4,
	503.5:  504,
	1000.5: 1000,
}

func TestTimeFromMsRoundTrip(t *testing.T) {
	for in, expected := range msTests {
		if ms := FromMs(in).Ms(); ms != expected {
			t.Log("FromMs(", in, ").Ms() expected", expected, "got", ms)
			t.Fail()
		}
	}
}

func TestTimeHalfMsRoundTrip(t *testing.T) {
	for i := 0; i < 200000; i++ {
		x := float64(i) / 2
		if ms := FromMs(x).Ms(); ms != int64(math.RoundToEven(x)) {
			t.Log("FromMs(", x, ").Ms() got", ms)
			t.FailNow()
		}
	}
}

func TestTimeArithmetic(t *testing.T) {
	a, b := FromSeconds(1.5), FromMs(500)
	if a.Add(b).Ms() != 2000 || a.Sub(b).Ms() != 1000 {
		t.Fail()
	}
	if !b.Before(a) || !a.After(b) {
		t.Fail()
	}
	if a.Duration().Milliseconds() != 1500 {
		t.Log(a.Duration())
		t.Fail()
	}
}

func TestColorToggle(t *testing.T) {
	var c TaikoColor
	if c != Kat {
		t.Log("zero value must be kat")
		t.Fail()
	}
	if c.Toggle() != Don || c.Toggle().Toggle() != Kat {
		t.Fail()
	}
}

func TestColorHex(t *testing.T) {
	c := FromHexAlpha(0x11223344)
	r, g, b, a := c.RGBA8()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Log(r, g, b, a)
		t.Fail()
	}
	if s := FromHex(0xf89aa6).String(); s != "#f89aa6ff" {
		t.Log(s)
		t.Fail()
	}
}

func TestBaseSize(t *testing.T) {
	if (TaikoCircle{}).BaseSize() != 128 {
		t.Fail()
	}
	if math.Abs(float64((TaikoCircle{Big: true}).BaseSize())-198.4) > 1e-4 {
		t.Fail()
	}
}

func TestVelocityAt(t *testing.T) {
	b := &Beatmap{Velocity: []VelocityPoint{{FromMs(100), 1}, {FromMs(500), 2}}}
	tests := map[float64]int{
		0:   0,
		100: 0,
		499: 0,
		500: 1,
		900: 1,
	}
	for ms, expected := range tests {
		if idx := b.VelocityAt(FromMs(ms)); idx != expected {
			t.Log(ms, "expected segment", expected, "got", idx)
			t.Fail()
		}
	}
	if (&Beatmap{}).VelocityAt(0) != -1 {
		t.Fail()
	}
}

func TestStateRebuildProtocol(t *testing.T) {
	s := NewTaikoState()
	if s.TakeRebuild() {
		t.Log("fresh state must not request a rebuild")
		t.Fail()
	}

	s.Scale = 2
	s.AudioOffset = 10
	s.HitCircles = false
	if s.RebuildPending {
		t.Log("plain fields must not request a rebuild")
		t.Fail()
	}

	setters := map[string]func(){
		"zoom": func() { s.SetZoom(2) },
		"don":  func() { s.SetDonColor(FromRGB(1, 2, 3)) },
		"kat":  func() { s.SetKatColor(FromRGB(4, 5, 6)) },
	}
	for name, set := range setters {
		set()
		if !s.TakeRebuild() {
			t.Log(name, "did not request a rebuild")
			t.Fail()
		}
		if s.RebuildPending {
			t.Log(name, "pending flag not consumed")
			t.Fail()
		}
	}

	s.ForceRebuild = true
	if !s.TakeRebuild() || !s.TakeRebuild() {
		t.Log("force rebuild must hold every frame")
		t.Fail()
	}
}

func TestStateColorOf(t *testing.T) {
	s := NewTaikoState()
	if s.ColorOf(Don) != DefaultDonColor || s.ColorOf(Kat) != DefaultKatColor {
		t.Fail()
	}
}

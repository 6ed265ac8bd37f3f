package game

import (
	"math"
	"time"
)

// Time is a point on the beatmap timeline in seconds.
type Time float64

func FromSeconds(s float64) Time {
	return Time(s)
}

func FromMs(ms float64) Time {
	return Time(ms / 1000)
}

func FromDuration(d time.Duration) Time {
	return Time(d.Seconds())
}

func (t Time) Seconds() float64 {
	return float64(t)
}

// Ms rounds half to even. The value is snapped to the microsecond first
// so a half millisecond read back from seconds is still a half.
func (t Time) Ms() int64 {
	us := math.Round(float64(t) * 1e6)
	return int64(math.RoundToEven(us / 1000))
}

func (t Time) Duration() time.Duration {
	return time.Duration(math.RoundToEven(float64(t) * float64(time.Second)))
}

func (t Time) Add(o Time) Time {
	return t + o
}

func (t Time) Sub(o Time) Time {
	return t - o
}

func (t Time) Before(o Time) bool {
	return t < o
}

func (t Time) After(o Time) bool {
	return t > o
}

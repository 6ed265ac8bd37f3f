package game

// TimingPoint is a tempo anchor.
type TimingPoint struct {
	Time Time
	BPM  float64
}

// VelocityPoint starts a scroll speed segment.
type VelocityPoint struct {
	Time     Time
	Velocity float64
}

type Beatmap struct {
	Objects            []TaikoCircle
	Timing             []TimingPoint
	Velocity           []VelocityPoint
	VelocityMultiplier float32
	Audio              string

	Metadata Metadata
}

// VelocityAt returns the index of the segment active at t: the last point
// whose time is not after t, or 0 when t precedes every point.
// It returns -1 when there are no velocity points.
func (b *Beatmap) VelocityAt(t Time) int {
	idx := -1
	for i, v := range b.Velocity {
		if v.Time > t {
			break
		}
		idx = i
	}
	if idx < 0 && len(b.Velocity) > 0 {
		return 0
	}
	return idx
}

// Duration is the time of the last object, or 0 for an empty map.
func (b *Beatmap) Duration() Time {
	if len(b.Objects) == 0 {
		return 0
	}
	return b.Objects[len(b.Objects)-1].Time
}

func (b *Beatmap) Counts() (don, kat, big int) {
	for _, o := range b.Objects {
		if o.Color == Don {
			don++
		} else {
			kat++
		}
		if o.Big {
			big++
		}
	}
	return
}

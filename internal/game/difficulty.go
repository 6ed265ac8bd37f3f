package game

import "strconv"

// Mode is the ruleset declared in [General].Mode.
type Mode uint8

const (
	ModeStandard Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

var ModeMap = map[string]Mode{
	"0": ModeStandard,
	"1": ModeTaiko,
	"2": ModeCatch,
	"3": ModeMania,
}

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	}
	return "unknown"
}

// Metadata keeps the key/value sections of a beatmap file.
type Metadata struct {
	Version    string
	General    map[string]string
	Difficulty map[string]string
	Sections   map[string]map[string]string
}

func (m Metadata) float(section map[string]string, key string) (float64, bool) {
	v, ok := section[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if nil != err {
		return 0, false
	}
	return f, true
}

func (m Metadata) CircleSize() (float64, bool) {
	return m.float(m.Difficulty, "CircleSize")
}

// SliderMultiplier is read for display only; scrolling uses a fixed
// multiplier of 1.
func (m Metadata) SliderMultiplier() (float64, bool) {
	return m.float(m.Difficulty, "SliderMultiplier")
}

func (m Metadata) Title() string {
	if s, ok := m.Sections["Metadata"]; ok {
		if t := s["Title"]; t != "" {
			return t
		}
	}
	return ""
}

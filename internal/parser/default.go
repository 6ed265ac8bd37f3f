package parser

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/logger"
)

type DefaultParser struct{}

const versionPrefix = "osu file format v"

func (p *DefaultParser) ParseFile(file string) (*game.Beatmap, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read beatmap: %w", err)
	}
	return p.Parse(data)
}

// timing rows are time,beatLength,meter,sampleSet,sampleIndex,volume,uninherited,effects
func (p *DefaultParser) parseTimingPoint(line string, bm *game.Beatmap) {
	fields := strings.Split(line, ",")
	if len(fields) < 7 {
		return
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
	if nil != err {
		return
	}
	beatLength, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if nil != err || beatLength == 0 {
		return
	}
	t := game.FromMs(float64(ms))
	if strings.TrimSpace(fields[6]) == "1" {
		bm.Timing = append(bm.Timing, game.TimingPoint{
			Time: t,
			BPM:  60 / (beatLength / 1000),
		})
		return
	}
	v := -100 / beatLength
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return
	}
	bm.Velocity = append(bm.Velocity, game.VelocityPoint{Time: t, Velocity: v})
}

// object rows are x,y,time,type,hitSound,...
// In taiko the hit sound decides the drum side and the finisher:
// 0 don, 4 big don, 6 big kat, anything else kat.
func (p *DefaultParser) parseTaikoObject(line string, bm *game.Beatmap) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return
	}
	ms, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if nil != err {
		return
	}
	kind, err := strconv.ParseUint(strings.TrimSpace(fields[4]), 10, 8)
	if nil != err {
		return
	}
	circle := game.TaikoCircle{Time: game.FromMs(ms), Color: game.Kat}
	switch kind {
	case 0:
		circle.Color = game.Don
	case 4:
		circle.Color = game.Don
		circle.Big = true
	case 6:
		circle.Big = true
	}
	bm.Objects = append(bm.Objects, circle)
}

func (p *DefaultParser) Parse(data []byte) (*game.Beatmap, error) {
	str := strings.ReplaceAll(string(data), "\r", "")

	bm := &game.Beatmap{}
	sections := map[string]map[string]string{}
	section := ""

	for _, line := range strings.Split(str, "\n") {
		if strings.HasPrefix(line, "[") {
			section = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(line), "["), "]")
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		switch section {
		case "":
			trimmed = strings.TrimPrefix(trimmed, "\ufeff")
			if strings.HasPrefix(trimmed, versionPrefix) {
				bm.Metadata.Version = trimmed
			}
		case "TimingPoints":
			p.parseTimingPoint(trimmed, bm)
		case "HitObjects":
			// Objects are only kept for taiko. Other rulesets are read past.
			if mode, ok := game.ModeMap[sections["General"]["Mode"]]; ok && mode == game.ModeTaiko {
				p.parseTaikoObject(trimmed, bm)
			}
		default:
			kv := strings.SplitN(trimmed, ":", 2)
			if len(kv) != 2 {
				continue
			}
			if _, ok := sections[section]; !ok {
				sections[section] = map[string]string{}
			}
			sections[section][strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	general, ok := sections["General"]
	if !ok {
		return nil, fmt.Errorf("missing [General] section: %w", ErrParse)
	}
	mode, ok := game.ModeMap[general["Mode"]]
	if !ok || mode != game.ModeTaiko {
		return nil, fmt.Errorf("unsupported mode %q: %w", general["Mode"], ErrParse)
	}

	sort.SliceStable(bm.Objects, func(i, j int) bool { return bm.Objects[i].Time < bm.Objects[j].Time })
	sort.SliceStable(bm.Timing, func(i, j int) bool { return bm.Timing[i].Time < bm.Timing[j].Time })
	sort.SliceStable(bm.Velocity, func(i, j int) bool { return bm.Velocity[i].Time < bm.Velocity[j].Time })

	if len(bm.Velocity) == 0 && len(bm.Objects) > 0 {
		bm.Velocity = []game.VelocityPoint{{Time: 0, Velocity: 1}}
	}

	bm.VelocityMultiplier = 1
	bm.Audio = general["AudioFilename"]
	bm.Metadata.General = general
	bm.Metadata.Difficulty = sections["Difficulty"]
	bm.Metadata.Sections = sections

	logger.L().Debug("parsed beatmap",
		"version", bm.Metadata.Version,
		"objects", len(bm.Objects),
		"timing", len(bm.Timing),
		"velocity", len(bm.Velocity),
		"audio", bm.Audio,
	)
	return bm, nil
}

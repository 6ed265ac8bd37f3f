package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/testdata"
)

const minimal = "[General]\n" +
	"Mode:1\n" +
	"AudioFilename:a.mp3\n" +
	"\n" +
	"[TimingPoints]\n" +
	"0,500,4,2,0,100,1,0\n" +
	"1000,-50,4,2,0,100,0,0\n" +
	"\n" +
	"[HitObjects]\n" +
	"256,192,200,1,0\n" +
	"256,192,800,1,4\n"

func TestParseMinimal(t *testing.T) {
	var p Parser = &DefaultParser{}
	bm, err := p.Parse([]byte(minimal))
	if nil != err {
		t.Fatal(err)
	}

	expected := []game.TaikoCircle{
		{Time: game.FromMs(200), Big: false, Color: game.Don},
		{Time: game.FromMs(800), Big: true, Color: game.Don},
	}
	if len(bm.Objects) != len(expected) {
		t.Fatal("expected", len(expected), "objects, got", len(bm.Objects))
	}
	for i, o := range bm.Objects {
		if o.Time.Ms() != expected[i].Time.Ms() || o.Big != expected[i].Big || o.Color != expected[i].Color {
			t.Log(i, "expected", expected[i], "got", o)
			t.Fail()
		}
	}
	if len(bm.Timing) != 1 || bm.Timing[0].Time != 0 || bm.Timing[0].BPM != 120 {
		t.Log("timing", bm.Timing)
		t.Fail()
	}
	if len(bm.Velocity) != 1 || bm.Velocity[0].Time.Ms() != 1000 || bm.Velocity[0].Velocity != 2 {
		t.Log("velocity", bm.Velocity)
		t.Fail()
	}
	if bm.Audio != "a.mp3" || bm.VelocityMultiplier != 1 {
		t.Log(bm.Audio, bm.VelocityMultiplier)
		t.Fail()
	}
}

type objectTest struct {
	ms    int64
	big   bool
	color game.TaikoColor
}

func TestParseSample(t *testing.T) {
	p := &DefaultParser{}
	bm, err := p.Parse([]byte(testdata.Beatmap))
	if nil != err {
		t.Fatal(err)
	}

	expected := []objectTest{
		{200, false, game.Don},
		{400, false, game.Kat},
		{600, false, game.Kat},
		{800, true, game.Don},
		{1200, true, game.Kat},
		{1400, false, game.Kat},
		{2100, false, game.Don},
		{2200, false, game.Don},
	}
	if len(bm.Objects) != len(expected) {
		t.Fatal("expected", len(expected), "objects, got", len(bm.Objects))
	}
	for i, e := range expected {
		o := bm.Objects[i]
		if o.Time.Ms() != e.ms || o.Big != e.big || o.Color != e.color {
			t.Log(i, "expected", e, "got", o.Time.Ms(), o.Big, o.Color)
			t.Fail()
		}
	}

	if len(bm.Velocity) != 2 || bm.Velocity[0].Velocity != 2 || bm.Velocity[1].Velocity != 0.5 {
		t.Log("velocity", bm.Velocity)
		t.Fail()
	}
	if bm.Metadata.Version != "osu file format v14" {
		t.Log("version", bm.Metadata.Version)
		t.Fail()
	}
	if bm.Metadata.Title() != "Conveyor: Test" {
		t.Log("title", bm.Metadata.Title())
		t.Fail()
	}
	if cs, ok := bm.Metadata.CircleSize(); !ok || cs != 5 {
		t.Fail()
	}
	if sm, ok := bm.Metadata.SliderMultiplier(); !ok || sm != 1.4 {
		t.Fail()
	}
}

func TestParseOrdering(t *testing.T) {
	bm, err := (&DefaultParser{}).Parse([]byte(testdata.Beatmap))
	if nil != err {
		t.Fatal(err)
	}
	for i := 1; i < len(bm.Objects); i++ {
		if bm.Objects[i].Time < bm.Objects[i-1].Time {
			t.Log("objects out of order at", i)
			t.Fail()
		}
	}
	for i := 1; i < len(bm.Velocity); i++ {
		if bm.Velocity[i].Time < bm.Velocity[i-1].Time {
			t.Fail()
		}
	}
	for i := 1; i < len(bm.Timing); i++ {
		if bm.Timing[i].Time < bm.Timing[i-1].Time {
			t.Fail()
		}
	}
}

func TestParseInjectsVelocity(t *testing.T) {
	data := "[General]\nMode: 1\nAudioFilename: x.ogg\n[HitObjects]\n0,0,100,1,0\n"
	bm, err := (&DefaultParser{}).Parse([]byte(data))
	if nil != err {
		t.Fatal(err)
	}
	if len(bm.Velocity) != 1 || bm.Velocity[0].Time != 0 || bm.Velocity[0].Velocity != 1 {
		t.Log(bm.Velocity)
		t.Fail()
	}
}

func TestParseEmptyTaiko(t *testing.T) {
	bm, err := (&DefaultParser{}).Parse([]byte("[General]\nMode:1\n"))
	if nil != err {
		t.Fatal(err)
	}
	if len(bm.Objects) != 0 || len(bm.Velocity) != 0 {
		t.Fail()
	}
}

var rejectTests = map[string]string{
	"mania":      testdata.Mania,
	"no general": "osu file format v14\n[HitObjects]\n0,0,100,1,0\n",
	"standard":   "[General]\nMode: 0\n",
	"no mode":    "[General]\nAudioFilename: a.mp3\n",
	"empty":      "",
}

func TestParseRejects(t *testing.T) {
	for name, data := range rejectTests {
		bm, err := (&DefaultParser{}).Parse([]byte(data))
		if !errors.Is(err, ErrParse) || nil != bm {
			t.Log(name, "expected ErrParse, got", err)
			t.Fail()
		}
	}
}

type timingRow struct {
	row      string
	bpm      float64
	velocity float64
}

var timingTests = []timingRow{
	{"0,500,4,2,0,100,1,0", 120, 0},
	{"0,250,4,2,0,100,1,0", 240, 0},
	{"0,-100,4,2,0,100,0,0", 0, 1},
	{"0,-25,4,2,0,100,0,0", 0, 4},
}

func TestParseTimingArithmetic(t *testing.T) {
	for _, tt := range timingTests {
		bm, err := (&DefaultParser{}).Parse([]byte("[General]\nMode:1\n[TimingPoints]\n" + tt.row + "\n"))
		if nil != err {
			t.Fatal(err)
		}
		if tt.bpm != 0 && (len(bm.Timing) != 1 || bm.Timing[0].BPM != tt.bpm) {
			t.Log(tt.row, "expected bpm", tt.bpm, "got", bm.Timing)
			t.Fail()
		}
		if tt.velocity != 0 && (len(bm.Velocity) != 1 || bm.Velocity[0].Velocity != tt.velocity) {
			t.Log(tt.row, "expected velocity", tt.velocity, "got", bm.Velocity)
			t.Fail()
		}
	}
}

func TestParseFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "map.osu")
	if err := os.WriteFile(file, []byte(testdata.Beatmap), 0o644); nil != err {
		t.Fatal(err)
	}
	bm, err := (&DefaultParser{}).ParseFile(file)
	if nil != err {
		t.Fatal(err)
	}
	if len(bm.Objects) == 0 {
		t.Log("no objects read from file")
		t.Fail()
	}

	if _, err := (&DefaultParser{}).ParseFile(file + ".missing"); nil == err {
		t.Log("expected an error for a missing file")
		t.Fail()
	}
}

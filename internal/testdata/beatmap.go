// Package testdata holds sample beatmaps and archive builders for tests.
package testdata

// Beatmap is a small taiko map: one tempo, two velocity segments and
// eight objects covering every drum/finisher combination.
const Beatmap = "osu file format v14\r\n" +
	"\r\n" +
	"[General]\r\n" +
	"AudioFilename: audio.mp3\r\n" +
	"AudioLeadIn: 0\r\n" +
	"Mode: 1\r\n" +
	"\r\n" +
	"[Metadata]\r\n" +
	"Title:Conveyor: Test\r\n" +
	"Version:Oni\r\n" +
	"\r\n" +
	"[Difficulty]\r\n" +
	"CircleSize:5\r\n" +
	"SliderMultiplier:1.4\r\n" +
	"\r\n" +
	"[Events]\r\n" +
	"//Background and Video events\r\n" +
	"\r\n" +
	"[TimingPoints]\r\n" +
	"0,500,4,2,0,100,1,0\r\n" +
	"1000,-50,4,2,0,100,0,0\r\n" +
	"broken,row\r\n" +
	"2000,-200,4,2,0,100,0,0\r\n" +
	"\r\n" +
	"[HitObjects]\r\n" +
	"256,192,200,1,0,0:0:0:0:\r\n" +
	"256,192,400,1,2,0:0:0:0:\r\n" +
	"256,192,600,1,8,0:0:0:0:\r\n" +
	"256,192,800,1,4,0:0:0:0:\r\n" +
	"256,192,1200,1,6,0:0:0:0:\r\n" +
	"256,192,1400,1,12,0:0:0:0:\r\n" +
	"256,192,not-a-time,1,0,0:0:0:0:\r\n" +
	"256,192,2200,5,0,0:0:0:0:\r\n" +
	"256,192,2100,1,0,0:0:0:0:\r\n"

// Mania is a well formed map in a ruleset the viewer does not play.
const Mania = "osu file format v14\n" +
	"\n" +
	"[General]\n" +
	"AudioFilename: audio.mp3\n" +
	"Mode: 3\n" +
	"\n" +
	"[Difficulty]\n" +
	"CircleSize:4\n" +
	"\n" +
	"[HitObjects]\n" +
	"64,192,500,1,0,0:0:0:0:\n"

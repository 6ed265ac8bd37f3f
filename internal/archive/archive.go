// Package archive opens beatmap archives (.osz) entirely into memory.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/logger"
	"git.lost.host/meutraa/apex/internal/parser"
)

var (
	ErrNoBeatmap    = errors.New("archive contains no .osu file")
	ErrAudioMissing = errors.New("archive does not contain the beatmap audio")
)

type Entry struct {
	Name string
	Data []byte
}

// Archive is the decompressed content of a beatmap archive, in archive order.
type Archive struct {
	Entries []Entry
}

// Loaded is the beatmap of an archive together with its audio bytes.
type Loaded struct {
	Beatmap   *game.Beatmap
	BeatmapAt string
	Audio     []byte
	AudioName string
}

func Open(file string) (*Archive, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to open archive: %w", err)
	}
	return Read(data)
}

func Read(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if nil != err {
		return nil, fmt.Errorf("unable to read archive: %w", err)
	}
	a := &Archive{Entries: make([]Entry, 0, len(zr.File))}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if nil != err {
			return nil, fmt.Errorf("unable to decompress %v: %w", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if nil != err {
			return nil, fmt.Errorf("unable to decompress %v: %w", f.Name, err)
		}
		a.Entries = append(a.Entries, Entry{Name: f.Name, Data: b})
	}
	return a, nil
}

// Beatmap returns the first .osu entry.
func (a *Archive) Beatmap() (*Entry, error) {
	for i, e := range a.Entries {
		if strings.EqualFold(path.Ext(e.Name), ".osu") {
			return &a.Entries[i], nil
		}
	}
	return nil, ErrNoBeatmap
}

// Find looks an entry up by file name, exactly first and then ignoring case.
func (a *Archive) Find(name string) (*Entry, bool) {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	for i, e := range a.Entries {
		if path.Base(e.Name) == name {
			return &a.Entries[i], true
		}
	}
	for i, e := range a.Entries {
		if strings.EqualFold(path.Base(e.Name), name) {
			return &a.Entries[i], true
		}
	}
	return nil, false
}

// Load parses the first beatmap and resolves its audio.
// Beatmap and audio errors wrap parser.ErrParse and ErrAudioMissing.
func (a *Archive) Load(p parser.Parser) (*Loaded, error) {
	entry, err := a.Beatmap()
	if nil != err {
		return nil, err
	}
	bm, err := p.Parse(entry.Data)
	if nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", entry.Name, err)
	}
	audio, ok := a.Find(bm.Audio)
	if !ok {
		return nil, fmt.Errorf("%v: %w", bm.Audio, ErrAudioMissing)
	}
	logger.L().Info("loaded beatmap", "beatmap", entry.Name, "audio", audio.Name, "objects", len(bm.Objects))
	return &Loaded{
		Beatmap:   bm,
		BeatmapAt: entry.Name,
		Audio:     audio.Data,
		AudioName: audio.Name,
	}, nil
}

// Hint returns the audio format hint for a file name, e.g. "mp3".
func Hint(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

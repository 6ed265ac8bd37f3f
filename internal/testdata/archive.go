package testdata

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// File is a single archive entry, kept in order.
type File struct {
	Name string
	Data []byte
}

// Archive zips files in the given order.
func Archive(files ...File) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.Create(f.Name)
		if nil != err {
			return nil, err
		}
		if _, err := fw.Write(f.Data); nil != err {
			return nil, err
		}
	}
	if err := w.Close(); nil != err {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SilentWAV encodes d of stereo silence at sr.
func SilentWAV(sr beep.SampleRate, d time.Duration) ([]byte, error) {
	ws := &seekBuffer{}
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(ws, beep.Silence(sr.N(d)), format); nil != err {
		return nil, err
	}
	return ws.data, nil
}

type seekBuffer struct {
	data []byte
	pos  int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	if end := s.pos + len(p); end > len(s.data) {
		s.data = append(s.data, make([]byte, end-len(s.data))...)
	}
	copy(s.data[s.pos:], p)
	s.pos += len(p)
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(s.pos) + offset
	case io.SeekEnd:
		pos = int64(len(s.data)) + offset
	}
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	s.pos = int(pos)
	return pos, nil
}

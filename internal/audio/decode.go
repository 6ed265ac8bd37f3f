package audio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// readSeekNopCloser keeps Seek visible to decoders that type assert for it.
type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

// Decode reads an in-memory track. hint is the file extension without the
// dot, such as "mp3" or "ogg".
func Decode(data []byte, hint string) (*Stream, error) {
	r := readSeekNopCloser{bytes.NewReader(data)}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch strings.ToLower(hint) {
	case "mp3":
		s, format, err = mp3.Decode(r)
	case "ogg", "oga", "vorbis":
		s, format, err = vorbis.Decode(r)
	case "wav", "wave":
		s, format, err = wav.Decode(r)
	case "flac":
		s, format, err = flac.Decode(r)
	default:
		return nil, fmt.Errorf("%q: %w", hint, ErrUnsupportedFormat)
	}
	if nil != err {
		return nil, fmt.Errorf("unable to decode %v audio: %w", hint, err)
	}
	return &Stream{Streamer: s, Format: format}, nil
}

package parser

import (
	"errors"

	"git.lost.host/meutraa/apex/internal/game"
)

// ErrParse is returned for any beatmap that is not a taiko map or whose
// structure cannot be read.
var ErrParse = errors.New("unable to parse beatmap")

type Parser interface {
	Parse(data []byte) (*game.Beatmap, error)
	ParseFile(file string) (*game.Beatmap, error)
}

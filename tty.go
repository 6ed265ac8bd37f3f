package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/apex/internal/audio"
	"git.lost.host/meutraa/apex/internal/config"
	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/input"
	"git.lost.host/meutraa/apex/internal/layer"
	"git.lost.host/meutraa/apex/internal/logger"
	"git.lost.host/meutraa/apex/internal/parser"
	"git.lost.host/meutraa/apex/internal/timeline"
	"github.com/eiannone/keyboard"
)

const (
	framePeriod    = time.Second / 60
	hitColumn      = 8
	unitsPerColumn = 20
)

var hitColor = game.FromRGB(0xcc, 0xcc, 0xcc)

// runTerminal plays the archive with a single lane drawn in the terminal.
func runTerminal(c *config.Config, state *game.TaikoState, a audio.Backend, psr parser.Parser) error {
	lane := &timeline.Lane{Hit: hitColumn, Unit: unitsPerColumn}
	l := layer.NewTaikoLayer(lane, a, psr, state, 0, 0, 1)
	if err := l.Load(c.Archive); nil != err {
		return err
	}
	defer l.CloseBeatmap()

	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			logger.L().Warn("unable to close keyboard", "err", err)
		}
	}()

	r := timeline.NewTerminal()
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			logger.L().Warn("unable to restore terminal", "err", err)
		}
	}()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-keys:
			if !input.Apply(input.FromTerminal(ev), l, c.SeekTime()) {
				return nil
			}
		case <-ticker.C:
			if err := l.Draw(nil); nil != err {
				logger.L().Warn("unable to lay out the lane", "err", err)
			}
			drawTerminal(r, l, lane)
			if err := r.Flush(); nil != err {
				return err
			}
		}
	}
}

func drawTerminal(r *timeline.Terminal, l *layer.TaikoLayer, lane *timeline.Lane) {
	cols, rows := r.Size()
	row := rows / 2

	bm := l.Beatmap()
	if nil == bm {
		r.Fill(1, 1, "no beatmap")
		r.Fill(row, 1, "")
	} else {
		r.Fill(1, 1, bm.Metadata.Title())
		r.Fill(row, 1, "")
		r.FillColor(row, hitColumn+1, hitColor, "○")

		for _, circle := range lane.Circles(cols) {
			symbol := "●"
			if circle.Big {
				symbol = "⬤"
			}
			r.FillColor(row, circle.Column+1, circle.Color, symbol)
		}
	}
	r.Fill(rows, 1, timeline.Status(l.IsPaused(), l.Time(), l.Length(), cols))
}

package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/apex/internal/audio"
	"git.lost.host/meutraa/apex/internal/config"
	"git.lost.host/meutraa/apex/internal/graphics"
	"git.lost.host/meutraa/apex/internal/logger"
	"git.lost.host/meutraa/apex/internal/parser"
	"github.com/gogpu/gg"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	c, err := config.New().Parse(args)
	if nil != err {
		return err
	}

	l := logger.New(os.Stderr, c.LogLevel)
	logger.Set(l)
	gg.SetLogger(l)
	wgpu.SetLogger(l)
	hal.SetLogger(l)

	backends, err := graphics.ParseBackend(c.Backend)
	if nil != err {
		return err
	}
	if c.ListGPUs {
		if err := graphics.WriteAdapters(os.Stdout, graphics.Adapters(backends)); nil != err {
			return err
		}
		if !c.ListModes {
			return nil
		}
	}
	if c.ListModes {
		return graphics.WritePresentModes(os.Stdout)
	}

	state, err := c.State()
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var a audio.Backend = audio.NewDefaultBackend()
	var psr parser.Parser = &parser.DefaultParser{}
	defer func() {
		if err := a.Close(); nil != err {
			logger.L().Warn("unable to close audio", "err", err)
		}
	}()

	if c.TTY {
		if c.Archive == "" {
			return fmt.Errorf("unable to play in the terminal: %w: no archive given", config.ErrInvalid)
		}
		return runTerminal(c, state, a, psr)
	}

	p := &Program{
		Config:   c,
		State:    state,
		Audio:    a,
		Parser:   psr,
		Backends: backends,
	}
	return p.Run()
}

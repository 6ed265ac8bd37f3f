// Package config declares the command line.
package config

import (
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/graphics"
	"github.com/gogpu/gg"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Archive string

	Backend         string
	PowerPreference string
	GPU             int
	ListGPUs        bool
	Mode            int
	ListModes       bool
	Scale           float64

	Offset   time.Duration
	Zoom     float64
	DonColor string
	KatColor string
	SkinDir  string
	SeekStep time.Duration

	LogLevel string
	TTY      bool
}

// Application wraps the kingpin application with the values it fills.
type Application struct {
	*kingpin.Application
	config Config
}

func New() *Application {
	app := &Application{Application: kingpin.New("apex", "Taiko beatmap viewer")}
	app.Version(Version)
	app.HelpFlag.Short('h')

	c := &app.config
	app.Arg("archive", "Beatmap archive (.osz) to open").ExistingFileVar(&c.Archive)
	app.Flag("backend", "Graphics backend").Short('b').Default("auto").EnumVar(&c.Backend, graphics.Backends...)
	app.Flag("api", "Alias of --backend").Hidden().EnumVar(&c.Backend, graphics.Backends...)
	app.Flag("power-preference", "Adapter power preference").Short('p').Default("low").EnumVar(&c.PowerPreference, "low", "high")
	app.Flag("gpu", "Adapter index from --gpus").Default("-1").IntVar(&c.GPU)
	app.Flag("gpus", "List adapters and exit").BoolVar(&c.ListGPUs)
	app.Flag("mode", "Present mode index from --modes").Default("-1").IntVar(&c.Mode)
	app.Flag("modes", "List present modes and exit").BoolVar(&c.ListModes)
	app.Flag("scale", "Device scale factor, 0 follows the window").Default("0").Float64Var(&c.Scale)
	app.Flag("offset", "Audio offset").Short('o').Default("45ms").DurationVar(&c.Offset)
	app.Flag("zoom", "Conveyor zoom").Short('z').Default("1.0").Float64Var(&c.Zoom)
	app.Flag("don-color", "Don tint as hex").Default(game.DefaultDonColor.String()).StringVar(&c.DonColor)
	app.Flag("kat-color", "Kat tint as hex").Default(game.DefaultKatColor.String()).StringVar(&c.KatColor)
	app.Flag("skin", "Directory of skin PNGs").ExistingDirVar(&c.SkinDir)
	app.Flag("seek-step", "Seek distance of the arrow keys").Short('s').Default("5s").DurationVar(&c.SeekStep)
	app.Flag("log-level", "Log level").Short('l').Default("warn").EnumVar(&c.LogLevel, "debug", "info", "warn", "error")
	app.Flag("tty", "Play in the terminal without a window").BoolVar(&c.TTY)
	return app
}

// Parse parses args, without the program name, and validates the result.
func (a *Application) Parse(args []string) (*Config, error) {
	a.config = Config{}
	if _, err := a.Application.Parse(args); nil != err {
		return nil, err
	}
	c := a.config
	if err := c.Validate(); nil != err {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("%w: scale %v must not be negative", ErrInvalid, c.Scale)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %v must be positive", ErrInvalid, c.Zoom)
	}
	if c.SeekStep <= 0 {
		return fmt.Errorf("%w: seek step %v must be positive", ErrInvalid, c.SeekStep)
	}
	if _, err := graphics.PresentMode(c.Mode); nil != err {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for name, hex := range map[string]string{"don": c.DonColor, "kat": c.KatColor} {
		if _, err := ParseColor(hex); nil != err {
			return fmt.Errorf("%w: %v color: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// ParseColor reads #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseColor(hex string) (game.Color, error) {
	c, err := gg.ParseHex(hex)
	if nil != err {
		return game.Color{}, err
	}
	return game.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}, nil
}

// State builds the presentation state the flags describe.
func (c *Config) State() (*game.TaikoState, error) {
	don, err := ParseColor(c.DonColor)
	if nil != err {
		return nil, err
	}
	kat, err := ParseColor(c.KatColor)
	if nil != err {
		return nil, err
	}
	s := game.NewTaikoState()
	s.AudioOffset = float64(c.Offset) / float64(time.Millisecond)
	s.SetZoom(float32(c.Zoom))
	s.SetDonColor(don)
	s.SetKatColor(kat)
	return s, nil
}

// DeviceScale returns the --scale override, or the window's factor when
// none was given.
func (c *Config) DeviceScale(window float64) float32 {
	if c.Scale > 0 {
		return float32(c.Scale)
	}
	if window > 0 {
		return float32(window)
	}
	return 1
}

func (c *Config) SeekTime() game.Time {
	return game.FromDuration(c.SeekStep)
}

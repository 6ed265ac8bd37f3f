package main

import (
	"fmt"

	"git.lost.host/meutraa/apex/internal/audio"
	"git.lost.host/meutraa/apex/internal/config"
	"git.lost.host/meutraa/apex/internal/game"
	"git.lost.host/meutraa/apex/internal/graphics"
	"git.lost.host/meutraa/apex/internal/input"
	"git.lost.host/meutraa/apex/internal/layer"
	"git.lost.host/meutraa/apex/internal/logger"
	"git.lost.host/meutraa/apex/internal/parser"
	"git.lost.host/meutraa/apex/internal/render"
	"git.lost.host/meutraa/apex/internal/theme"
	"git.lost.host/meutraa/apex/internal/timeline"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

var clearColor = gputypes.Color{R: 0.005, G: 0.005, B: 0.005, A: 1}

// Program hosts the taiko layer in a gogpu window.
type Program struct {
	Config   *config.Config
	State    *game.TaikoState
	Audio    audio.Backend
	Parser   parser.Parser
	Backends gputypes.Backends

	Layer *layer.TaikoLayer

	app           *gogpu.App
	device        *wgpu.Device
	renderer      *render.DefaultRenderer
	width, height int
	scale         float32
	failed        bool
}

func (p *Program) Run() error {
	pref := graphics.ParsePowerPreference(p.Config.PowerPreference)
	mode, err := graphics.PresentMode(p.Config.Mode)
	if nil != err {
		return err
	}

	var chosen *gputypes.AdapterInfo
	adapters := graphics.Adapters(p.Backends)
	if i, err := graphics.Choose(adapters, p.Config.GPU, pref); nil != err {
		if p.Config.GPU >= 0 {
			return err
		}
		logger.L().Warn("no adapter enumerated, leaving the choice to the window", "err", err)
	} else {
		a := adapters[i]
		logger.L().Info("adapter", "index", i, "name", a.Name, "type", a.DeviceType, "backend", a.Backend, "power", pref)
		if p.Config.GPU >= 0 {
			chosen = &a
		}
	}

	req := graphics.NewRequest(p.Backends, pref, mode, chosen)
	logger.L().Debug("device request", "api", req.API, "power", req.Power, "vsync", req.VSync)

	p.app = gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("apex").
		WithSize(1280, 720).
		WithGraphicsAPI(req.API).
		WithPowerPreference(req.Power).
		WithVSync(req.VSync).
		WithContinuousRender(true))

	p.app.OnDraw(p.Draw)
	p.app.EventSource().OnKeyPress(p.KeyPress)
	p.app.OnClose(p.Close)
	return p.app.Run()
}

func (p *Program) init(dc *gogpu.Context) error {
	provider := p.app.GPUContextProvider()
	if nil == provider {
		return fmt.Errorf("unable to get gpu context: %w", graphics.ErrNoAdapter)
	}
	device, ok := provider.Device().(*wgpu.Device)
	if !ok {
		return fmt.Errorf("unable to use gpu device of type %T", provider.Device())
	}
	p.device = device
	if err := graphics.CheckLimits(device.Limits()); nil != err {
		return err
	}

	logger.L().Info("graphics ready",
		"backend", dc.Backend(),
		"requested", p.Config.Backend,
		"scale", dc.ScaleFactor(),
	)

	var err error
	p.renderer, err = render.NewDefaultRenderer(device, provider.SurfaceFormat(), &theme.DefaultTheme{SkinDir: p.Config.SkinDir})
	if nil != err {
		return err
	}

	p.width, p.height = dc.Width(), dc.Height()
	p.scale = p.Config.DeviceScale(dc.ScaleFactor())
	p.Layer = layer.NewTaikoLayer(p.renderer, p.Audio, p.Parser, p.State,
		uint32(p.width), uint32(p.height), p.scale)

	if p.Config.Archive != "" {
		if err := p.Layer.Load(p.Config.Archive); nil != err {
			logger.L().Error("unable to load beatmap", "archive", p.Config.Archive, "err", err)
		}
	}
	return nil
}

func (p *Program) Draw(dc *gogpu.Context) {
	if p.failed {
		return
	}
	if nil == p.Layer {
		if err := p.init(dc); nil != err {
			logger.L().Error("unable to initialize graphics", "err", err)
			p.failed = true
			p.app.Quit()
			return
		}
	}

	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}
	if w != p.width || h != p.height {
		p.width, p.height = w, h
		p.Layer.Resize(uint32(w), uint32(h))
	}
	if scale := p.Config.DeviceScale(dc.ScaleFactor()); scale != p.scale {
		p.scale = scale
		p.Layer.Scale(scale)
	}

	sv := dc.SurfaceView()
	if sv.IsNil() {
		return
	}
	err := p.frame((*wgpu.TextureView)(sv.Pointer()))
	switch graphics.Policy(err) {
	case graphics.Quit:
		logger.L().Error("unable to render frame", "err", err)
		p.app.Quit()
	case graphics.Reconfigure:
		// gogpu reconfigures the surface on its next acquire. Forget the
		// size so the projection follows whatever it comes back with.
		logger.L().Warn("surface lost, waiting for the window to reconfigure it", "err", err)
		p.width, p.height = 0, 0
	default:
		if nil != err {
			logger.L().Debug("frame skipped", "err", err)
		}
	}
}

func (p *Program) frame(view *wgpu.TextureView) error {
	encoder, err := p.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "frame"})
	if nil != err {
		return err
	}
	pass, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "conveyor",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clearColor,
		}},
	})
	if nil != err {
		encoder.DiscardEncoding()
		return err
	}

	drawErr := p.Layer.Draw(pass)
	if err := pass.End(); nil != err {
		encoder.DiscardEncoding()
		return err
	}
	cmd, err := encoder.Finish()
	if nil != err {
		return err
	}
	if _, err := p.device.Queue().Submit(cmd); nil != err {
		cmd.Release()
		return err
	}
	return drawErr
}

func (p *Program) KeyPress(key gpucontext.Key, _ gpucontext.Modifiers) {
	if nil == p.Layer {
		return
	}
	a := input.FromKey(key)
	if !input.Apply(a, p.Layer, p.Config.SeekTime()) {
		p.app.Quit()
		return
	}
	if a != input.None {
		logger.L().Debug(a.String(), "position", timeline.Format(p.Layer.Time(), p.Layer.Length()))
	}
}

func (p *Program) Close() {
	if nil != p.Layer {
		p.Layer.CloseBeatmap()
	}
	if nil != p.renderer {
		p.renderer.Release()
	}
}

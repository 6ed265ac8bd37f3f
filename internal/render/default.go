package render

import (
	"encoding/binary"
	"fmt"
	"math"

	"git.lost.host/meutraa/apex/internal/logger"
	"git.lost.host/meutraa/apex/internal/theme"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

const (
	quadVertexSize = 16 // vec2 position, vec2 uv
	modelSize      = 64 // mat4 as four vec4 columns
	sceneSize      = 64
	timeSize       = 16
)

// quad is a unit square centered on the origin, two counter clockwise
// triangles in y down screen space.
var quad = [...]float32{
	// x, y, u, v
	-0.5, -0.5, 0, 0,
	-0.5, 0.5, 0, 1,
	0.5, 0.5, 1, 1,
	-0.5, -0.5, 0, 0,
	0.5, 0.5, 1, 1,
	0.5, -0.5, 1, 0,
}

type sprite struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	group   *wgpu.BindGroup
}

// DefaultRenderer draws the conveyor with wgpu.
type DefaultRenderer struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	sampler        *wgpu.Sampler
	sceneLayout    *wgpu.BindGroupLayout
	timeLayout     *wgpu.BindGroupLayout
	spriteLayout   *wgpu.BindGroupLayout
	hitLayout      *wgpu.PipelineLayout
	circleLayout   *wgpu.PipelineLayout
	commonModule   *wgpu.ShaderModule
	taikoModule    *wgpu.ShaderModule
	hitPipeline    *wgpu.RenderPipeline
	circlePipeline *wgpu.RenderPipeline

	quad        *wgpu.Buffer
	hitInstance *wgpu.Buffer
	scene       *wgpu.Buffer
	time        *wgpu.Buffer
	sceneGroup  *wgpu.BindGroup
	timeGroup   *wgpu.BindGroup

	circles         *wgpu.Buffer
	circlesCapacity uint64

	sprites map[theme.Kind]*sprite
}

var _ Renderer = &DefaultRenderer{}

// NewDefaultRenderer creates every GPU resource of the conveyor. format is
// the surface format the pipelines render into.
func NewDefaultRenderer(device *wgpu.Device, format gputypes.TextureFormat, th theme.Theme) (*DefaultRenderer, error) {
	if err := ValidateShaders(); nil != err {
		return nil, err
	}
	r := &DefaultRenderer{
		device:  device,
		queue:   device.Queue(),
		sprites: map[theme.Kind]*sprite{},
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"layouts", r.createLayouts},
		{"buffers", r.createBuffers},
		{"sprites", func() error { return r.createSprites(th) }},
		{"pipelines", func() error { return r.createPipelines(format) }},
	}
	for _, step := range steps {
		if err := step.fn(); nil != err {
			r.Release()
			return nil, fmt.Errorf("unable to create conveyor %v: %w", step.name, err)
		}
	}
	logger.L().Debug("conveyor renderer ready", "format", format)
	return r, nil
}

func (r *DefaultRenderer) createLayouts() error {
	var err error
	uniform := func(label string) (*wgpu.BindGroupLayout, error) {
		return r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
			Label: label,
			Entries: []gputypes.BindGroupLayoutEntry{{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			}},
		})
	}
	if r.sceneLayout, err = uniform("scene layout"); nil != err {
		return err
	}
	if r.timeLayout, err = uniform("time layout"); nil != err {
		return err
	}
	r.spriteLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "sprite layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if nil != err {
		return err
	}
	r.hitLayout, err = r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "hit position pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{r.sceneLayout, r.spriteLayout},
	})
	if nil != err {
		return err
	}
	r.circleLayout, err = r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "circle pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{
			r.sceneLayout, r.timeLayout,
			r.spriteLayout, r.spriteLayout, r.spriteLayout, r.spriteLayout,
		},
	})
	return err
}

func floatBytes(fs ...float32) []byte {
	b := make([]byte, 4*len(fs))
	for i, f := range fs {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

func (r *DefaultRenderer) buffer(label string, size uint64, usage gputypes.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	b, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if nil != err {
		return nil, err
	}
	if nil != data {
		if err := r.queue.WriteBuffer(b, 0, data); nil != err {
			b.Release()
			return nil, err
		}
	}
	return b, nil
}

func (r *DefaultRenderer) createBuffers() error {
	var err error
	if r.quad, err = r.buffer("quad", uint64(len(quad)*4), gputypes.BufferUsageVertex, floatBytes(quad[:]...)); nil != err {
		return err
	}

	hit := Model{Scale: mgl32.Vec3{CircleSprite, CircleSprite, 1}, Rotation: mgl32.QuatIdent()}.Matrix()
	if r.hitInstance, err = r.buffer("hit position instance", modelSize, gputypes.BufferUsageVertex, floatBytes(hit[:]...)); nil != err {
		return err
	}

	identity := mgl32.Ident4()
	if r.scene, err = r.buffer("scene", sceneSize, gputypes.BufferUsageUniform, floatBytes(identity[:]...)); nil != err {
		return err
	}
	if r.time, err = r.buffer("time", timeSize, gputypes.BufferUsageUniform, make([]byte, timeSize)); nil != err {
		return err
	}

	if r.sceneGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "scene",
		Layout:  r.sceneLayout,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, Buffer: r.scene, Size: sceneSize}},
	}); nil != err {
		return err
	}
	r.timeGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "time",
		Layout:  r.timeLayout,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, Buffer: r.time, Size: timeSize}},
	})
	return err
}

// CircleSprite is the edge length the hit position quad is scaled to.
const CircleSprite = 128

func (r *DefaultRenderer) createSprites(th theme.Theme) error {
	var err error
	r.sampler, err = r.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:        "sprite sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		LodMaxClamp:  32,
	})
	if nil != err {
		return err
	}

	for _, k := range theme.Kinds {
		img, err := th.Texture(k)
		if nil != err {
			return err
		}
		w, h := uint32(img.Bounds().Dx()), uint32(img.Bounds().Dy())
		s := &sprite{}
		r.sprites[k] = s

		s.texture, err = r.device.CreateTexture(&wgpu.TextureDescriptor{
			Label:         k.String(),
			Size:          wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8UnormSrgb,
			Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		})
		if nil != err {
			return err
		}
		if err := r.queue.WriteTexture(
			&wgpu.ImageCopyTexture{Texture: s.texture, Aspect: gputypes.TextureAspectAll},
			img.Pix,
			&wgpu.ImageDataLayout{BytesPerRow: uint32(img.Stride), RowsPerImage: h},
			&wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		); nil != err {
			return err
		}
		s.view, err = r.device.CreateTextureView(s.texture, &wgpu.TextureViewDescriptor{
			Label:         k.String(),
			Format:        gputypes.TextureFormatRGBA8UnormSrgb,
			Dimension:     gputypes.TextureViewDimension2D,
			Aspect:        gputypes.TextureAspectAll,
			MipLevelCount: 1,
		})
		if nil != err {
			return err
		}
		s.group, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  k.String(),
			Layout: r.spriteLayout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, TextureView: s.view},
				{Binding: 1, Sampler: r.sampler},
			},
		})
		if nil != err {
			return err
		}
	}
	return nil
}

var quadLayout = gputypes.VertexBufferLayout{
	ArrayStride: quadVertexSize,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
	},
}

var modelLayout = gputypes.VertexBufferLayout{
	ArrayStride: modelSize,
	StepMode:    gputypes.VertexStepModeInstance,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 3},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 4},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 5},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 6},
	},
}

var instanceLayout = gputypes.VertexBufferLayout{
	ArrayStride: InstanceSize,
	StepMode:    gputypes.VertexStepModeInstance,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 2},
		{Format: gputypes.VertexFormatFloat32, Offset: 12, ShaderLocation: 3},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 4},
		{Format: gputypes.VertexFormatUint32, Offset: 32, ShaderLocation: 5},
	},
}

func (r *DefaultRenderer) createPipelines(format gputypes.TextureFormat) error {
	var err error
	if r.commonModule, err = r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{Label: "common", WGSL: commonShader}); nil != err {
		return err
	}
	if r.taikoModule, err = r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{Label: "taiko", WGSL: taikoShader}); nil != err {
		return err
	}

	blend := gputypes.BlendStateAlpha()
	targets := []gputypes.ColorTargetState{{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}}
	primitive := gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	multisample := gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF}

	r.hitPipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "hit position",
		Layout: r.hitLayout,
		Vertex: wgpu.VertexState{
			Module:     r.commonModule,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{quadLayout, modelLayout},
		},
		Primitive:   primitive,
		Multisample: multisample,
		Fragment:    &wgpu.FragmentState{Module: r.commonModule, EntryPoint: "fs_main", Targets: targets},
	})
	if nil != err {
		return err
	}
	r.circlePipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "circles",
		Layout: r.circleLayout,
		Vertex: wgpu.VertexState{
			Module:     r.taikoModule,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{quadLayout, instanceLayout},
		},
		Primitive:   primitive,
		Multisample: multisample,
		Fragment:    &wgpu.FragmentState{Module: r.taikoModule, EntryPoint: "fs_main", Targets: targets},
	})
	return err
}

// WriteInstances uploads baked instances, recreating the buffer only when
// it is too small.
func (r *DefaultRenderer) WriteInstances(baked []byte) error {
	if len(baked) == 0 {
		return nil
	}
	size := uint64(len(baked))
	if size > r.circlesCapacity {
		if nil != r.circles {
			r.circles.Release()
			r.circles = nil
			r.circlesCapacity = 0
		}
		b, err := r.buffer("circle instances", size, gputypes.BufferUsageVertex, nil)
		if nil != err {
			return err
		}
		r.circles = b
		r.circlesCapacity = size
		logger.L().Debug("circle buffer grown", "bytes", size)
	}
	return r.queue.WriteBuffer(r.circles, 0, baked)
}

func (r *DefaultRenderer) WriteScene(m mgl32.Mat4) error {
	return r.queue.WriteBuffer(r.scene, 0, floatBytes(m[:]...))
}

func (r *DefaultRenderer) WriteTime(offset float32) error {
	return r.queue.WriteBuffer(r.time, 0, floatBytes(offset, 0, 0, 0))
}

func (r *DefaultRenderer) DrawHitPosition(pass Pass) {
	pass.SetPipeline(r.hitPipeline)
	pass.SetBindGroup(0, r.sceneGroup, nil)
	pass.SetBindGroup(1, r.sprites[theme.HitPosition].group, nil)
	pass.SetVertexBuffer(0, r.quad, 0)
	pass.SetVertexBuffer(1, r.hitInstance, 0)
	pass.Draw(uint32(len(quad)/4), 1, 0, 0)
}

func (r *DefaultRenderer) DrawCircles(pass Pass, count uint32) {
	if count == 0 || nil == r.circles {
		return
	}
	pass.SetPipeline(r.circlePipeline)
	pass.SetBindGroup(0, r.sceneGroup, nil)
	pass.SetBindGroup(1, r.timeGroup, nil)
	pass.SetBindGroup(2, r.sprites[theme.HitCircle].group, nil)
	pass.SetBindGroup(3, r.sprites[theme.HitCircleOverlay].group, nil)
	pass.SetBindGroup(4, r.sprites[theme.BigCircle].group, nil)
	pass.SetBindGroup(5, r.sprites[theme.BigCircleOverlay].group, nil)
	pass.SetVertexBuffer(0, r.quad, 0)
	pass.SetVertexBuffer(1, r.circles, 0)
	pass.Draw(uint32(len(quad)/4), count, 0, 0)
}

// Release frees every resource created so far. It is safe on a partially
// built renderer.
func (r *DefaultRenderer) Release() {
	for _, s := range r.sprites {
		if nil != s.group {
			s.group.Release()
		}
		if nil != s.view {
			s.view.Release()
		}
		if nil != s.texture {
			s.texture.Release()
		}
	}
	r.sprites = map[theme.Kind]*sprite{}

	for _, p := range []*wgpu.RenderPipeline{r.hitPipeline, r.circlePipeline} {
		if nil != p {
			p.Release()
		}
	}
	for _, m := range []*wgpu.ShaderModule{r.commonModule, r.taikoModule} {
		if nil != m {
			m.Release()
		}
	}
	for _, g := range []*wgpu.BindGroup{r.sceneGroup, r.timeGroup} {
		if nil != g {
			g.Release()
		}
	}
	for _, b := range []*wgpu.Buffer{r.quad, r.hitInstance, r.scene, r.time, r.circles} {
		if nil != b {
			b.Release()
		}
	}
	for _, l := range []*wgpu.PipelineLayout{r.hitLayout, r.circleLayout} {
		if nil != l {
			l.Release()
		}
	}
	for _, l := range []*wgpu.BindGroupLayout{r.sceneLayout, r.timeLayout, r.spriteLayout} {
		if nil != l {
			l.Release()
		}
	}
	if nil != r.sampler {
		r.sampler.Release()
	}
	*r = DefaultRenderer{device: r.device, queue: r.queue, sprites: r.sprites}
}

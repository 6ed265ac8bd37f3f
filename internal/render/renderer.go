// Package render draws the taiko conveyor.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/wgpu"
)

// Pass is the subset of a render pass the conveyor records into.
// *wgpu.RenderPassEncoder implements it.
type Pass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(index uint32, group *wgpu.BindGroup, offsets []uint32)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

// Renderer owns the GPU side of the conveyor. Writes are queued before the
// frame is submitted, so they back the draws recorded in the same frame.
type Renderer interface {
	WriteInstances(baked []byte) error
	WriteScene(m mgl32.Mat4) error
	WriteTime(offset float32) error
	DrawHitPosition(pass Pass)
	DrawCircles(pass Pass, count uint32)
	Release()
}

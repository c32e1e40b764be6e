// Copyright 2026 The gfx Authors. All rights reserved.

package dx11

import (
	"github.com/Bastacyclop/gfx/driver"
)

// Box addresses an axis-aligned sub-region of a resource.
// For buffers the units are bytes along the left/right
// axis; for textures they are texels.
type Box struct {
	Left   int
	Top    int
	Front  int
	Right  int
	Bottom int
	Back   int
}

// Context is the native immediate device context.
// Each method corresponds to one native entry point; a
// platform binding implements it over the real API and
// tests implement it with a recorder.
//
// Binding methods always receive the full slot range of
// their category. Unused slots hold nil handles; the
// binding must forward them as-is so that stale state is
// unbound.
type Context interface {
	// SetShaders binds all programmable stages at once.
	// A nil stage unbinds that slot.
	SetShaders(vs, hs, ds, gs, ps Shader)

	SetInputLayout(layout driver.InputLayout)

	SetIndexBuffer(res Resource, format driver.IndexFmt, offset int)

	SetVertexBuffers(bufs *[driver.MaxVertexAttributes]Resource, strides, offsets *[driver.MaxVertexAttributes]int)

	SetConstantBuffers(stage driver.Stage, bufs *[driver.MaxConstantBuffers]Resource)

	SetShaderResources(stage driver.Stage, views *[driver.MaxResourceViews]driver.ShaderResourceView)

	SetSamplers(stage driver.Stage, samplers *[driver.MaxSamplers]driver.Sampler)

	SetRenderTargets(colors *[driver.MaxColorTargets]driver.RenderTargetView, ds driver.DepthStencilView)

	SetPrimitiveTopology(topology driver.Topology)

	SetViewports(vp driver.Viewport)

	SetScissorRects(rect driver.Scissor)

	SetRasterizerState(state driver.RasterizerState)

	SetDepthStencilState(state driver.DepthStencilState, stencilRef uint32)

	SetBlendState(state driver.BlendState, blendColor [4]float32, sampleMask uint32)

	// UpdateSubresource performs a driver-mediated copy of
	// data into the sub-region of the given subresource
	// addressed by box. It never touches CPU-visible
	// memory. Pitches follow the native convention of the
	// update path that computed them.
	UpdateSubresource(res Resource, subresource int, box Box, data []byte, rowPitch, depthPitch int) error

	// Map acquires a temporary CPU pointer over the whole
	// subresource. With discard set, prior contents are
	// undefined until rewritten.
	Map(res Resource, subresource int, discard bool) ([]byte, error)

	// Unmap releases a pointer acquired by Map.
	Unmap(res Resource, subresource int)

	GenerateMips(view driver.ShaderResourceView)

	ClearRenderTarget(view driver.RenderTargetView, color [4]float32)

	ClearDepthStencil(view driver.DepthStencilView, flags driver.ClearFlags, depth float32, stencil uint8)

	Draw(vertCount, baseVert int)

	DrawInstanced(vertCount, instCount, baseVert, baseInst int)

	DrawIndexed(idxCount, baseIdx, baseVert int)

	DrawIndexedInstanced(idxCount, instCount, baseIdx, baseVert, baseInst int)
}

// Copyright 2026 The gfx Authors. All rights reserved.

package dx11

import (
	"fmt"
	"testing"

	"github.com/Bastacyclop/gfx/driver"
)

// tRes is a recording native resource.
type tRes struct {
	name     string
	released bool
}

func (r *tRes) Release() { r.released = true }

// tShader is a recording native shader.
type tShader struct {
	name     string
	released bool
}

func (s *tShader) Release() { s.released = true }

// tCtx records every context call in order. Map hands out
// the mem slice so tests can check what a mapped write
// stored.
type tCtx struct {
	calls []string

	mem        []byte
	mapDiscard bool
	mapErr     error

	updateRes   Resource
	updateSub   int
	updateBox   Box
	updateData  []byte
	updatePitch [2]int
	updateErr   error
}

func (c *tCtx) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *tCtx) SetShaders(vs, hs, ds, gs, ps Shader) {
	c.record("SetShaders(%v,%v,%v,%v,%v)", sname(vs), sname(hs), sname(ds), sname(gs), sname(ps))
}

func sname(s Shader) string {
	if s == nil {
		return "-"
	}
	return s.(*tShader).name
}

func (c *tCtx) SetInputLayout(layout driver.InputLayout) { c.record("SetInputLayout") }

func (c *tCtx) SetIndexBuffer(res Resource, format driver.IndexFmt, offset int) {
	c.record("SetIndexBuffer(%s,%d,%d)", res.(*tRes).name, format, offset)
}

func (c *tCtx) SetVertexBuffers(bufs *[driver.MaxVertexAttributes]Resource, strides, offsets *[driver.MaxVertexAttributes]int) {
	n := 0
	for _, b := range bufs {
		if b != nil {
			n++
		}
	}
	c.record("SetVertexBuffers(%d)", n)
}

func (c *tCtx) SetConstantBuffers(stage driver.Stage, bufs *[driver.MaxConstantBuffers]Resource) {
	n := 0
	for _, b := range bufs {
		if b != nil {
			n++
		}
	}
	c.record("SetConstantBuffers(%s,%d)", stage, n)
}

func (c *tCtx) SetShaderResources(stage driver.Stage, views *[driver.MaxResourceViews]driver.ShaderResourceView) {
	c.record("SetShaderResources(%s)", stage)
}

func (c *tCtx) SetSamplers(stage driver.Stage, samplers *[driver.MaxSamplers]driver.Sampler) {
	c.record("SetSamplers(%s)", stage)
}

func (c *tCtx) SetRenderTargets(colors *[driver.MaxColorTargets]driver.RenderTargetView, ds driver.DepthStencilView) {
	c.record("SetRenderTargets")
}

func (c *tCtx) SetPrimitiveTopology(topology driver.Topology) {
	c.record("SetPrimitiveTopology(%d)", topology)
}

func (c *tCtx) SetViewports(vp driver.Viewport)   { c.record("SetViewports") }
func (c *tCtx) SetScissorRects(r driver.Scissor)  { c.record("SetScissorRects") }
func (c *tCtx) SetRasterizerState(s driver.RasterizerState) {
	c.record("SetRasterizerState")
}

func (c *tCtx) SetDepthStencilState(s driver.DepthStencilState, ref uint32) {
	c.record("SetDepthStencilState(%d)", ref)
}

func (c *tCtx) SetBlendState(s driver.BlendState, color [4]float32, mask uint32) {
	c.record("SetBlendState(%#x)", mask)
}

func (c *tCtx) UpdateSubresource(res Resource, subresource int, box Box, data []byte, rowPitch, depthPitch int) error {
	c.record("UpdateSubresource(%s,%d)", res.(*tRes).name, subresource)
	c.updateRes = res
	c.updateSub = subresource
	c.updateBox = box
	c.updateData = append([]byte(nil), data...)
	c.updatePitch = [2]int{rowPitch, depthPitch}
	return c.updateErr
}

func (c *tCtx) Map(res Resource, subresource int, discard bool) ([]byte, error) {
	c.record("Map(%s,%d,%t)", res.(*tRes).name, subresource, discard)
	if c.mapErr != nil {
		return nil, c.mapErr
	}
	c.mapDiscard = discard
	return c.mem, nil
}

func (c *tCtx) Unmap(res Resource, subresource int) {
	c.record("Unmap(%s,%d)", res.(*tRes).name, subresource)
}

func (c *tCtx) GenerateMips(view driver.ShaderResourceView) { c.record("GenerateMips") }

func (c *tCtx) ClearRenderTarget(view driver.RenderTargetView, color [4]float32) {
	c.record("ClearRenderTarget")
}

func (c *tCtx) ClearDepthStencil(view driver.DepthStencilView, flags driver.ClearFlags, depth float32, stencil uint8) {
	c.record("ClearDepthStencil(%d)", flags)
}

func (c *tCtx) Draw(vertCount, baseVert int) {
	c.record("Draw(%d,%d)", vertCount, baseVert)
}

func (c *tCtx) DrawInstanced(vertCount, instCount, baseVert, baseInst int) {
	c.record("DrawInstanced(%d,%d,%d,%d)", vertCount, instCount, baseVert, baseInst)
}

func (c *tCtx) DrawIndexed(idxCount, baseIdx, baseVert int) {
	c.record("DrawIndexed(%d,%d,%d)", idxCount, baseIdx, baseVert)
}

func (c *tCtx) DrawIndexedInstanced(idxCount, instCount, baseIdx, baseVert, baseInst int) {
	c.record("DrawIndexedInstanced(%d,%d,%d,%d,%d)", idxCount, instCount, baseIdx, baseVert, baseInst)
}

// tSink records diagnostic events and restores the previous
// sink when the test ends.
type tSink struct {
	events []driver.Event
}

func (s *tSink) Emit(e driver.Event) { s.events = append(s.events, e) }

func captureEvents(t *testing.T) *tSink {
	t.Helper()
	sink := &tSink{}
	prev := driver.Events
	driver.Events = sink
	t.Cleanup(func() { driver.Events = prev })
	return sink
}

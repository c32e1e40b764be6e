// Copyright 2026 The gfx Authors. All rights reserved.

package dx11

import (
	"fmt"

	"github.com/Bastacyclop/gfx/driver"
)

// Process translates one abstract command into the native
// context calls for its state slot. The interpreter keeps
// no state across commands; whatever the context retains is
// the only cross-command state. Failures of best-effort
// commands are reported as diagnostic events and do not
// stop the caller from processing the next command.
func Process(ctx Context, cmd driver.Command, data *driver.DataBuffer) {
	switch c := cmd.(type) {
	case driver.BindProgram:
		prog := c.Prog.(*Program)
		ctx.SetShaders(prog.VS, prog.HS, prog.DS, prog.GS, prog.PS)
	case driver.BindInputLayout:
		ctx.SetInputLayout(c.Layout)
	case driver.BindIndex:
		ctx.SetIndexBuffer(c.Buf.(*Buffer).res, c.Format, 0)
	case driver.BindVertexBuffers:
		var bufs [driver.MaxVertexAttributes]Resource
		for i, b := range c.Bufs {
			if b != nil {
				bufs[i] = b.(*Buffer).res
			}
		}
		ctx.SetVertexBuffers(&bufs, &c.Strides, &c.Offsets)
	case driver.BindConstantBuffers:
		var bufs [driver.MaxConstantBuffers]Resource
		for i, b := range c.Bufs {
			if b != nil {
				bufs[i] = b.(*Buffer).res
			}
		}
		ctx.SetConstantBuffers(c.Stage, &bufs)
	case driver.BindShaderResources:
		ctx.SetShaderResources(c.Stage, &c.Views)
	case driver.BindSamplers:
		ctx.SetSamplers(c.Stage, &c.Samplers)
	case driver.BindPixelTargets:
		ctx.SetRenderTargets(&c.Colors, c.DS)
	case driver.SetPrimitive:
		ctx.SetPrimitiveTopology(c.Topology)
	case driver.SetViewport:
		ctx.SetViewports(c.Viewport)
	case driver.SetScissor:
		ctx.SetScissorRects(c.Rect)
	case driver.SetRasterizer:
		ctx.SetRasterizerState(c.State)
	case driver.SetDepthStencil:
		ctx.SetDepthStencilState(c.State, c.Ref)
	case driver.SetBlend:
		ctx.SetBlendState(c.State, c.Color, c.Mask)
	case driver.UpdateBuffer:
		UpdateBuffer(ctx, c.Buf.(*Buffer), data.Get(c.Data), c.Offset)
	case driver.UpdateTexture:
		UpdateTexture(ctx, c.Tex.(*Texture), c.Kind, c.Face, data.Get(c.Data), c.Image)
	case driver.GenerateMips:
		ctx.GenerateMips(c.View)
	case driver.ClearColor:
		ctx.ClearRenderTarget(c.Target, c.Color)
	case driver.ClearDepthStencil:
		ctx.ClearDepthStencil(c.Target, c.Flags, c.Depth, c.Stencil)
	case driver.Draw:
		ctx.Draw(c.VertCount, c.BaseVert)
	case driver.DrawInstanced:
		ctx.DrawInstanced(c.VertCount, c.InstCount, c.BaseVert, c.BaseInst)
	case driver.DrawIndexed:
		ctx.DrawIndexed(c.IdxCount, c.BaseIdx, c.BaseVert)
	case driver.DrawIndexedInstanced:
		ctx.DrawIndexedInstanced(c.IdxCount, c.InstCount, c.BaseIdx, c.BaseVert, c.BaseInst)
	default:
		panic(fmt.Sprintf("gfx: unknown command %T", cmd))
	}
}

// Replay processes a pre-recorded command stream in order.
// Resource handles referenced by cmds must outlive the
// call.
func Replay(ctx Context, cmds []driver.Command, data *driver.DataBuffer) {
	for _, cmd := range cmds {
		Process(ctx, cmd, data)
	}
}

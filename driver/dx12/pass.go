// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"github.com/Bastacyclop/gfx/driver"
)

// RenderPass records attachment formats and subpass
// structure for pipeline creation. The native API has no
// render pass object; the description only constrains the
// pipelines built against it.
type RenderPass struct {
	attachments []driver.Attachment
	subpasses   []driver.SubpassDesc
}

// NewRenderPass creates a render pass description.
func (d *Device) NewRenderPass(attachments []driver.Attachment, subpasses []driver.SubpassDesc) *RenderPass {
	rp := &RenderPass{
		attachments: make([]driver.Attachment, len(attachments)),
		subpasses:   make([]driver.SubpassDesc, len(subpasses)),
	}
	copy(rp.attachments, attachments)
	for i, sp := range subpasses {
		rp.subpasses[i] = driver.SubpassDesc{
			ColorAttachments: append([]int(nil), sp.ColorAttachments...),
			DSAttachment:     sp.DSAttachment,
		}
	}
	return rp
}

// Destroy fails loudly; render pass destruction is not
// implemented in this backend generation.
func (rp *RenderPass) Destroy() {
	panic("gfx: render pass destruction not implemented")
}

// Framebuffer groups the target views a render pass
// instance draws into.
type Framebuffer struct {
	colors []*RTV
	depth  *DSV
}

// NewFramebuffer creates a framebuffer over the given
// views. The color count must match the pass' subpass
// layout; this is not validated here.
func (d *Device) NewFramebuffer(rp *RenderPass, colors []*RTV, depth *DSV) *Framebuffer {
	return &Framebuffer{
		colors: append([]*RTV(nil), colors...),
		depth:  depth,
	}
}

// Colors returns the framebuffer's color target views.
func (f *Framebuffer) Colors() []*RTV { return f.colors }

// Depth returns the framebuffer's depth/stencil view, or
// nil.
func (f *Framebuffer) Depth() *DSV { return f.depth }

// Destroy drops the framebuffer. The views it references
// are unaffected.
func (f *Framebuffer) Destroy() {
	if f == nil {
		return
	}
	*f = Framebuffer{}
}

// Copyright 2026 The gfx Authors. All rights reserved.

package driver

// Command is one element of a pre-recorded command stream.
// The set of variants is closed; an external recorder
// produces Command values and a back end replays them in
// stream order. Commands reference resources by handle and
// raw update bytes by DataPointer into a side DataBuffer.
type Command interface {
	isCommand()
}

// DataPointer addresses a byte range inside a DataBuffer.
type DataPointer struct {
	Offset int
	Size   int
}

// DataBuffer is an append-only arena holding the raw bytes
// of update commands recorded alongside a command stream.
// It is owned by the recorder and passed by reference to
// replay; it is not safe for concurrent use.
type DataBuffer struct {
	buf []byte
}

// Add appends data to the buffer and returns a pointer
// addressing the stored copy.
func (b *DataBuffer) Add(data []byte) DataPointer {
	off := len(b.buf)
	b.buf = append(b.buf, data...)
	return DataPointer{Offset: off, Size: len(data)}
}

// Get returns the bytes addressed by ptr.
// The returned slice aliases the arena and is valid until
// the next Reset.
func (b *DataBuffer) Get(ptr DataPointer) []byte {
	return b.buf[ptr.Offset : ptr.Offset+ptr.Size]
}

// Size returns the number of bytes stored.
func (b *DataBuffer) Size() int { return len(b.buf) }

// Reset discards all stored bytes, invalidating every
// DataPointer handed out so far.
func (b *DataBuffer) Reset() { b.buf = b.buf[:0] }

// BindProgram binds all programmable stages of a program
// at once. Stages absent from the program are unbound.
type BindProgram struct {
	Prog Program
}

// BindInputLayout binds a vertex input layout.
type BindInputLayout struct {
	Layout InputLayout
}

// BindIndex binds the index buffer.
type BindIndex struct {
	Buf    Buffer
	Format IndexFmt
}

// BindVertexBuffers binds the full vertex buffer slot
// range. Unused slots must hold nil handles.
type BindVertexBuffers struct {
	Bufs    [MaxVertexAttributes]Buffer
	Strides [MaxVertexAttributes]int
	Offsets [MaxVertexAttributes]int
}

// BindConstantBuffers binds the full constant buffer slot
// range of one stage. Unused slots must hold nil handles.
type BindConstantBuffers struct {
	Stage Stage
	Bufs  [MaxConstantBuffers]Buffer
}

// BindShaderResources binds the full shader resource view
// slot range of one stage.
type BindShaderResources struct {
	Stage Stage
	Views [MaxResourceViews]ShaderResourceView
}

// BindSamplers binds the full sampler slot range of one
// stage.
type BindSamplers struct {
	Stage    Stage
	Samplers [MaxSamplers]Sampler
}

// BindPixelTargets binds the full render target slot range
// plus the depth/stencil target.
type BindPixelTargets struct {
	Colors [MaxColorTargets]RenderTargetView
	DS     DepthStencilView
}

// SetPrimitive sets the primitive topology.
type SetPrimitive struct {
	Topology Topology
}

// SetViewport sets the viewport bounds.
type SetViewport struct {
	Viewport Viewport
}

// SetScissor sets the scissor rectangle.
type SetScissor struct {
	Rect Scissor
}

// SetRasterizer binds a rasterizer state object.
type SetRasterizer struct {
	State RasterizerState
}

// SetDepthStencil binds a depth/stencil state object with
// the given stencil reference value.
type SetDepthStencil struct {
	State DepthStencilState
	Ref   uint32
}

// SetBlend binds a blend state object with the given
// constant color and sample mask.
type SetBlend struct {
	State BlendState
	Color [4]float32
	Mask  uint32
}

// UpdateBuffer writes bytes into a buffer starting at
// Offset. The payload lives in the stream's DataBuffer.
type UpdateBuffer struct {
	Buf    Buffer
	Data   DataPointer
	Offset int
}

// UpdateTexture writes bytes into a sub-region of one
// texture subresource. The payload lives in the stream's
// DataBuffer.
type UpdateTexture struct {
	Tex   Texture
	Kind  TexKind
	Face  CubeFace
	Data  DataPointer
	Image SubImage
}

// GenerateMips generates the mip chain of the texture
// viewed by View.
type GenerateMips struct {
	View ShaderResourceView
}

// ClearColor clears a render target to a constant color.
type ClearColor struct {
	Target RenderTargetView
	Color  [4]float32
}

// ClearDepthStencil clears the selected aspects of a
// depth/stencil target.
type ClearDepthStencil struct {
	Target  DepthStencilView
	Flags   ClearFlags
	Depth   float32
	Stencil uint8
}

// Draw draws non-indexed, non-instanced primitives.
type Draw struct {
	VertCount int
	BaseVert  int
}

// DrawInstanced draws non-indexed, instanced primitives.
type DrawInstanced struct {
	VertCount int
	InstCount int
	BaseVert  int
	BaseInst  int
}

// DrawIndexed draws indexed, non-instanced primitives.
type DrawIndexed struct {
	IdxCount int
	BaseIdx  int
	BaseVert int
}

// DrawIndexedInstanced draws indexed, instanced primitives.
type DrawIndexedInstanced struct {
	IdxCount  int
	InstCount int
	BaseIdx   int
	BaseVert  int
	BaseInst  int
}

func (BindProgram) isCommand()          {}
func (BindInputLayout) isCommand()      {}
func (BindIndex) isCommand()            {}
func (BindVertexBuffers) isCommand()    {}
func (BindConstantBuffers) isCommand()  {}
func (BindShaderResources) isCommand()  {}
func (BindSamplers) isCommand()         {}
func (BindPixelTargets) isCommand()     {}
func (SetPrimitive) isCommand()         {}
func (SetViewport) isCommand()          {}
func (SetScissor) isCommand()           {}
func (SetRasterizer) isCommand()        {}
func (SetDepthStencil) isCommand()      {}
func (SetBlend) isCommand()             {}
func (UpdateBuffer) isCommand()         {}
func (UpdateTexture) isCommand()        {}
func (GenerateMips) isCommand()         {}
func (ClearColor) isCommand()           {}
func (ClearDepthStencil) isCommand()    {}
func (Draw) isCommand()                 {}
func (DrawInstanced) isCommand()        {}
func (DrawIndexed) isCommand()          {}
func (DrawIndexedInstanced) isCommand() {}

// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"github.com/Bastacyclop/gfx/driver"
)

// Placed resources start at 64 KiB boundaries.
const placementAlignment = 64 << 10

// UnboundBuffer is a buffer that has been described but not
// yet backed by heap memory. It holds no native object; only
// binding materializes one.
type UnboundBuffer struct {
	desc   ResourceDesc
	reqs   driver.Requirements
	size   int64
	stride int
	usg    driver.Usage
	bound  bool
}

// NewUnboundBuffer describes a buffer of the given byte size
// without allocating it. Stride is the element stride used
// by structured views, or zero.
func (d *Device) NewUnboundBuffer(size int64, stride int, usg driver.Usage) *UnboundBuffer {
	desc := ResourceDesc{
		Dimension:        DimBuffer,
		Width:            size,
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           FormatUnknown,
		SampleCount:      1,
		Layout:           LayoutRowMajor,
	}
	sz, al := d.api.ResourceAllocationInfo(&desc)
	if al < placementAlignment {
		al = placementAlignment
	}
	return &UnboundBuffer{
		desc:   desc,
		reqs:   driver.Requirements{Size: sz, Alignment: al},
		size:   size,
		stride: stride,
		usg:    usg,
	}
}

// Requirements returns the memory needed to back the buffer.
func (u *UnboundBuffer) Requirements() driver.Requirements { return u.reqs }

// BindBufferMemory places the described buffer at the given
// offset of heap, consuming the unbound description. A
// description can be bound at most once.
func (d *Device) BindBufferMemory(u *UnboundBuffer, heap *Heap, offset int64) (*Buffer, error) {
	if u.bound {
		return nil, ErrAlreadyBound
	}
	if offset+u.reqs.Size > heap.size {
		return nil, ErrOutOfHeap
	}
	res, err := d.api.CreatePlacedResource(heap.raw, offset, &u.desc, heap.defaultState)
	if err != nil {
		return nil, err
	}
	u.bound = true
	return &Buffer{
		dev:    d,
		res:    res,
		size:   u.size,
		stride: u.stride,
		usg:    u.usg,
	}, nil
}

// Buffer is a placed buffer resource.
// It implements driver.Buffer.
type Buffer struct {
	dev    *Device
	res    NativeResource
	size   int64
	stride int
	usg    driver.Usage
}

// Usage returns the buffer's usage tag.
func (b *Buffer) Usage() driver.Usage { return b.usg }

// Size returns the byte size the buffer was described with.
func (b *Buffer) Size() int64 { return b.size }

// Resource returns the native buffer object.
func (b *Buffer) Resource() NativeResource { return b.res }

// Mapping is an open buffer mapping. It must be released
// explicitly; dropping it leaves the buffer mapped.
type Mapping struct {
	buf *Buffer
}

// Release unmaps the buffer the mapping came from.
func (m *Mapping) Release() {
	if m.buf == nil {
		return
	}
	m.buf.dev.api.Unmap(m.buf.res)
	*m = Mapping{}
}

// WriteMapping maps the byte range [offset, offset+size) for
// writing and returns the mapped bytes together with the
// mapping to release afterwards. Ranges outside the buffer
// fail with ErrOutOfBounds before touching the resource.
func (b *Buffer) WriteMapping(offset, size int64) ([]byte, *Mapping, error) {
	if offset < 0 || size < 0 || offset+size > b.size {
		return nil, nil, ErrOutOfBounds
	}
	p, err := b.dev.api.Map(b.res, offset, offset+size)
	if err != nil {
		return nil, nil, err
	}
	return p, &Mapping{buf: b}, nil
}

// ReadMapping fails loudly; read mappings are not
// implemented in this backend generation.
func (b *Buffer) ReadMapping(offset, size int64) ([]byte, *Mapping, error) {
	panic("gfx: read mappings not implemented")
}

// WriteBytes maps the byte range [offset, offset+len(data)),
// copies data into it and unmaps.
func (b *Buffer) WriteBytes(offset int64, data []byte) error {
	p, m, err := b.WriteMapping(offset, int64(len(data)))
	if err != nil {
		return err
	}
	copy(p, data)
	m.Release()
	return nil
}

// Destroy releases the native buffer. The heap backing it is
// untouched.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	if b.res != nil {
		b.res.Release()
	}
	*b = Buffer{}
}

// UnboundImage is an image that has been described but not
// yet backed by heap memory.
type UnboundImage struct {
	desc   ResourceDesc
	reqs   driver.Requirements
	kind   driver.TexKind
	format driver.Format
	levels int
	usg    driver.Usage
	bound  bool
}

// NewUnboundImage describes an image without allocating it.
// Formats without a native counterpart fail with a
// *FormatError.
func (d *Device) NewUnboundImage(kind driver.TexKind, levels int, format driver.Format, usg driver.Usage) (*UnboundImage, error) {
	nf, err := convFormat(format)
	if err != nil {
		return nil, err
	}
	desc := ResourceDesc{
		Alignment:   placementAlignment,
		Width:       int64(kind.Width),
		Height:      kind.Height,
		MipLevels:   levels,
		Format:      nf,
		SampleCount: kind.Samples,
		Layout:      LayoutUnknown,
	}
	switch kind.Dim {
	case driver.Tex1D:
		desc.Dimension = DimTexture1D
		desc.DepthOrArraySize = kind.Layers
	case driver.Tex2D:
		desc.Dimension = DimTexture2D
		desc.DepthOrArraySize = kind.Layers
	case driver.Tex3D:
		desc.Dimension = DimTexture3D
		desc.DepthOrArraySize = kind.Depth
	case driver.TexCube:
		// Cube images are 2D arrays of six faces per layer.
		desc.Dimension = DimTexture2D
		desc.DepthOrArraySize = 6 * kind.Layers
	}
	if desc.DepthOrArraySize < 1 {
		desc.DepthOrArraySize = 1
	}
	if desc.SampleCount < 1 {
		desc.SampleCount = 1
	}
	sz, al := d.api.ResourceAllocationInfo(&desc)
	return &UnboundImage{
		desc:   desc,
		reqs:   driver.Requirements{Size: sz, Alignment: al},
		kind:   kind,
		format: format,
		levels: levels,
		usg:    usg,
	}, nil
}

// Requirements returns the memory needed to back the image.
func (u *UnboundImage) Requirements() driver.Requirements { return u.reqs }

// BindImageMemory places the described image at the given
// offset of heap, consuming the unbound description. A
// description can be bound at most once.
func (d *Device) BindImageMemory(u *UnboundImage, heap *Heap, offset int64) (*Texture, error) {
	if u.bound {
		return nil, ErrAlreadyBound
	}
	if offset+u.reqs.Size > heap.size {
		return nil, ErrOutOfHeap
	}
	res, err := d.api.CreatePlacedResource(heap.raw, offset, &u.desc, heap.defaultState)
	if err != nil {
		return nil, err
	}
	u.bound = true
	return &Texture{
		dev:    d,
		res:    res,
		kind:   u.kind,
		format: u.format,
		levels: u.levels,
		usg:    u.usg,
	}, nil
}

// Texture is a placed image resource.
// It implements driver.Texture.
type Texture struct {
	dev    *Device
	res    NativeResource
	kind   driver.TexKind
	format driver.Format
	levels int
	usg    driver.Usage
}

// Usage returns the texture's usage tag.
func (t *Texture) Usage() driver.Usage { return t.usg }

// Kind returns the texture's shape.
func (t *Texture) Kind() driver.TexKind { return t.kind }

// Format returns the texture's format.
func (t *Texture) Format() driver.Format { return t.format }

// Resource returns the native image object.
func (t *Texture) Resource() NativeResource { return t.res }

// Destroy releases the native image. Views created from the
// texture keep their descriptor slots but must not be used
// afterwards.
func (t *Texture) Destroy() {
	if t == nil {
		return
	}
	if t.res != nil {
		t.res.Release()
	}
	*t = Texture{}
}

// RTV is a render target view backed by one descriptor slot.
// It implements driver.RenderTargetView.
type RTV struct {
	handle CPUHandle
	format DXGIFormat
}

// Handle returns the view's descriptor address.
func (v *RTV) Handle() CPUHandle { return v.handle }

// NewRenderTargetView creates a color target view of one mip
// level of t. Only 2D textures are supported.
func (d *Device) NewRenderTargetView(t *Texture, mip int) (*RTV, error) {
	if t.kind.Dim != driver.Tex2D {
		panic("gfx: render target views of non-2D images not implemented")
	}
	if t.kind.Multisampled() {
		panic("gfx: render target views of multi-sample images not implemented")
	}
	nf, err := convFormat(t.format)
	if err != nil {
		return nil, err
	}
	cpu, _ := d.rtvs.allocHandles(1)
	d.api.CreateRenderTargetView(t.res, &RenderTargetViewDesc{
		Format:    nf,
		Dimension: RtvTexture2D,
		MipSlice:  mip,
	}, cpu)
	return &RTV{handle: cpu, format: nf}, nil
}

// DSV is a depth/stencil view backed by one descriptor slot.
// It implements driver.DepthStencilView.
type DSV struct {
	handle CPUHandle
	format DXGIFormat
}

// Handle returns the view's descriptor address.
func (v *DSV) Handle() CPUHandle { return v.handle }

// NewDepthStencilView creates a depth/stencil view of one
// mip level of t. Only 2D textures are supported.
func (d *Device) NewDepthStencilView(t *Texture, mip int, readOnly bool) (*DSV, error) {
	if t.kind.Dim != driver.Tex2D {
		panic("gfx: depth/stencil views of non-2D images not implemented")
	}
	if t.kind.Multisampled() {
		panic("gfx: depth/stencil views of multi-sample images not implemented")
	}
	nf, err := convFormat(t.format)
	if err != nil {
		return nil, err
	}
	cpu, _ := d.dsvs.allocHandles(1)
	d.api.CreateDepthStencilView(t.res, &DepthStencilViewDesc{
		Format:    nf,
		Dimension: DsvTexture2D,
		MipSlice:  mip,
		ReadOnly:  readOnly,
	}, cpu)
	return &DSV{handle: cpu, format: nf}, nil
}

// SRV is a shader resource view backed by one shader-visible
// descriptor slot.
// It implements driver.ShaderResourceView.
type SRV struct {
	cpu CPUHandle
	gpu GPUHandle
}

// GPUHandle returns the view's shader-visible descriptor
// address.
func (v *SRV) GPUHandle() GPUHandle { return v.gpu }

// NewShaderResourceView creates a shader read view covering
// all mip levels of t.
func (d *Device) NewShaderResourceView(t *Texture) (*SRV, error) {
	if t.kind.Multisampled() {
		panic("gfx: shader resource views of multi-sample images not implemented")
	}
	var dim SRVDimension
	switch t.kind.Dim {
	case driver.Tex1D:
		dim = SrvTexture1D
	case driver.Tex2D:
		dim = SrvTexture2D
	case driver.Tex3D:
		dim = SrvTexture3D
	default:
		panic("gfx: cube shader resource views not implemented")
	}
	nf, err := convFormat(t.format)
	if err != nil {
		return nil, err
	}
	cpu, gpu := d.srvs.allocHandles(1)
	d.api.CreateShaderResourceView(t.res, &ShaderResourceViewDesc{
		Format:    nf,
		Dimension: dim,
		MipLevels: -1,
	}, cpu)
	return &SRV{cpu: cpu, gpu: gpu}, nil
}

// NewUnorderedAccessView fails loudly; storage views are not
// implemented in this backend generation.
func (d *Device) NewUnorderedAccessView(t *Texture, mip int) (*SRV, error) {
	panic("gfx: unordered access views not implemented")
}

// NewConstantBufferView fails loudly; constant buffer views
// are not implemented in this backend generation.
func (d *Device) NewConstantBufferView(b *Buffer) (*SRV, error) {
	panic("gfx: constant buffer views not implemented")
}

// Copyright 2026 The gfx Authors. All rights reserved.

package driver

// Destroyer is the interface that wraps the Destroy method.
// Types that implement this interface may own native objects
// that are not managed by GC, so Destroy must be called
// explicitly to ensure such objects are released.
type Destroyer interface {
	Destroy()
}

// Access is a mask of CPU access capabilities for a
// CPU-accessible resource.
type Access int

// Access flags.
const (
	Read Access = 1 << iota
	Write
	ReadWrite Access = 1<<iota - 1
)

// MapMode selects the mapping behavior of persistently
// mapped resources.
type MapMode int

// Mapping modes.
const (
	MapReadable MapMode = iota
	MapWritable
	MapRW
)

// UsageKind discriminates the Usage variants.
type UsageKind int

// Usage kinds.
const (
	// The resource is written once at creation and never
	// updated afterwards.
	KindImmutable UsageKind = iota
	// The resource lives in device memory and is updated
	// through driver-mediated subresource copies.
	KindGpuOnly
	// The resource is updated frequently from the CPU via
	// discard mapping.
	KindDynamic
	// The resource is CPU accessible with the access mask
	// given at creation.
	KindCpuOnly
	// The resource is kept mapped for its whole lifetime.
	KindPersistent
)

// Usage describes how a resource's contents may be accessed
// and updated. It is fixed for the resource's lifetime and
// gates which update strategy is legal.
type Usage struct {
	Kind UsageKind
	// Access is meaningful for KindCpuOnly only.
	Access Access
	// Mapping is meaningful for KindPersistent only.
	Mapping MapMode
}

// Usage constructors for the variants that carry no payload.
var (
	Immutable = Usage{Kind: KindImmutable}
	GpuOnly   = Usage{Kind: KindGpuOnly}
	Dynamic   = Usage{Kind: KindDynamic}
)

// CpuOnly returns a CPU-accessible usage with the given
// access mask.
func CpuOnly(a Access) Usage { return Usage{Kind: KindCpuOnly, Access: a} }

// Persistent returns a persistently mapped usage with the
// given mapping mode.
func Persistent(m MapMode) Usage { return Usage{Kind: KindPersistent, Mapping: m} }

// CanUpdate returns whether resources with usage u accept
// updates at all. Immutable resources and CPU read-only
// resources do not.
func (u Usage) CanUpdate() bool {
	switch u.Kind {
	case KindImmutable:
		return false
	case KindCpuOnly:
		return u.Access&Write != 0
	}
	return true
}

// Surface describes the memory layout of one texel,
// independently of how its channels are interpreted.
type Surface int

// Surface types.
const (
	R8 Surface = iota
	R8G8
	R8G8B8A8
	B8G8R8A8
	R16
	R16G16
	R16G16B16A16
	R32
	R32G32
	R32G32B32
	R32G32B32A32
	D16
	D24S8
	D32
)

// BitsPerTexel returns the total number of bits in one
// texel of surface s.
func (s Surface) BitsPerTexel() int {
	switch s {
	case R8:
		return 8
	case R8G8, R16, D16:
		return 16
	case R8G8B8A8, B8G8R8A8, R16G16, R32, D24S8, D32:
		return 32
	case R16G16B16A16, R32G32:
		return 64
	case R32G32B32:
		return 96
	case R32G32B32A32:
		return 128
	}
	return 0
}

// Channel describes how the channels of a surface are
// interpreted by shaders.
type Channel int

// Channel types.
const (
	Int Channel = iota
	Uint
	Inorm
	Unorm
	Float
	Srgb
)

// Format pairs a surface layout with a channel
// interpretation. Back ends translate it to their native
// format vocabulary; combinations without a native
// counterpart are configuration errors.
type Format struct {
	Surface Surface
	Channel Channel
}

// TexDim is the dimensionality of a texture.
type TexDim int

// Texture dimensionalities.
const (
	Tex1D TexDim = iota
	Tex2D
	Tex3D
	TexCube
)

// TexKind describes the shape of a texture: dimensionality,
// extents, array layers and sample count.
type TexKind struct {
	Dim     TexDim
	Width   int
	Height  int
	Depth   int
	Layers  int
	Samples int
}

// Multisampled returns whether the kind describes a
// multisampled texture.
func (k TexKind) Multisampled() bool { return k.Samples > 1 }

// LevelDimensions returns the extents of the given mip
// level. Each extent is halved per level and clamped to 1.
func (k TexKind) LevelDimensions(level int) (width, height, depth int) {
	width, height, depth = k.Width, k.Height, k.Depth
	for ; level > 0; level-- {
		if width > 1 {
			width >>= 1
		}
		if height > 1 {
			height >>= 1
		}
		if depth > 1 {
			depth >>= 1
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if depth < 1 {
		depth = 1
	}
	return
}

// CubeFace identifies one face of a cube texture.
// The zero value means "not a cube face".
type CubeFace int

// Cube faces, in canonical slice order.
const (
	FaceNone CubeFace = iota
	FacePosX
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// Slice returns the array slice a face maps to.
func (f CubeFace) Slice() int {
	if f == FaceNone {
		return 0
	}
	return int(f) - 1
}

// SubImage addresses a sub-region of one texture
// subresource for partial updates. Offsets and extents are
// in texels.
type SubImage struct {
	XOffset int
	YOffset int
	ZOffset int
	Width   int
	Height  int
	Depth   int
	// Mipmap selects the mip level being written.
	Mipmap int
	Format Format
}

// Stage identifies one programmable pipeline stage.
type Stage int

// Programmable stages.
const (
	StageVertex Stage = iota
	StageHull
	StageDomain
	StageGeometry
	StagePixel
	StageCompute
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageHull:
		return "hull"
	case StageDomain:
		return "domain"
	case StageGeometry:
		return "geometry"
	case StagePixel:
		return "pixel"
	case StageCompute:
		return "compute"
	}
	return "unknown"
}

// StageFlags is a mask of programmable stages, used for
// descriptor visibility.
type StageFlags int

// Stage masks.
const (
	SVertex StageFlags = 1 << iota
	SHull
	SDomain
	SGeometry
	SPixel
	SCompute
	SAll StageFlags = 1<<iota - 1
)

// Per-stage binding-slot maxima. Binding commands always
// rebind the full slot range of their category; callers
// express partial binds by zeroing unused slots in the
// handle array.
const (
	MaxVertexAttributes = 16
	MaxConstantBuffers  = 14
	MaxResourceViews    = 128
	MaxSamplers         = 16
	MaxColorTargets     = 4
)

// Topology is the type of primitive topologies, which
// determines how vertex data is assembled.
type Topology int

// Primitive topologies.
const (
	TPoint Topology = iota
	TLine
	TLineStrip
	TTriangle
	TTriStrip
)

// IndexFmt describes the format of index buffer data.
type IndexFmt int

// Index formats.
const (
	Index16 IndexFmt = 2
	Index32 IndexFmt = 4
)

// Viewport defines the bounds of a viewport.
type Viewport struct {
	X, Y, Width, Height, Znear, Zfar float32
}

// Scissor defines a scissor rectangle.
type Scissor struct {
	X, Y, Width, Height int
}

// ClearFlags selects the aspects cleared by a
// depth/stencil clear.
type ClearFlags int

// Clear flags.
const (
	ClearDepth ClearFlags = 1 << iota
	ClearStencil
)

// CullMode determines primitive culling based on triangle
// facing direction.
type CullMode int

// Cull modes.
const (
	CNone CullMode = iota
	CFront
	CBack
)

// FillMode determines the final rasterization of triangles.
type FillMode int

// Triangle fill modes.
const (
	FFill FillMode = iota
	FLines
)

// CmpFunc is the type of comparison functions.
type CmpFunc int

// Comparison functions.
const (
	CNever CmpFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	SKeep StencilOp = iota
	SZero
	SReplace
	SIncClamp
	SDecClamp
	SInvert
	SIncWrap
	SDecWrap
)

// StencilT defines stencil test parameters for one face.
type StencilT struct {
	DSFail    [2]StencilOp
	Pass      StencilOp
	ReadMask  uint32
	WriteMask uint32
	Cmp       CmpFunc
}

// RasterState defines the rasterization state of a
// graphics pipeline.
type RasterState struct {
	// Winding order is either clockwise or counter-clockwise.
	Clockwise bool
	Cull      CullMode
	Fill      FillMode
	// DepthBias enables depth bias computation.
	DepthBias bool
	BiasValue float32
	BiasSlope float32
	BiasClamp float32
}

// DSState defines the depth/stencil state of a graphics
// pipeline.
type DSState struct {
	DepthTest   bool
	DepthWrite  bool
	DepthCmp    CmpFunc
	StencilTest bool
	Front       StencilT
	Back        StencilT
}

// BlendOp is the type of blend operations.
type BlendOp int

// Blend operations.
const (
	BAdd BlendOp = iota
	BSubtract
	BRevSubtract
	BMin
	BMax
)

// BlendFac is the type of blend factors.
type BlendFac int

// Blend factors.
const (
	BZero BlendFac = iota
	BOne
	BSrcColor
	BInvSrcColor
	BSrcAlpha
	BInvSrcAlpha
	BDstColor
	BInvDstColor
	BDstAlpha
	BInvDstAlpha
	BSrcAlphaSaturated
	BBlendColor
	BInvBlendColor
)

// ColorMask is the type of a color write mask.
type ColorMask int

// Color write masks.
const (
	CRed ColorMask = 1 << iota
	CGreen
	CBlue
	CAlpha
	CAll ColorMask = 1<<iota - 1
)

// ColorBlend defines one render target's blend parameters.
// In the arrays, [0] is for color and [1] is for alpha.
type ColorBlend struct {
	Blend     bool
	WriteMask ColorMask
	Op        [2]BlendOp
	SrcFac    [2]BlendFac
	DstFac    [2]BlendFac
}

// BlendDesc defines the color blend state of a graphics
// pipeline.
type BlendDesc struct {
	AlphaCoverage bool
	// Targets contains blend parameters per render target.
	Targets []ColorBlend
}

// VertexBufferDesc describes one vertex buffer binding.
// Rate zero means per-vertex data; a nonzero rate means
// per-instance data advancing every Rate instances.
type VertexBufferDesc struct {
	Stride int
	Rate   int
}

// VertexAttrDesc describes one vertex attribute: which
// buffer binding it is fetched from and the shader input
// location it feeds.
type VertexAttrDesc struct {
	Location int
	Binding  int
	Format   Format
	Offset   int
}

// LoadOp is the type of an attachment's load operation.
type LoadOp int

// Load operations.
const (
	LDontCare LoadOp = iota
	LClear
	LLoad
)

// StoreOp is the type of an attachment's store operation.
type StoreOp int

// Store operations.
const (
	SDontCare StoreOp = iota
	SStore
)

// Attachment describes the configuration of a single
// render target for use in a render pass.
type Attachment struct {
	Format  Format
	Samples int
	Load    [2]LoadOp
	Store   [2]StoreOp
}

// SubpassDesc defines a subpass of a render pass.
// Attachment fields hold indices into the render pass'
// attachment list; DSAttachment is -1 when the subpass has
// no depth/stencil attachment.
type SubpassDesc struct {
	ColorAttachments []int
	DSAttachment     int
}

// DescriptorType is the type of a descriptor.
type DescriptorType int

// Descriptor types.
const (
	DSampler DescriptorType = iota
	DSampledImage
	DStorageBuffer
	DStorageImage
	DConstantBuffer
)

// LayoutBinding declares one binding of a descriptor set
// layout. The order of bindings in a layout is load-bearing:
// it determines descriptor-range order in the generated
// root parameter.
type LayoutBinding struct {
	Binding int
	Type    DescriptorType
	Count   int
	Stages  StageFlags
}

// DescriptorRangeDesc sizes one descriptor type within a
// descriptor pool.
type DescriptorRangeDesc struct {
	Type  DescriptorType
	Count int
}

// Requirements describes the memory needed to back a
// resource.
type Requirements struct {
	Size      int64
	Alignment int64
}

// WaitFor selects the completion condition of a multi-fence
// wait.
type WaitFor int

// Wait conditions.
const (
	WaitAny WaitFor = iota
	WaitAll
)

// Filter is the type of sampler filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
	FAnisotropic
)

// AddrMode is the type of sampler address modes.
type AddrMode int

// Address modes.
const (
	AWrap AddrMode = iota
	AMirror
	AClamp
	ABorder
)

// Sampling describes image sampler state.
type Sampling struct {
	Min      Filter
	Mag      Filter
	Mipmap   Filter
	AddrU    AddrMode
	AddrV    AddrMode
	AddrW    AddrMode
	MaxAniso int
	// DoCmp enables the comparison function.
	DoCmp    bool
	Cmp      CmpFunc
	LODBias  float32
	MinLOD   float32
	MaxLOD   float32
	Border   [4]float32
}

// The opaque handle interfaces below are implemented by
// back-end packages. Commands reference resources through
// these handles, never by value, and the handles must
// outlive any command stream that names them.

// Buffer is an opaque reference to a native GPU buffer
// plus its usage tag.
type Buffer interface {
	Usage() Usage
}

// Texture is an opaque reference to a native GPU texture
// plus its usage tag and shape.
type Texture interface {
	Usage() Usage
	Kind() TexKind
}

// Program is an opaque set of compiled shader stages bound
// as a unit. The concrete type belongs to the back end the
// command stream targets.
type Program interface{}

// InputLayout is an opaque native vertex input layout.
type InputLayout interface{}

// RenderTargetView is an opaque view of a texture as a
// color target.
type RenderTargetView interface{}

// DepthStencilView is an opaque view of a texture as a
// depth/stencil target.
type DepthStencilView interface{}

// ShaderResourceView is an opaque view of a resource for
// shader reads.
type ShaderResourceView interface{}

// Sampler is an opaque native sampler state.
type Sampler interface{}

// RasterizerState is an opaque native rasterizer state
// object.
type RasterizerState interface{}

// DepthStencilState is an opaque native depth/stencil
// state object.
type DepthStencilState interface{}

// BlendState is an opaque native blend state object.
type BlendState interface{}

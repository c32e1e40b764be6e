// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

// Native object handles. A platform binding returns its own
// concrete types; objects that own native memory expose
// Release.

// NativeHeap is a native device memory heap.
type NativeHeap interface {
	Release()
}

// NativeResource is a native placed buffer or image.
type NativeResource interface {
	Release()
}

// NativeDescHeap is a native descriptor heap.
type NativeDescHeap interface {
	Release()
}

// NativeRootSignature is a native root signature.
type NativeRootSignature interface {
	Release()
}

// NativePipeline is a native pipeline state object.
type NativePipeline interface {
	Release()
}

// NativeFence is a native monotonic fence counter.
type NativeFence interface {
	Release()
}

// Blob is a serialized native byte blob.
type Blob interface {
	Bytes() []byte
	Release()
}

// NativeEvent is an OS wait handle armed by fence
// completion. Events are pooled by the device and live
// until the device is closed.
type NativeEvent interface{}

// CPUHandle is a CPU-side descriptor address.
type CPUHandle uint64

// GPUHandle is a GPU-visible descriptor address.
type GPUHandle uint64

// DXGIFormat is the native pixel format vocabulary.
type DXGIFormat uint32

// Native formats. Only the subset the HAL can produce is
// enumerated.
const (
	FormatUnknown DXGIFormat = iota
	FormatR8Unorm
	FormatR8Inorm
	FormatR8Uint
	FormatR8Int
	FormatRG8Unorm
	FormatRG8Inorm
	FormatRG8Uint
	FormatRG8Int
	FormatRGBA8Unorm
	FormatRGBA8Inorm
	FormatRGBA8Uint
	FormatRGBA8Int
	FormatRGBA8Srgb
	FormatBGRA8Unorm
	FormatBGRA8Srgb
	FormatR16Float
	FormatR16Uint
	FormatR16Int
	FormatRG16Float
	FormatRG16Uint
	FormatRG16Int
	FormatRGBA16Float
	FormatRGBA16Uint
	FormatRGBA16Int
	FormatR32Float
	FormatR32Uint
	FormatR32Int
	FormatRG32Float
	FormatRG32Uint
	FormatRG32Int
	FormatRGB32Float
	FormatRGB32Uint
	FormatRGB32Int
	FormatRGBA32Float
	FormatRGBA32Uint
	FormatRGBA32Int
	FormatD16Unorm
	FormatD24UnormS8Uint
	FormatD32Float
)

// MemoryProps is a mask of memory properties of a heap.
type MemoryProps int

// Memory properties.
const (
	PropDeviceLocal MemoryProps = 1 << iota
	PropCpuVisible
	PropCoherent
	PropCpuCached
)

// ResourceCategory restricts the kinds of resources a heap
// may back.
type ResourceCategory int

// Resource categories.
const (
	CategoryAny ResourceCategory = iota
	CategoryBuffers
	CategoryImages
	CategoryTargets
)

// HeapFlags is the native heap restriction vocabulary.
type HeapFlags uint32

// Heap flags.
const (
	HeapAllowAll HeapFlags = iota
	HeapAllowOnlyBuffers
	HeapAllowOnlyNonTargetImages
	HeapAllowOnlyTargets
)

// ResourceState is the native resource state a placed
// resource starts its life in.
type ResourceState uint32

// Resource states.
const (
	StateCommon ResourceState = iota
	StateGenericRead
	StateCopyDest
)

// ResourceDimension discriminates native resource
// descriptors.
type ResourceDimension uint32

// Resource dimensions.
const (
	DimBuffer ResourceDimension = iota
	DimTexture1D
	DimTexture2D
	DimTexture3D
)

// TextureLayout is the native texel layout of a resource.
type TextureLayout uint32

// Texture layouts.
const (
	LayoutUnknown TextureLayout = iota
	LayoutRowMajor
)

// ResourceDesc is the fully-formed native resource
// descriptor used for allocation queries and placed
// creation.
type ResourceDesc struct {
	Dimension        ResourceDimension
	Alignment        int64
	Width            int64
	Height           int
	DepthOrArraySize int
	MipLevels        int
	Format           DXGIFormat
	SampleCount      int
	Layout           TextureLayout
}

// DescHeapType selects one native descriptor heap class.
type DescHeapType int

// Descriptor heap types.
const (
	HeapRtv DescHeapType = iota
	HeapDsv
	HeapCbvSrvUav
	HeapSampler
)

// RTVDimension is the native render target view
// dimensionality.
type RTVDimension uint32

// Render target view dimensions.
const (
	RtvTexture2D RTVDimension = iota
)

// RenderTargetViewDesc is the native render target view
// descriptor.
type RenderTargetViewDesc struct {
	Format     DXGIFormat
	Dimension  RTVDimension
	MipSlice   int
	PlaneSlice int
}

// SRVDimension is the native shader resource view
// dimensionality.
type SRVDimension uint32

// Shader resource view dimensions.
const (
	SrvTexture1D SRVDimension = iota
	SrvTexture2D
	SrvTexture3D
)

// ShaderResourceViewDesc is the native shader resource view
// descriptor.
type ShaderResourceViewDesc struct {
	Format          DXGIFormat
	Dimension       SRVDimension
	MostDetailedMip int
	// MipLevels of -1 selects all remaining levels.
	MipLevels   int
	PlaneSlice  int
	MinLODClamp float32
}

// NativeFilter encodes the min/mag/mip filter combination
// the way the native API packs it.
type NativeFilter uint32

// Native filters.
const (
	FilterMinMagMipPoint NativeFilter = iota
	FilterMinMagPointMipLinear
	FilterMinPointMagLinearMipPoint
	FilterMinPointMagMipLinear
	FilterMinLinearMagMipPoint
	FilterMinLinearMagPointMipLinear
	FilterMinMagLinearMipPoint
	FilterMinMagMipLinear
	FilterAnisotropic
)

// NativeAddrMode is the native texture addressing mode.
type NativeAddrMode uint32

// Native addressing modes.
const (
	AddressWrap NativeAddrMode = iota + 1
	AddressMirror
	AddressClamp
	AddressBorder
	AddressMirrorOnce
)

// NativeCmpFunc is the native comparison function.
type NativeCmpFunc uint32

// Native comparison functions.
const (
	ComparisonNever NativeCmpFunc = iota + 1
	ComparisonLess
	ComparisonEqual
	ComparisonLessEqual
	ComparisonGreater
	ComparisonNotEqual
	ComparisonGreaterEqual
	ComparisonAlways
)

// NativeSamplerDesc is the native sampler descriptor.
type NativeSamplerDesc struct {
	Filter        NativeFilter
	AddressU      NativeAddrMode
	AddressV      NativeAddrMode
	AddressW      NativeAddrMode
	MipLODBias    float32
	MaxAnisotropy int
	Comparison    NativeCmpFunc
	BorderColor   [4]float32
	MinLOD        float32
	MaxLOD        float32
}

// DSVDimension is the native depth/stencil view
// dimensionality.
type DSVDimension uint32

// Depth/stencil view dimensions.
const (
	DsvTexture2D DSVDimension = iota
)

// DepthStencilViewDesc is the native depth/stencil view
// descriptor.
type DepthStencilViewDesc struct {
	Format    DXGIFormat
	Dimension DSVDimension
	MipSlice  int
	ReadOnly  bool
}

// RangeType is the native descriptor range class.
type RangeType uint32

// Descriptor range types.
const (
	RangeSrv RangeType = iota
	RangeUav
	RangeCbv
	RangeSampler
)

// DescriptorRange describes one contiguous run of
// descriptors of a single type inside a descriptor table.
type DescriptorRange struct {
	Type                 RangeType
	Count                int
	BaseRegister         int
	RegisterSpace        int
	OffsetFromTableStart int
}

// RootParameter is one descriptor table of a root
// signature; ranges appear in the order the owning set
// layout declared its bindings.
type RootParameter struct {
	Ranges []DescriptorRange
}

// RootSignatureDesc is the native root signature
// descriptor.
type RootSignatureDesc struct {
	Parameters       []RootParameter
	AllowInputLayout bool
}

// InputElementDesc is one native vertex input element.
type InputElementDesc struct {
	SemanticName         string
	SemanticIndex        int
	Format               DXGIFormat
	InputSlot            int
	AlignedByteOffset    int
	PerInstance          bool
	InstanceDataStepRate int
}

// NativeFillMode is the native polygon fill mode.
type NativeFillMode uint32

// Native fill modes.
const (
	FillWireframe NativeFillMode = iota + 2
	FillSolid
)

// NativeCullMode is the native face culling mode.
type NativeCullMode uint32

// Native cull modes.
const (
	CullNone NativeCullMode = iota + 1
	CullFront
	CullBack
)

// NativeRasterizerDesc is the native rasterizer state.
type NativeRasterizerDesc struct {
	Fill              NativeFillMode
	Cull              NativeCullMode
	FrontCCW          bool
	DepthBias         int
	DepthBiasClamp    float32
	SlopeScaledBias   float32
	DepthClipEnable   bool
	MultisampleEnable bool
	ForcedSampleCount int
}

// NativeStencilOp is the native stencil operation.
type NativeStencilOp uint32

// Native stencil operations.
const (
	StencilOpKeep NativeStencilOp = iota + 1
	StencilOpZero
	StencilOpReplace
	StencilOpIncrSat
	StencilOpDecrSat
	StencilOpInvert
	StencilOpIncr
	StencilOpDecr
)

// NativeStencilFaceDesc is the per-face native stencil
// state.
type NativeStencilFaceDesc struct {
	FailOp      NativeStencilOp
	DepthFailOp NativeStencilOp
	PassOp      NativeStencilOp
	Func        NativeCmpFunc
}

// NativeDepthStencilDesc is the native depth/stencil state.
type NativeDepthStencilDesc struct {
	DepthEnable      bool
	DepthWrite       bool
	DepthFunc        NativeCmpFunc
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        NativeStencilFaceDesc
	BackFace         NativeStencilFaceDesc
}

// NativeBlend is the native blend factor.
type NativeBlend uint32

// Native blend factors.
const (
	BlendZero NativeBlend = iota + 1
	BlendOne
	BlendSrcColor
	BlendInvSrcColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDestAlpha
	BlendInvDestAlpha
	BlendDestColor
	BlendInvDestColor
	BlendSrcAlphaSat
	BlendFactor
	BlendInvFactor
)

// NativeBlendOp is the native blend operation.
type NativeBlendOp uint32

// Native blend operations.
const (
	BlendOpAdd NativeBlendOp = iota + 1
	BlendOpSubtract
	BlendOpRevSubtract
	BlendOpMin
	BlendOpMax
)

// NativeTargetBlendDesc is the per-target native blend
// state.
type NativeTargetBlendDesc struct {
	BlendEnable    bool
	SrcBlend       NativeBlend
	DestBlend      NativeBlend
	BlendOp        NativeBlendOp
	SrcBlendAlpha  NativeBlend
	DestBlendAlpha NativeBlend
	BlendOpAlpha   NativeBlendOp
	WriteMask      uint8
}

// NativeBlendDesc is the native output-merger blend state.
type NativeBlendDesc struct {
	AlphaToCoverage  bool
	IndependentBlend bool
	Targets          []NativeTargetBlendDesc
}

// GraphicsPipelineStateDesc is the fully-formed native
// graphics pipeline descriptor.
type GraphicsPipelineStateDesc struct {
	RootSignature NativeRootSignature
	VS            []byte
	HS            []byte
	DS            []byte
	GS            []byte
	PS            []byte
	Blend         NativeBlendDesc
	SampleMask    uint32
	Rasterizer    NativeRasterizerDesc
	DepthStencil  NativeDepthStencilDesc
	InputLayout   []InputElementDesc
	Topology      TopologyType
	RTVFormats    []DXGIFormat
	DSVFormat     DXGIFormat
	SampleCount   int
}

// TopologyType is the coarse native topology class used by
// pipeline creation.
type TopologyType uint32

// Topology types.
const (
	TopologyTypePoint TopologyType = iota
	TopologyTypeLine
	TopologyTypeTriangle
)

// WaitStatus is the outcome of a native multi-object wait.
type WaitStatus uint32

// Wait statuses. Success statuses are WaitObject0 plus the
// index of the satisfying object.
const (
	WaitObject0   WaitStatus = 0x0
	WaitAbandoned WaitStatus = 0x80
	WaitTimedOut  WaitStatus = 0x102
	WaitFailed    WaitStatus = 0xffffffff
)

// DeviceAPI is the native explicit device. Each method
// corresponds to one native entry point; a platform binding
// implements it over the real API and tests implement it
// with a recorder.
type DeviceAPI interface {
	CreateHeap(size int64, props MemoryProps, flags HeapFlags) (NativeHeap, error)

	// ResourceAllocationInfo computes the memory
	// requirements of a resource without allocating it.
	ResourceAllocationInfo(desc *ResourceDesc) (size, alignment int64)

	// CreatePlacedResource materializes a resource at a
	// byte offset inside an existing heap.
	CreatePlacedResource(heap NativeHeap, offset int64, desc *ResourceDesc, initState ResourceState) (NativeResource, error)

	CreateDescriptorHeap(typ DescHeapType, capacity int, shaderVisible bool) (NativeDescHeap, error)
	DescriptorHeapStart(heap NativeDescHeap) (CPUHandle, GPUHandle)
	DescriptorHandleSize(typ DescHeapType) int64

	CreateRenderTargetView(res NativeResource, desc *RenderTargetViewDesc, dst CPUHandle)
	CreateDepthStencilView(res NativeResource, desc *DepthStencilViewDesc, dst CPUHandle)
	CreateShaderResourceView(res NativeResource, desc *ShaderResourceViewDesc, dst CPUHandle)
	CreateSampler(desc *NativeSamplerDesc, dst CPUHandle)

	SerializeRootSignature(desc *RootSignatureDesc) (Blob, error)
	CreateRootSignature(serialized []byte) (NativeRootSignature, error)

	CreateGraphicsPipelineState(desc *GraphicsPipelineStateDesc) (NativePipeline, error)

	// Map returns a writable view over the byte range of a
	// placed resource.
	Map(res NativeResource, begin, end int64) ([]byte, error)
	Unmap(res NativeResource)

	CreateFence(initial uint64) (NativeFence, error)
	SignalFence(fence NativeFence, value uint64) error
	SetEventOnCompletion(fence NativeFence, value uint64, event NativeEvent) error
	CreateEvent() NativeEvent
	ResetEvent(event NativeEvent)
	WaitForMultipleObjects(events []NativeEvent, waitAll bool, timeoutMs uint32) WaitStatus
}

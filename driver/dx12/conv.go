// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"github.com/Bastacyclop/gfx/driver"
)

// convFormat converts a driver.Format.
// Combinations without a native counterpart yield a
// *FormatError.
func convFormat(f driver.Format) (DXGIFormat, error) {
	switch f.Surface {
	case driver.R8:
		switch f.Channel {
		case driver.Unorm:
			return FormatR8Unorm, nil
		case driver.Inorm:
			return FormatR8Inorm, nil
		case driver.Uint:
			return FormatR8Uint, nil
		case driver.Int:
			return FormatR8Int, nil
		}
	case driver.R8G8:
		switch f.Channel {
		case driver.Unorm:
			return FormatRG8Unorm, nil
		case driver.Inorm:
			return FormatRG8Inorm, nil
		case driver.Uint:
			return FormatRG8Uint, nil
		case driver.Int:
			return FormatRG8Int, nil
		}
	case driver.R8G8B8A8:
		switch f.Channel {
		case driver.Unorm:
			return FormatRGBA8Unorm, nil
		case driver.Inorm:
			return FormatRGBA8Inorm, nil
		case driver.Uint:
			return FormatRGBA8Uint, nil
		case driver.Int:
			return FormatRGBA8Int, nil
		case driver.Srgb:
			return FormatRGBA8Srgb, nil
		}
	case driver.B8G8R8A8:
		switch f.Channel {
		case driver.Unorm:
			return FormatBGRA8Unorm, nil
		case driver.Srgb:
			return FormatBGRA8Srgb, nil
		}
	case driver.R16:
		switch f.Channel {
		case driver.Float:
			return FormatR16Float, nil
		case driver.Uint:
			return FormatR16Uint, nil
		case driver.Int:
			return FormatR16Int, nil
		}
	case driver.R16G16:
		switch f.Channel {
		case driver.Float:
			return FormatRG16Float, nil
		case driver.Uint:
			return FormatRG16Uint, nil
		case driver.Int:
			return FormatRG16Int, nil
		}
	case driver.R16G16B16A16:
		switch f.Channel {
		case driver.Float:
			return FormatRGBA16Float, nil
		case driver.Uint:
			return FormatRGBA16Uint, nil
		case driver.Int:
			return FormatRGBA16Int, nil
		}
	case driver.R32:
		switch f.Channel {
		case driver.Float:
			return FormatR32Float, nil
		case driver.Uint:
			return FormatR32Uint, nil
		case driver.Int:
			return FormatR32Int, nil
		}
	case driver.R32G32:
		switch f.Channel {
		case driver.Float:
			return FormatRG32Float, nil
		case driver.Uint:
			return FormatRG32Uint, nil
		case driver.Int:
			return FormatRG32Int, nil
		}
	case driver.R32G32B32:
		switch f.Channel {
		case driver.Float:
			return FormatRGB32Float, nil
		case driver.Uint:
			return FormatRGB32Uint, nil
		case driver.Int:
			return FormatRGB32Int, nil
		}
	case driver.R32G32B32A32:
		switch f.Channel {
		case driver.Float:
			return FormatRGBA32Float, nil
		case driver.Uint:
			return FormatRGBA32Uint, nil
		case driver.Int:
			return FormatRGBA32Int, nil
		}
	case driver.D16:
		if f.Channel == driver.Unorm {
			return FormatD16Unorm, nil
		}
	case driver.D24S8:
		if f.Channel == driver.Unorm {
			return FormatD24UnormS8Uint, nil
		}
	case driver.D32:
		if f.Channel == driver.Float {
			return FormatD32Float, nil
		}
	}
	return FormatUnknown, &FormatError{Format: f}
}

// convTopologyType converts a driver.Topology to the coarse
// class used by pipeline creation.
func convTopologyType(t driver.Topology) TopologyType {
	switch t {
	case driver.TPoint:
		return TopologyTypePoint
	case driver.TLine, driver.TLineStrip:
		return TopologyTypeLine
	case driver.TTriangle, driver.TTriStrip:
		return TopologyTypeTriangle
	}
	panic("unreachable")
}

// convCmpFunc converts a driver.CmpFunc.
func convCmpFunc(f driver.CmpFunc) NativeCmpFunc {
	switch f {
	case driver.CNever:
		return ComparisonNever
	case driver.CLess:
		return ComparisonLess
	case driver.CEqual:
		return ComparisonEqual
	case driver.CLessEqual:
		return ComparisonLessEqual
	case driver.CGreater:
		return ComparisonGreater
	case driver.CNotEqual:
		return ComparisonNotEqual
	case driver.CGreaterEqual:
		return ComparisonGreaterEqual
	case driver.CAlways:
		return ComparisonAlways
	}
	panic("unreachable")
}

// convStencilOp converts a driver.StencilOp.
func convStencilOp(o driver.StencilOp) NativeStencilOp {
	switch o {
	case driver.SKeep:
		return StencilOpKeep
	case driver.SZero:
		return StencilOpZero
	case driver.SReplace:
		return StencilOpReplace
	case driver.SIncClamp:
		return StencilOpIncrSat
	case driver.SDecClamp:
		return StencilOpDecrSat
	case driver.SInvert:
		return StencilOpInvert
	case driver.SIncWrap:
		return StencilOpIncr
	case driver.SDecWrap:
		return StencilOpDecr
	}
	panic("unreachable")
}

// convStencilFace converts one face of a driver.DSState.
func convStencilFace(s driver.StencilT) NativeStencilFaceDesc {
	return NativeStencilFaceDesc{
		FailOp:      convStencilOp(s.DSFail[0]),
		DepthFailOp: convStencilOp(s.DSFail[1]),
		PassOp:      convStencilOp(s.Pass),
		Func:        convCmpFunc(s.Cmp),
	}
}

// convRasterizer converts a driver.RasterState.
func convRasterizer(r driver.RasterState) NativeRasterizerDesc {
	d := NativeRasterizerDesc{
		FrontCCW:        !r.Clockwise,
		DepthClipEnable: true,
	}
	switch r.Fill {
	case driver.FFill:
		d.Fill = FillSolid
	case driver.FLines:
		d.Fill = FillWireframe
	}
	switch r.Cull {
	case driver.CNone:
		d.Cull = CullNone
	case driver.CFront:
		d.Cull = CullFront
	case driver.CBack:
		d.Cull = CullBack
	}
	if r.DepthBias {
		d.DepthBias = int(r.BiasValue)
		d.DepthBiasClamp = r.BiasClamp
		d.SlopeScaledBias = r.BiasSlope
	}
	return d
}

// convDepthStencil converts a driver.DSState.
func convDepthStencil(ds driver.DSState) NativeDepthStencilDesc {
	d := NativeDepthStencilDesc{
		DepthEnable:   ds.DepthTest,
		DepthWrite:    ds.DepthWrite,
		StencilEnable: ds.StencilTest,
	}
	if ds.DepthTest {
		d.DepthFunc = convCmpFunc(ds.DepthCmp)
	}
	if ds.StencilTest {
		d.StencilReadMask = uint8(ds.Front.ReadMask)
		d.StencilWriteMask = uint8(ds.Front.WriteMask)
		d.FrontFace = convStencilFace(ds.Front)
		d.BackFace = convStencilFace(ds.Back)
	}
	return d
}

// convBlendFac converts a driver.BlendFac.
func convBlendFac(f driver.BlendFac) NativeBlend {
	switch f {
	case driver.BZero:
		return BlendZero
	case driver.BOne:
		return BlendOne
	case driver.BSrcColor:
		return BlendSrcColor
	case driver.BInvSrcColor:
		return BlendInvSrcColor
	case driver.BSrcAlpha:
		return BlendSrcAlpha
	case driver.BInvSrcAlpha:
		return BlendInvSrcAlpha
	case driver.BDstColor:
		return BlendDestColor
	case driver.BInvDstColor:
		return BlendInvDestColor
	case driver.BDstAlpha:
		return BlendDestAlpha
	case driver.BInvDstAlpha:
		return BlendInvDestAlpha
	case driver.BSrcAlphaSaturated:
		return BlendSrcAlphaSat
	case driver.BBlendColor:
		return BlendFactor
	case driver.BInvBlendColor:
		return BlendInvFactor
	}
	panic("unreachable")
}

// convBlendOp converts a driver.BlendOp.
func convBlendOp(o driver.BlendOp) NativeBlendOp {
	switch o {
	case driver.BAdd:
		return BlendOpAdd
	case driver.BSubtract:
		return BlendOpSubtract
	case driver.BRevSubtract:
		return BlendOpRevSubtract
	case driver.BMin:
		return BlendOpMin
	case driver.BMax:
		return BlendOpMax
	}
	panic("unreachable")
}

// convBlend converts a driver.BlendDesc.
func convBlend(b driver.BlendDesc) NativeBlendDesc {
	d := NativeBlendDesc{
		AlphaToCoverage:  b.AlphaCoverage,
		IndependentBlend: len(b.Targets) > 1,
		Targets:          make([]NativeTargetBlendDesc, len(b.Targets)),
	}
	for i, t := range b.Targets {
		nt := NativeTargetBlendDesc{
			BlendEnable: t.Blend,
			WriteMask:   uint8(t.WriteMask),
		}
		if t.Blend {
			nt.SrcBlend = convBlendFac(t.SrcFac[0])
			nt.DestBlend = convBlendFac(t.DstFac[0])
			nt.BlendOp = convBlendOp(t.Op[0])
			nt.SrcBlendAlpha = convBlendFac(t.SrcFac[1])
			nt.DestBlendAlpha = convBlendFac(t.DstFac[1])
			nt.BlendOpAlpha = convBlendOp(t.Op[1])
		}
		d.Targets[i] = nt
	}
	return d
}

// convFilter converts the min/mag/mip filter triple into the
// packed native filter.
func convFilter(s driver.Sampling) NativeFilter {
	if s.Min == driver.FAnisotropic || s.Mag == driver.FAnisotropic || s.MaxAniso > 1 {
		return FilterAnisotropic
	}
	min := s.Min == driver.FLinear
	mag := s.Mag == driver.FLinear
	mip := s.Mipmap == driver.FLinear
	switch {
	case !min && !mag && !mip:
		return FilterMinMagMipPoint
	case !min && !mag && mip:
		return FilterMinMagPointMipLinear
	case !min && mag && !mip:
		return FilterMinPointMagLinearMipPoint
	case !min && mag && mip:
		return FilterMinPointMagMipLinear
	case min && !mag && !mip:
		return FilterMinLinearMagMipPoint
	case min && !mag && mip:
		return FilterMinLinearMagPointMipLinear
	case min && mag && !mip:
		return FilterMinMagLinearMipPoint
	default:
		return FilterMinMagMipLinear
	}
}

// convAddrMode converts a driver.AddrMode.
func convAddrMode(m driver.AddrMode) NativeAddrMode {
	switch m {
	case driver.AWrap:
		return AddressWrap
	case driver.AMirror:
		return AddressMirror
	case driver.AClamp:
		return AddressClamp
	case driver.ABorder:
		return AddressBorder
	}
	panic("unreachable")
}

// convSampling converts a driver.Sampling.
func convSampling(s driver.Sampling) NativeSamplerDesc {
	d := NativeSamplerDesc{
		Filter:        convFilter(s),
		AddressU:      convAddrMode(s.AddrU),
		AddressV:      convAddrMode(s.AddrV),
		AddressW:      convAddrMode(s.AddrW),
		MipLODBias:    s.LODBias,
		MaxAnisotropy: s.MaxAniso,
		BorderColor:   s.Border,
		MinLOD:        s.MinLOD,
		MaxLOD:        s.MaxLOD,
	}
	if s.DoCmp {
		d.Comparison = convCmpFunc(s.Cmp)
	}
	return d
}

// convRangeType converts a driver.DescriptorType to its
// descriptor range class.
func convRangeType(t driver.DescriptorType) (RangeType, error) {
	switch t {
	case driver.DSampler:
		return RangeSampler, nil
	case driver.DSampledImage:
		return RangeSrv, nil
	case driver.DStorageBuffer, driver.DStorageImage:
		return RangeUav, nil
	case driver.DConstantBuffer:
		return RangeCbv, nil
	}
	return 0, ErrUnsupportedType
}

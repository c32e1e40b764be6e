// Copyright 2026 The gfx Authors. All rights reserved.

package dx11

import (
	"errors"

	"github.com/Bastacyclop/gfx/driver"
)

// ErrImmutableUpdate means that an update was requested on
// a resource whose usage forbids any update.
var ErrImmutableUpdate = errors.New("dx11: cannot update an immutable resource")

// UpdateBuffer writes data into buf starting at offset,
// using the update strategy selected by the buffer's usage
// tag. Illegal updates report an error event and perform no
// write.
func UpdateBuffer(ctx Context, buf *Buffer, data []byte, offset int) {
	switch buf.usg.Kind {
	case driver.KindImmutable:
		driver.Errorf("dx11.UpdateBuffer", ErrImmutableUpdate, driver.Fields{"backend": driverName})
	case driver.KindCpuOnly:
		if buf.usg.Access&driver.Write == 0 {
			driver.Errorf("dx11.UpdateBuffer", ErrImmutableUpdate, driver.Fields{"backend": driverName})
			return
		}
		mapWrite(ctx, buf.res, data, offset)
	case driver.KindGpuOnly:
		box := Box{
			Left:   offset,
			Top:    0,
			Front:  0,
			Right:  offset + len(data),
			Bottom: 1,
			Back:   1,
		}
		if err := ctx.UpdateSubresource(buf.res, 0, box, data, 0, 0); err != nil {
			driver.Errorf("dx11.UpdateBuffer", err, driver.Fields{"backend": driverName, "offset": offset})
		}
	case driver.KindDynamic:
		mapWrite(ctx, buf.res, data, offset)
	case driver.KindPersistent:
		panic("gfx: persistent mapping not implemented")
	}
}

// mapWrite copies data into a discard-mapped resource at
// the destination offset. Contents outside the written
// range are undefined until rewritten.
func mapWrite(ctx Context, res Resource, data []byte, offset int) {
	p, err := ctx.Map(res, 0, true)
	if err != nil {
		driver.Errorf("dx11.UpdateBuffer", err, driver.Fields{"backend": driverName, "offset": offset})
		return
	}
	copy(p[offset:], data)
	ctx.Unmap(res, 0)
}

// UpdateTexture writes data into the sub-region of one
// subresource of tex described by img. Cube faces map to
// fixed array slices in PosX, NegX, PosY, NegY, PosZ, NegZ
// order.
func UpdateTexture(ctx Context, tex *Texture, kind driver.TexKind, face driver.CubeFace, data []byte, img driver.SubImage) {
	arraySlice := face.Slice()
	// Multi-mip array addressing is not correct yet; the
	// index computation assumes a single level.
	const numMipLevels = 1
	subres := arraySlice*numMipLevels + img.Mipmap

	switch tex.usg.Kind {
	case driver.KindImmutable:
		driver.Errorf("dx11.UpdateTexture", ErrImmutableUpdate, driver.Fields{"backend": driverName})
	case driver.KindCpuOnly:
		if tex.usg.Access&driver.Write == 0 {
			driver.Errorf("dx11.UpdateTexture", ErrImmutableUpdate, driver.Fields{"backend": driverName})
			return
		}
		panic("gfx: CPU-writable texture update not implemented")
	case driver.KindGpuOnly:
		width, height, _ := kind.LevelDimensions(img.Mipmap)
		stride := img.Format.Surface.BitsPerTexel()
		rowPitch := width * stride
		depthPitch := height * rowPitch
		box := Box{
			Left:   img.XOffset,
			Top:    img.YOffset,
			Front:  img.ZOffset,
			Right:  img.XOffset + img.Width,
			Bottom: img.YOffset + img.Height,
			Back:   img.ZOffset + img.Depth,
		}
		if err := ctx.UpdateSubresource(tex.res, subres, box, data, rowPitch, depthPitch); err != nil {
			driver.Errorf("dx11.UpdateTexture", err, driver.Fields{
				"backend":     driverName,
				"subresource": subres,
				"mipmap":      img.Mipmap,
			})
		}
	case driver.KindDynamic:
		panic("gfx: dynamic texture update not implemented")
	case driver.KindPersistent:
		panic("gfx: persistent mapping not implemented")
	}
}

// Copyright 2026 The gfx Authors. All rights reserved.

package driver

import (
	"bytes"
	"testing"
)

func TestDataBuffer(t *testing.T) {
	var b DataBuffer
	if b.Size() != 0 {
		t.Fatalf("DataBuffer.Size:\nhave %d\nwant 0", b.Size())
	}

	d1 := []byte{1, 2, 3, 4}
	d2 := []byte{5, 6}
	p1 := b.Add(d1)
	p2 := b.Add(d2)

	if p1.Offset != 0 || p1.Size != 4 {
		t.Errorf("DataBuffer.Add:\nhave %+v\nwant {Offset:0 Size:4}", p1)
	}
	if p2.Offset != 4 || p2.Size != 2 {
		t.Errorf("DataBuffer.Add:\nhave %+v\nwant {Offset:4 Size:2}", p2)
	}
	if b.Size() != 6 {
		t.Errorf("DataBuffer.Size:\nhave %d\nwant 6", b.Size())
	}
	if got := b.Get(p1); !bytes.Equal(got, d1) {
		t.Errorf("DataBuffer.Get:\nhave %v\nwant %v", got, d1)
	}
	if got := b.Get(p2); !bytes.Equal(got, d2) {
		t.Errorf("DataBuffer.Get:\nhave %v\nwant %v", got, d2)
	}

	b.Reset()
	if b.Size() != 0 {
		t.Errorf("DataBuffer.Size after Reset:\nhave %d\nwant 0", b.Size())
	}
	p3 := b.Add(d2)
	if p3.Offset != 0 {
		t.Errorf("DataBuffer.Add after Reset:\nhave offset %d\nwant 0", p3.Offset)
	}
}

func TestDataBufferCopies(t *testing.T) {
	var b DataBuffer
	src := []byte{7, 8, 9}
	p := b.Add(src)
	src[0] = 0
	if got := b.Get(p); got[0] != 7 {
		t.Errorf("DataBuffer.Get after caller mutation:\nhave %v\nwant [7 8 9]", got)
	}
}

// The command set is closed; keep every variant assignable
// to Command so additions cannot silently miss the marker.
var _ = []Command{
	BindProgram{},
	BindInputLayout{},
	BindIndex{},
	BindVertexBuffers{},
	BindConstantBuffers{},
	BindShaderResources{},
	BindSamplers{},
	BindPixelTargets{},
	SetPrimitive{},
	SetViewport{},
	SetScissor{},
	SetRasterizer{},
	SetDepthStencil{},
	SetBlend{},
	UpdateBuffer{},
	UpdateTexture{},
	GenerateMips{},
	ClearColor{},
	ClearDepthStencil{},
	Draw{},
	DrawInstanced{},
	DrawIndexed{},
	DrawIndexedInstanced{},
}

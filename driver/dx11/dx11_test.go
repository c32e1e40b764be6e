// Copyright 2026 The gfx Authors. All rights reserved.

package dx11

import (
	"errors"
	"testing"

	"github.com/Bastacyclop/gfx/driver"
)

func TestDriverRegistered(t *testing.T) {
	for _, d := range driver.Drivers() {
		if d.Name() == driverName {
			return
		}
	}
	t.Errorf("driver %q not registered on init", driverName)
}

func TestOpenWithoutProvider(t *testing.T) {
	prev := newContext
	newContext = nil
	t.Cleanup(func() { newContext = prev })

	var d drv
	if err := d.Open(); !errors.Is(err, driver.ErrNotInstalled) {
		t.Errorf("Open without provider:\nhave %v\nwant %v", err, driver.ErrNotInstalled)
	}
}

func TestOpenClose(t *testing.T) {
	prev := newContext
	t.Cleanup(func() { newContext = prev })
	RegisterProvider(func() (Context, error) { return &tCtx{}, nil })

	var d drv
	if err := d.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if d.ctx == nil {
		t.Fatal("Open did not set the context")
	}
	ctx := d.ctx
	// Open is idempotent while open.
	if err := d.Open(); err != nil || d.ctx != ctx {
		t.Error("second Open changed the open context")
	}
	d.Close()
	if d.ctx != nil {
		t.Error("Close did not clear the context")
	}
}

func TestBufferDestroy(t *testing.T) {
	res := &tRes{name: "buf"}
	b := NewBuffer(res, driver.Dynamic)
	b.Destroy()
	if !res.released {
		t.Error("Buffer.Destroy did not release the native resource")
	}
	if b.res != nil {
		t.Error("Buffer.Destroy did not zero the receiver")
	}
	// Destroying a nil buffer is a no-op.
	var nb *Buffer
	nb.Destroy()
}

func TestTextureDestroy(t *testing.T) {
	res := &tRes{name: "tex"}
	tx := NewTexture(res, driver.GpuOnly, driver.TexKind{Dim: driver.Tex2D, Width: 4, Height: 4})
	tx.Destroy()
	if !res.released {
		t.Error("Texture.Destroy did not release the native resource")
	}
	var nt *Texture
	nt.Destroy()
}

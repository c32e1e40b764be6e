// Copyright 2026 The gfx Authors. All rights reserved.

// Package dx11 implements replay of the abstract command
// stream onto an immediate-context style native API.
// All pipeline state lives in a single native device
// context; the interpreter translates each command into the
// context calls for that state slot and keeps no state of
// its own across commands.
package dx11

import (
	"github.com/Bastacyclop/gfx/driver"
)

const driverName = "dx11"

// Provider creates the native device context when the back
// end is opened. A platform binding package installs one
// from its init function; without a provider, Open fails
// with driver.ErrNotInstalled.
type Provider func() (Context, error)

// RegisterProvider installs the native context provider.
func RegisterProvider(p Provider) { newContext = p }

var newContext Provider

// drv implements driver.Driver.
type drv struct {
	ctx Context
}

var theDriver drv

func init() { driver.Register(&theDriver) }

// Open initializes the back end.
func (d *drv) Open() error {
	if d.ctx != nil {
		return nil
	}
	if newContext == nil {
		return driver.ErrNotInstalled
	}
	ctx, err := newContext()
	if err != nil {
		return err
	}
	d.ctx = ctx
	return nil
}

// Name returns the name of the back end.
func (d *drv) Name() string { return driverName }

// Close deinitializes the back end.
func (d *drv) Close() { d.ctx = nil }

// Current returns the native context of the open back end,
// or nil if the back end is not open.
func Current() Context { return theDriver.ctx }

// Resource is a native buffer or texture object.
type Resource interface {
	Release()
}

// Shader is a native compiled shader stage object.
type Shader interface {
	Release()
}

// Buffer pairs a native buffer with its usage tag.
// It implements driver.Buffer.
type Buffer struct {
	res Resource
	usg driver.Usage
}

// NewBuffer wraps a native buffer created by the device
// layer.
func NewBuffer(res Resource, usg driver.Usage) *Buffer {
	return &Buffer{res: res, usg: usg}
}

// Usage returns the buffer's usage tag.
// It is fixed for the buffer's lifetime.
func (b *Buffer) Usage() driver.Usage { return b.usg }

// Resource returns the native buffer object.
func (b *Buffer) Resource() Resource { return b.res }

// Destroy releases the native buffer.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	if b.res != nil {
		b.res.Release()
	}
	*b = Buffer{}
}

// Texture pairs a native texture with its usage tag and
// shape. It implements driver.Texture.
type Texture struct {
	res  Resource
	usg  driver.Usage
	kind driver.TexKind
}

// NewTexture wraps a native texture created by the device
// layer.
func NewTexture(res Resource, usg driver.Usage, kind driver.TexKind) *Texture {
	return &Texture{res: res, usg: usg, kind: kind}
}

// Usage returns the texture's usage tag.
func (t *Texture) Usage() driver.Usage { return t.usg }

// Kind returns the texture's shape.
func (t *Texture) Kind() driver.TexKind { return t.kind }

// Resource returns the native texture object.
func (t *Texture) Resource() Resource { return t.res }

// Destroy releases the native texture.
func (t *Texture) Destroy() {
	if t == nil {
		return
	}
	if t.res != nil {
		t.res.Release()
	}
	*t = Texture{}
}

// Program is a set of per-stage native shaders bound as a
// unit. Nil stages are unbound during replay.
// It implements driver.Program.
type Program struct {
	VS Shader
	HS Shader
	DS Shader
	GS Shader
	PS Shader
}

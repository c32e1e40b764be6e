// Copyright 2026 The gfx Authors. All rights reserved.

// Package dx12 implements resource and pipeline management
// on an explicit, heap-based native API. Resources are
// created unbound and bound to caller-managed heaps in a
// second step; descriptors are bump-allocated from fixed
// device-owned descriptor heaps; pipelines are built in
// batches from reflected shader libraries.
package dx12

import (
	"errors"
	"fmt"

	"github.com/Bastacyclop/gfx/driver"
)

const driverName = "dx12"

// Errors that the back end may produce.
var (
	// ErrOutOfHeap means that a bind request did not fit in
	// the target heap.
	ErrOutOfHeap = errors.New("dx12: bind range exceeds heap size")
	// ErrAlreadyBound means that binding was attempted on a
	// resource that was bound before.
	ErrAlreadyBound = errors.New("dx12: resource is already bound")
	// ErrOutOfBounds means that a mapped write fell outside
	// the resource's byte range.
	ErrOutOfBounds = errors.New("dx12: write range out of bounds")
	// ErrOutOfMemory means that a native allocation failed.
	ErrOutOfMemory = errors.New("dx12: out of device memory")
	// ErrUnsupportedType means that a descriptor or view type
	// has no native counterpart.
	ErrUnsupportedType = errors.New("dx12: unsupported descriptor type")
)

// FormatError means that a format/channel combination has no
// native counterpart.
type FormatError struct {
	Format driver.Format
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dx12: no native format for surface %d channel %d", e.Format.Surface, e.Format.Channel)
}

// Provider creates the native device when the back end is
// opened. A platform binding package installs one from its
// init function; without a provider, Open fails with
// driver.ErrNotInstalled.
type Provider func() (DeviceAPI, error)

// RegisterProvider installs the native device provider.
func RegisterProvider(p Provider) { newDeviceAPI = p }

var newDeviceAPI Provider

// drv implements driver.Driver.
type drv struct {
	dev *Device
}

var theDriver drv

func init() { driver.Register(&theDriver) }

// Open initializes the back end.
func (d *drv) Open() error {
	if d.dev != nil {
		return nil
	}
	if newDeviceAPI == nil {
		return driver.ErrNotInstalled
	}
	api, err := newDeviceAPI()
	if err != nil {
		return err
	}
	dev, err := NewDevice(api)
	if err != nil {
		return err
	}
	d.dev = dev
	return nil
}

// Name returns the name of the back end.
func (d *drv) Name() string { return driverName }

// Close deinitializes the back end.
func (d *drv) Close() {
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
}

// Current returns the device of the open back end, or nil
// if the back end is not open.
func Current() *Device { return theDriver.dev }

// Device-owned descriptor heap capacities, in descriptors.
const (
	rtvHeapSize     = 256
	dsvHeapSize     = 64
	viewHeapSize    = 4096
	samplerHeapSize = 2048
)

// Device wraps the native explicit device together with the
// descriptor heaps that serve view and sampler creation.
type Device struct {
	api  DeviceAPI
	rtvs *descriptorHeap
	dsvs *descriptorHeap
	srvs *descriptorHeap
	smps *descriptorHeap

	// Pool of OS events used by fence waits; grown on
	// demand, reused across waits.
	events []NativeEvent
}

// NewDevice creates a device over the given native API.
func NewDevice(api DeviceAPI) (*Device, error) {
	d := &Device{api: api}
	var err error
	if d.rtvs, err = newDescriptorHeap(api, HeapRtv, rtvHeapSize, false); err != nil {
		return nil, err
	}
	if d.dsvs, err = newDescriptorHeap(api, HeapDsv, dsvHeapSize, false); err != nil {
		d.Close()
		return nil, err
	}
	if d.srvs, err = newDescriptorHeap(api, HeapCbvSrvUav, viewHeapSize, true); err != nil {
		d.Close()
		return nil, err
	}
	if d.smps, err = newDescriptorHeap(api, HeapSampler, samplerHeapSize, true); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// API returns the underlying native device.
func (d *Device) API() DeviceAPI { return d.api }

// Close releases the device-owned descriptor heaps.
// Event handles are owned by the native layer and released
// with it.
func (d *Device) Close() {
	for _, h := range []*descriptorHeap{d.rtvs, d.dsvs, d.srvs, d.smps} {
		if h != nil {
			h.raw.Release()
		}
	}
	*d = Device{}
}

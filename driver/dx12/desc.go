// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"errors"

	"github.com/Bastacyclop/gfx/driver"
)

// ErrPoolExhausted means that a descriptor set allocation
// did not fit in its pool.
var ErrPoolExhausted = errors.New("dx12: descriptor pool exhausted")

// DescriptorPool reserves descriptor slots ahead of time and
// hands them out to descriptor sets. The pool draws its
// slots from the device's shader-visible heaps once, at
// creation; sets then bump-allocate within the reservation
// and are never freed individually.
type DescriptorPool struct {
	dev *Device

	viewCPU CPUHandle
	viewGPU GPUHandle
	views   int
	viewOff int

	samplerCPU CPUHandle
	samplerGPU GPUHandle
	samplers   int
	samplerOff int
}

// NewDescriptorPool reserves enough descriptor slots for the
// given per-type counts.
func (d *Device) NewDescriptorPool(ranges []driver.DescriptorRangeDesc) *DescriptorPool {
	p := &DescriptorPool{dev: d}
	for _, r := range ranges {
		if r.Type == driver.DSampler {
			p.samplers += r.Count
		} else {
			p.views += r.Count
		}
	}
	if p.views > 0 {
		p.viewCPU, p.viewGPU = d.srvs.allocHandles(p.views)
	}
	if p.samplers > 0 {
		p.samplerCPU, p.samplerGPU = d.smps.allocHandles(p.samplers)
	}
	return p
}

// Reset makes the pool's whole reservation available again.
// Sets allocated before the reset must not be used
// afterwards.
func (p *DescriptorPool) Reset() {
	p.viewOff = 0
	p.samplerOff = 0
}

// DescSet is a table of descriptors laid out per one
// DescSetLayout. Its GPU handles are what gets bound to the
// root parameter of the owning set index.
type DescSet struct {
	// ViewTable is the first view descriptor of the set, or
	// zero when the layout has no view bindings.
	ViewTable GPUHandle
	// SamplerTable is the first sampler descriptor of the
	// set, or zero when the layout has no sampler bindings.
	SamplerTable GPUHandle

	viewCPU    CPUHandle
	samplerCPU CPUHandle
}

// Alloc carves one descriptor set shaped by layout out of
// the pool.
func (p *DescriptorPool) Alloc(layout *DescSetLayout) (*DescSet, error) {
	var views, samplers int
	for _, b := range layout.bindings {
		if b.Type == driver.DSampler {
			samplers += b.Count
		} else {
			views += b.Count
		}
	}
	if p.viewOff+views > p.views || p.samplerOff+samplers > p.samplers {
		return nil, ErrPoolExhausted
	}
	set := &DescSet{}
	hs := p.dev.srvs.handleSize
	if views > 0 {
		off := int64(p.viewOff) * hs
		set.viewCPU = p.viewCPU + CPUHandle(off)
		set.ViewTable = p.viewGPU + GPUHandle(off)
		p.viewOff += views
	}
	hs = p.dev.smps.handleSize
	if samplers > 0 {
		off := int64(p.samplerOff) * hs
		set.samplerCPU = p.samplerCPU + CPUHandle(off)
		set.SamplerTable = p.samplerGPU + GPUHandle(off)
		p.samplerOff += samplers
	}
	return set, nil
}

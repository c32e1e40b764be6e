// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"github.com/Bastacyclop/gfx/driver"
)

// Sampler is a sampler state backed by one shader-visible
// descriptor slot.
// It implements driver.Sampler.
type Sampler struct {
	cpu CPUHandle
	gpu GPUHandle
}

// GPUHandle returns the sampler's shader-visible descriptor
// address.
func (s *Sampler) GPUHandle() GPUHandle { return s.gpu }

// NewSampler creates a sampler from the given sampling
// parameters.
func (d *Device) NewSampler(sp driver.Sampling) *Sampler {
	desc := convSampling(sp)
	cpu, gpu := d.smps.allocHandles(1)
	d.api.CreateSampler(&desc, cpu)
	return &Sampler{cpu: cpu, gpu: gpu}
}

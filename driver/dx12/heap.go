// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"sync"
)

// Heap is a slab of device memory that placed resources are
// bound into. The caller suballocates it; the heap itself
// does no bookkeeping beyond its size and default state.
type Heap struct {
	raw          NativeHeap
	size         int64
	props        MemoryProps
	defaultState ResourceState
}

// CreateHeap allocates a heap of the given size. The
// category restricts what resource kinds the heap may back.
// Coherent CPU-visible heaps start their resources in a
// readable state, non-coherent ones as copy destinations,
// device-local ones in the common state.
func (d *Device) CreateHeap(size int64, props MemoryProps, category ResourceCategory) (*Heap, error) {
	var flags HeapFlags
	switch category {
	case CategoryAny:
		flags = HeapAllowAll
	case CategoryBuffers:
		flags = HeapAllowOnlyBuffers
	case CategoryImages:
		flags = HeapAllowOnlyNonTargetImages
	case CategoryTargets:
		flags = HeapAllowOnlyTargets
	}
	state := StateCommon
	if props&PropCpuVisible != 0 {
		if props&PropCoherent != 0 {
			state = StateGenericRead
		} else {
			state = StateCopyDest
		}
	}
	raw, err := d.api.CreateHeap(size, props, flags)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return &Heap{
		raw:          raw,
		size:         size,
		props:        props,
		defaultState: state,
	}, nil
}

// Size returns the heap size in bytes.
func (h *Heap) Size() int64 { return h.size }

// CpuVisible returns whether the heap's memory can be
// mapped.
func (h *Heap) CpuVisible() bool { return h.props&PropCpuVisible != 0 }

// Destroy releases the native heap. Resources placed in the
// heap must be destroyed first.
func (h *Heap) Destroy() {
	if h == nil {
		return
	}
	if h.raw != nil {
		h.raw.Release()
	}
	*h = Heap{}
}

// descriptorHeap bump-allocates descriptor slots from one
// native descriptor heap. Slots are never recycled; callers
// that outgrow a heap must create resources against a new
// device.
type descriptorHeap struct {
	raw        NativeDescHeap
	handleSize int64
	total      int
	startCPU   CPUHandle
	startGPU   GPUHandle

	mu     sync.Mutex
	offset int
}

func newDescriptorHeap(api DeviceAPI, typ DescHeapType, capacity int, shaderVisible bool) (*descriptorHeap, error) {
	raw, err := api.CreateDescriptorHeap(typ, capacity, shaderVisible)
	if err != nil {
		return nil, err
	}
	cpu, gpu := api.DescriptorHeapStart(raw)
	return &descriptorHeap{
		raw:        raw,
		handleSize: api.DescriptorHandleSize(typ),
		total:      capacity,
		startCPU:   cpu,
		startGPU:   gpu,
	}, nil
}

// allocHandles reserves count contiguous slots and returns
// the handles of the first one. Exhaustion is not detected
// here; a request past the end yields addresses outside the
// native heap.
func (h *descriptorHeap) allocHandles(count int) (CPUHandle, GPUHandle) {
	h.mu.Lock()
	slot := h.offset
	h.offset += count
	h.mu.Unlock()
	off := int64(slot) * h.handleSize
	return h.startCPU + CPUHandle(off), h.startGPU + GPUHandle(off)
}

// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"testing"

	"github.com/Bastacyclop/gfx/driver"
)

type tHeap struct {
	size     int64
	props    MemoryProps
	flags    HeapFlags
	released bool
}

func (h *tHeap) Release() { h.released = true }

type tNRes struct {
	heap     NativeHeap
	offset   int64
	desc     ResourceDesc
	state    ResourceState
	mem      []byte
	released bool
}

func (r *tNRes) Release() { r.released = true }

type tDescHeap struct {
	typ      DescHeapType
	capacity int
	visible  bool
	baseCPU  CPUHandle
	baseGPU  GPUHandle
	released bool
}

func (h *tDescHeap) Release() { h.released = true }

type tRootSig struct {
	released bool
}

func (r *tRootSig) Release() { r.released = true }

type tBlob struct {
	data     []byte
	released bool
}

func (b *tBlob) Bytes() []byte { return b.data }
func (b *tBlob) Release()      { b.released = true }

type tPipeline struct {
	released bool
}

func (p *tPipeline) Release() { p.released = true }

type tFence struct {
	value    uint64
	released bool
}

func (f *tFence) Release() { f.released = true }

type tEvent struct {
	signaled bool
}

type viewRecord struct {
	res NativeResource
	dst CPUHandle
}

// tAPI is a recording DeviceAPI. Placed buffers get backing
// memory so that mapped writes can be inspected, and fences
// arm events at SetEventOnCompletion time based on the
// fence's current value.
type tAPI struct {
	heaps     []*tHeap
	resources []*tNRes
	descHeaps []*tDescHeap
	nextBase  CPUHandle

	rtvs     []viewRecord
	dsvs     []viewRecord
	srvs     []viewRecord
	samplers []struct {
		desc NativeSamplerDesc
		dst  CPUHandle
	}

	rootDescs  []RootSignatureDesc
	serialized []*tBlob
	rootSigs   []*tRootSig

	pipeDescs []GraphicsPipelineStateDesc
	pipeErr   error

	placedErr error
	heapErr   error

	mapCalls   int
	unmapCalls int

	events []*tEvent
}

func (a *tAPI) CreateHeap(size int64, props MemoryProps, flags HeapFlags) (NativeHeap, error) {
	if a.heapErr != nil {
		return nil, a.heapErr
	}
	h := &tHeap{size: size, props: props, flags: flags}
	a.heaps = append(a.heaps, h)
	return h, nil
}

func (a *tAPI) ResourceAllocationInfo(desc *ResourceDesc) (int64, int64) {
	if desc.Dimension == DimBuffer {
		return desc.Width, placementAlignment
	}
	texels := desc.Width * int64(desc.Height) * int64(desc.DepthOrArraySize)
	return texels * 4, placementAlignment
}

func (a *tAPI) CreatePlacedResource(heap NativeHeap, offset int64, desc *ResourceDesc, initState ResourceState) (NativeResource, error) {
	if a.placedErr != nil {
		return nil, a.placedErr
	}
	r := &tNRes{heap: heap, offset: offset, desc: *desc, state: initState}
	if desc.Dimension == DimBuffer {
		r.mem = make([]byte, desc.Width)
	}
	a.resources = append(a.resources, r)
	return r, nil
}

func (a *tAPI) CreateDescriptorHeap(typ DescHeapType, capacity int, shaderVisible bool) (NativeDescHeap, error) {
	h := &tDescHeap{
		typ:      typ,
		capacity: capacity,
		visible:  shaderVisible,
		baseCPU:  0x10000 + a.nextBase,
	}
	if shaderVisible {
		h.baseGPU = GPUHandle(h.baseCPU) | 0x8000000000
	}
	a.nextBase += 0x10000
	a.descHeaps = append(a.descHeaps, h)
	return h, nil
}

func (a *tAPI) DescriptorHeapStart(heap NativeDescHeap) (CPUHandle, GPUHandle) {
	h := heap.(*tDescHeap)
	return h.baseCPU, h.baseGPU
}

func (a *tAPI) DescriptorHandleSize(typ DescHeapType) int64 {
	switch typ {
	case HeapRtv, HeapDsv:
		return 32
	case HeapCbvSrvUav:
		return 64
	case HeapSampler:
		return 16
	}
	return 0
}

func (a *tAPI) CreateRenderTargetView(res NativeResource, desc *RenderTargetViewDesc, dst CPUHandle) {
	a.rtvs = append(a.rtvs, viewRecord{res: res, dst: dst})
}

func (a *tAPI) CreateDepthStencilView(res NativeResource, desc *DepthStencilViewDesc, dst CPUHandle) {
	a.dsvs = append(a.dsvs, viewRecord{res: res, dst: dst})
}

func (a *tAPI) CreateShaderResourceView(res NativeResource, desc *ShaderResourceViewDesc, dst CPUHandle) {
	a.srvs = append(a.srvs, viewRecord{res: res, dst: dst})
}

func (a *tAPI) CreateSampler(desc *NativeSamplerDesc, dst CPUHandle) {
	a.samplers = append(a.samplers, struct {
		desc NativeSamplerDesc
		dst  CPUHandle
	}{*desc, dst})
}

func (a *tAPI) SerializeRootSignature(desc *RootSignatureDesc) (Blob, error) {
	a.rootDescs = append(a.rootDescs, *desc)
	b := &tBlob{data: []byte("rootsig")}
	a.serialized = append(a.serialized, b)
	return b, nil
}

func (a *tAPI) CreateRootSignature(serialized []byte) (NativeRootSignature, error) {
	r := &tRootSig{}
	a.rootSigs = append(a.rootSigs, r)
	return r, nil
}

func (a *tAPI) CreateGraphicsPipelineState(desc *GraphicsPipelineStateDesc) (NativePipeline, error) {
	if a.pipeErr != nil {
		return nil, a.pipeErr
	}
	a.pipeDescs = append(a.pipeDescs, *desc)
	return &tPipeline{}, nil
}

func (a *tAPI) Map(res NativeResource, begin, end int64) ([]byte, error) {
	a.mapCalls++
	return res.(*tNRes).mem[begin:end], nil
}

func (a *tAPI) Unmap(res NativeResource) { a.unmapCalls++ }

func (a *tAPI) CreateFence(initial uint64) (NativeFence, error) {
	return &tFence{value: initial}, nil
}

func (a *tAPI) SignalFence(fence NativeFence, value uint64) error {
	fence.(*tFence).value = value
	return nil
}

func (a *tAPI) SetEventOnCompletion(fence NativeFence, value uint64, event NativeEvent) error {
	if fence.(*tFence).value >= value {
		event.(*tEvent).signaled = true
	}
	return nil
}

func (a *tAPI) CreateEvent() NativeEvent {
	e := &tEvent{}
	a.events = append(a.events, e)
	return e
}

func (a *tAPI) ResetEvent(event NativeEvent) { event.(*tEvent).signaled = false }

func (a *tAPI) WaitForMultipleObjects(events []NativeEvent, waitAll bool, timeoutMs uint32) WaitStatus {
	if waitAll {
		for _, e := range events {
			if !e.(*tEvent).signaled {
				return WaitTimedOut
			}
		}
		return WaitObject0
	}
	for i, e := range events {
		if e.(*tEvent).signaled {
			return WaitObject0 + WaitStatus(i)
		}
	}
	return WaitTimedOut
}

func tDevice(t *testing.T) (*Device, *tAPI) {
	t.Helper()
	api := &tAPI{}
	dev, err := NewDevice(api)
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}
	return dev, api
}

// tSink records diagnostic events.
type tSink struct {
	events []driver.Event
}

func (s *tSink) Emit(e driver.Event) { s.events = append(s.events, e) }

func captureEvents(t *testing.T) *tSink {
	t.Helper()
	sink := &tSink{}
	prev := driver.Events
	driver.Events = sink
	t.Cleanup(func() { driver.Events = prev })
	return sink
}

// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

import (
	"fmt"

	"github.com/Bastacyclop/gfx/driver"
)

// Fence is a binary completion flag over a native monotonic
// fence counter. Zero means unsignaled, one means signaled.
type Fence struct {
	dev *Device
	raw NativeFence
}

// NewFence creates a fence, optionally in the signaled
// state.
func (d *Device) NewFence(signaled bool) (*Fence, error) {
	var initial uint64
	if signaled {
		initial = 1
	}
	raw, err := d.api.CreateFence(initial)
	if err != nil {
		return nil, err
	}
	return &Fence{dev: d, raw: raw}, nil
}

// Signal moves the fence to the signaled state from the
// CPU side.
func (f *Fence) Signal() error {
	return f.dev.api.SignalFence(f.raw, 1)
}

// Destroy releases the native fence.
func (f *Fence) Destroy() {
	if f == nil {
		return
	}
	if f.raw != nil {
		f.raw.Release()
	}
	*f = Fence{}
}

// ResetFences moves every given fence back to the
// unsignaled state.
func (d *Device) ResetFences(fences []*Fence) error {
	for _, f := range fences {
		if err := d.api.SignalFence(f.raw, 0); err != nil {
			return err
		}
	}
	return nil
}

// WaitForFences blocks until the wait condition holds or the
// timeout elapses. It returns true if the condition was met
// and false on timeout. The device keeps a pool of OS events
// that is grown to the wait width and reused across calls.
func (d *Device) WaitForFences(fences []*Fence, cond driver.WaitFor, timeoutMs uint32) (bool, error) {
	if len(fences) == 0 {
		return true, nil
	}
	for len(d.events) < len(fences) {
		d.events = append(d.events, d.api.CreateEvent())
	}
	events := d.events[:len(fences)]
	for i, f := range fences {
		d.api.ResetEvent(events[i])
		if err := d.api.SetEventOnCompletion(f.raw, 1, events[i]); err != nil {
			return false, err
		}
	}
	all := cond == driver.WaitAll
	switch status := d.api.WaitForMultipleObjects(events, all, timeoutMs); {
	case status < WaitObject0+WaitStatus(len(fences)):
		return true, nil
	case status == WaitTimedOut:
		return false, nil
	default:
		panic(fmt.Sprintf("gfx: unexpected fence wait status %d", status))
	}
}

// Semaphore orders work between queues. It shares the
// fence mechanism; queue submission signals and waits it on
// the GPU timeline.
type Semaphore struct {
	raw NativeFence
}

// NewSemaphore creates an unsignaled semaphore.
func (d *Device) NewSemaphore() (*Semaphore, error) {
	raw, err := d.api.CreateFence(0)
	if err != nil {
		return nil, err
	}
	return &Semaphore{raw: raw}, nil
}

// Destroy releases the native fence behind the semaphore.
func (s *Semaphore) Destroy() {
	if s == nil {
		return
	}
	if s.raw != nil {
		s.raw.Release()
	}
	*s = Semaphore{}
}

// Copyright 2026 The gfx Authors. All rights reserved.

package dx12

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
	prev := newDeviceAPI
	newDeviceAPI = nil
	t.Cleanup(func() { newDeviceAPI = prev })

	var d drv
	if err := d.Open(); !errors.Is(err, driver.ErrNotInstalled) {
		t.Errorf("Open without provider:\nhave %v\nwant %v", err, driver.ErrNotInstalled)
	}
}

func TestOpenClose(t *testing.T) {
	prev := newDeviceAPI
	t.Cleanup(func() { newDeviceAPI = prev })
	api := &tAPI{}
	RegisterProvider(func() (DeviceAPI, error) { return api, nil })

	var d drv
	if err := d.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if d.dev == nil {
		t.Fatal("Open did not create the device")
	}
	d.Close()
	if d.dev != nil {
		t.Error("Close did not clear the device")
	}
	for _, h := range api.descHeaps {
		if !h.released {
			t.Error("Close did not release a descriptor heap")
		}
	}
}

// NewDevice creates one descriptor heap per class; view and
// sampler heaps are shader visible, target heaps are not.
func TestNewDeviceHeaps(t *testing.T) {
	_, api := tDevice(t)
	if len(api.descHeaps) != 4 {
		t.Fatalf("NewDevice created %d descriptor heaps, want 4", len(api.descHeaps))
	}
	want := []struct {
		typ     DescHeapType
		size    int
		visible bool
	}{
		{HeapRtv, rtvHeapSize, false},
		{HeapDsv, dsvHeapSize, false},
		{HeapCbvSrvUav, viewHeapSize, true},
		{HeapSampler, samplerHeapSize, true},
	}
	for i, w := range want {
		h := api.descHeaps[i]
		if h.typ != w.typ || h.capacity != w.size || h.visible != w.visible {
			t.Errorf("descriptor heap %d:\nhave %+v\nwant %+v", i, *h, w)
		}
	}
}

// Copyright 2026 The gfx Authors. All rights reserved.

// Package driver defines the abstract resource and command
// vocabulary shared by the graphics back ends.
// It is designed so that native APIs with very different
// resource lifecycle models can be implemented behind one
// set of data types without forcing a common execution
// engine on them.
package driver

import (
	"errors"
	"sync"
)

// Driver is the interface that provides methods for
// loading and unloading a back-end implementation.
// Back ends share the data types defined in this package
// and nothing else; each one exposes its capability set
// from its own package.
type Driver interface {
	// Open initializes the back end.
	// If it succeeds, further calls with the same receiver
	// have no effect. Callers should assume that Open is
	// not safe for parallel execution.
	Open() error

	// Name returns the name of the back end.
	// It must not cause the back end to be opened.
	Name() string

	// Close deinitializes the back end.
	// Closing a back end that is not open has no effect.
	// Callers should assume that Close is not safe for
	// parallel execution.
	Close()
}

// ErrNotInstalled means that a platform-specific library
// required for the back end to work is not present in the
// system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoDevice means that no suitable device could be
// found.
var ErrNoDevice = errors.New("driver: no suitable device found")

// ErrNoHostMemory means that host memory could not be
// allocated.
var ErrNoHostMemory = errors.New("driver: out of host memory")

// ErrNoDeviceMemory means that device memory could not
// be allocated.
var ErrNoDeviceMemory = errors.New("driver: out of device memory")

// ErrFatal means that the back end is in an unrecoverable
// state. Upon encountering such an error, the application
// must destroy everything that it created using the back
// end and then call the Close method. It may call Open
// again to reinitialize the back end for further use.
var ErrFatal = errors.New("driver: fatal error")

// Drivers returns the registered Drivers.
// Client code imports specific back-end packages, and then
// calls this function from init. As such, back ends that do
// not register themselves on init will not be considered
// for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Back-end implementations are expected to call Register
// exactly once, from an init function.
// If a back end with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			Events.Emit(Event{
				Level:  LevelWarn,
				Op:     "driver.Register",
				Fields: Fields{"name": drv.Name(), "replaced": true},
			})
			return
		}
	}
	drivers = append(drivers, drv)
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 2)
)

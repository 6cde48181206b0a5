package hip

import (
	"sync"
	"unsafe"

	"github.com/gohal/gohal/hardware"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Allocator allocates device memory and pinned host memory for one HIP device.
//
// It keeps track of the live allocations, and Destroy frees the ones that were not freed by the caller.
// It is safe for concurrent use.
type Allocator struct {
	rt     Runtime
	device hardware.DeviceID

	mu   sync.Mutex
	live map[unsafe.Pointer]bool // Pointer -> isHost.
}

// NewAllocator creates the allocator for device dev of the given backend.
func NewAllocator(rt Runtime, backend hardware.BackendDescriptor, dev int) *Allocator {
	return &Allocator{
		rt:     rt,
		device: hardware.NewDeviceID(backend, dev),
		live:   make(map[unsafe.Pointer]bool),
	}
}

// Device served by the allocator.
func (a *Allocator) Device() hardware.DeviceID {
	return a.device
}

// NumAllocations returns the number of live allocations (device and host).
func (a *Allocator) NumAllocations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Allocate sizeBytes of device memory, aligned to at least minAlignment bytes.
//
// HIP aligns every allocation to at least 256 bytes, an error is returned if the memory returned doesn't
// satisfy minAlignment.
func (a *Allocator) Allocate(minAlignment, sizeBytes uint64) (unsafe.Pointer, error) {
	return a.allocate(false, minAlignment, sizeBytes)
}

// AllocateHost allocates sizeBytes of pinned host memory, aligned to at least minAlignment bytes.
func (a *Allocator) AllocateHost(minAlignment, sizeBytes uint64) (unsafe.Pointer, error) {
	return a.allocate(true, minAlignment, sizeBytes)
}

func (a *Allocator) allocate(host bool, minAlignment, sizeBytes uint64) (unsafe.Pointer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.live == nil {
		return nil, errors.Errorf("allocator for device %s already destroyed", a.device)
	}
	if minAlignment != 0 && minAlignment&(minAlignment-1) != 0 {
		return nil, errors.Errorf("alignment must be a power of 2, got %d", minAlignment)
	}
	if status := a.rt.SetDevice(a.device.ID); !status.Ok() {
		return nil, errors.Errorf("hipSetDevice(%d) failed: %s", a.device.ID, status)
	}
	var ptr unsafe.Pointer
	var status Status
	if host {
		ptr, status = a.rt.HostMalloc(sizeBytes)
	} else {
		ptr, status = a.rt.Malloc(sizeBytes)
	}
	if !status.Ok() {
		return nil, errors.Errorf("allocation of %d bytes (host=%v) on device %s failed: %s",
			sizeBytes, host, a.device, status)
	}
	if minAlignment != 0 && uintptr(ptr)%uintptr(minAlignment) != 0 {
		err := errors.Errorf("allocation of %d bytes on device %s is not aligned to %d bytes",
			sizeBytes, a.device, minAlignment)
		if freeErr := a.release(ptr, host); freeErr != nil {
			klog.Errorf("Failed to free misaligned allocation: %+v", freeErr)
		}
		return nil, err
	}
	a.live[ptr] = host
	return ptr, nil
}

// Free releases device memory returned by Allocate.
func (a *Allocator) Free(ptr unsafe.Pointer) error {
	return a.free(false, ptr)
}

// FreeHost releases host memory returned by AllocateHost.
func (a *Allocator) FreeHost(ptr unsafe.Pointer) error {
	return a.free(true, ptr)
}

func (a *Allocator) free(host bool, ptr unsafe.Pointer) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.live == nil {
		return errors.Errorf("allocator for device %s already destroyed", a.device)
	}
	isHost, found := a.live[ptr]
	if !found || isHost != host {
		return errors.Errorf("pointer %p (host=%v) was not allocated by the allocator for device %s", ptr, host, a.device)
	}
	delete(a.live, ptr)
	return a.release(ptr, host)
}

func (a *Allocator) release(ptr unsafe.Pointer, host bool) error {
	var status Status
	if host {
		status = a.rt.HostFree(ptr)
	} else {
		status = a.rt.Free(ptr)
	}
	if !status.Ok() {
		return errors.Errorf("freeing %p (host=%v) on device %s failed: %s", ptr, host, a.device, status)
	}
	return nil
}

// Destroy frees any allocation still live, and the Allocator can no longer be used.
// It's a no-op if already destroyed.
//
// It returns the first error, the following ones are only logged.
func (a *Allocator) Destroy() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.live == nil {
		return nil
	}
	var firstErr error
	for ptr, host := range a.live {
		err := a.release(ptr, host)
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
		} else {
			klog.Errorf("Allocator.Destroy: %+v", err)
		}
	}
	a.live = nil
	return firstErr
}

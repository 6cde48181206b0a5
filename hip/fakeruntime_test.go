package hip

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/gohal/gohal/hardware"
	"github.com/gohal/gohal/rterror"
	"github.com/gohal/gohal/settings"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

// fakeRuntime emulates a HIP runtime with a fixed set of devices.
type fakeRuntime struct {
	mu sync.Mutex

	devices     []DeviceProps
	countStatus Status
	propsStatus map[int]Status

	driverVersion int
	driverStatus  Status

	mallocStatus Status
	misalign     bool // Malloc returns addresses off by 1 byte.

	currentDevice  int
	setDeviceCalls int
	buffers        map[unsafe.Pointer][]byte
	numFrees       int
	numHostFrees   int

	eventStatus     Status
	eventsCreated   int
	eventsDestroyed int
}

var _ Runtime = (*fakeRuntime)(nil)

func newFakeRuntime(devices ...DeviceProps) *fakeRuntime {
	return &fakeRuntime{
		devices:       devices,
		propsStatus:   make(map[int]Status),
		driverVersion: 60342131,
		buffers:       make(map[unsafe.Pointer][]byte),
	}
}

// mi250Props is modeled after an AMD Instinct MI250X.
func mi250Props() DeviceProps {
	return DeviceProps{
		Name:                "AMD Instinct MI250X",
		GCNArchName:         "gfx90a:sramecc+:xnack-",
		TotalGlobalMem:      68702699520,
		SharedMemPerBlock:   65536,
		TotalConstMem:       2147483647,
		L2CacheSize:         8388608,
		WarpSize:            64,
		MaxThreadsPerBlock:  1024,
		MaxThreadsDim:       [3]int{1024, 1024, 1024},
		MaxGridSize:         [3]int{2147483647, 65536, 65536},
		MultiProcessorCount: 110,
		ClockRate:           1700000,
		ConcurrentKernels:   1,
		Major:               9,
		PCIBusID:            0xc1,
	}
}

func (r *fakeRuntime) DeviceCount() (int, Status) {
	if !r.countStatus.Ok() {
		return 0, r.countStatus
	}
	return len(r.devices), StatusSuccess
}

func (r *fakeRuntime) DeviceProperties(dev int) (DeviceProps, Status) {
	if status := r.propsStatus[dev]; !status.Ok() {
		return DeviceProps{}, status
	}
	if dev < 0 || dev >= len(r.devices) {
		return DeviceProps{}, StatusErrorInvalidDevice
	}
	return r.devices[dev], StatusSuccess
}

func (r *fakeRuntime) DriverVersion() (int, Status) {
	if !r.driverStatus.Ok() {
		return 0, r.driverStatus
	}
	return r.driverVersion, StatusSuccess
}

func (r *fakeRuntime) SetDevice(dev int) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setDeviceCalls++
	if dev < 0 || dev >= len(r.devices) {
		return StatusErrorInvalidDevice
	}
	r.currentDevice = dev
	return StatusSuccess
}

func (r *fakeRuntime) malloc(sizeBytes uint64) (unsafe.Pointer, Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.mallocStatus.Ok() {
		return nil, r.mallocStatus
	}
	// Over-allocate so that the address can be aligned (or misaligned) to 256 bytes.
	buf := make([]byte, sizeBytes+512)
	offset := 256 - uintptr(unsafe.Pointer(&buf[0]))%256
	if r.misalign {
		offset++
	}
	ptr := unsafe.Pointer(&buf[offset])
	r.buffers[ptr] = buf
	return ptr, StatusSuccess
}

func (r *fakeRuntime) free(ptr unsafe.Pointer) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.buffers[ptr]; !found {
		return StatusErrorInvalidValue
	}
	delete(r.buffers, ptr)
	return StatusSuccess
}

func (r *fakeRuntime) Malloc(sizeBytes uint64) (unsafe.Pointer, Status) {
	return r.malloc(sizeBytes)
}

func (r *fakeRuntime) HostMalloc(sizeBytes uint64) (unsafe.Pointer, Status) {
	return r.malloc(sizeBytes)
}

func (r *fakeRuntime) Free(ptr unsafe.Pointer) Status {
	status := r.free(ptr)
	if status.Ok() {
		r.mu.Lock()
		r.numFrees++
		r.mu.Unlock()
	}
	return status
}

func (r *fakeRuntime) HostFree(ptr unsafe.Pointer) Status {
	status := r.free(ptr)
	if status.Ok() {
		r.mu.Lock()
		r.numHostFrees++
		r.mu.Unlock()
	}
	return status
}

func (r *fakeRuntime) numLiveBuffers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffers)
}

func (r *fakeRuntime) EventCreate() (Event, Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.eventStatus.Ok() {
		return nil, r.eventStatus
	}
	r.eventsCreated++
	return Event(unsafe.Pointer(new(int))), StatusSuccess
}

func (r *fakeRuntime) EventDestroy(Event) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventsDestroyed++
	return StatusSuccess
}

// newTestManager creates a ROCm HardwareManager over rt, reporting to a new channel.
func newTestManager(t *testing.T, rt Runtime, s *settings.Settings) (*HardwareManager, *rterror.Channel) {
	t.Helper()
	if s == nil {
		s = &settings.Settings{}
	}
	ch := rterror.NewChannel()
	target := TargetROCm
	m := NewHardwareManager(hardware.PlatformROCm, Config{
		Runtime:  rt,
		Target:   &target,
		Settings: s,
		Reporter: ch,
	})
	t.Cleanup(func() {
		if err := m.Destroy(); err != nil {
			t.Errorf("HardwareManager.Destroy failed: %+v", err)
		}
	})
	return m, ch
}

package hip

import "unsafe"

// Event is an opaque handle to a HIP event (hipEvent_t).
type Event unsafe.Pointer

// DeviceProps is the subset of hipDeviceProp_t used by the hardware context.
type DeviceProps struct {
	Name        string
	GCNArchName string

	TotalGlobalMem    uint64
	SharedMemPerBlock uint64
	TotalConstMem     uint64
	L2CacheSize       int

	WarpSize            int
	MaxThreadsPerBlock  int
	MaxThreadsDim       [3]int
	MaxGridSize         [3]int
	MultiProcessorCount int

	// ClockRate in kHz.
	ClockRate int

	// ConcurrentKernels is 1 if the device can run multiple kernels concurrently, 0 otherwise.
	ConcurrentKernels int

	// Major and Minor compute capability (meaningful on CUDA targets).
	Major, Minor int

	PCIDomainID, PCIBusID, PCIDeviceID int
}

// Runtime is the subset of the HIP runtime API used by this package.
//
// Every call returns a Status, StatusSuccess if it succeeded. Implementations must be safe for
// concurrent use: see NewNativeRuntime for the implementation backed by the real HIP library.
type Runtime interface {
	// DeviceCount returns the number of devices (hipGetDeviceCount).
	DeviceCount() (int, Status)

	// DeviceProperties returns the properties of the device (hipGetDeviceProperties).
	DeviceProperties(dev int) (DeviceProps, Status)

	// DriverVersion returns the version of the installed driver (hipDriverGetVersion).
	DriverVersion() (int, Status)

	// SetDevice makes dev the current device of the calling thread (hipSetDevice).
	SetDevice(dev int) Status

	// Malloc allocates memory on the current device (hipMalloc).
	Malloc(sizeBytes uint64) (unsafe.Pointer, Status)

	// Free releases memory allocated with Malloc (hipFree).
	Free(ptr unsafe.Pointer) Status

	// HostMalloc allocates pinned host memory (hipHostMalloc).
	HostMalloc(sizeBytes uint64) (unsafe.Pointer, Status)

	// HostFree releases memory allocated with HostMalloc (hipHostFree).
	HostFree(ptr unsafe.Pointer) Status

	// EventCreate creates an event on the current device (hipEventCreate).
	EventCreate() (Event, Status)

	// EventDestroy destroys an event (hipEventDestroy).
	EventDestroy(event Event) Status
}

// noDeviceRuntime is used when the binary was built without the HIP runtime:
// it reports no devices and fails every other call.
type noDeviceRuntime struct{}

var _ Runtime = noDeviceRuntime{}

func (noDeviceRuntime) DeviceCount() (int, Status) { return 0, StatusErrorNoDevice }

func (noDeviceRuntime) DeviceProperties(int) (DeviceProps, Status) {
	return DeviceProps{}, StatusErrorNoDevice
}

func (noDeviceRuntime) DriverVersion() (int, Status) { return 0, StatusErrorNoDevice }

func (noDeviceRuntime) SetDevice(int) Status { return StatusErrorNoDevice }

func (noDeviceRuntime) Malloc(uint64) (unsafe.Pointer, Status) { return nil, StatusErrorNoDevice }

func (noDeviceRuntime) Free(unsafe.Pointer) Status { return StatusErrorNoDevice }

func (noDeviceRuntime) HostMalloc(uint64) (unsafe.Pointer, Status) { return nil, StatusErrorNoDevice }

func (noDeviceRuntime) HostFree(unsafe.Pointer) Status { return StatusErrorNoDevice }

func (noDeviceRuntime) EventCreate() (Event, Status) { return nil, StatusErrorNoDevice }

func (noDeviceRuntime) EventDestroy(Event) Status { return StatusErrorNoDevice }

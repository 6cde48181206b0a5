//go:build hip

package hip

/*
#cgo CFLAGS: -D__HIP_PLATFORM_AMD__ -I/opt/rocm/include
#cgo LDFLAGS: -L/opt/rocm/lib -lamdhip64
#include <stdlib.h>
#include <hip/hip_runtime_api.h>

// Some of the HIP API entry points are macros (e.g. hipGetDeviceProperties is versioned),
// so they are wrapped in plain functions that cgo can call.

static hipError_t call_hipGetDeviceCount(int *count) { return hipGetDeviceCount(count); }
static hipError_t call_hipGetDeviceProperties(hipDeviceProp_t *props, int dev) {
	return hipGetDeviceProperties(props, dev);
}
static hipError_t call_hipDriverGetVersion(int *version) { return hipDriverGetVersion(version); }
static hipError_t call_hipSetDevice(int dev) { return hipSetDevice(dev); }
static hipError_t call_hipMalloc(void **ptr, size_t size) { return hipMalloc(ptr, size); }
static hipError_t call_hipFree(void *ptr) { return hipFree(ptr); }
static hipError_t call_hipHostMalloc(void **ptr, size_t size) { return hipHostMalloc(ptr, size, hipHostMallocDefault); }
static hipError_t call_hipHostFree(void *ptr) { return hipHostFree(ptr); }
static hipError_t call_hipEventCreate(hipEvent_t *event) { return hipEventCreate(event); }
static hipError_t call_hipEventDestroy(hipEvent_t event) { return hipEventDestroy(event); }
*/
import "C"
import "unsafe"

// nativeRuntime calls the HIP runtime library (libamdhip64) through cgo.
type nativeRuntime struct{}

var _ Runtime = nativeRuntime{}

// NewNativeRuntime returns the Runtime backed by the HIP runtime library.
func NewNativeRuntime() Runtime {
	return nativeRuntime{}
}

// DefaultRuntime returns the Runtime used when none is configured: with the "hip" build tag
// it is the native HIP runtime.
func DefaultRuntime() Runtime {
	return NewNativeRuntime()
}

func (nativeRuntime) DeviceCount() (int, Status) {
	var count C.int
	status := Status(C.call_hipGetDeviceCount(&count))
	if !status.Ok() {
		return 0, status
	}
	return int(count), status
}

func (nativeRuntime) DeviceProperties(dev int) (DeviceProps, Status) {
	cProps := (*C.hipDeviceProp_t)(C.calloc(1, C.sizeof_hipDeviceProp_t))
	defer C.free(unsafe.Pointer(cProps))
	status := Status(C.call_hipGetDeviceProperties(cProps, C.int(dev)))
	if !status.Ok() {
		return DeviceProps{}, status
	}
	props := DeviceProps{
		Name:                C.GoString(&cProps.name[0]),
		GCNArchName:         C.GoString(&cProps.gcnArchName[0]),
		TotalGlobalMem:      uint64(cProps.totalGlobalMem),
		SharedMemPerBlock:   uint64(cProps.sharedMemPerBlock),
		TotalConstMem:       uint64(cProps.totalConstMem),
		L2CacheSize:         int(cProps.l2CacheSize),
		WarpSize:            int(cProps.warpSize),
		MaxThreadsPerBlock:  int(cProps.maxThreadsPerBlock),
		MultiProcessorCount: int(cProps.multiProcessorCount),
		ClockRate:           int(cProps.clockRate),
		ConcurrentKernels:   int(cProps.concurrentKernels),
		Major:               int(cProps.major),
		Minor:               int(cProps.minor),
		PCIDomainID:         int(cProps.pciDomainID),
		PCIBusID:            int(cProps.pciBusID),
		PCIDeviceID:         int(cProps.pciDeviceID),
	}
	for axis := range 3 {
		props.MaxThreadsDim[axis] = int(cProps.maxThreadsDim[axis])
		props.MaxGridSize[axis] = int(cProps.maxGridSize[axis])
	}
	return props, status
}

func (nativeRuntime) DriverVersion() (int, Status) {
	var version C.int
	status := Status(C.call_hipDriverGetVersion(&version))
	return int(version), status
}

func (nativeRuntime) SetDevice(dev int) Status {
	return Status(C.call_hipSetDevice(C.int(dev)))
}

func (nativeRuntime) Malloc(sizeBytes uint64) (unsafe.Pointer, Status) {
	var ptr unsafe.Pointer
	status := Status(C.call_hipMalloc(&ptr, C.size_t(sizeBytes)))
	return ptr, status
}

func (nativeRuntime) Free(ptr unsafe.Pointer) Status {
	return Status(C.call_hipFree(ptr))
}

func (nativeRuntime) HostMalloc(sizeBytes uint64) (unsafe.Pointer, Status) {
	var ptr unsafe.Pointer
	status := Status(C.call_hipHostMalloc(&ptr, C.size_t(sizeBytes)))
	return ptr, status
}

func (nativeRuntime) HostFree(ptr unsafe.Pointer) Status {
	return Status(C.call_hipHostFree(ptr))
}

func (nativeRuntime) EventCreate() (Event, Status) {
	var event C.hipEvent_t
	status := Status(C.call_hipEventCreate(&event))
	return Event(unsafe.Pointer(event)), status
}

func (nativeRuntime) EventDestroy(event Event) Status {
	return Status(C.call_hipEventDestroy(C.hipEvent_t(unsafe.Pointer(event))))
}

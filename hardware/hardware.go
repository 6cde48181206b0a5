// Package hardware defines the backend-agnostic view of compute devices: the closed enumerations of
// aspects and properties, device identifiers, and the Manager and Context interfaces every backend
// (HIP, CUDA, Level Zero, ...) implements.
//
// All the queries on a Context are total functions over the enumerations: every Aspect, UintProperty and
// UintListProperty has a defined answer for every device, and properties that don't apply to a device
// (e.g. images) report 0 or false.
package hardware

import (
	"fmt"

	"k8s.io/klog/v2"
)

// BackendDescriptor describes a backend by the hardware it drives and the API used to drive it.
type BackendDescriptor struct {
	HardwarePlatform HardwarePlatform
	APIPlatform      APIPlatform
}

// ID returns the unique backend id associated with the API platform. It terminates the process if
// the API platform is not one of the enumerated values.
func (b BackendDescriptor) ID() BackendID {
	switch b.APIPlatform {
	case APIPlatformCUDA:
		return BackendIDCUDA
	case APIPlatformHIP:
		return BackendIDHIP
	case APIPlatformLevelZero:
		return BackendIDLevelZero
	case APIPlatformOMP:
		return BackendIDOMP
	case APIPlatformOpenCL:
		return BackendIDOpenCL
	}
	klog.Fatalf("BackendDescriptor.ID: unknown API platform %s", b.APIPlatform)
	return 0
}

// String implements fmt.Stringer.
func (b BackendDescriptor) String() string {
	return fmt.Sprintf("%s/%s", b.APIPlatform, b.HardwarePlatform)
}

// DeviceID references a device without holding a pointer to it.
//
// It is comparable, so it can be used as a map key, and it is resolved back to a Context
// by the Manager of its backend.
type DeviceID struct {
	Backend BackendDescriptor
	ID      int
}

// NewDeviceID creates a DeviceID.
func NewDeviceID(backend BackendDescriptor, id int) DeviceID {
	return DeviceID{Backend: backend, ID: id}
}

// BackendID returns the unique id of the backend owning the device.
func (d DeviceID) BackendID() BackendID {
	return d.Backend.ID()
}

// String implements fmt.Stringer.
func (d DeviceID) String() string {
	return fmt.Sprintf("%s#%d", d.Backend, d.ID)
}

// Manager enumerates the devices of one backend.
//
// The set of devices is fixed when the Manager is created.
type Manager interface {
	// NumDevices returns the number of devices enumerated.
	NumDevices() int

	// Device returns the context of the device with the given index, or nil if the index is invalid.
	Device(index int) Context

	// DeviceID returns the identifier for the device with the given index.
	DeviceID(index int) DeviceID

	// NumPlatforms returns the number of platforms exposed by the backend.
	NumPlatforms() int
}

// Context answers the capability queries about one device.
//
// All methods are read-only and safe for concurrent use.
type Context interface {
	IsCPU() bool
	IsGPU() bool

	// MaxKernelConcurrency returns an estimate of the number of kernels that can run concurrently.
	MaxKernelConcurrency() int

	// MaxMemcpyConcurrency returns an estimate of the number of memory copies that can run concurrently.
	MaxMemcpyConcurrency() int

	DeviceName() string
	VendorName() string
	DeviceArch() string
	DriverVersion() string
	Profile() string

	// Has returns whether the device supports the aspect.
	Has(aspect Aspect) bool

	// Property returns the value of an unsigned integer property.
	Property(prop UintProperty) uint64

	// ListProperty returns the value of a list property.
	ListProperty(prop UintListProperty) []uint64

	// PlatformIndex returns the index of the platform the device belongs to.
	PlatformIndex() int
}

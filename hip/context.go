package hip

import (
	"strconv"

	"github.com/gohal/gohal/hardware"
	"github.com/gohal/gohal/rterror"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// FullProfile is the profile reported by every HIP device.
const FullProfile = "FULL_PROFILE"

// HardwareContext is one HIP device. It owns the device Allocator and EventPool.
//
// The device properties are read once, when the context is created: all queries are read-only, except
// DriverVersion which asks the runtime every time.
type HardwareContext struct {
	dev      int
	platform hardware.HardwarePlatform
	rt       Runtime
	target   *Target
	reporter rterror.Reporter

	props     DeviceProps
	allocator *Allocator
	eventPool *EventPool
	arch      uint64
}

var _ hardware.Context = (*HardwareContext)(nil)

// newHardwareContext is called by the HardwareManager, config must have its defaults set.
func newHardwareContext(dev int, platform hardware.HardwarePlatform, config Config) *HardwareContext {
	ctx := &HardwareContext{
		dev:      dev,
		platform: platform,
		rt:       config.Runtime,
		target:   config.Target,
		reporter: config.Reporter,
	}
	props, status := ctx.rt.DeviceProperties(dev)
	if !status.Ok() {
		ctx.reporter.RegisterError(rterror.Here(), rterror.Info{
			Message: "hip_hardware_manager: Could not query device properties",
			Code:    rterror.Code{Component: "HIP", Value: int(status)},
		})
		props = DeviceProps{}
	}
	ctx.props = props
	backend := hardware.BackendDescriptor{HardwarePlatform: platform, APIPlatform: hardware.APIPlatformHIP}
	ctx.allocator = NewAllocator(ctx.rt, backend, dev)
	ctx.eventPool = NewEventPool(ctx.rt, dev)
	ctx.arch = ParseArchitecture(props.GCNArchName)
	klog.V(1).Infof("HIP device #%d: %q (%s)", dev, props.Name, props.GCNArchName)
	return ctx
}

// Index of the device in the HIP runtime.
func (c *HardwareContext) Index() int { return c.dev }

// Props returns the device properties read when the context was created.
func (c *HardwareContext) Props() DeviceProps { return c.props }

// Allocator owned by the device.
func (c *HardwareContext) Allocator() *Allocator { return c.allocator }

// EventPool owned by the device.
func (c *HardwareContext) EventPool() *EventPool { return c.eventPool }

// IsCPU is true when the device is the host CPU under hipCPU emulation.
func (c *HardwareContext) IsCPU() bool { return c.target.IsCPUEmulation }

// IsGPU is true for every device not emulated on the CPU.
func (c *HardwareContext) IsGPU() bool { return !c.target.IsCPUEmulation }

// MaxKernelConcurrency returns 2 if the device supports concurrent kernels, 1 otherwise.
func (c *HardwareContext) MaxKernelConcurrency() int {
	return c.props.ConcurrentKernels + 1
}

// MaxMemcpyConcurrency returns the same as MaxKernelConcurrency: the number of copy engines is not queried.
func (c *HardwareContext) MaxMemcpyConcurrency() int {
	return c.MaxKernelConcurrency()
}

// DeviceName as reported by the runtime.
func (c *HardwareContext) DeviceName() string { return c.props.Name }

// VendorName of the target, e.g. "AMD".
func (c *HardwareContext) VendorName() string { return c.target.VendorName }

// DeviceArch returns the architecture name, e.g. "gfx90a:sramecc+:xnack-".
func (c *HardwareContext) DeviceArch() string { return c.props.GCNArchName }

// Architecture returns the numeric architecture parsed from DeviceArch, see ParseArchitecture.
func (c *HardwareContext) Architecture() uint64 { return c.arch }

// DriverVersion queries the runtime for the driver version. On failure an error is reported and it
// returns "0".
func (c *HardwareContext) DriverVersion() string {
	version, status := c.rt.DriverVersion()
	if !status.Ok() {
		c.reporter.RegisterError(rterror.Here(), rterror.Info{
			Message: "hip_hardware_manager: Querying driver version failed",
			Code:    rterror.Code{Component: "HIP", Value: int(status)},
		})
		return "0"
	}
	return strconv.Itoa(version)
}

// Profile is always FullProfile.
func (c *HardwareContext) Profile() string { return FullProfile }

// PlatformIndex is always 0: HIP has only one platform.
func (c *HardwareContext) PlatformIndex() int { return 0 }

// Destroy the event pool and the allocator, in this order. The context can't be used afterwards.
func (c *HardwareContext) Destroy() error {
	if c == nil {
		return nil
	}
	errPool := c.eventPool.Destroy()
	errAlloc := c.allocator.Destroy()
	if errPool != nil {
		if errAlloc != nil {
			klog.Errorf("HardwareContext.Destroy: %+v", errAlloc)
		}
		return errors.WithMessagef(errPool, "destroying HIP device #%d", c.dev)
	}
	if errAlloc != nil {
		return errors.WithMessagef(errAlloc, "destroying HIP device #%d", c.dev)
	}
	return nil
}

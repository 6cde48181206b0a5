package hip

import (
	"github.com/gohal/gohal/hardware"
	"github.com/gohal/gohal/rterror"
	"github.com/gohal/gohal/settings"
	"k8s.io/klog/v2"
)

// Config holds the collaborators of the HIP backend. Zero values are replaced by the defaults,
// see Config.WithDefaults.
type Config struct {
	// Runtime used to talk to the devices. Defaults to DefaultRuntime().
	Runtime Runtime

	// Target selects the variant of the backend. Defaults to DefaultTarget().
	Target *Target

	// Settings with the process configuration. Defaults to settings.Get().
	Settings *settings.Settings

	// Reporter receives the recoverable errors and warnings. Defaults to rterror.Default.
	Reporter rterror.Reporter
}

// WithDefaults returns a copy of the config with the unset fields filled with their defaults.
func (c Config) WithDefaults() Config {
	if c.Runtime == nil {
		c.Runtime = DefaultRuntime()
	}
	if c.Target == nil {
		target := DefaultTarget()
		c.Target = &target
	}
	if c.Settings == nil {
		c.Settings = settings.Get()
	}
	if c.Reporter == nil {
		c.Reporter = rterror.Default
	}
	return c
}

// HardwareManager enumerates the HIP devices, and owns one HardwareContext per device.
//
// The devices are enumerated once, when the manager is created. After that it is read-only and safe
// for concurrent use.
type HardwareManager struct {
	platform hardware.HardwarePlatform
	config   Config
	devices  []*HardwareContext
}

var _ hardware.Manager = (*HardwareManager)(nil)

// NewHardwareManager enumerates the HIP devices of the given platform.
//
// It never fails: if the devices can't be counted, a warning is reported and the manager has no devices.
func NewHardwareManager(platform hardware.HardwarePlatform, config Config) *HardwareManager {
	config = config.WithDefaults()
	m := &HardwareManager{
		platform: platform,
		config:   config,
	}

	if settings.HasDeviceVisibilityMask(config.Settings.VisibilityMask, hardware.BackendIDHIP) {
		config.Reporter.PrintWarning(rterror.Here(), rterror.Info{
			Message: "hip_hardware_manager: HIP backend does not support device visibility masks. " +
				"Use HIP_VISIBLE_DEVICES instead.",
		})
	}

	numDevices, status := config.Runtime.DeviceCount()
	if !status.Ok() {
		if status != StatusErrorNoDevice {
			config.Reporter.PrintWarning(rterror.Here(), rterror.Info{
				Message: "hip_hardware_manager: Could not obtain number of devices",
				Code:    rterror.Code{Component: "HIP", Value: int(status)},
			})
		}
		numDevices = 0
	}
	klog.V(1).Infof("HIP backend (%s): %d device(s) found", platform, numDevices)

	m.devices = make([]*HardwareContext, 0, numDevices)
	for dev := range numDevices {
		m.devices = append(m.devices, newHardwareContext(dev, platform, config))
	}
	return m
}

// Platform returns the hardware platform tag of the manager.
func (m *HardwareManager) Platform() hardware.HardwarePlatform {
	return m.platform
}

// NumDevices returns the number of devices enumerated.
func (m *HardwareManager) NumDevices() int {
	return len(m.devices)
}

// Device returns the context of the device with the given index.
// If the index is invalid, an error is reported and it returns nil.
func (m *HardwareManager) Device(index int) hardware.Context {
	ctx := m.HIPDevice(index)
	if ctx == nil {
		return nil
	}
	return ctx
}

// HIPDevice is like Device, but returns the concrete HardwareContext.
func (m *HardwareManager) HIPDevice(index int) *HardwareContext {
	if !m.checkIndex(index) {
		return nil
	}
	return m.devices[index]
}

// DeviceID returns the identifier of the device with the given index.
//
// If the index is invalid, an error is reported, but the identifier is still returned.
func (m *HardwareManager) DeviceID(index int) hardware.DeviceID {
	m.checkIndex(index)
	return hardware.NewDeviceID(m.backendDescriptor(), index)
}

// NumPlatforms always returns 1.
func (m *HardwareManager) NumPlatforms() int {
	return 1
}

func (m *HardwareManager) backendDescriptor() hardware.BackendDescriptor {
	return hardware.BackendDescriptor{HardwarePlatform: m.platform, APIPlatform: hardware.APIPlatformHIP}
}

func (m *HardwareManager) checkIndex(index int) bool {
	if index >= 0 && index < len(m.devices) {
		return true
	}
	m.config.Reporter.RegisterError(rterror.Here(), rterror.Info{
		Message: "hip_hardware_manager: Attempt to access invalid device detected.",
	})
	return false
}

// Destroy destroys all the device contexts, and the manager has no devices afterwards.
//
// It returns the first error, the following ones are only logged.
func (m *HardwareManager) Destroy() error {
	var firstErr error
	for _, ctx := range m.devices {
		err := ctx.Destroy()
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
		} else {
			klog.Errorf("HardwareManager.Destroy: %+v", err)
		}
	}
	m.devices = nil
	return firstErr
}

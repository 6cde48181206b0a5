package hip

import (
	"github.com/gohal/gohal/hardware"
	"github.com/gohal/gohal/rterror"
	"k8s.io/klog/v2"
)

// BackendName is the human readable name of the HIP backend.
const BackendName = "HIP"

// Backend wires the HIP hardware manager into a runtime: it owns the HardwareManager, and through it the
// per-device allocators.
type Backend struct {
	config  Config
	manager *HardwareManager
}

// NewBackend creates the HIP backend and enumerates its devices. The hardware platform is taken from
// config.Target.
func NewBackend(config Config) *Backend {
	config = config.WithDefaults()
	b := &Backend{config: config}
	b.manager = NewHardwareManager(config.Target.HardwarePlatform, config)
	klog.V(1).Infof("%s backend created for target %q", BackendName, config.Target.Name)
	return b
}

// Name returns "HIP".
func (b *Backend) Name() string { return BackendName }

func (b *Backend) APIPlatform() hardware.APIPlatform { return hardware.APIPlatformHIP }

func (b *Backend) HardwarePlatform() hardware.HardwarePlatform { return b.manager.Platform() }

func (b *Backend) UniqueBackendID() hardware.BackendID { return hardware.BackendIDHIP }

// Target the backend was built for.
func (b *Backend) Target() Target { return *b.config.Target }

// HardwareManager owned by the backend.
func (b *Backend) HardwareManager() *HardwareManager { return b.manager }

// Allocator returns the allocator of the device. If dev doesn't belong to this backend, or its index
// is invalid, an error is reported and it returns nil.
func (b *Backend) Allocator(dev hardware.DeviceID) *Allocator {
	if !dev.Backend.APIPlatform.IsAAPIPlatform() || dev.BackendID() != hardware.BackendIDHIP {
		b.config.Reporter.RegisterError(rterror.Here(), rterror.Info{
			Message: "hip_backend: Device " + dev.String() + " does not belong to the HIP backend",
		})
		return nil
	}
	ctx := b.manager.HIPDevice(dev.ID)
	if ctx == nil {
		return nil
	}
	return ctx.Allocator()
}

// Destroy the hardware manager, and with it every device context.
func (b *Backend) Destroy() error {
	return b.manager.Destroy()
}

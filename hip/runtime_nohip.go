//go:build !hip

package hip

import (
	"sync"

	"k8s.io/klog/v2"
)

var onceNoHIPHint sync.Once

// DefaultRuntime returns the Runtime used when none is configured.
//
// This binary was built without the "hip" build tag, so there is no HIP library to talk to: the runtime
// returned reports no devices.
func DefaultRuntime() Runtime {
	onceNoHIPHint.Do(func() {
		if libPath, err := FindLibrary(); err == nil {
			klog.Warningf("HIP runtime found in %q, but this binary was built without the \"hip\" build tag: "+
				"no HIP devices will be reported", libPath)
		}
	})
	return noDeviceRuntime{}
}

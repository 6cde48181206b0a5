// Package settings holds the process-wide runtime settings, read once from the environment.
package settings

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gohal/gohal/hardware"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// VisibilityMaskEnv is the environment variable holding the device visibility mask.
	//
	// The mask is a ";" separated list of backend entries, each one optionally restricting the visible
	// devices of the backend: e.g. "omp;cuda:0,2" makes visible the OpenMP backend and devices 0 and 2
	// of the CUDA backend. Backends not listed are hidden. An empty mask shows everything.
	VisibilityMaskEnv = "ACPP_VISIBILITY_MASK"

	// DebugLevelEnv is the environment variable holding the debug (verbosity) level.
	DebugLevelEnv = "ACPP_DEBUG_LEVEL"

	// legacyEnvPrefix is accepted as a fallback for every variable prefixed with "ACPP_".
	legacyEnvPrefix = "HIPSYCL_"
)

// backendNames maps the names accepted in the visibility mask to backend ids.
var backendNames = map[string]hardware.BackendID{
	"cuda": hardware.BackendIDCUDA,
	"hip":  hardware.BackendIDHIP,
	"ze":   hardware.BackendIDLevelZero,
	"omp":  hardware.BackendIDOMP,
	"ocl":  hardware.BackendIDOpenCL,
}

// BackendMask is the visibility mask entry of one backend.
type BackendMask struct {
	// Devices lists the visible device indices. If nil, all devices of the backend are visible.
	Devices []int
}

// VisibilityMask maps backends to their visibility entries. A nil or empty mask doesn't hide anything.
type VisibilityMask map[hardware.BackendID]BackendMask

// ParseVisibilityMask parses the value of VisibilityMaskEnv.
func ParseVisibilityMask(value string) (VisibilityMask, error) {
	mask := make(VisibilityMask)
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, devices, hasDevices := strings.Cut(entry, ":")
		backend, found := backendNames[strings.ToLower(strings.TrimSpace(name))]
		if !found {
			return nil, errors.Errorf("unknown backend %q in visibility mask %q", name, value)
		}
		var backendMask BackendMask
		if hasDevices {
			backendMask.Devices = []int{}
			for _, dev := range strings.Split(devices, ",") {
				dev = strings.TrimSpace(dev)
				if dev == "" {
					continue
				}
				idx, err := strconv.Atoi(dev)
				if err != nil || idx < 0 {
					return nil, errors.Errorf("invalid device index %q for backend %q in visibility mask %q", dev, name, value)
				}
				backendMask.Devices = append(backendMask.Devices, idx)
			}
		}
		mask[backend] = backendMask
	}
	return mask, nil
}

// HasDeviceVisibilityMask returns whether the mask restricts the individual devices of the backend,
// as opposed to only making the whole backend visible or not.
func HasDeviceVisibilityMask(mask VisibilityMask, backend hardware.BackendID) bool {
	entry, found := mask[backend]
	return found && entry.Devices != nil
}

// IsDeviceVisible returns whether the mask allows the device.
func IsDeviceVisible(mask VisibilityMask, dev hardware.DeviceID) bool {
	if len(mask) == 0 {
		return true
	}
	entry, found := mask[dev.BackendID()]
	if !found {
		return false
	}
	return entry.Devices == nil || slices.Contains(entry.Devices, dev.ID)
}

// Settings holds the process-wide configuration.
type Settings struct {
	VisibilityMask VisibilityMask
	DebugLevel     int
}

// FromEnv builds the Settings using lookup to read the environment: usually os.LookupEnv.
//
// Invalid values are logged and ignored.
func FromEnv(lookup func(key string) (string, bool)) *Settings {
	s := &Settings{}
	if value, found := lookupWithLegacy(lookup, VisibilityMaskEnv); found {
		mask, err := ParseVisibilityMask(value)
		if err != nil {
			klog.Errorf("Ignoring %s: %v", VisibilityMaskEnv, err)
		} else {
			s.VisibilityMask = mask
		}
	}
	if value, found := lookupWithLegacy(lookup, DebugLevelEnv); found {
		level, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			klog.Errorf("Ignoring %s=%q: not an integer", DebugLevelEnv, value)
		} else {
			s.DebugLevel = level
		}
	}
	return s
}

func lookupWithLegacy(lookup func(key string) (string, bool), key string) (string, bool) {
	if value, found := lookup(key); found {
		return value, true
	}
	return lookup(legacyEnvPrefix + strings.TrimPrefix(key, "ACPP_"))
}

var (
	processSettings *Settings
	onceSettings    sync.Once
)

// Get returns the process-wide settings, read from the environment on the first call.
func Get() *Settings {
	onceSettings.Do(func() {
		processSettings = FromEnv(os.LookupEnv)
	})
	return processSettings
}

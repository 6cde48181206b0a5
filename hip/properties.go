package hip

import (
	"math"

	"github.com/gohal/gohal/hardware"
	"k8s.io/klog/v2"
)

// The answers to the device queries are tables indexed by the enum values.
// The blank arrays below fail to compile if a table doesn't have exactly one entry per enum value.

type (
	aspectFn       func(c *HardwareContext) bool
	uintPropertyFn func(c *HardwareContext) uint64
	listPropertyFn func(c *HardwareContext) []uint64
)

func constAspect(v bool) aspectFn {
	return func(*HardwareContext) bool { return v }
}

func constProperty(v uint64) uintPropertyFn {
	return func(*HardwareContext) uint64 { return v }
}

var aspectTable = [...]aspectFn{
	hardware.AspectEmulatedLocalMemory:     constAspect(false),
	hardware.AspectHostUnifiedMemory:       constAspect(false),
	hardware.AspectErrorCorrection:         constAspect(false),
	hardware.AspectGlobalMemCache:          constAspect(true),
	hardware.AspectGlobalMemCacheReadOnly:  constAspect(false),
	hardware.AspectGlobalMemCacheReadWrite: constAspect(true), // Read/write caches since GCN1.
	hardware.AspectImages:                  constAspect(false),
	hardware.AspectLittleEndian:            constAspect(true),

	hardware.AspectSubGroupIndependentForwardProgress: constAspect(true),

	hardware.AspectUSMDeviceAllocations:       constAspect(true),
	hardware.AspectUSMHostAllocations:         constAspect(true),
	hardware.AspectUSMAtomicHostAllocations:   constAspect(false),
	hardware.AspectUSMSharedAllocations:       constAspect(true),
	hardware.AspectUSMAtomicSharedAllocations: constAspect(false),
	hardware.AspectUSMSystemAllocations:       constAspect(false),

	hardware.AspectExecutionTimestamps: constAspect(true),
	hardware.AspectSSCPKernels:         func(c *HardwareContext) bool { return c.target.SSCPKernels },

	hardware.AspectWorkItemIndependentForwardProgress: constAspect(false),
}

var (
	_ [hardware.NumAspects - len(aspectTable)]struct{}
	_ [len(aspectTable) - hardware.NumAspects]struct{}
)

func globalSize(axis int) uintPropertyFn {
	return func(c *HardwareContext) uint64 {
		return uint64(c.props.MaxThreadsDim[axis]) * uint64(c.props.MaxGridSize[axis])
	}
}

func groupSize(axis int) uintPropertyFn {
	return func(c *HardwareContext) uint64 { return uint64(c.props.MaxThreadsDim[axis]) }
}

func preferredWidth(field func(w VectorWidths) uint64) uintPropertyFn {
	return func(c *HardwareContext) uint64 { return field(c.target.PreferredVectorWidths) }
}

func nativeWidth(field func(w VectorWidths) uint64) uintPropertyFn {
	return func(c *HardwareContext) uint64 { return field(c.target.NativeVectorWidths) }
}

var uintPropertyTable = [...]uintPropertyFn{
	hardware.PropertyMaxComputeUnits: func(c *HardwareContext) uint64 { return uint64(c.props.MultiProcessorCount) },
	hardware.PropertyMaxGlobalSize0:  globalSize(0),
	hardware.PropertyMaxGlobalSize1:  globalSize(1),
	hardware.PropertyMaxGlobalSize2:  globalSize(2),
	hardware.PropertyMaxGroupSize0:   groupSize(0),
	hardware.PropertyMaxGroupSize1:   groupSize(1),
	hardware.PropertyMaxGroupSize2:   groupSize(2),
	hardware.PropertyMaxGroupSize:    func(c *HardwareContext) uint64 { return uint64(c.props.MaxThreadsPerBlock) },
	hardware.PropertyMaxNumSubGroups: func(c *HardwareContext) uint64 {
		if c.props.WarpSize == 0 {
			return 0
		}
		return uint64(c.props.MaxThreadsPerBlock / c.props.WarpSize)
	},
	hardware.PropertyNeedsDimensionFlip: constProperty(1),

	hardware.PropertyPreferredVectorWidthChar:   preferredWidth(func(w VectorWidths) uint64 { return w.Char }),
	hardware.PropertyPreferredVectorWidthDouble: preferredWidth(func(w VectorWidths) uint64 { return w.Double }),
	hardware.PropertyPreferredVectorWidthFloat:  preferredWidth(func(w VectorWidths) uint64 { return w.Float }),
	hardware.PropertyPreferredVectorWidthHalf:   preferredWidth(func(w VectorWidths) uint64 { return w.Half }),
	hardware.PropertyPreferredVectorWidthInt:    preferredWidth(func(w VectorWidths) uint64 { return w.Int }),
	hardware.PropertyPreferredVectorWidthLong:   preferredWidth(func(w VectorWidths) uint64 { return w.Long }),
	hardware.PropertyPreferredVectorWidthShort:  preferredWidth(func(w VectorWidths) uint64 { return w.Short }),
	hardware.PropertyNativeVectorWidthChar:      nativeWidth(func(w VectorWidths) uint64 { return w.Char }),
	hardware.PropertyNativeVectorWidthDouble:    nativeWidth(func(w VectorWidths) uint64 { return w.Double }),
	hardware.PropertyNativeVectorWidthFloat:     nativeWidth(func(w VectorWidths) uint64 { return w.Float }),
	hardware.PropertyNativeVectorWidthHalf:      nativeWidth(func(w VectorWidths) uint64 { return w.Half }),
	hardware.PropertyNativeVectorWidthInt:       nativeWidth(func(w VectorWidths) uint64 { return w.Int }),
	hardware.PropertyNativeVectorWidthLong:      nativeWidth(func(w VectorWidths) uint64 { return w.Long }),
	hardware.PropertyNativeVectorWidthShort:     nativeWidth(func(w VectorWidths) uint64 { return w.Short }),

	// ClockRate is in kHz, the property in MHz.
	hardware.PropertyMaxClockSpeed: func(c *HardwareContext) uint64 { return uint64(c.props.ClockRate / 1000) },
	hardware.PropertyMaxMallocSize: func(c *HardwareContext) uint64 { return c.props.TotalGlobalMem },
	hardware.PropertyAddressBits:   constProperty(64),

	// No image support.
	hardware.PropertyMaxReadImageArgs:   constProperty(0),
	hardware.PropertyMaxWriteImageArgs:  constProperty(0),
	hardware.PropertyImage2DMaxWidth:    constProperty(0),
	hardware.PropertyImage2DMaxHeight:   constProperty(0),
	hardware.PropertyImage3DMaxWidth:    constProperty(0),
	hardware.PropertyImage3DMaxHeight:   constProperty(0),
	hardware.PropertyImage3DMaxDepth:    constProperty(0),
	hardware.PropertyImageMaxBufferSize: constProperty(0),
	hardware.PropertyImageMaxArraySize:  constProperty(0),
	hardware.PropertyMaxSamplers:        constProperty(0),

	hardware.PropertyMaxParameterSize:       constProperty(math.MaxUint64),
	hardware.PropertyMemBaseAddrAlign:       constProperty(8),
	hardware.PropertyGlobalMemCacheLineSize: constProperty(128),
	hardware.PropertyGlobalMemCacheSize:     func(c *HardwareContext) uint64 { return uint64(c.props.L2CacheSize) },
	hardware.PropertyGlobalMemSize:          func(c *HardwareContext) uint64 { return c.props.TotalGlobalMem },
	hardware.PropertyMaxConstantBufferSize:  func(c *HardwareContext) uint64 { return c.props.TotalConstMem },
	hardware.PropertyMaxConstantArgs:        constProperty(math.MaxUint64),
	hardware.PropertyLocalMemSize:           func(c *HardwareContext) uint64 { return c.props.SharedMemPerBlock },
	hardware.PropertyPrintfBufferSize:       constProperty(math.MaxUint64),
	hardware.PropertyPartitionMaxSubDevices: constProperty(0),

	hardware.PropertyVendorID:     func(c *HardwareContext) uint64 { return c.target.VendorID },
	hardware.PropertyArchitecture: func(c *HardwareContext) uint64 { return c.arch },
	hardware.PropertyBackendID:    constProperty(uint64(hardware.BackendIDHIP)),
}

var (
	_ [hardware.NumUintProperties - len(uintPropertyTable)]struct{}
	_ [len(uintPropertyTable) - hardware.NumUintProperties]struct{}
)

var listPropertyTable = [...]listPropertyFn{
	hardware.ListPropertySubGroupSizes: func(c *HardwareContext) []uint64 { return []uint64{uint64(c.props.WarpSize)} },
}

var (
	_ [hardware.NumUintListProperties - len(listPropertyTable)]struct{}
	_ [len(listPropertyTable) - hardware.NumUintListProperties]struct{}
)

// Has returns whether the device supports the aspect.
//
// An aspect value out of the enum range is a programming error: it logs and exits the process.
func (c *HardwareContext) Has(aspect hardware.Aspect) bool {
	if !aspect.IsAAspect() {
		klog.Fatalf("HardwareContext.Has: unknown device aspect %d", int(aspect))
	}
	return aspectTable[aspect](c)
}

// Property returns the value of the property for the device.
//
// A property value out of the enum range is a programming error: it logs and exits the process.
func (c *HardwareContext) Property(prop hardware.UintProperty) uint64 {
	if !prop.IsAUintProperty() {
		klog.Fatalf("HardwareContext.Property: invalid device property %d", int(prop))
	}
	return uintPropertyTable[prop](c)
}

// ListProperty returns the value of the list property for the device.
//
// A property value out of the enum range is a programming error: it logs and exits the process.
func (c *HardwareContext) ListProperty(prop hardware.UintListProperty) []uint64 {
	if !prop.IsAUintListProperty() {
		klog.Fatalf("HardwareContext.ListProperty: invalid device list property %d", int(prop))
	}
	return listPropertyTable[prop](c)
}

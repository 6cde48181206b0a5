package hardware

// Enumerations are kept in this file, free of cgo, so enumer can process it.

// HardwarePlatform identifies the family of hardware a backend drives.
type HardwarePlatform int

//go:generate go tool enumer -type=HardwarePlatform -trimprefix=Platform enums.go

const (
	PlatformROCm HardwarePlatform = iota
	PlatformCUDA
	PlatformLevelZero
	PlatformOpenCL
	PlatformCPU
)

// APIPlatform identifies the vendor API used to talk to the hardware.
type APIPlatform int

//go:generate go tool enumer -type=APIPlatform -trimprefix=APIPlatform enums.go

const (
	APIPlatformCUDA APIPlatform = iota
	APIPlatformHIP
	APIPlatformLevelZero
	APIPlatformOMP
	APIPlatformOpenCL
)

// BackendID uniquely identifies a backend implementation.
type BackendID int

//go:generate go tool enumer -type=BackendID -trimprefix=BackendID enums.go

const (
	BackendIDCUDA BackendID = iota
	BackendIDHIP
	BackendIDLevelZero
	BackendIDOMP
	BackendIDOpenCL
)

// Aspect is a boolean device capability.
type Aspect int

//go:generate go tool enumer -type=Aspect -trimprefix=Aspect enums.go

const (
	AspectEmulatedLocalMemory Aspect = iota
	AspectHostUnifiedMemory
	AspectErrorCorrection
	AspectGlobalMemCache
	AspectGlobalMemCacheReadOnly
	AspectGlobalMemCacheReadWrite
	AspectImages
	AspectLittleEndian
	AspectSubGroupIndependentForwardProgress
	AspectUSMDeviceAllocations
	AspectUSMHostAllocations
	AspectUSMAtomicHostAllocations
	AspectUSMSharedAllocations
	AspectUSMAtomicSharedAllocations
	AspectUSMSystemAllocations
	AspectExecutionTimestamps
	AspectSSCPKernels
	AspectWorkItemIndependentForwardProgress
)

// NumAspects is the number of Aspect values.
const NumAspects = int(AspectWorkItemIndependentForwardProgress) + 1

// UintProperty is a device property whose value is an unsigned integer.
type UintProperty int

//go:generate go tool enumer -type=UintProperty -trimprefix=Property enums.go

const (
	PropertyMaxComputeUnits UintProperty = iota
	PropertyMaxGlobalSize0
	PropertyMaxGlobalSize1
	PropertyMaxGlobalSize2
	PropertyMaxGroupSize0
	PropertyMaxGroupSize1
	PropertyMaxGroupSize2
	PropertyMaxGroupSize
	PropertyMaxNumSubGroups
	PropertyNeedsDimensionFlip
	PropertyPreferredVectorWidthChar
	PropertyPreferredVectorWidthDouble
	PropertyPreferredVectorWidthFloat
	PropertyPreferredVectorWidthHalf
	PropertyPreferredVectorWidthInt
	PropertyPreferredVectorWidthLong
	PropertyPreferredVectorWidthShort
	PropertyNativeVectorWidthChar
	PropertyNativeVectorWidthDouble
	PropertyNativeVectorWidthFloat
	PropertyNativeVectorWidthHalf
	PropertyNativeVectorWidthInt
	PropertyNativeVectorWidthLong
	PropertyNativeVectorWidthShort
	PropertyMaxClockSpeed
	PropertyMaxMallocSize
	PropertyAddressBits
	PropertyMaxReadImageArgs
	PropertyMaxWriteImageArgs
	PropertyImage2DMaxWidth
	PropertyImage2DMaxHeight
	PropertyImage3DMaxWidth
	PropertyImage3DMaxHeight
	PropertyImage3DMaxDepth
	PropertyImageMaxBufferSize
	PropertyImageMaxArraySize
	PropertyMaxSamplers
	PropertyMaxParameterSize
	PropertyMemBaseAddrAlign
	PropertyGlobalMemCacheLineSize
	PropertyGlobalMemCacheSize
	PropertyGlobalMemSize
	PropertyMaxConstantBufferSize
	PropertyMaxConstantArgs
	PropertyLocalMemSize
	PropertyPrintfBufferSize
	PropertyPartitionMaxSubDevices
	PropertyVendorID
	PropertyArchitecture
	PropertyBackendID
)

// NumUintProperties is the number of UintProperty values.
const NumUintProperties = int(PropertyBackendID) + 1

// UintListProperty is a device property whose value is a list of unsigned integers.
type UintListProperty int

//go:generate go tool enumer -type=UintListProperty -trimprefix=ListProperty enums.go

const (
	ListPropertySubGroupSizes UintListProperty = iota
)

// NumUintListProperties is the number of UintListProperty values.
const NumUintListProperties = int(ListPropertySubGroupSizes) + 1

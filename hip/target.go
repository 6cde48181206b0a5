package hip

import "github.com/gohal/gohal/hardware"

// VectorWidths lists a vector width per scalar type.
type VectorWidths struct {
	Char, Short, Int, Long uint64
	Half, Float, Double    uint64
}

// Target describes the variant of the HIP backend: HIP can drive AMD GPUs (ROCm), NVIDIA GPUs (through CUDA)
// or emulate a device on the CPU (hipCPU). These are fixed when the backend is built, and don't depend on
// the individual devices.
type Target struct {
	// Name of the target: "rocm", "cuda" or "hipcpu".
	Name string

	// HardwarePlatform driven by the target.
	HardwarePlatform hardware.HardwarePlatform

	// IsCPUEmulation is true if the devices are emulated on the CPU.
	IsCPUEmulation bool

	VendorName string
	VendorID   uint64

	PreferredVectorWidths VectorWidths
	NativeVectorWidths    VectorWidths

	// SSCPKernels is true if the single-source single-pass compiler is available to produce kernels.
	SSCPKernels bool
}

var gpuVectorWidths = VectorWidths{
	Char: 4, Short: 2, Int: 1, Long: 1,
	Half: 2, Float: 1, Double: 1,
}

// hipVendorID is reported for every HIP target.
const hipVendorID = 1022

var (
	// TargetROCm drives AMD GPUs.
	TargetROCm = Target{
		Name:                  "rocm",
		HardwarePlatform:      hardware.PlatformROCm,
		VendorName:            "AMD",
		VendorID:              hipVendorID,
		PreferredVectorWidths: gpuVectorWidths,
		NativeVectorWidths:    gpuVectorWidths,
		SSCPKernels:           sscpCompiler,
	}

	// TargetCUDA drives NVIDIA GPUs through HIP's CUDA layer.
	TargetCUDA = Target{
		Name:                  "cuda",
		HardwarePlatform:      hardware.PlatformCUDA,
		VendorName:            "NVIDIA",
		VendorID:              hipVendorID,
		PreferredVectorWidths: gpuVectorWidths,
		NativeVectorWidths:    gpuVectorWidths,
		SSCPKernels:           sscpCompiler,
	}

	// TargetCPU emulates HIP devices on the CPU.
	TargetCPU = Target{
		Name:                  "hipcpu",
		HardwarePlatform:      hardware.PlatformCPU,
		IsCPUEmulation:        true,
		VendorName:            "hipCPU",
		VendorID:              hipVendorID,
		PreferredVectorWidths: gpuVectorWidths,
		NativeVectorWidths:    gpuVectorWidths,
		SSCPKernels:           sscpCompiler,
	}
)

// Package hip implements the hardware abstraction layer for devices driven by the HIP runtime: AMD GPUs
// through ROCm, NVIDIA GPUs through HIP's CUDA layer, or CPU emulation with hipCPU.
//
// The HardwareManager enumerates the devices once, and owns one HardwareContext per device. Each context
// answers the queries of hardware.Context from a snapshot of the device properties, and owns the device
// Allocator and EventPool.
//
// The calls to the HIP library go through the Runtime interface. Build with the "hip" tag to link
// libamdhip64 (see NewNativeRuntime); otherwise DefaultRuntime reports no devices.
//
// Example:
//
//	backend := hip.NewBackend(hip.Config{})
//	defer func() { _ = backend.Destroy() }()
//	manager := backend.HardwareManager()
//	for i := range manager.NumDevices() {
//		ctx := manager.HIPDevice(i)
//		fmt.Printf("%s: %s (%s)\n", manager.DeviceID(i), ctx.DeviceName(), ctx.DeviceArch())
//	}
package hip

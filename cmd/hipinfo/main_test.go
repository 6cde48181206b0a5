package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gohal/gohal/hardware"
	"github.com/stretchr/testify/require"
)

type cpuContext struct{}

func (cpuContext) IsCPU() bool                                     { return true }
func (cpuContext) IsGPU() bool                                     { return false }
func (cpuContext) MaxKernelConcurrency() int                       { return 1 }
func (cpuContext) MaxMemcpyConcurrency() int                       { return 1 }
func (cpuContext) DeviceName() string                              { return "hipCPU OpenMP host device" }
func (cpuContext) VendorName() string                              { return "hipCPU" }
func (cpuContext) DeviceArch() string                              { return "" }
func (cpuContext) DriverVersion() string                           { return "0" }
func (cpuContext) Profile() string                                 { return "FULL_PROFILE" }
func (cpuContext) Has(aspect hardware.Aspect) bool                 { return aspect == hardware.AspectLittleEndian }
func (cpuContext) Property(prop hardware.UintProperty) uint64      { return uint64(prop) }
func (cpuContext) ListProperty(hardware.UintListProperty) []uint64 { return []uint64{1} }
func (cpuContext) PlatformIndex() int                              { return 0 }

var cpuDevice = hardware.NewDeviceID(hardware.BackendDescriptor{
	HardwarePlatform: hardware.PlatformCPU,
	APIPlatform:      hardware.APIPlatformHIP,
}, 0)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, cpuDevice, cpuContext{})
	out := buf.String()
	require.Contains(t, out, "hipCPU OpenMP host device")
	require.Contains(t, out, "HIP/CPU#0")
	require.Contains(t, out, "CPU")
	require.Contains(t, out, hardware.AspectUSMSharedAllocations.String())
	require.Contains(t, out, hardware.PropertyBackendID.String())
	require.Contains(t, out, "[1]")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, cpuContext{}))
	var desc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &desc))
	require.Equal(t, "hipCPU", desc["vendor"])
	require.Equal(t, true, desc["is_cpu"])
	aspects := desc["aspects"].(map[string]any)
	require.Equal(t, true, aspects[hardware.AspectLittleEndian.String()])
	require.Equal(t, false, aspects[hardware.AspectImages.String()])
}

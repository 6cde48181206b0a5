package hardware

import (
	"math"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
)

func TestEnums(t *testing.T) {
	require.Len(t, AspectValues(), NumAspects)
	require.Len(t, UintPropertyValues(), NumUintProperties)
	require.Len(t, UintListPropertyValues(), NumUintListProperties)

	require.Equal(t, "USMSharedAllocations", AspectUSMSharedAllocations.String())
	require.Equal(t, "MaxGlobalSize1", PropertyMaxGlobalSize1.String())
	require.Equal(t, "SubGroupSizes", ListPropertySubGroupSizes.String())
	require.Equal(t, "ROCm", PlatformROCm.String())
	require.Equal(t, "HIP", APIPlatformHIP.String())

	aspect, err := AspectString("littleendian")
	require.NoError(t, err)
	require.Equal(t, AspectLittleEndian, aspect)
	_, err = AspectString("flying")
	require.Error(t, err)

	require.False(t, Aspect(NumAspects).IsAAspect())
	require.Equal(t, "UintProperty(1000)", UintProperty(1000).String())
}

func TestDeviceID(t *testing.T) {
	backend := BackendDescriptor{HardwarePlatform: PlatformROCm, APIPlatform: APIPlatformHIP}
	require.Equal(t, BackendIDHIP, backend.ID())
	require.Equal(t, "HIP/ROCm", backend.String())

	ids := make(map[DeviceID]int)
	for i := range 4 {
		ids[NewDeviceID(backend, i)] = i
	}
	require.Len(t, ids, 4)
	require.Equal(t, 2, ids[DeviceID{Backend: backend, ID: 2}])

	other := NewDeviceID(BackendDescriptor{HardwarePlatform: PlatformCUDA, APIPlatform: APIPlatformCUDA}, 2)
	_, found := ids[other]
	require.False(t, found)
	require.Equal(t, BackendIDCUDA, other.BackendID())
	require.Equal(t, "CUDA/CUDA#2", other.String())
}

// fakeContext answers every query with fixed values.
type fakeContext struct{}

func (fakeContext) IsCPU() bool               { return false }
func (fakeContext) IsGPU() bool               { return true }
func (fakeContext) MaxKernelConcurrency() int { return 2 }
func (fakeContext) MaxMemcpyConcurrency() int { return 2 }
func (fakeContext) DeviceName() string        { return "Fake GPU" }
func (fakeContext) VendorName() string        { return "AMD" }
func (fakeContext) DeviceArch() string        { return "gfx90a" }
func (fakeContext) DriverVersion() string     { return "60000000" }
func (fakeContext) Profile() string           { return "FULL_PROFILE" }
func (fakeContext) PlatformIndex() int        { return 0 }
func (fakeContext) Has(aspect Aspect) bool    { return aspect == AspectLittleEndian }

func (fakeContext) Property(prop UintProperty) uint64 {
	if prop == PropertyMaxParameterSize {
		return math.MaxUint64
	}
	return uint64(prop)
}

func (fakeContext) ListProperty(prop UintListProperty) []uint64 {
	return []uint64{64}
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(fakeContext{})
	require.NoError(t, err)
	fields := desc.GetFields()
	require.Equal(t, "Fake GPU", fields["name"].GetStringValue())
	require.True(t, fields["is_gpu"].GetBoolValue())

	aspects := fields["aspects"].GetStructValue().GetFields()
	require.Len(t, aspects, NumAspects)
	require.True(t, aspects["LittleEndian"].GetBoolValue())
	require.False(t, aspects["Images"].GetBoolValue())

	properties := fields["properties"].GetStructValue().GetFields()
	require.Len(t, properties, NumUintProperties)
	require.Equal(t, float64(PropertyGlobalMemSize), properties["GlobalMemSize"].GetNumberValue())
	require.Equal(t, "18446744073709551615", properties["MaxParameterSize"].GetStringValue())

	subGroupSizes := fields["list_properties"].GetStructValue().GetFields()["SubGroupSizes"].GetListValue().GetValues()
	require.Len(t, subGroupSizes, 1)
	require.Equal(t, 64.0, subGroupSizes[0].GetNumberValue())

	_, err = protojson.Marshal(desc)
	require.NoError(t, err)

	_, err = Describe(nil)
	require.Error(t, err)
}

func TestBackendDescriptor_UnknownAPIPlatform(t *testing.T) {
	bad := BackendDescriptor{HardwarePlatform: PlatformROCm, APIPlatform: APIPlatform(42)}
	if os.Getenv("GOHAL_HARDWARE_DEATH_TEST") != "" {
		bad.ID()
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestBackendDescriptor_UnknownAPIPlatform$")
	cmd.Env = append(os.Environ(), "GOHAL_HARDWARE_DEATH_TEST=1")
	output, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	require.ErrorAsf(t, err, &exitErr, "ID() should have terminated the process, output:\n%s", output)
	require.Equalf(t, 255, exitErr.ExitCode(), "output:\n%s", output)
	require.Contains(t, string(output), "BackendDescriptor.ID: unknown API platform APIPlatform(42)")
	require.NotContains(t, string(output), "panic:")
}

package settings

import (
	"testing"

	"github.com/gohal/gohal/hardware"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, found := m[key]
		return v, found
	}
}

func TestParseVisibilityMask(t *testing.T) {
	mask, err := ParseVisibilityMask("omp; cuda:0,2 ;hip")
	require.NoError(t, err)
	require.Len(t, mask, 3)
	require.Nil(t, mask[hardware.BackendIDOMP].Devices)
	require.Equal(t, []int{0, 2}, mask[hardware.BackendIDCUDA].Devices)

	require.True(t, HasDeviceVisibilityMask(mask, hardware.BackendIDCUDA))
	require.False(t, HasDeviceVisibilityMask(mask, hardware.BackendIDHIP))
	require.False(t, HasDeviceVisibilityMask(mask, hardware.BackendIDLevelZero))

	mask, err = ParseVisibilityMask("")
	require.NoError(t, err)
	require.Empty(t, mask)

	_, err = ParseVisibilityMask("vulkan")
	require.Error(t, err)
	_, err = ParseVisibilityMask("hip:x")
	require.Error(t, err)
	_, err = ParseVisibilityMask("hip:-1")
	require.Error(t, err)
}

func TestIsDeviceVisible(t *testing.T) {
	hip := hardware.BackendDescriptor{HardwarePlatform: hardware.PlatformROCm, APIPlatform: hardware.APIPlatformHIP}
	cuda := hardware.BackendDescriptor{HardwarePlatform: hardware.PlatformCUDA, APIPlatform: hardware.APIPlatformCUDA}

	require.True(t, IsDeviceVisible(nil, hardware.NewDeviceID(hip, 3)))

	mask, err := ParseVisibilityMask("cuda:1")
	require.NoError(t, err)
	require.False(t, IsDeviceVisible(mask, hardware.NewDeviceID(hip, 0)))
	require.False(t, IsDeviceVisible(mask, hardware.NewDeviceID(cuda, 0)))
	require.True(t, IsDeviceVisible(mask, hardware.NewDeviceID(cuda, 1)))
}

func TestFromEnv(t *testing.T) {
	s := FromEnv(envMap(map[string]string{
		VisibilityMaskEnv: "hip:0",
		DebugLevelEnv:     "3",
	}))
	require.Equal(t, 3, s.DebugLevel)
	require.True(t, HasDeviceVisibilityMask(s.VisibilityMask, hardware.BackendIDHIP))

	// Legacy names are used as a fallback.
	s = FromEnv(envMap(map[string]string{
		"HIPSYCL_VISIBILITY_MASK": "ze",
		"HIPSYCL_DEBUG_LEVEL":     "1",
	}))
	require.Equal(t, 1, s.DebugLevel)
	require.Contains(t, s.VisibilityMask, hardware.BackendIDLevelZero)

	// Invalid values are ignored.
	s = FromEnv(envMap(map[string]string{
		VisibilityMaskEnv: "nope",
		DebugLevelEnv:     "verbose",
	}))
	require.Zero(t, s.DebugLevel)
	require.Empty(t, s.VisibilityMask)

	require.NotNil(t, Get())
	require.Same(t, Get(), Get())
}

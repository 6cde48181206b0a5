package hip

import (
	"testing"

	"github.com/gohal/gohal/hardware"
	"github.com/gohal/gohal/settings"
	"github.com/stretchr/testify/require"
)

func TestHardwareManager(t *testing.T) {
	rt := newFakeRuntime(mi250Props(), mi250Props())
	m, ch := newTestManager(t, rt, nil)
	require.Equal(t, 2, m.NumDevices())
	require.Equal(t, 2, m.NumDevices())
	require.Equal(t, 1, m.NumPlatforms())
	require.Equal(t, hardware.PlatformROCm, m.Platform())

	for i := range m.NumDevices() {
		ctx := m.HIPDevice(i)
		require.NotNil(t, ctx)
		require.Equal(t, i, ctx.Index())
		require.Same(t, ctx, m.Device(i).(*HardwareContext))

		id := m.DeviceID(i)
		require.Equal(t, i, id.ID)
		require.Equal(t, hardware.PlatformROCm, id.Backend.HardwarePlatform)
		require.Equal(t, hardware.APIPlatformHIP, id.Backend.APIPlatform)
		require.Equal(t, hardware.BackendIDHIP, id.BackendID())
		require.Same(t, ctx, m.HIPDevice(id.ID))
	}
	require.Zero(t, ch.NumErrors())
	require.Zero(t, ch.NumWarnings())
}

func TestHardwareManager_InvalidIndex(t *testing.T) {
	m, ch := newTestManager(t, newFakeRuntime(mi250Props()), nil)

	// The interface must be an untyped nil, not a nil *HardwareContext.
	require.True(t, m.Device(m.NumDevices()) == nil)
	require.Equal(t, 1, ch.NumErrors())
	require.Contains(t, ch.Errors()[0].Info.Message, "Attempt to access invalid device detected.")

	require.Nil(t, m.HIPDevice(-1))
	require.Equal(t, 2, ch.NumErrors())

	id := m.DeviceID(5)
	require.Equal(t, 5, id.ID)
	require.Equal(t, hardware.APIPlatformHIP, id.Backend.APIPlatform)
	require.Equal(t, 3, ch.NumErrors())

	// Valid accesses still work.
	require.NotNil(t, m.Device(0))
	require.Equal(t, 3, ch.NumErrors())
}

func TestHardwareManager_NoDevice(t *testing.T) {
	rt := newFakeRuntime(mi250Props())
	rt.countStatus = StatusErrorNoDevice
	m, ch := newTestManager(t, rt, nil)
	require.Zero(t, m.NumDevices())
	require.Zero(t, ch.NumWarnings())
	require.Zero(t, ch.NumErrors())
}

func TestHardwareManager_CountFailure(t *testing.T) {
	rt := newFakeRuntime(mi250Props())
	rt.countStatus = StatusErrorNotInitialized
	m, ch := newTestManager(t, rt, nil)
	require.Zero(t, m.NumDevices())
	require.Equal(t, 1, ch.NumWarnings())
	require.Zero(t, ch.NumErrors())
}

func TestHardwareManager_NoHIPLibrary(t *testing.T) {
	m, ch := newTestManager(t, noDeviceRuntime{}, nil)
	require.Zero(t, m.NumDevices())
	require.Zero(t, ch.NumWarnings())
}

func TestHardwareManager_VisibilityMask(t *testing.T) {
	mask, err := settings.ParseVisibilityMask("hip:0")
	require.NoError(t, err)
	m, ch := newTestManager(t, newFakeRuntime(mi250Props(), mi250Props()), &settings.Settings{VisibilityMask: mask})
	require.Equal(t, 1, ch.NumWarnings())
	// The mask is not applied: HIP_VISIBLE_DEVICES must be used instead.
	require.Equal(t, 2, m.NumDevices())

	// Making the whole backend visible is not a device mask.
	mask, err = settings.ParseVisibilityMask("hip;omp")
	require.NoError(t, err)
	_, ch = newTestManager(t, newFakeRuntime(mi250Props()), &settings.Settings{VisibilityMask: mask})
	require.Zero(t, ch.NumWarnings())
}

func TestHardwareManager_Destroy(t *testing.T) {
	rt := newFakeRuntime(mi250Props(), mi250Props())
	m, _ := newTestManager(t, rt, nil)

	ctx := m.HIPDevice(1)
	ptr, err := ctx.Allocator().Allocate(0, 1024)
	require.NoError(t, err)
	require.NotNil(t, ptr)
	event, err := ctx.EventPool().Obtain()
	require.NoError(t, err)
	ctx.EventPool().Release(event)

	require.NoError(t, m.Destroy())
	require.Zero(t, m.NumDevices())
	require.Zero(t, rt.numLiveBuffers())
	require.Equal(t, 1, rt.eventsDestroyed)

	// Destroying twice is a no-op.
	require.NoError(t, m.Destroy())
}

package rterror

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func TestHere(t *testing.T) {
	loc := Here()
	require.Equal(t, "channel_test.go", loc.File)
	require.True(t, strings.HasSuffix(loc.Function, "TestHere"), "unexpected function %q", loc.Function)
	require.Greater(t, loc.Line, 0)
}

func TestInfo_String(t *testing.T) {
	info := Info{Message: "could not obtain number of devices"}
	require.Equal(t, "could not obtain number of devices", info.String())

	info.Code = Code{Component: "HIP", Value: 101}
	require.Equal(t, "could not obtain number of devices (error code = HIP:101)", info.String())
}

func TestChannel(t *testing.T) {
	c := NewChannel()
	require.Zero(t, c.NumErrors())
	require.Zero(t, c.NumWarnings())

	c.PrintWarning(Here(), Info{Message: "a warning"})
	c.RegisterError(Here(), Info{Message: "an error", Code: Code{Component: "HIP", Value: 1}})
	require.Equal(t, 1, c.NumWarnings())
	require.Equal(t, 1, c.NumErrors())

	errs := c.Errors()
	require.Len(t, errs, 1)
	require.ErrorContains(t, errs[0], "an error")
	require.ErrorContains(t, errs[0], "HIP:1")
	require.Contains(t, fmt.Sprintf("%+v", errs[0]), "channel_test.go")
	require.NotNil(t, errs[0].Cause())

	popped := c.PopErrors()
	require.Len(t, popped, 1)
	require.Zero(t, c.NumErrors())

	c.Reset()
	require.Zero(t, c.NumWarnings())
}

func TestChannel_Concurrent(t *testing.T) {
	c := NewChannel()
	const numGoroutines = 16
	var wg sync.WaitGroup
	for i := range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RegisterError(Here(), Info{Message: fmt.Sprintf("error #%d", i)})
		}()
	}
	wg.Wait()
	require.Equal(t, numGoroutines, c.NumErrors())
}

//go:build hipcpu

package hip

// DefaultTarget returns the target selected at build time.
func DefaultTarget() Target {
	return TargetCPU
}

//go:build !hipcuda && !hipcpu

package hip

// DefaultTarget returns the target selected at build time: build with the "hipcuda" or "hipcpu" tags to
// select the other targets.
func DefaultTarget() Target {
	return TargetROCm
}

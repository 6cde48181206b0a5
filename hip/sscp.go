//go:build sscp

package hip

// sscpCompiler is set with the "sscp" build tag, when kernels can be produced by the SSCP compiler.
const sscpCompiler = true

//go:build !sscp

package hip

const sscpCompiler = false

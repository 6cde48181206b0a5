// Package rterror implements the error reporting channel shared by the hardware backends.
//
// Backends never return recoverable device errors to their callers: they push them to a Reporter
// (usually the process-wide Default channel) and carry on. The channel logs everything with klog
// and retains registered errors, so upper layers can later collect them with Channel.PopErrors.
package rterror

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Location of the code that reported an error or a warning.
type Location struct {
	Function string
	File     string
	Line     int
}

// Here returns the Location of its caller.
func Here() Location {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return Location{Function: "unknown", File: "unknown"}
	}
	loc := Location{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
		if idx := strings.LastIndex(loc.Function, "/"); idx >= 0 {
			loc.Function = loc.Function[idx+1:]
		}
	}
	return loc
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s (%s:%d)", l.Function, l.File, l.Line)
}

// Code is a status code returned by a vendor API, tagged with the name of the component that returned it.
// The zero value means no code is attached.
type Code struct {
	Component string
	Value     int
}

// IsSet returns whether the code was filled in.
func (c Code) IsSet() bool {
	return c.Component != ""
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if !c.IsSet() {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Component, c.Value)
}

// Info describes an error or warning.
type Info struct {
	Message string
	Code    Code
}

// String implements fmt.Stringer.
func (i Info) String() string {
	if !i.Code.IsSet() {
		return i.Message
	}
	return fmt.Sprintf("%s (error code = %s)", i.Message, i.Code)
}

// Result is an error registered in a Channel.
// It implements the error interface, and it carries the stack of the point where it was registered.
type Result struct {
	Location Location
	Info     Info
	err      error
}

// NewResult creates a Result for the given location and info.
func NewResult(loc Location, info Info) *Result {
	return &Result{
		Location: loc,
		Info:     info,
		err:      errors.New(info.String()),
	}
}

// Error implements the error interface.
func (r *Result) Error() string {
	return fmt.Sprintf("from %s: %s", r.Location, r.Info)
}

// Cause returns the underlying error, with stack trace. See github.com/pkg/errors.
func (r *Result) Cause() error {
	return r.err
}

// Format implements fmt.Formatter: with "%+v" it also prints the stack trace of where the error was registered.
func (r *Result) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "from %s: %+v", r.Location, r.err)
		return
	}
	_, _ = fmt.Fprint(s, r.Error())
}

package rterror

import (
	"sync"

	"k8s.io/klog/v2"
)

// Reporter receives the recoverable errors and warnings of a backend.
type Reporter interface {
	// RegisterError reports a recoverable error: it is logged and execution continues.
	RegisterError(loc Location, info Info)

	// PrintWarning reports a non-fatal advisory.
	PrintWarning(loc Location, info Info)
}

// Channel is the default Reporter: it logs with klog and keeps the registered errors
// until they are popped.
//
// It is safe for concurrent use.
type Channel struct {
	mu          sync.Mutex
	errors      []*Result
	numWarnings int
}

var _ Reporter = (*Channel)(nil)

// Default is the process-wide channel.
var Default = NewChannel()

// NewChannel creates a new empty Channel.
func NewChannel() *Channel {
	return &Channel{}
}

// RegisterError implements Reporter.
func (c *Channel) RegisterError(loc Location, info Info) {
	r := NewResult(loc, info)
	klog.Errorf("[gohal] %s", r)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, r)
}

// PrintWarning implements Reporter.
func (c *Channel) PrintWarning(loc Location, info Info) {
	klog.Warningf("[gohal] from %s: %s", loc, info)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.numWarnings++
}

// NumErrors returns the number of registered errors not yet popped.
func (c *Channel) NumErrors() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// NumWarnings returns the number of warnings printed since the channel was created (or last Reset).
func (c *Channel) NumWarnings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.numWarnings
}

// Errors returns a copy of the registered errors, without removing them.
func (c *Channel) Errors() []*Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Result, len(c.errors))
	copy(out, c.errors)
	return out
}

// PopErrors returns the registered errors and removes them from the channel.
func (c *Channel) PopErrors() []*Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.errors
	c.errors = nil
	return out
}

// Reset drops all registered errors and the warning count.
func (c *Channel) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = nil
	c.numWarnings = 0
}

// RegisterError reports a recoverable error to the Default channel.
func RegisterError(loc Location, info Info) {
	Default.RegisterError(loc, info)
}

// PrintWarning reports a warning to the Default channel.
func PrintWarning(loc Location, info Info) {
	Default.PrintWarning(loc, info)
}

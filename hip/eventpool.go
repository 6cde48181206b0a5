package hip

import (
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// EventPool recycles HIP events of one device: creating events is costly, so released events are kept
// to be handed out again.
//
// It is safe for concurrent use.
type EventPool struct {
	rt  Runtime
	dev int

	mu        sync.Mutex
	free      []Event
	destroyed bool
}

// NewEventPool creates an empty pool for device dev. Events are created on demand.
func NewEventPool(rt Runtime, dev int) *EventPool {
	return &EventPool{rt: rt, dev: dev}
}

// Device index served by the pool.
func (p *EventPool) Device() int {
	return p.dev
}

// NumAvailable returns the number of released events waiting to be reused.
func (p *EventPool) NumAvailable() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Obtain returns an event from the pool, or a new one if the pool is empty.
// It must be given back with Release.
func (p *EventPool) Obtain() (Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return nil, errors.Errorf("event pool for device #%d already destroyed", p.dev)
	}
	if n := len(p.free); n > 0 {
		event := p.free[n-1]
		p.free = p.free[:n-1]
		return event, nil
	}
	if status := p.rt.SetDevice(p.dev); !status.Ok() {
		return nil, errors.Errorf("hipSetDevice(%d) failed: %s", p.dev, status)
	}
	event, status := p.rt.EventCreate()
	if !status.Ok() {
		return nil, errors.Errorf("hipEventCreate on device #%d failed: %s", p.dev, status)
	}
	return event, nil
}

// Release gives an event back to the pool. If the pool was already destroyed, the event is destroyed.
func (p *EventPool) Release(event Event) {
	if event == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		if status := p.rt.EventDestroy(event); !status.Ok() {
			klog.Errorf("hipEventDestroy on device #%d failed: %s", p.dev, status)
		}
		return
	}
	p.free = append(p.free, event)
}

// Destroy destroys the events in the pool. It's a no-op if already destroyed.
//
// It returns the first error, the following ones are only logged.
func (p *EventPool) Destroy() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return nil
	}
	p.destroyed = true
	var firstErr error
	for _, event := range p.free {
		status := p.rt.EventDestroy(event)
		if status.Ok() {
			continue
		}
		err := errors.Errorf("hipEventDestroy on device #%d failed: %s", p.dev, status)
		if firstErr == nil {
			firstErr = err
		} else {
			klog.Errorf("EventPool.Destroy: %+v", err)
		}
	}
	p.free = nil
	return firstErr
}

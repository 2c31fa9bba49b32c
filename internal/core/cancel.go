package core

import (
	"os"
	"os/signal"
	"sync"
)

// CancellationReason records why a run was asked to stop. At most one
// reason is ever latched; the first observed wins.
type CancellationReason int

const (
	ReasonNone CancellationReason = iota
	ReasonExternalSignal
	ReasonParentDied
	ReasonTimeout
	ReasonLimitReached
)

func (r CancellationReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonExternalSignal:
		return "external signal"
	case ReasonParentDied:
		return "parent process died"
	case ReasonTimeout:
		return "timeout"
	case ReasonLimitReached:
		return "limit reached"
	default:
		return "unknown"
	}
}

// CancellationController converts every external stop trigger into a
// single cooperative cancellation signal. The supervisor is the only
// consumer; no other code observes raw signal state.
type CancellationController struct {
	mu        sync.Mutex
	reason    CancellationReason
	done      chan struct{}
	parentPID int
}

// NewCancellationController captures the current parent-process identity
// for later orphaning checks.
func NewCancellationController() *CancellationController {
	return &CancellationController{
		done:      make(chan struct{}),
		parentPID: os.Getppid(),
	}
}

// Trigger latches a cancellation reason. Only the first call has any
// effect; re-entrant triggers are no-ops. Returns true if this call won
// the latch.
func (c *CancellationController) Trigger(reason CancellationReason) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reason != ReasonNone {
		return false
	}
	c.reason = reason
	close(c.done)
	return true
}

// Done returns a channel closed when the first reason is latched.
func (c *CancellationController) Done() <-chan struct{} {
	return c.done
}

// Reason returns the latched reason, or ReasonNone while still running.
func (c *CancellationController) Reason() CancellationReason {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

// ParentChanged reports whether the parent-process identity differs from
// the one captured at start. A changed parent means the upstream wrapper
// died and this supervisor was orphaned.
func (c *CancellationController) ParentChanged() bool {
	return os.Getppid() != c.parentPID
}

// WatchSignals latches ReasonExternalSignal on delivery of any of the
// given signals.
func (c *CancellationController) WatchSignals(signals ...os.Signal) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)
	go func() {
		<-sigChan
		c.Trigger(ReasonExternalSignal)
	}()
}

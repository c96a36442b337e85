package motion

import (
	"context"
	"errors"
)

// ErrCancelled is returned by Transition.Wait when the transition was stopped
// before it reached its target.
var ErrCancelled = errors.New("motion: transition cancelled")

// Transition is a handle on one animation toward a target value. It finishes
// exactly once, either by settling on the target or by being cancelled.
type Transition struct {
	target    float64
	spring    Spring
	done      chan struct{}
	cancelled bool
}

func newTransition(target float64, spring Spring) *Transition {
	return &Transition{
		target: target,
		spring: spring,
		done:   make(chan struct{}),
	}
}

// Target returns the value the transition is heading to.
func (t *Transition) Target() float64 {
	return t.target
}

// Done returns a channel that is closed when the transition ends.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Ended reports whether the transition has ended, for either reason.
func (t *Transition) Ended() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Finished reports whether the transition settled on its target.
func (t *Transition) Finished() bool {
	return t.Ended() && !t.cancelled
}

// Cancelled reports whether the transition was stopped early.
func (t *Transition) Cancelled() bool {
	return t.Ended() && t.cancelled
}

// Wait blocks until the transition ends or ctx is done. It must not be called
// from the goroutine that drives the animation.
func (t *Transition) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		if t.cancelled {
			return ErrCancelled
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Transition) end(cancelled bool) {
	if t.Ended() {
		return
	}
	t.cancelled = cancelled
	close(t.done)
}

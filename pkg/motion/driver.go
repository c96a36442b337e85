// Package motion animates a single scalar value with spring physics.
//
// A Driver owns the value and at most one active Transition. Starting a new
// transition, or calling Stop or Set, cancels the previous one at whatever
// value it had reached, so transitions never race. The driver does not run a
// goroutine: the owner calls Tick once per frame and the driver advances in
// fixed steps measured by its Clock.
package motion

import (
	"math"
	"time"
)

const (
	// restDelta and restSpeed decide when a spring has settled.
	restDelta = 0.001
	restSpeed = 0.001

	// maxStepsPerTick bounds the catch-up work after a long stall.
	maxStepsPerTick = 240
)

// Driver moves a value toward targets using springs.
type Driver struct {
	value    float64
	velocity float64

	clock Clock
	fps   int
	step  time.Duration

	active *Transition
	last   time.Time
	carry  time.Duration
}

// NewDriver creates a driver at the given value. A nil clock uses wall time and
// a non-positive fps uses DefaultFrameRate.
func NewDriver(clock Clock, value float64, fps int) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return &Driver{
		value: value,
		clock: clock,
		fps:   fps,
		step:  time.Second / time.Duration(fps),
	}
}

// Value returns the current value.
func (d *Driver) Value() float64 {
	return d.value
}

// Velocity returns the current velocity in units per second.
func (d *Driver) Velocity() float64 {
	return d.velocity
}

// FrameInterval returns the fixed simulation step.
func (d *Driver) FrameInterval() time.Duration {
	return d.step
}

// Active returns the running transition, or nil.
func (d *Driver) Active() *Transition {
	return d.active
}

// Animating reports whether a transition is running.
func (d *Driver) Animating() bool {
	return d.active != nil
}

// Set jumps to v, cancelling any running transition.
func (d *Driver) Set(v float64) {
	d.Stop()
	d.value = v
}

// Stop cancels the running transition and leaves the value where it is.
func (d *Driver) Stop() {
	if d.active != nil {
		d.active.end(true)
		d.active = nil
	}
	d.velocity = 0
	d.carry = 0
}

// AnimateTo starts a transition from the current value toward target. Any
// running transition is cancelled first; its velocity is kept so the motion
// stays continuous.
func (d *Driver) AnimateTo(target float64, spring Spring) *Transition {
	if d.active != nil {
		d.active.end(true)
	}
	t := newTransition(target, spring.normalize())
	d.active = t
	d.last = d.clock.Now()
	d.carry = 0
	return t
}

// Tick advances the running transition to the clock's current time. It
// returns true while the transition still needs frames.
func (d *Driver) Tick() bool {
	t := d.active
	if t == nil {
		return false
	}

	now := d.clock.Now()
	if elapsed := now.Sub(d.last); elapsed > 0 {
		d.carry += elapsed
	}
	d.last = now

	steps := int(d.carry / d.step)
	d.carry -= time.Duration(steps) * d.step
	if steps > maxStepsPerTick {
		steps = maxStepsPerTick
		d.carry = 0
	}

	sim := t.spring.simulation(d.fps)
	for i := 0; i < steps; i++ {
		if d.atRest(t.target) {
			break
		}
		prev := d.value
		d.value, d.velocity = sim.Update(d.value, d.velocity, t.target)
		if t.spring.ClampOvershoot && crossed(prev, d.value, t.target) {
			d.value = t.target
			d.velocity = 0
			break
		}
	}

	if d.atRest(t.target) {
		d.value = t.target
		d.velocity = 0
		d.active = nil
		t.end(false)
		return false
	}
	return true
}

func (d *Driver) atRest(target float64) bool {
	return math.Abs(d.value-target) < restDelta && math.Abs(d.velocity) < restSpeed
}

// crossed reports whether a step from prev to next reached or passed target.
func crossed(prev, next, target float64) bool {
	return (prev-target)*(next-target) <= 0
}

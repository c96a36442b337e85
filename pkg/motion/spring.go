package motion

import "github.com/charmbracelet/harmonica"

// Spring describes a damped spring that pulls a value toward a target.
type Spring struct {
	// AngularFrequency controls speed; higher values settle faster.
	AngularFrequency float64

	// DampingRatio controls oscillation. 1.0 is critically damped (no bounce),
	// values below 1.0 oscillate around the target.
	DampingRatio float64

	// ClampOvershoot ends the transition the moment the value reaches the
	// target instead of letting it swing past.
	ClampOvershoot bool
}

// Default spring parameters.
const (
	DefaultOpenFrequency  = 7.0
	DefaultCloseFrequency = 9.0
	DefaultCloseDamping   = 0.6
	DefaultFrameRate      = 60
)

// CriticallyDamped returns a non-bouncy spring.
func CriticallyDamped(frequency float64) Spring {
	return Spring{AngularFrequency: frequency, DampingRatio: 1.0}
}

// Clamped returns a spring that stops at its target without overshooting.
func Clamped(frequency, damping float64) Spring {
	return Spring{AngularFrequency: frequency, DampingRatio: damping, ClampOvershoot: true}
}

// normalize fills in zero fields so a zero Spring is still usable.
func (s Spring) normalize() Spring {
	if s.AngularFrequency <= 0 {
		s.AngularFrequency = DefaultOpenFrequency
	}
	if s.DampingRatio <= 0 {
		s.DampingRatio = 1.0
	}
	return s
}

func (s Spring) simulation(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), s.AngularFrequency, s.DampingRatio)
}

package motion

import "time"

// Clock provides time for animations. Tests inject a fake clock so that
// transitions advance deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

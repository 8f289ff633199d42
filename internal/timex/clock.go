package timex

import "time"

// Clock abstracts the current time so lockout cooldowns and session expiry
// can be tested deterministically. The lockout window is wall-clock based:
// changing the host clock moves the window, which is an accepted limitation
// for a single-machine tool.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock { return systemClock{} }

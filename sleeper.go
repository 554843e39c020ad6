package tinygo_dcmotor

import (
	"time"
)

// SleeperFunc adapts a plain function to the Sleeper interface.
type SleeperFunc func(d time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// DefaultSleeper blocks with time.Sleep
var DefaultSleeper Sleeper = SleeperFunc(time.Sleep)

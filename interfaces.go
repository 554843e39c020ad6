package tinygo_dcmotor

import (
	"time"
)

type (
	// Pin identifies a digital output pin on the host board
	Pin uint8

	// Port is the digital output capability the motor handler drives
	Port interface {
		ConfigureOutput(pin Pin)
		Set(pin Pin, level Level)
	}

	// Sleeper blocks the calling goroutine for the given duration
	Sleeper interface {
		Sleep(d time.Duration)
	}

	// Handler is the interface to handle two-pin H-bridge DC motor operations
	Handler interface {
		Initialize()
		Forward()
		Backward()
		Stop()
		RemoveMomentum()
		Direction() Direction
	}
)

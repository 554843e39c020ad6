package tinygo_dcmotor

import (
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// DefaultHandler is the default implementation to handle a DC motor wired to an H-bridge through two pins.
	DefaultHandler struct {
		afterSetDirectionFunc func(direction Direction)
		port                  Port
		sleeper               Sleeper
		pinA                  Pin
		pinB                  Pin
		direction             Direction
	}
)

const (
	// MomentumForwardPulseDelay is how long the first forward pulse is held while removing momentum
	MomentumForwardPulseDelay = 10 * time.Millisecond

	// MomentumSettleDelay is how long both pins stay low between the two pulses
	MomentumSettleDelay = 5 * time.Millisecond

	// MomentumFinalPulseDelay is how long the second forward pulse is held before returning
	MomentumFinalPulseDelay = 10 * time.Millisecond
)

// NewDefaultHandler creates a new instance of DefaultHandler
//
// Parameters:
//
// port: The digital output port both pins belong to
// pinA: The pin driven high to move forward
// pinB: The pin driven high to move backward
// sleeper: The sleeper used for the momentum removal delays, DefaultSleeper if nil
// afterSetDirectionFunc: Function to call after each command completes
//
// Returns:
//
// An instance of DefaultHandler and an error if any occurred during initialization
func NewDefaultHandler(
	port Port,
	pinA Pin,
	pinB Pin,
	sleeper Sleeper,
	afterSetDirectionFunc func(direction Direction),
) (*DefaultHandler, tinygoerrors.ErrorCode) {
	// Check if the port is nil
	if port == nil {
		return nil, ErrorCodeDCMotorNilPort
	}

	// Both terminals of the motor must be on different pins
	if pinA == pinB {
		return nil, ErrorCodeDCMotorSamePins
	}

	if sleeper == nil {
		sleeper = DefaultSleeper
	}

	return &DefaultHandler{
		afterSetDirectionFunc: afterSetDirectionFunc,
		port:                  port,
		sleeper:               sleeper,
		pinA:                  pinA,
		pinB:                  pinB,
		direction:             DirectionNil,
	}, tinygoerrors.ErrorCodeNil
}

// PinA returns the pin driven high to move forward.
func (h *DefaultHandler) PinA() Pin {
	return h.pinA
}

// PinB returns the pin driven high to move backward.
func (h *DefaultHandler) PinB() Pin {
	return h.pinB
}

// Direction returns the last state commanded to the motor.
func (h *DefaultHandler) Direction() Direction {
	return h.direction
}

// set writes both pin levels and records the commanded direction
func (h *DefaultHandler) set(levelA, levelB Level, direction Direction) {
	h.port.Set(h.pinA, levelA)
	h.port.Set(h.pinB, levelB)
	h.direction = direction
}

func (h *DefaultHandler) notify() {
	if h.afterSetDirectionFunc != nil {
		h.afterSetDirectionFunc(h.direction)
	}
}

// Initialize configures both pins as outputs and stops the motor.
//
// It must be called once before any other operation.
func (h *DefaultHandler) Initialize() {
	h.port.ConfigureOutput(h.pinA)
	h.port.ConfigureOutput(h.pinB)
	h.Stop()
}

// Forward drives pin A high and pin B low.
func (h *DefaultHandler) Forward() {
	h.set(LevelHigh, LevelLow, DirectionForward)
	h.notify()
}

// Backward drives pin A low and pin B high.
func (h *DefaultHandler) Backward() {
	h.set(LevelLow, LevelHigh, DirectionBackward)
	h.notify()
}

// Stop drives both pins low.
func (h *DefaultHandler) Stop() {
	h.set(LevelLow, LevelLow, DirectionStop)
	h.notify()
}

// RemoveMomentum runs the open-loop braking pulse sequence.
//
// Pin A is pulsed high, low and high again while pin B stays low, holding for
// MomentumForwardPulseDelay, MomentumSettleDelay and MomentumFinalPulseDelay.
// The call blocks for the whole sequence and leaves the motor in the forward state.
func (h *DefaultHandler) RemoveMomentum() {
	h.set(LevelHigh, LevelLow, DirectionMomentumPulse)
	h.sleeper.Sleep(MomentumForwardPulseDelay)

	h.port.Set(h.pinA, LevelLow)
	h.sleeper.Sleep(MomentumSettleDelay)

	// Second pulse, pin B is still low
	h.port.Set(h.pinA, LevelHigh)
	h.sleeper.Sleep(MomentumFinalPulseDelay)

	h.notify()
	h.direction = DirectionForward
}

//go:build tinygo

package tinygo_dcmotor

import (
	"machine"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	tinygologger "github.com/ralvarezdev/tinygo-logger"
)

type (
	// MachinePort drives the board GPIO through the machine package.
	MachinePort struct{}
)

var (
	// forwardPrefix is the prefix for the log message when moving forward
	forwardPrefix = []byte("Set DC Motor direction to forward")

	// backwardPrefix is the prefix for the log message when moving backward
	backwardPrefix = []byte("Set DC Motor direction to backward")

	// stopPrefix is the prefix for the log message when stopping the motor
	stopPrefix = []byte("Stop DC Motor")

	// removeMomentumPrefix is the prefix for the log message after the braking pulses
	removeMomentumPrefix = []byte("Removed DC Motor momentum")
)

// ConfigureOutput configures the pin as a digital output.
func (MachinePort) ConfigureOutput(pin Pin) {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

// Set writes the level to the pin.
func (MachinePort) Set(pin Pin, level Level) {
	machine.Pin(pin).Set(bool(level))
}

// NewMachineHandler creates a new DefaultHandler on the board GPIO
//
// Parameters:
//
// pinA: The pin driven high to move forward
// pinB: The pin driven high to move backward
// logger: The logger to log messages, nil to disable logging
//
// Returns:
//
// An instance of DefaultHandler and an error if any occurred during initialization
func NewMachineHandler(
	pinA machine.Pin,
	pinB machine.Pin,
	logger tinygologger.Logger,
) (*DefaultHandler, tinygoerrors.ErrorCode) {
	var afterSetDirectionFunc func(direction Direction)
	if logger != nil {
		afterSetDirectionFunc = func(direction Direction) {
			switch direction {
			case DirectionForward:
				logger.AddMessage(forwardPrefix, true)
			case DirectionBackward:
				logger.AddMessage(backwardPrefix, true)
			case DirectionStop:
				logger.AddMessage(stopPrefix, true)
			case DirectionMomentumPulse:
				logger.AddMessage(removeMomentumPrefix, true)
			default:
				return
			}
			logger.Debug()
		}
	}

	return NewDefaultHandler(
		MachinePort{},
		Pin(pinA),
		Pin(pinB),
		DefaultSleeper,
		afterSetDirectionFunc,
	)
}

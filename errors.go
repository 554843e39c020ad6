package tinygo_dcmotor

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

const (
	// ErrorCodeDCMotorStartNumber is the starting number for DC motor-related error codes.
	ErrorCodeDCMotorStartNumber uint16 = 5230
)

const (
	ErrorCodeDCMotorNilPort tinygoerrors.ErrorCode = tinygoerrors.ErrorCode(iota + ErrorCodeDCMotorStartNumber)
	ErrorCodeDCMotorSamePins
)

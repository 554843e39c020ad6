package tinygo_dcmotor

type (
	// Direction is an enum to represent the different states commanded to the motor.
	Direction uint8

	// Level is the logic level written to a digital output pin.
	Level bool
)

const (
	DirectionNil Direction = iota
	DirectionForward
	DirectionBackward
	DirectionStop
	DirectionMomentumPulse
)

const (
	LevelLow  Level = false
	LevelHigh Level = true
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionStop:
		return "stop"
	case DirectionMomentumPulse:
		return "momentum pulse"
	default:
		return "nil"
	}
}

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

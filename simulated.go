package tinygo_dcmotor

type (
	// EventKind is the kind of operation recorded by a SimulatedPort.
	EventKind uint8

	// Event is a single operation performed on a SimulatedPort
	Event struct {
		Kind  EventKind
		Pin   Pin
		Level Level
	}

	// SimulatedPort is an in-memory Port that records every operation, for use off the board.
	SimulatedPort struct {
		events     []Event
		levels     map[Pin]Level
		configured map[Pin]bool
	}
)

const (
	EventConfigureOutput EventKind = iota
	EventSet
)

// NewSimulatedPort creates a new SimulatedPort with every pin low and unconfigured.
func NewSimulatedPort() *SimulatedPort {
	return &SimulatedPort{
		levels:     make(map[Pin]Level),
		configured: make(map[Pin]bool),
	}
}

// ConfigureOutput marks the pin as an output.
func (p *SimulatedPort) ConfigureOutput(pin Pin) {
	p.configured[pin] = true
	p.events = append(p.events, Event{Kind: EventConfigureOutput, Pin: pin})
}

// Set stores the level written to the pin.
func (p *SimulatedPort) Set(pin Pin, level Level) {
	p.levels[pin] = level
	p.events = append(p.events, Event{Kind: EventSet, Pin: pin, Level: level})
}

// Get returns the last level written to the pin, LevelLow if it was never written.
func (p *SimulatedPort) Get(pin Pin) Level {
	return p.levels[pin]
}

// IsOutput reports whether the pin was configured as an output.
func (p *SimulatedPort) IsOutput(pin Pin) bool {
	return p.configured[pin]
}

// Events returns a copy of the recorded operations in call order.
func (p *SimulatedPort) Events() []Event {
	events := make([]Event, len(p.events))
	copy(events, p.events)
	return events
}

// Reset forgets the recorded operations but keeps pin levels and configuration.
func (p *SimulatedPort) Reset() {
	p.events = p.events[:0]
}

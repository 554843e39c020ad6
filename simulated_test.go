package tinygo_dcmotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedPort(t *testing.T) {
	port := NewSimulatedPort()
	assert.Equal(t, LevelLow, port.Get(7))
	assert.False(t, port.IsOutput(7))

	port.ConfigureOutput(7)
	port.Set(7, LevelHigh)
	assert.True(t, port.IsOutput(7))
	assert.Equal(t, LevelHigh, port.Get(7))

	events := port.Events()
	assert.Len(t, events, 2)

	// Events returns a copy
	events[0].Pin = 99
	assert.Equal(t, Pin(7), port.Events()[0].Pin)

	port.Reset()
	assert.Empty(t, port.Events())
	assert.Equal(t, LevelHigh, port.Get(7))
	assert.True(t, port.IsOutput(7))
}

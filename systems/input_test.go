package systems

import (
	"testing"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/sim"
	"github.com/stretchr/testify/assert"
)

func TestGetActionEdgeDetection(t *testing.T) {
	tests := []struct {
		name     string
		prev     bool
		curr     bool
		expected components.ActionState
	}{
		{
			name:     "held",
			prev:     true,
			curr:     true,
			expected: components.ActionState{Pressed: true},
		},
		{
			name:     "just pressed",
			prev:     false,
			curr:     true,
			expected: components.ActionState{Pressed: true, JustPressed: true},
		},
		{
			name:     "just released",
			prev:     true,
			curr:     false,
			expected: components.ActionState{JustReleased: true},
		},
		{
			name:     "idle",
			prev:     false,
			curr:     false,
			expected: components.ActionState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Previous[cfg.ActionPause] = tt.prev
			input.Current[cfg.ActionPause] = tt.curr

			assert.Equal(t, tt.expected, GetAction(input, cfg.ActionPause))
		})
	}
}

func TestJoinKeyboardSchemeExclusive(t *testing.T) {
	players := &components.PlayersData{}
	simData := &components.SimulationData{Sim: sim.New(sim.Config{Width: 4, Height: 4})}

	joinKeyboard(players, simData, cfg.SchemeA)
	joinKeyboard(players, simData, cfg.SchemeA)
	assert.Len(t, players.Slots, 1, "a scheme can only drive one tank")

	joinKeyboard(players, simData, cfg.SchemeB)
	assert.Len(t, players.Slots, 2)
}

func TestJoinKeyboardRespectsMaxPlayers(t *testing.T) {
	players := &components.PlayersData{}
	simData := &components.SimulationData{Sim: sim.New(sim.Config{Width: 4, Height: 4})}

	for i := 0; i < cfg.Arena.MaxPlayers; i++ {
		players.Slots = append(players.Slots, components.PlayerSlot{})
	}

	joinKeyboard(players, simData, cfg.SchemeA)
	assert.Len(t, players.Slots, cfg.Arena.MaxPlayers)
}

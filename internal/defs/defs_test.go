package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"capture-the-fly/internal/component"
)

func TestWaveSequence(t *testing.T) {
	tests := []struct {
		n        int
		count    int
		interval float64
	}{
		{1, 7, 1.95},
		{2, 9, 1.90},
		{10, 25, 1.5},
		{35, 75, 0.25},
		{36, 77, 0.2},
		{50, 105, 0.2},
	}
	for _, tt := range tests {
		w := WaveFor(tt.n)
		assert.Equal(t, tt.n, w.Number)
		assert.Equal(t, tt.count, w.Count, "wave %d", tt.n)
		assert.InDelta(t, tt.interval, w.SpawnInterval, 1e-9, "wave %d", tt.n)
	}
}

func TestIntervalNeverBelowFloor(t *testing.T) {
	for n := 1; n < 200; n++ {
		assert.GreaterOrEqual(t, WaveFor(n).SpawnInterval, 0.2)
	}
}

func TestPlayerActionsAreDefined(t *testing.T) {
	for _, kind := range []string{"idle", "walk", "attack"} {
		for _, dir := range []component.Movement{component.Left, component.Right, component.Up, component.Down} {
			_, ok := PlayerAnimations[PlayerAction(kind, dir)]
			assert.True(t, ok, PlayerAction(kind, dir))
		}
	}
	assert.Equal(t, "idle_down", PlayerAction("idle", component.None))
	assert.False(t, PlayerAnimations[PlayerAction("attack", component.Left)].Loop)
}

package chip8

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimers_Advance(t *testing.T) {
	tests := []struct {
		name      string
		start     byte
		elapsed   []time.Duration
		wantTicks int
		want      byte
	}{
		{"below one interval", 10, []time.Duration{TimerInterval - 1}, 0, 10},
		{"exactly one interval", 10, []time.Duration{TimerInterval}, 1, 9},
		{"accumulates short frames", 10, []time.Duration{TimerInterval / 2, TimerInterval / 2}, 1, 9},
		{"long frame ticks more than once", 10, []time.Duration{3*TimerInterval + 1}, 3, 7},
		{"negative elapsed ignored", 10, []time.Duration{-time.Second}, 0, 10},
		{"floors at zero", 1, []time.Duration{5 * TimerInterval}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timers := Timers{Delay: tt.start, Sound: tt.start}
			ticks := 0
			for _, elapsed := range tt.elapsed {
				ticks += timers.Advance(elapsed)
			}
			assert.Equal(t, tt.wantTicks, ticks)
			assert.Equal(t, tt.want, timers.Delay)
			assert.Equal(t, tt.want, timers.Sound)
		})
	}
}

func TestTimers_TickNeverNegative(t *testing.T) {
	timers := Timers{Delay: 1, Sound: 0}
	for range 100 {
		timers.Tick()
		assert.Equal(t, byte(0), timers.Delay)
		assert.Equal(t, byte(0), timers.Sound)
	}
}

func TestTimers_Independent(t *testing.T) {
	timers := Timers{Delay: 3, Sound: 1}
	timers.Tick()
	timers.Tick()
	assert.Equal(t, byte(1), timers.Delay)
	assert.Equal(t, byte(0), timers.Sound)
}

package chip8

import "time"

// TimerInterval is the period of one delay and sound timer decrement (60 Hz).
const TimerInterval = time.Second / 60

// Timers holds the delay and sound timers. They count down independently of
// the instruction rate, driven by the host time passed to Advance.
type Timers struct {
	Delay byte
	Sound byte

	elapsed time.Duration // host time not yet converted into ticks
}

// Advance accumulates elapsed host time and performs one tick for every full
// TimerInterval crossed. It returns the number of ticks performed.
func (t *Timers) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}

	t.elapsed += elapsed
	ticks := 0
	for t.elapsed >= TimerInterval {
		t.elapsed -= TimerInterval
		t.Tick()
		ticks++
	}
	return ticks
}

// Tick decrements both timers by one, stopping at zero.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

func (t *Timers) reset() {
	*t = Timers{}
}

package arena

// loopEpsilon keeps a frame of exactly n steps from losing its last tick to
// rounding.
const loopEpsilon = 1e-9

// Loop turns variable frame times into fixed simulation steps. Frame time is
// capped so a long stall cannot queue an unbounded number of ticks.
type Loop struct {
	Step     float64
	MaxFrame float64

	tick func(dt float64)
	acc  float64
}

func NewLoop(tickRate int, maxFrame float64, tick func(dt float64)) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxFrame <= 0 {
		maxFrame = 0.25
	}
	return &Loop{Step: 1 / float64(tickRate), MaxFrame: maxFrame, tick: tick}
}

// Advance adds frameTime seconds and runs as many whole steps as fit. It
// returns the number of steps run.
func (l *Loop) Advance(frameTime float64) int {
	if frameTime > l.MaxFrame {
		frameTime = l.MaxFrame
	}
	if frameTime > 0 {
		l.acc += frameTime
	}

	n := 0
	for l.acc+loopEpsilon >= l.Step {
		if l.tick != nil {
			l.tick(l.Step)
		}
		l.acc -= l.Step
		n++
	}
	if l.acc < 0 {
		l.acc = 0
	}
	return n
}

// Alpha is how far the accumulator is into the next step, in [0, 1).
func (l *Loop) Alpha() float64 {
	return l.acc / l.Step
}

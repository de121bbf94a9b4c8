package arena

import "testing"

func TestLoopAdvance(t *testing.T) {
	tests := []struct {
		name   string
		frames []float64
		want   int
	}{
		{"one_step", []float64{1.0 / 60}, 1},
		{"quarter_second", []float64{0.25}, 15},
		{"capped", []float64{1.0}, 15},
		{"accumulates", []float64{0.01, 0.01}, 1},
		{"negative_ignored", []float64{-1}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var dts []float64
			l := NewLoop(60, 0.25, func(dt float64) { dts = append(dts, dt) })
			got := 0
			for _, f := range tc.frames {
				got += l.Advance(f)
			}
			if got != tc.want || len(dts) != tc.want {
				t.Fatalf("steps = %d (%d ticks), want %d", got, len(dts), tc.want)
			}
			for _, dt := range dts {
				if dt != 1.0/60 {
					t.Errorf("dt = %v", dt)
				}
			}
			if a := l.Alpha(); a < 0 || a >= 1 {
				t.Errorf("alpha = %v", a)
			}
		})
	}
}

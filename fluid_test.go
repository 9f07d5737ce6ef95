package fluid

import (
	"math"
	"testing"
)

const delta = 1.0 / 60.0

func TestDrag_TranslationAndFirstVelocity(t *testing.T) {
	var drag Drag
	drag.Begin(100, 100)
	drag.Update(110, 105, delta)

	x, y := drag.Translation()
	if x != 10 || y != 5 {
		t.Fatalf("Translation() = (%g, %g), want (10, 5)", x, y)
	}
	// the first sample seeds the filter with the raw finite difference
	vx, vy := drag.Velocity()
	if math.Abs(vx-600) > 1e-9 || math.Abs(vy-300) > 1e-9 {
		t.Errorf("Velocity() = (%g, %g), want (600, 300)", vx, vy)
	}
}

func TestDrag_VelocitySmoothing(t *testing.T) {
	drag := Drag{Smoothing: 0.5}
	drag.Begin(0, 0)
	drag.Update(10, 0, delta) // raw 600, seeds filter
	drag.Update(30, 0, delta) // raw 1200

	vx, _ := drag.Velocity()
	if math.Abs(vx-900) > 1e-9 { // 1200*0.5 + 600*0.5
		t.Errorf("smoothed velocity = %g, want 900", vx)
	}
}

func TestDrag_SkipsNonFiniteSamples(t *testing.T) {
	var drag Drag
	drag.Begin(0, 0)
	drag.Update(10, 10, delta)
	beforeVX, beforeVY := drag.Velocity()

	drag.Update(math.NaN(), 20, delta)
	drag.Update(20, math.Inf(1), delta)

	x, y := drag.Translation()
	if x != 10 || y != 10 {
		t.Errorf("Translation() = (%g, %g) after non-finite samples, want (10, 10)", x, y)
	}
	if vx, vy := drag.Velocity(); vx != beforeVX || vy != beforeVY {
		t.Errorf("Velocity changed on skipped samples")
	}
}

func TestDrag_End(t *testing.T) {
	var drag Drag
	drag.Begin(0, 0)
	drag.Update(10, 0, delta)

	vx, vy := drag.End()
	if math.Abs(vx-600) > 1e-9 || vy != 0 {
		t.Fatalf("End() = (%g, %g), want (600, 0)", vx, vy)
	}
	if drag.Active() {
		t.Error("drag still active after End")
	}
	// ending an inactive drag is safe and inert
	if vx, vy := drag.End(); vx != 0 || vy != 0 {
		t.Errorf("second End() = (%g, %g), want (0, 0)", vx, vy)
	}
}

func TestDrag_UpdateWithoutBeginPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Update without Begin")
		}
	}()
	var drag Drag
	drag.Update(1, 1, delta)
}

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		velocity float64
		rate     DecelerationRate
		want     float64
	}{
		{"zero velocity is the identity", 123, 0, DecelerationNormal, 123},
		{"normal rate", 0, 1000, DecelerationNormal, 499},
		{"fast rate travels less", 0, 1000, DecelerationFast, 99},
		{"offset value", 50, 1000, DecelerationFast, 149},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.value, tt.velocity, tt.rate)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Project(%g, %g, %g) = %g, want %g", tt.value, tt.velocity, float64(tt.rate), got, tt.want)
			}
		})
	}
}

func TestProject_OddInVelocity(t *testing.T) {
	for _, velocity := range []float64{10, 250, 1000, 4200} {
		forward := Project(0, velocity, DecelerationNormal)
		backward := Project(0, -velocity, DecelerationNormal)
		if math.Abs(forward+backward) > 1e-9 {
			t.Errorf("projection not odd in velocity: %g vs %g", forward, backward)
		}
	}
}

func TestProject_PanicsOnBadRate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for rate outside (0, 1)")
		}
	}()
	Project(0, 100, 1)
}

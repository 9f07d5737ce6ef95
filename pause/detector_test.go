package pause

import (
	"math"
	"testing"
)

// fills the window with cruising-speed samples
func warmUp(detector *Detector, velocity float64, count int) {
	for i := 0; i < count; i++ {
		detector.Track(velocity, 0)
	}
}

func TestTrack_WarmUpNeverLatches(t *testing.T) {
	var detector Detector
	// even a brutal velocity collapse cannot latch before the
	// window holds seven samples
	samples := []float64{500, 400, 300, 5, 2, 1, 0.5}
	for i, velocity := range samples {
		detector.Track(velocity, 200)
		if detector.Paused() {
			t.Fatalf("latched during warm-up at sample %d", i+1)
		}
	}
}

func TestTrack_VelocityCollapseLatches(t *testing.T) {
	var detector Detector
	warmUp(&detector, 500, 7)
	if detector.Paused() {
		t.Fatal("latched before any decision tick")
	}
	// |500 - 10| / 500 = 0.98 > 0.9, gates pass (|10| <= 100, |80| >= 50)
	detector.Track(10, 80)
	if !detector.Paused() {
		t.Fatal("expected latch on the 8th sample")
	}
}

func TestTrack_FastMotionGate(t *testing.T) {
	var detector Detector
	warmUp(&detector, 5000, 7)
	// ratio would trigger (0.97 > 0.9) but the gesture is still fast
	detector.Track(150, 80)
	if detector.Paused() {
		t.Fatal("latched while |velocity| > gate")
	}
}

func TestTrack_SmallTravelGate(t *testing.T) {
	var detector Detector
	warmUp(&detector, 500, 7)
	detector.Track(10, 30)
	if detector.Paused() {
		t.Fatal("latched with |offset| below the travel gate")
	}
}

func TestTrack_ZeroBaseline(t *testing.T) {
	var detector Detector
	warmUp(&detector, 0, 7)
	// drop ratio is undefined against a zero baseline; must not latch
	detector.Track(10, 80)
	if detector.Paused() {
		t.Fatal("latched against a zero baseline velocity")
	}
}

func TestTrack_IdempotentOnceLatched(t *testing.T) {
	var detector Detector
	warmUp(&detector, 500, 7)
	detector.Track(10, 80)
	if !detector.Paused() {
		t.Fatal("expected latch")
	}
	// anything fed after the latch is a no-op until Reset
	detector.Track(5000, 500)
	detector.Track(0, 0)
	if !detector.Paused() {
		t.Fatal("latch lost without Reset")
	}
}

func TestTrack_SkipsNonFiniteSamples(t *testing.T) {
	var detector Detector
	warmUp(&detector, 500, 6)
	detector.Track(math.NaN(), 80)
	detector.Track(math.Inf(1), 80)
	// the window should still be one sample short of warm, so this
	// call is warm-up, not a decision
	detector.Track(10, 80)
	if detector.Paused() {
		t.Fatal("non-finite samples counted toward the window")
	}
	// now warm: this tick decides against the oldest sample (500)
	detector.Track(10, 80)
	if !detector.Paused() {
		t.Fatal("expected latch on the first decision tick")
	}
}

func TestReset(t *testing.T) {
	var detector Detector
	warmUp(&detector, 500, 7)
	detector.Track(10, 80)
	if !detector.Paused() {
		t.Fatal("expected latch")
	}

	detector.Reset()
	if detector.Paused() {
		t.Fatal("Reset did not clear the latch")
	}

	// the window was cleared too, so a full warm-up is needed again
	detector.Track(10, 80)
	if detector.Paused() {
		t.Fatal("latched right after Reset without warm-up")
	}
	warmUp(&detector, 500, 6)
	detector.Track(10, 80)
	if !detector.Paused() {
		t.Fatal("expected detector to work again after Reset")
	}
}

func TestTrack_SlidingWindowBaseline(t *testing.T) {
	var detector Detector
	warmUp(&detector, 500, 7)
	// keep cruising: each tick evicts the oldest sample, and against
	// a same-speed baseline the ratio stays at zero
	for i := 0; i < 20; i++ {
		detector.Track(500, 200)
		if detector.Paused() {
			t.Fatalf("latched at constant velocity on tick %d", i)
		}
	}
	// gentle taper: the baseline slides along with the gesture, so a
	// slow decline never shows a >90% collapse window-to-window
	for _, velocity := range []float64{90, 85, 80, 76, 72, 68, 65, 62, 59} {
		detector.Track(velocity, 200)
	}
	if detector.Paused() {
		t.Fatal("latched on a gentle taper")
	}
}

func TestTrack_CustomTuning(t *testing.T) {
	detector := Detector{WindowSize: 3, VelocityGate: 10, MinTravel: 5, DropRatio: 0.5}
	warmUp(&detector, 100, 3)
	detector.Track(8, 20) // |100-8|/100 = 0.92 > 0.5, |8| <= 10, |20| >= 5
	if !detector.Paused() {
		t.Fatal("expected latch with custom tuning")
	}
}

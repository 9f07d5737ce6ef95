// This package implements timer-free pause detection for drag
// gestures: inferring that the finger has come to a meaningful halt
// mid-flight from a sharp drop across a short window of recent
// velocity samples.
//
// The classic use is revealing an affordance when the user drags
// something and then hesitates, without waiting on a clock. A few
// properties worth knowing before tuning:
//   - Nothing happens until the sample window is warm, so detection
//     can never trigger on the first few ticks of a gesture.
//   - Detection is a latch. Once a pause is reported the detector
//     goes quiet until the owner resets it, typically on lift-off.
//   - Fast motion and tiny displacements are gated out, so jitter near
//     the press origin does not read as a pause.
package pause

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Default tuning values, matching the observed interaction feel.
const (
	// Number of velocity samples the rolling window holds.
	DefaultWindowSize = 7

	// Velocity magnitudes above this gate mean the gesture is still
	// in full flight, so no pause decision is taken.
	DefaultVelocityGate = 100.0

	// Displacements below this travel distance are too small for a
	// pause to be meaningful.
	DefaultMinTravel = 50.0

	// Relative velocity collapse, against the oldest windowed sample,
	// beyond which the gesture counts as paused.
	DefaultDropRatio = 0.9
)

// Detector decides, from a live stream of per-tick velocity and offset
// samples, whether a drag gesture has paused mid-flight. It owns a
// fixed-capacity rolling window of the most recent velocity samples
// (oldest evicted first) and compares the incoming velocity against
// the oldest one: a collapse past the drop ratio latches the detector.
//
// The zero value is ready to use with the default tuning. A Detector
// is owned by exactly one widget and must receive samples in arrival
// order; it is not safe for concurrent use.
type Detector struct {
	// Tuning knobs. Zero values select the package defaults.
	WindowSize   int
	VelocityGate float64
	MinTravel    float64
	DropRatio    float64

	samples []float64
	paused  bool
}

// Feeds one velocity/offset sample. May latch the paused state as a
// side effect; once latched, further calls are no-ops until
// [Detector.Reset]().
//
// Non-finite samples are skipped without touching the window.
func (self *Detector) Track(velocity, offset float64) {
	if self.paused {
		return
	}
	if !finite(velocity) || !finite(offset) {
		return
	}

	// warm-up: fill the window before taking any decision
	size := self.windowSize()
	if len(self.samples) < size {
		self.samples = append(self.samples, velocity)
		return
	}

	// slide the window
	copy(self.samples, self.samples[1:])
	self.samples[len(self.samples)-1] = velocity
	oldest := self.samples[0]

	// gate: still moving fast, or barely displaced
	if ebimath.Abs(velocity) > self.velocityGate() {
		return
	}
	if ebimath.Abs(offset) < self.minTravel() {
		return
	}

	// zero baseline makes the drop ratio undefined; treat as no pause
	if oldest == 0 {
		return
	}
	if ebimath.Abs(oldest-velocity)/ebimath.Abs(oldest) > self.dropRatio() {
		self.paused = true
		self.samples = self.samples[:0]
	}
}

// Returns whether a pause has been detected since the last reset.
func (self *Detector) Paused() bool {
	return self.paused
}

// Clears the latch and the sample window. Owners call this when the
// gesture ends, regardless of whether a pause was detected.
func (self *Detector) Reset() {
	self.paused = false
	self.samples = self.samples[:0]
}

func (self *Detector) windowSize() int {
	if self.WindowSize > 0 {
		return self.WindowSize
	}
	return DefaultWindowSize
}

func (self *Detector) velocityGate() float64 {
	if self.VelocityGate > 0 {
		return self.VelocityGate
	}
	return DefaultVelocityGate
}

func (self *Detector) minTravel() float64 {
	if self.MinTravel > 0 {
		return self.MinTravel
	}
	return DefaultMinTravel
}

func (self *Detector) dropRatio() float64 {
	if self.DropRatio > 0 {
		return self.DropRatio
	}
	return DefaultDropRatio
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

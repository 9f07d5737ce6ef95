package fluid

// Deceleration rate for gesture end-point projection, expressed as the
// per-millisecond velocity retention factor of the standard decaying
// power series. Must be in the (0, 1) range.
type DecelerationRate float64

const (
	// The regular scroll-style deceleration feel.
	DecelerationNormal DecelerationRate = 0.998

	// A quicker stop, used when the element should not travel far
	// past the finger.
	DecelerationFast DecelerationRate = 0.99
)

// Projects where a value released with the given velocity would
// naturally come to rest. Velocity is in units per second, matching
// [Drag.Velocity](). The result is what corner snapping wants as its
// "predicted end point".
//
// Projection is odd in velocity and returns the value unchanged for
// zero velocity. Will panic on a rate outside the (0, 1) range.
func Project(value, velocity float64, rate DecelerationRate) float64 {
	if rate <= 0 || rate >= 1 {
		panic(badDecelerationRate)
	}
	// the series sums per-millisecond steps, so convert first
	perMilli := velocity / 1000.0
	return value + perMilli*float64(rate)/(1.0-float64(rate))
}

// This package defines a [Curve] interface for rubberband damping,
// with a couple of built-in implementations.
//
// Rubberbanding maps a raw linear drag distance to a visually damped
// offset that grows sub-linearly, communicating a soft resistance
// boundary: past a certain point, the element keeps following the
// finger but more and more reluctantly.
package rubberband

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// The exponent of the classic iOS-feel power law.
const DefaultExponent = 0.7

type curve = Curve

// A couple of ready-to-use curves.
var (
	// The plain power-law curve with the default exponent.
	Default curve = Power{}
)

// The interface for rubberband curves.
//
// Damp must be a pure, total function over finite floats, odd
// symmetric and monotonically non-decreasing, so the element never
// jumps or reverses direction while following the finger. Callers
// guard against non-finite input.
type Curve interface {
	Damp(offset float64) float64
}

// Power damps the entire offset with a sign-preserving power law:
// |offset|^Exponent with the input's sign. Magnitudes above 1 shrink,
// magnitudes below 1 grow slightly; that is a property of fractional
// powers, not a bug.
type Power struct {
	// The power-law exponent, in the (0, 1) range. The zero value
	// selects [DefaultExponent].
	Exponent float64
}

func (self Power) Damp(offset float64) float64 {
	damped := math.Pow(ebimath.Abs(offset), self.exponent())
	if offset < 0 {
		return -damped
	}
	return damped
}

func (self Power) exponent() float64 {
	if self.Exponent > 0 && self.Exponent < 1 {
		return self.Exponent
	}
	return DefaultExponent
}

// Folded is the soft-ceiling variant: offsets within Bound of Pivot
// pass through unchanged, and only the excess beyond the bound is
// damped with the power law and added back on top of it. The result
// is a two-segment curve, linear near the pivot and sub-linear past
// the bound, continuous at the seam.
type Folded struct {
	// The center of the linear pass-through region. Usually the rest
	// position of the element, so small drags feel 1:1.
	Pivot float64

	// Distance from the pivot at which damping starts. Must be >= 0.
	Bound float64

	// Power-law exponent for the excess. The zero value selects
	// [DefaultExponent].
	Exponent float64
}

func (self Folded) Damp(offset float64) float64 {
	if self.Bound < 0 {
		panic(negativeFoldBound)
	}
	distance := offset - self.Pivot
	magnitude := ebimath.Abs(distance)
	if magnitude <= self.Bound {
		return offset
	}
	excess := magnitude - self.Bound
	damped := self.Bound + math.Pow(excess, self.exponent())
	if distance < 0 {
		return self.Pivot - damped
	}
	return self.Pivot + damped
}

func (self Folded) exponent() float64 {
	if self.Exponent > 0 && self.Exponent < 1 {
		return self.Exponent
	}
	return DefaultExponent
}

// --- errors ---

const negativeFoldBound = "rubberband: Folded.Bound must be >= 0"

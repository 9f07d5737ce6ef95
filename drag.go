package fluid

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Default smoothing factor for velocity estimation. Closer to 1.0
// means smoother velocities but more lag behind the pointer.
const DefaultSmoothing = 0.4

// Drag turns a per-tick stream of absolute pointer coordinates into
// translations from the press origin and smoothed per-second velocity
// estimates. Most input systems (Ebitengine included) report pointer
// position, not velocity, so interactive widgets feed a Drag first and
// hand its outputs to the decision components.
//
// The zero value is ready to use. A Drag must be owned by exactly one
// widget and fed samples in arrival order.
type Drag struct {
	// Smoothing is the exponential smoothing factor applied to the
	// raw finite-difference velocity, in the (0, 1) range. The zero
	// value selects [DefaultSmoothing].
	Smoothing float64

	active bool
	warm   bool
	origin ebimath.Vector
	last   ebimath.Vector
	vel    ebimath.Vector
}

// Starts a new gesture at the given pointer position. Any state from
// a previous gesture is discarded.
func (self *Drag) Begin(x, y float64) {
	self.active = true
	self.warm = false
	self.origin = ebimath.V(x, y)
	self.last = self.origin
	self.vel = ebimath.V(0, 0)
}

// Feeds the pointer position for the current tick. The deltaSeconds
// argument is the time elapsed since the previous sample, typically
// 1.0/TPS(). Non-finite coordinates are skipped without touching any
// state, matching the "skip this tick" input contract of the decision
// components.
//
// Will panic if invoked without [Drag.Begin]() or with
// deltaSeconds <= 0.
func (self *Drag) Update(x, y, deltaSeconds float64) {
	if !self.active {
		panic(dragUpdateBeforeBegin)
	}
	if deltaSeconds <= 0 {
		panic(dragNonPositiveDelta)
	}
	if !isFinite(x) || !isFinite(y) {
		return
	}

	rawX := (x - self.last.X) / deltaSeconds
	rawY := (y - self.last.Y) / deltaSeconds
	if self.warm {
		factor := self.smoothing()
		self.vel.X = rawX*(1.0-factor) + self.vel.X*factor
		self.vel.Y = rawY*(1.0-factor) + self.vel.Y*factor
	} else {
		// first sample seeds the filter directly
		self.vel = ebimath.V(rawX, rawY)
		self.warm = true
	}
	self.last = ebimath.V(x, y)
}

// Finishes the gesture and returns the lift-off velocity, which is
// what velocity-seeded transitions want. Calling End on an inactive
// Drag is safe and returns zero velocities.
func (self *Drag) End() (velocityX, velocityY float64) {
	velocityX, velocityY = self.vel.X, self.vel.Y
	self.active = false
	self.warm = false
	self.vel = ebimath.V(0, 0)
	return velocityX, velocityY
}

// Returns whether a gesture is in progress.
func (self *Drag) Active() bool {
	return self.active
}

// Returns the current translation from the press origin.
func (self *Drag) Translation() (x, y float64) {
	return self.last.X - self.origin.X, self.last.Y - self.origin.Y
}

// Returns the current smoothed velocity estimate, in units per second.
// Zero until the first sample after [Drag.Begin]() arrives.
func (self *Drag) Velocity() (x, y float64) {
	return self.vel.X, self.vel.Y
}

func (self *Drag) smoothing() float64 {
	if self.Smoothing > 0 && self.Smoothing < 1 {
		return self.Smoothing
	}
	return DefaultSmoothing
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// This package integrates spring motion for fluid transitions, built
// on harmonica. The one thing it adds over a raw harmonica spring is
// velocity seeding: a transition can start with the lift-off velocity
// of the gesture that triggered it, so the element sails toward its
// target instead of stopping dead and restarting.
package spring

import (
	"github.com/charmbracelet/harmonica"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Default spring parameters. The angular frequency controls how fast
// the spring acts, the damping ratio how much it oscillates around
// the target before settling.
const (
	DefaultFrequency = 6.0
	DefaultDamping   = 0.8

	// Parameters for direct (non-springy) transitions: stiffer and
	// critically damped, so the element heads straight in.
	DirectFrequency = 9.0
	DirectDamping   = 1.0
)

// Position and velocity deltas below these thresholds count as
// settled.
const settleEpsilon = 0.05

// Animator integrates a two-axis spring toward a target position,
// one step per tick. Owned by a single widget, driven from the host
// update loop.
type Animator struct {
	spring   harmonica.Spring
	position ebimath.Vector
	velocity ebimath.Vector
	target   ebimath.Vector
}

// Creates an animator stepping at the given ticks per second with the
// given angular frequency and damping ratio.
func NewAnimator(tps int, frequency, damping float64) *Animator {
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(tps), frequency, damping),
	}
}

// Creates an animator with [DefaultFrequency] and [DefaultDamping].
func NewSpringy(tps int) *Animator {
	return NewAnimator(tps, DefaultFrequency, DefaultDamping)
}

// Creates an animator with [DirectFrequency] and [DirectDamping].
func NewDirect(tps int) *Animator {
	return NewAnimator(tps, DirectFrequency, DirectDamping)
}

// Places the element immediately, zeroing any spring velocity. Used
// for initial layout and while a drag overrides the spring.
func (self *Animator) MoveTo(x, y float64) {
	self.position = ebimath.V(x, y)
	self.target = self.position
	self.velocity = ebimath.V(0, 0)
}

// Sets the position the spring pulls toward.
func (self *Animator) SetTarget(x, y float64) {
	self.target = ebimath.V(x, y)
}

// Injects an initial velocity, in units per second. Feed the gesture
// lift-off velocity here for springy transitions.
func (self *Animator) Seed(velocityX, velocityY float64) {
	self.velocity = ebimath.V(velocityX, velocityY)
}

// Advances the spring one tick and returns the new position.
func (self *Animator) Update() (x, y float64) {
	self.position.X, self.velocity.X = self.spring.Update(self.position.X, self.velocity.X, self.target.X)
	self.position.Y, self.velocity.Y = self.spring.Update(self.position.Y, self.velocity.Y, self.target.Y)
	return self.position.X, self.position.Y
}

// Returns the current position without advancing the spring.
func (self *Animator) Position() (x, y float64) {
	return self.position.X, self.position.Y
}

// Reports whether the spring has effectively reached its target and
// stopped moving.
func (self *Animator) Settled() bool {
	return ebimath.Abs(self.position.X-self.target.X) < settleEpsilon &&
		ebimath.Abs(self.position.Y-self.target.Y) < settleEpsilon &&
		ebimath.Abs(self.velocity.X) < settleEpsilon &&
		ebimath.Abs(self.velocity.Y) < settleEpsilon
}

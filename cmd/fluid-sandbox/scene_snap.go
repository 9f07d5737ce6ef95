package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/FradSer/fluid"
	"github.com/FradSer/fluid/snap"
	"github.com/FradSer/fluid/spring"
	"github.com/FradSer/fluid/utils"
)

// A picture-in-picture style floating panel. While dragged it sticks
// to the pointer; on release the projected end point of the gesture
// picks a corner and the panel animates there, springy when the flick
// had direction, direct when it did not.
type snapScene struct {
	config  Config
	drag    fluid.Drag
	springy *spring.Animator
	direct  *spring.Animator
	active  *spring.Animator

	positionX, positionY float64
	grabX, grabY         float64
	corner               snap.Corner
	dragging             bool
	placed               bool
}

func newSnapScene(config Config) *snapScene {
	scene := &snapScene{
		config:  config,
		springy: spring.NewAnimator(updatesPerSecond, config.Spring.Frequency, config.Spring.Damping),
		direct:  spring.NewAnimator(updatesPerSecond, config.Spring.DirectFrequency, config.Spring.DirectDamping),
		corner:  snap.BottomTrailing,
	}
	scene.active = scene.springy
	return scene
}

func (self *snapScene) Title() string {
	return "corner snap: flick the panel toward a corner"
}

func (self *snapScene) panel() (panelWidth, panelHeight float64) {
	return self.config.Panel.Width, self.config.Panel.Height
}

func (self *snapScene) Update(in pointer, width, height float64) {
	panelWidth, panelHeight := self.panel()

	// container size is only known here, so initial placement is lazy
	if !self.placed {
		self.positionX, self.positionY = self.corner.Offset(width, height, panelWidth, panelHeight)
		self.active.MoveTo(self.positionX, self.positionY)
		self.placed = true
	}

	bounds := rect{x: self.positionX, y: self.positionY, width: panelWidth, height: panelHeight}
	switch {
	case in.justPressed && bounds.contains(in.x, in.y):
		self.dragging = true
		self.drag.Begin(in.x, in.y)
		self.grabX, self.grabY = in.x-self.positionX, in.y-self.positionY
	case self.dragging && in.pressed:
		self.drag.Update(in.x, in.y, in.deltaSeconds)
		self.positionX = in.x - self.grabX
		self.positionY = in.y - self.grabY
	case self.dragging && in.justReleased:
		velocityX, velocityY := self.drag.End()
		self.dragging = false
		self.release(width, height, velocityX, velocityY)
	case !self.dragging:
		self.positionX, self.positionY = self.active.Update()
	}
}

func (self *snapScene) release(width, height, velocityX, velocityY float64) {
	panelWidth, panelHeight := self.panel()
	centerX := self.positionX + panelWidth/2.0
	centerY := self.positionY + panelHeight/2.0
	projectedX := fluid.Project(centerX, velocityX, fluid.DecelerationNormal)
	projectedY := fluid.Project(centerY, velocityY, fluid.DecelerationNormal)

	transition, resolved := snap.ResolveMotion(width, height, projectedX, projectedY, centerX, centerY)
	if resolved {
		self.corner = transition.Corner
	}
	// unresolved keeps the previous corner with a direct return trip
	kind := snap.TransitionDirect
	if resolved {
		kind = transition.Kind
	}

	self.active = self.direct
	if kind == snap.TransitionSpringy {
		self.active = self.springy
	}
	self.active.MoveTo(self.positionX, self.positionY)
	if kind == snap.TransitionSpringy {
		self.active.Seed(velocityX, velocityY)
	}
	targetX, targetY := self.corner.Offset(width, height, panelWidth, panelHeight)
	self.active.SetTarget(targetX, targetY)
}

func (self *snapScene) Draw(screen *ebiten.Image, theme Theme) {
	panelWidth, panelHeight := self.panel()
	fill := theme.Panel
	if self.dragging {
		fill = theme.CardActive
	}
	utils.FillRect(screen, self.positionX, self.positionY, panelWidth, panelHeight, fill)
	utils.StrokeRect(screen, self.positionX, self.positionY, panelWidth, panelHeight, 2, theme.Accent)
}

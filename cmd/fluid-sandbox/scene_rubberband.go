package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/FradSer/fluid"
	"github.com/FradSer/fluid/rubberband"
	"github.com/FradSer/fluid/spring"
	"github.com/FradSer/fluid/utils"
)

const (
	rubberCardWidth  = 280.0
	rubberCardHeight = 160.0
)

// A centered card that follows the pointer through rubberband
// damping: horizontal motion is damped everywhere, vertical motion is
// free within a configured bound and damped past it. Release springs
// the card home carrying the gesture velocity.
type rubberbandScene struct {
	drag       fluid.Drag
	home       *spring.Animator
	horizontal rubberband.Curve
	vertical   rubberband.Curve
	offsetX    float64
	offsetY    float64
	pointerX   float64
	pointerY   float64
	dragging   bool
}

func newRubberbandScene(config Config) *rubberbandScene {
	return &rubberbandScene{
		home: spring.NewAnimator(updatesPerSecond, config.Spring.Frequency, config.Spring.Damping),
		horizontal: rubberband.Power{
			Exponent: config.Rubberband.Exponent,
		},
		vertical: rubberband.Folded{
			Bound:    config.Rubberband.VerticalBound,
			Exponent: config.Rubberband.Exponent,
		},
	}
}

func (self *rubberbandScene) Title() string {
	return "rubberband: drag the card, feel the resistance"
}

func (self *rubberbandScene) card(width, height float64) rect {
	return rect{
		x:      (width-rubberCardWidth)/2.0 + self.offsetX,
		y:      (height-rubberCardHeight)/2.0 + self.offsetY,
		width:  rubberCardWidth,
		height: rubberCardHeight,
	}
}

func (self *rubberbandScene) Update(in pointer, width, height float64) {
	self.pointerX, self.pointerY = in.x, in.y
	switch {
	case in.justPressed && self.card(width, height).contains(in.x, in.y):
		self.dragging = true
		self.drag.Begin(in.x, in.y)
	case self.dragging && in.pressed:
		self.drag.Update(in.x, in.y, in.deltaSeconds)
		translationX, translationY := self.drag.Translation()
		self.offsetX = self.horizontal.Damp(translationX)
		self.offsetY = self.vertical.Damp(translationY)
	case self.dragging && in.justReleased:
		velocityX, velocityY := self.drag.End()
		self.dragging = false
		self.home.MoveTo(self.offsetX, self.offsetY)
		self.home.Seed(velocityX, velocityY)
		self.home.SetTarget(0, 0)
	case !self.dragging:
		self.offsetX, self.offsetY = self.home.Update()
	}
}

func (self *rubberbandScene) Draw(screen *ebiten.Image, theme Theme) {
	card := self.card(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))
	fill := theme.Card
	if self.dragging {
		fill = theme.CardActive
	}
	utils.FillRect(screen, card.x, card.y, card.width, card.height, fill)
	utils.StrokeRect(screen, card.x, card.y, card.width, card.height, 2, theme.Accent)
	if self.dragging {
		// pointer marker, so the damped gap between finger and card
		// is visible
		utils.FillCircle(screen, self.pointerX, self.pointerY, 5, utils.Fade(theme.Accent, 0.8))
	}
}

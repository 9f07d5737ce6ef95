package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/FradSer/fluid"
	"github.com/FradSer/fluid/pause"
	"github.com/FradSer/fluid/spring"
	"github.com/FradSer/fluid/utils"
)

const (
	pauseCardWidth  = 120.0
	pauseCardHeight = 120.0
)

// Drag the card sideways and stop mid-gesture without lifting: the
// pause detector latches and the accent ring glows. Lift-off resets
// the latch and springs the card home.
type pauseScene struct {
	drag     fluid.Drag
	detector pause.Detector
	home     *spring.Animator
	offsetX  float64
	glow     float64
	dragging bool
}

func newPauseScene(config Config) *pauseScene {
	return &pauseScene{
		detector: pause.Detector{
			WindowSize:   config.Pause.WindowSize,
			VelocityGate: config.Pause.VelocityGate,
			MinTravel:    config.Pause.MinTravel,
			DropRatio:    config.Pause.DropRatio,
		},
		home: spring.NewAnimator(updatesPerSecond, config.Spring.Frequency, config.Spring.Damping),
	}
}

func (self *pauseScene) Title() string {
	return "pause: drag sideways, then hold still"
}

func (self *pauseScene) card(width, height float64) rect {
	return rect{
		x:      (width-pauseCardWidth)/2.0 + self.offsetX,
		y:      (height - pauseCardHeight) / 2.0,
		width:  pauseCardWidth,
		height: pauseCardHeight,
	}
}

func (self *pauseScene) Update(in pointer, width, height float64) {
	switch {
	case in.justPressed && self.card(width, height).contains(in.x, in.y):
		self.dragging = true
		self.drag.Begin(in.x, in.y)
		self.detector.Reset()
	case self.dragging && in.pressed:
		self.drag.Update(in.x, in.y, in.deltaSeconds)
		velocityX, _ := self.drag.Velocity()
		translationX, _ := self.drag.Translation()
		self.detector.Track(velocityX, translationX)
		self.offsetX = translationX
	case self.dragging && in.justReleased:
		velocityX, _ := self.drag.End()
		self.dragging = false
		self.detector.Reset()
		self.home.MoveTo(self.offsetX, 0)
		self.home.Seed(velocityX, 0)
		self.home.SetTarget(0, 0)
	case !self.dragging:
		self.offsetX, _ = self.home.Update()
	}

	// ease the highlight in and out
	if self.detector.Paused() {
		self.glow += (1.0 - self.glow) * 0.2
	} else {
		self.glow *= 0.8
	}
}

func (self *pauseScene) Draw(screen *ebiten.Image, theme Theme) {
	card := self.card(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))
	fill := theme.Card
	if self.dragging {
		fill = theme.CardActive
	}
	utils.FillRect(screen, card.x, card.y, card.width, card.height, fill)
	if self.glow > 0.01 {
		ring := utils.Fade(theme.Accent, self.glow)
		utils.StrokeRect(screen, card.x-6, card.y-6, card.width+12, card.height+12, 3, ring)
	}
	if self.detector.Paused() {
		ebitenutil.DebugPrintAt(screen, "paused", int(card.x)+4, int(card.y)-20)
	}
}

// An interactive catalog of the fluid interaction patterns: drag the
// shapes around with the mouse. Keys 1-3 switch scenes.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

const updatesPerSecond = 60

// Per-tick pointer snapshot handed to the active scene.
type pointer struct {
	x, y         float64
	pressed      bool
	justPressed  bool
	justReleased bool
	deltaSeconds float64
}

type scene interface {
	Title() string
	Update(in pointer, width, height float64)
	Draw(screen *ebiten.Image, theme Theme)
}

type sandbox struct {
	config Config
	theme  Theme
	scenes []scene
	active int
}

func (self *sandbox) Update() error {
	for i := range self.scenes {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			self.active = i
		}
	}

	cursorX, cursorY := ebiten.CursorPosition()
	in := pointer{
		x:            float64(cursorX),
		y:            float64(cursorY),
		pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		deltaSeconds: 1.0 / float64(updatesPerSecond),
	}
	width := float64(self.config.Window.Width)
	height := float64(self.config.Window.Height)
	self.scenes[self.active].Update(in, width, height)
	return nil
}

func (self *sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(self.theme.Background)
	self.scenes[self.active].Draw(screen, self.theme)
	ebitenutil.DebugPrintAt(screen, self.scenes[self.active].Title(), 8, 8)
	ebitenutil.DebugPrintAt(screen, "1: rubberband  2: corner snap  3: pause", 8, self.config.Window.Height-20)
}

func (self *sandbox) Layout(outsideWidth, outsideHeight int) (int, int) {
	return self.config.Window.Width, self.config.Window.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	theme, err := config.theme()
	if err != nil {
		log.Fatal(err)
	}

	game := &sandbox{
		config: config,
		theme:  theme,
		scenes: []scene{
			newRubberbandScene(config),
			newSnapScene(config),
			newPauseScene(config),
		},
	}

	ebiten.SetTPS(updatesPerSecond)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

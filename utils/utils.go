package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fills an axis-aligned rectangle at float64 coordinates. Syntax
// sugar over [vector.DrawFilledRect] so interaction code can pass
// its native float64 geometry directly.
func FillRect(target *ebiten.Image, x, y, width, height float64, fillColor color.Color) {
	vector.DrawFilledRect(target, float32(x), float32(y), float32(width), float32(height), fillColor, true)
}

// Strokes the outline of an axis-aligned rectangle at float64
// coordinates. See also [FillRect]().
func StrokeRect(target *ebiten.Image, x, y, width, height, strokeWidth float64, strokeColor color.Color) {
	vector.StrokeRect(target, float32(x), float32(y), float32(width), float32(height), float32(strokeWidth), strokeColor, true)
}

// Fills a circle at float64 coordinates, for pointer markers and
// similar small affordances.
func FillCircle(target *ebiten.Image, centerX, centerY, radius float64, fillColor color.Color) {
	vector.DrawFilledCircle(target, float32(centerX), float32(centerY), float32(radius), fillColor, true)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}

// Scales a premultiplied color's channels by the given opacity, for
// fade-in affordances. Scaling every channel by the same factor keeps
// the premultiplied-alpha invariant, so the result goes through
// [RGBA]() and its check.
func Fade(clr color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return RGBA(
		uint8(float64(clr.R)*opacity),
		uint8(float64(clr.G)*opacity),
		uint8(float64(clr.B)*opacity),
		uint8(float64(clr.A)*opacity),
	)
}

package utils

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"black", 0, 0, 0},
		{"white", 255, 255, 255},
		{"accent", 0x88, 0xc0, 0xd0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clr := RGB(tt.r, tt.g, tt.b)
			want := color.RGBA{tt.r, tt.g, tt.b, 255}
			if clr != want {
				t.Errorf("RGB(%d, %d, %d) = %+v, want %+v", tt.r, tt.g, tt.b, clr, want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	if clr := RGBA(10, 20, 30, 40); clr != (color.RGBA{10, 20, 30, 40}) {
		t.Errorf("RGBA(10, 20, 30, 40) = %+v", clr)
	}
	// channels equal to alpha are still valid premultiplied values
	if clr := RGBA(40, 40, 40, 40); clr != (color.RGBA{40, 40, 40, 40}) {
		t.Errorf("RGBA(40, 40, 40, 40) = %+v", clr)
	}
}

func TestRGBA_PanicsOnNonPremultiplied(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for channel above alpha")
		}
	}()
	RGBA(50, 0, 0, 40)
}

func TestFade(t *testing.T) {
	base := RGB(200, 100, 50)
	tests := []struct {
		name    string
		opacity float64
		want    color.RGBA
	}{
		{"full", 1, color.RGBA{200, 100, 50, 255}},
		{"half", 0.5, color.RGBA{100, 50, 25, 127}},
		{"off", 0, color.RGBA{0, 0, 0, 0}},
		{"clamped high", 2.5, color.RGBA{200, 100, 50, 255}},
		{"clamped low", -1, color.RGBA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fade(base, tt.opacity); got != tt.want {
				t.Errorf("Fade(%+v, %g) = %+v, want %+v", base, tt.opacity, got, tt.want)
			}
		})
	}
}

func TestFade_KeepsPremultipliedInvariant(t *testing.T) {
	// any uniform scale of a valid premultiplied color must survive
	// the RGBA check, at every truncation boundary
	base := RGBA(254, 128, 3, 255)
	for opacity := 0.0; opacity <= 1.0; opacity += 0.01 {
		clr := Fade(base, opacity)
		if clr.R > clr.A || clr.G > clr.A || clr.B > clr.A {
			t.Fatalf("Fade(%+v, %g) = %+v breaks premultiplied alpha", base, opacity, clr)
		}
	}
}

package graphics

import (
	"image"
	"image/color"
	"testing"
)

func TestToRGBAConvertsAndRebases(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.NRGBA{R: 255, A: 255})
	src.Set(13, 11, color.NRGBA{B: 255, A: 255})

	dst := ToRGBA(src, 0)
	if dst.Rect != image.Rect(0, 0, 4, 2) {
		t.Fatalf("Expected rect 4x2 at origin, got %v", dst.Rect)
	}
	if c := dst.RGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("Expected red at 0,0, got %v", c)
	}
	if c := dst.RGBAAt(3, 1); c.B != 255 || c.A != 255 {
		t.Errorf("Expected blue at 3,1, got %v", c)
	}
}

func TestToRGBADownsamples(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2048, 1024))
	dst := ToRGBA(src, 512)
	if dst.Rect.Dx() != 512 || dst.Rect.Dy() != 256 {
		t.Errorf("Expected 512x256, got %v", dst.Rect.Size())
	}

	tall := ToRGBA(image.NewRGBA(image.Rect(0, 0, 100, 400)), 200)
	if tall.Rect.Dx() != 50 || tall.Rect.Dy() != 200 {
		t.Errorf("Expected 50x200, got %v", tall.Rect.Size())
	}

	small := ToRGBA(image.NewRGBA(image.Rect(0, 0, 64, 32)), 512)
	if small.Rect.Dx() != 64 || small.Rect.Dy() != 32 {
		t.Errorf("Expected small image untouched, got %v", small.Rect.Size())
	}
}

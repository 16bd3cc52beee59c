package graphics

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA converts img to tightly packed RGBA with its origin at (0,0). If
// maxSize is positive and either side exceeds it, the image is scaled down to
// fit while keeping its aspect ratio.
func ToRGBA(img image.Image, maxSize int) *image.RGBA {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	scaled := false
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
		scaled = true
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if scaled {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	}
	return dst
}

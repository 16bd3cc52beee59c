package renderer

import (
	"image"

	"globe/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides the per-frame inputs of a renderable.
type RenderContext struct {
	Frame  uint64
	Camera *graphics.Camera
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// ImageSource delivers decoded texture data at most once. Poll must not block.
type ImageSource interface {
	Poll() (*image.RGBA, bool)
}

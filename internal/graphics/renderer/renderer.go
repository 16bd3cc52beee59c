package renderer

import (
	"globe/internal/graphics"
	"globe/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var clearColor = mgl32.Vec4{0, 0, 0, 1}

const clearDepth = 1.0

// Renderer is the frame driver: it owns the frame counter and produces one
// frame per call to RenderNextFrame.
type Renderer struct {
	dev        graphics.Device
	renderable Renderable
	camera     *graphics.Camera

	frame uint64
}

// NewRenderer initializes the renderable. An error means setup failed and no
// frame may be rendered.
func NewRenderer(dev graphics.Device, camera *graphics.Camera, r Renderable) (*Renderer, error) {
	if err := r.Init(); err != nil {
		return nil, err
	}
	return &Renderer{
		dev:        dev,
		renderable: r,
		camera:     camera,
	}, nil
}

// RenderNextFrame advances the frame counter and draws it.
func (r *Renderer) RenderNextFrame() {
	r.frame++
	r.Draw(r.frame)
}

// Frame returns the number of frames rendered so far.
func (r *Renderer) Frame() uint64 {
	return r.frame
}

// Draw renders the given frame without touching the counter.
func (r *Renderer) Draw(frame uint64) {
	defer profiling.Track("renderer.Draw")()

	r.dev.Clear(clearColor, clearDepth)

	ctx := RenderContext{
		Frame:  frame,
		Camera: r.camera,
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}
	r.renderable.Render(ctx)

	func() {
		defer profiling.Track("renderer.Flush")()
		r.dev.Flush()
	}()
}

// Dispose releases the renderable's resources.
func (r *Renderer) Dispose() {
	r.renderable.Dispose()
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the drawable area and the camera's aspect ratio.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.dev.Viewport(width, height)
	r.camera.SetViewport(width, height)
	r.renderable.SetViewport(width, height)
}

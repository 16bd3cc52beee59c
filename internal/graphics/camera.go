package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed perspective camera looking down -Z at the origin from
// Distance units away.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Distance    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         30.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Distance:    6.0,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Distance)
}

// SetViewport updates the aspect ratio; zero sizes (minimized window) are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

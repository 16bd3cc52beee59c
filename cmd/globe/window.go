package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(width, height int, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	// Disable V-Sync; the tick limiter paces frames
	glfw.SwapInterval(0)

	return window, nil
}

// windowHost adapts a GLFW window to app.Host.
type windowHost struct {
	window *glfw.Window
}

func (h windowHost) ShouldClose() bool {
	return h.window.ShouldClose()
}

func (h windowHost) Present() {
	h.window.SwapBuffers()
	glfw.PollEvents()
}

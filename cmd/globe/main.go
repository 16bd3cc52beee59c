package main

import (
	"flag"
	"log"
	"runtime"

	"globe/assets"
	"globe/internal/app"
	"globe/internal/config"
	"globe/internal/geometry"
	"globe/internal/graphics"
	"globe/internal/graphics/gldevice"
	"globe/internal/graphics/renderer"
	"globe/internal/imageload"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	flag.Parse()

	// closer exits the process once main returns or on SIGINT/SIGTERM
	defer closer.Close()
	closer.Bind(func() {
		log.Println("globe: exiting")
	})

	settings, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	config.SetCurrent(settings)

	if err := glfw.Init(); err != nil {
		closer.Fatalln("could not initialize GLFW:", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(settings.Window.Width, settings.Window.Height, settings.Window.Title)
	if err != nil {
		closer.Fatalln("no OpenGL 4.1 context available:", err)
	}
	defer window.Destroy()
	log.Printf("OpenGL %s, GLSL %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	vertexSrc, fragmentSrc, err := shaderSources(settings.Shaders)
	if err != nil {
		closer.Fatalln(err)
	}

	// The texture decodes in the background; the globe picks it up when ready
	images := imageload.NewLoader(settings.Texture.MaxSize)
	images.Load(settings.Texture.Path)

	dev := gldevice.New()
	defer dev.Dispose()

	mesh := geometry.NewSphere(settings.Globe.Stacks, settings.Globe.Slices)
	globe := renderer.NewGlobe(dev, mesh, vertexSrc, fragmentSrc, images)
	camera := graphics.NewCamera(settings.Window.Width, settings.Window.Height)

	r, err := renderer.NewRenderer(dev, camera, globe)
	if err != nil {
		closer.Fatalln("setup failed:", err)
	}
	defer r.Dispose()
	log.Printf("globe ready: %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())

	fbWidth, fbHeight := window.GetFramebufferSize()
	r.UpdateViewport(fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	limiter := app.NewTickLimiter(config.GetTickRate)
	app.New(windowHost{window: window}, r, limiter).Run()
}

// shaderSources returns the configured shader files, or the embedded ones
// when none are configured.
func shaderSources(s config.ShaderSettings) (string, string, error) {
	if s.Vertex == "" {
		return assets.GlobeVertexShader, assets.GlobeFragmentShader, nil
	}
	return graphics.ReadShaderSources(s.Vertex, s.Fragment)
}

package renderer

import (
	"fmt"
	"log"

	"globe/internal/geometry"
	"globe/internal/graphics"
	"globe/internal/profiling"
)

var globeSampler = graphics.SamplerState{
	MagFilter: graphics.FilterLinear,
	MinFilter: graphics.FilterLinearMipmapLinear,
	WrapS:     graphics.WrapClampToEdge,
	WrapT:     graphics.WrapClampToEdge,
}

// Globe renders the textured, rotating sphere.
type Globe struct {
	dev            graphics.Device
	mesh           *geometry.Mesh
	vertexSource   string
	fragmentSource string
	images         ImageSource

	resources *graphics.Resources
	program   *graphics.Program
}

// NewGlobe creates the globe renderable. images may be nil, in which case the
// texture stays empty.
func NewGlobe(dev graphics.Device, mesh *geometry.Mesh, vertexSrc, fragmentSrc string, images ImageSource) *Globe {
	return &Globe{
		dev:            dev,
		mesh:           mesh,
		vertexSource:   vertexSrc,
		fragmentSource: fragmentSrc,
		images:         images,
	}
}

// Init uploads the mesh, creates the texture object and builds the program.
func (g *Globe) Init() error {
	var err error
	g.resources, err = graphics.NewSphereResources(g.dev, g.mesh)
	if err != nil {
		return fmt.Errorf("globe resources: %w", err)
	}

	g.program, err = graphics.BuildProgram(g.dev, g.vertexSource, g.fragmentSource)
	if err != nil {
		g.resources.Release()
		g.resources = nil
		return fmt.Errorf("globe program: %w", err)
	}
	return nil
}

// Render draws one frame of the globe.
func (g *Globe) Render(ctx RenderContext) {
	defer profiling.Track("renderer.renderGlobe")()

	g.applyPendingImage()

	g.dev.EnableDepthTest()
	g.program.Use()

	t := graphics.ComputeTransforms(ctx.Frame, ctx.View, ctx.Proj)
	u := g.program.Uniforms
	if u.Resolved(graphics.UniformMVP) {
		g.dev.UniformMatrix4(u[graphics.UniformMVP], t.MVP)
	}
	if u.Resolved(graphics.UniformNormal) {
		g.dev.UniformMatrix4(u[graphics.UniformNormal], t.Normal)
	}
	if u.Resolved(graphics.UniformLight) {
		g.dev.UniformVec4(u[graphics.UniformLight], graphics.LightDirection)
	}

	for _, s := range g.resources.Streams {
		g.dev.BindVertexAttrib(s.Slot, s.Buffer, s.Size)
	}
	g.dev.BindIndexBuffer(g.resources.Indices)
	g.dev.BindTexture(g.resources.Texture, globeSampler)

	g.dev.DrawIndexedTriangles(g.resources.IndexCount)
}

// applyPendingImage uploads the loaded image once it has arrived.
func (g *Globe) applyPendingImage() {
	if g.images == nil || g.resources.TextureState() == graphics.TextureLoaded {
		return
	}
	img, ok := g.images.Poll()
	if !ok {
		return
	}
	if g.resources.UploadTexture(img) {
		log.Printf("globe texture loaded (%dx%d)", img.Rect.Dx(), img.Rect.Dy())
	}
}

// TextureState reports whether the globe texture has image data yet.
func (g *Globe) TextureState() graphics.TextureState {
	if g.resources == nil {
		return graphics.TextureEmpty
	}
	return g.resources.TextureState()
}

// Dispose releases the program and GPU buffers.
func (g *Globe) Dispose() {
	if g.program != nil {
		g.program.Delete()
		g.program = nil
	}
	if g.resources != nil {
		g.resources.Release()
		g.resources = nil
	}
}

func (g *Globe) SetViewport(width, height int) {}

package graphics

import (
	"errors"
	"fmt"
	"image"

	"globe/internal/geometry"
)

// ErrResource reports that the device could not allocate a buffer or texture.
var ErrResource = errors.New("gpu resource allocation failed")

// Vertex attribute slots. The program builder binds the attribute names to
// these slots and the frame driver binds buffers in the same order.
const (
	AttribPosition uint32 = iota
	AttribNormal
	AttribUV
)

// VertexStream is one static vertex buffer and its component count per vertex.
type VertexStream struct {
	Slot   uint32
	Buffer Buffer
	Size   int32
}

// TextureState tracks whether image data has reached the texture object.
type TextureState int

const (
	TextureEmpty TextureState = iota
	TextureLoaded
)

func (s TextureState) String() string {
	if s == TextureLoaded {
		return "loaded"
	}
	return "empty"
}

// Resources owns the GPU buffers and texture of the globe.
type Resources struct {
	dev Device

	Streams    [3]VertexStream
	Indices    Buffer
	IndexCount int32
	Texture    Texture

	textureState TextureState
}

// NewSphereResources uploads the mesh into three static vertex buffers
// (position, normal, uv) and one 16-bit index buffer, and creates an empty
// texture object. Any zero handle aborts setup and releases what was created.
func NewSphereResources(dev Device, mesh *geometry.Mesh) (*Resources, error) {
	r := &Resources{dev: dev}

	streams := []struct {
		slot uint32
		size int32
		data []float32
	}{
		{AttribPosition, 3, mesh.PositionData()},
		{AttribNormal, 3, mesh.NormalData()},
		{AttribUV, 2, mesh.UVData()},
	}
	for i, s := range streams {
		buf := dev.CreateBuffer()
		if buf == 0 {
			r.Release()
			return nil, fmt.Errorf("vertex buffer %d: %w", s.slot, ErrResource)
		}
		dev.UploadVertexData(buf, s.data)
		r.Streams[i] = VertexStream{Slot: s.slot, Buffer: buf, Size: s.size}
	}

	r.Indices = dev.CreateBuffer()
	if r.Indices == 0 {
		r.Release()
		return nil, fmt.Errorf("index buffer: %w", ErrResource)
	}
	dev.UploadIndexData(r.Indices, mesh.Indices)
	r.IndexCount = int32(len(mesh.Indices))

	r.Texture = dev.CreateTexture()
	if r.Texture == 0 {
		r.Release()
		return nil, fmt.Errorf("texture: %w", ErrResource)
	}

	return r, nil
}

// TextureState reports whether UploadTexture has run.
func (r *Resources) TextureState() TextureState {
	return r.textureState
}

// UploadTexture fills the texture object with img and generates its mipmap
// chain. Later calls are ignored; the texture is written once.
func (r *Resources) UploadTexture(img *image.RGBA) bool {
	if r.textureState == TextureLoaded || img == nil {
		return false
	}
	r.dev.UploadTexture(r.Texture, img)
	r.textureState = TextureLoaded
	return true
}

// Release deletes every handle that was created.
func (r *Resources) Release() {
	for i := range r.Streams {
		if r.Streams[i].Buffer != 0 {
			r.dev.DeleteBuffer(r.Streams[i].Buffer)
			r.Streams[i].Buffer = 0
		}
	}
	if r.Indices != 0 {
		r.dev.DeleteBuffer(r.Indices)
		r.Indices = 0
	}
	if r.Texture != 0 {
		r.dev.DeleteTexture(r.Texture)
		r.Texture = 0
	}
}

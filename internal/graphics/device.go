package graphics

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Buffer, Texture, Shader and ProgramID are opaque GPU handles. Zero is never
// a valid handle.
type (
	Buffer    uint32
	Texture   uint32
	Shader    uint32
	ProgramID uint32
)

// ShaderStage selects the kind of shader object to create.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Filter and Wrap mirror the texture sampling modes used by the globe.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterLinearMipmapLinear
)

type Wrap int

const (
	WrapClampToEdge Wrap = iota
	WrapRepeat
)

// SamplerState is applied to a texture right before drawing with it.
type SamplerState struct {
	MagFilter Filter
	MinFilter Filter
	WrapS     Wrap
	WrapT     Wrap
}

// Device is the subset of the GPU API the globe needs. Every call that acts on
// a resource takes its handle explicitly; implementations bind and unbind
// internally so no bind state leaks between calls.
type Device interface {
	// Resources
	CreateBuffer() Buffer
	UploadVertexData(buf Buffer, data []float32)
	UploadIndexData(buf Buffer, data []uint16)
	DeleteBuffer(buf Buffer)
	CreateTexture() Texture
	UploadTexture(tex Texture, img *image.RGBA)
	DeleteTexture(tex Texture)

	// Shaders
	CreateShader(stage ShaderStage) Shader
	CompileShader(sh Shader, source string) (ok bool, infoLog string)
	DeleteShader(sh Shader)
	CreateProgram() ProgramID
	AttachShader(p ProgramID, sh Shader)
	DetachShader(p ProgramID, sh Shader)
	BindAttribLocation(p ProgramID, slot uint32, name string)
	LinkProgram(p ProgramID) (ok bool, infoLog string)
	UniformLocation(p ProgramID, name string) int32
	DeleteProgram(p ProgramID)

	// Per-frame state
	Viewport(width, height int)
	Clear(color mgl32.Vec4, depth float64)
	EnableDepthTest()
	UseProgram(p ProgramID)
	UniformMatrix4(loc int32, m mgl32.Mat4)
	UniformVec4(loc int32, v mgl32.Vec4)
	BindVertexAttrib(slot uint32, buf Buffer, size int32)
	BindIndexBuffer(buf Buffer)
	BindTexture(tex Texture, sampler SamplerState)
	DrawIndexedTriangles(count int32)
	Flush()
}

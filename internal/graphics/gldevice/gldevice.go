// Package gldevice implements graphics.Device on OpenGL 4.1 core.
package gldevice

import (
	"image"
	"strings"

	"globe/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device implements graphics.Device on an OpenGL 4.1 core context. It must
// be created and used on the thread owning the current context.
type Device struct {
	vao uint32
}

// New creates the single vertex array object the core profile requires
// for attribute bindings and keeps it bound for the device's lifetime.
func New() *Device {
	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d
}

// Dispose releases the vertex array object.
func (d *Device) Dispose() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Device) CreateBuffer() graphics.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return graphics.Buffer(b)
}

func (d *Device) UploadVertexData(buf graphics.Buffer, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// UploadIndexData leaves the element buffer unbound again. The binding is part
// of the VAO, so it is restored to zero to keep setup free of side effects.
func (d *Device) UploadIndexData(buf graphics.Buffer, data []uint16) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buf))
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (d *Device) DeleteBuffer(buf graphics.Buffer) {
	b := uint32(buf)
	gl.DeleteBuffers(1, &b)
}

func (d *Device) CreateTexture() graphics.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return graphics.Texture(t)
}

func (d *Device) UploadTexture(tex graphics.Texture, img *image.RGBA) {
	size := img.Rect.Size()
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (d *Device) DeleteTexture(tex graphics.Texture) {
	t := uint32(tex)
	gl.DeleteTextures(1, &t)
}

func (d *Device) CreateShader(stage graphics.ShaderStage) graphics.Shader {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == graphics.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	return graphics.Shader(gl.CreateShader(kind))
}

func (d *Device) CompileShader(sh graphics.Shader, source string) (bool, string) {
	id := uint32(sh)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		return false, strings.TrimRight(log, "\x00")
	}
	return true, ""
}

func (d *Device) DeleteShader(sh graphics.Shader) { gl.DeleteShader(uint32(sh)) }

func (d *Device) CreateProgram() graphics.ProgramID { return graphics.ProgramID(gl.CreateProgram()) }

func (d *Device) AttachShader(p graphics.ProgramID, sh graphics.Shader) { gl.AttachShader(uint32(p), uint32(sh)) }

func (d *Device) DetachShader(p graphics.ProgramID, sh graphics.Shader) { gl.DetachShader(uint32(p), uint32(sh)) }

func (d *Device) BindAttribLocation(p graphics.ProgramID, slot uint32, name string) {
	gl.BindAttribLocation(uint32(p), slot, gl.Str(name+"\x00"))
}

func (d *Device) LinkProgram(p graphics.ProgramID) (bool, string) {
	id := uint32(p)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		return false, strings.TrimRight(log, "\x00")
	}
	return true, ""
}

func (d *Device) UniformLocation(p graphics.ProgramID, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *Device) DeleteProgram(p graphics.ProgramID) { gl.DeleteProgram(uint32(p)) }

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Clear(color mgl32.Vec4, depth float64) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.ClearDepth(depth)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) EnableDepthTest() { gl.Enable(gl.DEPTH_TEST) }

func (d *Device) UseProgram(p graphics.ProgramID) { gl.UseProgram(uint32(p)) }

func (d *Device) UniformMatrix4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Device) UniformVec4(loc int32, v mgl32.Vec4) {
	gl.Uniform4fv(loc, 1, &v[0])
}

func (d *Device) BindVertexAttrib(slot uint32, buf graphics.Buffer, size int32) {
	gl.EnableVertexAttribArray(slot)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.VertexAttribPointerWithOffset(slot, size, gl.FLOAT, false, 0, 0)
}

func (d *Device) BindIndexBuffer(buf graphics.Buffer) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buf))
}

func (d *Device) BindTexture(tex graphics.Texture, s graphics.SamplerState) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(s.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(s.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(s.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(s.WrapT))
}

func (d *Device) DrawIndexedTriangles(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, 0)
}

func (d *Device) Flush() { gl.Flush() }

func glFilter(f graphics.Filter) int32 {
	switch f {
	case graphics.FilterLinear:
		return gl.LINEAR
	case graphics.FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.NEAREST
}

func glWrap(w graphics.Wrap) int32 {
	if w == graphics.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

var _ graphics.Device = (*Device)(nil)

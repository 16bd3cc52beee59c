// Package graphicstest provides a recording graphics.Device for tests that
// run without a GPU context.
package graphicstest

import (
	"fmt"
	"image"
	"strings"

	"globe/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(parts, ",") + ")"
}

// Device records every call and hands out increasing handles. The exported
// fields let tests inject failures.
type Device struct {
	Calls []Call

	// FailBufferAfter makes CreateBuffer return 0 once this many buffers exist (0 = never).
	FailBufferAfter int

	FailTexture bool

	// FailShader makes CreateShader return 0 for the listed stages.
	FailShader map[graphics.ShaderStage]bool

	FailProgram bool

	// CompileErrors maps a source substring to the log returned on failure.
	CompileErrors map[string]string

	LinkError string

	// MissingUniforms resolve to -1.
	MissingUniforms map[string]bool

	next     uint32
	buffers  int
	sources  map[graphics.Shader]string
	Live     map[string]int
	Uploads  map[graphics.Buffer]int
	Textures map[graphics.Texture]*image.RGBA
}

func NewDevice() *Device {
	return &Device{
		sources:  make(map[graphics.Shader]string),
		Live:     make(map[string]int),
		Uploads:  make(map[graphics.Buffer]int),
		Textures: make(map[graphics.Texture]*image.RGBA),
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// Names returns the recorded call names in order.
func (d *Device) Names() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Name
	}
	return out
}

// Find returns the recorded calls with the given name.
func (d *Device) Find(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops the call log but keeps resource state.
func (d *Device) Reset() {
	d.Calls = nil
}

func (d *Device) CreateBuffer() graphics.Buffer {
	if d.FailBufferAfter > 0 && d.buffers >= d.FailBufferAfter {
		d.record("CreateBuffer", 0)
		return 0
	}
	d.buffers++
	b := graphics.Buffer(d.handle())
	d.Live["buffer"]++
	d.record("CreateBuffer", b)
	return b
}

func (d *Device) UploadVertexData(buf graphics.Buffer, data []float32) {
	d.Uploads[buf] = len(data)
	d.record("UploadVertexData", buf, len(data))
}

func (d *Device) UploadIndexData(buf graphics.Buffer, data []uint16) {
	d.Uploads[buf] = len(data)
	d.record("UploadIndexData", buf, len(data))
}

func (d *Device) DeleteBuffer(buf graphics.Buffer) {
	d.Live["buffer"]--
	d.record("DeleteBuffer", buf)
}

func (d *Device) CreateTexture() graphics.Texture {
	if d.FailTexture {
		d.record("CreateTexture", 0)
		return 0
	}
	t := graphics.Texture(d.handle())
	d.Live["texture"]++
	d.record("CreateTexture", t)
	return t
}

func (d *Device) UploadTexture(tex graphics.Texture, img *image.RGBA) {
	d.Textures[tex] = img
	d.record("UploadTexture", tex, img.Rect.Dx(), img.Rect.Dy())
}

func (d *Device) DeleteTexture(tex graphics.Texture) {
	d.Live["texture"]--
	d.record("DeleteTexture", tex)
}

func (d *Device) CreateShader(stage graphics.ShaderStage) graphics.Shader {
	if d.FailShader[stage] {
		d.record("CreateShader", stage, 0)
		return 0
	}
	sh := graphics.Shader(d.handle())
	d.Live["shader"]++
	d.record("CreateShader", stage)
	return sh
}

func (d *Device) CompileShader(sh graphics.Shader, source string) (bool, string) {
	d.sources[sh] = source
	d.record("CompileShader", sh)
	for marker, log := range d.CompileErrors {
		if strings.Contains(source, marker) {
			return false, log
		}
	}
	return true, ""
}

func (d *Device) DeleteShader(sh graphics.Shader) {
	d.Live["shader"]--
	d.record("DeleteShader", sh)
}

func (d *Device) CreateProgram() graphics.ProgramID {
	if d.FailProgram {
		d.record("CreateProgram", 0)
		return 0
	}
	p := graphics.ProgramID(d.handle())
	d.Live["program"]++
	d.record("CreateProgram", p)
	return p
}

func (d *Device) AttachShader(p graphics.ProgramID, sh graphics.Shader) {
	d.record("AttachShader", p, sh)
}

func (d *Device) DetachShader(p graphics.ProgramID, sh graphics.Shader) {
	d.record("DetachShader", p, sh)
}

func (d *Device) BindAttribLocation(p graphics.ProgramID, slot uint32, name string) {
	d.record("BindAttribLocation", p, slot, name)
}

func (d *Device) LinkProgram(p graphics.ProgramID) (bool, string) {
	d.record("LinkProgram", p)
	if d.LinkError != "" {
		return false, d.LinkError
	}
	return true, ""
}

func (d *Device) UniformLocation(p graphics.ProgramID, name string) int32 {
	d.record("UniformLocation", p, name)
	if d.MissingUniforms[name] {
		return -1
	}
	switch name {
	case "mvpMatrix":
		return 0
	case "normalMatrix":
		return 1
	case "lightVec":
		return 2
	}
	return -1
}

func (d *Device) DeleteProgram(p graphics.ProgramID) {
	d.Live["program"]--
	d.record("DeleteProgram", p)
}

func (d *Device) Viewport(width, height int) { d.record("Viewport", width, height) }

func (d *Device) Clear(color mgl32.Vec4, depth float64) { d.record("Clear", color, depth) }

func (d *Device) EnableDepthTest() { d.record("EnableDepthTest") }

func (d *Device) UseProgram(p graphics.ProgramID) { d.record("UseProgram", p) }

func (d *Device) UniformMatrix4(loc int32, m mgl32.Mat4) { d.record("UniformMatrix4", loc, m) }

func (d *Device) UniformVec4(loc int32, v mgl32.Vec4) { d.record("UniformVec4", loc, v) }

func (d *Device) BindVertexAttrib(slot uint32, buf graphics.Buffer, size int32) {
	d.record("BindVertexAttrib", slot, buf, size)
}

func (d *Device) BindIndexBuffer(buf graphics.Buffer) { d.record("BindIndexBuffer", buf) }

func (d *Device) BindTexture(tex graphics.Texture, s graphics.SamplerState) {
	d.record("BindTexture", tex, s)
}

func (d *Device) DrawIndexedTriangles(count int32) { d.record("DrawIndexedTriangles", count) }

func (d *Device) Flush() { d.record("Flush") }

var _ graphics.Device = (*Device)(nil)

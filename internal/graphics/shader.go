package graphics

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("program link failed")
	ErrState   = errors.New("program builder used out of order")
)

// ShaderError carries the driver's diagnostic log for a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
	err   error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.err, e.Log)
}

func (e *ShaderError) Unwrap() error { return e.err }

// ProgramState is the builder's position in Uncompiled → Compiled → Attached → Linked.
type ProgramState int

const (
	StateUncompiled ProgramState = iota
	StateCompiled
	StateAttached
	StateLinked
	StateFailed
)

func (s ProgramState) String() string {
	switch s {
	case StateUncompiled:
		return "uncompiled"
	case StateCompiled:
		return "compiled"
	case StateAttached:
		return "attached"
	case StateLinked:
		return "linked"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Uniform names resolved after linking, in table order.
const (
	UniformMVP = iota
	UniformNormal
	UniformLight
	uniformCount
)

var uniformNames = [uniformCount]string{"mvpMatrix", "normalMatrix", "lightVec"}

var attribNames = [...]struct {
	slot uint32
	name string
}{
	{AttribPosition, "position"},
	{AttribNormal, "normal"},
	{AttribUV, "uv"},
}

// UniformTable maps the fixed uniform set to locations. -1 means unresolved.
type UniformTable [uniformCount]int32

// Resolved reports whether the uniform at index i has a location.
func (t UniformTable) Resolved(i int) bool { return t[i] >= 0 }

// Program is a linked shader program with its cached uniform locations.
type Program struct {
	ID       ProgramID
	Uniforms UniformTable
	dev      Device
}

// Use selects the program for subsequent draws.
func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// ProgramBuilder drives one program through compile, attach and link.
type ProgramBuilder struct {
	dev      Device
	vertex   string
	fragment string

	state   ProgramState
	shaders [2]Shader
	program ProgramID
}

func NewProgramBuilder(dev Device, vertexSrc, fragmentSrc string) *ProgramBuilder {
	return &ProgramBuilder{dev: dev, vertex: vertexSrc, fragment: fragmentSrc}
}

func (b *ProgramBuilder) State() ProgramState { return b.state }

// Compile compiles both shader stages.
func (b *ProgramBuilder) Compile() error {
	if b.state != StateUncompiled {
		return fmt.Errorf("compile in state %s: %w", b.state, ErrState)
	}
	for i, stage := range []ShaderStage{VertexStage, FragmentStage} {
		src := b.vertex
		if stage == FragmentStage {
			src = b.fragment
		}
		sh := b.dev.CreateShader(stage)
		if sh == 0 {
			b.fail()
			return fmt.Errorf("%s shader: %w", stage, ErrResource)
		}
		b.shaders[i] = sh
		if ok, infoLog := b.dev.CompileShader(sh, src); !ok {
			b.fail()
			return &ShaderError{Stage: stage.String(), Log: diagnostic(infoLog), err: ErrCompile}
		}
	}
	b.state = StateCompiled
	return nil
}

// Attach creates the program, attaches both shaders and binds the vertex
// attribute names to their fixed slots.
func (b *ProgramBuilder) Attach() error {
	if b.state != StateCompiled {
		return fmt.Errorf("attach in state %s: %w", b.state, ErrState)
	}
	b.program = b.dev.CreateProgram()
	if b.program == 0 {
		b.fail()
		return fmt.Errorf("program: %w", ErrResource)
	}
	for _, sh := range b.shaders {
		b.dev.AttachShader(b.program, sh)
	}
	for _, a := range attribNames {
		b.dev.BindAttribLocation(b.program, a.slot, a.name)
	}
	b.state = StateAttached
	return nil
}

// Link links the program, drops the shader objects and resolves uniforms.
func (b *ProgramBuilder) Link() (*Program, error) {
	if b.state != StateAttached {
		return nil, fmt.Errorf("link in state %s: %w", b.state, ErrState)
	}
	if ok, infoLog := b.dev.LinkProgram(b.program); !ok {
		b.fail()
		return nil, &ShaderError{Stage: "link", Log: diagnostic(infoLog), err: ErrLink}
	}
	for _, sh := range b.shaders {
		b.dev.DetachShader(b.program, sh)
		b.dev.DeleteShader(sh)
	}
	b.shaders = [2]Shader{}

	p := &Program{ID: b.program, dev: b.dev}
	for i, name := range uniformNames {
		p.Uniforms[i] = b.dev.UniformLocation(p.ID, name)
		if p.Uniforms[i] < 0 {
			log.Printf("uniform %q not active in program %d; it will not be set", name, p.ID)
		}
	}
	b.state = StateLinked
	return p, nil
}

// fail deletes everything created so far and parks the builder in StateFailed.
func (b *ProgramBuilder) fail() {
	for i, sh := range b.shaders {
		if sh != 0 {
			b.dev.DeleteShader(sh)
			b.shaders[i] = 0
		}
	}
	if b.program != 0 {
		b.dev.DeleteProgram(b.program)
		b.program = 0
	}
	b.state = StateFailed
}

// BuildProgram compiles, attaches and links the given sources.
func BuildProgram(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	b := NewProgramBuilder(dev, vertexSrc, fragmentSrc)
	if err := b.Compile(); err != nil {
		return nil, err
	}
	if err := b.Attach(); err != nil {
		return nil, err
	}
	return b.Link()
}

// ReadShaderSources reads a vertex and fragment shader from disk.
func ReadShaderSources(vertexPath, fragmentPath string) (string, string, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return string(vertexSource), string(fragmentSource), nil
}

// Some drivers report failure with an empty log.
func diagnostic(infoLog string) string {
	if infoLog == "" {
		return "no diagnostic reported by driver"
	}
	return infoLog
}

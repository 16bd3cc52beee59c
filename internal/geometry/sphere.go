package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default tessellation of the globe.
const (
	DefaultStacks = 8
	DefaultSlices = 16
)

// Mesh is a unit sphere tessellated into latitude stacks and longitude slices.
// Positions double as normals since the sphere is centered at the origin.
type Mesh struct {
	Stacks    int
	Slices    int
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint16
}

// NewSphere builds a sphere mesh with (stacks+1)*(slices+1) vertices, including
// duplicated seam vertices at u=0 and u=1, and stacks*slices*6 indices.
// It panics if the tessellation is empty or cannot be addressed with 16-bit indices.
func NewSphere(stacks, slices int) *Mesh {
	if stacks <= 0 || slices <= 0 {
		panic(fmt.Sprintf("geometry: invalid tessellation %dx%d", stacks, slices))
	}
	vertexCount := (stacks + 1) * (slices + 1)
	if vertexCount > math.MaxUint16+1 {
		panic(fmt.Sprintf("geometry: %d vertices exceed 16-bit index range", vertexCount))
	}

	m := &Mesh{
		Stacks:    stacks,
		Slices:    slices,
		Positions: make([]mgl32.Vec3, 0, vertexCount),
		UVs:       make([]mgl32.Vec2, 0, vertexCount),
		Indices:   make([]uint16, 0, stacks*slices*6),
	}

	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		y := math.Cos(math.Pi * v)
		r := math.Sin(math.Pi * v)
		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			x := math.Cos(2*math.Pi*u) * r
			z := math.Sin(2*math.Pi*u) * r
			m.Positions = append(m.Positions, mgl32.Vec3{float32(x), float32(y), float32(z)})
			m.UVs = append(m.UVs, mgl32.Vec2{float32(u), float32(v)})
		}
	}

	width := slices + 1
	for row := 0; row < stacks; row++ {
		base := row * width
		for col := 0; col < slices; col++ {
			a := uint16(base + col)
			b := uint16(base + col + 1)
			c := uint16(base + col + width)
			d := uint16(base + col + width + 1)
			m.Indices = append(m.Indices, a, b, c, c, b, d)
		}
	}

	return m
}

// NewDefaultSphere builds the 8x16 globe mesh.
func NewDefaultSphere() *Mesh {
	return NewSphere(DefaultStacks, DefaultSlices)
}

func (m *Mesh) VertexCount() int { return len(m.Positions) }
func (m *Mesh) IndexCount() int { return len(m.Indices) }
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// PositionData flattens positions with a stride of 3.
func (m *Mesh) PositionData() []float32 {
	out := make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// NormalData returns the per-vertex normals, stride 3. On a unit sphere they
// equal the positions, but the slice is a separate copy.
func (m *Mesh) NormalData() []float32 {
	return m.PositionData()
}

// UVData flattens texture coordinates with a stride of 2.
func (m *Mesh) UVData() []float32 {
	out := make([]float32, 0, len(m.UVs)*2)
	for _, uv := range m.UVs {
		out = append(out, uv[0], uv[1])
	}
	return out
}

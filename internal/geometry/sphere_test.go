package geometry

import (
	"math"
	"testing"
)

func TestDefaultSphereCounts(t *testing.T) {
	m := NewDefaultSphere()
	if n := m.VertexCount(); n != 153 {
		t.Errorf("Expected 153 vertices, got %d", n)
	}
	if n := m.IndexCount(); n != 768 {
		t.Errorf("Expected 768 indices, got %d", n)
	}
	if n := m.TriangleCount(); n != 256 {
		t.Errorf("Expected 256 triangles, got %d", n)
	}
}

func TestSphereCountsForTessellations(t *testing.T) {
	cases := [][2]int{{1, 1}, {2, 3}, {8, 16}, {16, 32}, {64, 64}}
	for _, c := range cases {
		stacks, slices := c[0], c[1]
		m := NewSphere(stacks, slices)
		wantVerts := (stacks + 1) * (slices + 1)
		if m.VertexCount() != wantVerts {
			t.Errorf("%dx%d: expected %d vertices, got %d", stacks, slices, wantVerts, m.VertexCount())
		}
		if len(m.UVs) != wantVerts {
			t.Errorf("%dx%d: expected %d uvs, got %d", stacks, slices, wantVerts, len(m.UVs))
		}
		if m.IndexCount() != stacks*slices*6 {
			t.Errorf("%dx%d: expected %d indices, got %d", stacks, slices, stacks*slices*6, m.IndexCount())
		}
		for i, idx := range m.Indices {
			if int(idx) >= wantVerts {
				t.Fatalf("%dx%d: index %d = %d out of range", stacks, slices, i, idx)
			}
		}
	}
}

func TestSpherePositionsOnUnitSphere(t *testing.T) {
	m := NewSphere(8, 16)
	for i, p := range m.Positions {
		d := math.Sqrt(float64(p[0])*float64(p[0]) + float64(p[1])*float64(p[1]) + float64(p[2])*float64(p[2]))
		if math.Abs(d-1) > 1e-6 {
			t.Errorf("vertex %d at distance %f from origin", i, d)
		}
	}
}

func TestSphereUVsInRange(t *testing.T) {
	m := NewSphere(8, 16)
	for i, uv := range m.UVs {
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Errorf("uv %d out of range: %v", i, uv)
		}
	}
}

func TestSpherePolesAndSeam(t *testing.T) {
	m := NewSphere(8, 16)
	// first row is the north pole, last row the south pole
	if y := m.Positions[0][1]; y != 1 {
		t.Errorf("Expected north pole y=1, got %f", y)
	}
	if y := m.Positions[m.VertexCount()-1][1]; y != -1 {
		t.Errorf("Expected south pole y=-1, got %f", y)
	}
	// u=0 and u=1 duplicate the same position with different uvs
	row := 4 * 17
	first, last := m.Positions[row], m.Positions[row+16]
	for k := 0; k < 3; k++ {
		if math.Abs(float64(first[k]-last[k])) > 1e-6 {
			t.Errorf("seam vertices differ: %v vs %v", first, last)
		}
	}
	if m.UVs[row][0] != 0 || m.UVs[row+16][0] != 1 {
		t.Errorf("Expected seam uvs 0 and 1, got %v and %v", m.UVs[row], m.UVs[row+16])
	}
}

func TestSphereFirstQuadWinding(t *testing.T) {
	m := NewSphere(8, 16)
	want := []uint16{0, 1, 17, 17, 1, 18}
	for i, w := range want {
		if m.Indices[i] != w {
			t.Errorf("index %d: expected %d, got %d", i, w, m.Indices[i])
		}
	}
}

func TestSphereFlattenedStrides(t *testing.T) {
	m := NewDefaultSphere()
	if n := len(m.PositionData()); n != 153*3 {
		t.Errorf("Expected %d position floats, got %d", 153*3, n)
	}
	if n := len(m.NormalData()); n != 153*3 {
		t.Errorf("Expected %d normal floats, got %d", 153*3, n)
	}
	if n := len(m.UVData()); n != 153*2 {
		t.Errorf("Expected %d uv floats, got %d", 153*2, n)
	}

	pos := m.PositionData()
	nrm := m.NormalData()
	nrm[0] = 42
	if pos[0] == 42 {
		t.Errorf("normal data aliases position data")
	}
}

func TestSphereDeterministic(t *testing.T) {
	a := NewSphere(8, 16)
	b := NewSphere(8, 16)
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] || a.UVs[i] != b.UVs[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

func TestSphereRejectsOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for tessellation beyond 16-bit indices")
		}
	}()
	NewSphere(256, 256)
}

func TestSphereRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for zero stacks")
		}
	}()
	NewSphere(0, 16)
}

package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// approx compares component-wise by absolute difference. mgl32's
// ApproxEqualThreshold is relative and rejects tiny residues next to 0.
func approx(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) >= eps {
			return false
		}
	}
	return true
}

func approxVec3(a, b mgl32.Vec3) bool { return approx(a[:], b[:]) }

func approxMat4(a, b mgl32.Mat4) bool { return approx(a[:], b[:]) }

func TestModelMatrixIdentityAtFrameZero(t *testing.T) {
	m := ModelMatrix(0)
	if !approxMat4(m, mgl32.Ident4()) {
		t.Errorf("Expected identity at frame 0, got %v", m)
	}
}

func TestModelMatrixRotatesCounterClockwiseAboutY(t *testing.T) {
	m := ModelMatrix(90)
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{0, 0, -1}
	if !approxVec3(got, want) {
		t.Errorf("Expected (1,0,0) to map to %v at 90 degrees, got %v", want, got)
	}

	// the vertical axis is fixed
	up := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	if !approxVec3(up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected +Y to stay fixed, got %v", up)
	}
}

func TestModelMatrixWrapsEveryFullTurn(t *testing.T) {
	for _, f := range []uint64{45, 90, 359} {
		a := ModelMatrix(f)
		b := ModelMatrix(f + 360*1000)
		if !approxMat4(a, b) {
			t.Errorf("frame %d and %d differ", f, f+360*1000)
		}
	}
	if !approxMat4(ModelMatrix(math.MaxUint64-15), ModelMatrix(0)) {
		// MaxUint64-15 is a multiple of 360
		t.Errorf("Expected full turn at MaxUint64-15")
	}
}

func TestNormalMatrixIsInverseTranspose(t *testing.T) {
	for f := uint64(0); f < 360; f += 7 {
		model := ModelMatrix(f)
		n := NormalMatrix(model)

		// (M^-1)^T * M^T == I
		if !approxMat4(n.Mul4(model.Transpose()), mgl32.Ident4()) {
			t.Errorf("frame %d: normal matrix is not the inverse-transpose", f)
		}

		normal := mgl32.Vec3{0.3, -0.5, 0.8}.Normalize()
		got := n.Mul4x1(normal.Vec4(0)).Vec3().Normalize()
		want := model.Mul4x1(normal.Vec4(0)).Vec3().Normalize()
		if math.Abs(float64(got.Len())-1) > eps {
			t.Errorf("frame %d: transformed normal is not unit length: %v", f, got.Len())
		}
		if !approxVec3(got, want) {
			t.Errorf("frame %d: Expected normal %v, got %v", f, want, got)
		}
	}
}

func TestComputeTransforms(t *testing.T) {
	cam := NewCamera(500, 500)
	view, proj := cam.GetViewMatrix(), cam.GetProjectionMatrix()
	tr := ComputeTransforms(30, view, proj)

	want := proj.Mul4(view).Mul4(ModelMatrix(30))
	if !approxMat4(tr.MVP, want) {
		t.Errorf("Expected mvp %v, got %v", want, tr.MVP)
	}

	// the sphere center lands in the middle of the screen
	clip := tr.MVP.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	if math.Abs(float64(ndc.X())) > eps || math.Abs(float64(ndc.Y())) > eps {
		t.Errorf("Expected origin at screen center, got %v", ndc)
	}
	if clip.W() < 5.99 || clip.W() > 6.01 {
		t.Errorf("Expected origin 6 units in front of the camera, got w=%f", clip.W())
	}
}

func TestLightDirectionIsNormalized(t *testing.T) {
	if l := LightDirection.Vec3().Len(); math.Abs(float64(l)-1) > 1e-6 {
		t.Errorf("Expected unit light vector, got length %f", l)
	}
	if LightDirection.W() != 0 {
		t.Errorf("Expected w=0 for a direction, got %f", LightDirection.W())
	}
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(500, 500)
	if c.FOV != 30 || c.AspectRatio != 1 || c.NearPlane != 0.1 || c.FarPlane != 1000 || c.Distance != 6 {
		t.Errorf("unexpected camera defaults: %+v", c)
	}
	c.SetViewport(0, 0)
	if c.AspectRatio != 1 {
		t.Errorf("Expected zero viewport to be ignored, got aspect %f", c.AspectRatio)
	}
	c.SetViewport(1000, 500)
	if c.AspectRatio != 2 {
		t.Errorf("Expected aspect 2, got %f", c.AspectRatio)
	}
}

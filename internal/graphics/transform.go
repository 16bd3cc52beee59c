package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightDirection is the fixed, normalized directional light (w=0).
var LightDirection = mgl32.Vec4{0.5773502691896258, 0.5773502691896258, 0.5773502691896258, 0}

// Transforms holds the per-frame matrices uploaded to the shader.
type Transforms struct {
	Model  mgl32.Mat4
	MVP    mgl32.Mat4
	Normal mgl32.Mat4
}

// RotationDegrees maps a frame counter to a rotation angle, one degree per
// frame. Reducing modulo 360 keeps the angle exact however long the counter runs.
func RotationDegrees(frame uint64) float32 {
	return float32(frame % 360)
}

// ModelMatrix rotates about +Y by the frame's angle. Positive angles turn
// counter-clockwise seen from above, so +X moves toward -Z.
func ModelMatrix(frame uint64) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(RotationDegrees(frame)))
}

// NormalMatrix is the inverse-transpose of model.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	return model.Inv().Transpose()
}

// ComputeTransforms builds model, projection*view*model and normal matrices.
func ComputeTransforms(frame uint64, view, projection mgl32.Mat4) Transforms {
	model := ModelMatrix(frame)
	return Transforms{
		Model:  model,
		MVP:    projection.Mul4(view).Mul4(model),
		Normal: NormalMatrix(model),
	}
}

package moveone

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewNode("test")
	got := computeLocalTransform(n)
	assertMatrix(t, "identity", got, identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewNode("test")
	n.X = 10
	n.Y = 20
	got := computeLocalTransform(n)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewNode("test")
	n.SetScale(2, 3)
	got := computeLocalTransform(n)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewNode("test")
	n.SetRotation(math.Pi / 2)
	got := computeLocalTransform(n)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewNode("test")
	n.X = 100
	n.Y = 200
	n.PivotX = 16
	n.PivotY = 16
	got := computeLocalTransform(n)
	// T(100,200) * T(-16,-16) = [1,0,0,1, 84, 184]
	assertMatrix(t, "pivot", got, [6]float64{1, 0, 0, 1, 84, 184})
}

func TestLocalTransformCombined(t *testing.T) {
	n := NewNode("test")
	n.X = 50
	n.Y = 100
	n.SetScale(2, 2)
	n.SetRotation(math.Pi / 2)

	got := computeLocalTransform(n)
	// Scale(2,2) then Rotate(90°):
	// a = cos*sx = 0, b = sin*sx = 2, c = -sin*sy = -2, d = cos*sy = 0
	assertMatrix(t, "combined", got, [6]float64{0, 2, -2, 0, 50, 100})
}

// --- transformPoint ---

func TestTransformPointIdentity(t *testing.T) {
	x, y := transformPoint(identityTransform, 7, -3)
	assertNear(t, "x", x, 7)
	assertNear(t, "y", y, -3)
}

func TestTransformPointPivotRotation(t *testing.T) {
	// A node rotated 90° around its center (pivot 16,16) at position (100,100):
	// the local point (32,16) — the arrow nose — lands below the position.
	n := NewNode("test")
	n.X = 100
	n.Y = 100
	n.PivotX = 16
	n.PivotY = 16
	n.SetRotation(math.Pi / 2)

	m := computeLocalTransform(n)
	x, y := transformPoint(m, 32, 16)
	assertNear(t, "nose.x", x, 100)
	assertNear(t, "nose.y", y, 116)
}

// --- Vec2 ---

func TestVec2Norm(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Norm()
	assertNear(t, "len", n.Len(), 1)
	assertNear(t, "x", n.X, 0.6)
	assertNear(t, "y", n.Y, 0.8)

	zero := Vec2{}.Norm()
	assertNear(t, "zero.x", zero.X, 0)
	assertNear(t, "zero.y", zero.Y, 0)
}

func TestVec2AngleDegrees(t *testing.T) {
	assertNear(t, "+X", Vec2{X: 1}.AngleDegrees(), 0)
	assertNear(t, "+Y", Vec2{Y: 1}.AngleDegrees(), 90)
	assertNear(t, "-X", Vec2{X: -1}.AngleDegrees(), 180)
	assertNear(t, "-Y", Vec2{Y: -1}.AngleDegrees(), -90)
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	assertNear(t, "distance", a.DistanceTo(b), 5)
}

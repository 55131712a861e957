package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)

	if z != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want (0,0,1)", z)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()

	if math.Abs(float64(n.Length()-1)) > 1e-6 {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
	if math.Abs(float64(n.X-0.6)) > 1e-6 || math.Abs(float64(n.Y-0.8)) > 1e-6 {
		t.Errorf("normalize: got %v, want (0.6, 0.8, 0)", n)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	v := Vec3{}.Normalize()
	if v != (Vec3{}) {
		t.Errorf("normalizing zero vector should return zero, got %v", v)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 6}

	mid := a.Lerp(b, 0.5)
	if mid != (Vec3{1, 2, 3}) {
		t.Errorf("lerp midpoint: got %v, want (1,2,3)", mid)
	}
	if a.Lerp(b, 0) != a {
		t.Error("lerp at t=0 should return a")
	}
	if a.Lerp(b, 1) != b {
		t.Error("lerp at t=1 should return b")
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 1, 4}
	if d := a.Distance(b); d != 3 {
		t.Errorf("distance: got %f, want 3", d)
	}
}

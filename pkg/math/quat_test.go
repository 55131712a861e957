package math

import (
	"math"
	"testing"
)

const quatEps = 1e-5

func vecNear(a, b Vec3) bool {
	return math.Abs(float64(a.X-b.X)) < quatEps &&
		math.Abs(float64(a.Y-b.Y)) < quatEps &&
		math.Abs(float64(a.Z-b.Z)) < quatEps
}

func TestQuatIdentityRotate(t *testing.T) {
	q := QuatIdentity()
	v := Vec3{1, 2, 3}
	if !vecNear(q.Rotate(v), v) {
		t.Errorf("identity rotation changed vector: %v", q.Rotate(v))
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90° around Z takes +X to +Y
	q := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	got := q.Rotate(Vec3{X: 1})
	if !vecNear(got, Vec3{Y: 1}) {
		t.Errorf("90° Z rotation of +X: got %v, want (0,1,0)", got)
	}
}

func TestRotationBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"x to y", Vec3{X: 1}, Vec3{Y: 1}},
		{"z to x", Vec3{Z: 1}, Vec3{X: 1}},
		{"diagonal", Vec3{X: 1}, Vec3{X: 0.577350269, Y: 0.577350269, Z: 0.577350269}},
		{"parallel", Vec3{Z: 1}, Vec3{Z: 1}},
		{"antiparallel", Vec3{Z: 1}, Vec3{Z: -1}},
	}

	for _, tt := range tests {
		q := RotationBetween(tt.from, tt.to)
		got := q.Rotate(tt.from)
		if !vecNear(got, tt.to) {
			t.Errorf("%s: rotated %v to %v, want %v", tt.name, tt.from, got, tt.to)
		}
	}
}

func TestQuatMulComposes(t *testing.T) {
	// Two 90° turns around Z equal one 180° turn
	q90 := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	q180 := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi))

	composed := q90.Mul(q90)
	a := composed.Rotate(Vec3{X: 1})
	b := q180.Rotate(Vec3{X: 1})
	if !vecNear(a, b) {
		t.Errorf("composed rotation: got %v, want %v", a, b)
	}
}

func TestQuatMulOrder(t *testing.T) {
	// q.Mul(p) applies p first: rotate +X by 90° around Z (-> +Y),
	// then 90° around X (-> +Z).
	pz := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	px := QuatFromAxisAngle(Vec3{X: 1}, float32(math.Pi/2))

	got := px.Mul(pz).Rotate(Vec3{X: 1})
	if !vecNear(got, Vec3{Z: 1}) {
		t.Errorf("px*pz on +X: got %v, want (0,0,1)", got)
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0.267261242, Y: 0.534522484, Z: 0.801783726}, 1.1)
	v := Vec3{0.3, -1.2, 2.5}

	a := q.Rotate(v)
	b := q.ToMat4().TransformPoint(v)
	if !vecNear(a, b) {
		t.Errorf("quat rotate %v vs matrix %v differ", a, b)
	}
}

package clock

import (
	gomath "math"
	"testing"
	"time"

	"github.com/mobiusclock/mobius/pkg/math"
)

func TestOrientOnEdgeDiscFacesTravel(t *testing.T) {
	pt := HourPoint{
		Position: math.Vec3{X: 3},
		Outward:  math.Vec3{X: 1},
		Tangent:  math.Vec3{Y: 1},
	}
	p := OrientOnEdge(ShapeDisc, pt, HourRadius)
	face := p.Rotation.Rotate(math.Vec3{Z: 1})
	if face.Distance(pt.Tangent) > 1e-5 {
		t.Errorf("disc face = %v, want tangent %v", face, pt.Tangent)
	}
	if p.Position.Distance(pt.Position) > 1e-6 {
		t.Errorf("disc position = %v, want on edge %v", p.Position, pt.Position)
	}
}

func TestOrientOnEdgeRingThreadsEdge(t *testing.T) {
	pt := HourPoint{
		Position: math.Vec3{X: 3},
		Outward:  math.Vec3{X: 1},
		Tangent:  math.Vec3{Y: 1},
	}
	p := OrientOnEdge(ShapeRing, pt, HourRadius)
	axis := p.Rotation.Rotate(math.Vec3{Z: 1})
	if axis.Distance(pt.Tangent) > 1e-5 {
		t.Errorf("ring axis = %v, want tangent %v", axis, pt.Tangent)
	}
}

func TestOrientOnEdgeOuterRingOffset(t *testing.T) {
	pt := HourPoint{
		Position: math.Vec3{X: 3},
		Outward:  math.Vec3{X: 1},
		Tangent:  math.Vec3{Y: 1},
	}
	p := OrientOnEdge(ShapeOuterRing, pt, HourRadius)

	want := pt.Position.Add(pt.Outward.Scale(HourRadius + HourRadius*RingTubeRatio))
	if p.Position.Distance(want) > 1e-5 {
		t.Errorf("outer ring at %v, want offset position %v", p.Position, want)
	}
}

func TestOrientOnDial(t *testing.T) {
	pt := DialPoint{
		Position: math.Vec3{Y: 3},
		Outward:  math.Vec3{Y: 1},
		Tangent:  math.Vec3{X: 1},
	}

	p := OrientOnDial(pt)
	axis := p.Rotation.Rotate(math.Vec3{Z: 1})
	if axis.Distance(pt.Tangent) > 1e-5 {
		t.Errorf("dial axis = %v, want tangent %v", axis, pt.Tangent)
	}
	if p.Position.Distance(pt.Position) > 1e-6 {
		t.Errorf("dial position = %v, want %v", p.Position, pt.Position)
	}
}

func TestSpinActive(t *testing.T) {
	tests := []struct {
		minutes float64
		want    bool
	}{
		{0, true},
		{0.5, true},
		{0.99, true},
		{1.0, false},
		{30, false},
		{59.0, false},
		{59.01, true},
		{59.9, true},
	}
	for _, tt := range tests {
		if got := SpinActive(tt.minutes); got != tt.want {
			t.Errorf("SpinActive(%v) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestApplySpinPreservesAxis(t *testing.T) {
	outward := math.Vec3{X: 1}
	base := Placement{
		Position: math.Vec3{X: 3.5},
		Rotation: math.RotationBetween(math.Vec3{Z: 1}, math.Vec3{Y: 1}),
	}
	now := time.Unix(0, 500*int64(time.Millisecond))
	spun := ApplySpin(base, outward, now, false)

	if spun.Position.Distance(base.Position) > 1e-6 {
		t.Errorf("spin moved the placement from %v to %v", base.Position, spun.Position)
	}
	before := base.Rotation.Rotate(math.Vec3{Z: 1})
	after := spun.Rotation.Rotate(math.Vec3{Z: 1})
	// 500ms into a 2s period is a quarter turn about +X: +Y maps to +Z.
	if before.Distance(math.Vec3{Y: 1}) > 1e-5 {
		t.Fatalf("base axis = %v, want +Y", before)
	}
	if after.Distance(math.Vec3{Z: 1}) > 1e-4 {
		t.Errorf("axis after quarter turn = %v, want +Z", after)
	}
}

func TestApplySpinFastPeriod(t *testing.T) {
	outward := math.Vec3{X: 1}
	base := Placement{Rotation: math.QuatIdentity()}
	now := time.Unix(0, 250*int64(time.Millisecond))

	// 250ms is an eighth turn at the normal 2s period and a quarter turn
	// at the fast 1s period.
	normal := ApplySpin(base, outward, now, false)
	fast := ApplySpin(base, outward, now, true)

	vNormal := normal.Rotation.Rotate(math.Vec3{Y: 1})
	vFast := fast.Rotation.Rotate(math.Vec3{Y: 1})

	wantNormal := math.Vec3{Y: float32(gomath.Cos(gomath.Pi / 4)), Z: float32(gomath.Sin(gomath.Pi / 4))}
	if vNormal.Distance(wantNormal) > 1e-4 {
		t.Errorf("normal spin = %v, want %v", vNormal, wantNormal)
	}
	if vFast.Distance(math.Vec3{Z: 1}) > 1e-4 {
		t.Errorf("fast spin = %v, want +Z", vFast)
	}
}

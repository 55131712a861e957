package clock

import (
	gomath "math"
	"time"

	"github.com/mobiusclock/mobius/pkg/math"
)

// Spin periods for the outer ring's celebration roll around the top of
// each hour.
const (
	spinPeriodNormal = 2 * time.Second
	spinPeriodFast   = time.Second

	// spinWindowMinutes is how far, in indicated minutes, either side of
	// a whole hour the ring keeps rolling.
	spinWindowMinutes = 1.0
)

// Placement is a resolved indicator transform, ready to become a model
// matrix.
type Placement struct {
	Position math.Vec3
	Rotation math.Quat
}

// ModelMatrix builds the indicator's model matrix from its placement.
func (p Placement) ModelMatrix() math.Mat4 {
	return math.Translate(p.Position.X, p.Position.Y, p.Position.Z).Mul(p.Rotation.ToMat4())
}

// OrientOnEdge places a shape at a point on the edge path. Every shape
// aligns its local +Z reference axis to the direction of travel, so
// discs face the way they move and rings thread the path. The outer
// ring additionally floats off the edge by its own major-plus-tube
// extent so it clears the strip surface.
func OrientOnEdge(shape Shape, pt HourPoint, size float32) Placement {
	pos := pt.Position
	if shape == ShapeOuterRing {
		pos = pos.Add(pt.Outward.Scale(size + size*RingTubeRatio))
	}
	return Placement{
		Position: pos,
		Rotation: math.RotationBetween(math.Vec3{Z: 1}, pt.Tangent),
	}
}

// OrientOnDial places a shape on the centerline circle, local +Z along
// the direction of travel around the dial.
func OrientOnDial(pt DialPoint) Placement {
	return Placement{
		Position: pt.Position,
		Rotation: math.RotationBetween(math.Vec3{Z: 1}, pt.Tangent),
	}
}

// SpinActive reports whether the outer ring should roll: within one
// indicated minute either side of a whole hour.
func SpinActive(minutes float64) bool {
	return minutes < spinWindowMinutes || minutes > 60-spinWindowMinutes
}

// ApplySpin composes the celebration roll onto an aligned placement. The
// roll is about the ring's outward axis in world space and is driven by
// wall-clock time so it stays smooth regardless of the hour transform.
func ApplySpin(p Placement, outward math.Vec3, now time.Time, fast bool) Placement {
	period := spinPeriodNormal
	if fast {
		period = spinPeriodFast
	}
	phase := float64(now.UnixNano()%int64(period)) / float64(period)
	angle := float32(2 * gomath.Pi * phase)
	spin := math.QuatFromAxisAngle(outward, angle)
	p.Rotation = spin.Mul(p.Rotation)
	return p
}

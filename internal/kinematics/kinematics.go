// Package kinematics implements the planar three-link arm math: an inverse
// kinematics solver mapping an end-effector target to joint angles, and the
// forward kinematics chain mapping joint angles back to joint positions.
//
// All angles are absolute (measured from the arm-local horizontal, not
// relative to the previous link) and in radians. No angle normalization is
// performed; callers must not assume a canonical range.
package kinematics

import (
	"fmt"
	"math"

	"github.com/rigview/rigview/backend-go/internal/geom"
)

// LinkLengths holds the three link lengths of the arm: shoulder-to-elbow,
// elbow-to-wrist, and wrist-to-end-effector. Immutable per scene.
type LinkLengths struct {
	L1 float64 `json:"l1"`
	L2 float64 `json:"l2"`
	L3 float64 `json:"l3"`
}

// Validate checks that all link lengths are strictly positive.
func (l LinkLengths) Validate() error {
	if l.L1 <= 0 || l.L2 <= 0 || l.L3 <= 0 {
		return fmt.Errorf("link lengths must be strictly positive, got (%v, %v, %v)", l.L1, l.L2, l.L3)
	}
	return nil
}

// Reach returns the maximum distance the end-effector can be from the
// shoulder, i.e. the fully-extended chain length.
func (l LinkLengths) Reach() float64 {
	return l.L1 + l.L2 + l.L3
}

// JointAngles holds the absolute angles of the three links.
type JointAngles struct {
	Theta1 float64 `json:"theta1"`
	Theta2 float64 `json:"theta2"`
	Theta3 float64 `json:"theta3"`
}

// ReachabilityError reports that a target cannot be satisfied by the given
// link lengths. It carries the offending target and lengths for diagnostics.
type ReachabilityError struct {
	Target geom.Vec2
	Links  LinkLengths
}

func (e *ReachabilityError) Error() string {
	return fmt.Sprintf("target (%v, %v) not reachable with links (%v, %v, %v)",
		e.Target.X, e.Target.Y, e.Links.L1, e.Links.L2, e.Links.L3)
}

// Solve computes joint angles placing the end-effector at target, given in
// the arm-local frame (origin at the shoulder anchor, y up).
//
// The shoulder points directly at the target's bearing; the remaining two
// links form a law-of-cosines triangle closing the gap from the elbow to the
// target. For any reachable target, Chain(origin, links, angles) lands on
// the target within floating-point tolerance. Unreachable or degenerate
// geometry yields a *ReachabilityError, never a NaN angle: the inverse
// cosine argument is validated against [-1, 1] before the call.
func Solve(target geom.Vec2, links LinkLengths) (JointAngles, error) {
	if err := links.Validate(); err != nil {
		return JointAngles{}, err
	}

	theta1 := target.Bearing()
	elbow := geom.Polar(theta1, links.L1)

	// Residual from the elbow to the target, covered by links 2 and 3.
	v := target.Sub(elbow)
	d := v.Len()
	if d == 0 {
		// Target exactly at the elbow: the last two links cannot close a
		// zero-length gap unless l2 == l3, and the bearing is undefined.
		return JointAngles{}, &ReachabilityError{Target: target, Links: links}
	}

	ratio := (d*d + links.L2*links.L2 - links.L3*links.L3) / (2 * d * links.L2)
	// Targets sitting exactly on the reachability boundary can land a
	// rounding error outside [-1, 1]; absorb that, reject anything larger.
	const eps = 1e-12
	if ratio < -1-eps || ratio > 1+eps {
		return JointAngles{}, &ReachabilityError{Target: target, Links: links}
	}
	ratio = geom.Clamp(ratio, -1, 1)

	theta2 := v.Bearing() + math.Acos(ratio)
	wrist := elbow.Add(geom.Polar(theta2, links.L2))
	theta3 := target.Sub(wrist).Bearing()

	return JointAngles{Theta1: theta1, Theta2: theta2, Theta3: theta3}, nil
}

// Forward returns the end-effector position for the given joint angles in
// the arm-local frame (origin at the shoulder, y up).
func Forward(links LinkLengths, angles JointAngles) geom.Vec2 {
	p := geom.Polar(angles.Theta1, links.L1)
	p = p.Add(geom.Polar(angles.Theta2, links.L2))
	return p.Add(geom.Polar(angles.Theta3, links.L3))
}

// Chain returns the four joint positions of the arm in screen space:
// shoulder anchor, elbow, wrist, end-effector. Screen y grows downward, so
// each link endpoint is prev + (l*cos(theta), -l*sin(theta)), keeping the
// up-positive angle convention. Chain is total: any finite angles and
// positive lengths produce a drawable result.
func Chain(anchor geom.Vec2, links LinkLengths, angles JointAngles) [4]geom.Vec2 {
	var pts [4]geom.Vec2
	pts[0] = anchor

	segs := [3]struct {
		l, theta float64
	}{
		{links.L1, angles.Theta1},
		{links.L2, angles.Theta2},
		{links.L3, angles.Theta3},
	}
	for i, s := range segs {
		pts[i+1] = geom.Vec2{
			X: pts[i].X + s.l*math.Cos(s.theta),
			Y: pts[i].Y - s.l*math.Sin(s.theta),
		}
	}
	return pts
}

// GripperFingers returns the far endpoints of the two gripper fingers for an
// end-effector at tip with wrist angle theta3. Each finger runs from the tip
// to a point offset by +/- halfWidth along the direction perpendicular to
// the wrist (theta3 - pi/2), forming a V opening backward from the tip.
func GripperFingers(tip geom.Vec2, theta3, halfWidth float64) [2]geom.Vec2 {
	perp := theta3 - math.Pi/2
	dx := halfWidth * math.Cos(perp)
	dy := halfWidth * math.Sin(perp)
	return [2]geom.Vec2{
		{X: tip.X + dx, Y: tip.Y - dy},
		{X: tip.X - dx, Y: tip.Y + dy},
	}
}

// Package geom provides the small set of planar vector and angle helpers
// shared by the kinematics and scene-composition code.
package geom

import "math"

// Vec2 is a point or vector in the plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Bearing returns the angle of v in radians, quadrant-correct via atan2.
func (v Vec2) Bearing() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Polar returns the unit-circle point at the given angle scaled by r.
func Polar(angle, r float64) Vec2 {
	return Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Degrees converts radians to degrees for logging/display.
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

package rig

import (
	"math"
	"testing"
)

var (
	testViewport = Viewport{Width: 800, Height: 300, GroundOffset: 10}
	testDims     = BaseDimensions{Width: 100, Height: 40, WheelRadius: 12}
)

func TestInitializeCenters(t *testing.T) {
	c := NewBaseController()

	if _, placed := c.Pose(); placed {
		t.Fatal("new controller reports placed pose")
	}

	c.Initialize(testViewport, testDims)

	pose, placed := c.Pose()
	if !placed {
		t.Fatal("pose not placed after Initialize")
	}
	if pose.X != 350 {
		t.Errorf("X = %v, want 350", pose.X)
	}
	// 300 - 10 - 40 - 12
	if pose.Y != 238 {
		t.Errorf("Y = %v, want 238", pose.Y)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	c := NewBaseController()
	c.Initialize(testViewport, testDims)
	first, _ := c.Pose()

	// A second call with different viewport values must change nothing.
	c.Initialize(Viewport{Width: 123, Height: 456, GroundOffset: 99}, testDims)

	if second, _ := c.Pose(); second != first {
		t.Errorf("pose changed on repeat Initialize: %v -> %v", first, second)
	}
}

func TestInitializeAtOrigin(t *testing.T) {
	// A pose that legitimately computes to (0, 0) still counts as placed.
	vp := Viewport{Width: 100, Height: 62, GroundOffset: 10}
	c := NewBaseController()
	c.Initialize(vp, testDims)

	pose, placed := c.Pose()
	if !placed || pose.X != 0 || pose.Y != 0 {
		t.Fatalf("pose = %v placed = %v, want (0,0) placed", pose, placed)
	}

	c.Initialize(testViewport, testDims)
	if after, _ := c.Pose(); after != pose {
		t.Errorf("(0,0) pose was re-centered: %v", after)
	}
}

func TestClickClampsLeft(t *testing.T) {
	c := NewBaseController()
	c.Initialize(testViewport, testDims)

	// Viewport width 800, base width 100, click at x=10: candidate is
	// 10 - 50 = -40, clamped to 0.
	c.OnSurfaceClick(10, 150, testViewport, testDims)

	if pose, _ := c.Pose(); pose.X != 0 {
		t.Errorf("X = %v, want 0", pose.X)
	}
}

func TestClickClampsRight(t *testing.T) {
	c := NewBaseController()
	c.Initialize(testViewport, testDims)

	// Click at x=790: candidate 740, clamped to 700 (800 - 100).
	c.OnSurfaceClick(790, 150, testViewport, testDims)

	if pose, _ := c.Pose(); pose.X != 700 {
		t.Errorf("X = %v, want 700", pose.X)
	}
}

func TestClickClampInvariant(t *testing.T) {
	c := NewBaseController()
	c.Initialize(testViewport, testDims)

	for _, x := range []float64{math.Inf(-1), -1e12, -40, 0, 50, 400, 750, 790, 1e12, math.Inf(1)} {
		c.OnSurfaceClick(x, 0, testViewport, testDims)
		pose, _ := c.Pose()
		if pose.X < 0 || pose.X > testViewport.Width-testDims.Width {
			t.Errorf("click %v: X = %v outside [0, %v]", x, pose.X, testViewport.Width-testDims.Width)
		}
	}
}

func TestClickLeavesYUnchanged(t *testing.T) {
	c := NewBaseController()
	c.Initialize(testViewport, testDims)
	before, _ := c.Pose()

	c.OnSurfaceClick(400, 9999, testViewport, testDims)

	if after, _ := c.Pose(); after.Y != before.Y {
		t.Errorf("Y changed: %v -> %v", before.Y, after.Y)
	}
}

func TestClickBeforeInitializeIsNoop(t *testing.T) {
	c := NewBaseController()
	c.OnSurfaceClick(400, 150, testViewport, testDims)

	if _, placed := c.Pose(); placed {
		t.Error("click before Initialize placed the pose")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	bad := Default()
	bad.Base.Width = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero base width passed validation")
	}

	bad = Default()
	bad.Links.L2 = -5
	if err := bad.Validate(); err == nil {
		t.Error("negative link length passed validation")
	}
}

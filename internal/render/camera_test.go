package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/world"
)

func TestEyeDistance(t *testing.T) {
	c := NewOrbitCamera(800, 600, 60)
	c.Target = mgl32.Vec3{10, 0, -4}
	if d := c.Eye().Sub(c.Target).Len(); !mgl32.FloatEqualThreshold(d, c.Distance, 1e-3) {
		t.Errorf("eye is %v from target, want %v", d, c.Distance)
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera(800, 600, 60)
	c.Target = mgl32.Vec3{16, 16, 16}
	// the target maps onto the negative z axis in view space
	p := c.View().Mul4x1(c.Target.Vec4(1))
	if !mgl32.FloatEqualThreshold(p.X(), 0, 1e-3) || !mgl32.FloatEqualThreshold(p.Y(), 0, 1e-3) || p.Z() >= 0 {
		t.Errorf("target in view space = %v, want (0, 0, -d)", p)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewOrbitCamera(800, 600, 60)
	c.Orbit(0, 500)
	if c.Pitch != maxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, maxPitch)
	}
	c.Orbit(370, -1000)
	if c.Pitch != -maxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -maxPitch)
	}
	if c.Yaw < -360 || c.Yaw > 360 {
		t.Errorf("Yaw = %v not wrapped", c.Yaw)
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewOrbitCamera(800, 600, 60)
	c.Zoom(0.0001)
	if c.Distance != minDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, minDistance)
	}
	c.Zoom(-2)
	if c.Distance != minDistance {
		t.Error("non-positive zoom factor should be ignored")
	}
}

func TestFrame(t *testing.T) {
	c := NewOrbitCamera(800, 600, 60)
	c.Frame([]world.ChunkPosition{{X: -1}, {X: 1}})
	want := mgl32.Vec3{16, 16, 16}
	if !c.Target.ApproxEqual(want) {
		t.Errorf("Target = %v, want %v", c.Target, want)
	}
	if c.Distance < 96 {
		t.Errorf("Distance = %v, too close to see both chunks", c.Distance)
	}
}

func TestResizeIgnoresZeroHeight(t *testing.T) {
	c := NewOrbitCamera(800, 400, 60)
	c.Resize(100, 0)
	if c.AspectRatio != 2 {
		t.Errorf("AspectRatio = %v, want 2", c.AspectRatio)
	}
}

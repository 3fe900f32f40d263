// Package render draws chunk meshes with OpenGL 4.1 core.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/world"
)

const (
	maxPitch    = 89.0
	minDistance = 4.0
)

// OrbitCamera circles a target point. Angles are in degrees.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(width, height int, fov float32) *OrbitCamera {
	c := &OrbitCamera{
		Distance:  64,
		Yaw:       45,
		Pitch:     30,
		FOV:       fov,
		NearPlane: 0.1,
		FarPlane:  2000,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. A zero height is ignored.
func (c *OrbitCamera) Resize(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// Eye returns the camera position.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	dir := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Orbit rotates around the target. Pitch stays short of the poles so the
// up vector never lines up with the view direction.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target.
func (c *OrbitCamera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = mgl32.Clamp(c.Distance*factor, minDistance, c.FarPlane/2)
}

// Frame points the camera at the centre of the given chunks and backs off
// far enough to see all of them.
func (c *OrbitCamera) Frame(positions []world.ChunkPosition) {
	if len(positions) == 0 {
		return
	}
	lo := positions[0].WorldOrigin()
	hi := lo
	for _, p := range positions[1:] {
		o := p.WorldOrigin()
		for i := range 3 {
			lo[i] = min(lo[i], o[i])
			hi[i] = max(hi[i], o[i])
		}
	}
	hi = hi.Add(mgl32.Vec3{world.ChunkSize, world.ChunkSize, world.ChunkSize})
	c.Target = lo.Add(hi).Mul(0.5)
	c.Distance = max(hi.Sub(lo).Len(), minDistance)
}

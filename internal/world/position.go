package world

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkSize is the edge length of a chunk in voxels.
const ChunkSize = 32

// ChunkPosition identifies a chunk in chunk space. One unit is ChunkSize voxels.
type ChunkPosition struct {
	X, Y, Z int
}

// Add returns p offset by (dx, dy, dz) chunks.
func (p ChunkPosition) Add(dx, dy, dz int) ChunkPosition {
	return ChunkPosition{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Neighbor returns the position of the adjacent chunk in direction d.
func (p ChunkPosition) Neighbor(d Direction) ChunkPosition {
	o := d.Offset()
	return p.Add(o[0], o[1], o[2])
}

// WorldOrigin returns the world-space position of the chunk's local origin.
func (p ChunkPosition) WorldOrigin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(p.X * ChunkSize),
		float32(p.Y * ChunkSize),
		float32(p.Z * ChunkSize),
	}
}

func (p ChunkPosition) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// ChunkPositionFromWorld returns the chunk containing world-space point v.
func ChunkPositionFromWorld(v mgl32.Vec3) ChunkPosition {
	return ChunkPosition{
		X: int(math.Floor(float64(v[0]) / ChunkSize)),
		Y: int(math.Floor(float64(v[1]) / ChunkSize)),
		Z: int(math.Floor(float64(v[2]) / ChunkSize)),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod is the euclidean remainder; the result is always in [0, b).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// SplitLocal maps a chunk-relative coordinate that may fall outside [0, ChunkSize)
// to the offset of the chunk that owns it and the coordinate local to that chunk.
func SplitLocal(v int) (chunkOffset, local int) {
	return floorDiv(v, ChunkSize), mod(v, ChunkSize)
}

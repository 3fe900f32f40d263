package world

import (
	"math/rand"

	"mini-voxel/internal/volume"
)

// ExampleChunk returns a tiny hand-built chunk: a three voxel column.
func ExampleChunk() *Chunk {
	vol := volume.New(ChunkSize, InactiveVoxel())
	vol.Set(volume.Index{X: 5, Y: 5, Z: 5}, ActiveVoxel())
	vol.Set(volume.Index{X: 5, Y: 4, Z: 5}, ActiveVoxel())
	vol.Set(volume.Index{X: 5, Y: 6, Z: 5}, ActiveVoxel())
	return NewChunk(ChunkPosition{X: 1}, vol)
}

// RandomChunk activates each voxel independently with probability fill.
func RandomChunk(position ChunkPosition, rng *rand.Rand, fill float64) *Chunk {
	vol := volume.New(ChunkSize, InactiveVoxel())
	for idx := range vol.Indices() {
		if rng.Float64() < fill {
			vol.Ptr(idx).Active = true
		}
	}
	return NewChunk(position, vol)
}

// SolidChunk returns a chunk with every voxel active.
func SolidChunk(position ChunkPosition) *Chunk {
	return NewChunk(position, volume.New(ChunkSize, ActiveVoxel()))
}

// ChunkFromPoints builds a chunk with only the given local points active.
func ChunkFromPoints(position ChunkPosition, points ...[3]int) *Chunk {
	vol := volume.New(ChunkSize, InactiveVoxel())
	for _, p := range points {
		vol.Set(volume.Index{X: p[0], Y: p[1], Z: p[2]}, ActiveVoxel())
	}
	return NewChunk(position, vol)
}

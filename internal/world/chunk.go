package world

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"

	"mini-voxel/internal/volume"
)

// Chunk is a ChunkSize³ cube of voxels. A chunk is immutable once built, so it
// can be shared between the registry and any number of concurrent mesh jobs.
type Chunk struct {
	position ChunkPosition
	empty    bool
	active   int
	voxels   *volume.Volume[Voxel]
}

// NewChunk takes ownership of vol; the caller must not mutate it afterwards.
// It panics if vol is not ChunkSize on a side.
func NewChunk(position ChunkPosition, vol *volume.Volume[Voxel]) *Chunk {
	if vol.Size() != ChunkSize {
		panic(fmt.Sprintf("world: chunk volume has size %d, want %d", vol.Size(), ChunkSize))
	}

	active := 0
	for _, v := range vol.All() {
		if v.Active {
			active++
		}
	}

	return &Chunk{
		position: position,
		empty:    active == 0,
		active:   active,
		voxels:   vol,
	}
}

// Position returns the chunk's position in chunk space.
func (c *Chunk) Position() ChunkPosition {
	return c.position
}

// IsEmpty reports whether no voxel was active when the chunk was built.
func (c *Chunk) IsEmpty() bool {
	return c.empty
}

// ActiveCount returns the number of active voxels.
func (c *Chunk) ActiveCount() int {
	return c.active
}

// Voxel returns the voxel at local coordinates. Out of range panics.
func (c *Chunk) Voxel(x, y, z int) Voxel {
	return c.voxels.At(volume.Index{X: x, Y: y, Z: z})
}

// IsActive reports whether the voxel at local coordinates is occupied.
func (c *Chunk) IsActive(x, y, z int) bool {
	return c.Voxel(x, y, z).Active
}

// Voxels yields every voxel in the chunk's traversal order.
func (c *Chunk) Voxels() iter.Seq2[volume.Index, Voxel] {
	return c.voxels.All()
}

// Checksum fingerprints the voxel contents (position excluded).
func (c *Chunk) Checksum() uint64 {
	bits := make([]byte, (c.voxels.Len()+7)/8)
	i := 0
	for _, v := range c.voxels.All() {
		if v.Active {
			bits[i>>3] |= 1 << (i & 7)
		}
		i++
	}
	return xxhash.Sum64(bits)
}

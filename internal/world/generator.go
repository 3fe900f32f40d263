package world

import (
	"mini-voxel/internal/volume"
)

const (
	// DefaultThreshold is the noise level at or above which a voxel is solid.
	DefaultThreshold = 0.33
	// DefaultScale divides sample coordinates before they reach the noise source.
	DefaultScale = 3.0
)

// Generator turns a chunk position into chunk contents using a noise source.
type Generator struct {
	Noise     NoiseSource
	Threshold float64
	Scale     float64
}

// NewGenerator creates a generator with the default threshold and scale.
func NewGenerator(noise NoiseSource) *Generator {
	return &Generator{
		Noise:     noise,
		Threshold: DefaultThreshold,
		Scale:     DefaultScale,
	}
}

// SamplePoint returns the noise-space coordinate of a local voxel in chunk pos.
func (g *Generator) SamplePoint(pos ChunkPosition, idx volume.Index) (x, y, z float64) {
	scale := g.Scale
	if scale == 0 {
		scale = 1
	}
	x = (float64(idx.X)/ChunkSize + float64(pos.X)) / scale
	y = (float64(idx.Y)/ChunkSize + float64(pos.Y)) / scale
	z = (float64(idx.Z)/ChunkSize + float64(pos.Z)) / scale
	return x, y, z
}

// Generate builds the chunk at pos. The result depends only on pos and the
// generator's parameters.
func (g *Generator) Generate(pos ChunkPosition) *Chunk {
	vol := volume.New(ChunkSize, ActiveVoxel())
	for idx := range vol.Indices() {
		x, y, z := g.SamplePoint(pos, idx)
		if g.Noise.Sample(x, y, z) < g.Threshold {
			vol.Ptr(idx).Active = false
		}
	}
	return NewChunk(pos, vol)
}

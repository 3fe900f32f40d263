// Package meshing converts chunk voxels into drawable face geometry.
package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/world"
)

// UnknownNeighborPolicy decides what happens to a boundary face whose
// neighboring chunk has not been generated yet.
type UnknownNeighborPolicy uint8

const (
	// DrawUnknown treats unknown chunks as empty and emits the face.
	// Over-drawing at the frontier avoids holes once the neighbor arrives.
	DrawUnknown UnknownNeighborPolicy = iota
	// CullUnknown treats unknown chunks as solid.
	CullUnknown
)

func (p UnknownNeighborPolicy) String() string {
	if p == CullUnknown {
		return "cull"
	}
	return "draw"
}

// BuildChunkMesh emits one quad per visible voxel face of c. neighbors holds
// the adjacent chunks indexed by world.Direction; nil means unknown.
func BuildChunkMesh(c *world.Chunk, neighbors [world.NumDirections]*world.Chunk) *ChunkMesh {
	return BuildChunkMeshWithPolicy(c, neighbors, DrawUnknown)
}

// BuildChunkMeshWithPolicy is BuildChunkMesh with an explicit policy for
// faces that border unknown chunks.
func BuildChunkMeshWithPolicy(c *world.Chunk, neighbors [world.NumDirections]*world.Chunk, policy UnknownNeighborPolicy) *ChunkMesh {
	mesh := &ChunkMesh{Position: c.Position()}
	if c.IsEmpty() {
		return mesh
	}

	known := make(map[world.ChunkPosition]*world.Chunk, world.NumDirections)
	for _, n := range neighbors {
		if n != nil {
			known[n.Position()] = n
		}
	}

	m := mesher{chunk: c, known: known, policy: policy}
	for idx, v := range c.Voxels() {
		if !v.Active {
			continue
		}
		at := mgl32.Vec3{float32(idx.X), float32(idx.Y), float32(idx.Z)}
		for _, d := range world.Directions {
			o := d.Offset()
			if m.faceVisible(idx.X+o[0], idx.Y+o[1], idx.Z+o[2]) {
				mesh.appendFace(&faces[d], at)
			}
		}
	}
	return mesh
}

type mesher struct {
	chunk  *world.Chunk
	known  map[world.ChunkPosition]*world.Chunk
	policy UnknownNeighborPolicy
}

// faceVisible reports whether the cell at chunk-relative (x, y, z) leaves the
// adjacent face exposed. The cell may lie in a neighboring chunk.
func (m *mesher) faceVisible(x, y, z int) bool {
	if inChunk(x) && inChunk(y) && inChunk(z) {
		return !m.chunk.IsActive(x, y, z)
	}

	cx, lx := world.SplitLocal(x)
	cy, ly := world.SplitLocal(y)
	cz, lz := world.SplitLocal(z)

	n, ok := m.known[m.chunk.Position().Add(cx, cy, cz)]
	if !ok {
		return m.policy == DrawUnknown
	}
	return !n.IsActive(lx, ly, lz)
}

func inChunk(v int) bool {
	return v >= 0 && v < world.ChunkSize
}

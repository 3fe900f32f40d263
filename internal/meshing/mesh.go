package meshing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/world"
)

// VertexStride is number of float32 per interleaved vertex (pos.xyz + normal.xyz + uv)
const VertexStride = 8

// ErrMalformedMesh reports a mesh whose arrays disagree in length.
var ErrMalformedMesh = errors.New("malformed chunk mesh")

// ChunkMesh is renderer-agnostic geometry for one chunk. Vertex positions are
// chunk-local; place the mesh with Position.WorldOrigin().
type ChunkMesh struct {
	Position world.ChunkPosition
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Indices  []uint32
}

// QuadCount returns the number of faces in the mesh.
func (m *ChunkMesh) QuadCount() int {
	return len(m.Vertices) / 4
}

// IsEmpty reports whether the mesh has no geometry.
func (m *ChunkMesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Validate checks the array length invariants.
func (m *ChunkMesh) Validate() error {
	n := len(m.Vertices)
	switch {
	case len(m.Normals) != n || len(m.UVs) != n:
		return fmt.Errorf("%w %v: %d vertices, %d normals, %d uvs", ErrMalformedMesh, m.Position, n, len(m.Normals), len(m.UVs))
	case n%4 != 0:
		return fmt.Errorf("%w %v: %d vertices is not a whole number of quads", ErrMalformedMesh, m.Position, n)
	case len(m.Indices)*2 != n*3:
		return fmt.Errorf("%w %v: %d indices for %d vertices", ErrMalformedMesh, m.Position, len(m.Indices), n)
	}
	for _, i := range m.Indices {
		if int(i) >= n {
			return fmt.Errorf("%w %v: index %d out of range", ErrMalformedMesh, m.Position, i)
		}
	}
	return nil
}

// Interleaved packs the vertex attributes as [px py pz nx ny nz u v] per vertex.
func (m *ChunkMesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for i, p := range m.Vertices {
		n := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// appendFace emits one quad translated to the voxel at local position at.
func (m *ChunkMesh) appendFace(f *Face, at mgl32.Vec3) {
	base := uint32(len(m.Vertices))
	for i := range f {
		v := &f[i]
		m.Vertices = append(m.Vertices, v.Position.Add(at))
		m.Normals = append(m.Normals, v.Normal)
		m.UVs = append(m.UVs, v.UV)
	}
	for _, off := range QuadIndices {
		m.Indices = append(m.Indices, base+off)
	}
}

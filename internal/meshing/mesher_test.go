package meshing

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/world"
)

var noNeighbors [world.NumDirections]*world.Chunk

func countNormal(m *ChunkMesh, n mgl32.Vec3) int {
	count := 0
	for i := 0; i < len(m.Normals); i += 4 {
		if m.Normals[i] == n {
			count++
		}
	}
	return count
}

func TestSingleVoxelMesh(t *testing.T) {
	c := world.ChunkFromPoints(world.ChunkPosition{}, [3]int{10, 10, 10})
	m := BuildChunkMesh(c, noNeighbors)

	if m.QuadCount() != 6 {
		t.Fatalf("single voxel: got %d quads, want 6", m.QuadCount())
	}
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("single voxel: got %d vertices / %d indices, want 24 / 36", len(m.Vertices), len(m.Indices))
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestEmitOrderAndIndices(t *testing.T) {
	c := world.ChunkFromPoints(world.ChunkPosition{}, [3]int{1, 2, 3})
	m := BuildChunkMesh(c, noNeighbors)

	for q, d := range world.Directions {
		want := FaceFor(d)[0].Normal
		if got := m.Normals[q*4]; got != want {
			t.Errorf("quad %d normal = %v, want %v (%v)", q, got, want, d)
		}
		for i, off := range QuadIndices {
			if got := m.Indices[q*6+i]; got != uint32(q*4)+off {
				t.Errorf("quad %d index %d = %d, want %d", q, i, got, uint32(q*4)+off)
			}
		}
	}

	// vertices are translated to the voxel's local position
	want := mgl32.Vec3{1.5, 1.5, 3.5}
	if m.Vertices[0] != want {
		t.Errorf("first east vertex = %v, want %v", m.Vertices[0], want)
	}
}

func TestTwoAdjacentVoxels(t *testing.T) {
	c := world.ChunkFromPoints(world.ChunkPosition{}, [3]int{4, 4, 4}, [3]int{5, 4, 4})
	m := BuildChunkMesh(c, noNeighbors)

	if m.QuadCount() != 10 {
		t.Fatalf("two touching voxels: got %d quads, want 10", m.QuadCount())
	}
	if countNormal(m, mgl32.Vec3{1, 0, 0}) != 1 || countNormal(m, mgl32.Vec3{-1, 0, 0}) != 1 {
		t.Error("shared face should be culled on both voxels, outer x faces kept")
	}
}

func TestBoundaryUnknownNeighborDraws(t *testing.T) {
	c := world.ChunkFromPoints(world.ChunkPosition{}, [3]int{world.ChunkSize - 1, 0, 0})
	m := BuildChunkMesh(c, noNeighbors)

	if m.QuadCount() != 6 {
		t.Fatalf("boundary voxel with unknown neighbors: got %d quads, want 6", m.QuadCount())
	}
	if countNormal(m, mgl32.Vec3{1, 0, 0}) != 1 {
		t.Error("+x boundary face should be drawn when the neighbor is unknown")
	}
}

func TestBoundaryCullUnknownPolicy(t *testing.T) {
	c := world.ChunkFromPoints(world.ChunkPosition{}, [3]int{0, 0, 0})
	m := BuildChunkMeshWithPolicy(c, noNeighbors, CullUnknown)

	// -x, -y, -z touch unknown chunks
	if m.QuadCount() != 3 {
		t.Fatalf("corner voxel with CullUnknown: got %d quads, want 3", m.QuadCount())
	}
}

func TestBoundaryKnownNeighborOccludes(t *testing.T) {
	pos := world.ChunkPosition{}
	c := world.ChunkFromPoints(pos, [3]int{world.ChunkSize - 1, 0, 0})
	east := world.ChunkFromPoints(pos.Neighbor(world.East), [3]int{0, 0, 0})

	var neighbors [world.NumDirections]*world.Chunk
	neighbors[world.East] = east
	m := BuildChunkMesh(c, neighbors)

	if m.QuadCount() != 5 {
		t.Fatalf("boundary voxel with solid neighbor: got %d quads, want 5", m.QuadCount())
	}
	if countNormal(m, mgl32.Vec3{1, 0, 0}) != 0 {
		t.Error("+x face should be culled by the neighbor chunk")
	}

	// empty voxel on the other side keeps the face
	neighbors[world.East] = world.ChunkFromPoints(pos.Neighbor(world.East), [3]int{0, 1, 0})
	if got := BuildChunkMesh(c, neighbors).QuadCount(); got != 6 {
		t.Errorf("neighbor with empty mirror voxel: got %d quads, want 6", got)
	}
}

func TestNegativeBoundaryWraps(t *testing.T) {
	pos := world.ChunkPosition{X: -1, Y: -1, Z: -1}
	c := world.ChunkFromPoints(pos, [3]int{3, 0, 7})
	below := world.ChunkFromPoints(pos.Neighbor(world.Down), [3]int{3, world.ChunkSize - 1, 7})

	var neighbors [world.NumDirections]*world.Chunk
	neighbors[world.Down] = below
	m := BuildChunkMesh(c, neighbors)

	if countNormal(m, mgl32.Vec3{0, -1, 0}) != 0 {
		t.Error("-y face should be culled by the chunk below")
	}
	if m.QuadCount() != 5 {
		t.Errorf("got %d quads, want 5", m.QuadCount())
	}
}

func TestSolidChunkOnlyBoundaryFaces(t *testing.T) {
	c := world.SolidChunk(world.ChunkPosition{})
	m := BuildChunkMesh(c, noNeighbors)

	want := 6 * world.ChunkSize * world.ChunkSize
	if m.QuadCount() != want {
		t.Fatalf("solid chunk: got %d quads, want %d", m.QuadCount(), want)
	}
}

func TestEmptyChunkMesh(t *testing.T) {
	c := world.ChunkFromPoints(world.ChunkPosition{X: 4})
	m := BuildChunkMesh(c, noNeighbors)
	if !m.IsEmpty() {
		t.Fatal("empty chunk produced geometry")
	}
	if m.Position != (world.ChunkPosition{X: 4}) {
		t.Errorf("Position = %v", m.Position)
	}
}

func TestValidateDetectsMismatch(t *testing.T) {
	m := BuildChunkMesh(world.ExampleChunk(), noNeighbors)
	if err := m.Validate(); err != nil {
		t.Fatalf("valid mesh rejected: %v", err)
	}
	// three stacked voxels: 4 side faces each + top and bottom
	if m.QuadCount() != 14 {
		t.Errorf("example chunk: got %d quads, want 14", m.QuadCount())
	}

	m.Indices = m.Indices[:len(m.Indices)-1]
	if err := m.Validate(); !errors.Is(err, ErrMalformedMesh) {
		t.Errorf("Validate() = %v, want ErrMalformedMesh", err)
	}
}

func TestInterleaved(t *testing.T) {
	m := BuildChunkMesh(world.ChunkFromPoints(world.ChunkPosition{}, [3]int{0, 0, 0}), noNeighbors)
	data := m.Interleaved()
	if len(data) != len(m.Vertices)*VertexStride {
		t.Fatalf("Interleaved() len = %d, want %d", len(data), len(m.Vertices)*VertexStride)
	}
	if data[3] != 1 || data[6] != 0 || data[7] != 0 {
		t.Errorf("first vertex = %v, want east normal and uv (0,0)", data[:VertexStride])
	}
}

func BenchmarkBuildChunkMesh_Solid(b *testing.B) {
	c := world.SolidChunk(world.ChunkPosition{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildChunkMesh(c, noNeighbors)
	}
}

package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct {
		v, wantChunk, wantLocal int
	}{
		{0, 0, 0},
		{31, 0, 31},
		{32, 1, 0},
		{-1, -1, 31},
		{-32, -1, 0},
		{-33, -2, 31},
	}
	for _, c := range cases {
		chunk, local := SplitLocal(c.v)
		if chunk != c.wantChunk || local != c.wantLocal {
			t.Errorf("SplitLocal(%d) = (%d, %d), want (%d, %d)", c.v, chunk, local, c.wantChunk, c.wantLocal)
		}
	}
}

func TestChunkPositionFromWorld(t *testing.T) {
	cases := []struct {
		in   mgl32.Vec3
		want ChunkPosition
	}{
		{mgl32.Vec3{0, 0, 0}, ChunkPosition{}},
		{mgl32.Vec3{31.9, 32, 64.5}, ChunkPosition{X: 0, Y: 1, Z: 2}},
		{mgl32.Vec3{-0.1, -32, -32.01}, ChunkPosition{X: -1, Y: -1, Z: -2}},
	}
	for _, c := range cases {
		if got := ChunkPositionFromWorld(c.in); got != c.want {
			t.Errorf("ChunkPositionFromWorld(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWorldOrigin(t *testing.T) {
	got := ChunkPosition{X: 1, Y: -2, Z: 3}.WorldOrigin()
	want := mgl32.Vec3{32, -64, 96}
	if got != want {
		t.Errorf("WorldOrigin() = %v, want %v", got, want)
	}
}

func TestNeighborPosition(t *testing.T) {
	p := ChunkPosition{X: 1, Y: 1, Z: 1}
	if got := p.Neighbor(West); got != (ChunkPosition{X: 0, Y: 1, Z: 1}) {
		t.Errorf("Neighbor(West) = %v", got)
	}
	if got := p.Neighbor(North); got != (ChunkPosition{X: 1, Y: 1, Z: 0}) {
		t.Errorf("Neighbor(North) = %v", got)
	}
}

package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/world"
)

// FaceVertex is one corner of a face quad, relative to the voxel centre.
type FaceVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Face is a quad of four corners wound counter-clockwise seen from outside.
type Face [4]FaceVertex

// QuadIndices triangulates a face as (0,1,2) and (2,3,0).
var QuadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

var quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func face(normal mgl32.Vec3, corners [4]mgl32.Vec3) Face {
	var f Face
	for i, c := range corners {
		f[i] = FaceVertex{Position: c, Normal: normal, UV: quadUVs[i]}
	}
	return f
}

// faces is indexed by world.Direction.
var faces = [world.NumDirections]Face{
	world.East: face(mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{
		{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
	}),
	world.West: face(mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
	}),
	world.Up: face(mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{
		{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	}),
	world.Down: face(mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
	}),
	world.South: face(mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}),
	world.North: face(mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{
		{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
	}),
}

// FaceFor returns the quad for direction d.
func FaceFor(d world.Direction) Face {
	return faces[d]
}

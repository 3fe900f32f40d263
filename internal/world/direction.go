package world

import "fmt"

// Direction is one of the six axis-aligned faces of a voxel.
// The declaration order is the order in which faces are emitted by the mesher.
type Direction uint8

const (
	East  Direction = iota // +X
	West                   // -X
	Up                     // +Y
	Down                   // -Y
	South                  // +Z
	North                  // -Z
)

// NumDirections is the number of face directions.
const NumDirections = 6

// Directions lists every direction in canonical order.
var Directions = [NumDirections]Direction{East, West, Up, Down, South, North}

var directionOffsets = [NumDirections][3]int{
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
	South: {0, 0, 1},
	North: {0, 0, -1},
}

var directionNames = [NumDirections]string{"east", "west", "up", "down", "south", "north"}

// Offset returns the unit vector pointing out of the face.
func (d Direction) Offset() [3]int {
	return directionOffsets[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) String() string {
	if int(d) < NumDirections {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionFromOffset maps a unit axis vector to its direction.
// Anything else is a logic error in the caller and panics.
func DirectionFromOffset(dx, dy, dz int) Direction {
	for _, d := range Directions {
		o := directionOffsets[d]
		if o[0] == dx && o[1] == dy && o[2] == dz {
			return d
		}
	}
	panic(fmt.Sprintf("world: (%d,%d,%d) is not an axis-aligned unit offset", dx, dy, dz))
}

// DirectionBetween returns the face of a that touches b.
// It panics if a and b are not face-adjacent.
func DirectionBetween(a, b [3]int) Direction {
	return DirectionFromOffset(b[0]-a[0], b[1]-a[1], b[2]-a[2])
}

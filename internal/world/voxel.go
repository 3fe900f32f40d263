package world

// Voxel is the smallest unit of terrain. It is either occupied or empty.
type Voxel struct {
	Active bool
}

// ActiveVoxel returns an occupied voxel.
func ActiveVoxel() Voxel { return Voxel{Active: true} }

// InactiveVoxel returns an empty voxel.
func InactiveVoxel() Voxel { return Voxel{Active: false} }

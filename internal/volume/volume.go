// Package volume provides a fixed-size dense 3D grid.
package volume

import (
	"fmt"
	"iter"
)

// Index addresses a cell in a Volume. Each component must be in [0, Size).
type Index struct {
	X, Y, Z int
}

// Volume is a cube of Size×Size×Size cells. The side length is fixed at
// construction; there is no way to grow or shrink it.
type Volume[T any] struct {
	size  int
	cells []T
}

// New creates a volume with every cell set to fill.
func New[T any](size int, fill T) *Volume[T] {
	if size <= 0 {
		panic(fmt.Sprintf("volume: invalid size %d", size))
	}
	cells := make([]T, size*size*size)
	for i := range cells {
		cells[i] = fill
	}
	return &Volume[T]{size: size, cells: cells}
}

// FromNested builds a volume from a nested array indexed as data[x][y][z].
// The input must be a cube.
func FromNested[T any](data [][][]T) *Volume[T] {
	size := len(data)
	if size == 0 {
		panic("volume: empty nested array")
	}
	v := &Volume[T]{size: size, cells: make([]T, size*size*size)}
	for x, plane := range data {
		if len(plane) != size {
			panic(fmt.Sprintf("volume: plane x=%d has %d rows, want %d", x, len(plane), size))
		}
		for y, row := range plane {
			if len(row) != size {
				panic(fmt.Sprintf("volume: row (%d,%d) has %d cells, want %d", x, y, len(row), size))
			}
			for z, item := range row {
				v.cells[v.offset(x, y, z)] = item
			}
		}
	}
	return v
}

// Nested returns a copy of the volume as data[x][y][z].
func (v *Volume[T]) Nested() [][][]T {
	out := make([][][]T, v.size)
	for x := range v.size {
		out[x] = make([][]T, v.size)
		for y := range v.size {
			row := make([]T, v.size)
			for z := range v.size {
				row[z] = v.cells[v.offset(x, y, z)]
			}
			out[x][y] = row
		}
	}
	return out
}

// Clone returns an independent copy.
func (v *Volume[T]) Clone() *Volume[T] {
	cells := make([]T, len(v.cells))
	copy(cells, v.cells)
	return &Volume[T]{size: v.size, cells: cells}
}

// Size returns the side length.
func (v *Volume[T]) Size() int {
	return v.size
}

// Len returns the total number of cells.
func (v *Volume[T]) Len() int {
	return len(v.cells)
}

// Contains reports whether idx lies inside the volume.
func (v *Volume[T]) Contains(idx Index) bool {
	return idx.X >= 0 && idx.X < v.size &&
		idx.Y >= 0 && idx.Y < v.size &&
		idx.Z >= 0 && idx.Z < v.size
}

// At returns the cell at idx. It panics if idx is out of range.
func (v *Volume[T]) At(idx Index) T {
	return v.cells[v.mustOffset(idx)]
}

// Ptr returns a pointer to the cell at idx for in-place mutation.
// It panics if idx is out of range.
func (v *Volume[T]) Ptr(idx Index) *T {
	return &v.cells[v.mustOffset(idx)]
}

// Set stores value at idx. It panics if idx is out of range.
func (v *Volume[T]) Set(idx Index, value T) {
	v.cells[v.mustOffset(idx)] = value
}

// Get is the checked accessor: ok is false when idx is out of range.
func (v *Volume[T]) Get(idx Index) (value T, ok bool) {
	if !v.Contains(idx) {
		return value, false
	}
	return v.cells[v.offset(idx.X, idx.Y, idx.Z)], true
}

// All yields every cell with its index, x varying fastest, then y, then z.
func (v *Volume[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		i := 0
		for z := range v.size {
			for y := range v.size {
				for x := range v.size {
					if !yield(Index{x, y, z}, v.cells[i]) {
						return
					}
					i++
				}
			}
		}
	}
}

// Indices yields every index in the same order as All. Use it when the loop
// body mutates the volume.
func (v *Volume[T]) Indices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for z := range v.size {
			for y := range v.size {
				for x := range v.size {
					if !yield(Index{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// String implements fmt.Stringer.
func (v *Volume[T]) String() string {
	return fmt.Sprintf("Volume<%dx%dx%d>", v.size, v.size, v.size)
}

// offset converts coordinates to a flat index (x fastest).
func (v *Volume[T]) offset(x, y, z int) int {
	return x + v.size*(y+v.size*z)
}

func (v *Volume[T]) mustOffset(idx Index) int {
	if !v.Contains(idx) {
		panic(fmt.Sprintf("volume: index (%d,%d,%d) out of range [0,%d)", idx.X, idx.Y, idx.Z, v.size))
	}
	return v.offset(idx.X, idx.Y, idx.Z)
}

package world

import (
	"sync"
	"testing"
)

func TestChunkStoreAddBatch(t *testing.T) {
	cs := NewChunkStore()
	a := SolidChunk(ChunkPosition{})
	b := SolidChunk(ChunkPosition{X: 1})

	cs.AddBatch([]*Chunk{a, b, nil})

	if cs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cs.Len())
	}
	if got, ok := cs.Get(ChunkPosition{X: 1}); !ok || got != b {
		t.Errorf("Get((1,0,0)) = %v, %v", got, ok)
	}
	if cs.Has(ChunkPosition{X: 2}) {
		t.Error("Has((2,0,0)) should be false")
	}
	if cs.ModCount() != 1 {
		t.Errorf("ModCount() = %d, want 1", cs.ModCount())
	}

	// replacing keeps the count
	c := ExampleChunk() // position (1,0,0)
	cs.AddBatch([]*Chunk{c})
	if got, _ := cs.Get(ChunkPosition{X: 1}); got != c {
		t.Error("AddBatch did not replace existing entry")
	}
	if cs.Len() != 2 {
		t.Errorf("Len() after replace = %d, want 2", cs.Len())
	}
}

func TestChunkStoreNeighbors(t *testing.T) {
	cs := NewChunkStore()
	center := ChunkPosition{X: 5, Y: 5, Z: 5}
	east := SolidChunk(center.Neighbor(East))
	down := SolidChunk(center.Neighbor(Down))
	cs.AddBatch([]*Chunk{SolidChunk(center), east, down})

	n := cs.Neighbors(center)
	for _, d := range Directions {
		switch d {
		case East:
			if n[d] != east {
				t.Errorf("neighbor %v = %v, want east chunk", d, n[d])
			}
		case Down:
			if n[d] != down {
				t.Errorf("neighbor %v = %v, want down chunk", d, n[d])
			}
		default:
			if n[d] != nil {
				t.Errorf("neighbor %v should be nil", d)
			}
		}
	}
}

func TestChunkStoreConcurrentReaders(t *testing.T) {
	cs := NewChunkStore()
	var batch []*Chunk
	for x := range 4 {
		batch = append(batch, SolidChunk(ChunkPosition{X: x}))
	}
	cs.AddBatch(batch)

	var wg sync.WaitGroup
	for x := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cs.ViewNeighbors(ChunkPosition{X: x}, func(n [NumDirections]*Chunk) {
				if x > 0 && n[West] == nil {
					t.Errorf("chunk %d missing west neighbor", x)
				}
				if x < 3 && n[East] == nil {
					t.Errorf("chunk %d missing east neighbor", x)
				}
			})
		}()
	}
	wg.Wait()
}

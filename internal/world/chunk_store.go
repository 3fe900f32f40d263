package world

import (
	"sync"
)

// ChunkStore is the shared registry of generated chunks. Readers share the
// lock; a batch commit holds it exclusively until every chunk is visible.
type ChunkStore struct {
	chunks   map[ChunkPosition]*Chunk
	mu       sync.RWMutex
	modCount uint64 // Increases on every committed batch
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkPosition]*Chunk),
	}
}

// Get returns the chunk at pos, if known.
func (cs *ChunkStore) Get(pos ChunkPosition) (*Chunk, bool) {
	cs.mu.RLock()
	c, ok := cs.chunks[pos]
	cs.mu.RUnlock()
	return c, ok
}

// Has checks if a chunk exists.
func (cs *ChunkStore) Has(pos ChunkPosition) bool {
	_, ok := cs.Get(pos)
	return ok
}

// Len returns the number of registered chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// ModCount returns how many batches have been committed.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// Positions returns the positions of all registered chunks in no particular order.
func (cs *ChunkStore) Positions() []ChunkPosition {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]ChunkPosition, 0, len(cs.chunks))
	for pos := range cs.chunks {
		out = append(out, pos)
	}
	return out
}

// AddBatch inserts chunks in a single exclusive commit, replacing any existing
// entry at the same position. Nil entries are skipped.
func (cs *ChunkStore) AddBatch(chunks []*Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for _, c := range chunks {
		if c == nil {
			continue
		}
		cs.chunks[c.Position()] = c
	}
	cs.modCount++
}

// ViewNeighbors calls fn with the six chunks adjacent to pos, indexed by
// Direction (nil where unknown). The shared lock is held while fn runs, so fn
// must not write to the store.
func (cs *ChunkStore) ViewNeighbors(pos ChunkPosition, fn func(neighbors [NumDirections]*Chunk)) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var neighbors [NumDirections]*Chunk
	for _, d := range Directions {
		neighbors[d] = cs.chunks[pos.Neighbor(d)]
	}
	fn(neighbors)
}

// Neighbors returns the six adjacent chunks without holding the lock afterwards.
func (cs *ChunkStore) Neighbors(pos ChunkPosition) [NumDirections]*Chunk {
	var out [NumDirections]*Chunk
	cs.ViewNeighbors(pos, func(n [NumDirections]*Chunk) { out = n })
	return out
}

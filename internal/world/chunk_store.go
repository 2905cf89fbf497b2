package world

import (
	"sync"
)

// ChunkStore holds populated chunks in memory. Nothing here is persisted.
type ChunkStore struct {
	chunks   map[ChunkCoord]*Chunk
	mu       sync.RWMutex
	modCount uint64 // Increases on any chunk add/remove
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at the specified chunk coordinates.
// If the chunk doesn't exist and create is true, it will be created (but NOT populated).
func (cs *ChunkStore) GetChunk(chunkX, chunkZ int, create bool) *Chunk {
	coord := ChunkCoord{X: chunkX, Z: chunkZ}
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if exists || !create {
		return chunk
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	// Double-check: another goroutine might have created it while we were waiting for the lock
	if existing, ok := cs.chunks[coord]; ok {
		return existing
	}
	chunk = NewChunk(chunkX, chunkZ)
	cs.chunks[coord] = chunk
	cs.modCount++
	return chunk
}

// Get returns the block type at the specified world coordinates.
func (cs *ChunkStore) Get(x, y, z int) BlockType {
	chunk := cs.GetChunk(floorDiv(x, ChunkSizeX), floorDiv(z, ChunkSizeZ), false)
	if chunk == nil {
		return BlockTypeAir
	}
	lx := x - chunk.X*ChunkSizeX
	lz := z - chunk.Z*ChunkSizeZ
	return chunk.GetBlock(lx, y, lz)
}

// AddChunk adds a pre-generated chunk to the store. An existing chunk at the
// same coordinate is kept.
func (cs *ChunkStore) AddChunk(chunk *Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	coord := chunk.Coord()
	if _, ok := cs.chunks[coord]; ok {
		return false
	}
	cs.chunks[coord] = chunk
	cs.modCount++
	return true
}

// HasChunk checks if a chunk exists without creating it.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// GetModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) GetModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// EvictFarChunks removes chunks outside the given radius (in chunks) around (cx, cz).
// Returns number of removed chunks.
func (cs *ChunkStore) EvictFarChunks(cx, cz, radius int) int {
	removed := 0
	cs.mu.Lock()
	for coord := range cs.chunks {
		dx := coord.X - cx
		dz := coord.Z - cz
		if dx*dx+dz*dz > radius*radius {
			delete(cs.chunks, coord)
			cs.modCount++
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}

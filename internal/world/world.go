package world

import (
	"context"
	"runtime"
)

// World ties a terrain generator to an in-memory chunk store and fills it
// through a worker pool.
type World struct {
	store *ChunkStore
	gen   TerrainGenerator
	pool  *FillPool
}

// New creates a world backed by gen with one population worker per CPU.
func New(gen TerrainGenerator) *World {
	workers := max(runtime.NumCPU(), 1)
	return &World{
		store: NewChunkStore(),
		gen:   gen,
		pool:  NewFillPool(workers, workers*4),
	}
}

// Close stops the background population workers.
func (w *World) Close() {
	w.pool.Shutdown()
}

// Store exposes the underlying chunk store.
func (w *World) Store() *ChunkStore {
	return w.store
}

// GenerateAround populates every missing chunk within a square radius
// (in chunks) of the chunk containing world block (x, z).
// Returns the number of chunks added.
func (w *World) GenerateAround(ctx context.Context, x, z, radius int) (int, error) {
	cx := floorDiv(x, ChunkSizeX)
	cz := floorDiv(z, ChunkSizeZ)
	return w.pool.PopulateRegion(ctx, w.gen, w.store, cx-radius, cz-radius, cx+radius, cz+radius)
}

// Get returns the block at world coordinates, or air if its chunk is not generated.
func (w *World) Get(x, y, z int) BlockType {
	return w.store.Get(x, y, z)
}

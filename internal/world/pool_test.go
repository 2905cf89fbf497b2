package world

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPopulateRegionFillsEveryChunk(t *testing.T) {
	p, err := StandardGenerator(7)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewFillPool(4, 8)
	defer pool.Shutdown()

	store := NewChunkStore()
	added, err := pool.PopulateRegion(context.Background(), p, store, -3, -2, 2, 3)
	if err != nil {
		t.Fatalf("PopulateRegion: %v", err)
	}
	if added != 36 || store.Len() != 36 {
		t.Fatalf("added %d chunks, store has %d, want 36", added, store.Len())
	}
	for cz := -2; cz <= 3; cz++ {
		for cx := -3; cx <= 2; cx++ {
			got := store.GetChunk(cx, cz, false)
			if got == nil {
				t.Fatalf("chunk (%d, %d) missing", cx, cz)
			}
			want := NewChunk(cx, cz)
			p.PopulateChunk(want)
			if hashChunkBlocks(got) != hashChunkBlocks(want) {
				t.Errorf("parallel chunk (%d, %d) differs from serial population", cx, cz)
			}
		}
	}
}

func TestPopulateRegionEmptyRange(t *testing.T) {
	pool := NewFillPool(1, 1)
	defer pool.Shutdown()
	p, _ := StandardGenerator(1)
	n, err := pool.PopulateRegion(context.Background(), p, NewChunkStore(), 2, 0, 1, 0)
	if n != 0 || err != nil {
		t.Errorf("PopulateRegion on empty range = (%d, %v)", n, err)
	}
}

type blockingGenerator struct{ release chan struct{} }

func (g blockingGenerator) PopulateChunk(c *Chunk) { <-g.release }

func TestPopulateRegionCancel(t *testing.T) {
	pool := NewFillPool(1, 1)
	gen := blockingGenerator{release: make(chan struct{})}
	defer func() {
		close(gen.release)
		pool.Shutdown()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := pool.PopulateRegion(ctx, gen, NewChunkStore(), 0, 0, 3, 3)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("PopulateRegion error = %v, want deadline exceeded", err)
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	pool := NewFillPool(2, 4)
	pool.Shutdown()
	pool.Shutdown() // idempotent
	p, _ := StandardGenerator(1)
	if pool.Submit(FillJob{Generator: p, ResultChan: make(chan FillResult, 1)}) {
		t.Error("Submit succeeded on a shut down pool")
	}
	if pool.Workers() != 2 {
		t.Errorf("Workers() = %d, want 2", pool.Workers())
	}
}

func TestSubmitReturnsResult(t *testing.T) {
	pool := NewFillPool(1, 1)
	defer pool.Shutdown()
	p, _ := StandardGenerator(1)
	results := make(chan FillResult, 1)
	if !pool.Submit(FillJob{Coord: ChunkCoord{X: 5, Z: -5}, Generator: p, ResultChan: results}) {
		t.Fatal("Submit on an idle pool failed")
	}
	select {
	case r := <-results:
		if r.Coord != (ChunkCoord{X: 5, Z: -5}) || r.Chunk.CountBlocks() != ChunkSizeX*ChunkSizeZ {
			t.Errorf("unexpected result %+v", r.Coord)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
	}
}

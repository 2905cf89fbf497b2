package world

import (
	"context"
	"testing"
)

func TestChunkSetGet(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetBlock(3, 40, 7, BlockTypeBrick)
	if b := c.GetBlock(3, 40, 7); b != BlockTypeBrick {
		t.Errorf("GetBlock = %v, want brick", b)
	}
	if !c.IsAir(3, 41, 7) {
		t.Error("neighbor should be air")
	}
	// out of bounds reads are air and writes are ignored
	c.SetBlock(-1, 0, 0, BlockTypeStone)
	c.SetBlock(0, ChunkSizeY, 0, BlockTypeStone)
	if c.GetBlock(-1, 0, 0) != BlockTypeAir || c.CountBlocks() != 1 {
		t.Errorf("out of bounds write changed the chunk, count=%d", c.CountBlocks())
	}
}

func TestChunkClearingFreesSection(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetBlock(0, 17, 0, BlockTypeWool)
	c.SetBlock(1, 17, 0, BlockTypeWool)
	c.SetBlock(0, 17, 0, BlockTypeAir)
	if c.sections[1] == nil {
		t.Fatal("section freed while a block remains")
	}
	c.SetBlock(1, 17, 0, BlockTypeAir)
	if c.sections[1] != nil {
		t.Error("empty section not freed")
	}
	if c.CountBlocks() != 0 {
		t.Errorf("CountBlocks() = %d, want 0", c.CountBlocks())
	}
}

func TestChunkTopBlock(t *testing.T) {
	c := NewChunk(0, 0)
	if _, _, ok := c.TopBlock(2, 2); ok {
		t.Error("empty column reported a top block")
	}
	c.SetBlock(2, 1, 2, BlockTypeStone)
	c.SetBlock(2, 100, 2, BlockTypeGold)
	y, b, ok := c.TopBlock(2, 2)
	if !ok || y != 100 || b != BlockTypeGold {
		t.Errorf("TopBlock = (%d, %v, %v), want (100, gold, true)", y, b, ok)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 16, 0}, {15, 16, 0}, {16, 16, 1}, {-1, 16, -1}, {-16, 16, -1}, {-17, 16, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestChunkStoreWorldCoords(t *testing.T) {
	cs := NewChunkStore()
	c := cs.GetChunk(-1, -1, true)
	c.SetBlock(15, SurfaceY, 15, BlockTypeRedstone)

	if b := cs.Get(-1, SurfaceY, -1); b != BlockTypeRedstone {
		t.Errorf("Get(-1, 1, -1) = %v, want redstone", b)
	}
	if b := cs.Get(1000, SurfaceY, 1000); b != BlockTypeAir {
		t.Errorf("missing chunk read = %v, want air", b)
	}
	if again := cs.GetChunk(-1, -1, true); again != c {
		t.Error("GetChunk created a second chunk for the same coordinate")
	}
	if cs.AddChunk(NewChunk(-1, -1)) {
		t.Error("AddChunk replaced an existing chunk")
	}
	if !cs.HasChunk(ChunkCoord{X: -1, Z: -1}) || cs.Len() != 1 {
		t.Errorf("store state wrong: len=%d", cs.Len())
	}
}

func TestChunkStoreEvict(t *testing.T) {
	cs := NewChunkStore()
	for x := -5; x <= 5; x++ {
		cs.AddChunk(NewChunk(x, 0))
	}
	before := cs.GetModCount()
	removed := cs.EvictFarChunks(0, 0, 2)
	if removed != 6 || cs.Len() != 5 {
		t.Errorf("EvictFarChunks removed %d, left %d", removed, cs.Len())
	}
	if cs.GetModCount() != before+6 {
		t.Errorf("mod count = %d, want %d", cs.GetModCount(), before+6)
	}
}

func TestWorldGenerateAround(t *testing.T) {
	p, err := StandardGenerator(1)
	if err != nil {
		t.Fatal(err)
	}
	w := New(p)
	defer w.Close()

	added, err := w.GenerateAround(context.Background(), -1, -1, 1)
	if err != nil {
		t.Fatalf("GenerateAround: %v", err)
	}
	if added != 9 || w.Store().Len() != 9 {
		t.Errorf("added %d chunks, store has %d, want 9", added, w.Store().Len())
	}
	if b := w.Get(0, SurfaceY, 0); b != BlockTypeStone {
		t.Errorf("Get(0, 1, 0) = %v, want stone", b)
	}
	// regenerating the same area keeps the existing chunks
	again, err := w.GenerateAround(context.Background(), -1, -1, 1)
	if err != nil || again != 0 {
		t.Errorf("second GenerateAround = (%d, %v), want (0, nil)", again, err)
	}
}

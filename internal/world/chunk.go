package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	// Section dimensions
	SectionHeight = 16
	NumSections   = ChunkSizeY / SectionHeight
	SectionVolume = ChunkSizeX * SectionHeight * ChunkSizeZ
)

// ChunkCoord addresses a full-height chunk column.
type ChunkCoord struct {
	X, Z int
}

// Section is a 16x16x16 sub-volume. Blocks are allocated on first non-air write.
type Section struct {
	blocks []BlockType
	count  int // non-air blocks
}

// Chunk is a 16x256x16 column of blocks.
type Chunk struct {
	X, Z     int
	sections [NumSections]*Section
	dirty    bool
}

// NewChunk creates an empty chunk at the specified chunk coordinates
func NewChunk(x, z int) *Chunk {
	return &Chunk{X: x, Z: z, dirty: true}
}

// Coord returns the chunk's column coordinate.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Z: c.Z}
}

// WorldOrigin returns the world block coordinates of local (0, 0).
func (c *Chunk) WorldOrigin() (int, int) {
	return c.X * ChunkSizeX, c.Z * ChunkSizeZ
}

// indexInSection converts local section coordinates (x, localY, z) → flat index
func indexInSection(x, localY, z int) int {
	return x*SectionHeight*ChunkSizeZ + localY*ChunkSizeZ + z
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block type at the specified local coordinates
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	sec := c.sections[y/SectionHeight]
	if sec == nil || sec.blocks == nil {
		return BlockTypeAir
	}
	return sec.blocks[indexInSection(x, y%SectionHeight, z)]
}

// SetBlock sets the block type at the specified local coordinates
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !inBounds(x, y, z) {
		return
	}
	secIdx := y / SectionHeight
	idx := indexInSection(x, y%SectionHeight, z)
	sec := c.sections[secIdx]

	if blockType == BlockTypeAir {
		if sec == nil || sec.blocks[idx] == BlockTypeAir {
			return
		}
		sec.blocks[idx] = BlockTypeAir
		sec.count--
		c.dirty = true
		if sec.count == 0 {
			c.sections[secIdx] = nil
		}
		return
	}

	if sec == nil {
		sec = &Section{blocks: make([]BlockType, SectionVolume)}
		c.sections[secIdx] = sec
	}
	old := sec.blocks[idx]
	if old == blockType {
		return
	}
	if old == BlockTypeAir {
		sec.count++
	}
	sec.blocks[idx] = blockType
	c.dirty = true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// IsDirty returns whether the chunk has been modified since it was last marked clean
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.dirty = false
}

// TopBlock scans a column from the top down and returns the highest non-air block.
func (c *Chunk) TopBlock(x, z int) (y int, b BlockType, ok bool) {
	for secIdx := NumSections - 1; secIdx >= 0; secIdx-- {
		if c.sections[secIdx] == nil {
			continue
		}
		for ly := SectionHeight - 1; ly >= 0; ly-- {
			y := secIdx*SectionHeight + ly
			if b := c.GetBlock(x, y, z); b != BlockTypeAir {
				return y, b, true
			}
		}
	}
	return 0, BlockTypeAir, false
}

// CountBlocks returns the number of non-air blocks in the chunk.
func (c *Chunk) CountBlocks() int {
	n := 0
	for _, sec := range c.sections {
		if sec != nil {
			n += sec.count
		}
	}
	return n
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package world

import (
	"fmt"

	"metropolis/internal/noise"
	"metropolis/internal/profiling"
)

// SurfaceY is the layer the Voronoi populator writes into.
const SurfaceY = 1

// TerrainGenerator fills chunks with blocks.
type TerrainGenerator interface {
	PopulateChunk(c *Chunk)
}

// Sampler is the part of a noise generator the populator needs.
type Sampler interface {
	Sample(x, z float64) noise.Sample
}

// VoronoiPopulator lays one block per column, chosen by the Voronoi cell the
// column falls in. Every column of a cell receives the same block.
type VoronoiPopulator struct {
	noise   Sampler
	palette *noise.Palette[BlockType]
}

// NewVoronoiPopulator creates a populator over the given category list.
func NewVoronoiPopulator(sampler Sampler, blocks []BlockType) (*VoronoiPopulator, error) {
	if sampler == nil {
		return nil, fmt.Errorf("%w: nil sampler", noise.ErrConfiguration)
	}
	palette, err := noise.NewPalette(blocks...)
	if err != nil {
		return nil, err
	}
	return &VoronoiPopulator{noise: sampler, palette: palette}, nil
}

// BlockAt returns the block the populator places at world column (x, z).
func (p *VoronoiPopulator) BlockAt(x, z int) BlockType {
	return p.palette.Pick(p.noise.Sample(float64(x), float64(z)).Field)
}

// PopulateChunk writes the surface layer for every column of the chunk.
func (p *VoronoiPopulator) PopulateChunk(c *Chunk) {
	defer profiling.Track("world.PopulateChunk")()
	ox, oz := c.WorldOrigin()
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			c.SetBlock(lx, SurfaceY, lz, p.BlockAt(ox+lx, oz+lz))
		}
	}
	c.dirty = true
}

// StandardGenerator produces the legacy city world generation: frequency 0.1,
// sum metric, legacy offsets, city block palette.
func StandardGenerator(seed int64) (*VoronoiPopulator, error) {
	g, err := noise.New(seed, 0.1, noise.Sum, noise.WithOffsetMode(noise.OffsetsLegacy))
	if err != nil {
		return nil, err
	}
	return NewVoronoiPopulator(g, CityBlocks)
}

package noise

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// searchRadius is the number of cells scanned on each side of the query cell.
// Offsets never leave (-1, 1], so a 5x5 window always holds the nearest point.
const searchRadius = 2

// maxDistance seeds the running minimum. Any real candidate is smaller.
const maxDistance = 32000000.0

// OffsetMode selects how feature-point offsets are derived from the hash.
type OffsetMode int

const (
	// OffsetsPure keys both axes with the same hash and distinct seeds
	// and keeps offsets in [0, 1). Cell quantization is math.Floor.
	OffsetsPure OffsetMode = iota
	// OffsetsLegacy reproduces the output of the Java generator: offsets
	// in (-1, 1], the z axis keyed by a java.util.Random draw, and the
	// cast-based cell quantization.
	OffsetsLegacy
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetsPure:
		return "pure"
	case OffsetsLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("OffsetMode(%d)", int(m))
	}
}

// CellCoord identifies a unit cell of the frequency-scaled grid.
type CellCoord struct {
	X, Z int32
}

// Sample is the result of one noise query.
type Sample struct {
	// Field is the hash of the winning cell, in [-1, 1].
	Field float64
	// Distance is the metric value of the winning candidate, unnormalized.
	Distance float64
}

// Feature is the winning candidate of a neighborhood search.
type Feature struct {
	Cell     CellCoord
	Point    mgl64.Vec2
	Distance float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithOffsetMode selects the offset derivation. The default is OffsetsPure.
func WithOffsetMode(mode OffsetMode) Option {
	return func(g *Generator) { g.mode = mode }
}

// Generator produces seeded Voronoi cell noise. It is immutable after New
// and safe for concurrent use.
type Generator struct {
	seed      int64
	frequency float64
	metric    DistanceFunc
	mode      OffsetMode

	zSeed   int64
	offset  func(cx, cz int32) mgl64.Vec2
	cellFor func(v float64) int32
}

// New creates a generator. frequency must be finite and positive.
func New(seed int64, frequency float64, metric DistanceFunc, opts ...Option) (*Generator, error) {
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return nil, fmt.Errorf("%w: frequency must be finite and > 0, got %v", ErrConfiguration, frequency)
	}
	if metric == nil {
		return nil, fmt.Errorf("%w: distance metric is nil", ErrConfiguration)
	}

	g := &Generator{
		seed:      seed,
		frequency: frequency,
		metric:    metric,
	}
	for _, opt := range opts {
		opt(g)
	}

	switch g.mode {
	case OffsetsPure:
		g.zSeed = mixAxisSeed(seed)
		g.offset = g.pureOffset
		g.cellFor = floorCell
	case OffsetsLegacy:
		g.zSeed = legacyAxisSeed(seed)
		g.offset = g.legacyOffset
		g.cellFor = legacyCell
	default:
		return nil, fmt.Errorf("%w: unknown offset mode %v", ErrConfiguration, g.mode)
	}
	return g, nil
}

func (g *Generator) Seed() int64 { return g.seed }

func (g *Generator) Frequency() float64 { return g.frequency }

func (g *Generator) OffsetMode() OffsetMode { return g.mode }

func (g *Generator) pureOffset(cx, cz int32) mgl64.Vec2 {
	return mgl64.Vec2{unitNoise2D(cx, cz, g.seed), unitNoise2D(cx, cz, g.zSeed)}
}

func (g *Generator) legacyOffset(cx, cz int32) mgl64.Vec2 {
	return mgl64.Vec2{valueNoise2D(cx, cz, g.seed), valueNoise2D(cx, cz, g.zSeed)}
}

// FeaturePoint returns the feature point of a cell in scaled grid space.
func (g *Generator) FeaturePoint(c CellCoord) mgl64.Vec2 {
	off := g.offset(c.X, c.Z)
	return mgl64.Vec2{float64(c.X) + off[0], float64(c.Z) + off[1]}
}

// Nearest runs the neighborhood search for a source-space position.
// It reports false when no candidate compared below the sentinel, which
// only happens for non-finite input or a metric that returns NaN.
func (g *Generator) Nearest(x, z float64) (Feature, bool) {
	// Explicit conversions keep the scaled query rounded so it cannot be
	// fused with later arithmetic on any architecture.
	q := mgl64.Vec2{float64(x * g.frequency), float64(z * g.frequency)}
	return search(q, g.cellFor(q[0]), g.cellFor(q[1]), g.offset, g.metric)
}

// Sample returns the cell value and distance at a source-space position.
func (g *Generator) Sample(x, z float64) Sample {
	f, ok := g.Nearest(x, z)
	if !ok {
		return Sample{Field: math.NaN(), Distance: math.NaN()}
	}
	cx := toInt32(math.Floor(f.Point[0]))
	cz := toInt32(math.Floor(f.Point[1]))
	return Sample{Field: valueNoise2D(cx, cz, g.seed), Distance: f.Distance}
}

// search scans the (2*searchRadius+1)^2 window around (qx, qz) in raster
// order, z outer and x inner. Strict comparison keeps the first of equal
// candidates. Loops run over relative offsets so a window at the edge of the
// int32 range wraps instead of spinning forever.
func search(q mgl64.Vec2, qx, qz int32, offset func(cx, cz int32) mgl64.Vec2, metric DistanceFunc) (Feature, bool) {
	best := Feature{Distance: maxDistance}
	found := false
	for dz := int32(-searchRadius); dz <= searchRadius; dz++ {
		cz := qz + dz
		for dx := int32(-searchRadius); dx <= searchRadius; dx++ {
			cx := qx + dx
			off := offset(cx, cz)
			p := mgl64.Vec2{float64(cx) + off[0], float64(cz) + off[1]}
			d := metric(p[0]-q[0], p[1]-q[1])
			if d < best.Distance {
				best = Feature{Cell: CellCoord{cx, cz}, Point: p, Distance: d}
				found = true
			}
		}
	}
	return best, found
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"

	"metropolis/internal/config"
	"metropolis/internal/noise"
	"metropolis/internal/profiling"
	"metropolis/internal/render"
	"metropolis/internal/world"

	"github.com/xlab/closer"
)

const usage = `usage: metropolis <command> [flags] [args]

commands:
  sample   x z [x z ...]   print field, distance and block for each point
  render                   write a PNG preview of the cell layout
  populate                 generate chunks around the origin and count blocks
`

var errUsage = errors.New("invalid usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("metropolis: ")

	closer.Bind(func() {
		if top := profiling.TopN(5); top != "" {
			log.Printf("profile: %s", top)
		}
	})
	closer.Checked(func() error { return run(os.Args[1:], os.Stdout) }, true)
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "sample":
		return runSample(args, out)
	case "render":
		return runRender(args, out)
	case "populate":
		return runPopulate(args, out)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// worldGenFlags registers the shared generation flags, seeded from config defaults.
func worldGenFlags(fs *flag.FlagSet) func() {
	seed := fs.Int64("seed", config.GetSeed(), "world seed")
	freq := fs.Float64("freq", config.GetFrequency(), "cell frequency (cells per block)")
	metric := fs.String("metric", config.GetMetric(), fmt.Sprintf("distance metric %v", noise.MetricNames()))
	pure := fs.Bool("pure", false, "use pure [0,1) offsets instead of the legacy derivation")
	return func() {
		config.SetSeed(*seed)
		config.SetFrequency(*freq)
		config.SetMetric(*metric)
		if *pure {
			config.SetOffsetMode(noise.OffsetsPure)
		} else {
			config.SetOffsetMode(noise.OffsetsLegacy)
		}
	}
}

func runSample(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	apply := worldGenFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	apply()

	points := fs.Args()
	if len(points) == 0 || len(points)%2 != 0 {
		return fmt.Errorf("%w: sample needs x z pairs", errUsage)
	}
	gen, err := config.NewGenerator()
	if err != nil {
		return err
	}
	palette, err := noise.NewPalette(world.CityBlocks...)
	if err != nil {
		return err
	}

	for i := 0; i < len(points); i += 2 {
		x, err := strconv.ParseFloat(points[i], 64)
		if err != nil {
			return fmt.Errorf("parse x %q: %w", points[i], err)
		}
		z, err := strconv.ParseFloat(points[i+1], 64)
		if err != nil {
			return fmt.Errorf("parse z %q: %w", points[i+1], err)
		}
		s := gen.Sample(x, z)
		fmt.Fprintf(out, "%g\t%g\t%v\t%v\t%v\n", x, z,
			strconv.FormatFloat(s.Field, 'g', -1, 64),
			strconv.FormatFloat(s.Distance, 'g', -1, 64),
			palette.Pick(s.Field))
	}
	return nil
}

func runRender(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	apply := worldGenFlags(fs)
	path := fs.String("out", "preview.png", "output PNG path")
	size := fs.Int("size", config.GetPreviewSize(), "image edge length in pixels")
	zoom := fs.Int("zoom", config.GetPreviewZoom(), "source blocks per pixel")
	shaded := fs.Bool("shaded", config.GetPreviewShaded(), "darken pixels by feature distance")
	upscale := fs.Int("upscale", 1, "integer upscale factor applied after sampling")
	legend := fs.Bool("legend", true, "draw a block legend")
	x := fs.Int("x", 0, "source x at the image center")
	z := fs.Int("z", 0, "source z at the image center")
	if err := fs.Parse(args); err != nil {
		return err
	}
	apply()
	config.SetPreviewSize(*size)
	config.SetPreviewZoom(*zoom)
	config.SetPreviewShaded(*shaded)

	gen, err := config.NewGenerator()
	if err != nil {
		return err
	}
	palette, err := noise.NewPalette(world.CityBlocks...)
	if err != nil {
		return err
	}

	edge, step := config.GetPreviewSize(), config.GetPreviewZoom()
	img := render.Raster(gen, palette, render.Options{
		OriginX: *x - edge/2*step,
		OriginZ: *z - edge/2*step,
		Width:   edge,
		Height:  edge,
		Zoom:    step,
		Shaded:  config.GetPreviewShaded(),
	})
	img = render.Upscale(img, *upscale)

	if *legend {
		face, err := render.NewFace(12)
		if err != nil {
			return err
		}
		defer face.Close()
		entries := make([]render.LegendEntry, 0, len(world.CityBlocks))
		for _, b := range world.CityBlocks {
			entries = append(entries, render.LegendEntry{Color: world.GetBlockColor(b), Label: b.String()})
		}
		render.DrawLegend(img, face, entries)
	}

	f, err := os.Create(*path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	fmt.Fprintf(out, "wrote %s (%dx%d)\n", *path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func runPopulate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("populate", flag.ContinueOnError)
	apply := worldGenFlags(fs)
	radius := fs.Int("radius", 4, "chunk radius around the origin")
	modifierID := fs.String("modifier", "", "world modifier ID; empty uses the flags above")
	if err := fs.Parse(args); err != nil {
		return err
	}
	apply()

	var gen world.TerrainGenerator
	if *modifierID != "" {
		m, err := world.NewRegistry().Lookup(*modifierID)
		if err != nil {
			return err
		}
		if gen, err = m.ModifyWorldGenerator(config.GetSeed()); err != nil {
			return err
		}
	} else {
		sampler, err := config.NewGenerator()
		if err != nil {
			return err
		}
		if gen, err = world.NewVoronoiPopulator(sampler, world.CityBlocks); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := world.New(gen)
	defer w.Close()
	added, err := w.GenerateAround(ctx, 0, 0, *radius)
	if err != nil {
		return err
	}

	counts := make(map[world.BlockType]int)
	for cz := -*radius; cz <= *radius; cz++ {
		for cx := -*radius; cx <= *radius; cx++ {
			c := w.Store().GetChunk(cx, cz, false)
			if c == nil {
				continue
			}
			for lx := 0; lx < world.ChunkSizeX; lx++ {
				for lz := 0; lz < world.ChunkSizeZ; lz++ {
					if _, b, ok := c.TopBlock(lx, lz); ok {
						counts[b]++
					}
				}
			}
		}
	}
	blocks := make([]world.BlockType, 0, len(counts))
	for b := range counts {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i] < blocks[j] })

	fmt.Fprintf(out, "populated %d chunks\n", added)
	for _, b := range blocks {
		fmt.Fprintf(out, "%-18s %d\n", b, counts[b])
	}
	return nil
}

package render

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"metropolis/internal/noise"
	"metropolis/internal/profiling"
	"metropolis/internal/world"
)

// Options describes the source-space window a raster covers.
type Options struct {
	// OriginX and OriginZ are the source coordinates of the top-left pixel.
	OriginX, OriginZ int
	Width, Height    int
	// Zoom is the number of source blocks per pixel along each axis.
	Zoom int
	// Shaded darkens pixels by their feature distance.
	Shaded bool
}

// Raster colors each pixel by the block the palette assigns to its cell.
// Rows are sampled in parallel; the result does not depend on scheduling.
func Raster(sampler world.Sampler, palette *noise.Palette[world.BlockType], opts Options) *image.RGBA {
	defer profiling.Track("render.Raster")()
	zoom := max(opts.Zoom, 1)
	width, height := max(opts.Width, 0), max(opts.Height, 0)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rows := make(chan int, height)
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for n := max(runtime.NumCPU(), 1); n > 0; n-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				z := float64(opts.OriginZ + y*zoom)
				for px := 0; px < width; px++ {
					x := float64(opts.OriginX + px*zoom)
					s := sampler.Sample(x, z)
					c := world.GetBlockColor(palette.Pick(s.Field))
					if opts.Shaded {
						c = shade(c, s.Distance)
					}
					img.SetRGBA(px, y, c)
				}
			}
		}()
	}
	wg.Wait()
	return img
}

// shade scales a color toward half brightness as |distance| grows to 1.
// Distance is unnormalized, so this reads best with the Euclidean metrics.
func shade(c color.RGBA, distance float64) color.RGBA {
	if math.IsNaN(distance) {
		return c
	}
	k := 1 - 0.5*math.Min(math.Abs(distance), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

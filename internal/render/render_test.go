package render

import (
	"image"
	"image/color"
	"testing"

	"metropolis/internal/noise"
	"metropolis/internal/world"
)

func testPalette(t *testing.T) *noise.Palette[world.BlockType] {
	t.Helper()
	p, err := noise.NewPalette(world.CityBlocks...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRasterMatchesPopulator(t *testing.T) {
	g, err := noise.New(1, 0.1, noise.Sum, noise.WithOffsetMode(noise.OffsetsLegacy))
	if err != nil {
		t.Fatal(err)
	}
	pop, err := world.NewVoronoiPopulator(g, world.CityBlocks)
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{OriginX: -20, OriginZ: -10, Width: 40, Height: 30, Zoom: 2}
	img := Raster(g, testPalette(t), opts)
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			b := pop.BlockAt(opts.OriginX+x*opts.Zoom, opts.OriginZ+y*opts.Zoom)
			if got, want := img.RGBAAt(x, y), world.GetBlockColor(b); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v (%v)", x, y, got, want, b)
			}
		}
	}
}

func TestRasterShadedIsDeterministic(t *testing.T) {
	g, _ := noise.New(9, 0.05, noise.Euclidean)
	opts := Options{Width: 32, Height: 32, Zoom: 1, Shaded: true}
	a := Raster(g, testPalette(t), opts)
	b := Raster(g, testPalette(t), opts)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("shaded rasters differ at byte %d", i)
		}
	}
}

func TestRasterEmpty(t *testing.T) {
	g, _ := noise.New(1, 0.1, noise.Sum)
	img := Raster(g, testPalette(t), Options{Width: -1, Height: 0})
	if !img.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", img.Bounds())
	}
}

func TestShade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := shade(c, 0); got != c {
		t.Errorf("shade at distance 0 = %v", got)
	}
	if got := shade(c, 5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("shade at distance 5 = %v", got)
	}
}

func TestUpscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})
	dst := Upscale(src, 3)
	if dst.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
	if dst.RGBAAt(2, 2) != (color.RGBA{255, 0, 0, 255}) || dst.RGBAAt(3, 0) != (color.RGBA{0, 0, 255, 255}) {
		t.Error("nearest-neighbor upscale blended or shifted pixels")
	}
	if Upscale(src, 1) != src {
		t.Error("factor 1 should return the source image")
	}
}

func TestDrawLegend(t *testing.T) {
	face, err := NewFace(12)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	entries := []LegendEntry{
		{Color: world.GetBlockColor(world.BlockTypeGold), Label: "gold_block"},
		{Color: world.GetBlockColor(world.BlockTypeDirt), Label: "dirt"},
	}
	box := DrawLegend(dst, face, entries)
	if box.Empty() || box.Min != (image.Point{}) {
		t.Fatalf("legend box = %v", box)
	}
	if got := dst.RGBAAt(legendPadding+1, legendPadding+1); got != entries[0].Color {
		t.Errorf("first swatch pixel = %v, want %v", got, entries[0].Color)
	}
	if DrawLegend(dst, face, nil) != (image.Rectangle{}) {
		t.Error("empty legend should draw nothing")
	}
}

package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LegendEntry is one swatch and its label.
type LegendEntry struct {
	Color color.RGBA
	Label string
}

const (
	legendPadding = 4
	swatchSize    = 10
)

// NewFace loads the embedded Go Regular font at the given pixel size.
func NewFace(pixels float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// DrawLegend paints a boxed legend in the top-left corner of dst and returns
// the rectangle it covered.
func DrawLegend(dst draw.Image, face font.Face, entries []LegendEntry) image.Rectangle {
	if len(entries) == 0 {
		return image.Rectangle{}
	}
	metrics := face.Metrics()
	lineH := max(metrics.Height.Ceil(), swatchSize) + 2

	textW := 0
	for _, e := range entries {
		textW = max(textW, font.MeasureString(face, e.Label).Ceil())
	}
	box := image.Rect(0, 0,
		legendPadding*3+swatchSize+textW,
		legendPadding*2+lineH*len(entries),
	).Intersect(dst.Bounds())

	draw.Draw(dst, box, image.NewUniform(color.RGBA{0, 0, 0, 180}), image.Point{}, draw.Over)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(color.White), Face: face}
	for i, e := range entries {
		top := legendPadding + i*lineH
		sw := image.Rect(legendPadding, top, legendPadding+swatchSize, top+swatchSize)
		draw.Draw(dst, sw.Intersect(box), image.NewUniform(e.Color), image.Point{}, draw.Src)

		d.Dot = fixed.P(legendPadding*2+swatchSize, top+metrics.Ascent.Ceil())
		d.DrawString(e.Label)
	}
	return box
}

// Upscale enlarges src by an integer factor with nearest-neighbor sampling,
// keeping cell edges crisp.
func Upscale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

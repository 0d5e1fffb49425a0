// Package preview rasterizes polylines into a grayscale image, to check a
// conversion by eye before sending it to a plotter.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/mindera-gaming/svg2polylines/svg"
)

// Options controls the rendered image
type Options struct {
	// Width of the image in pixels. The height follows the aspect ratio of
	// the drawing.
	Width int
	// StrokeWidth in pixels
	StrokeWidth float64
	// Margin around the drawing in pixels
	Margin int
}

// DefaultOptions returns the options used by the command line tool
func DefaultOptions() Options {
	return Options{
		Width:       512,
		StrokeWidth: 1.5,
		Margin:      8,
	}
}

// bounds returns the bounding box of every point of lines
func bounds(lines []svg.Polyline) (minPt, maxPt svg.Point, ok bool) {
	minPt = svg.Pt(math.Inf(1), math.Inf(1))
	maxPt = svg.Pt(math.Inf(-1), math.Inf(-1))
	for _, line := range lines {
		for _, p := range line {
			minPt = svg.Pt(math.Min(minPt.X, p.X), math.Min(minPt.Y, p.Y))
			maxPt = svg.Pt(math.Max(maxPt.X, p.X), math.Max(maxPt.Y, p.Y))
			ok = true
		}
	}
	return minPt, maxPt, ok
}

// Render draws lines black on white, scaled to fit the image width
func Render(lines []svg.Polyline, opts Options) *image.Gray {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	inner := float64(opts.Width - 2*opts.Margin)
	if inner <= 0 {
		inner = float64(opts.Width)
		opts.Margin = 0
	}

	minPt, maxPt, ok := bounds(lines)
	scale := 1.0
	height := opts.Width
	if ok {
		w := maxPt.X - minPt.X
		h := maxPt.Y - minPt.Y
		if extent := math.Max(w, h); extent > 0 {
			scale = inner / extent
		}
		height = int(math.Ceil(h*scale)) + 2*opts.Margin
		height = max(height, 1)
	}

	dst := image.NewGray(image.Rect(0, 0, opts.Width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	z := vector.NewRasterizer(opts.Width, height)
	half := opts.StrokeWidth / 2
	project := func(p svg.Point) svg.Point {
		return svg.Pt(
			(p.X-minPt.X)*scale+float64(opts.Margin),
			(p.Y-minPt.Y)*scale+float64(opts.Margin),
		)
	}
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			strokeSegment(z, project(line[i-1]), project(line[i]), half)
		}
	}

	mask := image.NewAlpha(dst.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, mask, image.Point{}, draw.Over)

	return dst
}

// strokeSegment adds the rectangle covering the segment [a, b] with the
// given half width. All rectangles share one winding so overlaps add up.
func strokeSegment(z *vector.Rasterizer, a, b svg.Point, half float64) {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	n := svg.Pt(-d.Y/length*half, d.X/length*half)

	// extend the ends so joints between segments are covered
	e := d.Mul(half / length)
	a = a.Sub(e)
	b = b.Add(e)

	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
}

// WritePNG renders lines and encodes the image as PNG
func WritePNG(w io.Writer, lines []svg.Polyline, opts Options) error {
	return png.Encode(w, Render(lines, opts))
}

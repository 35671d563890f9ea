// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package plot rasterizes geom primitives into an RGBA image.
//
// A Canvas maps a window of world coordinates onto its pixels with y
// pointing up. Outlines are shaded from the signed distance that each
// primitive reports for a pixel center. Filled shapes go through the
// golang.org/x/image/vector rasterizer.
//
// [Affine] only maps world coordinates to pixels for a Canvas. It is not a
// general matrix type and is not part of the geom geometry API.
//
//	c := plot.New(400, 400, plot.WithWindow(geom.Rect(-2.0, -2, 2, 2)))
//	defer c.Close()
//	c.Circle(geom.UnitCircle[float64]())
//	_ = c.SavePNG("circle.png")
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/parallel"
)

// markerRadius is the radius in pixels of the disk drawn by Point.
const markerRadius = 3.0

// Canvas is a raster target for 2D primitives.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img     *image.RGBA
	opts    options
	toPixel Affine
	toWorld Affine
	scale   float64
	color   color.Color
	stroke  float64
	pool    *parallel.Pool
}

// New creates a canvas of the given size in pixels, cleared to the
// background color.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions(width, height)
	for _, opt := range opts {
		opt(&o)
	}

	size := o.window.Size()
	if !(size.X > 0 && size.Y > 0) || math.IsInf(size.X, 0) || math.IsInf(size.Y, 0) {
		geom.Logger().Debug("plot: ignoring degenerate window", "window", o.window)
		o.window = defaultOptions(width, height).window
	}

	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		opts:   o,
		color:  color.Black,
		stroke: o.strokeWidth,
		pool:   parallel.NewPool(o.workers),
	}
	c.toPixel = Viewport(o.window, width, height)
	c.toWorld, _ = c.toPixel.Invert()
	c.scale = c.toPixel.A
	c.Clear()
	return c
}

// Close releases the shading workers. The canvas image stays valid.
func (c *Canvas) Close() {
	c.pool.Close()
}

// Image returns the canvas pixels. The image is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Transform returns the world-to-pixel transformation.
func (c *Canvas) Transform() Affine {
	return c.toPixel
}

// ToPixel maps a world point to pixel coordinates.
func (c *Canvas) ToPixel(p geom.Point2D[float64]) geom.Point2D[float64] {
	return c.toPixel.Point(p)
}

// ToWorld maps pixel coordinates to a world point.
func (c *Canvas) ToWorld(p geom.Point2D[float64]) geom.Point2D[float64] {
	return c.toWorld.Point(p)
}

// SetColor sets the color used by subsequent drawing calls.
func (c *Canvas) SetColor(col color.Color) {
	c.color = col
}

// SetStrokeWidth sets the outline width in pixels.
func (c *Canvas) SetStrokeWidth(px float64) {
	c.stroke = px
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.background), image.Point{}, draw.Src)
}

// Circle strokes the outline of ci.
func (c *Canvas) Circle(ci geom.Circle[float64]) {
	if !finitePoint(ci.C) || !(ci.R >= 0) || math.IsInf(ci.R, 0) {
		geom.Logger().Debug("plot: skipping degenerate circle", "circle", ci)
		return
	}
	pc := geom.Circle[float64]{C: c.toPixel.Point(ci.C), R: ci.R * c.scale}
	hw := c.stroke / 2
	c.shade(around(pc.C, pc.R+hw), func(p geom.Point2D[float64]) float64 {
		return strokeCoverage(pc.SignedDistanceToCurve(p), hw)
	})
}

// FillCircle fills the disk bounded by ci.
func (c *Canvas) FillCircle(ci geom.Circle[float64]) {
	if !finitePoint(ci.C) || !(ci.R >= 0) || math.IsInf(ci.R, 0) {
		geom.Logger().Debug("plot: skipping degenerate circle", "circle", ci)
		return
	}
	pc := geom.Circle[float64]{C: c.toPixel.Point(ci.C), R: ci.R * c.scale}
	n := max(16, int(math.Ceil(2*math.Pi*pc.R/2)))
	pts := make([]geom.Point2D[float64], n)
	for i := range pts {
		pts[i] = pc.At(2 * math.Pi * float64(i) / float64(n))
	}
	c.fill(pts)
}

// Line strokes the infinite line l across the whole canvas.
func (c *Canvas) Line(l geom.Line2D[float64]) {
	if !finitePoint(l.P) || !finiteVector(l.Direction()) {
		geom.Logger().Debug("plot: skipping degenerate line", "line", l)
		return
	}
	pl := geom.NewLine2D(c.toPixel.Point(l.P), c.toPixel.Vector(l.Direction()))
	hw := c.stroke / 2
	c.shade(c.img.Bounds(), func(p geom.Point2D[float64]) float64 {
		return strokeCoverage(pl.DistanceToCurve(p), hw)
	})
}

// Segment strokes s.
func (c *Canvas) Segment(s geom.Segment2D[float64]) {
	if !finitePoint(s.P1) || !finitePoint(s.P2) {
		geom.Logger().Debug("plot: skipping degenerate segment", "segment", s)
		return
	}
	ps := geom.Seg2(c.toPixel.Point(s.P1), c.toPixel.Point(s.P2))
	hw := c.stroke / 2
	b := ps.Bounds()
	r := around(b.P1, hw).Union(around(b.P2, hw))
	c.shade(r, func(p geom.Point2D[float64]) float64 {
		return strokeCoverage(ps.DistanceTo(p), hw)
	})
}

// Rect strokes the outline of r.
func (c *Canvas) Rect(r geom.Rect2D[float64]) {
	k := r.Canon()
	corners := []geom.Point2D[float64]{k.P1, geom.Pt2(k.P2.X, k.P1.Y), k.P2, geom.Pt2(k.P1.X, k.P2.Y)}
	for i, p := range corners {
		c.Segment(geom.Seg2(p, corners[(i+1)%len(corners)]))
	}
}

// FillRect fills r.
func (c *Canvas) FillRect(r geom.Rect2D[float64]) {
	k := r.Canon()
	c.FillPolygon([]geom.Point2D[float64]{k.P1, geom.Pt2(k.P2.X, k.P1.Y), k.P2, geom.Pt2(k.P1.X, k.P2.Y)})
}

// FillPolygon fills the closed polygon through pts using the non-zero
// winding rule.
func (c *Canvas) FillPolygon(pts []geom.Point2D[float64]) {
	if len(pts) < 3 {
		geom.Logger().Debug("plot: skipping polygon with too few vertices", "vertices", len(pts))
		return
	}
	px := make([]geom.Point2D[float64], len(pts))
	for i, p := range pts {
		if !finitePoint(p) {
			geom.Logger().Debug("plot: skipping polygon with non-finite vertex", "vertex", p)
			return
		}
		px[i] = c.toPixel.Point(p)
	}
	c.fill(px)
}

// Point draws a small filled marker at p.
func (c *Canvas) Point(p geom.Point2D[float64]) {
	if !finitePoint(p) {
		geom.Logger().Debug("plot: skipping non-finite point", "point", p)
		return
	}
	disk := geom.Circle[float64]{C: c.toPixel.Point(p), R: markerRadius}
	c.shade(around(disk.C, disk.R), func(q geom.Point2D[float64]) float64 {
		return fillCoverage(disk.SignedDistanceToCurve(q))
	})
}

// Encode writes the canvas to w as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("plot: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("plot: close %s: %w", path, cerr)
		}
	}()
	return c.Encode(f)
}

// Thumbnail returns a copy of the canvas scaled to width×height with
// Catmull-Rom resampling.
func (c *Canvas) Thumbnail(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}

// shade composites the current color onto the pixels of r, weighted by the
// coverage computed for each pixel center. Rows are shaded in parallel.
func (c *Canvas) shade(r image.Rectangle, coverage func(geom.Point2D[float64]) float64) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	c.pool.Range(r.Dy(), func(lo, hi int) {
		for y := r.Min.Y + lo; y < r.Min.Y+hi; y++ {
			row := mask.Pix[mask.PixOffset(r.Min.X, y):]
			for x := r.Min.X; x < r.Max.X; x++ {
				a := coverage(geom.Pt2(float64(x)+0.5, float64(y)+0.5))
				row[x-r.Min.X] = uint8(a*255 + 0.5)
			}
		}
	})
	draw.DrawMask(c.img, r, image.NewUniform(c.color), image.Point{}, mask, r.Min, draw.Over)
}

// fill rasterizes the closed polygon pts, given in pixel coordinates.
func (c *Canvas) fill(pts []geom.Point2D[float64]) {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(c.color), image.Point{})
}

// around returns the pixel rectangle covering the disk of radius r around
// p, with one pixel of margin for anti-aliasing.
func around(p geom.Point2D[float64], r float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(p.X-r-1)), int(math.Floor(p.Y-r-1)),
		int(math.Ceil(p.X+r+1)), int(math.Ceil(p.Y+r+1)),
	)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finitePoint(p geom.Point2D[float64]) bool {
	return finite(p.X) && finite(p.Y)
}

func finiteVector(v geom.Vector2D[float64]) bool {
	return finite(v.X) && finite(v.Y)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/cache"
)

// labelOffset is the pixel distance between an anchor and its label.
const labelOffset = 4

// labelMasks holds rendered label coverage keyed by text. Mask bounds are
// relative to the baseline origin of the text.
var labelMasks = cache.New[string, *image.Alpha](256)

// labelMask returns the coverage mask of text drawn in the label face.
func labelMask(text string) *image.Alpha {
	return labelMasks.GetOrCreate(text, func() *image.Alpha {
		b, _ := font.BoundString(basicfont.Face7x13, text)
		mask := image.NewAlpha(image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil()))
		d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: basicfont.Face7x13}
		d.DrawString(text)
		return mask
	})
}

// Label draws text in the current color with its baseline starting just
// above and to the right of the world point p. It returns the pixel bounds
// of the drawn text, which are empty if p is not finite.
func (c *Canvas) Label(p geom.Point2D[float64], text string) image.Rectangle {
	if !finitePoint(p) {
		geom.Logger().Debug("plot: skipping label at non-finite point", "point", p, "text", text)
		return image.Rectangle{}
	}
	px := c.toPixel.Point(p)
	dot := image.Pt(int(px.X)+labelOffset, int(px.Y)-labelOffset)

	mask := labelMask(text)
	r := mask.Bounds().Add(dot)
	draw.DrawMask(c.img, r, image.NewUniform(c.color), image.Point{}, mask, mask.Bounds().Min, draw.Over)
	return r.Intersect(c.img.Bounds())
}

// MeasureLabel returns the advance width in pixels of text as drawn by
// Label.
func MeasureLabel(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/cache"
)

// ErrInvalidSize is returned when a typeface is requested with a size that
// is not a positive finite number.
var ErrInvalidSize = errors.New("plot: invalid font size")

// Typeface is a scalable font at a fixed pixel size. Text is shaped with
// HarfBuzz-compatible shaping, so kerning and ligatures are applied, and
// glyph outlines are rasterized with anti-aliasing.
//
// A Typeface is safe for concurrent use.
type Typeface struct {
	shapeFont *font.Font
	outline   *sfnt.Font
	size      float64

	// shapers pools HarfbuzzShaper values, which are not safe for
	// concurrent use.
	shapers sync.Pool
	masks   *cache.Cache[string, *image.Alpha]
}

// NewTypeface parses TrueType or OpenType data and returns a typeface that
// renders at size pixels per em.
func NewTypeface(data []byte, size float64) (*Typeface, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("plot: parse font: %w", err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("plot: parse font outlines: %w", err)
	}
	return &Typeface{
		shapeFont: face.Font,
		outline:   outline,
		size:      size,
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		masks: cache.New[string, *image.Alpha](128),
	}, nil
}

// DefaultTypeface returns the Go Regular font at size pixels per em.
func DefaultTypeface(size float64) (*Typeface, error) {
	return NewTypeface(goregular.TTF, size)
}

// Size returns the size of the typeface in pixels per em.
func (t *Typeface) Size() float64 {
	return t.size
}

// Measure returns the advance width of text in pixels.
func (t *Typeface) Measure(text string) float64 {
	var w float64
	for _, g := range t.shape(text) {
		w += fixedToFloat(g.Advance)
	}
	return w
}

func (t *Typeface) shape(text string) []shaping.Glyph {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(t.shapeFont),
		Size:      fixed.Int26_6(t.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := t.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	t.shapers.Put(hb)
	return out.Glyphs
}

// mask returns the coverage of text with bounds relative to the baseline
// origin. The mask is empty when text has no visible glyphs.
func (t *Typeface) mask(text string) *image.Alpha {
	return t.masks.GetOrCreate(text, func() *image.Alpha {
		return t.render(text)
	})
}

// outlineOp is one path command of a positioned glyph outline in pixels,
// with y growing downwards from the baseline.
type outlineOp struct {
	op  sfnt.SegmentOp
	pts [3]geom.Point2D[float32]
	n   int
}

func (t *Typeface) render(text string) *image.Alpha {
	var (
		buf  sfnt.Buffer
		ops  []outlineOp
		pen  float64
		minX = float32(math.Inf(1))
		minY = float32(math.Inf(1))
		maxX = float32(math.Inf(-1))
		maxY = float32(math.Inf(-1))
	)
	ppem := fixed.Int26_6(t.size * 64)
	for _, g := range t.shape(text) {
		ox := pen + fixedToFloat(g.XOffset)
		oy := -fixedToFloat(g.YOffset)
		pen += fixedToFloat(g.Advance)

		segs, err := t.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			geom.Logger().Debug("plot: skipping glyph without outline", "glyph", g.GlyphID, "err", err)
			continue
		}
		for _, s := range segs {
			o := outlineOp{op: s.Op, n: segmentArgs(s.Op)}
			for i := 0; i < o.n; i++ {
				p := geom.Pt2(
					float32(ox+fixedToFloat(s.Args[i].X)),
					float32(oy+fixedToFloat(s.Args[i].Y)),
				)
				o.pts[i] = p
				minX, maxX = min(minX, p.X), max(maxX, p.X)
				minY, maxY = min(minY, p.Y), max(maxY, p.Y)
			}
			ops = append(ops, o)
		}
	}
	if len(ops) == 0 {
		return image.NewAlpha(image.Rectangle{})
	}

	b := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	mask := image.NewAlpha(b)
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	dx, dy := float32(b.Min.X), float32(b.Min.Y)
	for _, o := range ops {
		p := o.pts
		switch o.op {
		case sfnt.SegmentOpMoveTo:
			z.ClosePath()
			z.MoveTo(p[0].X-dx, p[0].Y-dy)
		case sfnt.SegmentOpLineTo:
			z.LineTo(p[0].X-dx, p[0].Y-dy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(p[0].X-dx, p[0].Y-dy, p[1].X-dx, p[1].Y-dy)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(p[0].X-dx, p[0].Y-dy, p[1].X-dx, p[1].Y-dy, p[2].X-dx, p[2].Y-dy)
		}
	}
	z.ClosePath()
	z.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

// Text draws text in the current color with its baseline starting at the
// world point p. It returns the pixel bounds of the drawn glyphs, which are
// empty if p is not finite or text has no visible glyphs.
func (c *Canvas) Text(p geom.Point2D[float64], text string, tf *Typeface) image.Rectangle {
	if !finitePoint(p) {
		geom.Logger().Debug("plot: skipping text at non-finite point", "point", p, "text", text)
		return image.Rectangle{}
	}
	mask := tf.mask(text)
	if mask.Bounds().Empty() {
		return image.Rectangle{}
	}
	px := c.toPixel.Point(p)
	dot := image.Pt(int(math.Round(px.X)), int(math.Round(px.Y)))
	r := mask.Bounds().Add(dot)
	draw.DrawMask(c.img, r, image.NewUniform(c.color), image.Point{}, mask, mask.Bounds().Min, draw.Over)
	return r.Intersect(c.img.Bounds())
}

func segmentArgs(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

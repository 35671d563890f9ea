// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

import (
	"image/color"

	"github.com/gogpu/geom"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c := plot.New(640, 480,
//		plot.WithWindow(geom.Rect(-10.0, -7.5, 10, 7.5)),
//		plot.WithStrokeWidth(2))
type Option func(*options)

type options struct {
	background  color.Color
	window      geom.Rect2D[float64]
	strokeWidth float64
	workers     int
}

// defaultOptions maps world units one-to-one onto pixels with the origin in
// the bottom-left corner.
func defaultOptions(width, height int) options {
	return options{
		background:  color.White,
		window:      geom.Rect(0, 0, float64(width), float64(height)),
		strokeWidth: 1.5,
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithWindow sets the region of world coordinates shown on the canvas.
// A window with zero or NaN extent is ignored.
func WithWindow(r geom.Rect2D[float64]) Option {
	return func(o *options) {
		o.window = r
	}
}

// WithStrokeWidth sets the initial stroke width in pixels.
func WithStrokeWidth(px float64) Option {
	return func(o *options) {
		o.strokeWidth = px
	}
}

// WithWorkers sets the number of goroutines used to shade shapes.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

// aaWidth is the half width in pixels of the smoothstep transition at a
// shape edge.
const aaWidth = 0.7

// fillCoverage converts a signed distance in pixels (negative inside) to an
// anti-aliased coverage in [0, 1].
func fillCoverage(sd float64) float64 {
	if sd >= aaWidth {
		return 0
	}
	if sd <= -aaWidth {
		return 1
	}
	t := (sd + aaWidth) / (2 * aaWidth)
	return 1 - t*t*(3-2*t)
}

// strokeCoverage returns the coverage of a stroke of half width hw centered
// on a curve that lies dist pixels away.
func strokeCoverage(dist, hw float64) float64 {
	if dist < 0 {
		dist = -dist
	}
	return fillCoverage(dist - hw)
}

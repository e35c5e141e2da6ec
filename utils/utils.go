// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random sources and histogram helpers for checking how
// evenly points cover a disk.

package utils

import (
	"math"
	"math/rand"
	"time"

	"github.com/golang/geo/r2"
)

// NewRand returns a math/rand source. The seed parameter ensures reproducibility,
// a seed of 0 picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec
	return rand.New(rand.NewSource(seed))
}

// AnnulusHistogram counts points per ring of a disk. The rings have equal area, so a
// uniform distribution fills every bin evenly. Points at or beyond the radius are
// counted in the last bin.
func AnnulusHistogram(points []r2.Point, center r2.Point, radius float64, bins int) []int {
	counts := make([]int, bins)
	if bins == 0 {
		return counts
	}
	rr := radius * radius
	for _, p := range points {
		d := p.Sub(center)
		b := int(float64(bins) * d.Dot(d) / rr)
		counts[min(max(b, 0), bins-1)]++
	}
	return counts
}

// SectorHistogram counts points per equal angular sector around center, starting at the
// positive X axis and going counter-clockwise.
func SectorHistogram(points []r2.Point, center r2.Point, bins int) []int {
	counts := make([]int, bins)
	if bins == 0 {
		return counts
	}
	for _, p := range points {
		d := p.Sub(center)
		angle := math.Atan2(d.Y, d.X)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		b := int(float64(bins) * angle / (2 * math.Pi))
		counts[min(b, bins-1)]++
	}
	return counts
}

// ChiSquare returns Pearson's statistic of observed counts against the same expected
// count in every bin.
func ChiSquare(observed []int, expected float64) float64 {
	var sum float64
	for _, o := range observed {
		d := float64(o) - expected
		sum += d * d / expected
	}
	return sum
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package disksample places random points uniformly inside a disk and measures how long
// the placement takes.

package disksample

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Source supplies uniform floats in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Strategy selects the sampling algorithm used to place points.
type Strategy int

const (
	// Trigonometric draws a square-rooted radius and an angle per point.
	Trigonometric Strategy = iota
	// RejectionLoop draws from the bounding square until a candidate lands inside the disk.
	RejectionLoop
)

func (s Strategy) String() string {
	switch s {
	case Trigonometric:
		return "trigonometric"
	case RejectionLoop:
		return "rejection-loop"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy named by name, as produced by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "trigonometric", "trig":
		return Trigonometric, nil
	case "rejection-loop", "rejection":
		return RejectionLoop, nil
	}
	return 0, fmt.Errorf("disksample: unknown strategy %q", name)
}

// Place returns count points inside the disk of the given center and radius.
//
// NOTE: RejectionLoop never returns for radius <= 0, no candidate can pass the
// strict accept test.
func Place(strategy Strategy, count int, center r2.Point, radius float64, rng Source) []r2.Point {
	if count <= 0 {
		return []r2.Point{}
	}
	return AppendPoints(make([]r2.Point, 0, count), strategy, count, center, radius, rng)
}

// AppendPoints places count points like Place and appends them to dst.
func AppendPoints(dst []r2.Point, strategy Strategy, count int, center r2.Point, radius float64, rng Source) []r2.Point {
	switch strategy {
	case Trigonometric:
		for range count {
			dst = append(dst, trigonometric(center, radius, rng))
		}
	case RejectionLoop:
		for range count {
			dst = append(dst, rejection(center, radius, rng))
		}
	default:
		panic(fmt.Sprintf("AppendPoints: unknown strategy %d", int(strategy)))
	}
	return dst
}

func trigonometric(center r2.Point, radius float64, rng Source) r2.Point {
	// sqrt keeps the density uniform per unit area.
	r := math.Sqrt(rng.Float64()) * radius
	angle := rng.Float64() * 2 * math.Pi
	return r2.Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}

func rejection(center r2.Point, radius float64, rng Source) r2.Point {
	for {
		p := r2.Point{
			X: randomIn(rng, center.X-radius, center.X+radius),
			Y: randomIn(rng, center.Y-radius, center.Y+radius),
		}
		if p.Sub(center).Norm() < radius {
			return p
		}
	}
}

// randomIn returns a value in [lo, hi).
func randomIn(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

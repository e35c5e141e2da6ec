// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package disksample

import (
	"fmt"
	"math"
	"testing"

	"github.com/2dChan/disksample/utils"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const (
	distEps = 1e-9

	// Chi-square critical value for 9 degrees of freedom at p = 0.001.
	chiSquareCritical9 = 27.877
)

var strategies = []Strategy{Trigonometric, RejectionLoop}

// Strategy

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{Trigonometric, "trigonometric"},
		{RejectionLoop, "rejection-loop"},
		{Strategy(7), "Strategy(7)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    Strategy
		wantErr bool
	}{
		{"trigonometric", Trigonometric, false},
		{"trig", Trigonometric, false},
		{"rejection-loop", RejectionLoop, false},
		{"rejection", RejectionLoop, false},
		{"poisson", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// Place

func TestPlace_CountAndBounds(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		center r2.Point
		radius float64
	}{
		{"origin", 100, r2.Point{}, 10},
		{"screen center", 1000, r2.Point{X: 960, Y: 540}, 475},
		{"tiny radius", 100, r2.Point{X: -3, Y: 4}, 1e-6},
		{"single point", 1, r2.Point{X: 1, Y: 1}, 1},
	}
	for _, s := range strategies {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%v/%s", s, tt.name), func(t *testing.T) {
				points := Place(s, tt.count, tt.center, tt.radius, utils.NewRand(1))
				if len(points) != tt.count {
					t.Fatalf("Place(%v, %d, ...) len = %d, want %d", s, tt.count, len(points), tt.count)
				}
				for i, p := range points {
					d := p.Sub(tt.center).Norm()
					switch s {
					case Trigonometric:
						if d > tt.radius+distEps {
							t.Errorf("points[%d] distance = %v, want <= %v", i, d, tt.radius)
						}
					case RejectionLoop:
						if d >= tt.radius {
							t.Errorf("points[%d] distance = %v, want < %v", i, d, tt.radius)
						}
					}
				}
			})
		}
	}
}

func TestPlace_ZeroCount(t *testing.T) {
	for _, s := range strategies {
		for _, n := range []int{0, -1} {
			points := Place(s, n, r2.Point{}, 10, utils.NewRand(1))
			if points == nil || len(points) != 0 {
				t.Errorf("Place(%v, %d, ...) = %v, want empty non-nil", s, n, points)
			}
		}
	}
}

func TestPlace_ZeroRadius(t *testing.T) {
	center := r2.Point{X: 3, Y: -2}
	points := Place(Trigonometric, 5, center, 0, utils.NewRand(1))
	want := []r2.Point{center, center, center, center, center}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("Place(Trigonometric, 5, c, 0, ...) mismatch (-want +got):\n%v", diff)
	}

	// Known limitation: RejectionLoop with radius 0 never terminates, since no candidate
	// satisfies distance < 0. There is no guard, so it is not exercised here.
}

func TestPlace_Determinism(t *testing.T) {
	const (
		cnt  = 50
		seed = 42
	)
	center := r2.Point{X: 100, Y: 200}
	for _, s := range strategies {
		a := Place(s, cnt, center, 50, utils.NewRand(seed))
		b := Place(s, cnt, center, 50, utils.NewRand(seed))
		if diff := cmp.Diff(b, a); diff != "" {
			t.Errorf("Place(%v, ...) with seed %v mismatch (-want +got):\n%v", s, seed, diff)
		}
	}
}

func TestPlace_TrigonometricGolden(t *testing.T) {
	rng := &scriptedSource{values: []float64{
		0.25, 0, // r = 5, angle = 0
		0.64, 0.25, // r = 8, angle = π/2
		0, 0.5, // r = 0, angle = π
	}}
	got := Place(Trigonometric, 3, r2.Point{}, 10, rng)
	want := []r2.Point{{X: 5, Y: 0}, {X: 0, Y: 8}, {X: 0, Y: 0}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, distEps)); diff != "" {
		t.Errorf("Place(Trigonometric, 3, ...) mismatch (-want +got):\n%v", diff)
	}
	if rng.calls != 6 {
		t.Errorf("Place(Trigonometric, 3, ...) drew %d values, want 6", rng.calls)
	}
}

func TestPlace_RejectionLoopGolden(t *testing.T) {
	rng := &scriptedSource{values: []float64{
		0, 0, // (-10, -10), outside
		0, 0.5, // (-10, 0), on the boundary, rejected
		0.5, 0.75, // (0, 5), accepted
		0.75, 0.5, // (5, 0), accepted
	}}
	got := Place(RejectionLoop, 2, r2.Point{}, 10, rng)
	want := []r2.Point{{X: 0, Y: 5}, {X: 5, Y: 0}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, distEps)); diff != "" {
		t.Errorf("Place(RejectionLoop, 2, ...) mismatch (-want +got):\n%v", diff)
	}
	if rng.calls != 8 {
		t.Errorf("Place(RejectionLoop, 2, ...) drew %d values, want 8", rng.calls)
	}
}

func TestPlace_UnknownStrategyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Place(Strategy(9), ...) did not panic")
		}
	}()
	Place(Strategy(9), 1, r2.Point{}, 1, utils.NewRand(1))
}

func TestAppendPoints_KeepsPrefix(t *testing.T) {
	prefix := r2.Point{X: -1, Y: -1}
	dst := []r2.Point{prefix}
	got := AppendPoints(dst, Trigonometric, 3, r2.Point{}, 1, utils.NewRand(1))
	if len(got) != 4 {
		t.Fatalf("AppendPoints(...) len = %d, want 4", len(got))
	}
	if got[0] != prefix {
		t.Errorf("AppendPoints(...)[0] = %v, want %v", got[0], prefix)
	}
}

func TestPlace_UniformArea(t *testing.T) {
	const (
		cnt    = 10000
		bins   = 10
		radius = 475
	)
	center := r2.Point{X: 960, Y: 540}
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			points := Place(s, cnt, center, radius, utils.NewRand(1))

			rings := utils.AnnulusHistogram(points, center, radius, bins)
			if chi := utils.ChiSquare(rings, cnt/bins); chi > chiSquareCritical9 {
				t.Errorf("annulus chi-square = %v, want <= %v (counts %v)", chi, chiSquareCritical9, rings)
			}

			sectors := utils.SectorHistogram(points, center, bins)
			if chi := utils.ChiSquare(sectors, cnt/bins); chi > chiSquareCritical9 {
				t.Errorf("sector chi-square = %v, want <= %v (counts %v)", chi, chiSquareCritical9, sectors)
			}
		})
	}
}

func TestPlace_UniformAreaDetectsRadialBias(t *testing.T) {
	const (
		cnt  = 10000
		bins = 10
	)
	// Without the square root the points crowd the center.
	rng := utils.NewRand(1)
	points := make([]r2.Point, cnt)
	for i := range points {
		r := rng.Float64()
		a := rng.Float64() * 2 * math.Pi
		points[i] = r2.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	rings := utils.AnnulusHistogram(points, r2.Point{}, 1, bins)
	if chi := utils.ChiSquare(rings, cnt/bins); chi <= chiSquareCritical9 {
		t.Errorf("annulus chi-square = %v, want > %v for biased samples", chi, chiSquareCritical9)
	}
}

// Benchmarks

func BenchmarkPlace(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, s := range strategies {
		for _, n := range sizes {
			b.Run(fmt.Sprintf("%v/N%d", s, n), func(b *testing.B) {
				rng := utils.NewRand(1)
				buf := make([]r2.Point, 0, n)

				b.ReportAllocs()
				b.ResetTimer()
				for b.Loop() {
					buf = AppendPoints(buf[:0], s, n, r2.Point{}, 1, rng)
				}
			})
		}
	}
}

// Helpers

// scriptedSource replays a fixed sequence of draws.
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	if s.calls >= len(s.values) {
		panic("scriptedSource: out of values")
	}
	v := s.values[s.calls]
	s.calls++
	return v
}

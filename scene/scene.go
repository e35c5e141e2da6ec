// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package scene holds the state of the disk sampling demo and draws it, whole, onto a
// Canvas once per frame.

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/2dChan/disksample"
	"github.com/2dChan/disksample/delaunay"
	"github.com/golang/geo/r2"
)

const (
	DefaultCount          = 100
	DefaultParticleRadius = 25
	DefaultBoundaryRadius = 500
	DefaultFontSize       = 80

	meshLineWidth = 2
)

var (
	TextColor     color.Color = color.White
	BoundaryColor color.Color = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ParticleColor color.Color = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	MeshColor     color.Color = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// Canvas is the drawing surface a Scene renders onto.
type Canvas interface {
	FillCircle(x, y, r float64, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	// Text draws s with its baseline at y.
	Text(s string, x, y, size float64, c color.Color)
	MeasureText(s string, size float64) (w, h float64)
}

type Options struct {
	Count          int
	ParticleRadius float64
	BoundaryRadius float64
	FontSize       float64
}

type Option func(*Options) error

func WithCount(n int) Option {
	return func(o *Options) error {
		if n < 0 {
			return fmt.Errorf("WithCount: count must be non-negative, got %d", n)
		}
		o.Count = n
		return nil
	}
}

func WithParticleRadius(r float64) Option {
	return func(o *Options) error {
		if r <= 0 {
			return fmt.Errorf("WithParticleRadius: radius must be positive, got %v", r)
		}
		o.ParticleRadius = r
		return nil
	}
}

// WithBoundaryRadius sets the radius of the drawn boundary. Particles are placed within
// the boundary radius minus the particle radius so they stay fully inside.
func WithBoundaryRadius(r float64) Option {
	return func(o *Options) error {
		if r <= 0 {
			return fmt.Errorf("WithBoundaryRadius: radius must be positive, got %v", r)
		}
		o.BoundaryRadius = r
		return nil
	}
}

func WithFontSize(size float64) Option {
	return func(o *Options) error {
		if size <= 0 {
			return fmt.Errorf("WithFontSize: size must be positive, got %v", size)
		}
		o.FontSize = size
		return nil
	}
}

type Scene struct {
	Center   r2.Point
	Points   []r2.Point
	ShowMesh bool

	opts Options

	elapsed  time.Duration
	strategy disksample.Strategy
	placed   bool

	mesh      *delaunay.Triangulation
	meshErr   error
	meshReady bool
}

// New returns an empty scene centered at center. The point buffer is preallocated to
// the configured count.
func New(center r2.Point, setters ...Option) (*Scene, error) {
	opts := Options{
		Count:          DefaultCount,
		ParticleRadius: DefaultParticleRadius,
		BoundaryRadius: DefaultBoundaryRadius,
		FontSize:       DefaultFontSize,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if opts.BoundaryRadius <= opts.ParticleRadius {
		return nil, errors.New("scene: boundary radius must exceed particle radius")
	}

	return &Scene{
		Center: center,
		Points: make([]r2.Point, 0, opts.Count),
		opts:   opts,
	}, nil
}

func (s *Scene) Count() int {
	return s.opts.Count
}

// MaxRadius is the radius points are placed within.
func (s *Scene) MaxRadius() float64 {
	return s.opts.BoundaryRadius - s.opts.ParticleRadius
}

func (s *Scene) ParticleRadius() float64 {
	return s.opts.ParticleRadius
}

func (s *Scene) BoundaryRadius() float64 {
	return s.opts.BoundaryRadius
}

func (s *Scene) FontSize() float64 {
	return s.opts.FontSize
}

// Place replaces the scene's points using strategy and records how long it took.
func (s *Scene) Place(strategy disksample.Strategy, rng disksample.Source) time.Duration {
	s.elapsed = disksample.MeasureAndPlace(strategy, &s.Points, s.opts.Count, s.Center, s.MaxRadius(), rng)
	s.strategy = strategy
	s.placed = true
	s.mesh, s.meshErr, s.meshReady = nil, nil, false
	return s.elapsed
}

// Elapsed returns the duration of the last placement. The flag is false until the
// first placement.
func (s *Scene) Elapsed() (time.Duration, bool) {
	return s.elapsed, s.placed
}

// Strategy returns the strategy of the last placement.
func (s *Scene) Strategy() (disksample.Strategy, bool) {
	return s.strategy, s.placed
}

// Readout formats the last duration in nanoseconds, e.g. "1234ns".
func (s *Scene) Readout() (string, bool) {
	if !s.placed {
		return "", false
	}
	return fmt.Sprintf("%dns", s.elapsed.Nanoseconds()), true
}

// Mesh returns the Delaunay triangulation of the current points, computed once per
// placement.
func (s *Scene) Mesh() (*delaunay.Triangulation, error) {
	if !s.meshReady {
		s.mesh, s.meshErr = delaunay.NewTriangulation(s.Points)
		s.meshReady = true
	}
	return s.mesh, s.meshErr
}

// Draw renders the full scene. Nothing is carried over from the previous frame.
func (s *Scene) Draw(c Canvas) {
	if text, ok := s.Readout(); ok {
		_, h := c.MeasureText(text, s.opts.FontSize)
		c.Text(text, 0, h, s.opts.FontSize, TextColor)
	}

	c.FillCircle(s.Center.X, s.Center.Y, s.opts.BoundaryRadius, BoundaryColor)

	for _, p := range s.Points {
		c.FillCircle(p.X, p.Y, s.opts.ParticleRadius, ParticleColor)
	}

	if !s.ShowMesh || len(s.Points) == 0 {
		return
	}
	dt, err := s.Mesh()
	if err != nil {
		return
	}
	for _, e := range dt.Edges() {
		a, b := dt.Vertices[e[0]], dt.Vertices[e[1]]
		c.Line(a.X, a.Y, b.X, b.Y, meshLineWidth, MeshColor)
	}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay triangulates planar point sets. The points are lifted onto the
// paraboloid z = x² + y² and the downward-facing faces of the lifted convex hull are
// the Delaunay triangles.

package delaunay

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Sort in CCW per triangle.
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex, by angle around the vertex.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the indices of the triangles sharing vertex vIdx.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Edges returns every undirected edge of the triangulation once, smaller index first.
func (dt *Triangulation) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(dt.Triangles)*3/2+1)
	edges := make([][2]int, 0, len(dt.Triangles)*3/2+1)
	for _, t := range dt.Triangles {
		for j := range 3 {
			e := [2]int{t[j], t[(j+1)%3]}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// NearestNeighborDistances returns, per vertex, the distance to its closest neighbour.
// The nearest neighbour of a point always shares a Delaunay edge with it. Vertices left
// out of every triangle get +Inf.
func (dt *Triangulation) NearestNeighborDistances() []float64 {
	dist := make([]float64, len(dt.Vertices))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	for _, e := range dt.Edges() {
		d := dt.Vertices[e[0]].Sub(dt.Vertices[e[1]]).Norm()
		dist[e[0]] = math.Min(dist[e[0]], d)
		dist[e[1]] = math.Min(dist[e[1]], d)
	}
	return dist
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of vertices.
// NOTE: Four or more cocircular points are degenerate and may be rejected.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 3 {
		return nil,
			errors.New("delaunay: insufficient vertices for triangulation (minimum 3 required)")
	}

	lifted := liftVertices(vertices)
	if allCollinear(lifted, opts.Eps) {
		return nil, errors.New("delaunay: all vertices are collinear")
	}

	var triangles [][3]int
	if numVertices == 3 {
		triangles = [][3]int{{0, 1, 2}}
	} else {
		var err error
		triangles, err = lowerHull(lifted, opts.Eps)
		if err != nil {
			return nil, err
		}
	}

	numTriangles := len(triangles)
	dt := &Triangulation{
		Vertices:                vertices,
		Triangles:               triangles,
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}

	for i := range dt.Triangles {
		sortTriangleVerticesCCW(&dt.Triangles[i], dt.Vertices)
		for _, v := range dt.Triangles[i] {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		sortIncidentTrianglesCCW(i, dt.IncidentTriangles(i), dt)
	}

	return dt, nil
}

// liftVertices maps vertices into [-1, 1]² around their bounding box center and onto
// the paraboloid. Delaunay triangulations survive translation and uniform scaling.
func liftVertices(vertices []r2.Point) []r3.Vector {
	rect := r2.RectFromPoints(vertices...)
	c := rect.Center()
	size := rect.Size()
	scale := math.Max(size.X, size.Y) / 2
	if scale == 0 {
		scale = 1
	}

	lifted := make([]r3.Vector, len(vertices))
	for i, v := range vertices {
		p := v.Sub(c).Mul(1 / scale)
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Dot(p)}
	}
	return lifted
}

func lowerHull(lifted []r3.Vector, eps float64) ([][3]int, error) {
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("delaunay: inconsistent number of indices returned from QuickHull")
	}

	var centroid r3.Vector
	for _, v := range lifted {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(len(lifted)))

	triangles := make([][3]int, 0, len(ch.Indices)/3)
	for i := 0; i < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		for _, idx := range t {
			if idx < 0 || idx >= len(lifted) {
				return nil, fmt.Errorf("delaunay: QuickHull index %d out of range", idx)
			}
		}
		a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
		norm := b.Sub(a).Cross(c.Sub(a))
		length := norm.Norm()
		if length <= eps {
			continue
		}
		if norm.Dot(a.Sub(centroid)) < 0 {
			norm = norm.Mul(-1)
		}
		// Vertical faces come from collinear points on the outer boundary.
		if norm.Z < -eps*length {
			triangles = append(triangles, t)
		}
	}

	if len(triangles) == 0 {
		return nil, errors.New("delaunay: degenerate vertices, no lower hull faces")
	}
	return triangles, nil
}

func allCollinear(lifted []r3.Vector, eps float64) bool {
	a := lifted[0]
	var dir r2.Point
	found := false
	for _, v := range lifted[1:] {
		d := r2.Point{X: v.X - a.X, Y: v.Y - a.Y}
		if d.Norm() > eps {
			dir = d
			found = true
			break
		}
	}
	if !found {
		return true
	}
	dir = dir.Normalize()
	for _, v := range lifted[1:] {
		d := r2.Point{X: v.X - a.X, Y: v.Y - a.Y}
		if math.Abs(dir.Cross(d)) > eps {
			return false
		}
	}
	return true
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentTrianglesCCW(vIdx int, incidentTris []int, dt *Triangulation) {
	origin := dt.Vertices[vIdx]
	angles := make(map[int]float64, len(incidentTris))
	for _, tIdx := range incidentTris {
		a, b, c := dt.TriangleVertices(tIdx)
		d := a.Add(b).Add(c).Mul(1.0 / 3).Sub(origin)
		angles[tIdx] = math.Atan2(d.Y, d.X)
	}
	sort.Slice(incidentTris, func(i, j int) bool {
		return angles[incidentTris[i]] < angles[incidentTris[j]]
	})
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}

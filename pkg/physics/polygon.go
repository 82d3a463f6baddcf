// pkg/physics/polygon.go
package physics

import (
	"errors"
	"math"
)

// ErrDegeneratePolygon is returned for polygons with fewer than three
// vertices or with coincident consecutive vertices.
var ErrDegeneratePolygon = errors.New("physics: polygon needs at least 3 distinct consecutive vertices")

// Polygon is a convex vertex loop; the last vertex joins the first.
// Edges, axes and centroid are derived from the vertices and are
// recomputed together whenever the vertices change.
type Polygon struct {
	vertices []Vector2D
	edges    []Vector2D
	xAxes    []Vector2D // unit edge directions
	yAxes    []Vector2D // edge normals, the SAT test axes
	centroid Vector2D
}

// NewPolygon creates a polygon from vertices given in order
func NewPolygon(vertices []Vector2D) (*Polygon, error) {
	if !validLoop(vertices) {
		return nil, ErrDegeneratePolygon
	}
	p := &Polygon{
		vertices: append([]Vector2D(nil), vertices...),
	}
	p.update()
	return p, nil
}

func validLoop(vertices []Vector2D) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	for i := range vertices {
		if vertices[i] == vertices[(i+1)%n] {
			return false
		}
	}
	return true
}

// update re-derives edges, axes and centroid from the vertices.
func (p *Polygon) update() {
	n := len(p.vertices)
	p.edges = make([]Vector2D, n)
	p.xAxes = make([]Vector2D, n)
	p.yAxes = make([]Vector2D, n)

	var sum Vector2D
	for i, v := range p.vertices {
		edge := p.vertices[(i+1)%n].Sub(v)
		p.edges[i] = edge
		p.xAxes[i] = edge.Normalize()
		p.yAxes[i] = p.xAxes[i].Perp()
		sum = sum.Add(v)
	}
	p.centroid = sum.Scale(1 / float64(n))
}

// SetVertices replaces the vertex list. A list of a different cardinality,
// or one with coincident consecutive vertices, is rejected and the polygon
// keeps its previous geometry.
func (p *Polygon) SetVertices(vertices []Vector2D) bool {
	if len(vertices) != len(p.vertices) || !validLoop(vertices) {
		return false
	}
	copy(p.vertices, vertices)
	p.update()
	return true
}

// Len returns the number of vertices
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Vertices returns a copy of the vertex list
func (p *Polygon) Vertices() []Vector2D {
	return append([]Vector2D(nil), p.vertices...)
}

// Edges returns a copy of the edge vectors
func (p *Polygon) Edges() []Vector2D {
	return append([]Vector2D(nil), p.edges...)
}

// XAxes returns a copy of the unit edge directions
func (p *Polygon) XAxes() []Vector2D {
	return append([]Vector2D(nil), p.xAxes...)
}

// YAxes returns a copy of the edge normals
func (p *Polygon) YAxes() []Vector2D {
	return append([]Vector2D(nil), p.yAxes...)
}

// Centroid returns the arithmetic mean of the vertices
func (p *Polygon) Centroid() Vector2D {
	return p.centroid
}

// Rotate rotates every vertex around center by angle
func (p *Polygon) Rotate(angle float64, center Vector2D) {
	for i, v := range p.vertices {
		p.vertices[i] = v.RotateAround(center, angle)
	}
	p.update()
}

// Contains reports whether point lies inside the polygon, using the
// even-odd rule on a ray cast towards +X.
func (p *Polygon) Contains(point Vector2D) bool {
	inside := false
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		if (a.Y > point.Y) != (b.Y > point.Y) {
			crossX := a.X + (point.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if point.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// Projection is the interval covered by a polygon projected on an axis
type Projection struct {
	Min float64
	Max float64
}

// Project projects the polygon onto axis
func (p *Polygon) Project(axis Vector2D) Projection {
	proj := Projection{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range p.vertices {
		value := axis.Dot(v)
		proj.Min = math.Min(proj.Min, value)
		proj.Max = math.Max(proj.Max, value)
	}
	return proj
}

// Overlap returns the overlap of two projections, or 0 when they are
// disjoint or merely touching.
func Overlap(a, b Projection) float64 {
	if a.Max > b.Min && b.Max > a.Min {
		return math.Abs(math.Min(a.Max-b.Min, b.Max-a.Min))
	}
	return 0
}

// MinimumTranslationVector is the result of a SAT test
type MinimumTranslationVector struct {
	Axis    Vector2D
	Overlap float64
	Found   bool // false when a separating axis exists
}

// Collides reports whether the MTV signals a collision
func (m MinimumTranslationVector) Collides() bool {
	return m.Found && m.Overlap != 0
}

// CorrectDirection flips the axis if needed so that it points from the
// obstacle centroid towards position.
func (m *MinimumTranslationVector) CorrectDirection(obstacleCentroid, position Vector2D) {
	toBody := position.Sub(obstacleCentroid)
	if toBody.LengthSquared() == 0 {
		return
	}
	if m.Axis.Dot(toBody.Normalize()) < 0 {
		m.Axis = m.Axis.Neg()
	}
}

// Translation returns the displacement that separates the shapes
func (m MinimumTranslationVector) Translation() Vector2D {
	return m.Axis.WithLength(m.Overlap)
}

// SAT runs the separating axis test between a moving shape and an obstacle.
// The moving shape's normals are tested first, then the obstacle's.
// The first separating axis short-circuits the test; otherwise the axis with
// the strictly smallest overlap wins, ties keeping the earliest axis.
func SAT(moving, obstacle *Polygon) MinimumTranslationVector {
	minOverlap := math.Inf(1)
	var minAxis Vector2D

	test := func(axis Vector2D) bool {
		overlap := Overlap(moving.Project(axis), obstacle.Project(axis))
		if overlap == 0 {
			return false
		}
		if overlap < minOverlap {
			minOverlap = overlap
			minAxis = axis
		}
		return true
	}

	for _, axis := range moving.yAxes {
		if !test(axis) {
			return MinimumTranslationVector{}
		}
	}
	for _, axis := range obstacle.yAxes {
		if !test(axis) {
			return MinimumTranslationVector{}
		}
	}

	return MinimumTranslationVector{
		Axis:    minAxis,
		Overlap: minOverlap,
		Found:   true,
	}
}

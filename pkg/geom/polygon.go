package geom

import "math"

// Polygon is an ordered vertex sequence reconstructed from drawn segments.
// It is a best-effort boundary: segments must already be supplied in
// traversal order (drawing order or connectivity order); no re-sorting or
// adjacency inference happens here.
type Polygon struct {
	Vertices []Point
}

// FromSegments extracts the ordered unique vertex sequence from segments.
// Each segment contributes its start point (unless it equals the previous
// vertex exactly) followed by its end point; consecutive exact duplicates
// are collapsed. Shared endpoints are assumed to have been snapped by the
// drawing layer, so equality is exact.
func FromSegments(segs []Segment) Polygon {
	if len(segs) == 0 {
		return Polygon{}
	}

	raw := make([]Point, 0, 2*len(segs)+1)
	raw = append(raw, segs[0].Start)
	for _, s := range segs {
		if raw[len(raw)-1] != s.Start {
			raw = append(raw, s.Start)
		}
		raw = append(raw, s.End)
	}

	vertices := raw[:1]
	for _, v := range raw[1:] {
		if v != vertices[len(vertices)-1] {
			vertices = append(vertices, v)
		}
	}
	return Polygon{Vertices: vertices}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
// Fewer than 3 vertices returns 0.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsClosed reports whether the first and last vertex are within tol of
// each other. Fewer than 3 vertices is never closed.
func (p Polygon) IsClosed(tol float64) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	first := p.Vertices[0]
	last := p.Vertices[len(p.Vertices)-1]
	return first.Distance(last) <= tol
}

// VertexMean returns the arithmetic mean of the vertices. This is not the
// true polygon centroid; it is only good enough for label placement.
func (p Polygon) VertexMean() Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}
	sum := Point{}
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1.0 / float64(n))
}

// DefaultClosureTolerance is the metric-space tolerance for general
// closed-loop detection.
const DefaultClosureTolerance = 0.1

// Area computes the polygon area enclosed by segments already in metric
// space. Fewer than 3 segments or fewer than 3 distinct vertices yields 0.
func Area(segs []Segment) float64 {
	if len(segs) < 3 {
		return 0
	}
	return FromSegments(segs).Area()
}

// Perimeter sums the declared segment lengths. It deliberately reflects
// the user's stated measurements rather than pixel geometry.
func Perimeter(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		total += s.Length
	}
	return total
}

// Closed reports whether the segments form a closed loop: the first and
// last extracted vertex must be within tol. Tolerance and coordinates must
// live in the same space (metric for whole-plan checks, pixels for zone
// membership checks). Fewer than 3 segments is never closed.
func Closed(segs []Segment, tol float64) bool {
	if len(segs) < 3 {
		return false
	}
	return FromSegments(segs).IsClosed(tol)
}

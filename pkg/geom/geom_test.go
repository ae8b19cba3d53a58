package geom

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// rectangle returns the 4 wall segments of a 10m x 8m room drawn at
// scale 50, starting at pixel (50,50) and traversed clockwise.
func rectangle() []Segment {
	return []Segment{
		Seg(Pt(50, 50), Pt(550, 50), 10),
		Seg(Pt(550, 50), Pt(550, 450), 8),
		Seg(Pt(550, 450), Pt(50, 450), 10),
		Seg(Pt(50, 450), Pt(50, 50), 8),
	}
}

// --- Point tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointNear(t *testing.T) {
	a := Pt(0, 0)
	if !a.Near(Pt(3, 4), 5) {
		t.Error("expected (3,4) within tolerance 5 of origin")
	}
	if a.Near(Pt(3, 4), 4.9) {
		t.Error("expected (3,4) outside tolerance 4.9 of origin")
	}
}

// --- Segment tests ---

func TestSegmentAngle(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(10, 0), 10)
	if !approxEqual(s.Angle(), 0, tolerance) {
		t.Errorf("expected angle 0, got %f", s.Angle())
	}
	s = Seg(Pt(0, 0), Pt(0, 10), 10)
	if !approxEqual(s.Angle(), 90, tolerance) {
		t.Errorf("expected angle 90, got %f", s.Angle())
	}
}

func TestNormalizedAngleReversal(t *testing.T) {
	// A segment and its reversal point in opposite directions but must
	// normalize to the same angle.
	s := Seg(Pt(0, 0), Pt(10, 5), 0)
	r := Seg(Pt(10, 5), Pt(0, 0), 0)
	if !approxEqual(s.NormalizedAngle(), r.NormalizedAngle(), tolerance) {
		t.Errorf("expected equal normalized angles, got %f and %f",
			s.NormalizedAngle(), r.NormalizedAngle())
	}
}

func TestMod180Negative(t *testing.T) {
	if !approxEqual(Mod180(-45), 135, tolerance) {
		t.Errorf("expected Mod180(-45)=135, got %f", Mod180(-45))
	}
	if !approxEqual(Mod180(270), 90, tolerance) {
		t.Errorf("expected Mod180(270)=90, got %f", Mod180(270))
	}
}

func TestToMeters(t *testing.T) {
	m := ToMeters(rectangle(), 50)
	if !approxEqual(m[0].Start.X, 1, tolerance) || !approxEqual(m[0].End.X, 11, tolerance) {
		t.Errorf("expected x coords 1 and 11, got %f and %f", m[0].Start.X, m[0].End.X)
	}
	// Declared lengths pass through unchanged.
	if m[0].Length != 10 {
		t.Errorf("expected length 10 preserved, got %f", m[0].Length)
	}
}

// --- Vertex extraction tests ---

func TestFromSegmentsDedup(t *testing.T) {
	p := FromSegments(rectangle())
	// Closing vertex repeats the first, so 5 vertices remain after
	// consecutive dedup.
	if p.Len() != 5 {
		t.Fatalf("expected 5 vertices, got %d", p.Len())
	}
	if p.Vertices[0] != Pt(50, 50) || p.Vertices[4] != Pt(50, 50) {
		t.Errorf("expected first and last vertex (50,50), got %v and %v",
			p.Vertices[0], p.Vertices[4])
	}
}

func TestFromSegmentsEmpty(t *testing.T) {
	p := FromSegments(nil)
	if p.Len() != 0 {
		t.Errorf("expected no vertices, got %d", p.Len())
	}
}

// --- Area / perimeter / closure tests ---

func TestRectangleMeasurements(t *testing.T) {
	segs := rectangle()
	metric := ToMeters(segs, 50)

	if a := Area(metric); !approxEqual(a, 80, tolerance) {
		t.Errorf("expected area 80, got %f", a)
	}
	if p := Perimeter(segs); !approxEqual(p, 36, tolerance) {
		t.Errorf("expected perimeter 36, got %f", p)
	}
	if !Closed(metric, DefaultClosureTolerance) {
		t.Error("expected rectangle to be closed")
	}
}

func TestAreaDegenerate(t *testing.T) {
	segs := rectangle()[:2]
	if a := Area(segs); a != 0 {
		t.Errorf("expected area 0 for 2 segments, got %f", a)
	}
	if Closed(segs, 1000) {
		t.Error("expected 2 segments never closed regardless of tolerance")
	}
}

func TestAreaRotationInvariant(t *testing.T) {
	segs := ToMeters(rectangle(), 50)
	base := Area(segs)

	angle := 33.0 * math.Pi / 180
	c, s := math.Cos(angle), math.Sin(angle)
	rot := func(p Point) Point {
		return Pt(p.X*c-p.Y*s, p.X*s+p.Y*c)
	}
	rotated := make([]Segment, len(segs))
	for i, sg := range segs {
		rotated[i] = Seg(rot(sg.Start), rot(sg.End), sg.Length)
	}
	if !approxEqual(Area(rotated), base, tolerance) {
		t.Errorf("expected rotation-invariant area %f, got %f", base, Area(rotated))
	}
}

func TestAreaTranslationInvariant(t *testing.T) {
	segs := ToMeters(rectangle(), 50)
	base := Area(segs)

	off := Pt(-13.7, 42.1)
	moved := make([]Segment, len(segs))
	for i, sg := range segs {
		moved[i] = Seg(sg.Start.Add(off), sg.End.Add(off), sg.Length)
	}
	if !approxEqual(Area(moved), base, tolerance) {
		t.Errorf("expected translation-invariant area %f, got %f", base, Area(moved))
	}
}

func TestClosureReversalSymmetric(t *testing.T) {
	segs := ToMeters(rectangle(), 50)

	rev := make([]Segment, len(segs))
	for i, sg := range segs {
		// Reverse both traversal order and each segment's direction.
		rev[len(segs)-1-i] = Seg(sg.End, sg.Start, sg.Length)
	}
	if Closed(segs, DefaultClosureTolerance) != Closed(rev, DefaultClosureTolerance) {
		t.Error("expected closure result invariant under traversal reversal")
	}
}

func TestVertexMean(t *testing.T) {
	p := FromSegments(rectangle())
	// 5 vertices: the shared corner (50,50) counts twice.
	c := p.VertexMean()
	if !approxEqual(c.X, 250, tolerance) || !approxEqual(c.Y, 210, tolerance) {
		t.Errorf("expected vertex mean (250,210), got (%f,%f)", c.X, c.Y)
	}
}

func TestVertexMeanEmpty(t *testing.T) {
	c := Polygon{}.VertexMean()
	if c != (Point{}) {
		t.Errorf("expected zero point, got %v", c)
	}
}

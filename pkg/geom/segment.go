package geom

import "math"

// Segment is one drawn wall line. Start and End are canvas coordinates;
// Length is the user's declared measurement in meters, which may differ
// slightly from the pixel geometry and is authoritative for perimeters.
type Segment struct {
	Start  Point   `yaml:"start" json:"start"`
	End    Point   `yaml:"end" json:"end"`
	Length float64 `yaml:"length" json:"length"`
}

// Seg is a shorthand constructor for Segment.
func Seg(start, end Point, length float64) Segment {
	return Segment{Start: start, End: end, Length: length}
}

// Angle returns the segment direction in degrees from the positive X axis,
// in (-180, 180].
func (s Segment) Angle() float64 {
	d := s.End.Sub(s.Start)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// NormalizedAngle returns the segment angle reduced modulo 180 into
// [0, 180), so that direction reversal maps to the same value.
func (s Segment) NormalizedAngle() float64 {
	return Mod180(s.Angle())
}

// PixelLength returns the Euclidean distance between the endpoints,
// as opposed to the declared Length.
func (s Segment) PixelLength() float64 {
	return s.Start.Distance(s.End)
}

// Mod180 reduces an angle in degrees into [0, 180). Unlike math.Mod it
// never returns a negative value.
func Mod180(deg float64) float64 {
	m := math.Mod(deg, 180)
	if m < 0 {
		m += 180
	}
	return m
}

// DefaultScale is the drawing scale assumed when none is given,
// in pixels per meter.
const DefaultScale = 50.0

// ToMeters converts segments from pixel space to metric space by dividing
// endpoint coordinates by scale (pixels per meter). Declared lengths are
// already metric and pass through unchanged. A non-positive scale returns
// the input unchanged.
func ToMeters(segs []Segment, scale float64) []Segment {
	if scale <= 0 {
		return segs
	}
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{
			Start:  s.Start.Scale(1 / scale),
			End:    s.End.Scale(1 / scale),
			Length: s.Length,
		}
	}
	return out
}

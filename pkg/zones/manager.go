package zones

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/planforge/floorplan/pkg/geom"
)

// Zone manager tolerances. Manual creation is forgiving (hand selection of
// roughly closing walls); auto-detection is stricter so only cleanly drawn
// rooms become zones. Both are pixel-space tolerances: they test proximity
// of drawn endpoints, not metric distances.
const (
	ManualClosureTolerance = 20.0
	AutoClosureTolerance   = 10.0
)

// Manager owns a collection of zones over a caller-owned segment arena.
// Zones store indices into that arena; every operation takes the segment
// snapshot it should resolve against. The manager is single-writer: a
// multi-threaded host must serialize mutating calls itself.
type Manager struct {
	zones  []*Zone
	scale  float64
	nextID int
	rng    *rand.Rand
}

// NewManager creates an empty zone manager. scale is the drawing scale in
// pixels per meter; non-positive values fall back to the default.
func NewManager(scale float64) *Manager {
	if scale <= 0 {
		scale = geom.DefaultScale
	}
	return &Manager{scale: scale, nextID: 1}
}

// SetColorRand installs a randomness source used to generate pastel
// fallback colors for unrecognized zone types. Without one, unrecognized
// types take the catch-all default color and the manager stays fully
// deterministic.
func (m *Manager) SetColorRand(rng *rand.Rand) {
	m.rng = rng
}

// Create adds a zone from the given member segment indices. At least 3 of
// the indices must resolve within the segment snapshot, otherwise no zone
// is produced. color overrides the type-derived display color; the empty
// string keeps the type default. The zone is stored even when its members
// do not close a polygon: it is flagged invalid with area 0 so the caller
// can warn the user without losing the entity.
func (m *Manager) Create(name string, zoneType ZoneType, color string, indices []int, segs []geom.Segment) (*Zone, error) {
	members := resolve(indices, segs)
	if len(members) < 3 {
		return nil, fmt.Errorf("zone %q needs at least 3 resolvable segments, got %d", name, len(members))
	}

	if color == "" {
		color = m.colorFor(zoneType)
	}
	zone := &Zone{
		ID:          m.nextID,
		Name:        name,
		Type:        zoneType,
		LineIndices: indices,
		Color:       color,
	}
	m.nextID++

	m.revalidate(zone, members, ManualClosureTolerance)
	m.zones = append(m.zones, zone)
	return zone, nil
}

// Delete removes the zone with the given id. Returns false when no such
// zone exists; deleting twice is a no-op.
func (m *Manager) Delete(id int) bool {
	for i, z := range m.zones {
		if z.ID == id {
			m.zones = append(m.zones[:i], m.zones[i+1:]...)
			return true
		}
	}
	return false
}

// ZoneUpdate names the fields Update may change. Zero values leave the
// corresponding field untouched.
type ZoneUpdate struct {
	Name        string
	Type        ZoneType
	LineIndices []int
}

// Update mutates an existing zone. A membership change revalidates closure
// and recomputes area exactly as Create does, against the supplied segment
// snapshot. Changing the type refreshes the display color only when the
// type has a known default; otherwise the current color is kept.
func (m *Manager) Update(id int, upd ZoneUpdate, segs []geom.Segment) error {
	zone := m.Get(id)
	if zone == nil {
		return fmt.Errorf("zone %d not found", id)
	}

	if upd.Name != "" {
		zone.Name = upd.Name
	}
	if upd.Type != "" {
		zone.Type = upd.Type
		if info, ok := zoneTypeInfo[upd.Type]; ok {
			zone.Color = info.Color
		}
	}
	if upd.LineIndices != nil {
		members := resolve(upd.LineIndices, segs)
		if len(members) < 3 {
			return fmt.Errorf("zone %d needs at least 3 resolvable segments, got %d", id, len(members))
		}
		zone.LineIndices = upd.LineIndices
		m.revalidate(zone, members, ManualClosureTolerance)
	}
	return nil
}

// Get returns the zone with the given id, or nil.
func (m *Manager) Get(id int) *Zone {
	for _, z := range m.zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// ByLine returns the first zone whose membership contains the given
// segment index, or nil.
func (m *Manager) ByLine(index int) *Zone {
	for _, z := range m.zones {
		for _, li := range z.LineIndices {
			if li == index {
				return z
			}
		}
	}
	return nil
}

// All returns the zones in creation order. The slice is a copy; the zones
// themselves are shared.
func (m *Manager) All() []*Zone {
	out := make([]*Zone, len(m.zones))
	copy(out, m.zones)
	return out
}

// Clear removes every zone and restarts id assignment.
func (m *Manager) Clear() {
	m.zones = nil
	m.nextID = 1
}

// Centroid returns the label anchor for a zone: the arithmetic mean of the
// extracted vertices of its member segments, in pixel space. The second
// result is false when the zone does not exist or resolves to no segments.
func (m *Manager) Centroid(id int, segs []geom.Segment) (geom.Point, bool) {
	zone := m.Get(id)
	if zone == nil {
		return geom.Point{}, false
	}
	members := resolve(zone.LineIndices, segs)
	if len(members) == 0 {
		return geom.Point{}, false
	}
	return geom.FromSegments(members).VertexMean(), true
}

// AutoDetect discovers closed rooms: it walks the segment indices in
// order, skips any index already claimed by a zone detected in this call,
// and for each unclaimed seed collects its connected set. Sets with at
// least 3 members that close within the auto tolerance become zones named
// sequentially ("Zone 1", "Zone 2", ...) with type other. A single greedy
// pass: once claimed, a segment is never reconsidered as a seed, even if
// an overlapping grouping could also close. Returns only the zones created
// by this call.
func (m *Manager) AutoDetect(segs []geom.Segment) []*Zone {
	var detected []*Zone
	claimed := make(map[int]bool)

	for i := range segs {
		if claimed[i] {
			continue
		}

		connected := ConnectedLines(segs, i, DefaultConnectTolerance)
		if len(connected) < 3 {
			continue
		}
		members := resolve(connected, segs)
		if !closureValid(members, AutoClosureTolerance) {
			continue
		}

		name := fmt.Sprintf("Zone %d", len(detected)+1)
		zone, err := m.Create(name, ZoneOther, "", connected, segs)
		if err != nil {
			continue
		}
		detected = append(detected, zone)
		for _, idx := range connected {
			claimed[idx] = true
		}
	}
	return detected
}

// Summary aggregates the collection: counts, total valid area, and a
// per-type breakdown. Only valid zones contribute to the total area.
func (m *Manager) Summary() Summary {
	s := Summary{
		TotalZones:  len(m.zones),
		ZonesByType: make(map[ZoneType]*TypeBreakdown),
		ZonesList:   make([]Zone, 0, len(m.zones)),
	}

	totalArea := 0.0
	for _, z := range m.zones {
		if z.IsValid {
			s.ValidZones++
			totalArea += z.Area
		}

		bt := s.ZonesByType[z.Type]
		if bt == nil {
			bt = &TypeBreakdown{}
			s.ZonesByType[z.Type] = bt
		}
		bt.Count++
		bt.TotalArea += z.Area
		bt.Zones = append(bt.Zones, z.Name)

		s.ZonesList = append(s.ZonesList, *z)
	}
	s.InvalidZones = s.TotalZones - s.ValidZones
	s.TotalArea = math.Round(totalArea*100) / 100
	return s
}

// Label renders the display label for a zone: icon, name and area.
func (m *Manager) Label(z *Zone) string {
	return fmt.Sprintf("%s %s\n%.2f m²", Icon(z.Type), z.Name, z.Area)
}

// revalidate recomputes closure and area for a zone's resolved members.
// Closure runs in pixel space against tol; the area is metric and reset
// to 0 whenever the members do not close.
func (m *Manager) revalidate(zone *Zone, members []geom.Segment, tol float64) {
	zone.IsValid = closureValid(members, tol)
	if zone.IsValid {
		zone.Area = geom.Area(geom.ToMeters(members, m.scale))
	} else {
		zone.Area = 0
	}
}

func (m *Manager) colorFor(t ZoneType) string {
	if _, ok := zoneTypeInfo[t]; !ok && m.rng != nil {
		return pastelColor(m.rng)
	}
	return DefaultColor(t)
}

// closureValid checks zone closure in pixel space: at least 3 segments,
// at least 3 distinct extracted vertices, and first-to-last vertex within
// tol.
func closureValid(members []geom.Segment, tol float64) bool {
	if len(members) < 3 {
		return false
	}
	return geom.FromSegments(members).IsClosed(tol)
}

// resolve maps indices to segments, silently skipping any index outside
// the snapshot's bounds. A zone referencing stale indices degrades rather
// than fails.
func resolve(indices []int, segs []geom.Segment) []geom.Segment {
	out := make([]geom.Segment, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(segs) {
			out = append(out, segs[i])
		}
	}
	return out
}

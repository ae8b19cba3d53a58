package zones

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// ZoneType identifies the room category of a zone.
type ZoneType string

const (
	ZoneLivingRoom ZoneType = "living_room"
	ZoneKitchen    ZoneType = "kitchen"
	ZoneDining     ZoneType = "dining_room"
	ZoneBedroom    ZoneType = "bedroom"
	ZoneBathroom   ZoneType = "bathroom"
	ZoneStudy      ZoneType = "study"
	ZoneGarden     ZoneType = "garden"
	ZoneGarage     ZoneType = "garage"
	ZoneHallway    ZoneType = "hallway"
	ZoneTerrace    ZoneType = "terrace"
	ZoneStorage    ZoneType = "storage"
	ZoneLaundry    ZoneType = "laundry"
	ZoneOther      ZoneType = "other"
)

// Zone is a named, typed grouping of segments representing one room.
// LineIndices reference positions in the caller-owned segment sequence;
// the zone never copies segment data. Area is metric and only meaningful
// when IsValid is true.
type Zone struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        ZoneType `json:"type"`
	LineIndices []int    `json:"line_indices"`
	Color       string   `json:"color"`
	Area        float64  `json:"area"`
	IsValid     bool     `json:"is_valid"`
}

// typeInfo carries the default display attributes for a zone type.
type typeInfo struct {
	Icon  string
	Color string
}

var zoneTypeInfo = map[ZoneType]typeInfo{
	ZoneLivingRoom: {Icon: "🛋️", Color: "#FFE4B5"},
	ZoneKitchen:    {Icon: "🍳", Color: "#FFB6C1"},
	ZoneDining:     {Icon: "🍽️", Color: "#DDA0DD"},
	ZoneBedroom:    {Icon: "🛏️", Color: "#B0E0E6"},
	ZoneBathroom:   {Icon: "🚿", Color: "#87CEEB"},
	ZoneStudy:      {Icon: "📚", Color: "#98FB98"},
	ZoneGarden:     {Icon: "🌳", Color: "#90EE90"},
	ZoneGarage:     {Icon: "🚗", Color: "#D3D3D3"},
	ZoneHallway:    {Icon: "🚪", Color: "#F5DEB3"},
	ZoneTerrace:    {Icon: "☀️", Color: "#FFDAB9"},
	ZoneStorage:    {Icon: "📦", Color: "#C0C0C0"},
	ZoneLaundry:    {Icon: "🧺", Color: "#E0FFFF"},
	ZoneOther:      {Icon: "📐", Color: "#F0F0F0"},
}

// DefaultColor returns the default display color for a zone type.
// Unknown types get the catch-all "other" color.
func DefaultColor(t ZoneType) string {
	if info, ok := zoneTypeInfo[t]; ok {
		return info.Color
	}
	return zoneTypeInfo[ZoneOther].Color
}

// Icon returns the display icon for a zone type, defaulting to "other".
func Icon(t ZoneType) string {
	if info, ok := zoneTypeInfo[t]; ok {
		return info.Icon
	}
	return zoneTypeInfo[ZoneOther].Icon
}

// pastelColor generates a random pastel hex color. Channels stay in the
// upper range so zone fills remain light enough for labels on top.
func pastelColor(rng *rand.Rand) string {
	c := colorful.Color{
		R: 0.706 + rng.Float64()*0.294,
		G: 0.706 + rng.Float64()*0.294,
		B: 0.706 + rng.Float64()*0.294,
	}
	return c.Hex()
}

// TypeBreakdown aggregates the zones of one type.
type TypeBreakdown struct {
	Count     int      `json:"count"`
	TotalArea float64  `json:"total_area"`
	Zones     []string `json:"zones"`
}

// Summary is the serializable aggregate over a zone collection.
type Summary struct {
	TotalZones   int                         `json:"total_zones"`
	ValidZones   int                         `json:"valid_zones"`
	InvalidZones int                         `json:"invalid_zones"`
	TotalArea    float64                     `json:"total_area"`
	ZonesByType  map[ZoneType]*TypeBreakdown `json:"zones_by_type"`
	ZonesList    []Zone                      `json:"zones_list"`
}

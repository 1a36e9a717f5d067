package osmparser

import (
	"math"

	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"github.com/tidwall/rtree"
)

type NodeCoord struct {
	lat float64
	lon float64
}

func NewNodeCoord(lat, lon float64) NodeCoord {
	return NodeCoord{lat, lon}
}

func (nc NodeCoord) GetLat() float64 {
	return nc.lat
}

func (nc NodeCoord) GetLon() float64 {
	return nc.lon
}

type Poi struct {
	Name  string
	Coord NodeCoord
}

// Segment is one street edge between two consecutive way nodes, with the points of interest attached to it.
type Segment struct {
	Street string
	Start  NodeCoord
	End    NodeCoord
	Pois   []Poi
}

type MapData struct {
	Segments []Segment
	// pois farther than the attach radius from every segment
	Unattached []Poi
}

const (
	initialAttachRadius = 0.05 // km
	maxAttachRadius     = 1.6  // km
)

/*
NewMapData attaches every poi to its nearest segment. segments are indexed by bounding box in an r-tree, the search
box around a poi starts at initialAttachRadius and doubles until a segment is found or maxAttachRadius is exceeded.
*/
func NewMapData(segments []Segment, pois []Poi) *MapData {
	var tr rtree.RTreeG[int]
	for i, s := range segments {
		tr.Insert([2]float64{math.Min(s.Start.lon, s.End.lon), math.Min(s.Start.lat, s.End.lat)},
			[2]float64{math.Max(s.Start.lon, s.End.lon), math.Max(s.Start.lat, s.End.lat)}, i)
	}

	md := &MapData{Segments: segments}
	for _, poi := range pois {
		nearest, ok := nearestSegment(&tr, segments, poi.Coord)
		if !ok {
			md.Unattached = append(md.Unattached, poi)
			continue
		}
		md.Segments[nearest].Pois = append(md.Segments[nearest].Pois, poi)
	}
	return md
}

func nearestSegment(tr *rtree.RTreeG[int], segments []Segment, p NodeCoord) (int, bool) {
	for radius := initialAttachRadius; radius <= maxAttachRadius; radius *= 2 {
		lowerLat, lowerLon := geo.GetDestinationPoint(p.lat, p.lon, 225, radius*math.Sqrt2)
		upperLat, upperLon := geo.GetDestinationPoint(p.lat, p.lon, 45, radius*math.Sqrt2)

		best, bestDist := -1, math.Inf(1)
		tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
			func(min, max [2]float64, i int) bool {
				if d := distanceToSegment(p, segments[i]); d < bestDist || (d == bestDist && i < best) {
					best, bestDist = i, d
				}
				return true
			})
		if best >= 0 {
			return best, true
		}
	}
	return -1, false
}

// distanceToSegment. squared distance (degrees²) from p to segment s in an equirectangular projection around p.
func distanceToSegment(p NodeCoord, s Segment) float64 {
	k := math.Cos(util.DegreeToRadians(p.lat))
	ax, ay := (s.Start.lon-p.lon)*k, s.Start.lat-p.lat
	bx, by := (s.End.lon-p.lon)*k, s.End.lat-p.lat

	dx, dy := bx-ax, by-ay
	t := 0.0
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		t = math.Max(0, math.Min(1, -(ax*dx+ay*dy)/lenSq))
	}
	cx, cy := ax+t*dx, ay+t*dy
	return cx*cx + cy*cy
}

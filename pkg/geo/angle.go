package geo

import (
	"math"

	"github.com/lintang-b-s/tourguide/pkg/util"
)

/*
AngleOfLine. angle of the line a->b in degrees [0, 360), measured counter-clockwise from east in the flat (lon, lat)
plane:

		   90
		   |
	180 ---a--- 0
		   |
		  270
*/
func AngleOfLine(a, b GeoPoint) float64 {
	angle := util.RadiansToDegree(math.Atan2(b.GetLat()-a.GetLat(), b.GetLon()-a.GetLon()))
	if angle < 0 {
		angle += 360
	}
	return angle
}

// AngleOfTurn. counter-clockwise turning angle at b when moving a->b->c, in [0, 360). 0 means straight on, 90 a left
// turn, 270 a right turn.
func AngleOfTurn(a, b, c GeoPoint) float64 {
	angle := AngleOfLine(b, c) - AngleOfLine(a, b)
	if angle < 0 {
		angle += 360
	}
	return angle
}

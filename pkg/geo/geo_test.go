package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPointIdentity(t *testing.T) {
	a := NewGeoPoint("34.0625", "-118.4453")
	b := NewGeoPoint("34.0625", "-118.4453")
	c := NewGeoPoint("34.06250", "-118.4453")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	// same number, different text: different points
	assert.False(t, a.Equal(c))
	assert.InDelta(t, a.GetLat(), c.GetLat(), 1e-12)
	assert.Equal(t, "34.0625,-118.4453", a.Key())
}

func TestMidPoint(t *testing.T) {
	mid := MidPoint(NewGeoPoint("0", "0"), NewGeoPoint("0", "1"))
	assert.Equal(t, "0.000000", mid.GetLatText())
	assert.Equal(t, "0.500000", mid.GetLonText())
	assert.InDelta(t, 0.5, mid.GetLon(), 1e-12)
}

func TestDistanceEarthMiles(t *testing.T) {
	testCases := []struct {
		name string
		a    GeoPoint
		b    GeoPoint
		want float64
	}{
		{
			name: "same point",
			a:    NewGeoPoint("34.0", "-118.0"),
			b:    NewGeoPoint("34.0", "-118.0"),
			want: 0,
		},
		{
			name: "one degree of longitude on the equator",
			a:    NewGeoPoint("0", "0"),
			b:    NewGeoPoint("0", "1"),
			want: 69.0934,
		},
		{
			name: "one degree of latitude",
			a:    NewGeoPoint("0", "0"),
			b:    NewGeoPoint("1", "0"),
			want: 69.0934,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceEarthMiles(tt.a, tt.b), 1e-3)
			assert.InDelta(t, DistanceEarthMiles(tt.a, tt.b), DistanceEarthMiles(tt.b, tt.a), 1e-9)
		})
	}
}

func TestManhattanDegrees(t *testing.T) {
	assert.InDelta(t, 3.5, ManhattanDegrees(NewGeoPoint("1", "-2"), NewGeoPoint("-1", "-0.5")), 1e-12)
}

func TestAngleOfLine(t *testing.T) {
	origin := NewGeoPoint("0", "0")
	testCases := []struct {
		name string
		to   GeoPoint
		want float64
	}{
		{"east", NewGeoPoint("0", "1"), 0},
		{"north", NewGeoPoint("1", "0"), 90},
		{"west", NewGeoPoint("0", "-1"), 180},
		{"south", NewGeoPoint("-1", "0"), 270},
		{"northeast", NewGeoPoint("1", "1"), 45},
		{"southeast", NewGeoPoint("-1", "1"), 315},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleOfLine(origin, tt.to), 1e-9)
		})
	}
}

func TestAngleOfTurn(t *testing.T) {
	a := NewGeoPoint("0", "0")
	b := NewGeoPoint("0", "1")

	assert.InDelta(t, 90, AngleOfTurn(a, b, NewGeoPoint("1", "1")), 1e-9)
	assert.InDelta(t, 270, AngleOfTurn(a, b, NewGeoPoint("-1", "1")), 1e-9)
	assert.InDelta(t, 0, AngleOfTurn(a, b, NewGeoPoint("0", "2")), 1e-9)
}

func TestPolylineFromPoints(t *testing.T) {
	got := PolylineFromPoints([]GeoPoint{
		NewGeoPoint("38.5", "-120.2"),
		NewGeoPoint("40.7", "-120.95"),
		NewGeoPoint("43.252", "-126.453"),
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
}

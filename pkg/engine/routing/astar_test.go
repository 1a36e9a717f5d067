package routing

import (
	"strings"
	"testing"

	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/geodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacencyGraph is an in-memory Graph for router tests.
type adjacencyGraph map[string][]geo.GeoPoint

func (g adjacencyGraph) connect(a, b geo.GeoPoint) {
	g[a.Key()] = append(g[a.Key()], b)
	g[b.Key()] = append(g[b.Key()], a)
}

func (g adjacencyGraph) GetConnectedPoints(p geo.GeoPoint) []geo.GeoPoint {
	return g[p.Key()]
}

func pt(lat, lon string) geo.GeoPoint {
	return geo.NewGeoPoint(lat, lon)
}

func assertValidPath(t *testing.T, g Graph, path []geo.GeoPoint, start, goal geo.GeoPoint) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.True(t, path[0].Equal(start), "path starts at %s, want %s", path[0], start)
	assert.True(t, path[len(path)-1].Equal(goal), "path ends at %s, want %s", path[len(path)-1], goal)
	for i := 0; i+1 < len(path); i++ {
		adjacent := false
		for _, q := range g.GetConnectedPoints(path[i]) {
			if q.Equal(path[i+1]) {
				adjacent = true
				break
			}
		}
		assert.True(t, adjacent, "%s and %s are not adjacent", path[i], path[i+1])
	}
}

func TestRouteThroughMidpoint(t *testing.T) {
	db := geodb.NewGeoDatabase(nil)
	require.NoError(t, db.LoadFrom(strings.NewReader("Main St\n0 0 0 1\n1\nCafe|0 0.4\n")))

	router := NewRouter(db)
	start, goal := pt("0", "0"), pt("0", "1")
	path := router.Route(start, goal)

	want := []geo.GeoPoint{start, geo.MidPoint(start, goal), goal}
	require.Len(t, path, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(path[i]), "path[%d] = %s, want %s", i, path[i], want[i])
	}
	assertValidPath(t, db, path, start, goal)

	cafe, ok := db.GetPoiLocation("Cafe")
	require.True(t, ok)
	path = router.Route(start, cafe)
	assert.Len(t, path, 3)
	assertValidPath(t, db, path, start, cafe)
}

func TestRoutePrefersShorterBranch(t *testing.T) {
	/*
		a ---- b ---- d
		|             |
		c ----------- e (long detour north)
	*/
	a, b, d := pt("0", "0"), pt("0", "0.01"), pt("0", "0.02")
	c, e := pt("0.05", "0"), pt("0.05", "0.02")
	g := adjacencyGraph{}
	g.connect(a, b)
	g.connect(b, d)
	g.connect(a, c)
	g.connect(c, e)
	g.connect(e, d)

	router := NewRouter(g)
	path, dist, settled := router.RouteWithStats(a, d)
	assertValidPath(t, g, path, a, d)
	assert.Len(t, path, 3)
	assert.True(t, path[1].Equal(b))
	assert.InDelta(t, geo.DistanceEarthMiles(a, d), dist, 1e-6)
	assert.Greater(t, settled, 0)
}

func TestRouteUnreachable(t *testing.T) {
	g := adjacencyGraph{}
	g.connect(pt("0", "0"), pt("0", "1"))
	g.connect(pt("5", "5"), pt("5", "6"))

	path := NewRouter(g).Route(pt("0", "0"), pt("5", "6"))
	assert.NotNil(t, path)
	assert.Empty(t, path)

	// unknown start point
	assert.Empty(t, NewRouter(g).Route(pt("9", "9"), pt("0", "0")))
}

func TestRouteStartIsGoal(t *testing.T) {
	g := adjacencyGraph{}
	g.connect(pt("0", "0"), pt("0", "1"))

	path := NewRouter(g).Route(pt("0", "0"), pt("0", "0"))
	require.Len(t, path, 1)
	assert.True(t, path[0].Equal(pt("0", "0")))
}

func TestRouteGrid(t *testing.T) {
	// 6x6 grid, every path result must be a valid chain from start to goal
	g := adjacencyGraph{}
	coord := []string{"0", "0.001", "0.002", "0.003", "0.004", "0.005"}
	for i := range coord {
		for j := range coord {
			if i+1 < len(coord) {
				g.connect(pt(coord[i], coord[j]), pt(coord[i+1], coord[j]))
			}
			if j+1 < len(coord) {
				g.connect(pt(coord[i], coord[j]), pt(coord[i], coord[j+1]))
			}
		}
	}

	testCases := []struct {
		name  string
		start geo.GeoPoint
		goal  geo.GeoPoint
		want  int
	}{
		{"corner to corner", pt("0", "0"), pt("0.005", "0.005"), 11},
		{"same row", pt("0.002", "0"), pt("0.002", "0.005"), 6},
		{"neighbours", pt("0.003", "0.003"), pt("0.003", "0.004"), 2},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path := NewRouter(g).Route(tt.start, tt.goal)
			assertValidPath(t, g, path, tt.start, tt.goal)
			assert.Len(t, path, tt.want)
		})
	}
}

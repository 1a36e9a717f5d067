package guidance

import (
	"strings"
	"testing"

	"github.com/lintang-b-s/tourguide/pkg"
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/engine/routing"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/geodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stopList [][2]string

func (s stopList) Size() int {
	return len(s)
}

func (s stopList) GetPoiData(i int) (string, string, bool) {
	if i < 0 || i >= len(s) {
		return "", "", false
	}
	return s[i][0], s[i][1], true
}

// fixedRouter always answers with the same route.
type fixedRouter struct {
	route []geo.GeoPoint
}

func (r fixedRouter) Route(start, goal geo.GeoPoint) []geo.GeoPoint {
	return r.route
}

type fakeDB struct {
	pois    map[string]geo.GeoPoint
	streets map[string]string
}

func (db fakeDB) GetPoiLocation(poi string) (geo.GeoPoint, bool) {
	p, ok := db.pois[poi]
	return p, ok
}

func (db fakeDB) GetStreetName(a, b geo.GeoPoint) string {
	return db.streets[geo.EdgeKey(a, b)]
}

func pt(lat, lon string) geo.GeoPoint {
	return geo.NewGeoPoint(lat, lon)
}

func commandTypes(cmds []da.TourCommand) []da.CommandType {
	out := make([]da.CommandType, len(cmds))
	for i, c := range cmds {
		out[i] = c.GetCommandType()
	}
	return out
}

func loadDB(t *testing.T, data string) *geodb.GeoDatabase {
	t.Helper()
	db := geodb.NewGeoDatabase(nil)
	require.NoError(t, db.LoadFrom(strings.NewReader(data)))
	return db
}

func TestCompassDirection(t *testing.T) {
	testCases := []struct {
		angle float64
		want  pkg.CompassDirection
	}{
		{0, pkg.EAST},
		{22.49, pkg.EAST},
		{22.5, pkg.NORTHEAST},
		{67.5, pkg.NORTH},
		{112.5, pkg.NORTHWEST},
		{157.5, pkg.WEST},
		{202.5, pkg.SOUTHWEST},
		{247.5, pkg.SOUTH},
		{292.5, pkg.SOUTHEAST},
		{337.49, pkg.SOUTHEAST},
		{337.5, pkg.EAST},
		{359.9, pkg.EAST},
	}

	for _, tt := range testCases {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, compassDirectionOfAngle(tt.angle), "angle %v", tt.angle)
		})
	}
}

func TestTurnType(t *testing.T) {
	testCases := []struct {
		name  string
		angle float64
		want  pkg.TurnType
	}{
		{"straight", 0, pkg.NONE},
		{"below one degree", 0.5, pkg.NONE},
		{"slight left", 1, pkg.LEFT_TURN},
		{"left", 90, pkg.LEFT_TURN},
		{"u turn", 180, pkg.RIGHT_TURN},
		{"right", 270, pkg.RIGHT_TURN},
		{"slight right", 359, pkg.RIGHT_TURN},
		{"almost straight", 359.5, pkg.NONE},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getTurnType(tt.angle))
		})
	}
}

func TestSingleStopIsOnlyCommentary(t *testing.T) {
	tg := NewTourGenerator(fakeDB{}, fixedRouter{})
	cmds := tg.GenerateTour(stopList{{"Royce Hall", "a concert hall"}})

	require.Len(t, cmds, 1)
	assert.Equal(t, da.COMMENTARY, cmds[0].GetCommandType())
	assert.Equal(t, "Royce Hall", cmds[0].GetPoi())
	assert.Equal(t, "a concert hall", cmds[0].GetCommentary())
}

func TestEmptyStops(t *testing.T) {
	tg := NewTourGenerator(fakeDB{}, fixedRouter{})
	assert.Empty(t, tg.GenerateTour(stopList{}))
}

func TestUnreachableStopsGiveEmptyTour(t *testing.T) {
	db := loadDB(t, `Main St
0 0 0 1
1
Cafe|0 0.4
Far Road
5 5 5 6
1
Museum|5 5.4
`)
	tg := NewTourGenerator(db, routing.NewRouter(db))
	cmds := tg.GenerateTour(stopList{{"Cafe", "coffee"}, {"Museum", "art"}})
	assert.NotNil(t, cmds)
	assert.Empty(t, cmds)
}

func TestUnknownPoiGivesEmptyTour(t *testing.T) {
	db := loadDB(t, "Main St\n0 0 0 1\n1\nCafe|0 0.4\n")
	tg := NewTourGenerator(db, routing.NewRouter(db))

	assert.Empty(t, tg.GenerateTour(stopList{{"Cafe", "coffee"}, {"Nowhere", ""}}))
	assert.Empty(t, tg.GenerateTour(stopList{{"Nowhere", ""}, {"Cafe", "coffee"}}))
}

func TestLeftTurnOnStreetChange(t *testing.T) {
	a, b, c := pt("0", "0"), pt("0", "1"), pt("1", "1")
	db := fakeDB{
		pois: map[string]geo.GeoPoint{"A": a, "C": c},
		streets: map[string]string{
			geo.EdgeKey(a, b): "First St",
			geo.EdgeKey(b, c): "Second St",
		},
	}
	tg := NewTourGenerator(db, fixedRouter{route: []geo.GeoPoint{a, b, c}})
	cmds := tg.GenerateTour(stopList{{"A", "start"}, {"C", "end"}})

	assert.Equal(t, []da.CommandType{da.COMMENTARY, da.PROCEED, da.TURN, da.PROCEED, da.COMMENTARY},
		commandTypes(cmds))

	assert.Equal(t, "east", cmds[1].GetDirection())
	assert.Equal(t, "First St", cmds[1].GetStreet())
	assert.InDelta(t, geo.DistanceEarthMiles(a, b), cmds[1].GetDistance(), 1e-9)
	assert.True(t, cmds[1].GetFrom().Equal(a))
	assert.True(t, cmds[1].GetTo().Equal(b))

	assert.Equal(t, "left", cmds[2].GetDirection())
	assert.Equal(t, "Second St", cmds[2].GetStreet())

	assert.Equal(t, "north", cmds[3].GetDirection())
	assert.Equal(t, "Second St", cmds[3].GetStreet())
	assert.Equal(t, "C", cmds[4].GetPoi())
}

func TestNoTurnWithoutManeuver(t *testing.T) {
	a, b := pt("0", "0"), pt("0", "1")
	testCases := []struct {
		name    string
		c       geo.GeoPoint
		streets [2]string
		want    []da.CommandType
	}{
		{
			name:    "right turn",
			c:       pt("-1", "1"),
			streets: [2]string{"First St", "Second St"},
			want:    []da.CommandType{da.COMMENTARY, da.PROCEED, da.TURN, da.PROCEED, da.COMMENTARY},
		},
		{
			name:    "same street turning",
			c:       pt("1", "1"),
			streets: [2]string{"First St", "First St"},
			want:    []da.CommandType{da.COMMENTARY, da.PROCEED, da.PROCEED, da.COMMENTARY},
		},
		{
			name:    "new street straight on",
			c:       pt("0", "2"),
			streets: [2]string{"First St", "Second St"},
			want:    []da.CommandType{da.COMMENTARY, da.PROCEED, da.PROCEED, da.COMMENTARY},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := fakeDB{
				pois: map[string]geo.GeoPoint{"A": a, "C": tt.c},
				streets: map[string]string{
					geo.EdgeKey(a, b):    tt.streets[0],
					geo.EdgeKey(b, tt.c): tt.streets[1],
				},
			}
			tg := NewTourGenerator(db, fixedRouter{route: []geo.GeoPoint{a, b, tt.c}})
			cmds := tg.GenerateTour(stopList{{"A", ""}, {"C", ""}})
			assert.Equal(t, tt.want, commandTypes(cmds))
			if tt.name == "right turn" {
				assert.Equal(t, "right", cmds[2].GetDirection())
			}
		})
	}
}

func TestTourOverLoadedMap(t *testing.T) {
	db := loadDB(t, `Broxton Avenue
34.0632405 -118.4470467 34.0625329 -118.4470167
1
Diddy Riese|34.0630614 -118.4468781
Le Conte Avenue
34.0625329 -118.4470167 34.0624442 -118.4461533
1
Mr. Noodle|34.0624980 -118.4465000
`)
	tg := NewTourGenerator(db, routing.NewRouter(db))
	cmds := tg.GenerateTour(stopList{
		{"Diddy Riese", "cookies"},
		{"Mr. Noodle", "noodles"},
		{"Diddy Riese", "more cookies"},
	})
	require.NotEmpty(t, cmds)

	assert.Equal(t, da.COMMENTARY, cmds[0].GetCommandType())
	assert.Equal(t, da.COMMENTARY, cmds[len(cmds)-1].GetCommandType())
	assert.Equal(t, "more cookies", cmds[len(cmds)-1].GetCommentary())

	// leaving a poi always starts on its footpath
	assert.Equal(t, da.PROCEED, cmds[1].GetCommandType())
	assert.Equal(t, pkg.FOOTPATH_STREET_NAME, cmds[1].GetStreet())

	commentaries := 0
	for _, c := range cmds {
		switch c.GetCommandType() {
		case da.COMMENTARY:
			commentaries++
		case da.PROCEED:
			assert.NotEmpty(t, c.GetStreet())
			assert.NotEmpty(t, c.GetDirection())
		case da.TURN:
			assert.Contains(t, []string{"left", "right"}, c.GetDirection())
		}
	}
	assert.Equal(t, 3, commentaries)
}

func TestSummarize(t *testing.T) {
	a, b, c, d := pt("0", "0"), pt("0", "1"), pt("0", "2"), pt("1", "2")
	cmds := []da.TourCommand{
		da.NewCommentaryCommand("A", "start"),
		da.NewProceedCommand("west", pkg.FOOTPATH_STREET_NAME, 0.1, a, b),
		da.NewProceedCommand("east", pkg.FOOTPATH_STREET_NAME, 0.2, b, a),
		da.NewProceedCommand("east", "Main St", 1.0, a, b),
		da.NewProceedCommand("north", "Main St", 2.0, b, c),
		da.NewTurnCommand("left", "Side St"),
		da.NewProceedCommand("north", "Side St", 0.5, c, d),
		da.NewCommentaryCommand("D", "end"),
	}

	summary := Summarize(cmds)
	assert.InDelta(t, 3.8, summary.TotalDistance, 1e-9)
	require.Len(t, summary.Steps, 7)

	assert.Equal(t, da.COMMENTARY, summary.Steps[0].CommandType)
	// footpath edges stay separate
	assert.Equal(t, Step{CommandType: da.PROCEED, Direction: "west", Street: pkg.FOOTPATH_STREET_NAME, Distance: 0.1},
		summary.Steps[1])
	assert.Equal(t, pkg.FOOTPATH_STREET_NAME, summary.Steps[2].Street)
	// Main St merged, direction of its first edge
	assert.Equal(t, "Main St", summary.Steps[3].Street)
	assert.Equal(t, "east", summary.Steps[3].Direction)
	assert.InDelta(t, 3.0, summary.Steps[3].Distance, 1e-9)
	assert.Equal(t, Step{CommandType: da.TURN, Direction: "left", Street: "Side St"}, summary.Steps[4])
	assert.Equal(t, "Side St", summary.Steps[5].Street)
	assert.Equal(t, "D", summary.Steps[6].Poi)
}

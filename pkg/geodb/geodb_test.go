package geodb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/tourguide/pkg"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const westwoodMapData = `10th Helena Drive
34.0547000 -118.4794734 34.0544590 -118.4801137
0
Broxton Avenue
34.0632405 -118.4470467 34.0625329 -118.4470167
2
Diddy Riese|34.0630614 -118.4468781
Fatburger|34.0626647 -118.4472813
Le Conte Avenue
34.0625329 -118.4470167 34.0624442 -118.4461533
1
Mr. Noodle|34.0624980 -118.4465000
`

func newTestDB(t *testing.T, data string) *GeoDatabase {
	t.Helper()
	db := NewGeoDatabase(nil)
	require.NoError(t, db.LoadFrom(strings.NewReader(data)))
	return db
}

func keys(points []geo.GeoPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Key()
	}
	return out
}

func TestSingleSegmentWithoutPoi(t *testing.T) {
	db := newTestDB(t, "Main St\n0 0 0 1\n0\n")

	start := geo.NewGeoPoint("0", "0")
	end := geo.NewGeoPoint("0", "1")

	assert.Equal(t, []string{"0,1"}, keys(db.GetConnectedPoints(start)))
	assert.Equal(t, []string{"0,0"}, keys(db.GetConnectedPoints(end)))
	assert.Equal(t, "Main St", db.GetStreetName(start, end))
	assert.Equal(t, "Main St", db.GetStreetName(end, start))
	assert.Equal(t, 1, db.NumSegments())
	assert.Equal(t, 2, db.NumPoints())
}

func TestSegmentWithPoiSplitsAtMidpoint(t *testing.T) {
	db := newTestDB(t, "Main St\n0 0 0 1\n1\nCafe|0 0.4\n")

	start := geo.NewGeoPoint("0", "0")
	end := geo.NewGeoPoint("0", "1")
	mid := geo.NewGeoPoint("0.000000", "0.500000")
	cafe := geo.NewGeoPoint("0", "0.4")

	loc, ok := db.GetPoiLocation("Cafe")
	require.True(t, ok)
	assert.True(t, loc.Equal(cafe))

	assert.Equal(t, []string{mid.Key()}, keys(db.GetConnectedPoints(start)))
	assert.Equal(t, []string{mid.Key()}, keys(db.GetConnectedPoints(end)))
	assert.ElementsMatch(t, []string{start.Key(), end.Key(), cafe.Key()}, keys(db.GetConnectedPoints(mid)))
	// poi only reachable through the midpoint
	assert.Equal(t, []string{mid.Key()}, keys(db.GetConnectedPoints(cafe)))

	assert.Equal(t, "Main St", db.GetStreetName(start, mid))
	assert.Equal(t, "Main St", db.GetStreetName(mid, end))
	assert.Equal(t, pkg.FOOTPATH_STREET_NAME, db.GetStreetName(mid, cafe))
	assert.Equal(t, pkg.FOOTPATH_STREET_NAME, db.GetStreetName(cafe, mid))

	// the direct name entry survives without a direct adjacency
	assert.Equal(t, "Main St", db.GetStreetName(start, end))
}

func TestMissesAreNotErrors(t *testing.T) {
	db := newTestDB(t, westwoodMapData)

	_, ok := db.GetPoiLocation("Ackerman Union")
	assert.False(t, ok)

	unknown := geo.NewGeoPoint("1", "1")
	assert.NotNil(t, db.GetConnectedPoints(unknown))
	assert.Empty(t, db.GetConnectedPoints(unknown))
	assert.Equal(t, "", db.GetStreetName(unknown, geo.NewGeoPoint("34.0547000", "-118.4794734")))
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	db := newTestDB(t, westwoodMapData)

	checked := 0
	db.ForEachPoint(func(a geo.GeoPoint) {
		for _, b := range db.GetConnectedPoints(a) {
			assert.Contains(t, keys(db.GetConnectedPoints(b)), a.Key(), "%s -> %s not mirrored", a, b)
			assert.Equal(t, db.GetStreetName(a, b), db.GetStreetName(b, a))
			assert.NotEmpty(t, db.GetStreetName(a, b))
			checked++
		}
	})
	assert.Greater(t, checked, 0)
}

func TestPoiNames(t *testing.T) {
	db := newTestDB(t, westwoodMapData)
	assert.Equal(t, []string{"Diddy Riese", "Fatburger", "Mr. Noodle"}, db.PoiNames())
	assert.Equal(t, 3, db.NumPois())
	assert.Equal(t, 3, db.NumSegments())
}

func TestSharedEndpointJoinsSegments(t *testing.T) {
	db := newTestDB(t, westwoodMapData)

	// Broxton Avenue ends where Le Conte Avenue starts, both carry pois so both connect through midpoints
	junction := geo.NewGeoPoint("34.0625329", "-118.4470167")
	broxtonMid := geo.MidPoint(geo.NewGeoPoint("34.0632405", "-118.4470467"), junction)
	leConteMid := geo.MidPoint(junction, geo.NewGeoPoint("34.0624442", "-118.4461533"))

	assert.ElementsMatch(t, []string{broxtonMid.Key(), leConteMid.Key()}, keys(db.GetConnectedPoints(junction)))
	assert.Equal(t, "Broxton Avenue", db.GetStreetName(junction, broxtonMid))
	assert.Equal(t, "Le Conte Avenue", db.GetStreetName(junction, leConteMid))
}

func TestParseTolerance(t *testing.T) {
	testCases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "crlf line endings",
			data: "Main St\r\n0 0 0 1\r\n1\r\nCafe|0 0.4\r\n",
			want: "Main St",
		},
		{
			name: "no trailing newline",
			data: "Main St\n0 0 0 1\n1\nCafe|0 0.4",
			want: "Main St",
		},
		{
			name: "poi count on coordinate line",
			data: "Main St\n0 0 0 1 1\nCafe|0 0.4\n",
			want: "Main St",
		},
		{
			name: "empty street name",
			data: "\n0 0 0 1\n1\nCafe|0 0.4\n",
			want: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t, tt.data)
			loc, ok := db.GetPoiLocation("Cafe")
			require.True(t, ok)
			assert.Equal(t, "0,0.4", loc.Key())
			mid := geo.NewGeoPoint("0.000000", "0.500000")
			assert.Equal(t, tt.want, db.GetStreetName(geo.NewGeoPoint("0", "0"), mid))
		})
	}
}

func TestTruncatedRecordStopsParsing(t *testing.T) {
	db := newTestDB(t, "Main St\n0 0 0 1\n0\nDangling Street\n")
	assert.Equal(t, 1, db.NumSegments())
}

func TestLoadIdempotent(t *testing.T) {
	a := newTestDB(t, westwoodMapData)
	b := newTestDB(t, westwoodMapData)

	assert.Equal(t, a.PoiNames(), b.PoiNames())
	a.ForEachPoint(func(p geo.GeoPoint) {
		assert.Equal(t, keys(a.GetConnectedPoints(p)), keys(b.GetConnectedPoints(p)))
		for _, q := range a.GetConnectedPoints(p) {
			assert.Equal(t, a.GetStreetName(p, q), b.GetStreetName(p, q))
		}
	})
	for _, name := range a.PoiNames() {
		la, _ := a.GetPoiLocation(name)
		lb, _ := b.GetPoiLocation(name)
		assert.True(t, la.Equal(lb))
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "mapdata.txt")
	require.NoError(t, os.WriteFile(plain, []byte(westwoodMapData), 0644))

	compressed := filepath.Join(dir, "mapdata.txt.bz2")
	f, err := os.Create(compressed)
	require.NoError(t, err)
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	_, err = bz.Write([]byte(westwoodMapData))
	require.NoError(t, err)
	require.NoError(t, bz.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, compressed} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			db := NewGeoDatabase(nil)
			require.NoError(t, db.Load(path))
			assert.Equal(t, 3, db.NumPois())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	db := NewGeoDatabase(nil)
	err := db.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrBadParamInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package geodb

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/tourguide/pkg"
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"go.uber.org/zap"
)

// GeoDatabase holds the street graph built from map data: point of interest locations, the (undirected) adjacency
// between points, and the street name of every edge. It is written only by Load/LoadFrom; all other methods are
// read-only and safe to call from multiple goroutines once loading is done.
type GeoDatabase struct {
	poiMap         *da.HashMap[geo.GeoPoint]   // poi name -> location
	connectionsMap *da.HashMap[[]geo.GeoPoint] // point key -> adjacent points
	streetMap      *da.HashMap[string]         // point key + point key -> street name
	points         *da.HashMap[geo.GeoPoint]   // point key -> point
	numSegments    int
	log            *zap.Logger
}

func NewGeoDatabase(log *zap.Logger) *GeoDatabase {
	return NewGeoDatabaseWithLoadFactor(log, pkg.DEFAULT_MAX_LOAD_FACTOR)
}

func NewGeoDatabaseWithLoadFactor(log *zap.Logger, maxLoadFactor float64) *GeoDatabase {
	if log == nil {
		log = zap.NewNop()
	}
	return &GeoDatabase{
		poiMap:         da.NewHashMap[geo.GeoPoint](maxLoadFactor),
		connectionsMap: da.NewHashMap[[]geo.GeoPoint](maxLoadFactor),
		streetMap:      da.NewHashMap[string](maxLoadFactor),
		points:         da.NewHashMap[geo.GeoPoint](maxLoadFactor),
		log:            log,
	}
}

// Load reads map data from mapDataFile. Files ending in ".bz2" are bzip2 decompressed first.
func (db *GeoDatabase) Load(mapDataFile string) error {
	f, err := os.Open(mapDataFile)
	if err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "unable to open map data %s", mapDataFile)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(mapDataFile, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "unable to decompress map data %s", mapDataFile)
		}
		defer bz.Close()
		r = bz
	}

	db.log.Info("loading map data", zap.String("mapDataFile", mapDataFile))
	if err := db.LoadFrom(r); err != nil {
		return err
	}
	db.log.Info("map data loaded", zap.Int("segments", db.numSegments),
		zap.Int("points", db.points.Size()), zap.Int("pois", db.poiMap.Size()))
	return nil
}

/*
LoadFrom parses street segment records until end of input. each record is:

	<street name>
	<start lat> <start lon> <end lat> <end lon>
	<P>
	<poi name>|<poi lat> <poi lon>    (P lines)

records are not validated, a malformed number is read as 0.
*/
func (db *GeoDatabase) LoadFrom(r io.Reader) error {
	br := bufio.NewReader(r)

	for {
		street, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return util.WrapErrorf(err, util.ErrInternalServerError, "unable to read map data")
		}

		seg, err := readSegment(br, street)
		if errors.Is(err, io.EOF) {
			// trailing street name without coordinates
			db.log.Debug("map data ended inside a street segment", zap.String("street", street))
			return nil
		} else if err != nil {
			return util.WrapErrorf(err, util.ErrInternalServerError, "unable to read street segment %q", street)
		}

		db.addSegment(seg)
	}
}

type poiRecord struct {
	name     string
	location geo.GeoPoint
}

type streetSegment struct {
	street string
	start  geo.GeoPoint
	end    geo.GeoPoint
	pois   []poiRecord
}

// readSegment reads the rest of a record whose street name line has already been consumed.
func readSegment(br *bufio.Reader, street string) (streetSegment, error) {
	seg := streetSegment{street: street}

	tokens, err := readTokens(br, 4, nil)
	if err != nil {
		return seg, err
	}
	seg.start = geo.NewGeoPoint(tokens[0], tokens[1])
	seg.end = geo.NewGeoPoint(tokens[2], tokens[3])

	// the poi count may share the coordinate line
	tokens, err = readTokens(br, 1, tokens[4:])
	if err != nil {
		return seg, err
	}
	numPoi, _ := strconv.Atoi(tokens[0])

	for i := 0; i < numPoi; i++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return seg, err
		}
		seg.pois = append(seg.pois, parsePoiLine(line))
	}
	return seg, nil
}

// readTokens reads whole lines until at least n whitespace separated tokens (including pending) are collected.
func readTokens(br *bufio.Reader, n int, pending []string) ([]string, error) {
	tokens := make([]string, 0, n)
	tokens = append(tokens, pending...)
	for len(tokens) < n {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, util.Fields(line)...)
	}
	return tokens, nil
}

func parsePoiLine(line string) poiRecord {
	name, location, _ := strings.Cut(line, "|")
	ff := util.Fields(location)
	lat, lon := "", ""
	if len(ff) > 0 {
		lat = ff[0]
	}
	if len(ff) > 1 {
		lon = ff[1]
	}
	return poiRecord{name: name, location: geo.NewGeoPoint(lat, lon)}
}

func (db *GeoDatabase) addSegment(seg streetSegment) {
	db.numSegments++

	// the direct name entry stays even when the street is split at a midpoint below
	db.addStreetName(seg.start, seg.end, seg.street)

	if len(seg.pois) == 0 {
		db.connect(seg.start, seg.end)
		return
	}

	// pois hang off the midpoint so through traffic on the street never passes them
	mid := geo.MidPoint(seg.start, seg.end)
	db.addStreetName(seg.start, mid, seg.street)
	db.addStreetName(mid, seg.end, seg.street)
	db.connect(seg.start, mid)
	db.connect(mid, seg.end)

	for _, poi := range seg.pois {
		db.poiMap.Insert(poi.name, poi.location)
		db.addStreetName(mid, poi.location, pkg.FOOTPATH_STREET_NAME)
		db.connect(mid, poi.location)
	}
}

func (db *GeoDatabase) addStreetName(a, b geo.GeoPoint, street string) {
	db.streetMap.Insert(geo.EdgeKey(a, b), street)
	db.streetMap.Insert(geo.EdgeKey(b, a), street)
}

func (db *GeoDatabase) connect(a, b geo.GeoPoint) {
	db.points.Insert(a.Key(), a)
	db.points.Insert(b.Key(), b)

	aConnections := db.connectionsMap.Index(a.Key())
	*aConnections = append(*aConnections, b)

	// aConnections may be invalid past this point
	bConnections := db.connectionsMap.Index(b.Key())
	*bConnections = append(*bConnections, a)
}

func (db *GeoDatabase) GetPoiLocation(poi string) (geo.GeoPoint, bool) {
	return db.poiMap.Find(poi)
}

// GetConnectedPoints returns the points adjacent to p, or an empty slice if p is unknown.
func (db *GeoDatabase) GetConnectedPoints(p geo.GeoPoint) []geo.GeoPoint {
	connections, ok := db.connectionsMap.Find(p.Key())
	if !ok {
		return []geo.GeoPoint{}
	}
	out := make([]geo.GeoPoint, len(connections))
	copy(out, connections)
	return out
}

// GetStreetName returns the street name of the edge a->b, or "" if no such edge was recorded.
func (db *GeoDatabase) GetStreetName(a, b geo.GeoPoint) string {
	street, _ := db.streetMap.Find(geo.EdgeKey(a, b))
	return street
}

// PoiNames returns every loaded point of interest name in ascending order.
func (db *GeoDatabase) PoiNames() []string {
	names := make([]string, 0, db.poiMap.Size())
	db.poiMap.ForEach(func(name string, _ geo.GeoPoint) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// ForEachPoint visits every point that has at least one connection.
func (db *GeoDatabase) ForEachPoint(handle func(p geo.GeoPoint)) {
	db.points.ForEach(func(_ string, p geo.GeoPoint) bool {
		handle(p)
		return true
	})
}

func (db *GeoDatabase) NumPoints() int {
	return db.points.Size()
}

func (db *GeoDatabase) NumPois() int {
	return db.poiMap.Size()
}

func (db *GeoDatabase) NumSegments() int {
	return db.numSegments
}

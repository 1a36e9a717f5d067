package osmparser

import (
	"context"
	"io"
	"os"

	"github.com/lintang-b-s/tourguide/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type osmWay struct {
	name  string
	nodes []osm.NodeID
}

// OsmParser converts an openstreetmap pbf extract into street segments and points of interest.
type OsmParser struct {
	wayNodes   map[osm.NodeID]struct{}
	nodeCoords map[osm.NodeID]NodeCoord
	ways       []osmWay
	pois       []Poi
	logger     *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OsmParser{
		wayNodes:   make(map[osm.NodeID]struct{}),
		nodeCoords: make(map[osm.NodeID]NodeCoord),
		ways:       make([]osmWay, 0),
		pois:       make([]Poi, 0),
		logger:     logger,
	}
}

func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*MapData, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "unable to open osm file %s", mapFile)
	}
	defer f.Close()

	return p.ParseFrom(ctx, f)
}

/*
ParseFrom scans the pbf twice:

 1. named walkable ways, remembering the ids of their nodes.
 2. coordinates of those nodes, and named nodes tagged as a point of interest.

the reader must not be shared, it is rewound between the passes.
*/
func (p *OsmParser) ParseFrom(ctx context.Context, rs io.ReadSeeker) (*MapData, error) {
	// must not be parallel
	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		nodes := make([]osm.NodeID, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			p.wayNodes[n.ID] = struct{}{}
			nodes = append(nodes, n.ID)
		}
		p.ways = append(p.ways, osmWay{name: way.Tags.Find("name"), nodes: nodes})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "unable to scan osm ways")
	}
	scanner.Close()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "unable to rewind osm file")
	}

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	countNodes := 0
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if (countNodes+1)%500000 == 0 {
			p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		p.processNode(node)
	}
	if err := scanner.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "unable to scan osm nodes")
	}

	md := NewMapData(p.buildSegments(), p.pois)
	p.logger.Info("openstreetmap extract converted", zap.Int("ways", len(p.ways)),
		zap.Int("segments", len(md.Segments)), zap.Int("pois", md.NumPois()),
		zap.Int("unattachedPois", len(md.Unattached)))
	return md, nil
}

func (p *OsmParser) processNode(node *osm.Node) {
	coord := NewNodeCoord(node.Lat, node.Lon)
	if _, ok := p.wayNodes[node.ID]; ok {
		p.nodeCoords[node.ID] = coord
	}
	if name := node.Tags.Find("name"); name != "" && isPoi(node.Tags) {
		p.pois = append(p.pois, Poi{Name: name, Coord: coord})
	}
}

// buildSegments splits every way into one segment per pair of consecutive nodes.
func (p *OsmParser) buildSegments() []Segment {
	segments := make([]Segment, 0, len(p.wayNodes))
	for _, way := range p.ways {
		for i := 0; i+1 < len(way.nodes); i++ {
			from, okFrom := p.nodeCoords[way.nodes[i]]
			to, okTo := p.nodeCoords[way.nodes[i+1]]
			if !okFrom || !okTo || from == to {
				continue
			}
			segments = append(segments, Segment{Street: way.name, Start: from, End: to})
		}
	}
	return segments
}

var acceptedHighway = map[string]struct{}{
	"primary":        {},
	"secondary":      {},
	"tertiary":       {},
	"unclassified":   {},
	"residential":    {},
	"living_street":  {},
	"pedestrian":     {},
	"service":        {},
	"footway":        {},
	"path":           {},
	"steps":          {},
	"track":          {},
	"primary_link":   {},
	"secondary_link": {},
	"tertiary_link":  {},
}

var poiKeys = []string{"amenity", "tourism", "shop", "leisure", "historic"}

func acceptOsmWay(way *osm.Way) bool {
	if way.Tags.Find("name") == "" {
		return false
	}
	if way.Tags.Find("foot") == "no" || way.Tags.Find("access") == "private" {
		return false
	}
	_, ok := acceptedHighway[way.Tags.Find("highway")]
	return ok
}

func isPoi(tags osm.Tags) bool {
	for _, key := range poiKeys {
		if tags.Find(key) != "" {
			return true
		}
	}
	return false
}

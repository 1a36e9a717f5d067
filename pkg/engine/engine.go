package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/engine/routing"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/geodb"
	"github.com/lintang-b-s/tourguide/pkg/guidance"
	"github.com/lintang-b-s/tourguide/pkg/spatialindex"
	"go.uber.org/zap"
)

type routeCacheKey struct {
	start string
	goal  string
}

type cachedRoute struct {
	path     []geo.GeoPoint
	distance float64
	settled  int
}

// Engine wires the loaded street graph to the router, the tour generator and the spatial index. It is read-only once
// built and safe for concurrent use.
type Engine struct {
	db            *geodb.GeoDatabase
	router        *routing.Router
	tourGenerator *guidance.TourGenerator
	rtree         *spatialindex.Rtree
	routeCache    *lru.Cache[routeCacheKey, cachedRoute]
	logger        *zap.Logger
}

func NewEngine(mapDataFile string, maxLoadFactor float64, routeCacheSize int, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting tour guide engine...")

	db := geodb.NewGeoDatabaseWithLoadFactor(logger, maxLoadFactor)
	if err := db.Load(mapDataFile); err != nil {
		return nil, err
	}
	return NewEngineFromDatabase(db, routeCacheSize, logger), nil
}

func NewEngineFromDatabase(db *geodb.GeoDatabase, routeCacheSize int, logger *zap.Logger) *Engine {
	if routeCacheSize < 1 {
		routeCacheSize = 1
	}
	// only errors on non-positive size
	routeCache, _ := lru.New[routeCacheKey, cachedRoute](routeCacheSize)

	rt := spatialindex.NewRtree()
	rt.Build(db, logger)

	router := routing.NewRouter(db)
	e := &Engine{
		db:         db,
		router:     router,
		rtree:      rt,
		routeCache: routeCache,
		logger:     logger,
	}
	e.tourGenerator = guidance.NewTourGenerator(db, e)
	return e
}

func (e *Engine) GetGeoDatabase() *geodb.GeoDatabase {
	return e.db
}

func (e *Engine) GetRouter() *routing.Router {
	return e.router
}

func (e *Engine) GetSpatialIndex() *spatialindex.Rtree {
	return e.rtree
}

// Route is Router.Route behind the route cache.
func (e *Engine) Route(start, goal geo.GeoPoint) []geo.GeoPoint {
	path, _, _ := e.RouteWithStats(start, goal)
	return path
}

func (e *Engine) RouteWithStats(start, goal geo.GeoPoint) ([]geo.GeoPoint, float64, int) {
	key := routeCacheKey{start: start.Key(), goal: goal.Key()}
	if cached, ok := e.routeCache.Get(key); ok {
		return cached.path, cached.distance, cached.settled
	}

	path, distance, settled := e.router.RouteWithStats(start, goal)
	e.routeCache.Add(key, cachedRoute{path: path, distance: distance, settled: settled})
	e.logger.Debug("route computed", zap.String("start", key.start), zap.String("goal", key.goal),
		zap.Int("points", len(path)), zap.Int("settled", settled))
	return path, distance, settled
}

func (e *Engine) GenerateTour(stops guidance.Stops) []da.TourCommand {
	return e.tourGenerator.GenerateTour(stops)
}

// NearestPoint snaps (lat, lon) to the closest graph point within radius km.
func (e *Engine) NearestPoint(lat, lon, radius float64) (geo.GeoPoint, float64, bool) {
	return e.rtree.NearestPoint(lat, lon, radius)
}

func (e *Engine) GetPoiLocation(poi string) (geo.GeoPoint, bool) {
	return e.db.GetPoiLocation(poi)
}

func (e *Engine) PoiNames() []string {
	return e.db.PoiNames()
}

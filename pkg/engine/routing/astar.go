package routing

import (
	"github.com/lintang-b-s/tourguide/pkg"
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/util"
)

// Router finds paths between points of a Graph with A*. It keeps no state between queries.
type Router struct {
	graph Graph
}

func NewRouter(graph Graph) *Router {
	return &Router{graph: graph}
}

// Route returns a path from start to goal, or an empty slice if goal is unreachable.
func (r *Router) Route(start, goal geo.GeoPoint) []geo.GeoPoint {
	path, _, _ := r.RouteWithStats(start, goal)
	return path
}

/*
RouteWithStats. A* from start to goal. also returns path length in miles and the number of settled points.

f(n) = g(n) + h(n), g(n) = miles travelled from start to n, h(n) = |Δlat| + |Δlon| between n and goal (degrees).
h is not in the same unit as g so the returned path is not guaranteed to be the shortest one.

the open set may hold several entries of the same point: a point is pushed again only if it is not currently
queued, and a stale entry popped later just relaxes its neighbours with the up to date g score.
*/
func (r *Router) RouteWithStats(start, goal geo.GeoPoint) ([]geo.GeoPoint, float64, int) {
	search := newAstarSearch(start, goal)

	for !search.openSet.IsEmpty() {
		node, _ := search.openSet.GetMin()
		current := node.GetItem()
		if current.Equal(goal) {
			return search.reconstructPath(current), search.gScore(current), search.numSettled
		}

		search.openSet.ExtractMin()
		delete(search.inOpenSet, current.Key())
		search.numSettled++

		for _, neighbor := range r.graph.GetConnectedPoints(current) {
			search.relax(current, neighbor)
		}
	}

	return []geo.GeoPoint{}, 0, search.numSettled
}

type astarSearch struct {
	goal      geo.GeoPoint
	openSet   *da.MinHeap[geo.GeoPoint]
	inOpenSet map[string]struct{}
	cameFrom  map[string]geo.GeoPoint
	gScores   map[string]float64
	fScores   map[string]float64

	numSettled int
}

func newAstarSearch(start, goal geo.GeoPoint) *astarSearch {
	s := &astarSearch{
		goal:      goal,
		openSet:   da.NewFourAryHeap[geo.GeoPoint](),
		inOpenSet: make(map[string]struct{}),
		cameFrom:  make(map[string]geo.GeoPoint),
		gScores:   make(map[string]float64),
		fScores:   make(map[string]float64),
	}

	h := geo.ManhattanDegrees(start, goal)
	s.gScores[start.Key()] = 0
	s.fScores[start.Key()] = h
	s.openSet.Insert(da.NewPriorityQueueNode(h, start))
	s.inOpenSet[start.Key()] = struct{}{}
	return s
}

func (s *astarSearch) gScore(p geo.GeoPoint) float64 {
	if g, ok := s.gScores[p.Key()]; ok {
		return g
	}
	return pkg.INF_WEIGHT
}

func (s *astarSearch) relax(current, neighbor geo.GeoPoint) {
	tentativeG := s.gScore(current) + geo.DistanceEarthMiles(current, neighbor)
	if tentativeG >= s.gScore(neighbor) {
		return
	}

	key := neighbor.Key()
	s.cameFrom[key] = current
	s.gScores[key] = tentativeG
	s.fScores[key] = tentativeG + geo.ManhattanDegrees(neighbor, s.goal)

	if _, queued := s.inOpenSet[key]; !queued {
		s.openSet.Insert(da.NewPriorityQueueNode(s.fScores[key], neighbor))
		s.inOpenSet[key] = struct{}{}
	}
}

// reconstructPath follows cameFrom back from end to the start point.
func (s *astarSearch) reconstructPath(end geo.GeoPoint) []geo.GeoPoint {
	path := []geo.GeoPoint{end}
	current := end
	for {
		prev, ok := s.cameFrom[current.Key()]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	return util.ReverseG(path)
}

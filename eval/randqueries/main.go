package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lintang-b-s/tourguide/pkg/concurrent"
	"github.com/lintang-b-s/tourguide/pkg/engine/routing"
	"github.com/lintang-b-s/tourguide/pkg/geodb"
	log "github.com/lintang-b-s/tourguide/pkg/logger"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	mapDataFile = flag.String("map", "./data/mapdata.txt", "map data file")
	outFile     = flag.String("out", "rand_queries_result.txt", "result file")
	numQueries  = flag.Int("n", 10000, "number of random poi pairs")
	numWorkers  = flag.Int("workers", 8, "number of concurrent queries")
	seed        = flag.Uint64("seed", 42, "random seed")
)

type query struct {
	row      int
	from, to string
}

type queryResult struct {
	query
	miles    float64
	points   int
	settled  int
	duration time.Duration
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	db := geodb.NewGeoDatabase(logger)
	if err := db.Load(*mapDataFile); err != nil {
		panic(err)
	}
	pois := db.PoiNames()
	if len(pois) == 0 {
		logger.Fatal("map data has no points of interest", zap.String("map", *mapDataFile))
	}

	rd := rand.New(rand.NewSource(*seed))
	queries := make([]query, *numQueries)
	for i := range queries {
		queries[i] = query{row: i, from: pois[rd.Intn(len(pois))], to: pois[rd.Intn(len(pois))]}
	}

	router := routing.NewRouter(db)
	calcsSP := func(ctx context.Context, q query) queryResult {
		from, _ := db.GetPoiLocation(q.from)
		to, _ := db.GetPoiLocation(q.to)

		before := time.Now()
		path, miles, settled := router.RouteWithStats(from, to)
		duration := time.Since(before)

		if (q.row+1)%1000 == 0 {
			logger.Sugar().Infof("done query %v", q.row+1)
		}
		return queryResult{query: q, miles: miles, points: len(path), settled: settled, duration: duration}
	}

	results := concurrent.Run(context.Background(), *numWorkers, queries, calcsSP)

	fout, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer fout.Close()
	w := bufio.NewWriter(fout)
	defer w.Flush()

	unreachable := 0
	for _, res := range results {
		if res.points == 0 {
			unreachable++
		}
		fmt.Fprintf(w, "%s|%s|%.6f|%d|%d|%d\n", res.from, res.to, res.miles, res.points, res.settled,
			res.duration.Microseconds())
	}

	logger.Info("random queries done", zap.Int("queries", len(results)), zap.Int("unreachable", unreachable),
		zap.String("out", *outFile))
}

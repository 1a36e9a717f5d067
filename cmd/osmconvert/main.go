package main

import (
	"context"
	"flag"
	"os"

	"github.com/lintang-b-s/tourguide/pkg/logger"
	"github.com/lintang-b-s/tourguide/pkg/osmparser"
	"go.uber.org/zap"
)

var (
	inFile  = flag.String("in", "./data/map.osm.pbf", "openstreetmap pbf extract")
	outFile = flag.String("out", "./data/mapdata.txt", "map data output file")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	osmParser := osmparser.NewOSMParser(logger)
	mapData, err := osmParser.Parse(context.Background(), *inFile)
	if err != nil {
		logger.Fatal("unable to parse openstreetmap extract", zap.Error(err))
	}

	f, err := os.Create(*outFile)
	if err != nil {
		logger.Fatal("unable to create map data file", zap.Error(err))
	}
	defer f.Close()

	if err := mapData.Write(f); err != nil {
		logger.Fatal("unable to write map data", zap.Error(err))
	}
	logger.Info("map data written", zap.String("out", *outFile), zap.Int("segments", len(mapData.Segments)),
		zap.Int("pois", mapData.NumPois()))
}

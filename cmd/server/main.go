package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/tourguide/pkg/engine"
	"github.com/lintang-b-s/tourguide/pkg/http"
	"github.com/lintang-b-s/tourguide/pkg/http/usecases"
	"github.com/lintang-b-s/tourguide/pkg/logger"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapDataFile = flag.String("map", "", "map data file, overrides MAP_DATA_FILE")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *mapDataFile != "" {
		viper.Set("MAP_DATA_FILE", *mapDataFile)
	}

	tourEngine, err := engine.NewEngine(viper.GetString("MAP_DATA_FILE"), viper.GetFloat64("HASHMAP_MAX_LOAD_FACTOR"),
		viper.GetInt("ROUTE_CACHE_SIZE"), logger)
	if err != nil {
		logger.Fatal("unable to start tour guide engine", zap.Error(err))
	}

	tourService := usecases.NewTourService(logger, tourEngine, viper.GetFloat64("NEAREST_SEARCH_RADIUS_KM"))

	ctx, cleanup := http.GracefulShutdown(context.Background())
	defer cleanup()

	api := http.NewServer(logger)
	if err := api.Use(ctx, tourService); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("tour guide server stopped", zap.Error(err))
		return
	}

	logger.Info("tour guide server stopped")
}

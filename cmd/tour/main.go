package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/engine/routing"
	"github.com/lintang-b-s/tourguide/pkg/geodb"
	"github.com/lintang-b-s/tourguide/pkg/guidance"
	"github.com/lintang-b-s/tourguide/pkg/stops"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, zap.NewNop()))
}

func run(args []string, stdout io.Writer, logger *zap.Logger) int {
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if len(args) != 2 {
		fmt.Fprintln(out, "usage: tour mapdata.txt stops.txt")
		return 1
	}
	mapDataFile, stopsFile := args[0], args[1]

	var (
		db       = geodb.NewGeoDatabase(logger)
		tourStop *stops.Stops
		g        errgroup.Group
	)
	g.Go(func() error {
		if err := db.Load(mapDataFile); err != nil {
			return fmt.Errorf("unable to load map data: %s", mapDataFile)
		}
		return nil
	})
	g.Go(func() error {
		s, err := stops.Load(stopsFile)
		if err != nil {
			return fmt.Errorf("unable to load tour data: %s", stopsFile)
		}
		tourStop = s
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Debug("load failed", zap.Error(err))
		fmt.Fprintln(out, err)
		return 1
	}

	tg := guidance.NewTourGenerator(db, routing.NewRouter(db))

	fmt.Fprint(out, "Routing...\n\n")
	commands := tg.GenerateTour(tourStop)
	if len(commands) == 0 {
		fmt.Fprintln(out, "Unable to generate tour!")
		return 1
	}

	printTour(out, commands)
	return 0
}

func printTour(w io.Writer, commands []da.TourCommand) {
	summary := guidance.Summarize(commands)

	fmt.Fprintln(w, "Starting tour...")
	for _, step := range summary.Steps {
		switch step.CommandType {
		case da.COMMENTARY:
			fmt.Fprintf(w, "Welcome to %s!\n", step.Poi)
			fmt.Fprintln(w, step.Commentary)
		case da.TURN:
			fmt.Fprintf(w, "Take a %s turn on %s\n", step.Direction, step.Street)
		case da.PROCEED:
			fmt.Fprintf(w, "Proceed %.3f miles %s on %s\n", step.Distance, step.Direction, step.Street)
		}
	}
	fmt.Fprintln(w, "Your tour has finished!")
	fmt.Fprintf(w, "Total tour distance: %.3f miles\n", summary.TotalDistance)
}

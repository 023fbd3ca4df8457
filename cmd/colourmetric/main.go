package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/colourlab/go-colourmetric/config"
	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/logger"
	"github.com/colourlab/go-colourmetric/metric"
	"github.com/colourlab/go-colourmetric/space"
	"github.com/colourlab/go-colourmetric/store"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "path to the JSON configuration file")
	samplePath := flag.String("create-config", "", "write a sample configuration file to this path and exit")
	save := flag.Bool("save", false, "persist the computed tensor fields to the store")
	flag.Parse()

	if *samplePath != "" {
		if err := config.CreateSample(*samplePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg, err = config.ParseConfig(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	logger.Initialize(cfg.LogLevel.Zap())
	log := logger.Sugar()

	grid, err := data.Regular(
		space.NewCIELAB(space.WhiteD65),
		cfg.Grid.Lightness.Values(),
		cfg.Grid.A.Values(),
		cfg.Grid.B.Values(),
	)
	if err != nil {
		log.Fatalf("failed to build sample grid: %v", err)
	}
	log.Infof("sample grid: %d points", grid.Len())

	params := metric.Params{
		KL: cfg.Metric.KL,
		KC: cfg.Metric.KC,
		Kh: cfg.Metric.Kh,
		R:  cfg.Metric.Radius,
	}
	models := metric.Models()
	bar := progressbar.Default(int64(len(models)), "computing tensor fields")

	results := make([]*metric.Result, len(models))
	var group errgroup.Group
	for idx, name := range models {
		idx := idx
		builder, ok := metric.Lookup(name)
		if !ok {
			log.Fatalf("model %q disappeared from the registry", name)
		}
		group.Go(func() error {
			results[idx] = builder(grid, params)
			bar.Add(1)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("failed to compute tensor fields: %v", err)
	}

	// Shape report: every field re-expressed in XYZ must come back (N,3,3).
	xyz := space.NewXYZ()
	fmt.Println("Metric shapes (all should be true):")
	for idx, name := range models {
		shape := results[idx].In(xyz).Shape()
		ok := len(shape) == 3 && shape[0] == grid.Len() && shape[1] == 3 && shape[2] == 3
		fmt.Printf("%-10s %v\n", name, ok)
	}

	if *save {
		db, err := store.Open(cfg.Store.Sqlite)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer db.Close()
		for idx, name := range models {
			if err := db.Save(name, results[idx]); err != nil {
				log.Errorf("failed to save field %q: %v", name, err)
			}
		}
		log.Infof("saved %d tensor fields to %s", len(models), cfg.Store.Sqlite)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/stybik/LLD/pkg/config"
	"github.com/stybik/LLD/pkg/demo"
	"github.com/stybik/LLD/pkg/logging"
	"github.com/stybik/LLD/pkg/observer"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to a YAML scenario file (optional)")
		verbose    = flag.Bool("verbose", false, "Log at debug level")
	)
	flag.Parse()

	if err := run(*configFile, *verbose); err != nil {
		log.Printf("patterns: %v", err)
		os.Exit(1)
	}
}

func run(configFile string, verbose bool) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	zl, err := logging.NewZapProduction(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer zl.Sync()
	logger := logging.NewZapLogger(zl)

	opts := []demo.Option{demo.WithLogger(logger)}

	if cfg.Archive.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Archive.Timeout)
		store, err := observer.OpenPGReadingStore(ctx, cfg.GetConnString())
		cancel()
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, demo.WithObservers(observer.NewArchiveDisplay(store, cfg.Archive.Timeout, logger)))
	}

	if err := demo.NewRunner(cfg, os.Stdout, opts...).Run(); err != nil {
		logger.Error("run failed: %v", err)
		return err
	}
	return nil
}

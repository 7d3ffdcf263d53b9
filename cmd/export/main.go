package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tansuasici/countrystatecity-go/internal/config"
	"github.com/tansuasici/countrystatecity-go/internal/export"
	"github.com/tansuasici/countrystatecity-go/internal/filter"
	"github.com/tansuasici/countrystatecity-go/internal/format"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

func main() {
	var (
		entityName  = flag.String("entity", "countries", "collection to export: countries, states or cities")
		formatName  = flag.String("format", "json", "output format: json, jsonl, csv, xml or yaml")
		out         = flag.String("out", "", "output file path (required)")
		gzipped     = flag.Bool("gzip", false, "gzip the output")
		delimiter   = flag.String("delimiter", ",", "CSV delimiter")
		headers     = flag.Bool("headers", true, "include a CSV header line")
		countryCode = flag.String("country-code", "", "keep records of this country (ISO2 or ISO3)")
		countryID   = flag.Int("country-id", 0, "keep records of this country id")
		region      = flag.String("region", "", "keep records of countries in this region")
		subregion   = flag.String("subregion", "", "keep records of countries in this subregion")
		stateID     = flag.Int("state-id", 0, "keep cities of this state id")
	)
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: -out")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	entity, err := store.ParseEntity(*entityName)
	if err != nil {
		logger.Fatal("Invalid entity", zap.Error(err))
	}
	kind, err := format.ParseKind(*formatName)
	if err != nil {
		logger.Fatal("Invalid format", zap.Error(err))
	}
	if len([]rune(*delimiter)) != 1 {
		logger.Fatal("Delimiter must be a single character", zap.String("delimiter", *delimiter))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter := export.New(store.New(cfg.Data.Dir, logger), logger)

	opts := export.FileOptions{
		Filter: &filter.Filter{
			CountryID:   *countryID,
			CountryCode: *countryCode,
			Region:      *region,
			Subregion:   *subregion,
			StateID:     *stateID,
		},
		Gzip: *gzipped,
		Format: &format.Options{
			Delimiter: []rune(*delimiter)[0],
			Headers:   *headers,
		},
	}

	if err := exporter.ExportToFile(ctx, entity, kind, *out, opts); err != nil {
		logger.Fatal("Export failed", zap.Error(err))
	}
}

// Package main is the entry point for the lighttest harness
// binary. It registers the built-in suites, runs them, writes
// the report stream, and exits with the aggregate status.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"digital.vasic.lighttest/pkg/config"
	"digital.vasic.lighttest/pkg/logging"
	"digital.vasic.lighttest/pkg/metrics"
	"digital.vasic.lighttest/pkg/monitor"
	"digital.vasic.lighttest/pkg/registry"
	"digital.vasic.lighttest/pkg/report"
	"digital.vasic.lighttest/pkg/smoke"
	"digital.vasic.lighttest/pkg/suite"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lighttest", flag.ContinueOnError)
	configPath := fs.String(
		"config", "",
		"run configuration file (YAML or JSON)",
	)
	resultsPath := fs.String(
		"results", "",
		"report stream destination (- for stdout)",
	)
	monitorAddr := fs.String(
		"monitor", "",
		"serve live monitoring on this address",
	)
	verbose := fs.Bool(
		"verbose", false,
		"enable debug logging",
	)
	noSummary := fs.Bool(
		"no-summary", false,
		"suppress the trailing summary line",
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lighttest: %v\n", err)
		return 2
	}
	cfg.ApplyOSEnv()

	// Flags outrank file and environment.
	if *resultsPath != "" {
		cfg.ResultsPath = *resultsPath
	}
	if *monitorAddr != "" {
		cfg.MonitorAddr = *monitorAddr
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *noSummary {
		cfg.SummaryLine = false
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lighttest: %v\n", err)
		return 2
	}
	defer logger.Close()

	sink, closeSink, err := openSink(cfg.ResultsPath)
	if err != nil {
		logger.Error(
			"open results sink",
			logging.F("path", cfg.ResultsPath),
			logging.F("error", err.Error()),
		)
		return 2
	}
	defer closeSink()

	collector := metrics.NewCollector()
	opts := []registry.Option{
		registry.WithLogger(logger),
		registry.WithMetrics(collector),
	}
	if !cfg.SummaryLine {
		opts = append(opts, registry.WithoutSummaryLine())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.MonitorAddr != "" {
		events := monitor.NewEventCollector()
		opts = append(opts, registry.WithObserver(
			monitor.NewCollectorObserver(events),
		))
		srv := monitor.NewLiveServer(
			cfg.MonitorAddr,
			events,
			monitor.NewDashboard("lighttest"),
			collector,
		)
		go func() {
			if srvErr := srv.Start(ctx); srvErr != nil {
				logger.Warn(
					"monitor server stopped",
					logging.F("error", srvErr.Error()),
				)
			}
		}()
	}

	reg := registry.New(opts...)
	for _, s := range smoke.All() {
		if cfg.Allows(s.Name()) {
			reg.Add(s)
		}
	}

	reports := reg.RunAll(ctx)
	status, err := reg.Report(sink, reports)
	if err != nil {
		logger.Error(
			"report stream",
			logging.F("error", err.Error()),
		)
		return 2
	}

	if cfg.AggregatePath != "" {
		aggErr := writeAggregate(
			cfg.AggregatePath, reports, cfg.Pretty,
		)
		if aggErr != nil {
			logger.Warn(
				"write aggregate",
				logging.F("error", aggErr.Error()),
			)
		}
	}

	return status
}

func loadConfig(path string) (*config.RunConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildLogger assembles console output plus an optional JSON
// Lines file.
func buildLogger(
	cfg *config.RunConfig,
) (logging.Logger, error) {
	console := logging.NewConsoleLogger(cfg.Verbose)
	if cfg.LogPath == "" {
		return console, nil
	}

	jsonLogger, err := logging.NewJSONLogger(
		logging.Options{OutputPath: cfg.LogPath},
	)
	if err != nil {
		return nil, err
	}
	return logging.NewMultiLogger(console, jsonLogger), nil
}

// openSink resolves the report stream destination. Empty and
// "-" mean stdout.
func openSink(
	path string,
) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

func writeAggregate(
	path string,
	reports []*suite.Report,
	pretty bool,
) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	agg := report.BuildAggregate(reports)
	return report.WriteAggregate(file, agg, pretty)
}

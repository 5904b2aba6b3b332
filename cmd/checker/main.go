// Command checker runs the ten data-quality checks against an e-commerce
// transaction dataset and prints each labelled result. With no -in flag
// it checks the built-in five-row sample; -out exports the results as CSV
// files and an Excel workbook.
package main

import (
	"flag"
	"log/slog"
	"os"

	"dqcli/internal/checks"
	"dqcli/internal/config"
	"dqcli/internal/exporter"
	"dqcli/internal/infrastructure"
	"dqcli/internal/loader"
)

func main() {
	in := flag.String("in", "", "dataset file (.csv or .xlsx); empty runs the built-in sample")
	export := flag.Bool("export", false, "write CSV and Excel reports to the configured directory")
	out := flag.String("out", "", "report directory (implies -export, overrides config)")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closeLogger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closeLogger()

	table, err := loader.Load(*in)
	if err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	runner := checks.NewRunner(logger, checks.Config{
		DateFormats: cfg.Checks.DateFormats,
		PriceMin:    cfg.Checks.PriceMin,
		PriceMax:    cfg.Checks.PriceMax,
	})
	results, err := runner.Run(os.Stdout, table)
	if err != nil {
		logger.Error("Check suite failed", "error", err)
		os.Exit(1)
	}

	if *export || *out != "" {
		dir := cfg.Output.Dir
		if *out != "" {
			dir = *out
		}
		if err := exporter.WriteResults(dir, cfg.Output.Workbook, cfg.Output.ExcelBOM, results); err != nil {
			logger.Error("Failed to export results", "error", err)
			os.Exit(1)
		}
	}
}

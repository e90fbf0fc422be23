// Command flowbench runs a flowlab experiment: it loads a config file,
// walks the configured graph-family × seed × algorithm grid, and writes
// trials.csv, seed_summary.csv, and summary.csv to the output dir.
//
// Usage:
//
//	flowbench -config configs/smoke.json [-v]
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/flowlab/bench"
)

func main() {
	configPath := flag.String("config", "", "path to experiment config (JSON or YAML)")
	verbose := flag.Bool("v", false, "log every trial")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *configPath == "" {
		log.Fatal().Msg("missing -config")
	}

	cfg, err := bench.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	report, err := bench.NewRunner(cfg, log.Logger).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	if err := report.WriteCSV(cfg.OutputDir); err != nil {
		log.Fatal().Err(err).Msg("write results")
	}
	log.Info().
		Str("exp", cfg.Name).
		Str("dir", cfg.OutputDir).
		Int("trials", len(report.Trials)).
		Msg("results written")
}

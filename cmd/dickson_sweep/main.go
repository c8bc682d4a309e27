// Command dickson_sweep runs the full value-set classification sweep for
// every prime in a range and writes one record per (p, a, n) to CSV
// and/or JSONL.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"dickson-valuesets/primes"
	"dickson-valuesets/results"
	"dickson-valuesets/valueset"
)

type config struct {
	PrimeMin uint64 `yaml:"prime_min"`
	PrimeMax uint64 `yaml:"prime_max"`
	AllA     bool   `yaml:"all_a"`
	A        uint64 `yaml:"a"`
	Workers  int    `yaml:"workers"`
	CSV      string `yaml:"csv"`
	JSONL    string `yaml:"jsonl"`
}

func defaults() config {
	return config{
		PrimeMin: 3,
		PrimeMax: 97,
		A:        1,
		CSV:      "reversed_dickson_values.csv",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	primeMin := flag.Uint64("min", 0, "lowest prime to sweep (overrides config)")
	primeMax := flag.Uint64("max", 0, "highest prime to sweep (overrides config)")
	allA := flag.Bool("all-a", false, "sweep every parameter a in [0, p)")
	aFlag := flag.Uint64("a", 0, "fixed Dickson parameter a (overrides config)")
	workers := flag.Int("workers", 0, "concurrent (p, a) sweeps, 0 = NumCPU")
	csvPath := flag.String("csv", "", "CSV output path (overrides config)")
	jsonlPath := flag.String("jsonl", "", "JSONL output path (overrides config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	if *primeMin != 0 {
		cfg.PrimeMin = *primeMin
	}
	if *primeMax != 0 {
		cfg.PrimeMax = *primeMax
	}
	if *allA {
		cfg.AllA = true
	}
	if *aFlag != 0 {
		cfg.A = *aFlag
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *csvPath != "" {
		cfg.CSV = *csvPath
	}
	if *jsonlPath != "" {
		cfg.JSONL = *jsonlPath
	}

	ps := primes.Range(cfg.PrimeMin, cfg.PrimeMax)
	if len(ps) == 0 {
		logger.Fatal("no primes in range",
			zap.Uint64("min", cfg.PrimeMin),
			zap.Uint64("max", cfg.PrimeMax))
	}
	logger.Info("starting sweep",
		zap.Int("primes", len(ps)),
		zap.Uint64("first", ps[0]),
		zap.Uint64("last", ps[len(ps)-1]),
		zap.Bool("all_a", cfg.AllA),
		zap.Uint64("a", cfg.A))

	start := time.Now()
	resultsList, err := valueset.Run(context.Background(), valueset.SweepConfig{
		Primes:  ps,
		AllA:    cfg.AllA,
		A:       cfg.A,
		Workers: cfg.Workers,
	})
	if err != nil {
		logger.Fatal("sweep", zap.Error(err))
	}

	w, err := results.NewWriter(cfg.CSV, cfg.JSONL)
	if err != nil {
		logger.Fatal("open output", zap.Error(err))
	}
	total := 0
	var all []valueset.Record
	for _, res := range resultsList {
		for _, rec := range res.Records {
			if err := w.Append(rec); err != nil {
				logger.Fatal("write record", zap.Error(err))
			}
		}
		total += len(res.Records)
		all = append(all, res.Records...)
		logger.Info("sweep done",
			zap.Uint64("p", res.Job.P),
			zap.Uint64("a", res.Job.A),
			zap.Int("records", len(res.Records)))
	}
	if err := w.Close(); err != nil {
		logger.Fatal("close output", zap.Error(err))
	}

	digest := valueset.Digest(all)
	logger.Info("sweep complete",
		zap.Int("records", total),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("digest", hex.EncodeToString(digest[:])))
}

package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"mathperf/bench"
)

const progressInterval = 30 * time.Second

func main() {
	logger := initLogger(slog.LevelInfo)

	h, err := bench.New(os.Stdout)
	if err != nil {
		log.Fatalf("could not create harness: %s\n", err)
	}

	runners := suite()
	cfg := h.Config()
	logger.Info("suite started",
		"cases", len(runners),
		"inner", cfg.InnerIterations,
		"outer", cfg.OuterIterations,
	)

	progress := NewProgressLimiter(rate.Every(progressInterval), 1, logger)
	start := time.Now()
	err = h.RunAll(runners, func(i int, r bench.Runner) {
		progress.Report(i+1, len(runners), r.String())
	})
	if err != nil {
		log.Fatalf("benchmark run failed: %s\n", err)
	}

	logger.Info("suite finished", "lines", h.Reporter().Lines(), "duration", time.Since(start))
}

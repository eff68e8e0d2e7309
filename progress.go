package main

import (
	"log/slog"

	"golang.org/x/time/rate"
)

// ProgressLimiter logs suite progress at most as often as its limiter
// allows.
type ProgressLimiter struct {
	limiter *rate.Limiter
	logger  *slog.Logger
}

func NewProgressLimiter(r rate.Limit, b int, logger *slog.Logger) *ProgressLimiter {
	return &ProgressLimiter{
		limiter: rate.NewLimiter(r, b),
		logger:  logger,
	}
}

// Report logs that done of total cases have finished. It returns false
// when the line was suppressed.
func (p *ProgressLimiter) Report(done, total int, name string) bool {
	if !p.limiter.Allow() {
		return false
	}
	p.logger.Info("suite progress", "done", done, "total", total, "last", name)
	return true
}

package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests    uint64
	errorRequests    uint64
	reportRuns       uint64
	reportDurationMs uint64
	totalDurationMs  uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordReport tracks one scoring report computation separately from plain
// HTTP traffic, since batch runs dominate latency.
func (c *Collector) RecordReport(duration time.Duration) {
	atomic.AddUint64(&c.reportRuns, 1)
	atomic.AddUint64(&c.reportDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	runs := atomic.LoadUint64(&c.reportRuns)
	runMs := atomic.LoadUint64(&c.reportDurationMs)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)

	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	avgRun := float64(0)
	if runs > 0 {
		avgRun = float64(runMs) / float64(runs)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"avgDurationMs":    avg,
		"reportRunsTotal":  runs,
		"avgReportRunMs":   avgRun,
		"reportDurationMs": runMs,
	}
}

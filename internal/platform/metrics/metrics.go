package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	calculations    uint64
	batchRows       uint64
	statements      uint64
	liveStreams     int64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordCalculation() {
	atomic.AddUint64(&c.calculations, 1)
}

func (c *Collector) RecordBatch(rows int) {
	if rows > 0 {
		atomic.AddUint64(&c.batchRows, uint64(rows))
	}
}

func (c *Collector) RecordStatement() {
	atomic.AddUint64(&c.statements, 1)
}

// StreamOpened counts an open live stream; call the returned func when it
// closes.
func (c *Collector) StreamOpened() func() {
	atomic.AddInt64(&c.liveStreams, 1)
	return func() { atomic.AddInt64(&c.liveStreams, -1) }
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"rateLimitedTotal":  limited,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"calculationsTotal": atomic.LoadUint64(&c.calculations),
		"batchRowsTotal":    atomic.LoadUint64(&c.batchRows),
		"statementsTotal":   atomic.LoadUint64(&c.statements),
		"liveStreamsOpen":   atomic.LoadInt64(&c.liveStreams),
	}
}

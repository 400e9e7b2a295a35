// Package perf samples timings and counters along the feed and render
// path. Collection is off unless TERMGRID_PROFILE is set or a caller turns
// it on with SetEnabled or Collect.
package perf

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrewlee/termgrid/internal/logging"
)

// Metric names a timing or a counter.
type Metric string

const (
	// FeedWrite times one Driver.Write call.
	FeedWrite Metric = "feed_write"
	// FeedBytes counts bytes handed to the driver.
	FeedBytes Metric = "feed_bytes"
	// FeedEvicted counts lines fed output pushed off the top of the screen.
	FeedEvicted Metric = "feed_evicted"
	// RenderFrame times rendering one screen-sized window.
	RenderFrame Metric = "render_frame"
)

const (
	sampleWindow    = 256
	defaultLogEvery = 5 * time.Second
)

// series keeps running totals plus a ring of the most recent samples for
// percentiles.
type series struct {
	count   int64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples []time.Duration
	next    int
}

func (s *series) add(d time.Duration) {
	s.count++
	s.total += d
	if s.count == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	if len(s.samples) < sampleWindow {
		s.samples = append(s.samples, d)
		return
	}
	s.samples[s.next] = d
	s.next = (s.next + 1) % sampleWindow
}

func (s *series) timing(m Metric) Timing {
	t := timingOf(s.samples)
	t.Metric = m
	t.Count = s.count
	t.Avg = time.Duration(int64(s.total) / s.count)
	t.Min = s.min
	t.Max = s.max
	return t
}

var (
	enabled  atomic.Bool
	logEvery atomic.Int64
	lastLog  atomic.Int64

	mu       sync.Mutex
	timings  = map[Metric]*series{}
	counters = map[Metric]int64{}
)

func init() {
	enabled.Store(envEnabled())
	logEvery.Store(int64(envLogEvery()))
}

// Enabled reports whether collection is on.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled turns collection on or off, overriding the environment.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Time starts a timing for m; call the returned func to record it.
func Time(m Metric) func() {
	if !enabled.Load() {
		return func() {}
	}
	start := time.Now()
	return func() {
		Record(m, time.Since(start))
	}
}

// Record adds one duration sample to m.
func Record(m Metric, d time.Duration) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	s, ok := timings[m]
	if !ok {
		s = &series{}
		timings[m] = s
	}
	s.add(d)
	mu.Unlock()

	maybeLog()
}

// Count adds delta to the counter m. Zero deltas are ignored.
func Count(m Metric, delta int64) {
	if !enabled.Load() || delta == 0 {
		return
	}
	mu.Lock()
	counters[m] += delta
	mu.Unlock()

	maybeLog()
}

func maybeLog() {
	every := time.Duration(logEvery.Load())
	if every <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last != 0 && time.Duration(now-last) < every {
		return
	}
	if !lastLog.CompareAndSwap(last, now) {
		return
	}
	logReport("PERF", Take())
}

// Flush logs and resets everything collected so far.
func Flush(reason string) {
	if !enabled.Load() {
		return
	}
	prefix := "PERF SUMMARY"
	if reason = strings.TrimSpace(reason); reason != "" {
		prefix += " " + reason
	}
	logReport(prefix, Take())
}

func logReport(prefix string, r Report) {
	for _, line := range r.Lines() {
		logging.Info("%s %s", prefix, line)
	}
}

func envEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TERMGRID_PROFILE"))) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}

func envLogEvery() time.Duration {
	raw := strings.TrimSpace(os.Getenv("TERMGRID_PROFILE_INTERVAL_MS"))
	if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultLogEvery
}

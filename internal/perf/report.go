package perf

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Timing summarizes duration samples for one metric. Percentiles use the
// nearest-rank method.
type Timing struct {
	Metric Metric
	Count  int64
	Avg    time.Duration
	Min    time.Duration
	Max    time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// Counter is a counter's accumulated value.
type Counter struct {
	Metric Metric
	Value  int64
}

// Report holds everything collected since the previous Take, sorted by
// metric name.
type Report struct {
	Timings  []Timing
	Counters []Counter
}

// Take returns the collected report and resets collection.
func Take() Report {
	mu.Lock()
	var r Report
	for m, s := range timings {
		if s.count > 0 {
			r.Timings = append(r.Timings, s.timing(m))
		}
	}
	for m, v := range counters {
		r.Counters = append(r.Counters, Counter{Metric: m, Value: v})
	}
	timings = map[Metric]*series{}
	counters = map[Metric]int64{}
	mu.Unlock()

	sort.Slice(r.Timings, func(i, j int) bool { return r.Timings[i].Metric < r.Timings[j].Metric })
	sort.Slice(r.Counters, func(i, j int) bool { return r.Counters[i].Metric < r.Counters[j].Metric })
	return r
}

// Timing returns the timing recorded for m.
func (r Report) Timing(m Metric) (Timing, bool) {
	for _, t := range r.Timings {
		if t.Metric == m {
			return t, true
		}
	}
	return Timing{}, false
}

// Counter returns the value of counter m.
func (r Report) Counter(m Metric) (int64, bool) {
	for _, c := range r.Counters {
		if c.Metric == m {
			return c.Value, true
		}
	}
	return 0, false
}

// Lines formats the report one metric per line.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Timings)+len(r.Counters))
	for _, t := range r.Timings {
		lines = append(lines, fmt.Sprintf("%s count=%d avg=%s p50=%s p95=%s p99=%s min=%s max=%s",
			t.Metric, t.Count, t.Avg, t.P50, t.P95, t.P99, t.Min, t.Max))
	}
	for _, c := range r.Counters {
		lines = append(lines, fmt.Sprintf("%s=%d", c.Metric, c.Value))
	}
	return lines
}

// Summarize computes a Timing over durations. The input is not reordered.
func Summarize(durations []time.Duration) Timing {
	if len(durations) == 0 {
		return Timing{}
	}
	t := timingOf(durations)
	var total time.Duration
	t.Min, t.Max = durations[0], durations[0]
	for _, d := range durations {
		total += d
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
	}
	t.Count = int64(len(durations))
	t.Avg = total / time.Duration(len(durations))
	return t
}

// timingOf fills the percentiles of t from samples.
func timingOf(samples []time.Duration) Timing {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Timing{
		P50: percentile(sorted, 0.50),
		P95: percentile(sorted, 0.95),
		P99: percentile(sorted, 0.99),
	}
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	pos := int(math.Ceil(p*float64(n))) - 1
	pos = max(0, min(pos, n-1))
	return sorted[pos]
}

// Collect turns collection on and periodic logging off, and clears
// anything already collected. The returned func restores both settings.
func Collect() (restore func()) {
	prevEnabled := enabled.Load()
	prevEvery := logEvery.Load()
	enabled.Store(true)
	logEvery.Store(0)
	lastLog.Store(0)
	Take()
	return func() {
		enabled.Store(prevEnabled)
		logEvery.Store(prevEvery)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andyrewlee/termgrid/internal/feed"
	"github.com/andyrewlee/termgrid/internal/perf"
	"github.com/andyrewlee/termgrid/internal/render"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

type options struct {
	width        int
	height       int
	scrollback   int
	payloadBytes int
	newlineEvery int
	insert       bool
	color        bool
}

// harness writes synthetic output into a buffer one frame at a time.
type harness struct {
	opts     options
	driver   *feed.Driver
	renderer *render.Renderer
	payload  []byte
}

func newHarness(opts options) *harness {
	buf := termbuf.New(opts.width, opts.height, opts.scrollback)
	d := feed.NewDriver(buf)
	if opts.insert {
		d.SetMode(feed.ModeInsert)
	}
	return &harness{
		opts:     opts,
		driver:   d,
		renderer: &render.Renderer{Styled: opts.color},
		payload:  []byte(strings.Repeat("x", opts.payloadBytes)),
	}
}

// step feeds one frame of output and renders the screen.
func (h *harness) step(frame int) string {
	_, _ = h.driver.Write(h.payload)
	if h.opts.newlineEvery > 0 && frame%h.opts.newlineEvery == 0 {
		_, _ = h.driver.Write([]byte("\n"))
	}
	return h.renderer.Screen(h.driver.Buffer())
}

func main() {
	width := flag.Int("width", 160, "screen width in columns")
	height := flag.Int("height", 48, "screen height in rows")
	scrollback := flag.Int("scrollback", 10000, "maximum scrollback lines")
	frames := flag.Int("frames", 300, "number of measured frames")
	warmup := flag.Int("warmup", 30, "warmup frames to ignore")
	payloadBytes := flag.Int("payload-bytes", 64, "bytes written per frame")
	newlineEvery := flag.Int("newline-every", 0, "emit newline every N frames (0 disables)")
	insert := flag.Bool("insert", false, "write in insert mode")
	color := flag.Bool("color", false, "render with ANSI styling")
	flag.Parse()

	totalFrames := *warmup + *frames
	if totalFrames <= 0 {
		fmt.Fprintln(os.Stderr, "frames + warmup must be > 0")
		os.Exit(1)
	}

	restore := perf.Collect()
	defer restore()

	h := newHarness(options{
		width:        *width,
		height:       *height,
		scrollback:   *scrollback,
		payloadBytes: *payloadBytes,
		newlineEvery: *newlineEvery,
		insert:       *insert,
		color:        *color,
	})

	durations := make([]time.Duration, 0, *frames)
	startAll := time.Now()

	for i := 0; i < totalFrames; i++ {
		start := time.Now()
		_ = h.step(i)
		if i >= *warmup {
			durations = append(durations, time.Since(start))
		}
	}

	total := time.Since(startAll)
	s := perf.Summarize(durations)
	fmt.Printf("frames=%d warmup=%d size=%dx%d scrollback=%d payload=%dB newline_every=%d insert=%t\n",
		*frames, *warmup, *width, *height, *scrollback, *payloadBytes, *newlineEvery, *insert)
	fmt.Printf("total=%s avg=%s p50=%s p95=%s p99=%s min=%s max=%s fps=%.2f\n",
		total, s.Avg, s.P50, s.P95, s.P99, s.Min, s.Max, fps(durations))

	for _, line := range perf.Take().Lines() {
		fmt.Printf("perf %s\n", line)
	}
}

func fps(durations []time.Duration) float64 {
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(durations)) / total.Seconds()
}

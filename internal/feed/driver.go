// Package feed drives a termbuf.Buffer from a byte stream.
//
// Escape sequences are stripped rather than interpreted; only the plain-text
// controls LF, CR, HT and BS move the cursor.
package feed

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/termgrid/internal/perf"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 8

// Mode selects how printable text reaches the buffer.
type Mode int

const (
	// ModeOverwrite replaces cells under the cursor.
	ModeOverwrite Mode = iota
	// ModeInsert shifts the rest of the row right.
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	default:
		return "overwrite"
	}
}

// Driver writes decoded text into a Buffer. It implements io.Writer and is
// not safe for concurrent use; see Session.
type Driver struct {
	buf      *termbuf.Buffer
	mode     Mode
	tabWidth int

	// pending holds an incomplete UTF-8 sequence from the previous Write.
	pending []byte
	text    strings.Builder
}

// NewDriver creates a driver writing into buf in overwrite mode.
func NewDriver(buf *termbuf.Buffer) *Driver {
	return &Driver{buf: buf, tabWidth: DefaultTabWidth}
}

// Buffer returns the driven buffer.
func (d *Driver) Buffer() *termbuf.Buffer {
	return d.buf
}

// Mode returns the current write mode.
func (d *Driver) Mode() Mode {
	return d.mode
}

// SetMode switches between overwrite and insert.
func (d *Driver) SetMode(m Mode) {
	d.mode = m
}

// SetTabWidth sets the tab stop interval. Values below 1 are ignored.
func (d *Driver) SetTabWidth(n int) {
	if n < 1 {
		return
	}
	d.tabWidth = n
}

// Write feeds p into the buffer. It never fails; the returned count is
// always len(p).
func (d *Driver) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	start := time.Now()
	evicted := d.buf.Evicted()
	defer func() {
		perf.Record(perf.FeedWrite, time.Since(start))
		perf.Count(perf.FeedBytes, int64(len(p)))
		perf.Count(perf.FeedEvicted, int64(d.buf.Evicted()-evicted))
	}()

	data := p
	if len(d.pending) > 0 {
		data = append(d.pending, p...)
		d.pending = nil
	}
	complete := completePrefix(data)
	if complete < len(data) {
		d.pending = append([]byte(nil), data[complete:]...)
	}

	d.feed(ansi.Strip(string(data[:complete])))
	return len(p), nil
}

// Flush writes any carried incomplete UTF-8 sequence as a replacement
// character.
func (d *Driver) Flush() {
	if len(d.pending) == 0 {
		return
	}
	d.pending = nil
	d.feed(string(utf8.RuneError))
}

func (d *Driver) feed(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			d.flushText()
			d.newline()
		case '\r':
			d.flushText()
			d.buf.SetCursorPosition(d.buf.CursorRow(), 0)
		case '\t':
			d.flushText()
			d.tab()
		case '\b':
			d.flushText()
			d.buf.MoveCursorLeft(1)
		default:
			if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
				continue
			}
			if runewidth.RuneWidth(r) == 0 {
				continue
			}
			d.text.WriteRune(r)
		}
	}
	d.flushText()
}

func (d *Driver) flushText() {
	if d.text.Len() == 0 {
		return
	}
	s := d.text.String()
	d.text.Reset()
	if d.mode == ModeInsert {
		d.buf.InsertText(s)
		return
	}
	d.buf.WriteText(s)
}

func (d *Driver) newline() {
	row := d.buf.CursorRow()
	if row >= d.buf.Height()-1 {
		d.buf.InsertLineAtBottom()
		d.buf.SetCursorPosition(row, 0)
		return
	}
	d.buf.SetCursorPosition(row+1, 0)
}

func (d *Driver) tab() {
	col := d.buf.CursorCol()
	next := (col/d.tabWidth + 1) * d.tabWidth
	d.buf.SetCursorPosition(d.buf.CursorRow(), next)
}

// completePrefix returns the length of data up to any trailing incomplete
// UTF-8 sequence.
func completePrefix(data []byte) int {
	// A rune is at most utf8.UTFMax bytes, so only the tail can be partial.
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(data[i]) {
			continue
		}
		if utf8.FullRune(data[i:]) {
			return len(data)
		}
		return i
	}
	return len(data)
}

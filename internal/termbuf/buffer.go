// Package termbuf holds the text surface of a terminal: a grid of styled
// cells, a cursor and a bounded scrollback history.
//
// A Buffer is not safe for concurrent use. Every operation is total:
// out-of-range coordinates read as blank cells and writes to them are
// ignored, so a driver fed from a malformed stream cannot break it.
package termbuf

// Buffer is the visible screen plus the lines that scrolled off its top.
type Buffer struct {
	width         int
	height        int
	maxScrollback int

	// screen always holds exactly height lines.
	screen  []*Line
	history *scrollback

	// cursorCol may equal width after a write filled the row; the next
	// written character wraps first.
	cursorRow int
	cursorCol int

	attrs Attributes

	// version increments whenever content or cursor may have changed.
	version uint64
	// evicted counts lines that left the top of the screen. It never
	// decreases, even when scrollback is full or cleared.
	evicted uint64
}

// New creates a blank buffer. Width and height are clamped to at least 1
// and maxScrollback to at least 0.
func New(width, height, maxScrollback int) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if maxScrollback < 0 {
		maxScrollback = 0
	}
	b := &Buffer{
		width:         width,
		height:        height,
		maxScrollback: maxScrollback,
		history:       newScrollback(maxScrollback),
	}
	b.screen = b.makeScreen()
	return b
}

func (b *Buffer) makeScreen() []*Line {
	screen := make([]*Line, b.height)
	for i := range screen {
		screen[i] = NewLine(b.width)
	}
	return screen
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of screen rows.
func (b *Buffer) Height() int {
	return b.height
}

// MaxScrollback returns the scrollback capacity in lines.
func (b *Buffer) MaxScrollback() int {
	return b.maxScrollback
}

// Version returns the change counter.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Evicted returns the total number of lines evicted from the top of the
// screen since the buffer was created, including lines scrollback dropped.
func (b *Buffer) Evicted() uint64 {
	return b.evicted
}

func (b *Buffer) bumpVersion() {
	b.version++
}

// SetCurrentAttributes sets the attributes used by subsequent writes.
func (b *Buffer) SetCurrentAttributes(fg, bg Color, style Style) {
	b.attrs = Attributes{Fg: fg, Bg: bg, Style: style}
}

// SetAttributes is SetCurrentAttributes taking an Attributes value.
func (b *Buffer) SetAttributes(attrs Attributes) {
	b.attrs = attrs
}

// CurrentAttributes returns the attributes used by subsequent writes.
func (b *Buffer) CurrentAttributes() Attributes {
	return b.attrs
}

// FillLine fills screen row with ch using the current attributes.
// Rows outside the screen are ignored.
func (b *Buffer) FillLine(row int, ch rune) {
	if row < 0 || row >= b.height {
		return
	}
	b.screen[row].Fill(ch, b.attrs)
	b.bumpVersion()
}

package termbuf

// CursorRow returns the cursor row.
func (b *Buffer) CursorRow() int {
	return b.cursorRow
}

// CursorCol returns the cursor column.
func (b *Buffer) CursorCol() int {
	return b.cursorCol
}

func (b *Buffer) clampCursor() {
	b.cursorRow = clamp(b.cursorRow, 0, b.height-1)
	b.cursorCol = clamp(b.cursorCol, 0, b.width-1)
}

// SetCursorPosition moves the cursor, clamping it into the screen.
func (b *Buffer) SetCursorPosition(row, col int) {
	prevRow, prevCol := b.cursorRow, b.cursorCol
	b.cursorRow = row
	b.cursorCol = col
	b.clampCursor()
	b.bumpVersionIfCursorMoved(prevRow, prevCol)
}

// MoveCursorUp moves the cursor up n rows, stopping at the top.
func (b *Buffer) MoveCursorUp(n int) {
	b.moveCursor(-nonNegative(n), 0)
}

// MoveCursorDown moves the cursor down n rows, stopping at the bottom.
func (b *Buffer) MoveCursorDown(n int) {
	b.moveCursor(nonNegative(n), 0)
}

// MoveCursorLeft moves the cursor left n columns, stopping at column 0.
func (b *Buffer) MoveCursorLeft(n int) {
	b.moveCursor(0, -nonNegative(n))
}

// MoveCursorRight moves the cursor right n columns, stopping at the last
// column.
func (b *Buffer) MoveCursorRight(n int) {
	b.moveCursor(0, nonNegative(n))
}

func (b *Buffer) moveCursor(dRow, dCol int) {
	prevRow, prevCol := b.cursorRow, b.cursorCol
	b.cursorRow += dRow
	b.cursorCol += dCol
	b.clampCursor()
	b.bumpVersionIfCursorMoved(prevRow, prevCol)
}

func (b *Buffer) bumpVersionIfCursorMoved(prevRow, prevCol int) {
	if b.cursorRow != prevRow || b.cursorCol != prevCol {
		b.bumpVersion()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

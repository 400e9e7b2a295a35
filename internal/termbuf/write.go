package termbuf

// WriteText writes text at the cursor in overwrite mode, wrapping at the
// right edge and scrolling into history past the bottom row. A wide
// character takes two columns; the second holds a blank placeholder with the
// same attributes.
func (b *Buffer) WriteText(text string) {
	if text == "" {
		return
	}
	for _, r := range text {
		b.wrapIfPending()

		line := b.screen[b.cursorRow]
		cell := NewCell(r, b.attrs)
		line.Set(b.cursorCol, cell)

		if cell.IsWide() && b.cursorCol+1 < b.width {
			line.Set(b.cursorCol+1, placeholderCell(b.attrs))
			b.cursorCol++
		}
		b.cursorCol++
	}
	b.bumpVersion()
}

// InsertText writes text at the cursor in insert mode. Each character
// shifts the rest of the row one column right; the cell pushed past the
// right edge is lost. Unlike WriteText, wide characters get no placeholder
// and advance the cursor by one.
func (b *Buffer) InsertText(text string) {
	if text == "" {
		return
	}
	for _, r := range text {
		b.wrapIfPending()

		line := b.screen[b.cursorRow]
		line.shiftRight(b.cursorCol)
		line.Set(b.cursorCol, NewCell(r, b.attrs))
		b.cursorCol++
	}
	b.bumpVersion()
}

func placeholderCell(attrs Attributes) Cell {
	c := NewCell(' ', attrs)
	c.placeholder = true
	return c
}

// wrapIfPending moves the cursor to the start of the next row when the
// previous write left it past the last column.
func (b *Buffer) wrapIfPending() {
	if b.cursorCol < b.width {
		return
	}
	b.cursorCol = 0
	b.cursorRow++
	if b.cursorRow >= b.height {
		b.scrollUp()
		b.cursorRow = b.height - 1
	}
}

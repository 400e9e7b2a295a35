package termbuf

// scrollUp evicts the top screen line into scrollback and appends a blank
// line at the bottom.
func (b *Buffer) scrollUp() {
	b.evictTop()
	b.screen = append(b.screen, NewLine(b.width))
}

// evictTop removes the top screen line and pushes it onto scrollback. The
// screen is one line short until the caller restores it.
func (b *Buffer) evictTop() {
	if len(b.screen) == 0 {
		return
	}
	top := b.screen[0]
	copy(b.screen, b.screen[1:])
	b.screen[len(b.screen)-1] = nil
	b.screen = b.screen[:len(b.screen)-1]
	b.history.push(top)
	b.evicted++
}

// InsertLineAtBottom scrolls the screen up by one line. The cursor does not
// move.
func (b *Buffer) InsertLineAtBottom() {
	b.scrollUp()
	b.bumpVersion()
}

// ScrollbackLen returns the number of lines in history.
func (b *Buffer) ScrollbackLen() int {
	return b.history.len()
}

// ClearScreen blanks every screen line and homes the cursor. Scrollback is
// kept.
func (b *Buffer) ClearScreen() {
	b.screen = b.makeScreen()
	b.cursorRow = 0
	b.cursorCol = 0
	b.bumpVersion()
}

// ClearAll clears the screen and drops all scrollback.
func (b *Buffer) ClearAll() {
	b.ClearScreen()
	b.history.clear()
}

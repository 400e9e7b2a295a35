package termbuf

// Resize changes the buffer dimensions. Every line, including scrollback, is
// resized in place; columns cut by a narrower width are lost. Shrinking the
// height evicts lines from the top into scrollback, growing it adds blank
// lines at the bottom. The cursor is clamped into the new bounds.
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == b.width && height == b.height {
		return
	}

	if width != b.width {
		b.width = width
		for _, l := range b.screen {
			l.Resize(width)
		}
		b.history.each(func(l *Line) {
			l.Resize(width)
		})
	}

	for len(b.screen) > height {
		b.evictTop()
	}
	for len(b.screen) < height {
		b.screen = append(b.screen, NewLine(width))
	}
	b.height = height

	b.clampCursor()
	b.bumpVersion()
}

package termbuf

// Cell is a single character position in the grid.
type Cell struct {
	Char  rune
	Attrs Attributes

	// wide is derived from Char and is only written by NewCell and SetChar.
	wide bool

	// placeholder marks the blank WriteText stores after a wide character.
	placeholder bool
}

// DefaultCell returns a blank cell with default attributes.
func DefaultCell() Cell {
	return Cell{Char: ' '}
}

// NewCell creates a cell holding ch with a copy of attrs.
func NewCell(ch rune, attrs Attributes) Cell {
	return Cell{Char: ch, Attrs: attrs, wide: IsWide(ch)}
}

// Copy returns an independent copy of the cell.
func (c Cell) Copy() Cell {
	return c
}

// IsWide reports whether the cell's character occupies two columns.
func (c Cell) IsWide() bool {
	return c.wide
}

// IsPlaceholder reports whether the cell is the second column of a wide
// character written in overwrite mode.
func (c Cell) IsPlaceholder() bool {
	return c.placeholder
}

// SetChar replaces the character and re-derives the wide flag. The cell
// stops being a placeholder.
func (c *Cell) SetChar(ch rune) {
	c.Char = ch
	c.wide = IsWide(ch)
	c.placeholder = false
}

// SetAttrs replaces the cell's attributes.
func (c *Cell) SetAttrs(attrs Attributes) {
	c.Attrs = attrs
}

// IsWide reports whether r is drawn across two columns: Hangul Jamo, the CJK
// blocks, Hangul syllables and the halfwidth/fullwidth forms.
func IsWide(r rune) bool {
	return (r >= 0x1100 && r <= 0x115F) ||
		(r >= 0x2E80 && r <= 0x9FFF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0xFF00 && r <= 0xFFEF)
}

package termbuf

import "strings"

// Line is a fixed-width row of cells.
type Line struct {
	cells []Cell
}

// NewLine creates a blank line of the given width.
func NewLine(width int) *Line {
	if width < 0 {
		width = 0
	}
	l := &Line{cells: make([]Cell, width)}
	for i := range l.cells {
		l.cells[i] = DefaultCell()
	}
	return l
}

// Width returns the number of cells in the line.
func (l *Line) Width() int {
	return len(l.cells)
}

// Get returns the cell at col, or a default cell when col is out of range.
func (l *Line) Get(col int) Cell {
	if col < 0 || col >= len(l.cells) {
		return DefaultCell()
	}
	return l.cells[col]
}

// Set stores a copy of cell at col. Out-of-range columns are ignored.
func (l *Line) Set(col int, cell Cell) {
	if col < 0 || col >= len(l.cells) {
		return
	}
	l.cells[col] = cell.Copy()
}

// Fill replaces every cell with a fresh cell holding ch and attrs.
func (l *Line) Fill(ch rune, attrs Attributes) {
	for i := range l.cells {
		l.cells[i] = NewCell(ch, attrs)
	}
}

// Resize grows the line with blank cells or truncates it from the end.
// Truncated cells are discarded.
func (l *Line) Resize(width int) {
	if width < 0 {
		width = 0
	}
	switch {
	case width > len(l.cells):
		for len(l.cells) < width {
			l.cells = append(l.cells, DefaultCell())
		}
	case width < len(l.cells):
		cells := make([]Cell, width)
		copy(cells, l.cells[:width])
		l.cells = cells
	}
}

// Cells returns a copy of the line's cells.
func (l *Line) Cells() []Cell {
	out := make([]Cell, len(l.cells))
	copy(out, l.cells)
	return out
}

// String concatenates the cell characters in column order. The result always
// holds exactly Width() runes.
func (l *Line) String() string {
	var sb strings.Builder
	sb.Grow(len(l.cells))
	for _, c := range l.cells {
		sb.WriteRune(c.Char)
	}
	return sb.String()
}

// IsBlank reports whether every cell is a space with default attributes.
func (l *Line) IsBlank() bool {
	for _, c := range l.cells {
		if c.Char != ' ' || !c.Attrs.IsDefault() {
			return false
		}
	}
	return true
}

// shiftRight moves cells in [col, width-1) one position right, dropping the
// last cell. The cell at col is left unchanged.
func (l *Line) shiftRight(col int) {
	if col < 0 || col >= len(l.cells) {
		return
	}
	copy(l.cells[col+1:], l.cells[col:len(l.cells)-1])
}

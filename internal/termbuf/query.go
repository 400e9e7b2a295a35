package termbuf

import "strings"

// lineAt resolves a row: [0, height) is the screen and negative rows count
// back from the newest scrollback line, so -1 is the most recently evicted
// line and -ScrollbackLen() the oldest. Anything else is nil.
func (b *Buffer) lineAt(row int) *Line {
	if row >= 0 {
		if row < b.height {
			return b.screen[row]
		}
		return nil
	}
	return b.history.at(b.history.len() + row)
}

// CellAt returns the cell at (row, col), or a default cell.
func (b *Buffer) CellAt(row, col int) Cell {
	if col < 0 || col >= b.width {
		return DefaultCell()
	}
	l := b.lineAt(row)
	if l == nil {
		return DefaultCell()
	}
	return l.Get(col)
}

// CharAt returns the character at (row, col), or ' '.
func (b *Buffer) CharAt(row, col int) rune {
	return b.CellAt(row, col).Char
}

// AttributesAt returns the attributes at (row, col), or the defaults.
func (b *Buffer) AttributesAt(row, col int) Attributes {
	return b.CellAt(row, col).Attrs
}

// LineString returns the row's characters, or "" for rows that do not exist.
func (b *Buffer) LineString(row int) string {
	l := b.lineAt(row)
	if l == nil {
		return ""
	}
	return l.String()
}

// LineCells returns a copy of the row's cells, or nil.
func (b *Buffer) LineCells(row int) []Cell {
	l := b.lineAt(row)
	if l == nil {
		return nil
	}
	return l.Cells()
}

// ScreenContent returns the screen rows joined by newlines.
func (b *Buffer) ScreenContent() string {
	rows := make([]string, len(b.screen))
	for i, l := range b.screen {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}

// Content returns scrollback rows followed by screen rows, joined by
// newlines.
func (b *Buffer) Content() string {
	rows := make([]string, 0, b.history.len()+len(b.screen))
	b.EachLine(func(_ int, l *Line) {
		rows = append(rows, l.String())
	})
	return strings.Join(rows, "\n")
}

// EachLine calls fn for every scrollback line (oldest first) and then every
// screen line, passing the row address LineString would accept. fn must not
// modify the line.
func (b *Buffer) EachLine(fn func(row int, l *Line)) {
	n := b.history.len()
	i := 0
	b.history.each(func(l *Line) {
		fn(i-n, l)
		i++
	})
	for row, l := range b.screen {
		fn(row, l)
	}
}

// Package render turns buffer rows into terminal strings.
package render

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/termgrid/internal/perf"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

// Renderer converts buffer rows into strings. The zero value renders plain
// text; set Styled to emit ANSI styling.
type Renderer struct {
	Styled bool
}

// New returns a renderer that emits ANSI styling.
func New() *Renderer {
	return &Renderer{Styled: true}
}

// Row renders one row. Negative rows address scrollback. The result has a
// display width of at most the buffer width.
func (r *Renderer) Row(b *termbuf.Buffer, row int) string {
	return r.renderCells(b.LineCells(row), b.Width())
}

// Screen renders the visible screen, one line per row.
func (r *Renderer) Screen(b *termbuf.Buffer) string {
	defer perf.Time(perf.RenderFrame)()
	rows := make([]string, 0, b.Height())
	for row := 0; row < b.Height(); row++ {
		rows = append(rows, r.Row(b, row))
	}
	return strings.Join(rows, "\n")
}

// All renders scrollback followed by the screen.
func (r *Renderer) All(b *termbuf.Buffer) string {
	rows := make([]string, 0, b.ScrollbackLen()+b.Height())
	b.EachLine(func(_ int, l *termbuf.Line) {
		rows = append(rows, r.renderCells(l.Cells(), b.Width()))
	})
	return strings.Join(rows, "\n")
}

// Window renders height rows ending offset rows above the live screen's
// bottom. Offset 0 is the live screen.
func (r *Renderer) Window(b *termbuf.Buffer, offset int) string {
	defer perf.Time(perf.RenderFrame)()
	if offset < 0 {
		offset = 0
	}
	if limit := b.ScrollbackLen(); offset > limit {
		offset = limit
	}
	rows := make([]string, 0, b.Height())
	for row := -offset; row < b.Height()-offset; row++ {
		rows = append(rows, r.Row(b, row))
	}
	return strings.Join(rows, "\n")
}

// Plain renders the screen without styling.
func Plain(b *termbuf.Buffer) string {
	return (&Renderer{}).Screen(b)
}

func (r *Renderer) renderCells(cells []termbuf.Cell, width int) string {
	var out strings.Builder
	var run strings.Builder
	runAttrs := termbuf.DefaultAttributes()

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if r.Styled && !runAttrs.IsDefault() {
			out.WriteString(styleFor(runAttrs).Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}

	for col := 0; col < len(cells); col++ {
		cell := cells[col]
		if cell.Attrs != runAttrs {
			flush()
			runAttrs = cell.Attrs
		}
		run.WriteRune(cell.Char)
		if cell.IsWide() && col+1 < len(cells) && cells[col+1].IsPlaceholder() {
			col++
		}
	}
	flush()

	s := out.String()
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	return s
}

func styleFor(attrs termbuf.Attributes) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c := colorFor(attrs.Fg); c != nil {
		style = style.Foreground(c)
	}
	if c := colorFor(attrs.Bg); c != nil {
		style = style.Background(c)
	}
	if attrs.Style.Bold {
		style = style.Bold(true)
	}
	if attrs.Style.Italic {
		style = style.Italic(true)
	}
	if attrs.Style.Underline {
		style = style.Underline(true)
	}
	return style
}

// colorFor maps a buffer color to the matching ANSI basic color. The
// default color maps to nil so the terminal's own default shows through.
func colorFor(c termbuf.Color) color.Color {
	if c == termbuf.ColorDefault || !c.Valid() {
		return nil
	}
	return ansi.BasicColor(c - termbuf.ColorBlack)
}

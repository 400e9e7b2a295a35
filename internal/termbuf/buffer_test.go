package termbuf

import (
	"fmt"
	"strings"
	"testing"
)

func newTestBuffer() *Buffer {
	return New(80, 24, 1000)
}

func TestNewBuffer(t *testing.T) {
	b := newTestBuffer()
	if b.Width() != 80 || b.Height() != 24 || b.MaxScrollback() != 1000 {
		t.Fatalf("dims = %dx%d/%d", b.Width(), b.Height(), b.MaxScrollback())
	}
	if b.CursorRow() != 0 || b.CursorCol() != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", b.CursorRow(), b.CursorCol())
	}
	if b.ScrollbackLen() != 0 {
		t.Fatalf("ScrollbackLen() = %d", b.ScrollbackLen())
	}
}

func TestNewBufferClampsDimensions(t *testing.T) {
	b := New(0, -3, -1)
	if b.Width() != 1 || b.Height() != 1 || b.MaxScrollback() != 0 {
		t.Fatalf("dims = %dx%d/%d, want 1x1/0", b.Width(), b.Height(), b.MaxScrollback())
	}
}

func TestWriteText(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Hello")
	if b.CursorCol() != 5 || b.CursorRow() != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,5)", b.CursorRow(), b.CursorCol())
	}

	b.WriteText("I'm Neofytos")
	if b.CursorCol() != 17 {
		t.Fatalf("CursorCol() = %d, want 17", b.CursorCol())
	}
	if !strings.HasPrefix(b.LineString(0), "HelloI'm Neofytos") {
		t.Fatalf("LineString(0) = %q", b.LineString(0))
	}
}

func TestWriteTextEmptyIsNoop(t *testing.T) {
	b := newTestBuffer()
	v := b.Version()
	b.WriteText("")
	b.InsertText("")
	if b.Version() != v || b.CursorCol() != 0 {
		t.Fatal("empty text should not change the buffer")
	}
}

func TestWriteTextAdvancesByLength(t *testing.T) {
	for _, n := range []int{1, 10, 79, 80} {
		b := newTestBuffer()
		b.WriteText(strings.Repeat("x", n))
		if b.CursorCol() != n || b.CursorRow() != 0 {
			t.Errorf("after %d chars cursor = (%d,%d)", n, b.CursorRow(), b.CursorCol())
		}
	}
}

func TestWriteTextWrapping(t *testing.T) {
	b := newTestBuffer()
	b.WriteText(strings.Repeat("A", 84))

	if b.CursorRow() != 1 || b.CursorCol() != 4 {
		t.Fatalf("cursor = (%d,%d), want (1,4)", b.CursorRow(), b.CursorCol())
	}
	if b.LineString(0) != strings.Repeat("A", 80) {
		t.Fatalf("row 0 = %q", b.LineString(0))
	}
	if !strings.HasPrefix(b.LineString(1), "AAAA ") {
		t.Fatalf("row 1 = %q", b.LineString(1))
	}
}

func TestWriteTextWrapAtBottomEvicts(t *testing.T) {
	b := New(5, 2, 10)
	b.WriteText("aaaaabbbbbcc")

	if b.ScrollbackLen() != 1 {
		t.Fatalf("ScrollbackLen() = %d, want 1", b.ScrollbackLen())
	}
	if b.LineString(-1) != "aaaaa" {
		t.Fatalf("row -1 = %q", b.LineString(-1))
	}
	if b.LineString(0) != "bbbbb" || b.LineString(1) != "cc   " {
		t.Fatalf("screen = %q", b.ScreenContent())
	}
	if b.CursorRow() != 1 || b.CursorCol() != 2 {
		t.Fatalf("cursor = (%d,%d), want (1,2)", b.CursorRow(), b.CursorCol())
	}
}

func TestWriteWideCharacter(t *testing.T) {
	b := New(10, 2, 0)
	b.SetCurrentAttributes(ColorCyan, ColorDefault, Style{Bold: true})
	b.WriteText("你a")

	if b.CursorCol() != 3 {
		t.Fatalf("CursorCol() = %d, want 3", b.CursorCol())
	}
	if b.CharAt(0, 0) != '你' || !b.CellAt(0, 0).IsWide() {
		t.Fatalf("cell 0 = %+v", b.CellAt(0, 0))
	}
	placeholder := b.CellAt(0, 1)
	if placeholder.Char != ' ' || placeholder.IsWide() || !placeholder.IsPlaceholder() {
		t.Fatalf("placeholder = %+v", placeholder)
	}
	if placeholder.Attrs != b.AttributesAt(0, 0) {
		t.Fatalf("placeholder attrs %+v differ from wide cell %+v", placeholder.Attrs, b.AttributesAt(0, 0))
	}
	if b.CharAt(0, 2) != 'a' {
		t.Fatalf("cell 2 = %q", b.CharAt(0, 2))
	}
}

func TestWriteWideCharacterInLastColumn(t *testing.T) {
	b := New(4, 2, 0)
	b.SetCursorPosition(0, 3)
	b.WriteText("你")

	if b.CharAt(0, 3) != '你' {
		t.Fatalf("last column = %q", b.CharAt(0, 3))
	}
	if b.CursorCol() != 4 {
		t.Fatalf("CursorCol() = %d, want pending wrap at 4", b.CursorCol())
	}

	b.WriteText("b")
	if b.CursorRow() != 1 || b.CharAt(1, 0) != 'b' {
		t.Fatalf("next write should wrap; row 1 = %q", b.LineString(1))
	}
}

func TestCursorMovement(t *testing.T) {
	b := newTestBuffer()
	b.MoveCursorDown(5)
	b.MoveCursorRight(10)
	if b.CursorRow() != 5 || b.CursorCol() != 10 {
		t.Fatalf("cursor = (%d,%d), want (5,10)", b.CursorRow(), b.CursorCol())
	}
	b.MoveCursorUp(2)
	b.MoveCursorLeft(3)
	if b.CursorRow() != 3 || b.CursorCol() != 7 {
		t.Fatalf("cursor = (%d,%d), want (3,7)", b.CursorRow(), b.CursorCol())
	}
}

func TestCursorBounds(t *testing.T) {
	b := newTestBuffer()
	b.MoveCursorDown(100)
	b.MoveCursorRight(200)
	if b.CursorRow() != 23 || b.CursorCol() != 79 {
		t.Fatalf("cursor = (%d,%d), want (23,79)", b.CursorRow(), b.CursorCol())
	}

	b.MoveCursorUp(100)
	b.MoveCursorLeft(200)
	if b.CursorRow() != 0 || b.CursorCol() != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", b.CursorRow(), b.CursorCol())
	}
}

func TestCursorNegativeMoveIsNoop(t *testing.T) {
	b := newTestBuffer()
	b.SetCursorPosition(5, 5)
	b.MoveCursorUp(-3)
	b.MoveCursorDown(-3)
	b.MoveCursorLeft(-3)
	b.MoveCursorRight(-3)
	if b.CursorRow() != 5 || b.CursorCol() != 5 {
		t.Fatalf("cursor = (%d,%d), want (5,5)", b.CursorRow(), b.CursorCol())
	}
}

func TestSetCursorPosition(t *testing.T) {
	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{10, 20, 10, 20},
		{-5, -10, 0, 0},
		{100, 100, 23, 79},
		{23, 79, 23, 79},
		{0, 80, 0, 79},
	}
	for _, tt := range tests {
		b := newTestBuffer()
		b.SetCursorPosition(tt.row, tt.col)
		if b.CursorRow() != tt.wantRow || b.CursorCol() != tt.wantCol {
			t.Errorf("SetCursorPosition(%d,%d) -> (%d,%d), want (%d,%d)",
				tt.row, tt.col, b.CursorRow(), b.CursorCol(), tt.wantRow, tt.wantCol)
		}
	}
}

func TestInsertText(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Sunny")
	b.SetCursorPosition(0, 5)
	b.InsertText(" day!")

	line := b.LineString(0)
	if !strings.Contains(line, "Sunny day!") {
		t.Fatalf("LineString(0) = %q", line)
	}
	if n := len([]rune(line)); n != 80 {
		t.Fatalf("line length = %d, want 80", n)
	}
	if b.CursorCol() != 10 {
		t.Fatalf("CursorCol() = %d, want 10", b.CursorCol())
	}
}

func TestInsertTextShiftsAndDrops(t *testing.T) {
	b := New(6, 2, 0)
	b.WriteText("abcdef")
	b.SetCursorPosition(0, 1)
	b.InsertText("XY")

	if got := b.LineString(0); got != "aXYbcd" {
		t.Fatalf("LineString(0) = %q, want %q", got, "aXYbcd")
	}
}

func TestInsertTextWraps(t *testing.T) {
	b := New(3, 1, 5)
	b.InsertText("abcd")

	if b.ScrollbackLen() != 1 || b.LineString(-1) != "abc" {
		t.Fatalf("scrollback = %d %q", b.ScrollbackLen(), b.LineString(-1))
	}
	if b.LineString(0) != "d  " {
		t.Fatalf("LineString(0) = %q", b.LineString(0))
	}
}

// Insert mode writes wide characters into one column with no placeholder,
// unlike WriteText. This is the established behavior and drivers rely on
// insert consuming exactly one column per character.
func TestInsertTextWideCharacterHasNoPlaceholder(t *testing.T) {
	b := New(6, 1, 0)
	b.WriteText("abc")
	b.SetCursorPosition(0, 0)
	b.InsertText("你")

	if got := b.LineString(0); got != "你abc  " {
		t.Fatalf("LineString(0) = %q", got)
	}
	if b.CellAt(0, 1).IsPlaceholder() {
		t.Fatal("insert mode must not mark a placeholder")
	}
	if b.CursorCol() != 1 {
		t.Fatalf("CursorCol() = %d, want 1", b.CursorCol())
	}
}

func TestFillLine(t *testing.T) {
	b := newTestBuffer()
	b.SetCurrentAttributes(ColorYellow, ColorBlue, Style{Italic: true})
	b.FillLine(0, '&')

	line := b.LineString(0)
	if line != strings.Repeat("&", 80) {
		t.Fatalf("LineString(0) = %q", line)
	}
	if b.AttributesAt(0, 40).Fg != ColorYellow || !b.AttributesAt(0, 40).Style.Italic {
		t.Fatalf("attrs = %+v", b.AttributesAt(0, 40))
	}
}

func TestFillLineOutOfBounds(t *testing.T) {
	b := newTestBuffer()
	b.FillLine(-1, 'X')
	b.FillLine(24, 'X')
	b.FillLine(100, 'X')

	if b.LineString(-1) != "" || b.LineString(100) != "" {
		t.Fatal("out-of-range rows should read as empty")
	}
	for i := 0; i < 24; i++ {
		if strings.Contains(b.LineString(i), "X") {
			t.Fatalf("row %d was written: %q", i, b.LineString(i))
		}
	}
}

func TestClearScreen(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Dummy content")
	b.InsertLineAtBottom()
	b.ClearScreen()

	if b.CursorRow() != 0 || b.CursorCol() != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", b.CursorRow(), b.CursorCol())
	}
	for _, r := range b.ScreenContent() {
		if r != ' ' && r != '\n' {
			t.Fatalf("screen not blank: %q", b.ScreenContent())
		}
	}
	if b.ScrollbackLen() != 1 {
		t.Fatalf("ClearScreen touched scrollback: len=%d", b.ScrollbackLen())
	}
}

func TestClearAll(t *testing.T) {
	b := newTestBuffer()
	b.SetCurrentAttributes(ColorRed, ColorDefault, Style{})
	for i := 0; i < 30; i++ {
		b.WriteText("x")
		b.InsertLineAtBottom()
	}
	if b.ScrollbackLen() == 0 {
		t.Fatal("expected scrollback")
	}

	b.ClearAll()
	if b.ScrollbackLen() != 0 {
		t.Fatalf("ScrollbackLen() = %d, want 0", b.ScrollbackLen())
	}
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if c := b.CellAt(row, col); c != DefaultCell() {
				t.Fatalf("cell (%d,%d) = %+v, want default", row, col, c)
			}
		}
	}
}

func TestInsertLineAtBottom(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Line 1")
	for i := 0; i < 30; i++ {
		b.InsertLineAtBottom()
	}
	if b.ScrollbackLen() != 30 {
		t.Fatalf("ScrollbackLen() = %d, want 30", b.ScrollbackLen())
	}
	if strings.TrimSpace(b.LineString(-30)) != "Line 1" {
		t.Fatalf("oldest line = %q", b.LineString(-30))
	}
	if b.CursorRow() != 0 || b.CursorCol() != 6 {
		t.Fatalf("InsertLineAtBottom moved cursor to (%d,%d)", b.CursorRow(), b.CursorCol())
	}
}

func TestScrollback(t *testing.T) {
	b := newTestBuffer()
	for i := 0; i < 30; i++ {
		b.SetCursorPosition(23, 0)
		b.WriteText(fmt.Sprintf("Line %d", i))
		b.InsertLineAtBottom()
	}
	if b.ScrollbackLen() != 30 {
		t.Fatalf("ScrollbackLen() = %d, want 30", b.ScrollbackLen())
	}
	// A line written to the bottom row is evicted 23 iterations later, so only
	// Line 0 through Line 6 were pushed into history with content.
	if got := strings.TrimSpace(b.LineString(-7)); got != "Line 0" {
		t.Fatalf("row -7 = %q, want %q", got, "Line 0")
	}
	if got := strings.TrimSpace(b.LineString(-1)); got != "Line 6" {
		t.Fatalf("row -1 = %q, want %q", got, "Line 6")
	}
	if got := strings.TrimSpace(b.LineString(-8)); got != "" {
		t.Fatalf("row -8 = %q, want blank", got)
	}
}

func TestScrollbackPreservesContent(t *testing.T) {
	b := newTestBuffer()
	for i := 1; i <= 24; i++ {
		b.SetCursorPosition(i-1, 0)
		b.WriteText(fmt.Sprintf("Line %d", i))
	}
	if b.ScrollbackLen() != 0 {
		t.Fatalf("ScrollbackLen() = %d, want 0", b.ScrollbackLen())
	}

	for i := 0; i < 5; i++ {
		b.InsertLineAtBottom()
	}
	if b.ScrollbackLen() != 5 {
		t.Fatalf("ScrollbackLen() = %d, want 5", b.ScrollbackLen())
	}

	for i := 1; i <= 5; i++ {
		row := i - 6
		want := fmt.Sprintf("Line %d", i)
		if got := strings.TrimSpace(b.LineString(row)); got != want {
			t.Errorf("LineString(%d) = %q, want %q", row, got, want)
		}
	}
	if !strings.HasPrefix(b.LineString(0), "Line 6") {
		t.Fatalf("row 0 = %q", b.LineString(0))
	}
	if strings.TrimSpace(b.LineString(23)) != "" {
		t.Fatalf("row 23 = %q, want blank", b.LineString(23))
	}
}

func TestScrollbackLimit(t *testing.T) {
	b := New(80, 24, 10)
	for i := 0; i < 50; i++ {
		b.SetCursorPosition(0, 0)
		b.WriteText(fmt.Sprintf("evict %d", i+1))
		b.InsertLineAtBottom()
		if b.ScrollbackLen() > 10 {
			t.Fatalf("ScrollbackLen() = %d after %d evictions", b.ScrollbackLen(), i+1)
		}
	}
	if b.ScrollbackLen() != 10 {
		t.Fatalf("ScrollbackLen() = %d, want 10", b.ScrollbackLen())
	}
	// The 41st..50th evicted lines remain, oldest first.
	for i := 0; i < 10; i++ {
		row := -10 + i
		want := fmt.Sprintf("evict %d", 41+i)
		if got := strings.TrimSpace(b.LineString(row)); got != want {
			t.Errorf("LineString(%d) = %q, want %q", row, got, want)
		}
	}
}

func TestZeroScrollbackDiscardsEvictions(t *testing.T) {
	b := New(10, 2, 0)
	b.WriteText(strings.Repeat("z", 50))
	b.InsertLineAtBottom()
	if b.ScrollbackLen() != 0 {
		t.Fatalf("ScrollbackLen() = %d, want 0", b.ScrollbackLen())
	}
	if b.LineString(-1) != "" {
		t.Fatalf("LineString(-1) = %q, want empty", b.LineString(-1))
	}
}

func TestNegativeRowBoundaries(t *testing.T) {
	b := New(4, 2, 5)
	for _, s := range []string{"old0", "old1", "old2"} {
		b.SetCursorPosition(0, 0)
		b.WriteText(s)
		b.InsertLineAtBottom()
	}
	if b.LineString(-3) != "old0" {
		t.Fatalf("LineString(-3) = %q", b.LineString(-3))
	}
	if b.CharAt(-3, 3) != '0' {
		t.Fatalf("CharAt(-3,3) = %q", b.CharAt(-3, 3))
	}
	if b.LineString(-4) != "" || b.CharAt(-4, 0) != ' ' {
		t.Fatal("rows beyond oldest should read as empty")
	}
	if b.LineString(2) != "" || b.CharAt(2, 0) != ' ' {
		t.Fatal("rows beyond screen should read as empty")
	}
	if b.CharAt(0, -1) != ' ' || b.CharAt(0, 4) != ' ' || b.CharAt(-1, 99) != ' ' {
		t.Fatal("out-of-range columns should read as blank")
	}
}

func TestGetCharAt(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Test")
	for i, want := range "Test" {
		if got := b.CharAt(0, i); got != want {
			t.Errorf("CharAt(0,%d) = %q, want %q", i, got, want)
		}
	}
}

func TestGetLineAsString(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Hello World")
	line := b.LineString(0)
	if !strings.HasPrefix(line, "Hello World") || len(line) != 80 {
		t.Fatalf("LineString(0) = %q (len %d)", line, len(line))
	}
}

func TestGetScreenContent(t *testing.T) {
	b := newTestBuffer()
	b.WriteText("Line 1")
	b.SetCursorPosition(1, 0)
	b.WriteText("Line 2")

	lines := strings.Split(b.ScreenContent(), "\n")
	if len(lines) != 24 {
		t.Fatalf("got %d rows, want 24", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Line 1") || !strings.HasPrefix(lines[1], "Line 2") {
		t.Fatalf("rows = %q, %q", lines[0], lines[1])
	}
	if len(lines[2]) != 80 || strings.TrimSpace(lines[2]) != "" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestGetScreenContentEmpty(t *testing.T) {
	b := newTestBuffer()
	lines := strings.Split(b.ScreenContent(), "\n")
	if len(lines) != 24 {
		t.Fatalf("got %d rows, want 24", len(lines))
	}
	for i, line := range lines {
		if len(line) != 80 || strings.TrimSpace(line) != "" {
			t.Fatalf("row %d = %q", i, line)
		}
	}
}

func TestContentIncludesScrollback(t *testing.T) {
	b := New(3, 2, 10)
	b.WriteText("aaabbbccc")

	lines := strings.Split(b.Content(), "\n")
	want := []string{"aaa", "bbb", "ccc"}
	if len(lines) != len(want) {
		t.Fatalf("Content() rows = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEachLineRowAddresses(t *testing.T) {
	b := New(2, 2, 10)
	b.InsertLineAtBottom()
	b.InsertLineAtBottom()

	var rows []int
	b.EachLine(func(row int, _ *Line) { rows = append(rows, row) })
	want := []int{-2, -1, 0, 1}
	if fmt.Sprint(rows) != fmt.Sprint(want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
}

func TestAttributes(t *testing.T) {
	b := newTestBuffer()
	bold := Style{Bold: true}
	b.SetCurrentAttributes(ColorRed, ColorBlack, bold)
	b.WriteText("Red")

	attrs := b.AttributesAt(0, 0)
	if attrs.Fg != ColorRed || attrs.Bg != ColorBlack || !attrs.Style.Bold {
		t.Fatalf("AttributesAt(0,0) = %+v", attrs)
	}

	current := b.CurrentAttributes()
	current.Style.Bold = false
	if !b.CurrentAttributes().Style.Bold {
		t.Fatal("CurrentAttributes() exposed internal state")
	}

	b.SetCurrentAttributes(ColorGreen, ColorDefault, Style{})
	if b.AttributesAt(0, 0).Fg != ColorRed {
		t.Fatal("changing current attributes rewrote existing cells")
	}
}

func TestResizeNarrower(t *testing.T) {
	b := newTestBuffer()
	b.WriteText(strings.Repeat("w", 80))
	b.InsertLineAtBottom()
	b.SetCursorPosition(20, 70)

	b.Resize(40, 24)
	if b.Width() != 40 || b.Height() != 24 {
		t.Fatalf("dims = %dx%d", b.Width(), b.Height())
	}
	b.EachLine(func(row int, l *Line) {
		if n := len([]rune(l.String())); n != 40 {
			t.Errorf("row %d length = %d, want 40", row, n)
		}
	})
	if b.LineString(-1) != strings.Repeat("w", 40) {
		t.Fatalf("scrollback row = %q", b.LineString(-1))
	}
	if b.CursorRow() != 20 || b.CursorCol() != 39 {
		t.Fatalf("cursor = (%d,%d), want (20,39)", b.CursorRow(), b.CursorCol())
	}
}

func TestResizeWiderKeepsContent(t *testing.T) {
	b := New(4, 2, 0)
	b.WriteText("abcd")
	b.Resize(6, 2)
	if b.LineString(0) != "abcd  " {
		t.Fatalf("LineString(0) = %q", b.LineString(0))
	}
}

func TestResizeShorterEvictsTopLines(t *testing.T) {
	b := New(5, 4, 2)
	for i := 0; i < 4; i++ {
		b.SetCursorPosition(i, 0)
		b.WriteText(fmt.Sprintf("r%d", i))
	}

	b.Resize(5, 1)
	if b.Height() != 1 {
		t.Fatalf("Height() = %d", b.Height())
	}
	if strings.TrimSpace(b.LineString(0)) != "r3" {
		t.Fatalf("screen = %q", b.ScreenContent())
	}
	// Three lines were evicted but only two fit.
	if b.ScrollbackLen() != 2 {
		t.Fatalf("ScrollbackLen() = %d, want 2", b.ScrollbackLen())
	}
	if strings.TrimSpace(b.LineString(-2)) != "r1" || strings.TrimSpace(b.LineString(-1)) != "r2" {
		t.Fatalf("scrollback = %q", b.Content())
	}
	if b.CursorRow() != 0 {
		t.Fatalf("CursorRow() = %d, want 0", b.CursorRow())
	}
}

func TestResizeTallerAddsBlankLines(t *testing.T) {
	b := New(3, 1, 5)
	b.WriteText("abc")
	b.Resize(3, 3)
	lines := strings.Split(b.ScreenContent(), "\n")
	if len(lines) != 3 || lines[0] != "abc" || lines[1] != "   " || lines[2] != "   " {
		t.Fatalf("screen = %q", lines)
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	b := New(10, 10, 0)
	b.SetCursorPosition(5, 5)
	b.Resize(0, -1)
	if b.Width() != 1 || b.Height() != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", b.Width(), b.Height())
	}
	if b.CursorRow() != 0 || b.CursorCol() != 0 {
		t.Fatalf("cursor = (%d,%d)", b.CursorRow(), b.CursorCol())
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	b := newTestBuffer()
	steps := []struct {
		name string
		fn   func()
	}{
		{"write", func() { b.WriteText("a") }},
		{"insert", func() { b.InsertText("b") }},
		{"move", func() { b.MoveCursorDown(1) }},
		{"fill", func() { b.FillLine(0, '-') }},
		{"scroll", func() { b.InsertLineAtBottom() }},
		{"resize", func() { b.Resize(20, 5) }},
		{"clear", func() { b.ClearAll() }},
	}
	for _, step := range steps {
		before := b.Version()
		step.fn()
		if b.Version() <= before {
			t.Errorf("%s did not bump version", step.name)
		}
	}

	before := b.Version()
	b.MoveCursorUp(5)
	b.Resize(20, 5)
	if b.Version() != before {
		t.Error("no-op operations should not bump version")
	}
}

func TestEvictedKeepsCountingPastCapacity(t *testing.T) {
	b := New(4, 2, 3)
	for i := 0; i < 10; i++ {
		b.InsertLineAtBottom()
	}
	if b.ScrollbackLen() != 3 {
		t.Fatalf("ScrollbackLen() = %d, want 3", b.ScrollbackLen())
	}
	if b.Evicted() != 10 {
		t.Fatalf("Evicted() = %d, want 10", b.Evicted())
	}

	b.Resize(4, 1)
	if b.Evicted() != 11 {
		t.Fatalf("Evicted() after shrink = %d, want 11", b.Evicted())
	}

	b.ClearAll()
	if b.Evicted() != 11 {
		t.Fatalf("Evicted() after ClearAll = %d, want 11", b.Evicted())
	}
}

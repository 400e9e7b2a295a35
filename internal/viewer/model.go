// Package viewer is an interactive browser for a buffer's screen and
// scrollback.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/termgrid/internal/feed"
	"github.com/andyrewlee/termgrid/internal/render"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

const (
	refreshInterval = 100 * time.Millisecond
	wheelStep       = 3

	zoneTop  = "top"
	zoneLive = "live"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6")).Background(lipgloss.Color("#292e42"))
	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
)

type tickMsg struct{}

type copiedMsg struct {
	lines int
	err   error
}

// Model browses a Session. Offset counts rows scrolled back from the live
// screen; 0 means live.
type Model struct {
	session  *feed.Session
	renderer *render.Renderer
	zone     *zone.Manager
	keys     keyMap

	offset      int
	historyLen  int
	evicted     uint64
	bufHeight   int
	lastVersion uint64
	body        string

	notice   string
	quitting bool
}

// New creates a viewer over session.
func New(session *feed.Session) *Model {
	m := &Model{
		session:  session,
		renderer: render.New(),
		zone:     zone.New(),
		keys:     defaultKeyMap(),
	}
	m.refresh(true)
	return m
}

// Close releases the zone manager.
func (m *Model) Close() {
	if m.zone != nil {
		m.zone.Close()
	}
}

// Offset returns how many rows the view is scrolled back.
func (m *Model) Offset() int {
	return m.offset
}

// Init starts the refresh tick.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh(false)
		return m, tick()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.scroll(wheelStep)
		case tea.MouseWheelDown:
			m.scroll(-wheelStep)
		}
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		switch {
		case m.hit(zoneTop, msg.X, msg.Y):
			m.setOffset(m.historyLen)
		case m.hit(zoneLive, msg.X, msg.Y):
			m.setOffset(0)
		}
	case errMsg:
		m.notice = msg.err.Error()
	case copiedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("clipboard error: %v", msg.err)
		} else {
			m.notice = fmt.Sprintf("copied %d lines", msg.lines)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scroll(1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(-1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(m.bufHeight)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(-m.bufHeight)
	case key.Matches(msg, m.keys.Top):
		m.setOffset(m.historyLen)
	case key.Matches(msg, m.keys.Bottom):
		m.setOffset(0)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyContent()
	}
	return m, nil
}

func (m *Model) copyContent() tea.Cmd {
	var text string
	var lines int
	m.session.Snapshot(func(b *termbuf.Buffer) {
		text = b.Content()
		lines = b.ScrollbackLen() + b.Height()
	})
	return safeCmd(func() tea.Msg {
		return copiedMsg{lines: lines, err: writeClipboard(text)}
	})
}

func (m *Model) scroll(delta int) {
	m.setOffset(m.offset + delta)
}

func (m *Model) setOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > m.historyLen {
		offset = m.historyLen
	}
	if offset == m.offset {
		return
	}
	m.offset = offset
	m.refresh(true)
}

// refresh re-renders the body when the buffer changed or force is set. A
// view scrolled into history stays on the same lines as new ones arrive.
func (m *Model) refresh(force bool) {
	if !force && m.session.Version() == m.lastVersion {
		return
	}
	m.session.Snapshot(func(b *termbuf.Buffer) {
		n := b.ScrollbackLen()
		if ev := b.Evicted(); m.offset > 0 && ev > m.evicted {
			shift := ev - m.evicted
			if shift > uint64(n) {
				shift = uint64(n)
			}
			m.offset += int(shift)
		}
		if m.offset > n {
			m.offset = n
		}
		m.evicted = b.Evicted()
		m.historyLen = n
		m.bufHeight = b.Height()
		m.lastVersion = b.Version()
		m.body = m.renderer.Window(b, m.offset)
	})
}

func (m *Model) statusLine() string {
	top := m.zone.Mark(zoneTop, buttonStyle.Render("[top]"))
	live := m.zone.Mark(zoneLive, buttonStyle.Render("[live]"))
	pos := "live"
	if m.offset > 0 {
		pos = fmt.Sprintf("-%d/%d", m.offset, m.historyLen)
	}
	parts := []string{top, live, statusStyle.Render(" " + pos + " ")}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return strings.Join(parts, " ")
}

// hit reports whether (x, y) falls inside the zone with the given id.
func (m *Model) hit(id string, x, y int) bool {
	info := m.zone.Get(id)
	if info == nil || info.IsZero() {
		return false
	}
	return x >= info.StartX && x <= info.EndX && y >= info.StartY && y <= info.EndY
}

// View renders the current window and the status line.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	if m.quitting {
		return view
	}
	view.SetContent(m.Render())
	return view
}

// Render returns the frame content with zone markers resolved.
func (m *Model) Render() string {
	return m.zone.Scan(m.body + "\n" + m.statusLine())
}

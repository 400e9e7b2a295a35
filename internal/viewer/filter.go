package viewer

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
)

const wheelThrottle = 15 * time.Millisecond

// WheelFilter drops mouse wheel events that arrive faster than the view can
// usefully scroll. Use its Filter method with tea.WithFilter.
type WheelFilter struct {
	mu        sync.Mutex
	lastWheel time.Time
	now       func() time.Time
}

// NewWheelFilter creates a filter using the wall clock.
func NewWheelFilter() *WheelFilter {
	return &WheelFilter{now: time.Now}
}

// Filter passes msg through unless it is a throttled wheel event.
func (f *WheelFilter) Filter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseWheelMsg); !ok {
		return msg
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now()
	if now.Sub(f.lastWheel) < wheelThrottle {
		return nil
	}
	f.lastWheel = now
	return msg
}

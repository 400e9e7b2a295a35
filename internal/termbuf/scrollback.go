package termbuf

// scrollback is a bounded deque of lines, oldest first. Pushing past capacity
// drops the oldest line in the same step, so the length never exceeds the
// capacity. A zero capacity discards every push.
type scrollback struct {
	lines    []*Line
	head     int // index of the oldest line once the ring is full
	capacity int
}

func newScrollback(capacity int) *scrollback {
	if capacity < 0 {
		capacity = 0
	}
	return &scrollback{capacity: capacity}
}

func (s *scrollback) len() int {
	return len(s.lines)
}

// push appends l as the newest line.
func (s *scrollback) push(l *Line) {
	if s.capacity == 0 {
		return
	}
	if len(s.lines) < s.capacity {
		s.lines = append(s.lines, l)
		return
	}
	s.lines[s.head] = l
	s.head = (s.head + 1) % s.capacity
}

// at returns the line at index i (0 = oldest), or nil.
func (s *scrollback) at(i int) *Line {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[(s.head+i)%len(s.lines)]
}

// each calls fn for every line from oldest to newest.
func (s *scrollback) each(fn func(*Line)) {
	for i := 0; i < len(s.lines); i++ {
		fn(s.at(i))
	}
}

func (s *scrollback) clear() {
	s.lines = nil
	s.head = 0
}

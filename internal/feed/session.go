package feed

import (
	"sync"

	"github.com/andyrewlee/termgrid/internal/termbuf"
)

// Session guards a Buffer and its Driver for hosts that write from one
// goroutine and read from another.
type Session struct {
	mu     sync.Mutex
	buf    *termbuf.Buffer
	driver *Driver
}

// NewSession wraps buf. The caller must not touch buf directly afterwards.
func NewSession(buf *termbuf.Buffer) *Session {
	return &Session{buf: buf, driver: NewDriver(buf)}
}

// Write feeds p through the driver.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.driver.Write(p)
}

// SetMode switches the driver's write mode.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	s.driver.SetMode(m)
	s.mu.Unlock()
}

// SetTabWidth sets the driver's tab stop interval.
func (s *Session) SetTabWidth(n int) {
	s.mu.Lock()
	s.driver.SetTabWidth(n)
	s.mu.Unlock()
}

// Resize resizes the buffer.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	s.buf.Resize(width, height)
	s.mu.Unlock()
}

// Flush flushes any incomplete UTF-8 sequence held by the driver.
func (s *Session) Flush() {
	s.mu.Lock()
	s.driver.Flush()
	s.mu.Unlock()
}

// Snapshot calls fn with the buffer locked. fn must not retain the buffer.
func (s *Session) Snapshot(fn func(*termbuf.Buffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.buf)
}

// Version returns the buffer's change counter.
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Version()
}

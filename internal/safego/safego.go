// Package safego runs background work with panic recovery so a failing
// feed goroutine is logged instead of taking the process down.
package safego

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/termgrid/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

// PanicError is returned by RunErr when fn panicked.
type PanicError struct {
	Name      string
	Recovered any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Name, e.Recovered)
}

// Run executes fn and converts panics into logged errors.
// This does not recover from runtime-fatal errors (e.g., concurrent map writes).
func Run(name string, fn func()) {
	_ = RunErr(name, func() error {
		fn()
		return nil
	})
}

// RunErr executes fn and returns its error, or a *PanicError if it panicked.
func RunErr(name string, fn func() error) (err error) {
	label := name
	if label == "" {
		label = "goroutine"
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		logging.Error("panic in %s: %v\n%s", label, r, stack)
		notify(label, r, stack)
		err = &PanicError{Name: label, Recovered: r}
	}()
	return fn()
}

func notify(name string, recovered any, stack []byte) {
	panicHandlerMu.RLock()
	handler := panicHandler
	panicHandlerMu.RUnlock()
	if handler == nil {
		return
	}
	defer func() { _ = recover() }()
	handler(name, recovered, stack)
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// GoErr runs fn in a new goroutine with panic recovery. The returned channel
// receives fn's result exactly once and is then closed.
func GoErr(name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- RunErr(name, fn)
	}()
	return done
}

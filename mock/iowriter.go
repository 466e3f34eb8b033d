package mock

import (
	"sync"
)

// IOWriter is an io.Writer which accumulates everything written to it so tests can
// inspect log and report output. It is safe for concurrent use as the resolver may log
// from more than one goroutine.
type IOWriter struct {
	mu   sync.Mutex
	line []byte
}

func (t *IOWriter) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.line = make([]byte, 0)
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.line = append(t.line, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.line)
}

func (t *IOWriter) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.line)
}

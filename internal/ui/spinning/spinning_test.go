package spinning

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinning goroutine to write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinning(t *testing.T) {
	Period = time.Millisecond
	var calls atomic.Int32
	buf := &syncBuffer{}
	s := New(context.Background(), buf, func() string {
		calls.Add(1)
		return "3 of 10 mazes"
	})
	time.Sleep(20 * time.Millisecond)
	s.Done()
	s.Done() // Calling Done twice is fine.
	assert.Greater(t, calls.Load(), int32(0))
	out := buf.String()
	assert.Contains(t, out, "3 of 10 mazes")
	assert.Contains(t, out, "\033[?25h")
}

func TestSpinningCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf := &syncBuffer{}
	s := New(ctx, buf, func() string { return "" })
	s.Done()
	assert.Contains(t, buf.String(), "\033[?25l")
}

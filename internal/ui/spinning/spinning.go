// Package spinning provides a spinning symbol followed by a status line, to use while a program
// is generating mazes, and the handling of interruptions (Ctrl+C).
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Spinning displays a spinning symbol and a status until Done is called.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeBox   = []rune("┤┘┴└├┌┬┐")

	// Theme defaults to ThemeBox, but it can be set to anything else.
	Theme = ThemeBox

	// Period between updates of the spinning symbol.
	Period = 200 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}

		// Wait for gracePeriod before exiting.
		time.Sleep(gracePeriod)
		Reset(os.Stderr)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h\033[39;49;0m\n") // Restore cursor and colors.
}

// New starts a spinning display written to w that runs on a separate goroutine.
// At each update, status is called and its result printed after the spinning symbol.
// It stops when Spinning.Done is called, or ctx is cancelled.
func New(ctx context.Context, w io.Writer, status func() string) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide cursor while spinning, and on exit clear the status line and restore the cursor.
		_, _ = fmt.Fprint(w, "\033[?25l")
		defer fmt.Fprint(w, "\033[?25h")
		defer fmt.Fprint(w, "\r\033[0K")

		for idx := 0; ; idx = (idx + 1) % len(Theme) {
			_, _ = fmt.Fprintf(w, "\r%c %s\033[0K", Theme[idx], status())
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// continue
			}
		}
	}()
	return s
}

// Done stops the spinning display and waits for it to clear its line.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}

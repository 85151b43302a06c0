//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Watcher coalesces SIGWINCH into a one-slot event channel. The consumer
// polls at its own safe points; an unread event is replaced, never queued.
type Watcher struct {
	sigCh   chan os.Signal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher. It is inert until Start.
func NewWatcher() *Watcher {
	return &Watcher{
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan Event, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins listening for window size changes.
func (w *Watcher) Start() {
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go w.loop()
}

// Stop unsubscribes from the signal and waits for the loop to exit.
func (w *Watcher) Stop() {
	signal.Stop(w.sigCh)
	close(w.stopCh)
	<-w.doneCh
}

// Events returns the coalescing event channel.
func (w *Watcher) Events() <-chan Event {
	return w.eventCh
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case <-w.sigCh:
			width, height := size()
			if width <= 0 || height <= 0 {
				continue
			}
			ev := Event{Width: width, Height: height}
			select {
			case w.eventCh <- ev:
			default:
				// Replace the unconsumed event rather than blocking.
				select {
				case <-w.eventCh:
				default:
				}
				w.eventCh <- ev
			}
		}
	}
}

func size() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Col), int(ws.Row)
}

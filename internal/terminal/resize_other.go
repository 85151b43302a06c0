//go:build !unix

package terminal

// Watcher is inert on platforms without window change signals.
type Watcher struct {
	eventCh chan Event
}

// NewWatcher creates a no-op watcher.
func NewWatcher() *Watcher {
	return &Watcher{eventCh: make(chan Event)}
}

// Start does nothing.
func (w *Watcher) Start() {}

// Stop does nothing.
func (w *Watcher) Stop() {}

// Events returns a channel that never delivers.
func (w *Watcher) Events() <-chan Event {
	return w.eventCh
}

package tracking

import (
	"log/slog"
	"time"
)

// Tracker records hook events against an optional store. A nil or
// disabled tracker is a no-op, and recording failures never affect the
// hook's exit code; they are only logged.
type Tracker struct {
	store  *Store
	logger *slog.Logger
}

// NewTracker creates a tracker backed by the given store. Pass a nil
// store to disable tracking.
func NewTracker(store *Store, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{store: store, logger: logger}
}

// Enabled reports whether events will actually be persisted.
func (t *Tracker) Enabled() bool {
	return t != nil && t.store != nil
}

// TrackHookEvent records one hook execution.
func (t *Tracker) TrackHookEvent(hookName, projectName string, status int, elapsed time.Duration) {
	if !t.Enabled() {
		return
	}
	err := t.store.RecordEvent(Event{
		HookName:    hookName,
		ProjectName: projectName,
		Status:      status,
		Elapsed:     elapsed,
	})
	if err != nil {
		t.logger.Debug("failed to track hook event", "hook", hookName, "error", err)
		return
	}
	t.logger.Debug("tracked hook event", "hook", hookName, "status", status, "elapsed", elapsed)
}

// Close releases the underlying store, if any.
func (t *Tracker) Close() error {
	if t == nil || t.store == nil {
		return nil
	}
	return t.store.Close()
}

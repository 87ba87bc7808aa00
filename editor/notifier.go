package editor

// Notifier receives human-readable status and error strings from the editor.
// The frontend decides how to surface them (status bar, log, dialog).
type Notifier interface {
	// Status reports an informational message such as a mode change or a
	// missing icon.
	Status(msg string)

	// Error reports a failure, typically an IO problem, that left the
	// in-memory layout unchanged.
	Error(msg string)
}

// NopNotifier discards all messages. Useful in tests and headless callers.
type NopNotifier struct{}

// Status implements Notifier.
func (NopNotifier) Status(string) {}

// Error implements Notifier.
func (NopNotifier) Error(string) {}

package session

// NotifyLevel classifies a user-facing notification.
type NotifyLevel int

const (
	NotifyInfo NotifyLevel = iota
	NotifySuccess
	NotifyError
)

// Notifier receives transient user-facing notifications (toasts, status
// lines). Implementations must not block.
type Notifier interface {
	Notify(level NotifyLevel, message string)
}

// NopNotifier discards all notifications. It is the default.
type NopNotifier struct{}

func (NopNotifier) Notify(NotifyLevel, string) {}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(level NotifyLevel, message string)

func (f NotifierFunc) Notify(level NotifyLevel, message string) { f(level, message) }

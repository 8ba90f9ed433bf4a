package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a local, best-effort user notification.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the OS notification center.
type Desktop struct {
	appName string
}

// NewDesktop creates a desktop Notifier labeled with the given app name.
func NewDesktop(appName string) *Desktop {
	return &Desktop{appName: appName}
}

// Notify shows a desktop notification. Delivery is best effort; the OS may
// drop or coalesce notifications and no acknowledgment is awaited.
func (d *Desktop) Notify(title, body string) error {
	beeep.AppName = d.appName
	return beeep.Notify(title, body, "")
}

// Noop discards every notification. Used when reminders are disabled.
type Noop struct{}

func (Noop) Notify(string, string) error { return nil }

package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a reminder to the user. Implementations are best-effort;
// callers tolerate failure.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends reminders through the OS notification facility.
type Desktop struct {
	// AppName prefixes every notification title.
	AppName string
}

func NewDesktop() *Desktop {
	return &Desktop{AppName: "TaskScope"}
}

func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(d.AppName+": "+title, message, "")
}

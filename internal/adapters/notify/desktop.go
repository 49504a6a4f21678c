package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/quentel/tally/internal/ports"
)

const appName = "tally"

// DesktopNotifier raises a desktop notification. Callers treat failures as
// non-fatal: a missing notification daemon must never block a commit.
type DesktopNotifier struct{}

var _ ports.Notifier = DesktopNotifier{}

func (DesktopNotifier) Notify(title, message string) error {
	beeep.AppName = appName
	return beeep.Notify(title, message, "")
}

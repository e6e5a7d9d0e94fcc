package tooltipui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/aura/internal/tooltip/trigger"
)

type fyneScheduler struct{}

// AfterFunc runs fn on the Fyne main goroutine once d has elapsed.
func (fyneScheduler) AfterFunc(d time.Duration, fn func()) trigger.Timer {
	return time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

// Scheduler is the hover timer source for widgets in a running app.
var Scheduler trigger.Scheduler = fyneScheduler{}

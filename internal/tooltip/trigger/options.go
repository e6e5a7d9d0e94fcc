package trigger

import (
	"log/slog"
	"time"

	"github.com/shhac/aura/internal/tooltip/geometry"
)

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// TimeScheduler schedules with time.AfterFunc. Callbacks run on their own
// goroutine; UI code should wrap it so they reach the UI goroutine.
var TimeScheduler Scheduler = timeScheduler{}

type config struct {
	side      geometry.Side
	delay     time.Duration
	offset    float32
	scheduler Scheduler
	refocus   func()
	label     string
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		side:      geometry.SideTop,
		delay:     DefaultDelay,
		offset:    geometry.DefaultOffset,
		scheduler: TimeScheduler,
		label:     DefaultLabel,
	}
}

// Option configures a Trigger.
type Option func(*config)

// WithSide sets the preferred placement side.
func WithSide(side geometry.Side) Option {
	return func(c *config) {
		c.side = side
	}
}

// WithDelay sets the hover delay. Zero or negative opens on enter.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithOffset sets the clearance between trigger and panel.
func WithOffset(offset float32) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithScheduler replaces the hover timer source.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithRefocus sets the callback that returns keyboard focus to the
// trigger after Escape closes its tooltip.
func WithRefocus(fn func()) Option {
	return func(c *config) {
		c.refocus = fn
	}
}

// WithLabel overrides the accessible label.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithLogger sets where debug output such as missing trigger geometry goes.
// A nil logger disables it.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

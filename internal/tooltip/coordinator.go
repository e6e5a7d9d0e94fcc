// Package tooltip coordinates which tooltip, if any, is visible in a window.
//
// A single Coordinator is built per window and handed to every trigger and
// panel at construction time. At most one tooltip is open at any moment;
// opening another replaces it.
package tooltip

import (
	"log/slog"
	"sync"

	apperrors "github.com/shhac/aura/internal/errors"
	"github.com/shhac/aura/internal/tooltip/geometry"
)

// State is a snapshot of the coordinator. Position is non-nil exactly when
// OpenID is non-empty.
type State struct {
	OpenID   string
	Position *geometry.Position
}

// IsOpen reports whether any tooltip is open.
func (s State) IsOpen() bool {
	return s.OpenID != ""
}

// Listener observes coordinator state changes.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Coordinator is the single source of truth for tooltip visibility.
type Coordinator struct {
	mu        sync.RWMutex
	state     State
	listeners []subscription
	nextSubID int
	logger    *slog.Logger
}

// NewCoordinator creates a coordinator with nothing open.
func NewCoordinator(logger *slog.Logger) *Coordinator {
	return &Coordinator{logger: logger}
}

// MustCoordinator returns c, panicking with ErrNoCoordinator when c is nil.
// Triggers and panels call it at construction so that missing wiring fails
// at the call site instead of surfacing as a tooltip that never shows.
func MustCoordinator(c *Coordinator) *Coordinator {
	if c == nil {
		panic(apperrors.ErrNoCoordinator)
	}
	return c
}

// Open makes id the open tooltip at pos, replacing whatever was open.
// An empty id is treated as Close.
func (c *Coordinator) Open(id string, pos geometry.Position) {
	if id == "" {
		c.Close()
		return
	}

	c.mu.Lock()
	previous := c.state.OpenID
	p := pos
	c.state = State{OpenID: id, Position: &p}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("tooltip opened",
			slog.String("id", id),
			slog.String("replaced", previous),
			slog.String("side", pos.Side.String()),
		)
	}
	c.notify(snapshot)
}

// Close hides the open tooltip. Closing when nothing is open is a no-op
// and does not notify listeners.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if !c.state.IsOpen() {
		c.mu.Unlock()
		return
	}
	previous := c.state.OpenID
	c.state = State{}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("tooltip closed", slog.String("id", previous))
	}
	c.notify(snapshot)
}

// CloseIf closes the tooltip only when id is the one open. Triggers use it
// so a late event from one trigger cannot close another trigger's tooltip.
func (c *Coordinator) CloseIf(id string) {
	c.mu.RLock()
	open := c.state.OpenID == id && id != ""
	c.mu.RUnlock()
	if open {
		c.Close()
	}
}

// IsOpen reports whether id is the open tooltip.
func (c *Coordinator) IsOpen(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return id != "" && c.state.OpenID == id
}

// State returns a copy of the current state.
func (c *Coordinator) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to be called after every change. Listeners run
// outside the coordinator lock, in subscription order.
func (c *Coordinator) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	c.nextSubID++
	id := c.nextSubID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Coordinator) snapshotLocked() State {
	s := State{OpenID: c.state.OpenID}
	if c.state.Position != nil {
		p := *c.state.Position
		s.Position = &p
	}
	return s
}

func (c *Coordinator) notify(s State) {
	c.mu.RLock()
	listeners := make([]Listener, len(c.listeners))
	for i, sub := range c.listeners {
		listeners[i] = sub.fn
	}
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(s)
	}
}

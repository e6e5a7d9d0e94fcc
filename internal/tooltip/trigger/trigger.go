// Package trigger implements the interaction state machine behind a tooltip
// trigger: hover with delay, keyboard focus and toggling, and touch taps.
package trigger

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/geometry"
)

// DefaultDelay is the hover time before a tooltip opens.
const DefaultDelay = 200 * time.Millisecond

// DefaultLabel is the accessible name announced for info triggers.
const DefaultLabel = "Daha fazla bilgi"

// State is the trigger's position in its state machine.
type State int

const (
	Idle State = iota
	PendingOpen
	Open
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingOpen:
		return "pending-open"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Modality is the input device an event came from.
type Modality int

const (
	Pointer Modality = iota
	Touch
	Keyboard
)

// Kind is the type of an input event.
type Kind int

const (
	MouseEnter Kind = iota
	MouseLeave
	Focus
	Blur
	KeyDown
	TouchStart
	Teardown
)

// Key is a key relevant to triggers.
type Key string

const (
	KeyEnter  Key = "Enter"
	KeySpace  Key = "Space"
	KeyEscape Key = "Escape"
)

// Event is one input delivered to a trigger.
type Event struct {
	Kind     Kind
	Modality Modality
	Key      Key
}

// BoundsFunc reports the trigger's on-screen rectangle, or false when it
// has not been laid out yet.
type BoundsFunc func() (geometry.Rect, bool)

// Trigger turns input events into coordinator Open and Close calls for one
// tooltip id. It owns at most one pending hover timer.
type Trigger struct {
	id     string
	coord  *tooltip.Coordinator
	bounds BoundsFunc
	cfg    config

	mu         sync.Mutex
	pending    Timer
	generation uint64
	torndown   bool
}

// New creates a trigger for tooltip id. It panics when coord is nil.
func New(id string, coord *tooltip.Coordinator, bounds BoundsFunc, opts ...Option) *Trigger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Trigger{
		id:     id,
		coord:  tooltip.MustCoordinator(coord),
		bounds: bounds,
		cfg:    cfg,
	}
}

// ID returns the tooltip id this trigger controls.
func (t *Trigger) ID() string {
	return t.id
}

// Side returns the preferred placement side.
func (t *Trigger) Side() geometry.Side {
	return t.cfg.side
}

// State derives the current state. A trigger is Open only while the
// coordinator reports its id, so another trigger opening returns this one
// to Idle without any event.
func (t *Trigger) State() State {
	t.mu.Lock()
	pending := t.pending != nil
	t.mu.Unlock()

	if pending {
		return PendingOpen
	}
	if t.coord.IsOpen(t.id) {
		return Open
	}
	return Idle
}

// Handle feeds one event through the state machine and reports whether
// the trigger consumed it.
func (t *Trigger) Handle(ev Event) bool {
	t.mu.Lock()
	torndown := t.torndown
	t.mu.Unlock()
	if torndown {
		return false
	}

	switch ev.Kind {
	case MouseEnter:
		if ev.Modality == Touch {
			return false
		}
		return t.hoverStart()
	case MouseLeave:
		if ev.Modality == Touch {
			return false
		}
		t.cancelPending()
		t.coord.CloseIf(t.id)
		return true
	case Focus:
		t.cancelPending()
		t.openNow()
		return true
	case Blur:
		t.cancelPending()
		t.coord.CloseIf(t.id)
		return true
	case KeyDown:
		return t.key(ev.Key)
	case TouchStart:
		t.cancelPending()
		t.toggle()
		return true
	case Teardown:
		t.teardown()
		return true
	}
	return false
}

func (t *Trigger) MouseEnter() bool   { return t.Handle(Event{Kind: MouseEnter, Modality: Pointer}) }
func (t *Trigger) MouseLeave() bool   { return t.Handle(Event{Kind: MouseLeave, Modality: Pointer}) }
func (t *Trigger) Focus() bool        { return t.Handle(Event{Kind: Focus, Modality: Keyboard}) }
func (t *Trigger) Blur() bool         { return t.Handle(Event{Kind: Blur, Modality: Keyboard}) }
func (t *Trigger) KeyDown(k Key) bool { return t.Handle(Event{Kind: KeyDown, Modality: Keyboard, Key: k}) }
func (t *Trigger) TouchStart() bool   { return t.Handle(Event{Kind: TouchStart, Modality: Touch}) }

// Teardown cancels any pending open. Call it when the trigger leaves the UI.
func (t *Trigger) Teardown() { t.Handle(Event{Kind: Teardown}) }

func (t *Trigger) hoverStart() bool {
	if t.coord.IsOpen(t.id) {
		return false
	}
	if t.cfg.delay <= 0 {
		t.openNow()
		return true
	}

	t.mu.Lock()
	if t.pending != nil {
		t.mu.Unlock()
		return false
	}
	t.generation++
	gen := t.generation
	t.pending = t.cfg.scheduler.AfterFunc(t.cfg.delay, func() { t.fire(gen) })
	t.mu.Unlock()
	return true
}

// fire runs when the hover timer elapses. A callback from a cancelled or
// replaced timer sees a stale generation and does nothing.
func (t *Trigger) fire(gen uint64) {
	t.mu.Lock()
	if t.torndown || gen != t.generation || t.pending == nil {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	t.mu.Unlock()

	t.openNow()
}

func (t *Trigger) cancelPending() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Trigger) key(k Key) bool {
	switch k {
	case KeyEnter, KeySpace:
		t.cancelPending()
		t.toggle()
		return true
	case KeyEscape:
		if !t.coord.IsOpen(t.id) {
			return false
		}
		t.cancelPending()
		t.coord.Close()
		if t.cfg.refocus != nil {
			t.cfg.refocus()
		}
		return true
	}
	return false
}

func (t *Trigger) toggle() {
	if t.coord.IsOpen(t.id) {
		t.coord.Close()
		return
	}
	t.openNow()
}

func (t *Trigger) openNow() {
	var (
		rect geometry.Rect
		ok   bool
	)
	if t.bounds != nil {
		rect, ok = t.bounds()
	}
	if !ok && t.cfg.logger != nil {
		t.cfg.logger.Debug("trigger geometry unavailable, anchoring at origin", slog.String("id", t.id))
	}
	t.coord.Open(t.id, geometry.AnchorFor(rect, ok, t.cfg.side, t.cfg.offset))
}

func (t *Trigger) teardown() {
	t.cancelPending()
	t.mu.Lock()
	t.torndown = true
	t.mu.Unlock()
	t.coord.CloseIf(t.id)
}

// A11y describes the trigger for assistive technology.
type A11y struct {
	Label       string
	Expanded    bool
	DescribedBy string // tooltip id while open, empty otherwise
}

// A11y returns the accessibility attributes for the current state.
func (t *Trigger) A11y() A11y {
	a := A11y{Label: t.cfg.label}
	if t.coord.IsOpen(t.id) {
		a.Expanded = true
		a.DescribedBy = t.id
	}
	return a
}

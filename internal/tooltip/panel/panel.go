// Package panel decides what a tooltip panel shows and where it goes.
//
// A Renderer produces a Frame for one tooltip id. Placement is two-pass:
// the panel is first clamped using an estimated size, then measured, then
// clamped again with the real size, because text length is only known once
// the panel has been laid out.
package panel

import (
	"log/slog"
	"time"

	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/content"
	"github.com/shhac/aura/internal/tooltip/geometry"
)

const (
	// MaxWidth is the widest a panel may grow before its text wraps.
	MaxWidth float32 = 300
	// Transition is the fade and move duration when motion is allowed.
	Transition = 150 * time.Millisecond
)

// DefaultEstimate is the size assumed before a panel has ever been measured.
var DefaultEstimate = geometry.Size{Width: MaxWidth, Height: 80}

// Env is the environment sampled at the moment a frame is computed.
type Env struct {
	Viewport      geometry.Size
	Margin        float32 // zero means geometry.DefaultMargin
	ReducedMotion bool
	Touch         bool
}

func (e Env) margin() float32 {
	if e.Margin > 0 {
		return e.Margin
	}
	return geometry.DefaultMargin
}

// Measurer reports the laid-out size of a panel showing entry.
type Measurer interface {
	Measure(entry content.Entry, showClose bool) geometry.Size
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(entry content.Entry, showClose bool) geometry.Size

func (f MeasureFunc) Measure(entry content.Entry, showClose bool) geometry.Size {
	return f(entry, showClose)
}

// Frame is everything a toolkit needs to draw one panel.
type Frame struct {
	Visible bool

	Entry   content.Entry
	Missing bool // Entry is the placeholder for an unknown id

	Anchor   geometry.Position // raw position from the coordinator
	Trial    geometry.Position // placement from the size estimate
	Position geometry.Position // final top-left corner and resolved side
	Size     geometry.Size
	Arrow    geometry.Side // panel edge carrying the arrow

	ShowClose  bool
	Transition time.Duration // zero under reduced motion
}

// Rect returns the on-screen rectangle of a visible frame.
func (f Frame) Rect() geometry.Rect {
	return geometry.PanelRect(f.Position, f.Size)
}

// Renderer computes frames for one tooltip id.
type Renderer struct {
	id       string
	coord    *tooltip.Coordinator
	store    *content.Store
	measurer Measurer
	logger   *slog.Logger

	estimate geometry.Size
	last     Frame
}

// New creates a renderer for id. It panics when coord is nil. A nil store
// renders the placeholder for every id; a nil measurer trusts the estimate.
func New(id string, coord *tooltip.Coordinator, store *content.Store, measurer Measurer, logger *slog.Logger) *Renderer {
	if store == nil {
		store = content.New(nil, logger)
	}
	return &Renderer{
		id:       id,
		coord:    tooltip.MustCoordinator(coord),
		store:    store,
		measurer: measurer,
		logger:   logger,
		estimate: DefaultEstimate,
	}
}

// ID returns the tooltip id this renderer draws.
func (r *Renderer) ID() string {
	return r.id
}

// Last returns the most recently computed frame.
func (r *Renderer) Last() Frame {
	return r.last
}

// Frame computes the panel for the current coordinator state. It returns
// an invisible frame unless the coordinator reports this renderer's id open.
func (r *Renderer) Frame(env Env) Frame {
	state := r.coord.State()
	if state.OpenID != r.id || state.Position == nil {
		r.last = Frame{}
		return r.last
	}

	entry := r.store.Lookup(r.id)
	if entry.Fallback && r.logger != nil {
		r.logger.Warn("tooltip panel showing placeholder", slog.String("id", r.id))
	}

	raw := *state.Position
	showClose := env.Touch
	measure := func() geometry.Size {
		if r.measurer == nil {
			return r.estimate
		}
		return r.measurer.Measure(entry, showClose)
	}

	trial, final, size := geometry.Layout(raw, r.estimate, measure, env.Viewport, env.margin())
	r.estimate = size

	r.last = Frame{
		Visible:    true,
		Entry:      entry,
		Missing:    entry.Fallback,
		Anchor:     raw,
		Trial:      trial,
		Position:   final,
		Size:       size,
		Arrow:      geometry.ArrowEdge(final.Side),
		ShowClose:  showClose,
		Transition: transition(env),
	}
	return r.last
}

// Relayout re-clamps the last frame when the toolkit reports an actual
// size different from the measured one. It reports whether the frame
// changed.
func (r *Renderer) Relayout(actual geometry.Size, env Env) (Frame, bool) {
	if !r.last.Visible || actual == r.last.Size {
		return r.last, false
	}
	if !r.coord.IsOpen(r.id) {
		r.last = Frame{}
		return r.last, true
	}

	final := geometry.Clamp(r.last.Anchor, actual, env.Viewport, env.margin())
	r.estimate = actual
	r.last.Position = final
	r.last.Size = actual
	r.last.Arrow = geometry.ArrowEdge(final.Side)
	return r.last, true
}

// CloseTapped handles the explicit close button shown on touch devices.
func (r *Renderer) CloseTapped() {
	r.coord.CloseIf(r.id)
}

// TapOutside closes a touch panel when p falls outside it. It reports
// whether the tap closed the panel.
func (r *Renderer) TapOutside(p geometry.Point) bool {
	if !r.last.Visible || !r.last.ShowClose || !r.coord.IsOpen(r.id) {
		return false
	}
	if r.last.Rect().Contains(p) {
		return false
	}
	r.coord.Close()
	return true
}

func transition(env Env) time.Duration {
	if env.ReducedMotion {
		return 0
	}
	return Transition
}

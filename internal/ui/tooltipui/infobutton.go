package tooltipui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/geometry"
	"github.com/shhac/aura/internal/tooltip/trigger"
)

// Compile-time interface checks.
var (
	_ desktop.Hoverable = (*InfoButton)(nil)
	_ fyne.Focusable    = (*InfoButton)(nil)
	_ fyne.Tappable     = (*InfoButton)(nil)
)

// MinTouchTarget is the smallest edge length of an info button.
const MinTouchTarget float32 = 44

// InfoButton is the small "i" icon that opens a tooltip. Hover opens it
// after the layer's delay, focus opens it at once, Enter or Space toggle it
// and Escape closes it. In touch mode a tap toggles it.
type InfoButton struct {
	widget.BaseWidget

	id    string
	layer *Layer
	opts  []trigger.Option
	trig  *trigger.Trigger

	icon *widget.Icon
	ring *canvas.Rectangle

	// suppressFocus swallows the focus event caused by our own refocus
	// after Escape so it does not reopen the tooltip.
	suppressFocus bool
}

// NewInfoButton creates a button for tooltip id hosted by layer. It panics
// with ErrNoCoordinator when layer is nil.
func NewInfoButton(id string, layer *Layer, opts ...trigger.Option) *InfoButton {
	tooltip.MustCoordinator(layer.Coordinator())
	b := &InfoButton{
		id:    id,
		layer: layer,
		opts:  opts,
		icon:  widget.NewIcon(theme.InfoIcon()),
		ring:  canvas.NewRectangle(color.Transparent),
	}
	b.ring.StrokeWidth = 2
	b.ring.CornerRadius = theme.InputRadiusSize()
	b.build()
	layer.register(b)
	b.ExtendBaseWidget(b)
	return b
}

func (b *InfoButton) build() {
	settings := b.layer.Settings()
	base := []trigger.Option{
		trigger.WithSide(settings.Side),
		trigger.WithDelay(settings.Delay),
		trigger.WithScheduler(b.layer.scheduler),
		trigger.WithRefocus(b.refocus),
		trigger.WithLogger(b.layer.logger),
	}
	b.trig = trigger.New(b.id, b.layer.coord, func() (geometry.Rect, bool) {
		return b.layer.bounds(b)
	}, append(base, b.opts...)...)
}

func (b *InfoButton) rebuild() {
	b.trig.Teardown()
	b.build()
}

// ID returns the tooltip id.
func (b *InfoButton) ID() string {
	return b.id
}

// Trigger exposes the underlying state machine.
func (b *InfoButton) Trigger() *trigger.Trigger {
	return b.trig
}

// A11y returns the accessibility attributes of the button.
func (b *InfoButton) A11y() trigger.A11y {
	return b.trig.A11y()
}

// Detach cancels pending work and closes this button's tooltip. Call it
// when the button is removed from the window.
func (b *InfoButton) Detach() {
	b.trig.Teardown()
}

func (b *InfoButton) modality() trigger.Modality {
	if b.touch() {
		return trigger.Touch
	}
	return trigger.Pointer
}

func (b *InfoButton) touch() bool {
	return b.layer.settings.Touch || fyne.CurrentDevice().IsMobile()
}

// MouseIn starts the hover delay.
func (b *InfoButton) MouseIn(_ *desktop.MouseEvent) {
	b.trig.Handle(trigger.Event{Kind: trigger.MouseEnter, Modality: b.modality()})
}

// MouseMoved is required by desktop.Hoverable but needs no action.
func (b *InfoButton) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut cancels the hover delay or closes the tooltip.
func (b *InfoButton) MouseOut() {
	b.trig.Handle(trigger.Event{Kind: trigger.MouseLeave, Modality: b.modality()})
}

// Tapped toggles the tooltip on touch devices. With a pointer a click
// focuses the button, which opens the tooltip.
func (b *InfoButton) Tapped(_ *fyne.PointEvent) {
	if b.touch() {
		b.trig.TouchStart()
		return
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(b); c != nil && c.Focused() != b {
		c.Focus(b)
	}
}

// FocusGained opens the tooltip immediately.
func (b *InfoButton) FocusGained() {
	b.ring.StrokeColor = theme.Color(theme.ColorNameFocus)
	b.ring.Refresh()
	if b.suppressFocus {
		b.suppressFocus = false
		return
	}
	b.trig.Focus()
}

// FocusLost closes the tooltip.
func (b *InfoButton) FocusLost() {
	b.suppressFocus = false
	b.ring.StrokeColor = color.Transparent
	b.ring.Refresh()
	b.trig.Blur()
}

// TypedRune is required by fyne.Focusable but needs no action.
func (b *InfoButton) TypedRune(_ rune) {}

// TypedKey maps Enter, Space and Escape onto the trigger.
func (b *InfoButton) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		b.trig.KeyDown(trigger.KeyEnter)
	case fyne.KeySpace:
		b.trig.KeyDown(trigger.KeySpace)
	case fyne.KeyEscape:
		b.trig.KeyDown(trigger.KeyEscape)
	}
}

func (b *InfoButton) refocus() {
	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if c == nil || c.Focused() == b {
		return
	}
	b.suppressFocus = true
	c.Focus(b)
}

// CreateRenderer implements fyne.Widget.
func (b *InfoButton) CreateRenderer() fyne.WidgetRenderer {
	target := canvas.NewRectangle(color.Transparent)
	target.SetMinSize(fyne.NewSquareSize(MinTouchTarget))
	return widget.NewSimpleRenderer(container.NewStack(target, b.ring, container.NewCenter(b.icon)))
}

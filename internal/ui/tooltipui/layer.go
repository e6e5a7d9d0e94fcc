// Package tooltipui renders the tooltip engine with Fyne: info buttons that
// drive triggers, and an overlay layer that draws the one open panel.
package tooltipui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/content"
	"github.com/shhac/aura/internal/tooltip/geometry"
	"github.com/shhac/aura/internal/tooltip/panel"
	"github.com/shhac/aura/internal/tooltip/trigger"
)

// slideDistance is how far a panel travels while it fades in.
const slideDistance float32 = 4

// Settings are the user-adjustable tooltip behaviours.
type Settings struct {
	Delay         time.Duration
	ReducedMotion bool
	Touch         bool
	Side          geometry.Side
}

// Layer hosts every tooltip of one window. It owns nothing but drawing:
// which tooltip is open is the coordinator's business.
type Layer struct {
	coord     *tooltip.Coordinator
	store     *content.Store
	logger    *slog.Logger
	settings  Settings
	scheduler trigger.Scheduler

	overlay   *fyne.Container
	view      *panelView
	catcher   *tapCatcher
	anim      *fyne.Animation
	renderers map[string]*panel.Renderer
	buttons   []*InfoButton
	shown     string

	unsubscribe func()
}

// NewLayer creates the overlay for one window. It panics when coord is nil.
func NewLayer(coord *tooltip.Coordinator, store *content.Store, settings Settings, logger *slog.Logger) *Layer {
	l := &Layer{
		coord:     tooltip.MustCoordinator(coord),
		store:     store,
		logger:    logger,
		settings:  settings,
		scheduler: Scheduler,
		view:      newPanelView(),
		catcher:   newTapCatcher(),
		renderers: make(map[string]*panel.Renderer),
	}
	l.overlay = container.New(&overlayLayout{layer: l})
	l.unsubscribe = l.coord.Subscribe(func(tooltip.State) {
		fyne.Do(l.refresh)
	})
	return l
}

// Coordinator returns the coordinator shared by this layer's buttons.
func (l *Layer) Coordinator() *tooltip.Coordinator {
	if l == nil {
		return nil
	}
	return l.coord
}

// Wrap stacks the overlay above content. Use the result as window content.
func (l *Layer) Wrap(content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewStack(content, l.overlay)
}

// Settings returns the current tooltip settings.
func (l *Layer) Settings() Settings {
	return l.settings
}

// SetSettings applies new settings. Existing buttons are rebuilt so the new
// delay and side take effect, and any open tooltip is closed.
func (l *Layer) SetSettings(s Settings) {
	l.settings = s
	l.coord.Close()
	for _, b := range l.buttons {
		b.rebuild()
	}
}

// Teardown detaches every button and stops listening to the coordinator.
func (l *Layer) Teardown() {
	for _, b := range l.buttons {
		b.Detach()
	}
	l.buttons = nil
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.hide()
}

// Frame returns the frame last drawn for the open tooltip.
func (l *Layer) Frame() panel.Frame {
	if r, ok := l.renderers[l.shown]; ok {
		return r.Last()
	}
	return panel.Frame{}
}

func (l *Layer) register(b *InfoButton) {
	l.buttons = append(l.buttons, b)
	l.renderer(b.id)
}

func (l *Layer) renderer(id string) *panel.Renderer {
	r, ok := l.renderers[id]
	if !ok {
		r = panel.New(id, l.coord, l.store, panel.MeasureFunc(l.view.measure), l.logger)
		l.renderers[id] = r
	}
	return r
}

func (l *Layer) env() panel.Env {
	return panel.Env{
		Viewport:      fromSize(l.viewport()),
		ReducedMotion: l.settings.ReducedMotion,
		Touch:         l.settings.Touch || fyne.CurrentDevice().IsMobile(),
	}
}

func (l *Layer) viewport() fyne.Size {
	if size := l.overlay.Size(); size.Width > 0 && size.Height > 0 {
		return size
	}
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(l.overlay); c != nil {
			return c.Size()
		}
	}
	return fyne.Size{}
}

// bounds reports obj's rectangle in overlay coordinates.
func (l *Layer) bounds(obj fyne.CanvasObject) (geometry.Rect, bool) {
	app := fyne.CurrentApp()
	if app == nil || !obj.Visible() {
		return geometry.Rect{}, false
	}
	driver := app.Driver()
	if driver.CanvasForObject(obj) == nil {
		return geometry.Rect{}, false
	}
	size := obj.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return geometry.Rect{}, false
	}
	pos := driver.AbsolutePositionForObject(obj).Subtract(driver.AbsolutePositionForObject(l.overlay))
	return geometry.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}, true
}

// refresh redraws the overlay from the coordinator state.
func (l *Layer) refresh() {
	state := l.coord.State()
	if !state.IsOpen() {
		l.hide()
		return
	}

	r := l.renderer(state.OpenID)
	env := l.env()
	frame := r.Frame(env)
	if !frame.Visible {
		l.hide()
		return
	}

	l.view.set(frame.Entry, frame.ShowClose)
	l.view.onClose = r.CloseTapped
	l.view.Resize(toSize(frame.Size))
	if actual := l.view.MinSize(); actual.Height > frame.Size.Height {
		if f, changed := r.Relayout(geometry.Size{Width: frame.Size.Width, Height: actual.Height}, env); changed && f.Visible {
			frame = f
			l.view.Resize(toSize(frame.Size))
		}
	}
	l.view.arrowSide = frame.Arrow

	objects := make([]fyne.CanvasObject, 0, 2)
	if frame.ShowClose {
		l.catcher.onTap = func(p geometry.Point) { r.TapOutside(p) }
		l.catcher.Move(fyne.NewPos(0, 0))
		l.catcher.Resize(l.viewport())
		objects = append(objects, l.catcher)
	}
	objects = append(objects, l.view)
	l.overlay.Objects = objects

	if l.anim != nil {
		l.anim.Stop()
		l.anim = nil
	}
	end := toPos(frame.Position)
	if frame.Transition > 0 && l.shown != r.ID() {
		start := end.Add(slideFrom(frame.Arrow))
		l.view.Move(start)
		l.anim = canvas.NewPositionAnimation(start, end, frame.Transition, l.view.Move)
		l.anim.Start()
	} else {
		l.view.Move(end)
	}

	l.shown = r.ID()
	l.view.Refresh()
	l.overlay.Refresh()
}

// reposition re-clamps an open panel after the viewport changed.
func (l *Layer) reposition() {
	r, ok := l.renderers[l.shown]
	if !ok || !r.Last().Visible {
		return
	}
	frame := r.Frame(l.env())
	if !frame.Visible {
		return
	}
	l.view.arrowSide = frame.Arrow
	l.view.Resize(toSize(frame.Size))
	l.view.Move(toPos(frame.Position))
	l.catcher.Resize(l.viewport())
}

func (l *Layer) hide() {
	if l.anim != nil {
		l.anim.Stop()
		l.anim = nil
	}
	l.shown = ""
	l.catcher.onTap = nil
	if len(l.overlay.Objects) == 0 {
		return
	}
	l.overlay.Objects = nil
	l.overlay.Refresh()
}

// slideFrom offsets the start of the entry animation away from the trigger.
func slideFrom(arrow geometry.Side) fyne.Position {
	switch arrow {
	case geometry.SideTop:
		return fyne.NewPos(0, -slideDistance)
	case geometry.SideBottom:
		return fyne.NewPos(0, slideDistance)
	case geometry.SideLeft:
		return fyne.NewPos(-slideDistance, 0)
	default:
		return fyne.NewPos(slideDistance, 0)
	}
}

// overlayLayout keeps objects where refresh put them and re-clamps the open
// panel when the window is resized.
type overlayLayout struct {
	layer *Layer
	last  fyne.Size
}

func (o *overlayLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	if size == o.last {
		return
	}
	o.last = size
	o.layer.reposition()
}

func (o *overlayLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.Size{}
}

package tooltipui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/aura/internal/errors"
	"github.com/shhac/aura/internal/logging"
	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/content"
	"github.com/shhac/aura/internal/tooltip/geometry"
	"github.com/shhac/aura/internal/tooltip/trigger"
)

type manualTimer struct {
	fn      func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	was := !m.stopped
	m.stopped = true
	return was
}

type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(_ time.Duration, fn func()) trigger.Timer {
	t := &manualTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) fire() {
	for _, t := range s.timers {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}

type fixture struct {
	coord  *tooltip.Coordinator
	layer  *Layer
	window fyne.Window
	a, b   *InfoButton
}

func newFixture(t *testing.T, settings Settings) *fixture {
	t.Helper()
	test.NewTempApp(t)

	store, err := content.Default(logging.NewNopLogger())
	require.NoError(t, err)

	coord := tooltip.NewCoordinator(logging.NewNopLogger())
	layer := NewLayer(coord, store, settings, logging.NewNopLogger())

	a := NewInfoButton(content.RiskScore, layer)
	b := NewInfoButton(content.ChurnRate, layer, trigger.WithSide(geometry.SideBottom))
	body := container.NewVBox(
		container.NewHBox(widget.NewLabel("Risk"), a),
		container.NewHBox(widget.NewLabel("Churn"), b),
	)

	w := test.NewWindow(layer.Wrap(body))
	w.Resize(fyne.NewSize(800, 600))
	t.Cleanup(w.Close)

	return &fixture{coord: coord, layer: layer, window: w, a: a, b: b}
}

var still = Settings{ReducedMotion: true, Side: geometry.SideTop}

func TestNewInfoButton_PanicsWithoutLayer(t *testing.T) {
	test.NewTempApp(t)
	assert.PanicsWithValue(t, apperrors.ErrNoCoordinator, func() {
		NewInfoButton("roi", nil)
	})
}

func TestInfoButton_MinimumTouchTarget(t *testing.T) {
	f := newFixture(t, still)
	min := f.a.MinSize()
	assert.GreaterOrEqual(t, min.Width, MinTouchTarget)
	assert.GreaterOrEqual(t, min.Height, MinTouchTarget)
}

func TestHover_OpensPanelAfterDelay(t *testing.T) {
	test.NewTempApp(t)
	sched := &manualScheduler{}
	store, err := content.Default(nil)
	require.NoError(t, err)
	coord := tooltip.NewCoordinator(nil)
	layer := NewLayer(coord, store, Settings{Delay: 200 * time.Millisecond, ReducedMotion: true}, nil)
	layer.scheduler = sched
	btn := NewInfoButton(content.ROI, layer)
	w := test.NewWindow(layer.Wrap(container.NewCenter(btn)))
	w.Resize(fyne.NewSize(800, 600))
	defer w.Close()

	btn.MouseIn(nil)
	assert.False(t, coord.State().IsOpen())
	require.Len(t, sched.timers, 1)

	sched.fire()
	require.True(t, coord.IsOpen(content.ROI))

	frame := layer.Frame()
	require.True(t, frame.Visible)
	assert.Equal(t, store.Lookup(content.ROI).Title, frame.Entry.Title)
	assert.Contains(t, frame.Entry.Title, "ROI")
	assert.Contains(t, layer.overlay.Objects, fyne.CanvasObject(layer.view))

	btn.MouseOut()
	assert.False(t, coord.State().IsOpen())
	assert.Empty(t, layer.overlay.Objects)
}

func TestHover_LeaveBeforeDelay(t *testing.T) {
	test.NewTempApp(t)
	sched := &manualScheduler{}
	coord := tooltip.NewCoordinator(nil)
	layer := NewLayer(coord, nil, Settings{Delay: time.Second}, nil)
	layer.scheduler = sched
	btn := NewInfoButton(content.ROI, layer)

	btn.MouseIn(nil)
	btn.MouseOut()
	sched.fire()

	assert.False(t, coord.State().IsOpen())
}

func TestFocus_SingleInstance(t *testing.T) {
	f := newFixture(t, still)
	c := f.window.Canvas()

	c.Focus(f.a)
	assert.True(t, f.coord.IsOpen(content.RiskScore))

	c.Focus(f.b)
	assert.True(t, f.coord.IsOpen(content.ChurnRate))
	assert.False(t, f.coord.IsOpen(content.RiskScore))
	assert.Equal(t, content.ChurnRate, f.layer.Frame().Entry.ID)

	c.Unfocus()
	assert.False(t, f.coord.State().IsOpen())
}

func TestKeyboard_ToggleAndEscape(t *testing.T) {
	f := newFixture(t, still)
	c := f.window.Canvas()
	c.Focus(f.a)
	require.True(t, f.coord.IsOpen(content.RiskScore))

	f.a.TypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.False(t, f.coord.State().IsOpen())

	f.a.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.True(t, f.coord.IsOpen(content.RiskScore))

	f.a.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.False(t, f.coord.State().IsOpen())
	assert.Equal(t, fyne.Focusable(f.a), c.Focused(), "focus stays on the trigger")
}

func TestPanel_StaysInsideWindow(t *testing.T) {
	f := newFixture(t, still)
	f.window.Canvas().Focus(f.a)

	frame := f.layer.Frame()
	require.True(t, frame.Visible)
	assert.True(t, frame.Rect().Within(geometry.Size{Width: 800, Height: 600}, geometry.DefaultMargin),
		"panel %+v escapes the window", frame.Rect())
	assert.LessOrEqual(t, frame.Size.Width, float32(300))
	assert.Equal(t, geometry.SideBottom, frame.Position.Side, "no room above the first row")
}

func TestTouch_TapTogglesAndTapOutsideCloses(t *testing.T) {
	f := newFixture(t, Settings{ReducedMotion: true, Touch: true})

	test.Tap(f.b)
	require.True(t, f.coord.IsOpen(content.ChurnRate))
	assert.True(t, f.layer.Frame().ShowClose)
	assert.Contains(t, f.layer.overlay.Objects, fyne.CanvasObject(f.layer.catcher))

	f.b.MouseOut()
	assert.True(t, f.coord.IsOpen(content.ChurnRate), "hover is ignored in touch mode")

	f.layer.catcher.Tapped(&fyne.PointEvent{Position: fyne.NewPos(790, 590)})
	assert.False(t, f.coord.State().IsOpen())

	test.Tap(f.b)
	f.layer.view.closeBtn.OnTapped()
	assert.False(t, f.coord.State().IsOpen())
}

func TestSetSettings_RebuildsTriggers(t *testing.T) {
	f := newFixture(t, still)
	f.window.Canvas().Focus(f.a)

	f.layer.SetSettings(Settings{Side: geometry.SideLeft, ReducedMotion: true})
	assert.False(t, f.coord.State().IsOpen(), "settings change closes the open tooltip")
	assert.Equal(t, geometry.SideLeft, f.a.Trigger().Side())
	assert.Equal(t, geometry.SideBottom, f.b.Trigger().Side(), "per-button options still win")
}

func TestLayer_Teardown(t *testing.T) {
	f := newFixture(t, still)
	f.a.MouseIn(nil)
	require.True(t, f.coord.IsOpen(content.RiskScore))

	f.layer.Teardown()
	assert.False(t, f.coord.State().IsOpen())

	f.a.MouseIn(nil)
	assert.False(t, f.coord.State().IsOpen(), "detached buttons ignore input")
}

func TestA11y(t *testing.T) {
	f := newFixture(t, still)
	assert.Equal(t, trigger.DefaultLabel, f.a.A11y().Label)
	assert.False(t, f.a.A11y().Expanded)

	f.a.MouseIn(nil)
	assert.True(t, f.a.A11y().Expanded)
	assert.Equal(t, content.RiskScore, f.a.A11y().DescribedBy)
}

func TestScheduler_RunsOnMainGoroutine(t *testing.T) {
	test.NewTempApp(t)
	done := make(chan struct{})
	Scheduler.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled callback never ran")
	}
}

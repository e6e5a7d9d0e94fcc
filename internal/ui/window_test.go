package ui

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/aura/internal/app"
	"github.com/shhac/aura/internal/domain"
	"github.com/shhac/aura/internal/logging"
	"github.com/shhac/aura/internal/model"
	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/content"
	"github.com/shhac/aura/internal/tooltip/geometry"
	"github.com/shhac/aura/internal/ui/tooltipui"
)

type fakeController struct {
	state *model.DashboardState
	cfg   *app.Config
	store *content.Store
	coord *tooltip.Coordinator
}

func newFakeController(t *testing.T) *fakeController {
	t.Helper()
	store, err := content.Default(nil)
	require.NoError(t, err)
	cfg := app.DefaultConfig()
	cfg.HoverDelay = 0
	cfg.ReducedMotion = true
	return &fakeController{
		state: model.NewDashboardState(),
		cfg:   cfg,
		store: store,
		coord: tooltip.NewCoordinator(nil),
	}
}

func (f *fakeController) State() *model.DashboardState   { return f.state }
func (f *fakeController) Logger() *slog.Logger           { return logging.NewNopLogger() }
func (f *fakeController) Config() *app.Config            { return f.cfg }
func (f *fakeController) Content() *content.Store        { return f.store }
func (f *fakeController) Tooltips() *tooltip.Coordinator { return f.coord }

func (f *fakeController) RefreshDashboard(context.Context) (domain.Snapshot, error) {
	snap := domain.Snapshot{Summary: domain.PlaceholderSummary(), Source: domain.SourcePlaceholder}
	fyne.Do(func() { f.state.Apply(snap) })
	return snap, nil
}

// infoButtons walks the widget tree and collects every info button.
func infoButtons(o fyne.CanvasObject) []*tooltipui.InfoButton {
	switch v := o.(type) {
	case *tooltipui.InfoButton:
		return []*tooltipui.InfoButton{v}
	case *fyne.Container:
		var found []*tooltipui.InfoButton
		for _, child := range v.Objects {
			found = append(found, infoButtons(child)...)
		}
		return found
	case fyne.Widget:
		var found []*tooltipui.InfoButton
		for _, child := range test.WidgetRenderer(v).Objects() {
			found = append(found, infoButtons(child)...)
		}
		return found
	}
	return nil
}

func TestMainWindow_OneTooltipAtATime(t *testing.T) {
	a := test.NewTempApp(t)
	ctrl := newFakeController(t)
	mw := NewMainWindow(a, ctrl)
	defer mw.Window().Close()

	buttons := infoButtons(mw.Window().Content())
	require.GreaterOrEqual(t, len(buttons), 6, "every dashboard card has an info button")

	c := mw.Window().Canvas()
	for _, b := range buttons[:3] {
		c.Focus(b)
		assert.True(t, ctrl.coord.IsOpen(b.ID()))
	}
	assert.Equal(t, buttons[2].ID(), ctrl.coord.State().OpenID)

	mw.Tooltips().Teardown()
	assert.False(t, ctrl.coord.State().IsOpen())
}

func TestMainWindow_GlossaryIDsDistinct(t *testing.T) {
	a := test.NewTempApp(t)
	ctrl := newFakeController(t)
	mw := NewMainWindow(a, ctrl)
	defer mw.Window().Close()

	dashboard := make(map[string]*tooltipui.InfoButton)
	for _, b := range infoButtons(mw.dashboardView()) {
		dashboard[b.ID()] = b
	}
	require.Contains(t, dashboard, content.RiskScore)

	glossary := infoButtons(mw.glossaryView())
	require.Len(t, glossary, ctrl.store.Len())

	var risk *tooltipui.InfoButton
	for _, b := range glossary {
		assert.NotContains(t, dashboard, b.ID())
		entry := ctrl.store.Lookup(b.ID())
		assert.False(t, entry.Fallback, "glossary id %s resolves to catalog content", b.ID())
		if content.BaseID(b.ID()) == content.RiskScore {
			risk = b
		}
	}
	require.NotNil(t, risk)

	ctrl.coord.Open(risk.ID(), geometry.Position{})
	assert.True(t, risk.A11y().Expanded)
	assert.False(t, dashboard[content.RiskScore].A11y().Expanded)
}

func TestMainWindow_Refresh(t *testing.T) {
	a := test.NewTempApp(t)
	ctrl := newFakeController(t)
	mw := NewMainWindow(a, ctrl)
	defer mw.Window().Close()

	mw.Refresh(false)
	assert.Eventually(t, func() bool {
		v, _ := ctrl.state.TotalCustomers.Get()
		return v == "7.043"
	}, time.Second, 10*time.Millisecond)
}

func TestTooltipSettings(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.TouchMode = true
	s := tooltipSettings(cfg)
	assert.True(t, s.Touch)
	assert.Equal(t, cfg.HoverDelay, s.Delay)
	assert.Equal(t, cfg.Side, s.Side)
}

func TestApplyTheme(t *testing.T) {
	a := test.NewTempApp(t)
	for _, mode := range []string{"dark", "light", "system"} {
		ApplyTheme(a, mode)
		assert.NotNil(t, a.Settings().Theme())
	}
	a.Preferences().SetString(app.PrefTheme, "dark")
	LoadThemePreference(a)
	_, forced := a.Settings().Theme().(*forcedVariant)
	assert.True(t, forced)
}

package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/aura/internal/app"
	"github.com/shhac/aura/internal/domain"
	"github.com/shhac/aura/internal/model"
	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/content"
	uierrors "github.com/shhac/aura/internal/ui/errors"
	"github.com/shhac/aura/internal/ui/settings"
	"github.com/shhac/aura/internal/ui/tooltipui"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.DashboardState
	Logger() *slog.Logger
	Config() *app.Config
	Content() *content.Store
	Tooltips() *tooltip.Coordinator
	RefreshDashboard(ctx context.Context) (domain.Snapshot, error)
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	state   *model.DashboardState
	logger  *slog.Logger
	app     AppController

	tooltips  *tooltipui.Layer
	statusBar *uierrors.StatusBar
	refresh   *widget.Button
}

// NewMainWindow creates the dashboard window. Every metric card carries an
// info button; all of them share one tooltip layer so at most one tooltip
// is ever visible.
func NewMainWindow(fyneApp fyne.App, ctrl AppController) *MainWindow {
	window := fyneApp.NewWindow("AURA - Churn Risk Dashboard")

	mw := &MainWindow{
		fyneApp: fyneApp,
		window:  window,
		state:   ctrl.State(),
		logger:  ctrl.Logger(),
		app:     ctrl,
	}

	mw.tooltips = tooltipui.NewLayer(ctrl.Tooltips(), ctrl.Content(), tooltipSettings(ctrl.Config()), mw.logger)
	mw.statusBar = uierrors.NewStatusBar(mw.state.API)
	mw.refresh = widget.NewButtonWithIcon("Yenile", theme.ViewRefreshIcon(), func() {
		mw.Refresh(true)
	})

	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.SetOnClosed(func() {
		mw.tooltips.Teardown()
	})
	window.Resize(fyne.NewSize(1100, 760))

	return mw
}

func tooltipSettings(cfg *app.Config) tooltipui.Settings {
	return tooltipui.Settings{
		Delay:         cfg.HoverDelay,
		ReducedMotion: cfg.ReducedMotion,
		Touch:         cfg.TouchMode,
		Side:          cfg.Side,
	}
}

// Refresh reloads the dashboard in the background. When interactive is set
// and the scoring service could not be reached, an error dialog explains
// why the figures are not live.
func (w *MainWindow) Refresh(interactive bool) {
	w.refresh.Disable()
	go func() {
		_, err := w.app.RefreshDashboard(context.Background())
		fyne.Do(func() {
			w.refresh.Enable()
			if err != nil && interactive {
				uierrors.ShowAPIError(err, w.window, func() { w.Refresh(true) })
			}
		})
		if err != nil {
			w.logger.Warn("dashboard refresh fell back", slog.Any("error", err))
		}
	}()
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────────────────────────────────────────┐
//	│  Title                              Refresh  │
//	├──────────────────────────────────────────────┤
//	│  Dashboard | Glossary tabs                   │
//	│    metric cards, risk distribution, top list │
//	├──────────────────────────────────────────────┤
//	│  Status Bar                                  │
//	└──────────────────────────────────────────────┘
//
// The tooltip layer is stacked above everything.
func (w *MainWindow) SetContent() {
	title := widget.NewLabelWithStyle("AURA Müşteri Kayıp Riski", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, nil, w.refresh, title)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Panel", theme.HomeIcon(), w.dashboardView()),
		container.NewTabItemWithIcon("Sözlük", theme.InfoIcon(), w.glossaryView()),
	)
	tabs.OnSelected = func(*container.TabItem) {
		w.app.Tooltips().Close()
	}

	body := container.NewBorder(header, w.statusBar, nil, nil, tabs)
	w.window.SetContent(w.tooltips.Wrap(body))
}

func (w *MainWindow) dashboardView() fyne.CanvasObject {
	cards := container.NewGridWithColumns(4,
		w.metricCard("Toplam Müşteri", content.TotalCustomers, w.state.TotalCustomers),
		w.metricCard("Yüksek Riskli", content.HighRiskCount, w.state.HighRiskCount),
		w.metricCard("Aylık Churn", content.ChurnRate, w.state.ChurnRate),
		w.metricCard("Ortalama Risk", content.RiskScore, w.state.AverageRisk),
	)

	distribution := container.NewGridWithColumns(3,
		bandLabel("Düşük", w.state.RiskLow),
		bandLabel("Orta", w.state.RiskMedium),
		bandLabel("Yüksek", w.state.RiskHigh),
	)
	distributionCard := widget.NewCard("", "", container.NewVBox(
		w.cardHeader("Risk Dağılımı", content.RiskDistribution),
		distribution,
	))

	topList := widget.NewListWithData(w.state.TopRisky,
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	topCard := widget.NewCard("", "", container.NewBorder(
		w.cardHeader("En Riskli Müşteriler", content.AIInsights), nil, nil, nil, topList))

	return container.NewBorder(
		container.NewVBox(cards, distributionCard),
		nil, nil, nil,
		topCard,
	)
}

func (w *MainWindow) metricCard(title, tooltipID string, value binding.String) fyne.CanvasObject {
	valueLabel := widget.NewLabelWithData(value)
	valueLabel.TextStyle = fyne.TextStyle{Bold: true}
	valueLabel.SizeName = theme.SizeNameHeadingText
	return widget.NewCard("", "", container.NewVBox(w.cardHeader(title, tooltipID), valueLabel))
}

func (w *MainWindow) cardHeader(title, tooltipID string) fyne.CanvasObject {
	label := widget.NewLabel(title)
	label.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, tooltipui.NewInfoButton(tooltipID, w.tooltips), label)
}

func bandLabel(name string, value binding.String) fyne.CanvasObject {
	v := widget.NewLabelWithData(value)
	v.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVBox(widget.NewLabel(name), v)
}

// glossaryScope keeps glossary triggers distinct from the dashboard cards
// that show the same entries.
const glossaryScope = "glossary"

// glossaryView lists every catalog entry by category, each with its own
// info button.
func (w *MainWindow) glossaryView() fyne.CanvasObject {
	store := w.app.Content()
	groups := []struct {
		name     string
		category content.Category
	}{
		{"Risk", content.CategoryRisk},
		{"Metrikler", content.CategoryMetric},
		{"Kampanya", content.CategoryCampaign},
		{"Açıklanabilirlik", content.CategoryShap},
		{"Müşteri Alanları", content.CategoryField},
	}

	list := container.NewVBox()
	for _, g := range groups {
		ids := store.IDsByCategory(g.category)
		if len(ids) == 0 {
			continue
		}
		list.Add(widget.NewLabelWithStyle(g.name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		grid := container.NewGridWithColumns(3)
		for _, id := range ids {
			entry := store.Lookup(id)
			grid.Add(container.NewBorder(nil, nil, nil,
				tooltipui.NewInfoButton(content.Scoped(glossaryScope, id), w.tooltips),
				widget.NewLabel(entry.Title)))
		}
		list.Add(grid)
	}

	scroll := container.NewVScroll(list)
	scroll.OnScrolled = func(fyne.Position) {
		// anchors move with the content; close rather than float away
		w.app.Tooltips().Close()
	}
	return scroll
}

func (w *MainWindow) setupMainMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Refresh", func() { w.Refresh(true) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences…", w.showPreferences),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (w *MainWindow) showPreferences() {
	settings.ShowPreferencesDialog(w.fyneApp, w.window, w.app.Config(), settings.PreferencesCallbacks{
		OnThemeChange: func(mode string) {
			ApplyTheme(w.fyneApp, mode)
		},
		OnTooltipChange: func() {
			cfg := w.app.Config()
			app.ApplyPreferences(cfg, w.fyneApp.Preferences())
			w.tooltips.SetSettings(tooltipSettings(cfg))
			w.logger.Info("tooltip preferences updated",
				slog.Duration("hover_delay", cfg.HoverDelay),
				slog.Bool("reduced_motion", cfg.ReducedMotion),
				slog.Bool("touch", cfg.TouchMode))
		},
	})
}

// Tooltips returns the window's tooltip layer.
func (w *MainWindow) Tooltips() *tooltipui.Layer {
	return w.tooltips
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

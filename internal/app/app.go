package app

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/shhac/aura/internal/api"
	"github.com/shhac/aura/internal/domain"
	"github.com/shhac/aura/internal/logging"
	"github.com/shhac/aura/internal/model"
	"github.com/shhac/aura/internal/storage"
	"github.com/shhac/aura/internal/tooltip"
	"github.com/shhac/aura/internal/tooltip/content"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	storage storage.Repository
	client  *api.Client
	state   *model.DashboardState
	content *content.Store
	tooltip *tooltip.Coordinator
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger(logging.Options{Dir: cfg.LogDir, Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(fyneApp, cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	ApplyPreferences(cfg, fyneApp.Preferences())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("initializing AURA application",
		slog.Bool("debug", cfg.Debug),
		slog.String("storage_path", cfg.StoragePath),
		slog.String("log_dir", cfg.LogDir),
		slog.String("api_url", cfg.APIURL),
		slog.String("config_file", cfg.ConfigFile),
	)

	// Initialize storage
	storagePath := cfg.StoragePath
	if storagePath == "" {
		var err error
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}
	repo := storage.NewJSONRepository(storagePath, logger)

	store, err := content.Default(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load tooltip catalog: %w", err)
	}

	logger.Info("application initialized successfully",
		slog.Int("tooltips", store.Len()))

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		storage: repo,
		client:  api.NewClient(cfg.APIURL, repo, logger),
		state:   model.NewDashboardState(),
		content: store,
		tooltip: tooltip.NewCoordinator(logger),
	}, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// RefreshDashboard fetches the dashboard summary and publishes it to the
// bindings. The returned error explains a non-live answer; the bindings
// are updated either way.
func (a *App) RefreshDashboard(ctx context.Context) (domain.Snapshot, error) {
	fyne.Do(func() {
		a.state.API.Set(model.APILoading, "Loading dashboard from "+a.client.BaseURL())
	})

	snap, err := a.client.DashboardSummary(ctx)
	fyne.Do(func() {
		a.state.Apply(snap)
	})
	return snap, err
}

// Config returns the effective configuration.
func (a *App) Config() *Config {
	return a.config
}

// State returns the dashboard state for use by UI components.
func (a *App) State() *model.DashboardState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Content returns the tooltip content store.
func (a *App) Content() *content.Store {
	return a.content
}

// Tooltips returns the window's tooltip coordinator.
func (a *App) Tooltips() *tooltip.Coordinator {
	return a.tooltip
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}

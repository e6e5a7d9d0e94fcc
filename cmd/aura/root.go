package main

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	auraapp "github.com/shhac/aura/internal/app"
	"github.com/shhac/aura/internal/logging"
	"github.com/shhac/aura/internal/ui"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// cliLogger is set up before any subcommand runs.
var cliLogger = logging.NewNopLogger()

// rootCmd starts the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Customer churn risk dashboard",
	Long: `AURA shows churn risk figures from the scoring service. Every metric
carries an info button with a short explanation; hover, focus or tap it.

Run without arguments to open the dashboard window.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cliLogger = logging.NewConsoleLogger(cmd.ErrOrStderr(), verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runApp()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(tooltipsCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp is the GUI entry point with panic recovery.
func runApp() (err error) {
	defer func() {
		if r := recover(); r != nil {
			cliLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cliLogger.Info("starting AURA dashboard")

	// Load configuration from defaults, config file and environment
	cfg, err := auraapp.ConfigFromEnv()
	if err != nil {
		return exitError(ExitInvalidArgs, "aura: %v", err)
	}

	fyneApp := fyneapp.NewWithID("com.aura.dashboard")
	ui.LoadThemePreference(fyneApp)

	a, err := auraapp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(a.FyneApp(), a)
	mainWindow.Refresh(false)

	// Run the application (blocking)
	a.Run(mainWindow.Window())

	a.Logger().Info("application shutdown complete")
	return nil
}

package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/aura/internal/model"
)

// StatusBar displays the scoring API status with a shape-changing icon indicator.
// Each state uses a distinct icon shape for accessibility (not color-only):
//   - Idle: empty radio button (circle outline)
//   - Loading: view-refresh icon (circular arrows)
//   - Live: confirm icon (checkmark)
//   - Cached: history icon (clock)
//   - Unavailable: warning icon (triangle)
type StatusBar struct {
	widget.BaseWidget

	state       *model.APIUIState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a new status bar bound to the given API state.
func NewStatusBar(state *model.APIUIState) *StatusBar {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.RadioButtonIcon()),
	}
	s.ExtendBaseWidget(s)

	// Listen to state changes
	state.State.AddListener(binding.NewDataListener(s.updateStatus))
	state.Message.AddListener(binding.NewDataListener(s.updateStatus))

	// Set initial state
	s.updateStatus()

	return s
}

// Text returns the label currently shown.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// updateStatus refreshes the status bar based on current state.
func (s *StatusBar) updateStatus() {
	stateStr, _ := s.state.State.Get()
	message, _ := s.state.Message.Get()

	var (
		icon     fyne.Resource
		fallback string
	)
	switch stateStr {
	case model.APIIdle:
		icon, fallback = theme.RadioButtonIcon(), "Not loaded"
	case model.APILoading:
		icon, fallback = theme.ViewRefreshIcon(), "Loading..."
	case model.APILive:
		icon, fallback = theme.ConfirmIcon(), "Live"
	case model.APICached:
		icon, fallback = theme.HistoryIcon(), "Showing cached data"
	case model.APIUnavailable:
		icon, fallback = theme.WarningIcon(), "Scoring service unavailable"
	default:
		icon, fallback = theme.RadioButtonIcon(), "Unknown state"
		message = ""
	}

	s.indicator.SetResource(icon)
	if message == "" {
		message = fallback
	}
	s.statusLabel.SetText(message)
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.indicator, s.statusLabel))
}

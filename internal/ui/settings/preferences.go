package settings

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/aura/internal/app"
)

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange   func(mode string) // Called with "system", "dark", or "light"
	OnTooltipChange func()            // Called after tooltip preferences are saved
}

// Form holds the preference widgets so saving can be tested without a dialog.
type Form struct {
	HoverDelay    *widget.Entry
	ReducedMotion *widget.Check
	Touch         *widget.Check
	Theme         *widget.Select
}

// NewForm creates the preference widgets. Tooltip fields show the settings
// in effect in cfg, which already folds in the config file, environment and
// saved preferences; nil means defaults. The theme comes from prefs.
func NewForm(prefs fyne.Preferences, cfg *app.Config) *Form {
	if cfg == nil {
		cfg = app.DefaultConfig()
	}
	f := &Form{
		HoverDelay:    widget.NewEntry(),
		ReducedMotion: widget.NewCheck("Reduce motion", nil),
		Touch:         widget.NewCheck("Touch mode (tap to toggle, show close button)", nil),
		Theme:         widget.NewSelect([]string{"System Default", "Light", "Dark"}, nil),
	}

	f.HoverDelay.SetText(strconv.Itoa(int(cfg.HoverDelay.Milliseconds())))
	f.HoverDelay.Validator = func(s string) error {
		if v, err := strconv.Atoi(s); err != nil || v < 0 {
			return strconv.ErrSyntax
		}
		return nil
	}
	f.ReducedMotion.SetChecked(cfg.ReducedMotion)
	f.Touch.SetChecked(cfg.TouchMode)

	switch prefs.StringWithFallback(app.PrefTheme, "system") {
	case "dark":
		f.Theme.SetSelected("Dark")
	case "light":
		f.Theme.SetSelected("Light")
	default:
		f.Theme.SetSelected("System Default")
	}
	return f
}

// Save writes the form to prefs and returns the selected theme mode.
// An invalid hover delay keeps the previous value.
func (f *Form) Save(prefs fyne.Preferences) string {
	if val, err := strconv.Atoi(f.HoverDelay.Text); err == nil && val >= 0 {
		prefs.SetInt(app.PrefHoverDelay, val)
	}
	prefs.SetBool(app.PrefReducedMotion, f.ReducedMotion.Checked)
	prefs.SetBool(app.PrefTouchMode, f.Touch.Checked)

	var mode string
	switch f.Theme.Selected {
	case "Dark":
		mode = "dark"
	case "Light":
		mode = "light"
	default:
		mode = "system"
	}
	prefs.SetString(app.PrefTheme, mode)
	return mode
}

// ShowPreferencesDialog displays the unified preferences dialog with Tooltips and Appearance tabs.
// cfg is the configuration currently in effect.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, cfg *app.Config, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()
	form := NewForm(prefs, cfg)

	// --- Tooltips tab ---

	tooltipTab := container.NewTabItem("Tooltips", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Hover Delay (ms)", form.HoverDelay),
		),
		form.ReducedMotion,
		form.Touch,
		widget.NewLabel("Keyboard focus always opens tooltips immediately."),
	))

	// --- Appearance tab ---

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", form.Theme),
		),
	))

	// --- Build dialog ---

	tabs := container.NewAppTabs(tooltipTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(save bool) {
		if !save {
			return
		}

		mode := form.Save(prefs)
		if callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(mode)
		}
		if callbacks.OnTooltipChange != nil {
			callbacks.OnTooltipChange()
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}

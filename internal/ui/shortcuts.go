package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+R: Refresh dashboard
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: refresh dashboard")
		w.Refresh(true)
	})

	// Cmd+,: Preferences
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyComma,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: preferences")
		w.showPreferences()
	})

	// Escape with nothing focused: dismiss a hover tooltip. A focused info
	// button handles its own Escape.
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (close tooltip)")
			w.app.Tooltips().Close()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}

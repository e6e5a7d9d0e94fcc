package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/aura/internal/errors"
)

// ShowAPIError displays a scoring API error dialog with recovery suggestions
// and technical details. The onRetry function is called when the user clicks
// the Retry button (if present).
func ShowAPIError(err error, window fyne.Window, onRetry func()) {
	if err == nil {
		return
	}

	uiErr := apperrors.ClassifyHTTPError(err)
	if uiErr == nil {
		dialog.ShowError(err, window)
		return
	}

	// Word-wrapping labels keep the dialog from widening the window
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}
	content.Add(widget.NewLabel("Cached or sample figures are shown meanwhile."))

	if uiErr.Details != "" {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		))
	}

	hasRetry := false
	for _, action := range uiErr.Actions {
		if action.Label == "Retry" && onRetry != nil {
			hasRetry = true
			break
		}
	}

	var d dialog.Dialog
	if hasRetry {
		d = dialog.NewCustomConfirm(uiErr.Title, "Retry", "Close", content, func(retry bool) {
			if retry {
				onRetry()
			}
		}, window)
	} else {
		d = dialog.NewCustom(uiErr.Title, "Close", content, window)
	}
	d.Resize(fyne.NewSize(500, 400))
	d.Show()
}

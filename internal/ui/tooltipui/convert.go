package tooltipui

import (
	"fyne.io/fyne/v2"

	"github.com/shhac/aura/internal/tooltip/geometry"
)

func toPos(p geometry.Position) fyne.Position {
	return fyne.NewPos(p.X, p.Y)
}

func toSize(s geometry.Size) fyne.Size {
	return fyne.NewSize(s.Width, s.Height)
}

func fromSize(s fyne.Size) geometry.Size {
	return geometry.Size{Width: s.Width, Height: s.Height}
}

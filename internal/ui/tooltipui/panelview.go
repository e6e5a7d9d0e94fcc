package tooltipui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/aura/internal/tooltip/content"
	"github.com/shhac/aura/internal/tooltip/geometry"
	"github.com/shhac/aura/internal/tooltip/panel"
)

const arrowSize float32 = 8

// panelView draws a tooltip: title, wrapped body, an optional close
// button and a small arrow on the edge facing the trigger.
type panelView struct {
	widget.BaseWidget

	bg       *canvas.Rectangle
	arrow    *canvas.Rectangle
	title    *widget.Label
	body     *widget.Label
	closeBtn *widget.Button

	entry     content.Entry
	showClose bool
	arrowSide geometry.Side
	onClose   func()
}

func newPanelView() *panelView {
	p := &panelView{
		title: widget.NewLabel(""),
		body:  widget.NewLabel(""),
	}
	p.title.TextStyle = fyne.TextStyle{Bold: true}
	p.title.Wrapping = fyne.TextWrapWord
	p.body.Wrapping = fyne.TextWrapWord
	p.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if p.onClose != nil {
			p.onClose()
		}
	})
	p.closeBtn.Importance = widget.LowImportance
	p.closeBtn.Hide()

	bgColor := theme.Color(theme.ColorNameOverlayBackground)
	p.bg = canvas.NewRectangle(bgColor)
	p.bg.CornerRadius = theme.Padding()
	p.bg.StrokeColor = theme.Color(theme.ColorNameShadow)
	p.bg.StrokeWidth = 1
	p.arrow = canvas.NewRectangle(bgColor)
	p.arrow.Resize(fyne.NewSquareSize(arrowSize))

	p.ExtendBaseWidget(p)
	return p
}

// set fills the view for entry. It is safe to call before the view is
// on a canvas.
func (p *panelView) set(entry content.Entry, showClose bool) {
	p.entry = entry
	p.showClose = showClose
	p.title.SetText(entry.Title)
	p.body.SetText(entry.Content)
	if showClose {
		p.closeBtn.Show()
	} else {
		p.closeBtn.Hide()
	}
}

// naturalWidth is the unwrapped width of the widest line plus chrome.
func (p *panelView) naturalWidth() float32 {
	pad := theme.Padding()
	size := theme.TextSize()
	w := fyne.MeasureText(p.entry.Title, size, fyne.TextStyle{Bold: true}).Width
	if p.showClose {
		w += p.closeBtn.MinSize().Width
	}
	if bw := fyne.MeasureText(p.entry.Content, size, fyne.TextStyle{}).Width; bw > w {
		w = bw
	}
	// label inner padding plus the panel's own padding, on both sides
	return w + 4*pad
}

// measure lays the view out for entry and reports its size, wrapping text
// at panel.MaxWidth.
func (p *panelView) measure(entry content.Entry, showClose bool) geometry.Size {
	p.set(entry, showClose)
	w := fyne.Min(p.naturalWidth(), panel.MaxWidth)
	p.Resize(fyne.NewSize(w, p.MinSize().Height))
	return geometry.Size{Width: w, Height: p.MinSize().Height}
}

func (p *panelView) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, p.closeBtn, p.title)
	body := container.NewPadded(container.NewBorder(header, nil, nil, nil, p.body))
	return &panelRenderer{p: p, content: body}
}

type panelRenderer struct {
	p       *panelView
	content *fyne.Container
}

func (r *panelRenderer) Layout(size fyne.Size) {
	r.p.bg.Resize(size)
	r.content.Resize(size)

	half := arrowSize / 2
	switch r.p.arrowSide {
	case geometry.SideTop:
		r.p.arrow.Move(fyne.NewPos(size.Width/2-half, -half))
	case geometry.SideBottom:
		r.p.arrow.Move(fyne.NewPos(size.Width/2-half, size.Height-half))
	case geometry.SideLeft:
		r.p.arrow.Move(fyne.NewPos(-half, size.Height/2-half))
	case geometry.SideRight:
		r.p.arrow.Move(fyne.NewPos(size.Width-half, size.Height/2-half))
	}
}

func (r *panelRenderer) MinSize() fyne.Size {
	return r.content.MinSize()
}

func (r *panelRenderer) Refresh() {
	bgColor := theme.Color(theme.ColorNameOverlayBackground)
	r.p.bg.FillColor = bgColor
	r.p.arrow.FillColor = bgColor
	r.Layout(r.p.Size())
	r.p.bg.Refresh()
	r.p.arrow.Refresh()
	r.content.Refresh()
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.p.arrow, r.p.bg, r.content}
}

func (r *panelRenderer) Destroy() {}

// tapCatcher covers the overlay behind a touch panel so a tap anywhere
// else can dismiss it.
type tapCatcher struct {
	widget.BaseWidget
	onTap func(geometry.Point)
}

var _ fyne.Tappable = (*tapCatcher)(nil)

func newTapCatcher() *tapCatcher {
	c := &tapCatcher{}
	c.ExtendBaseWidget(c)
	return c
}

func (c *tapCatcher) Tapped(ev *fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap(geometry.Point{X: ev.Position.X, Y: ev.Position.Y})
	}
}

func (c *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// Package geometry holds the pure placement math for tooltip panels:
// anchoring a panel to its trigger and keeping it inside the viewport.
package geometry

import "fmt"

const (
	// DefaultOffset is the clearance between a trigger and its panel.
	DefaultOffset float32 = 8
	// DefaultMargin is the minimum distance between a panel and the viewport edge.
	DefaultMargin float32 = 8
)

// Side is the edge of the trigger a panel is placed against.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide converts a side name into a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "top":
		return SideTop, nil
	case "right":
		return SideRight, nil
	case "bottom":
		return SideBottom, nil
	case "left":
		return SideLeft, nil
	default:
		return SideTop, fmt.Errorf("unknown side %q", name)
	}
}

// Opposite returns the side facing s.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// vertical reports whether the panel sits above or below the trigger,
// which means it is centred on the horizontal axis.
func (s Side) vertical() bool {
	return s == SideTop || s == SideBottom
}

// Point is a screen coordinate in pixels.
type Point struct {
	X, Y float32
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect builds a Rect from an origin and a size.
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

func (r Rect) Left() float32    { return r.X }
func (r Rect) Top() float32     { return r.Y }
func (r Rect) Right() float32   { return r.X + r.Width }
func (r Rect) Bottom() float32  { return r.Y + r.Height }
func (r Rect) CenterX() float32 { return r.X + r.Width/2 }
func (r Rect) CenterY() float32 { return r.Y + r.Height/2 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Within reports whether r lies inside the viewport inset by margin.
func (r Rect) Within(viewport Size, margin float32) bool {
	return r.Left() >= margin && r.Top() >= margin &&
		r.Right() <= viewport.Width-margin && r.Bottom() <= viewport.Height-margin
}

// Position is a screen coordinate plus the side it was resolved for.
// Before clamping it is the anchor point; after clamping it is the
// panel's top-left corner.
type Position struct {
	X, Y float32
	Side Side
}

// Point drops the side.
func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// PanelRect returns the rectangle a panel of the given size occupies
// when placed at a clamped position.
func PanelRect(p Position, size Size) Rect {
	return NewRect(p.Point(), size)
}

// ArrowEdge returns the edge of the panel that carries the pointer arrow.
func ArrowEdge(side Side) Side {
	return side.Opposite()
}

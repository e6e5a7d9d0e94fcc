package geometry

// Anchor computes the reference point for a panel placed on the given side
// of the trigger. The side is returned unchanged; flipping happens in Clamp
// once the panel size is known.
func Anchor(trigger Rect, side Side, offset float32) Position {
	switch side {
	case SideBottom:
		return Position{X: trigger.CenterX(), Y: trigger.Bottom() + offset, Side: side}
	case SideLeft:
		return Position{X: trigger.Left() - offset, Y: trigger.CenterY(), Side: side}
	case SideRight:
		return Position{X: trigger.Right() + offset, Y: trigger.CenterY(), Side: side}
	default:
		return Position{X: trigger.CenterX(), Y: trigger.Top() - offset, Side: side}
	}
}

// AnchorFor is Anchor for triggers whose geometry may not be known yet.
// Without geometry it returns the degenerate {0, 0, side} anchor, which
// Clamp still pulls into the viewport.
func AnchorFor(trigger Rect, ok bool, side Side, offset float32) Position {
	if !ok {
		return Position{Side: side}
	}
	return Anchor(trigger, side, offset)
}

// Clamp turns an anchor into the top-left corner of a panel of the given
// size, flipping to the opposite side at most once when the preferred side
// would leave the viewport. The result always lies inside
// [margin, viewport-margin] when the panel fits; a panel larger than the
// usable area is pinned to the margin.
func Clamp(raw Position, panel Size, viewport Size, margin float32) Position {
	x, y, side := raw.X, raw.Y, raw.Side
	w, h := panel.Width, panel.Height

	// Cross axis: centre on the anchor.
	if side.vertical() {
		x = clampAxis(x-w/2, margin, viewport.Width-w-margin)
	} else {
		y = clampAxis(y-h/2, margin, viewport.Height-h-margin)
	}

	// Anchor axis, single flip.
	switch side {
	case SideTop:
		y = raw.Y - h
		if y < margin {
			y = raw.Y + margin
			side = SideBottom
		}
	case SideBottom:
		y = raw.Y
		if y+h > viewport.Height-margin {
			y = raw.Y - h - margin
			side = SideTop
		}
	case SideLeft:
		x = raw.X - w
		if x < margin {
			x = raw.X + margin
			side = SideRight
		}
	case SideRight:
		x = raw.X
		if x+w > viewport.Width-margin {
			x = raw.X - w - margin
			side = SideLeft
		}
	}

	// A flipped panel that still overflows keeps its new side but is
	// pushed back on screen.
	x = clampAxis(x, margin, viewport.Width-w-margin)
	y = clampAxis(y, margin, viewport.Height-h-margin)

	return Position{X: x, Y: y, Side: side}
}

// Layout runs the two-step placement: clamp against an estimated size,
// measure the real panel, clamp again with the measurement. measure may be
// nil, in which case the estimate is taken as final.
func Layout(raw Position, estimate Size, measure func() Size, viewport Size, margin float32) (trial, final Position, measured Size) {
	trial = Clamp(raw, estimate, viewport, margin)
	measured = estimate
	if measure != nil {
		measured = measure()
	}
	if measured == estimate {
		return trial, trial, measured
	}
	return trial, Clamp(raw, measured, viewport, margin), measured
}

func clampAxis(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package optionsbar

// LayoutMode is the layout strategy picked for one pass.
type LayoutMode int

const (
	// LayoutTabbar distributes items across the full available width.
	LayoutTabbar LayoutMode = iota
	// LayoutScrollbar keeps natural widths and scrolls the overflow.
	LayoutScrollbar
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutTabbar:
		return "tabbar"
	case LayoutScrollbar:
		return "scrollbar"
	default:
		return "unknown"
	}
}

// rectF is a box in fractional pixels, relative to the bar's origin unless
// stated otherwise.
type rectF struct {
	x, y, w, h float32
}

// totalRunWidth is the width the whole run wants: both edge paddings plus
// every item at natural width with spacing between neighbors. Zero for an
// empty run.
func totalRunWidth(sizes []sizeF, spacing, edgePadding float32) float32 {
	if len(sizes) == 0 {
		return 0
	}
	total := 2 * edgePadding
	for i, s := range sizes {
		if i > 0 {
			total += spacing
		}
		total += s.w
	}
	return total
}

// pickLayoutMode decides tabbar vs scrollbar for one pass. The comparison
// is inclusive: a run that exactly fills the available width is still a
// tabbar. Never cached, because availableWidth changes under the caller's
// feet on resize.
func pickLayoutMode(sizes []sizeF, spacing, edgePadding, availableWidth float32) LayoutMode {
	if totalRunWidth(sizes, spacing, edgePadding) <= availableWidth {
		return LayoutTabbar
	}
	return LayoutScrollbar
}

// slotRects lays items out in equal-width slots spanning the available
// width minus the edge paddings, each box centered in its slot at natural
// size. Coordinates are bar-local.
func slotRects(sizes []sizeF, availableWidth, edgePadding, barHeight float32) []rectF {
	n := len(sizes)
	if n == 0 {
		return nil
	}

	slotWidth := (availableWidth - 2*edgePadding) / float32(n)
	rects := make([]rectF, n)
	for i, s := range sizes {
		slotLeft := edgePadding + float32(i)*slotWidth
		rects[i] = rectF{
			x: slotLeft + (slotWidth-s.w)/2,
			y: (barHeight - s.h) / 2,
			w: s.w,
			h: s.h,
		}
	}
	return rects
}

// naturalRects lays items out left to right at natural width with spacing
// between neighbors, starting at x=0. The caller accounts for edge padding
// and scroll offset when mapping into the viewport.
func naturalRects(sizes []sizeF, spacing, barHeight float32) []rectF {
	rects := make([]rectF, len(sizes))
	x := float32(0)
	for i, s := range sizes {
		rects[i] = rectF{
			x: x,
			y: (barHeight - s.h) / 2,
			w: s.w,
			h: s.h,
		}
		x += s.w + spacing
	}
	return rects
}

// centeredRects refines naturalRects for a run that fits: the whole group
// shifts right by a uniform offset so it sits centered in the available
// width. Inter-item gaps are unchanged. The content width used for
// centering excludes the edge paddings.
func centeredRects(sizes []sizeF, spacing, availableWidth, barHeight float32) []rectF {
	rects := naturalRects(sizes, spacing, barHeight)
	if len(rects) == 0 {
		return rects
	}

	last := rects[len(rects)-1]
	contentWidth := last.x + last.w
	centerOffset := (availableWidth - contentWidth) / 2
	for i := range rects {
		rects[i].x += centerOffset
	}
	return rects
}

// layoutRects dispatches to the geometry regime for the given mode and
// centering flag.
func layoutRects(mode LayoutMode, centerItems bool, sizes []sizeF, availableWidth, spacing, edgePadding, barHeight float32) []rectF {
	switch {
	case mode == LayoutScrollbar:
		return naturalRects(sizes, spacing, barHeight)
	case centerItems:
		return centeredRects(sizes, spacing, availableWidth, barHeight)
	default:
		return slotRects(sizes, availableWidth, edgePadding, barHeight)
	}
}

// indicatorRects reports where the indicator animates from and to. When
// previousIndex does not resolve (first render, or the previous id left
// the list), the previous rect equals the current one and no motion plays.
// An unresolved selectedIndex is the caller's error state; geometry is
// never guessed here.
func indicatorRects(rects []rectF, selectedIndex, previousIndex int) (current, previous rectF) {
	current = rects[selectedIndex]
	if previousIndex < 0 || previousIndex >= len(rects) {
		return current, current
	}
	return current, rects[previousIndex]
}

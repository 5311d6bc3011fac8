package optionsbar

import "time"

// frameState is the geometry snapshot one pass draws from. Coordinates are
// bar-local in tabbar mode and content-local (origin at the start of the
// scrollable run) in scrollbar mode; the renderer applies the bounds
// offset, the edge padding, and the scroll offset when mapping to the
// screen.
type frameState struct {
	mode  LayoutMode
	rects []rectF // item boxes at natural size
	hits  []rectF // tap targets: full bar height, slot-wide in stretched tabbar

	indicator   rectF // interpolated indicator box
	activeIndex int   // item drawn in the active text color this frame

	offset    float32 // scroll offset (scrollbar mode)
	maxExtent float32
	canLeft   bool
	canRight  bool

	empty bool // nothing to draw: no items, or the selected id is unresolved
}

// frame computes the snapshot for one pass. It is the per-frame hot path:
// O(item count) arithmetic over the cached measurements, no text shaping
// and no SDL calls, so it is cheap enough to run at 60fps and testable
// without a window.
//
// Measurement happens here lazily when the size cache was invalidated.
// Scroll state is settled and, when a selection change is pending, the
// ensure-visible transition starts here, because this is the first point
// where the item geometry for the new selection exists.
func (b *Bar[T]) frame(now time.Time, availableWidth, barHeight float32) frameState {
	fs := frameState{empty: true, activeIndex: -1}
	if len(b.resolved) == 0 {
		return fs
	}
	b.ensureMeasured()

	sel, ok := b.idIndex[b.committedID]
	if !ok {
		// Error-recovery state: render nothing rather than guess a
		// rectangle. The correction was armed when the id was committed.
		return fs
	}

	style := &b.cfg.Style
	spacing := float32(style.ItemSpacing)
	edge := float32(style.EdgePadding)

	fs.mode = pickLayoutMode(b.sizes, spacing, edge, availableWidth)
	fs.rects = layoutRects(fs.mode, style.CenterItems, b.sizes, availableWidth, spacing, edge, barHeight)
	fs.hits = hitTargets(fs.mode, style.CenterItems, fs.rects, availableWidth, edge, barHeight)

	prev := -1
	if idx, ok := b.idIndex[b.previousID]; ok {
		prev = idx
	}
	current, from := indicatorRects(fs.rects, sel, prev)

	// A settled frame draws the target box exactly; float error from the
	// interpolation must not survive past the animation.
	eased := b.slide.progress(now)
	fs.indicator = current
	if eased < 1 {
		fs.indicator = lerpRect(from, current, eased)
	}
	fs.activeIndex = sel
	if prev >= 0 && eased < colorSwitchThreshold {
		fs.activeIndex = prev
	}
	fs.empty = false

	if fs.mode != LayoutScrollbar {
		// Everything is visible; drop any leftover scroll state so a
		// later overflow starts at the natural beginning of the run.
		b.pendingScroll = false
		b.scroll.jumpTo(0)
		return fs
	}

	viewport := innerViewportWidth(availableWidth, edge)
	last := fs.rects[len(fs.rects)-1]
	fs.maxExtent = last.x + last.w - viewport
	if fs.maxExtent < 0 {
		fs.maxExtent = 0
	}
	b.scroll.clamp(fs.maxExtent)

	if b.pendingScroll {
		b.pendingScroll = false
		offset := b.scroll.current(now)
		target := clampOffset(ensureVisibleOffset(offset, current.x, current.w, viewport), fs.maxExtent)
		if target != offset {
			b.scroll.animateTo(now, target, style.SlideDuration)
		}
	}

	fs.offset = b.scroll.current(now)
	fs.canLeft = canScrollLeft(fs.offset)
	fs.canRight = canScrollRight(fs.offset, fs.maxExtent)
	return fs
}

// hitTargets derives the tap target per item. In the stretched tabbar the
// whole slot accepts the tap; in the natural-width regimes the target is
// the item's own width. Targets always span the full bar height.
func hitTargets(mode LayoutMode, centerItems bool, rects []rectF, availableWidth, edge, barHeight float32) []rectF {
	hits := make([]rectF, len(rects))
	if mode == LayoutTabbar && !centerItems {
		n := float32(len(rects))
		slotWidth := (availableWidth - 2*edge) / n
		for i := range hits {
			hits[i] = rectF{x: edge + float32(i)*slotWidth, y: 0, w: slotWidth, h: barHeight}
		}
		return hits
	}
	for i, r := range rects {
		hits[i] = rectF{x: r.x, y: 0, w: r.w, h: barHeight}
	}
	return hits
}

// innerViewportWidth is the width scrollable content moves through: the
// bar minus its two edge paddings.
func innerViewportWidth(availableWidth, edge float32) float32 {
	w := availableWidth - 2*edge
	if w < 0 {
		return 0
	}
	return w
}

package optionsbar

import "time"

// scrollEpsilon absorbs sub-pixel float error when deriving the arrow
// flags, so they don't flicker at the extremes.
const scrollEpsilon = 1.0

// scrollState owns the horizontal offset of the scrollbar layout. The
// offset moves three ways: animated transitions from selection changes and
// arrow taps, immediate jumps from wheel or drag input, and clamping after
// a resize. Nothing outside the bar mutates it.
type scrollState struct {
	offset float32 // settled offset

	from   float32 // animation start offset
	target float32 // animation end offset
	tween  slideTween
}

// current returns the offset at the given time, settling the state once an
// in-flight transition completes.
func (s *scrollState) current(now time.Time) float32 {
	if !s.tween.active {
		return s.offset
	}
	eased := s.tween.progress(now)
	if !s.tween.active {
		s.offset = s.target
		return s.offset
	}
	return lerp(s.from, s.target, eased)
}

// animateTo eases toward target using the shared slide duration. A zero
// duration jumps.
func (s *scrollState) animateTo(now time.Time, target float32, duration time.Duration) {
	s.from = s.current(now)
	s.target = target
	if duration <= 0 {
		s.jumpTo(target)
		return
	}
	s.tween.begin(now, duration)
}

// jumpTo sets the offset immediately, cancelling any in-flight transition.
// This is the path user input takes.
func (s *scrollState) jumpTo(target float32) {
	s.offset = target
	s.target = target
	s.tween.cancel()
}

// clamp pulls the settled state back inside [0, maxExtent] after the
// extent shrinks, e.g. on resize.
func (s *scrollState) clamp(maxExtent float32) {
	s.offset = clampOffset(s.offset, maxExtent)
	s.target = clampOffset(s.target, maxExtent)
	s.from = clampOffset(s.from, maxExtent)
}

// ensureVisibleOffset returns the offset that brings an item fully into
// view: items cut off on the left get flush-aligned with the viewport's
// left edge, items cut off on the right with its right edge. Items already
// fully visible leave the offset untouched. itemLeft is in content
// coordinates, measured from the start of the scrollable run.
func ensureVisibleOffset(offset, itemLeft, itemWidth, viewportWidth float32) float32 {
	if itemLeft < offset {
		return itemLeft
	}
	if itemLeft+itemWidth > offset+viewportWidth {
		return itemLeft + itemWidth - viewportWidth
	}
	return offset
}

func clampOffset(offset, maxExtent float32) float32 {
	if maxExtent < 0 {
		maxExtent = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxExtent {
		return maxExtent
	}
	return offset
}

// canScrollLeft and canScrollRight drive arrow visibility and enablement.
func canScrollLeft(offset float32) bool {
	return offset > scrollEpsilon
}

func canScrollRight(offset, maxExtent float32) bool {
	return offset < maxExtent-scrollEpsilon
}

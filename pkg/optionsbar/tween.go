package optionsbar

import "time"

// colorSwitchThreshold is the eased progress at which label colors flip
// from the outgoing selection to the incoming one. Measured on the curve's
// output, not wall-clock time, so the color change lags the indicator's
// arrival.
const colorSwitchThreshold = 0.85

// easeInOutCubic maps linear progress to a symmetric cubic curve.
func easeInOutCubic(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// slideTween is a restartable 0→1 progression over a fixed duration. An
// inactive tween reports progress 1 (settled).
type slideTween struct {
	active   bool
	start    time.Time
	duration time.Duration
}

// begin restarts the tween from zero at the given time. A non-positive
// duration settles it immediately.
func (tw *slideTween) begin(now time.Time, duration time.Duration) {
	if duration <= 0 {
		tw.active = false
		return
	}
	tw.active = true
	tw.start = now
	tw.duration = duration
}

func (tw *slideTween) cancel() {
	tw.active = false
}

// progress returns the eased progress at the given time and retires the
// tween once it completes.
func (tw *slideTween) progress(now time.Time) float32 {
	if !tw.active {
		return 1
	}
	elapsed := now.Sub(tw.start)
	if elapsed >= tw.duration {
		tw.active = false
		return 1
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return easeInOutCubic(float32(elapsed) / float32(tw.duration))
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// lerpRect interpolates position and size component-wise.
func lerpRect(from, to rectF, t float32) rectF {
	return rectF{
		x: lerp(from.x, to.x, t),
		y: lerp(from.y, to.y, t),
		w: lerp(from.w, to.w, t),
		h: lerp(from.h, to.h, t),
	}
}

package internal

import (
	"time"
)

// Direction represents a horizontal navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// DirectionalInput tracks held left/right input and handles repeat timing.
// Embed this in a controller to get hold-to-repeat navigation. Timing is
// driven by the clock passed to Update, so controllers feed it the same
// per-frame time they animate with.
type DirectionalInput struct {
	held struct {
		left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before the first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state for a direction at the given time.
func (d *DirectionalInput) SetHeld(direction Direction, held bool, now time.Time) {
	switch direction {
	case DirectionLeft:
		d.held.left = held
	case DirectionRight:
		d.held.right = held
	default:
		return
	}

	if held {
		d.lastRepeatTime = now
	} else if !d.held.left && !d.held.right {
		d.hasRepeated = false
	}
}

// IsHeld returns true if either direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.left || d.held.right
}

// HeldDirection returns the currently held direction. If both are held,
// left wins.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.left {
		return DirectionLeft
	}
	if d.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat event should fire at the given time.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after
// repeatInterval.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
}

package optionsbar

import (
	"time"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/constants"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Config describes one bar: its items, the current selection, and how the
// bar resolves, filters, and styles them. Selection is owned by the caller:
// the bar reports accepted user actions through OnSelect and only moves the
// indicator once the caller commits the new id via SetConfig.
type Config[T comparable] struct {
	// Items is the ordered list the bar displays. Element order is display
	// order. An empty list renders nothing.
	Items []T

	// SelectedID names the selected item by its resolved id.
	SelectedID string

	// OnSelect is called exactly once per accepted user action on an
	// enabled, unselected item. Tapping the current selection or a
	// disabled item never fires it.
	OnSelect func(id string)

	// ResolveID and ResolveLabel map an item to its id and display label.
	// When T is string both default to the identity function; for any
	// other type they are required.
	ResolveID    func(T) string
	ResolveLabel func(T) string

	// IsEnabled reports whether the item with the given id accepts
	// selection. Nil means every item is enabled.
	IsEnabled func(id string) bool

	Style Style
}

// Bar is a selectable options bar with an animated selection indicator. It
// lays items out in one of two modes: when the run fits the available width
// the items are distributed across it (tabbar), otherwise they keep their
// natural width and the overflow scrolls horizontally behind paging arrows
// (scrollbar). The mode is re-decided on every pass, so resizes take effect
// immediately.
//
// A Bar is not safe for concurrent use; drive it from the rendering thread
// like every other SDL object.
type Bar[T comparable] struct {
	cfg Config[T]

	// resolved and idIndex are the accessor memo for one configuration
	// epoch: rebuilt only when the item list or the accessors change.
	// Duplicate ids keep the first index.
	resolved []resolvedItem
	idIndex  map[string]int

	// sizes is the measured box per item. Nil means stale; measurement
	// runs on the next layout pass and then stays fixed until items,
	// font, padding, or accessors change, so animation frames never
	// re-measure.
	sizes    []sizeF
	measurer TextMeasurer // nil = measure with the style's font

	// committedID is the selection in effect; previousID is the one it
	// replaced and is where the indicator animates from. previousID is
	// empty on the first render, so no animation plays.
	committedID string
	previousID  string
	slide       slideTween

	scroll        scrollState
	pendingScroll bool // ensure-visible runs on the next scrollbar pass

	// Drag tracking for touch and mouse. A press starts tracking; once the
	// pointer travels past the tap slop the gesture is a drag and the
	// release no longer counts as a tap.
	dragTracking bool
	dragActive   bool
	pressX       int32
	dragLastX    int32

	directional   internal.DirectionalInput
	lastInputTime time.Time

	// missingID is the unresolvable selected id most recently reported;
	// correctionArmed schedules the one-shot OnSelect(first) for it.
	missingID       string
	correctionArmed bool

	textures  *internal.TextureCache
	lastFrame *frameState
	lastRect  sdl.Rect
	destroyed bool
}

// New validates the configuration and builds a bar. The first render draws
// the indicator in place; no animation plays until the selection changes.
// Returns a *ConfigurationError when T is not string and a resolver is
// missing.
func New[T comparable](cfg Config[T]) (*Bar[T], error) {
	if err := validateAccessors(cfg.ResolveID, cfg.ResolveLabel); err != nil {
		return nil, err
	}

	bar := &Bar[T]{
		cfg:         cfg,
		committedID: cfg.SelectedID,
		directional: internal.NewDirectionalInput(),
		textures:    internal.NewTextureCache(),
	}
	bar.resolveItems()
	bar.checkSelection()

	return bar, nil
}

// SetConfig replaces the whole configuration, the way a host component
// passes fresh props on every build. The bar diffs the old and new values
// and invalidates exactly what changed: replaced items or accessors rebuild
// the id/label memo, measurement-affecting style changes drop the size
// cache, and a changed SelectedID commits the previous selection and
// restarts the indicator animation from it.
func (b *Bar[T]) SetConfig(cfg Config[T]) error {
	if b.destroyed {
		return nil
	}
	if err := validateAccessors(cfg.ResolveID, cfg.ResolveLabel); err != nil {
		return err
	}
	b.applyConfig(cfg, time.Now())
	return nil
}

func (b *Bar[T]) applyConfig(cfg Config[T], now time.Time) {
	old := b.cfg
	b.cfg = cfg

	accessorsChanged := funcPointer(old.ResolveID) != funcPointer(cfg.ResolveID) ||
		funcPointer(old.ResolveLabel) != funcPointer(cfg.ResolveLabel)
	itemsChanged := !itemsEqual(old.Items, cfg.Items)

	if accessorsChanged || itemsChanged {
		b.resolveItems()
	}
	if accessorsChanged || itemsChanged ||
		old.Style.Font != cfg.Style.Font || old.Style.TextPadding != cfg.Style.TextPadding {
		b.sizes = nil
	}

	if cfg.SelectedID != b.committedID {
		b.commitSelection(cfg.SelectedID, now)
	} else {
		b.checkSelection()
	}
}

// commitSelection makes id the settled selection and starts the indicator
// tween from the one it replaced. A selection change arriving mid-animation
// restarts the tween from the last committed selection rather than blending
// from the in-flight position, so rapid changes each play a full sweep.
func (b *Bar[T]) commitSelection(id string, now time.Time) {
	b.previousID = b.committedID
	b.committedID = id
	b.slide.begin(now, b.cfg.Style.SlideDuration)
	b.pendingScroll = true
	b.checkSelection()
}

// resolveItems rebuilds the per-item (id, label) memo and the id lookup for
// the new configuration epoch. Cached label textures keep working because
// they are keyed by label text, not index.
func (b *Bar[T]) resolveItems() {
	b.resolved = make([]resolvedItem, len(b.cfg.Items))
	b.idIndex = make(map[string]int, len(b.cfg.Items))
	for i, item := range b.cfg.Items {
		ri := resolveItem(item, b.cfg.ResolveID, b.cfg.ResolveLabel)
		b.resolved[i] = ri
		if _, dup := b.idIndex[ri.id]; !dup {
			b.idIndex[ri.id] = i
		}
	}
	b.sizes = nil
}

// checkSelection arms the one-shot correction when the committed id does
// not resolve. The bar renders empty while in this state; Update asks the
// caller to fix its selection by firing OnSelect with the first item's id,
// once per occurrence.
func (b *Bar[T]) checkSelection() {
	if _, ok := b.idIndex[b.committedID]; ok || len(b.resolved) == 0 {
		b.missingID = ""
		b.correctionArmed = false
		return
	}
	if b.committedID == b.missingID {
		return // already reported, don't loop
	}
	b.missingID = b.committedID
	b.correctionArmed = true
	err := &SelectionNotFoundError{Selected: b.committedID, Known: b.knownIDs()}
	internal.GetInternalLogger().Debug("Rendering empty until the caller corrects its selection", "error", err)
}

func (b *Bar[T]) knownIDs() []string {
	ids := make([]string, len(b.resolved))
	for i, ri := range b.resolved {
		ids[i] = ri.id
	}
	return ids
}

// Update advances per-frame bookkeeping: held-direction repeats and the
// deferred selection correction. Call once per frame before Render.
func (b *Bar[T]) Update(now time.Time) {
	if b.destroyed {
		return
	}

	if dir := b.directional.Update(now); dir != internal.DirectionNone {
		b.moveSelection(dir)
	}

	if b.correctionArmed {
		b.correctionArmed = false
		if _, ok := b.idIndex[b.committedID]; !ok && len(b.resolved) > 0 && b.cfg.OnSelect != nil {
			b.cfg.OnSelect(b.resolved[0].id)
		}
	}
}

// Destroy abandons any in-flight animation and releases the cached
// textures. The bar must not be used afterwards; a torn-down bar never
// fires OnSelect.
func (b *Bar[T]) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.correctionArmed = false
	b.dragTracking = false
	b.dragActive = false
	b.slide.cancel()
	b.scroll.tween.cancel()
	b.directional.Reset()
	b.textures.Destroy()
}

// SelectedID returns the committed selection.
func (b *Bar[T]) SelectedID() string {
	return b.committedID
}

// PreferredHeight reports the tallest measured item box, which is the
// natural bar height for the current items and style.
func (b *Bar[T]) PreferredHeight() int32 {
	b.ensureMeasured()
	var max float32
	for _, s := range b.sizes {
		if s.h > max {
			max = s.h
		}
	}
	return int32(max)
}

func (b *Bar[T]) ensureMeasured() {
	if b.sizes != nil {
		return
	}
	b.sizes = measureItems(b.resolved, b.textMeasurer(), b.cfg.Style.TextPadding)
}

func (b *Bar[T]) textMeasurer() TextMeasurer {
	if b.measurer != nil {
		return b.measurer
	}
	font := b.cfg.Style.Font
	if font == nil {
		font = internal.Fonts.SmallFont
	}
	return fontMeasurer{font: font}
}

func (b *Bar[T]) enabled(id string) bool {
	return b.cfg.IsEnabled == nil || b.cfg.IsEnabled(id)
}

// fireSelect reports an accepted action to the caller. Re-selecting the
// committed id is a no-op, which is what makes taps idempotent.
func (b *Bar[T]) fireSelect(id string) {
	if id == b.committedID || b.cfg.OnSelect == nil {
		return
	}
	b.cfg.OnSelect(id)
}

// moveSelection fires OnSelect for the nearest enabled item in the given
// direction, wrapping around the ends. Disabled items are skipped; when no
// other enabled item exists nothing fires.
func (b *Bar[T]) moveSelection(dir internal.Direction) bool {
	n := len(b.resolved)
	if n == 0 {
		return false
	}
	start, ok := b.idIndex[b.committedID]
	if !ok {
		return false
	}

	step := 1
	if dir == internal.DirectionLeft {
		step = -1
	}
	for i := 1; i < n; i++ {
		idx := ((start+step*i)%n + n) % n
		id := b.resolved[idx].id
		if id != b.committedID && b.enabled(id) {
			b.fireSelect(id)
			return true
		}
	}
	return false
}

// HandleEvent feeds one SDL event to the bar and reports whether it was
// consumed. Left taps select items and page via the arrows, a horizontal
// drag or the wheel scrolls in scrollbar mode, and keyboard or D-pad
// left/right move the selection with hold-to-repeat. Events the bar does
// not understand are left for the caller.
func (b *Bar[T]) HandleEvent(event sdl.Event) bool {
	if b.destroyed {
		return false
	}
	now := time.Now()

	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return false
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			return b.pressAt(e.X, e.Y)
		case sdl.MOUSEBUTTONUP:
			return b.releaseAt(e.X, e.Y, now)
		}
		return false

	case *sdl.MouseMotionEvent:
		return b.dragTo(e.X, e.State, now)

	case *sdl.ControllerDeviceEvent:
		internal.HandleControllerDeviceEvent(e)
		return false // informational, leave it for the caller too

	case *sdl.MouseWheelEvent:
		delta := e.X
		if delta == 0 {
			delta = -e.Y
		}
		if delta == 0 {
			return false
		}
		return b.wheelScroll(float32(delta)*wheelScrollStep, now)

	case *sdl.KeyboardEvent:
		var dir internal.Direction
		switch e.Keysym.Sym {
		case sdl.K_LEFT:
			dir = internal.DirectionLeft
		case sdl.K_RIGHT:
			dir = internal.DirectionRight
		default:
			return false
		}
		if e.Repeat > 0 {
			return true // held repeats come from DirectionalInput
		}
		return b.handleDirection(dir, e.Type == sdl.KEYDOWN, now)

	case *sdl.ControllerButtonEvent:
		var dir internal.Direction
		switch sdl.GameControllerButton(e.Button) {
		case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
			dir = internal.DirectionLeft
		case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
			dir = internal.DirectionRight
		default:
			return false
		}
		return b.handleDirection(dir, e.Type == sdl.CONTROLLERBUTTONDOWN, now)
	}

	return false
}

// HandleButton is the entry point for hosts that run their own input
// mapping instead of feeding raw SDL events. Only the horizontal
// directions mean anything to a bar.
func (b *Bar[T]) HandleButton(button constants.VirtualButton, pressed bool) bool {
	if b.destroyed {
		return false
	}
	switch button {
	case constants.VirtualButtonLeft:
		return b.handleDirection(internal.DirectionLeft, pressed, time.Now())
	case constants.VirtualButtonRight:
		return b.handleDirection(internal.DirectionRight, pressed, time.Now())
	}
	return false
}

func (b *Bar[T]) handleDirection(dir internal.Direction, pressed bool, now time.Time) bool {
	b.directional.SetHeld(dir, pressed, now)
	if !pressed {
		return true
	}
	if !b.debounce(now) {
		return true
	}
	b.moveSelection(dir)
	return true
}

// debounce drops presses that arrive faster than a human produces them,
// which smooths out controllers that double-report transitions. Releases
// are never debounced.
func (b *Bar[T]) debounce(now time.Time) bool {
	if now.Sub(b.lastInputTime) < constants.DefaultInputDelay {
		return false
	}
	b.lastInputTime = now
	return true
}

// pressAt starts tracking a potential tap or drag. Nothing is selected yet;
// the gesture resolves on release.
func (b *Bar[T]) pressAt(x, y int32) bool {
	if b.lastFrame == nil || !pointInRect(x, y, b.lastRect) {
		return false
	}
	b.dragTracking = true
	b.dragActive = false
	b.pressX = x
	b.dragLastX = x
	return true
}

// dragTo feeds pointer motion into an in-progress gesture. Once the pointer
// leaves the tap slop the gesture is a drag: in scrollbar mode the content
// follows the pointer with immediate clamped jumps, and in tabbar mode the
// drag merely cancels the tap.
func (b *Bar[T]) dragTo(x int32, buttonState uint32, now time.Time) bool {
	if !b.dragTracking {
		return false
	}
	if buttonState&sdl.ButtonLMask() == 0 {
		// Release happened outside the window; abandon the gesture.
		b.dragTracking = false
		b.dragActive = false
		return false
	}

	if !b.dragActive {
		slop := x - b.pressX
		if slop < 0 {
			slop = -slop
		}
		if slop <= tapSlop {
			b.dragLastX = x
			return true
		}
		b.dragActive = true
	}

	if fs := b.lastFrame; fs != nil && fs.mode == LayoutScrollbar {
		dx := float32(x - b.dragLastX)
		b.scroll.jumpTo(clampOffset(b.scroll.current(now)-dx, fs.maxExtent))
	}
	b.dragLastX = x
	return true
}

// releaseAt ends the gesture. A press that never became a drag is a tap.
func (b *Bar[T]) releaseAt(x, y int32, now time.Time) bool {
	if !b.dragTracking {
		return false
	}
	wasDrag := b.dragActive
	b.dragTracking = false
	b.dragActive = false
	if wasDrag {
		return true
	}
	return b.tapAt(x, y, now)
}

// tapAt resolves a screen-space tap against the most recent layout. Arrows
// win over the items underneath them.
func (b *Bar[T]) tapAt(x, y int32, now time.Time) bool {
	fs := b.lastFrame
	if fs == nil || fs.empty {
		return false
	}
	if !pointInRect(x, y, b.lastRect) {
		return false
	}
	if !b.debounce(now) {
		return true
	}

	if fs.mode == LayoutScrollbar {
		left, right := arrowRects(b.lastRect, &b.cfg.Style)
		if fs.canLeft && pointInRect(x, y, left) {
			b.pageScroll(-1, now)
			return true
		}
		if fs.canRight && pointInRect(x, y, right) {
			b.pageScroll(1, now)
			return true
		}
	}

	idx := b.hitIndex(fs, x, y)
	if idx < 0 {
		return true // tap landed on the bar, just not on an item
	}
	id := b.resolved[idx].id
	if !b.enabled(id) {
		return true
	}
	b.fireSelect(id)
	return true
}

// hitIndex maps a screen point back into the layout's coordinate space and
// scans the hit targets. In scrollbar mode taps only resolve inside the
// clipped viewport; items hidden under the edge padding are not tappable.
func (b *Bar[T]) hitIndex(fs *frameState, x, y int32) int {
	fx := float32(x - b.lastRect.X)
	fy := float32(y - b.lastRect.Y)
	if fs.mode == LayoutScrollbar {
		edge := float32(b.cfg.Style.EdgePadding)
		if fx < edge || fx >= float32(b.lastRect.W)-edge {
			return -1
		}
		fx += fs.offset - edge
	}
	for i, h := range fs.hits {
		if fx >= h.x && fx < h.x+h.w && fy >= h.y && fy < h.y+h.h {
			return i
		}
	}
	return -1
}

// pageScroll moves the viewport by exactly one viewport width, clamped,
// with the same easing as the indicator. dir is -1 for left, +1 for right.
func (b *Bar[T]) pageScroll(dir float32, now time.Time) {
	fs := b.lastFrame
	if fs == nil || fs.mode != LayoutScrollbar {
		return
	}
	viewport := innerViewportWidth(float32(b.lastRect.W), float32(b.cfg.Style.EdgePadding))
	target := clampOffset(b.scroll.current(now)+dir*viewport, fs.maxExtent)
	b.scroll.animateTo(now, target, b.cfg.Style.SlideDuration)
}

// wheelScroll is the immediate path for user scroll input: no animation,
// just a clamped jump. It also cancels any in-flight scroll transition.
func (b *Bar[T]) wheelScroll(delta float32, now time.Time) bool {
	fs := b.lastFrame
	if fs == nil || fs.mode != LayoutScrollbar {
		return false
	}
	b.scroll.jumpTo(clampOffset(b.scroll.current(now)+delta, fs.maxExtent))
	return true
}

// wheelScrollStep is the horizontal distance one wheel notch scrolls.
// tapSlop is how far a press may wander and still count as a tap.
const (
	wheelScrollStep = 60
	tapSlop         = 10
)

func pointInRect(x, y int32, r sdl.Rect) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

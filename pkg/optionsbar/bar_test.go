package optionsbar

import (
	"testing"
	"time"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/constants"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// charMeasurer stands in for SDL_ttf: every rune is charWidth wide. calls
// counts shaper invocations so tests can check the measurement cache.
type charMeasurer struct {
	charWidth int
	height    int
	calls     int
}

func (m *charMeasurer) SizeUTF8(text string) (int, int, error) {
	m.calls++
	return m.charWidth * len([]rune(text)), m.height, nil
}

// testStyle gives every single-letter item a 30x28 box: 10px glyph plus
// 10px horizontal and 4px vertical padding per side.
func testStyle() Style {
	return Style{
		TextPadding:   internal.Padding{Top: 4, Right: 10, Bottom: 4, Left: 10},
		EdgePadding:   20,
		ItemSpacing:   12,
		SlideDuration: 200 * time.Millisecond,
		ArrowInset:    10,
		ArrowDiameter: 36,
	}
}

func newStringBar(t *testing.T, cfg Config[string]) (*Bar[string], *charMeasurer) {
	t.Helper()
	bar, err := New(cfg)
	require.NoError(t, err)
	m := &charMeasurer{charWidth: 10, height: 20}
	bar.measurer = m
	return bar, m
}

// showFrame primes the hit-testing state the way Render does.
func showFrame(bar *Bar[string], now time.Time, w, h int32) frameState {
	fs := bar.frame(now, float32(w), float32(h))
	bar.lastFrame = &fs
	bar.lastRect = sdl.Rect{X: 0, Y: 0, W: w, H: h}
	return fs
}

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNew_StringItemsNeedNoResolvers(t *testing.T) {
	bar, err := New(Config[string]{Items: []string{"a", "b"}, SelectedID: "b"})
	require.NoError(t, err)

	assert.Equal(t, "b", bar.SelectedID())
	assert.Equal(t, []resolvedItem{{id: "a", label: "a"}, {id: "b", label: "b"}}, bar.resolved)
}

func TestNew_RequiresResolversForStructItems(t *testing.T) {
	type tab struct{ id, label string }

	_, err := New(Config[tab]{Items: []tab{{id: "a"}}})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	_, err = New(Config[tab]{
		Items:     []tab{{id: "a"}},
		ResolveID: func(v tab) string { return v.id },
	})
	require.Error(t, err, "the label resolver is required too")

	bar, err := New(Config[tab]{
		Items:        []tab{{id: "a", label: "Alpha"}},
		SelectedID:   "a",
		ResolveID:    func(v tab) string { return v.id },
		ResolveLabel: func(v tab) string { return v.label },
	})
	require.NoError(t, err)
	assert.Equal(t, []resolvedItem{{id: "a", label: "Alpha"}}, bar.resolved)
}

func TestFrame_TabbarSlots(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	fs := bar.frame(testTime(), 600, 40)

	require.False(t, fs.empty)
	assert.Equal(t, LayoutTabbar, fs.mode)
	assert.Equal(t, 0, fs.activeIndex)

	// Slots are (600-40)/3 wide; each 30px box is centered in its slot and
	// the indicator hugs the selected box, not the slot.
	slot := float32(600-40) / 3
	assert.InDelta(t, 20+(slot-30)/2, fs.indicator.x, 1e-3)
	assert.InDelta(t, 30, fs.indicator.w, 1e-3)
	assert.InDelta(t, 6, fs.indicator.y, 1e-3)
	assert.InDelta(t, 28, fs.indicator.h, 1e-3)

	// Taps accept the whole slot.
	assert.InDelta(t, 20, fs.hits[0].x, 1e-3)
	assert.InDelta(t, slot, fs.hits[0].w, 1e-3)
	assert.InDelta(t, 40, fs.hits[0].h, 1e-3)
}

func TestFrame_CenteredRun(t *testing.T) {
	style := testStyle()
	style.CenterItems = true
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "B",
		Style:      style,
	})

	fs := bar.frame(testTime(), 600, 40)

	require.Equal(t, LayoutTabbar, fs.mode)

	// Content is 3*30 + 2*12 = 114, so the run starts at (600-114)/2.
	assert.InDelta(t, 243, fs.rects[0].x, 1e-3)
	assert.InDelta(t, 285, fs.rects[1].x, 1e-3)
	assert.InDelta(t, 30, fs.indicator.w, 1e-3)
	assert.Equal(t, fs.rects[1], fs.indicator)

	// Centered items keep natural-width tap targets.
	assert.InDelta(t, 30, fs.hits[1].w, 1e-3)
}

func TestFrame_ScrollbarWhenOverflowing(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	fs := bar.frame(testTime(), 50, 40)

	require.False(t, fs.empty)
	assert.Equal(t, LayoutScrollbar, fs.mode)

	// Natural widths from content origin, untouched by the viewport.
	assert.InDelta(t, 0, fs.rects[0].x, 1e-3)
	assert.InDelta(t, 42, fs.rects[1].x, 1e-3)
	assert.InDelta(t, 84, fs.rects[2].x, 1e-3)

	// Content is 114 wide against a 10px inner viewport.
	assert.InDelta(t, 104, fs.maxExtent, 1e-3)
	assert.Zero(t, fs.offset)
	assert.False(t, fs.canLeft)
	assert.True(t, fs.canRight)
}

func TestFrame_FirstRenderDoesNotAnimate(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "C",
		Style:      testStyle(),
	})

	t0 := testTime()
	first := bar.frame(t0, 600, 40)
	later := bar.frame(t0.Add(50*time.Millisecond), 600, 40)

	assert.Equal(t, 2, first.activeIndex)
	assert.Equal(t, first.rects[2], first.indicator)
	assert.Equal(t, first.indicator, later.indicator, "nothing moves without a selection change")
}

func TestFrame_SelectionChangeSweeps(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C"}, SelectedID: "A", Style: testStyle()}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	start := bar.frame(t0, 600, 40)

	cfg.SelectedID = "C"
	bar.applyConfig(cfg, t0)

	begin := bar.frame(t0, 600, 40)
	mid := bar.frame(t0.Add(100*time.Millisecond), 600, 40)
	end := bar.frame(t0.Add(200*time.Millisecond), 600, 40)

	assert.Equal(t, start.rects[0], begin.indicator, "sweep starts at the outgoing item")
	assert.InDelta(t, lerp(start.rects[0].x, start.rects[2].x, 0.5), mid.indicator.x, 1e-2)
	assert.Equal(t, end.rects[2], end.indicator)
	assert.Equal(t, "C", bar.SelectedID())
}

func TestFrame_ColorFlipNearArrival(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C"}, SelectedID: "A", Style: testStyle()}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	bar.frame(t0, 600, 40)

	cfg.SelectedID = "C"
	bar.applyConfig(cfg, t0)

	// easeInOutCubic(0.60) ≈ 0.744, still shy of the switch point;
	// easeInOutCubic(0.70) ≈ 0.892 crosses it.
	before := bar.frame(t0.Add(120*time.Millisecond), 600, 40)
	after := bar.frame(t0.Add(140*time.Millisecond), 600, 40)

	assert.Equal(t, 0, before.activeIndex, "outgoing item keeps the active color")
	assert.Equal(t, 2, after.activeIndex)
	assert.Less(t, after.indicator.x, after.rects[2].x, "colors flip before the indicator lands")
}

func TestFrame_ZeroDurationJumps(t *testing.T) {
	style := testStyle()
	style.SlideDuration = 0
	cfg := Config[string]{Items: []string{"A", "B", "C"}, SelectedID: "A", Style: style}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	bar.frame(t0, 600, 40)

	cfg.SelectedID = "C"
	bar.applyConfig(cfg, t0)
	fs := bar.frame(t0, 600, 40)

	assert.Equal(t, fs.rects[2], fs.indicator)
	assert.Equal(t, 2, fs.activeIndex)
}

func TestFrame_RetriggerRestartsFromCommitted(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C"}, SelectedID: "A", Style: testStyle()}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	bar.frame(t0, 600, 40)

	cfg.SelectedID = "B"
	bar.applyConfig(cfg, t0)
	bar.frame(t0.Add(100*time.Millisecond), 600, 40) // mid-flight A→B

	// A new commit mid-flight snaps back to B and plays a full B→C sweep;
	// the in-flight position is not blended from.
	cfg.SelectedID = "C"
	bar.applyConfig(cfg, t0.Add(100*time.Millisecond))
	restart := bar.frame(t0.Add(100*time.Millisecond), 600, 40)

	assert.Equal(t, restart.rects[1], restart.indicator)
	assert.Equal(t, 1, restart.activeIndex)

	settled := bar.frame(t0.Add(400*time.Millisecond), 600, 40)
	assert.Equal(t, settled.rects[2], settled.indicator)
}

func TestFrame_PreviousGoneSkipsAnimation(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C"}, SelectedID: "A", Style: testStyle()}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	bar.frame(t0, 600, 40)

	// The outgoing id leaves the list in the same update that moves the
	// selection: nothing sensible to animate from.
	cfg.Items = []string{"B", "C", "D"}
	cfg.SelectedID = "D"
	bar.applyConfig(cfg, t0)

	fs := bar.frame(t0, 600, 40)

	assert.Equal(t, fs.rects[2], fs.indicator)
	assert.Equal(t, 2, fs.activeIndex, "no color lag without a previous rect")
}

func TestFrame_EmptyWithoutItems(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{Style: testStyle()})

	fs := bar.frame(testTime(), 600, 40)

	assert.True(t, fs.empty)
	assert.Equal(t, -1, fs.activeIndex)
}

func TestUnknownSelection_EmptyAndCorrectedOnce(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B"},
		SelectedID: "Z",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	t0 := testTime()
	fs := bar.frame(t0, 600, 40)
	assert.True(t, fs.empty, "unresolved selection renders nothing")

	bar.Update(t0)
	bar.Update(t0.Add(16 * time.Millisecond))
	assert.Equal(t, []string{"A"}, selected, "correction fires exactly once")

	// The caller ignoring the correction does not re-arm it.
	require.NoError(t, bar.SetConfig(bar.cfg))
	bar.Update(t0.Add(32 * time.Millisecond))
	assert.Equal(t, []string{"A"}, selected)
}

func TestUnknownSelection_RearmsPerID(t *testing.T) {
	var selected []string
	cfg := Config[string]{
		Items:      []string{"A", "B"},
		SelectedID: "Z",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	bar.Update(t0)
	require.Equal(t, []string{"A"}, selected)

	// A different bad id is a new occurrence.
	cfg.SelectedID = "Y"
	bar.applyConfig(cfg, t0)
	bar.Update(t0.Add(time.Second))

	assert.Equal(t, []string{"A", "A"}, selected)
}

func TestUnknownSelection_NoCorrectionWithoutItems(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		SelectedID: "Z",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	bar.Update(testTime())

	assert.Empty(t, selected, "nothing to correct toward")
}

func TestDestroy(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B"},
		SelectedID: "Z", // correction armed
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	bar.Destroy()
	bar.Destroy() // idempotent

	bar.Update(testTime())
	assert.Empty(t, selected, "a torn-down bar never fires OnSelect")
	assert.False(t, bar.HandleButton(constants.VirtualButtonRight, true))
	assert.NoError(t, bar.SetConfig(Config[string]{Items: []string{"A"}}))
	assert.Empty(t, selected)
}

func TestPreferredHeight(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "BB"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	assert.Equal(t, int32(28), bar.PreferredHeight())
}

func TestMeasurementCacheAcrossFrames(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C"}, SelectedID: "A", Style: testStyle()}
	bar, m := newStringBar(t, cfg)

	t0 := testTime()
	bar.frame(t0, 600, 40)
	bar.frame(t0.Add(16*time.Millisecond), 600, 40)
	bar.frame(t0.Add(32*time.Millisecond), 50, 40) // resize included
	assert.Equal(t, 3, m.calls, "one measurement per item, ever")

	// Style changes that can't affect metrics keep the cache.
	next := cfg
	next.Style.IndicatorColor = sdl.Color{R: 0xFF, A: 0xFF}
	bar.applyConfig(next, t0)
	bar.frame(t0.Add(48*time.Millisecond), 600, 40)
	assert.Equal(t, 3, m.calls)

	// Padding feeds the measured box, so it re-measures.
	padded := next
	padded.Style.TextPadding = internal.UniformPadding(2)
	bar.applyConfig(padded, t0)
	bar.frame(t0.Add(64*time.Millisecond), 600, 40)
	assert.Equal(t, 6, m.calls)
}

func TestTapSelection(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		OnSelect:   func(id string) { selected = append(selected, id) },
		IsEnabled:  func(id string) bool { return id != "C" },
		Style:      testStyle(),
	})

	t0 := testTime()
	showFrame(bar, t0, 600, 40)

	// Slot 1 spans x ∈ [206.7, 393.3).
	assert.True(t, bar.tapAt(300, 20, t0))
	assert.Equal(t, []string{"B"}, selected)

	// Re-tapping the committed selection reports nothing.
	assert.True(t, bar.tapAt(80, 20, t0.Add(time.Second)))
	assert.Equal(t, []string{"B"}, selected)

	// Disabled items swallow the tap without firing.
	assert.True(t, bar.tapAt(500, 20, t0.Add(2*time.Second)))
	assert.Equal(t, []string{"B"}, selected)

	// Outside the bar entirely.
	assert.False(t, bar.tapAt(300, 90, t0.Add(3*time.Second)))
}

func TestTapDebounce(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	t0 := testTime()
	showFrame(bar, t0, 600, 40)

	assert.True(t, bar.tapAt(300, 20, t0))
	assert.True(t, bar.tapAt(500, 20, t0.Add(5*time.Millisecond)), "consumed but dropped")
	assert.Equal(t, []string{"B"}, selected)

	assert.True(t, bar.tapAt(500, 20, t0.Add(50*time.Millisecond)))
	assert.Equal(t, []string{"B", "C"}, selected)
}

func TestHitIndex_ScrollbarClipsToViewport(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C", "D", "E"},
		SelectedID: "C",
		Style:      testStyle(),
	})

	t0 := testTime()
	fs := showFrame(bar, t0, 150, 40)
	require.Equal(t, LayoutScrollbar, fs.mode)

	// Points under the edge padding never resolve to items.
	assert.Equal(t, -1, bar.hitIndex(&fs, 10, 20))
	assert.Equal(t, -1, bar.hitIndex(&fs, 140, 20))

	// Just inside the viewport at offset 0: content x = 25-20 = 5 → item 0.
	assert.Equal(t, 0, bar.hitIndex(&fs, 25, 20))

	// Scrolled by 42, the same screen point lands on item 1.
	bar.scroll.jumpTo(42)
	fs2 := showFrame(bar, t0, 150, 40)
	assert.Equal(t, 1, bar.hitIndex(&fs2, 25, 20))
}

func TestArrowTap_PagesOneViewport(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C", "D", "E"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	t0 := testTime()
	fs := showFrame(bar, t0, 150, 40)
	require.Equal(t, LayoutScrollbar, fs.mode)
	require.True(t, fs.canRight)

	// Content is 198 against a 110 viewport → maxExtent 88. One page right
	// wants 110 and clamps to 88.
	assert.True(t, bar.tapAt(120, 20, t0), "inside the right arrow")
	settled := showFrame(bar, t0.Add(200*time.Millisecond), 150, 40)

	assert.InDelta(t, 88, settled.offset, 1e-3)
	assert.True(t, settled.canLeft)
	assert.False(t, settled.canRight)

	// And one page back snaps to the start.
	assert.True(t, bar.tapAt(20, 20, t0.Add(300*time.Millisecond)), "inside the left arrow")
	back := showFrame(bar, t0.Add(600*time.Millisecond), 150, 40)

	assert.Zero(t, back.offset)
	assert.False(t, back.canLeft)
}

func TestDrag_ScrollsAndSuppressesTap(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C", "D", "E"},
		SelectedID: "A",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	t0 := testTime()
	showFrame(bar, t0, 150, 40)
	held := sdl.ButtonLMask()

	require.True(t, bar.pressAt(100, 20))

	// Within the slop the gesture is still a potential tap.
	assert.True(t, bar.dragTo(105, held, t0))
	assert.False(t, bar.dragActive)

	// Past the slop the content follows the pointer: 105→60 drags the
	// viewport right by 45.
	assert.True(t, bar.dragTo(60, held, t0))
	assert.True(t, bar.dragActive)
	assert.InDelta(t, 45, bar.scroll.current(t0), 1e-3)

	// Releasing a drag is not a tap.
	assert.True(t, bar.releaseAt(60, 20, t0))
	assert.Empty(t, selected)
}

func TestDrag_AbandonedWhenButtonLost(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C", "D", "E"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	t0 := testTime()
	showFrame(bar, t0, 150, 40)

	require.True(t, bar.pressAt(100, 20))
	assert.False(t, bar.dragTo(60, 0, t0), "motion without the button held")
	assert.False(t, bar.dragTracking)
}

func TestHandleEvent_MouseTap(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	showFrame(bar, testTime(), 600, 40)

	down := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 300, Y: 20}
	up := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 300, Y: 20}

	assert.True(t, bar.HandleEvent(down))
	assert.True(t, bar.HandleEvent(up))
	assert.Equal(t, []string{"B"}, selected)

	right := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 300, Y: 20}
	assert.False(t, bar.HandleEvent(right), "only the left button gestures")
}

func TestHandleEvent_WheelScrollsImmediately(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C", "D", "E"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	showFrame(bar, testTime(), 150, 40)

	assert.True(t, bar.HandleEvent(&sdl.MouseWheelEvent{Y: -1}))
	assert.InDelta(t, 60, bar.scroll.current(time.Now()), 1e-3, "no transition, a clamped jump")

	assert.True(t, bar.HandleEvent(&sdl.MouseWheelEvent{Y: -1}))
	assert.InDelta(t, 88, bar.scroll.current(time.Now()), 1e-3, "clamped at the extent")

	assert.True(t, bar.HandleEvent(&sdl.MouseWheelEvent{Y: 1}))
	assert.InDelta(t, 28, bar.scroll.current(time.Now()), 1e-3)
}

func TestHandleEvent_WheelIgnoredInTabbar(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		Style:      testStyle(),
	})

	showFrame(bar, testTime(), 600, 40)

	assert.False(t, bar.HandleEvent(&sdl.MouseWheelEvent{Y: -1}))
}

func TestHandleEvent_Keyboard(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	down := &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_RIGHT}}
	up := &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_RIGHT}}

	assert.True(t, bar.HandleEvent(down))
	assert.True(t, bar.HandleEvent(up))
	assert.Equal(t, []string{"B"}, selected)

	other := &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_RETURN}}
	assert.False(t, bar.HandleEvent(other))
}

func TestHandleButton_VirtualDpad(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "B",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	assert.True(t, bar.HandleButton(constants.VirtualButtonLeft, true))
	assert.True(t, bar.HandleButton(constants.VirtualButtonLeft, false))
	assert.Equal(t, []string{"A"}, selected)

	assert.False(t, bar.HandleButton(constants.VirtualButtonA, true), "confirm belongs to the host")
}

func TestUpdate_HoldToRepeat(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "A",
		OnSelect:   func(id string) { selected = append(selected, id) },
		Style:      testStyle(),
	})

	t0 := testTime()
	bar.handleDirection(internal.DirectionRight, true, t0)
	require.Equal(t, []string{"B"}, selected, "press moves immediately")

	bar.Update(t0.Add(100 * time.Millisecond))
	assert.Len(t, selected, 1, "no repeat before the hold delay")

	// The selection is still uncommitted, so the repeat re-reports B.
	bar.Update(t0.Add(300 * time.Millisecond))
	assert.Equal(t, []string{"B", "B"}, selected)

	bar.handleDirection(internal.DirectionRight, false, t0.Add(320*time.Millisecond))
	bar.Update(t0.Add(400 * time.Millisecond))
	assert.Len(t, selected, 2, "release stops the repeats")
}

func TestMoveSelection_WrapsAndSkipsDisabled(t *testing.T) {
	var selected []string
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C"},
		SelectedID: "C",
		OnSelect:   func(id string) { selected = append(selected, id) },
		IsEnabled:  func(id string) bool { return id != "B" },
		Style:      testStyle(),
	})

	assert.True(t, bar.moveSelection(internal.DirectionRight))
	assert.Equal(t, []string{"A"}, selected, "wraps past the end")

	selected = nil
	assert.True(t, bar.moveSelection(internal.DirectionLeft))
	assert.Equal(t, []string{"A"}, selected, "skips the disabled neighbor")
}

func TestMoveSelection_NowhereToGo(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B"},
		SelectedID: "A",
		IsEnabled:  func(id string) bool { return id == "A" },
		Style:      testStyle(),
	})

	assert.False(t, bar.moveSelection(internal.DirectionRight))
}

func TestDuplicateIDs_FirstWins(t *testing.T) {
	bar, err := New(Config[string]{
		Items:        []string{"left", "right"},
		SelectedID:   "x",
		ResolveID:    func(string) string { return "x" },
		ResolveLabel: func(s string) string { return s },
		Style:        testStyle(),
	})
	require.NoError(t, err)
	bar.measurer = &charMeasurer{charWidth: 10, height: 20}

	fs := bar.frame(testTime(), 600, 40)

	assert.Equal(t, 0, fs.activeIndex)
	assert.Equal(t, fs.rects[0], fs.indicator)
}

func TestScrollbar_EnsureVisibleOnSelectionChange(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C", "D", "E"}, SelectedID: "A", Style: testStyle()}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	first := bar.frame(t0, 150, 40)
	require.Equal(t, LayoutScrollbar, first.mode)
	assert.Zero(t, first.offset)

	cfg.SelectedID = "E"
	bar.applyConfig(cfg, t0)

	bar.frame(t0, 150, 40) // kicks off the scroll transition
	settled := bar.frame(t0.Add(200*time.Millisecond), 150, 40)

	// E spans 168..198 in content space; flush right in the 110 viewport
	// means offset 88.
	assert.InDelta(t, 88, settled.offset, 1e-3)
	assert.True(t, settled.canLeft)
	assert.False(t, settled.canRight)

	// Re-rendering without a new commit leaves the offset alone.
	again := bar.frame(t0.Add(400*time.Millisecond), 150, 40)
	assert.InDelta(t, 88, again.offset, 1e-3)
}

func TestScrollbar_NoAutoScrollOnFirstRender(t *testing.T) {
	bar, _ := newStringBar(t, Config[string]{
		Items:      []string{"A", "B", "C", "D", "E"},
		SelectedID: "E",
		Style:      testStyle(),
	})

	fs := bar.frame(testTime(), 150, 40)

	assert.Zero(t, fs.offset, "the run opens at its natural start")
	assert.True(t, fs.canRight)
}

func TestScrollbar_ResizeReclamps(t *testing.T) {
	cfg := Config[string]{Items: []string{"A", "B", "C", "D", "E"}, SelectedID: "E", Style: testStyle()}
	bar, _ := newStringBar(t, cfg)

	t0 := testTime()
	bar.frame(t0, 150, 40)
	bar.scroll.jumpTo(88)

	// A wider bar leaves less overflow; the stale offset clamps down.
	fs := bar.frame(t0, 200, 40)
	assert.InDelta(t, 38, fs.maxExtent, 1e-3)
	assert.InDelta(t, 38, fs.offset, 1e-3)

	// Wide enough to fit, the mode flips back and scroll state resets.
	wide := bar.frame(t0, 600, 40)
	assert.Equal(t, LayoutTabbar, wide.mode)

	narrow := bar.frame(t0, 150, 40)
	assert.Zero(t, narrow.offset, "a later overflow starts from the beginning")
}

func TestHitTargets(t *testing.T) {
	rects := []rectF{{x: 105, y: 6, w: 30, h: 28}, {x: 305, y: 6, w: 30, h: 28}}

	slots := hitTargets(LayoutTabbar, false, rects, 440, 20, 40)
	assert.InDelta(t, 20, slots[0].x, 1e-3)
	assert.InDelta(t, 200, slots[0].w, 1e-3)
	assert.InDelta(t, 40, slots[0].h, 1e-3, "targets span the full bar height")

	natural := hitTargets(LayoutScrollbar, false, rects, 440, 20, 40)
	assert.InDelta(t, 105, natural[0].x, 1e-3)
	assert.InDelta(t, 30, natural[0].w, 1e-3)
	assert.InDelta(t, 40, natural[0].h, 1e-3)
}

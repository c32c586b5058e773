// Package dispatch implements C5: the event normalizer that translates raw
// capture events into VirtualEvents, keeps internal/modstate in lock-step,
// invokes the user's dispatcher synchronously, and reports the consume
// verdict back to the capture backend (spec §4.4).
package dispatch

import (
	"sync"
	"time"

	"github.com/zhaoq-v/iohook/internal/capture"
	"github.com/zhaoq-v/iohook/internal/logging"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
)

// nonCharacterCodes are resolved characters that must not produce a
// KEY_TYPED follow-up, per spec §4.4 item 3.
var nonCharacterCodes = map[uint16]bool{
	0x01: true, // Home
	0x04: true, // End
	0x05: true, // Help
	0x0B: true, // Page Up
	0x0C: true, // Page Down
	0x10: true, // function-key
	0x1F: true, // Volume Up (macOS)
}

// DefaultClickWindow is the platform-defined multi-click window used to
// decide whether a MOUSE_RELEASED should additionally be reported as
// MOUSE_CLICKED, and whether the click count should keep incrementing.
const DefaultClickWindow = 500 * time.Millisecond

type point struct{ x, y int16 }

// Dispatcher implements capture.Sink.
type Dispatcher struct {
	mu      sync.Mutex
	handler model.DispatchFunc

	clickWindow time.Duration
	havePress   [6]bool
	lastPress   [6]point
	lastClickAt [6]time.Time
	lastClickPt [6]point
	clickCount  [6]int
}

// New returns a Dispatcher that calls handler synchronously for every
// normalized event. handler must not be nil.
func New(handler model.DispatchFunc) *Dispatcher {
	return &Dispatcher{handler: handler, clickWindow: DefaultClickWindow}
}

// SetClickWindow overrides the multi-click window (test hook / tuning);
// zero restores DefaultClickWindow.
func (d *Dispatcher) SetClickWindow(window time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if window <= 0 {
		window = DefaultClickWindow
	}
	d.clickWindow = window
}

func (d *Dispatcher) dispatch(ev *model.VirtualEvent) bool {
	return d.handler(ev)
}

// KeyEvent translates, updates modifier state, dispatches KEY_PRESSED or
// KEY_RELEASED, and — for presses — the KEY_TYPED follow-up(s).
func (d *Dispatcher) KeyEvent(ev capture.KeyEvent) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	vc := translateVC(ev)
	if mask := model.MaskForModifierVC(vc); mask != 0 {
		if ev.Down {
			modstate.Set(mask)
		} else {
			modstate.Unset(mask)
		}
	}

	evType := model.KeyReleased
	if ev.Down {
		evType = model.KeyPressed
	}

	ve := model.VirtualEvent{
		Type:    evType,
		Time:    ev.Time,
		Mask:    modstate.Get(),
		KeyCode: vc,
		RawCode: nativeRaw(ev),
		KeyChar: model.CharUndefined,
	}
	consumed := d.dispatch(&ve)

	if ev.Down {
		d.emitKeyTyped(ev, vc, ve.Mask)
	}

	return consumed
}

func (d *Dispatcher) emitKeyTyped(ev capture.KeyEvent, vc model.VirtualCode, mask model.ModifierMask) {
	units := resolveChars(ev, mask)
	if len(units) == 0 {
		return
	}
	if len(units) == 1 && nonCharacterCodes[units[0]] {
		return
	}
	for _, u := range units {
		typed := model.VirtualEvent{
			Type:    model.KeyTyped,
			Time:    ev.Time,
			Mask:    mask,
			KeyCode: vc,
			RawCode: nativeRaw(ev),
			KeyChar: u,
		}
		d.dispatch(&typed)
	}
}

// MouseButton translates a press/release, updates the button bit in the
// modifier mask, dispatches MOUSE_PRESSED/MOUSE_RELEASED, and — on a release
// matching the triggering press's coordinates within the click window —
// additionally dispatches MOUSE_CLICKED immediately afterward.
func (d *Dispatcher) MouseButton(ev capture.MouseButtonEvent) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ev.Button < 1 || ev.Button > 5 {
		logging.L("dispatch").Warn("mouse event with out-of-range button", "button", ev.Button)
		return false
	}

	mask := model.MaskForButton(ev.Button)
	if ev.Down {
		modstate.Set(mask)
	} else {
		modstate.Unset(mask)
	}

	evType := model.MouseReleased
	if ev.Down {
		evType = model.MousePressed
	}

	clicks := d.clicksFor(ev)

	ve := model.VirtualEvent{
		Type:   evType,
		Time:   ev.Time,
		Mask:   modstate.Get(),
		Button: ev.Button,
		Clicks: clicks,
		X:      ev.X,
		Y:      ev.Y,
	}
	consumed := d.dispatch(&ve)

	if ev.Down {
		d.havePress[ev.Button] = true
		d.lastPress[ev.Button] = point{ev.X, ev.Y}
	} else if d.havePress[ev.Button] && d.lastPress[ev.Button] == (point{ev.X, ev.Y}) &&
		time.Unix(0, ev.Time).Sub(d.lastClickAt[ev.Button]) <= d.clickWindow {
		clicked := model.VirtualEvent{
			Type:   model.MouseClicked,
			Time:   ev.Time,
			Mask:   ve.Mask,
			Button: ev.Button,
			Clicks: clicks,
			X:      ev.X,
			Y:      ev.Y,
		}
		d.dispatch(&clicked)
	}

	return consumed
}

// clicksFor advances the per-button click counter: consecutive presses at
// the same coordinates within the click window increment the count;
// anything else resets it to 1. Only evaluated on press; the matching
// release and MOUSE_CLICKED are reported with the same count.
func (d *Dispatcher) clicksFor(ev capture.MouseButtonEvent) int {
	if !ev.Down {
		return d.clickCount[ev.Button]
	}
	now := time.Unix(0, ev.Time)
	pt := point{ev.X, ev.Y}
	if d.clickCount[ev.Button] > 0 &&
		pt == d.lastClickPt[ev.Button] &&
		now.Sub(d.lastClickAt[ev.Button]) <= d.clickWindow {
		d.clickCount[ev.Button]++
	} else {
		d.clickCount[ev.Button] = 1
	}
	d.lastClickAt[ev.Button] = now
	d.lastClickPt[ev.Button] = pt
	return d.clickCount[ev.Button]
}

// MouseMove reclassifies as MOUSE_DRAGGED whenever any mouse button is
// currently held, per spec §4.4 item 4 / testable property 4.
func (d *Dispatcher) MouseMove(ev capture.MouseMoveEvent) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	mask := modstate.Get()
	evType := model.MouseMoved
	if mask&(model.MaskButton1|model.MaskButton2|model.MaskButton3|model.MaskButton4|model.MaskButton5) != 0 {
		evType = model.MouseDragged
	}

	ve := model.VirtualEvent{
		Type: evType,
		Time: ev.Time,
		Mask: mask,
		X:    ev.X,
		Y:    ev.Y,
	}
	return d.dispatch(&ve)
}

// MouseWheel dispatches a MOUSE_WHEEL event.
func (d *Dispatcher) MouseWheel(ev capture.MouseWheelEvent) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	direction := model.WheelVertical
	if !ev.Vertical {
		direction = model.WheelHorizontal
	}

	ve := model.VirtualEvent{
		Type:           model.MouseWheel,
		Time:           ev.Time,
		Mask:           modstate.Get(),
		X:              ev.X,
		Y:              ev.Y,
		WheelType:      model.WheelUnitScroll,
		Rotation:       ev.Rotation,
		Delta:          int16(ev.Delta),
		WheelDirection: direction,
	}
	return d.dispatch(&ve)
}

// DisplayChanged is a no-op here; the capture backend refreshes
// internal/monitor directly on WM_DISPLAYCHANGE.
func (d *Dispatcher) DisplayChanged() {}

// HookEnabled dispatches a HOOK_ENABLED event, mirroring libuiohook's
// notification that the native hook is installed and events are about to
// flow. Called once, after the OS hook is in place and initial modifier
// state has been polled.
func (d *Dispatcher) HookEnabled() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatch(&model.VirtualEvent{Type: model.HookEnabled, Time: time.Now().UnixNano(), Mask: modstate.Get()})
}

// HookDisabled dispatches a HOOK_DISABLED event, called once, immediately
// before the native hook is torn down.
func (d *Dispatcher) HookDisabled() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatch(&model.VirtualEvent{Type: model.HookDisabled, Time: time.Now().UnixNano(), Mask: modstate.Get()})
}

//go:build darwin

package capture

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

extern CGEventRef iohookTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon);

static CFMachPortRef iohookCreateTap(CGEventMask mask) {
	return CGEventTapCreate(kCGSessionEventTap, kCGHeadInsertEventTap,
		kCGEventTapOptionDefault, mask, iohookTapCallback, NULL);
}

static CFRunLoopSourceRef iohookRunLoopSource(CFMachPortRef tap) {
	return CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
}

static void iohookAddSource(CFRunLoopSourceRef src) {
	CFRunLoopAddSource(CFRunLoopGetCurrent(), src, kCFRunLoopCommonModes);
}

static void iohookRemoveSource(CFRunLoopSourceRef src) {
	CFRunLoopRemoveSource(CFRunLoopGetCurrent(), src, kCFRunLoopCommonModes);
}

static void iohookEnableTap(CFMachPortRef tap, int enabled) {
	CGEventTapEnable(tap, enabled ? true : false);
}

static void iohookRun(void) {
	CFRunLoopRun();
}

static void iohookStop(CFRunLoopRef loop) {
	CFRunLoopStop(loop);
}

// iohookKeyDown reports whether the given virtual keycode is currently held,
// per spec §4.2's hook-start modifier poll.
static int iohookKeyDown(CGKeyCode code) {
	return CGEventSourceKeyState(kCGEventSourceStateHIDSystemState, code) ? 1 : 0;
}

// iohookButtonDown reports whether the given mouse button index (0 = left,
// 1 = right, 2 = center, 3/4 = the two extra buttons) is currently held.
static int iohookButtonDown(CGMouseButton button) {
	return CGEventSourceButtonState(kCGEventSourceStateHIDSystemState, button) ? 1 : 0;
}

// iohookFlagsState returns the current combined modifier-flag state,
// including the Caps Lock toggle bit.
static unsigned long long iohookFlagsState(void) {
	return (unsigned long long)CGEventSourceFlagsState(kCGEventSourceStateHIDSystemState);
}
*/
import "C"

import (
	"sync"
	"time"
	"unsafe"

	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
)

// backend implements Backend via a session-level CGEventTap attached to the
// current thread's CFRunLoop, grounded on the pack's CGEventTapCreate /
// CFRunLoopAddSource wiring (hotkey-recorder_darwin.go), adapted here to
// consume events (kCGEventTapOptionDefault) rather than merely listen.
type backend struct {
	mu      sync.Mutex
	tap     C.CFMachPortRef
	source  C.CFRunLoopSourceRef
	runLoop C.CFRunLoopRef
	mode    Mode
}

var (
	activeMu sync.Mutex
	active   *backend
)

func New() Backend { return &backend{} }

func (b *backend) Run(mode Mode, sink Sink) error {
	b.mode = mode

	mask := C.CGEventMask(0)
	if mode == ModeBoth || mode == ModeKeyboardOnly {
		mask |= C.CGEventMaskBit(C.kCGEventKeyDown) |
			C.CGEventMaskBit(C.kCGEventKeyUp) |
			C.CGEventMaskBit(C.kCGEventFlagsChanged)
	}
	if mode == ModeBoth || mode == ModeMouseOnly {
		mask |= C.CGEventMaskBit(C.kCGEventLeftMouseDown) |
			C.CGEventMaskBit(C.kCGEventLeftMouseUp) |
			C.CGEventMaskBit(C.kCGEventRightMouseDown) |
			C.CGEventMaskBit(C.kCGEventRightMouseUp) |
			C.CGEventMaskBit(C.kCGEventOtherMouseDown) |
			C.CGEventMaskBit(C.kCGEventOtherMouseUp) |
			C.CGEventMaskBit(C.kCGEventMouseMoved) |
			C.CGEventMaskBit(C.kCGEventLeftMouseDragged) |
			C.CGEventMaskBit(C.kCGEventRightMouseDragged) |
			C.CGEventMaskBit(C.kCGEventOtherMouseDragged) |
			C.CGEventMaskBit(C.kCGEventScrollWheel)
	}

	tap := C.iohookCreateTap(mask)
	if tap == 0 {
		return ioherr.New(ioherr.MacEventTap)
	}
	b.tap = tap

	src := C.iohookRunLoopSource(tap)
	if src == 0 {
		return ioherr.New(ioherr.MacRunLoopSrc)
	}
	b.source = src

	C.iohookAddSource(src)
	C.iohookEnableTap(tap, 1)
	b.runLoop = C.CFRunLoopGetCurrent()

	activeMu.Lock()
	active = b
	activeSink = sink
	activeMu.Unlock()

	modstate.Init(pollInitialMask())
	sink.HookEnabled()

	C.iohookRun() // blocks until Stop calls CFRunLoopStop

	sink.HookDisabled()
	b.teardown()
	return nil
}

// pollInitialMask queries modifier keys, mouse buttons, and the Caps Lock
// toggle at hook start, per spec §4.2's requirement to recover correct
// modifier state rather than assume everything starts released. macOS has
// no Num Lock/Scroll Lock concept on its standard keyboards, so those two
// mask bits are left clear here.
func pollInitialMask() model.ModifierMask {
	var mask model.ModifierMask

	for code, m := range map[C.CGKeyCode]model.ModifierMask{
		0x38: model.MaskShiftL, 0x3C: model.MaskShiftR,
		0x3B: model.MaskCtrlL, 0x3E: model.MaskCtrlR,
		0x3A: model.MaskAltL, 0x3D: model.MaskAltR,
		0x37: model.MaskMetaL, 0x36: model.MaskMetaR,
	} {
		if C.iohookKeyDown(code) != 0 {
			mask |= m
		}
	}

	for button, m := range map[C.CGMouseButton]model.ModifierMask{
		0: model.MaskButton1, 1: model.MaskButton2, 2: model.MaskButton3,
		3: model.MaskButton4, 4: model.MaskButton5,
	} {
		if C.iohookButtonDown(button) != 0 {
			mask |= m
		}
	}

	if uint64(C.iohookFlagsState())&uint64(C.kCGEventFlagMaskAlphaShift) != 0 {
		mask |= model.MaskCapsLock
	}

	return mask
}

func (b *backend) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.runLoop != 0 {
		C.iohookStop(b.runLoop)
	}
}

func (b *backend) teardown() {
	if b.source != 0 {
		C.iohookRemoveSource(b.source)
		C.CFRelease(C.CFTypeRef(b.source))
		b.source = 0
	}
	if b.tap != 0 {
		C.CFRelease(C.CFTypeRef(b.tap))
		b.tap = 0
	}
	activeMu.Lock()
	if active == b {
		active = nil
		activeSink = nil
	}
	activeMu.Unlock()
}

var activeSink Sink

//export iohookTapCallback
func iohookTapCallback(proxy C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, refcon unsafe.Pointer) C.CGEventRef {
	activeMu.Lock()
	b := active
	sink := activeSink
	activeMu.Unlock()
	if b == nil || sink == nil {
		return event
	}

	if eventType == C.kCGEventTapDisabledByTimeout || eventType == C.kCGEventTapDisabledByUserInput {
		C.iohookEnableTap(b.tap, 1)
		return event
	}

	now := time.Now().UnixNano()
	flags := uint64(C.CGEventGetFlags(event))
	x := int16(C.CGEventGetLocation(event).x)
	y := int16(C.CGEventGetLocation(event).y)

	switch eventType {
	case C.kCGEventKeyDown, C.kCGEventKeyUp:
		code := uint32(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))
		ev := KeyEvent{Down: eventType == C.kCGEventKeyDown, Native: code, Time: now}
		if sink.KeyEvent(ev) {
			return 0
		}
	case C.kCGEventFlagsChanged:
		code := uint32(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))
		down := modifierFlagImpliesDown(code, flags)
		ev := KeyEvent{Down: down, Native: code, Time: now}
		if sink.KeyEvent(ev) {
			return 0
		}
	case C.kCGEventLeftMouseDown:
		if sink.MouseButton(MouseButtonEvent{Down: true, Button: 1, X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventLeftMouseUp:
		if sink.MouseButton(MouseButtonEvent{Down: false, Button: 1, X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventRightMouseDown:
		if sink.MouseButton(MouseButtonEvent{Down: true, Button: 2, X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventRightMouseUp:
		if sink.MouseButton(MouseButtonEvent{Down: false, Button: 2, X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventOtherMouseDown:
		btn := int(C.CGEventGetIntegerValueField(event, C.kCGMouseEventButtonNumber)) + 1
		if sink.MouseButton(MouseButtonEvent{Down: true, Button: btn, X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventOtherMouseUp:
		btn := int(C.CGEventGetIntegerValueField(event, C.kCGMouseEventButtonNumber)) + 1
		if sink.MouseButton(MouseButtonEvent{Down: false, Button: btn, X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventMouseMoved, C.kCGEventLeftMouseDragged, C.kCGEventRightMouseDragged, C.kCGEventOtherMouseDragged:
		if sink.MouseMove(MouseMoveEvent{X: x, Y: y, Time: now}) {
			return 0
		}
	case C.kCGEventScrollWheel:
		vertical := int64(C.CGEventGetIntegerValueField(event, C.kCGScrollWheelEventIsContinuous)) == 0
		rot := int16(C.CGEventGetIntegerValueField(event, C.kCGScrollWheelEventDeltaAxis1))
		if sink.MouseWheel(MouseWheelEvent{Vertical: vertical, Rotation: rot, Delta: int32(rot), X: x, Y: y, Time: now}) {
			return 0
		}
	}

	return event
}

// modifierFlagImpliesDown tracks whether a kCGEventFlagsChanged transition on
// code was a press or release by recalling the last flags bit observed for
// that key's mask. macOS reports flag state, not an explicit down/up, so a
// per-keycode shadow of the relevant bit is required to derive the edge.
var flagShadow sync.Map // map[uint32]bool

func modifierFlagImpliesDown(code uint32, flags uint64) bool {
	mask := maskForModifierKeycode(code)
	isSet := flags&mask != 0
	prev, _ := flagShadow.Load(code)
	flagShadow.Store(code, isSet)
	wasSet, _ := prev.(bool)
	return isSet && !wasSet
}

func maskForModifierKeycode(code uint32) uint64 {
	switch code {
	case 0x38, 0x3C: // kVK_Shift, kVK_RightShift
		return uint64(C.kCGEventFlagMaskShift)
	case 0x3B, 0x3E: // kVK_Control, kVK_RightControl
		return uint64(C.kCGEventFlagMaskControl)
	case 0x3A, 0x3D: // kVK_Option, kVK_RightOption
		return uint64(C.kCGEventFlagMaskAlternate)
	case 0x37, 0x36: // kVK_Command, kVK_RightCommand
		return uint64(C.kCGEventFlagMaskCommand)
	case 0x39: // kVK_CapsLock
		return uint64(C.kCGEventFlagMaskAlphaShift)
	default:
		return 0
	}
}

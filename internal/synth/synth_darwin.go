//go:build darwin

package synth

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static void iohookPostKey(CGKeyCode code, int down, CGEventFlags flags) {
	CGEventRef ev = CGEventCreateKeyboardEvent(NULL, code, down ? true : false);
	CGEventSetFlags(ev, flags);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
}

static void iohookPostMouse(CGEventType type, CGMouseButton button, CGPoint pt) {
	CGEventRef ev = CGEventCreateMouseEvent(NULL, type, pt, button);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
}

static void iohookPostScroll(int32_t vertical, int32_t horizontal) {
	CGEventRef ev = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 2, vertical, horizontal);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
}

static CGPoint iohookCursorPos(void) {
	CGEventRef ev = CGEventCreate(NULL);
	CGPoint pt = CGEventGetLocation(ev);
	CFRelease(ev);
	return pt;
}

static void iohookPostUnicodeKey(const UniChar *units, UniCharCount count, int down) {
	CGEventRef ev = CGEventCreateKeyboardEvent(NULL, 0, down ? true : false);
	CGEventKeyboardSetUnicodeString(ev, count, units);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
}
*/
import "C"

import (
	"sync"

	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

// The synthesis engine keeps its own modifier shadow independent of
// internal/modstate, because CGEventCreateKeyboardEvent/CGEventSetFlags
// require the caller to supply the full flags mask explicitly (spec §5
// "Shared-resource policy").
var (
	shadowMu    sync.Mutex
	shadowFlags C.CGEventFlags
)

type injector struct{}

func New() Injector { return injector{} }

func (injector) PostEvent(ev *model.VirtualEvent) error {
	switch ev.Type {
	case model.KeyPressed, model.KeyReleased:
		return postKey(ev)
	case model.MousePressed, model.MouseReleased:
		return postMouseButton(ev, true)
	case model.MousePressedIgnoreCoords, model.MouseReleasedIgnoreCoords:
		return postMouseButton(ev, false)
	case model.MouseMoved, model.MouseDragged:
		return postMouseMove(ev.X, ev.Y)
	case model.MouseMovedRelativeToCursor:
		return postMouseRelative(ev.X, ev.Y)
	case model.MouseWheel:
		return postWheel(ev)
	}
	return nil
}

func postKey(ev *model.VirtualEvent) error {
	native, ok := vcode.VCToNative(ev.KeyCode)
	if !ok {
		return ioherr.New(ioherr.Failure)
	}

	shadowMu.Lock()
	if mask := model.MaskForModifierVC(ev.KeyCode); mask != 0 {
		if ev.Type == model.KeyPressed {
			shadowFlags |= modifierCGFlag(mask)
		} else {
			shadowFlags &^= modifierCGFlag(mask)
		}
	}
	flags := shadowFlags
	shadowMu.Unlock()

	C.iohookPostKey(C.CGKeyCode(native), boolToC(ev.Type == model.KeyPressed), flags)
	return nil
}

func modifierCGFlag(mask model.ModifierMask) C.CGEventFlags {
	switch {
	case mask&model.MaskShift != 0:
		return C.kCGEventFlagMaskShift
	case mask&model.MaskCtrl != 0:
		return C.kCGEventFlagMaskControl
	case mask&model.MaskAlt != 0:
		return C.kCGEventFlagMaskAlternate
	case mask&model.MaskMeta != 0:
		return C.kCGEventFlagMaskCommand
	default:
		return 0
	}
}

func postMouseButton(ev *model.VirtualEvent, moveFirst bool) error {
	if moveFirst {
		if err := postMouseMove(ev.X, ev.Y); err != nil {
			return err
		}
	}
	down := ev.Type == model.MousePressed || ev.Type == model.MousePressedIgnoreCoords
	pt := C.CGPoint{x: C.CGFloat(ev.X), y: C.CGFloat(ev.Y)}

	var typ C.CGEventType
	var button C.CGMouseButton
	switch ev.Button {
	case 1:
		button = C.kCGMouseButtonLeft
		typ = pick(down, C.kCGEventLeftMouseDown, C.kCGEventLeftMouseUp)
	case 2:
		button = C.kCGMouseButtonRight
		typ = pick(down, C.kCGEventRightMouseDown, C.kCGEventRightMouseUp)
	default:
		button = C.CGMouseButton(ev.Button - 1)
		typ = pick(down, C.kCGEventOtherMouseDown, C.kCGEventOtherMouseUp)
	}

	C.iohookPostMouse(typ, button, pt)
	return nil
}

func pick(down bool, onDown, onUp C.CGEventType) C.CGEventType {
	if down {
		return onDown
	}
	return onUp
}

func postMouseMove(x, y int16) error {
	pt := C.CGPoint{x: C.CGFloat(x), y: C.CGFloat(y)}
	C.iohookPostMouse(C.kCGEventMouseMoved, C.kCGMouseButtonLeft, pt)
	return nil
}

func postMouseRelative(dx, dy int16) error {
	cur := C.iohookCursorPos()
	return postMouseMove(int16(cur.x)+dx, int16(cur.y)+dy)
}

func postWheel(ev *model.VirtualEvent) error {
	if ev.WheelDirection == model.WheelHorizontal {
		C.iohookPostScroll(0, C.int32_t(ev.Rotation))
	} else {
		C.iohookPostScroll(C.int32_t(ev.Rotation), 0)
	}
	return nil
}

// PostText injects units as a single press/release pair carrying the whole
// string, per spec §4.7, and reports a status — the source's post_text on
// macOS does not, which spec §9 flags as a defect this corrects.
func (injector) PostText(units []uint16) error {
	if len(units) == 0 {
		return ioherr.New(ioherr.NullText)
	}
	cUnits := make([]C.UniChar, len(units))
	for i, u := range units {
		cUnits[i] = C.UniChar(u)
	}
	C.iohookPostUnicodeKey(&cUnits[0], C.UniCharCount(len(cUnits)), 1)
	C.iohookPostUnicodeKey(&cUnits[0], C.UniCharCount(len(cUnits)), 0)
	return nil
}

func boolToC(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

//go:build linux

package capture

/*
#cgo pkg-config: x11 xtst xext
#include <X11/Xlib.h>
#include <X11/Xlibint.h>
#include <X11/Xutil.h>
#include <X11/extensions/record.h>
#include <X11/extensions/XTest.h>
#include <X11/XKBlib.h>
#include <stdlib.h>
#include <string.h>

// Wire-format key/button/motion event, as XRecord delivers it over the data
// display (spec §4.3: "wire-to-event transform"). Layout matches the X11
// protocol's xEvent KeyButtonPointer variant: type, detail (keycode/button),
// sequence number, timestamp, then root/event/child window ids and the
// pointer coordinates, state mask, same-screen flag.
typedef struct {
	unsigned char type;
	unsigned char detail;
	unsigned short sequenceNumber;
	unsigned int time;
	unsigned int root, event, child;
	short rootX, rootY, eventX, eventY;
	unsigned short state;
	unsigned char sameScreen;
	unsigned char pad;
} wireEvent;

extern void goRecordCallback(unsigned char type, unsigned char detail, unsigned short state, short x, short y, unsigned long time);

static void recordCallback(XPointer closure, XRecordInterceptData *data) {
	if (data->category == XRecordFromServer && data->data != NULL) {
		wireEvent *we = (wireEvent *)data->data;
		goRecordCallback(we->type, we->detail, we->state, we->eventX, we->eventY, we->time);
	}
	XRecordFreeData(data);
}

static Display *iohookOpenDisplay(void) {
	return XOpenDisplay(NULL);
}

static int iohookQueryRecordVersion(Display *d, int *maj, int *min) {
	return XRecordQueryVersion(d, maj, min);
}

static XRecordContext iohookCreateContext(Display *ctrl) {
	XRecordRange *range = XRecordAllocRange();
	if (!range) return 0;
	memset(range, 0, sizeof(XRecordRange));
	range->device_events.first = KeyPress;
	range->device_events.last = MotionNotify;

	XRecordClientSpec spec = XRecordAllClients;
	XRecordContext ctx = XRecordCreateContext(ctrl, 0, &spec, 1, &range, 1);
	XFree(range);
	return ctx;
}

static int iohookEnableContext(Display *data, XRecordContext ctx) {
	// Blocks for the lifetime of the session (spec §5 suspension points).
	return XRecordEnableContext(data, ctx, recordCallback, NULL);
}

static void iohookDisableContext(Display *ctrl, XRecordContext ctx) {
	XRecordDisableContext(ctrl, ctx);
	XFlush(ctrl);
}

static void iohookSetDetectableAutoRepeat(Display *d) {
	Bool supported;
	XkbSetDetectableAutoRepeat(d, True, &supported);
}

static int iohookKeycodeRange(Display *d, int *min, int *max) {
	return XDisplayKeycodes(d, min, max);
}

// iohookKeyName writes the 4-char Xkb symbolic name for keycode kc into out
// (caller-supplied 5-byte buffer) using the Xkb names extension (spec §4.1
// runtime discovery). Returns 0 if no name is defined for kc.
static int iohookKeyName(Display *d, int kc, char *out) {
	XkbDescPtr xkb = XkbGetMap(d, XkbAllClientInfoMask, XkbUseCoreKbd);
	if (!xkb) return 0;
	if (XkbGetNames(d, XkbKeyNamesMask, xkb) != Success) {
		XkbFreeKeyboard(xkb, 0, True);
		return 0;
	}
	if (kc < xkb->min_key_code || kc > xkb->max_key_code || !xkb->names || !xkb->names->keys) {
		XkbFreeKeyboard(xkb, 0, True);
		return 0;
	}
	memcpy(out, xkb->names->keys[kc].name, 4);
	out[4] = 0;
	XkbFreeKeyboard(xkb, 0, True);
	return 1;
}

static void iohookSync(Display *d) {
	XSync(d, False);
}

// iohookQueryKeymap fills out (a caller-supplied 32-byte buffer) with the
// current state of every keycode, one bit each, per spec §4.2's "poll the
// OS for all modifier keys' held state" hook-start requirement.
static void iohookQueryKeymap(Display *d, char *out32) {
	XQueryKeymap(d, out32);
}

// iohookPointerButtonMask returns the core pointer's current button mask
// (Button1Mask..Button5Mask bits) on the default root window.
static unsigned int iohookPointerButtonMask(Display *d) {
	Window root = DefaultRootWindow(d);
	Window retRoot, retChild;
	int rootX, rootY, winX, winY;
	unsigned int mask = 0;
	XQueryPointer(d, root, &retRoot, &retChild, &rootX, &rootY, &winX, &winY, &mask);
	return mask;
}

// iohookIndicatorState returns the Xkb keyboard indicator bitmask (lock
// LEDs). The base Xkb symbol map defines indicator 0 as Caps Lock, 1 as Num
// Lock, and 2 as Scroll Lock on virtually every layout in practice, so bit
// position is used directly rather than resolving indicator names.
static unsigned int iohookIndicatorState(Display *d) {
	unsigned int state = 0;
	XkbGetIndicatorState(d, XkbUseCoreKbd, &state);
	return state;
}
*/
import "C"

import (
	"strings"
	"sync"
	"time"
	"unsafe"

	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/logging"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

const (
	xKeyPress      = 2
	xKeyRelease    = 3
	xButtonPress   = 4
	xButtonRelease = 5
	xMotionNotify  = 6

	btnWheelUp    = 4
	btnWheelDown  = 5
	btnWheelLeft  = 6
	btnWheelRight = 7

	// btnBack/btnForward are the X11 physical button numbers for the side
	// (back/forward navigation) buttons on most mice. X11 has no button
	// numbers 1-5 reserved for them the way spec §3's Button field expects
	// (1-5, wheel already consumed as 4/5 above), so they are remapped onto
	// the otherwise-unused button 4/5 slots in the normalized event model.
	btnBack    = 8
	btnForward = 9
)

// normalizeButton maps an X11 physical button number onto the 1-5 range
// dispatch.MouseButton accepts, or 0 if the button has no normalized slot.
func normalizeButton(btn int) int {
	switch btn {
	case 1, 2, 3:
		return btn
	case btnBack:
		return 4
	case btnForward:
		return 5
	default:
		return 0
	}
}

// backend implements Backend via the X11 RECORD extension, grounded on the
// XTest/Xlib cgo conventions the pack uses for X11 input (XOpenDisplay,
// XFlush, XTestFakeKeyEvent style bindings) and the canonical RECORD
// range/context/enable sequence from spec §4.3.
type backend struct {
	mu      sync.Mutex
	ctrlDpy *C.Display
	dataDpy *C.Display
	ctx     C.XRecordContext
}

var (
	activeMu sync.Mutex
	active   *backend
)

func New() Backend { return &backend{} }

func (b *backend) Run(mode Mode, sink Sink) error {
	ctrl := C.iohookOpenDisplay()
	if ctrl == nil {
		return ioherr.New(ioherr.XOpenDisplay)
	}
	b.ctrlDpy = ctrl

	data := C.iohookOpenDisplay()
	if data == nil {
		C.XCloseDisplay(ctrl)
		return ioherr.New(ioherr.XOpenDisplay)
	}
	b.dataDpy = data

	var maj, min C.int
	if C.iohookQueryRecordVersion(ctrl, &maj, &min) == 0 {
		b.closeDisplays()
		return ioherr.New(ioherr.XRecordMissing)
	}

	C.iohookSetDetectableAutoRepeat(ctrl)
	b.discoverKeycodes()
	modstate.Init(b.pollInitialMask())

	ctx := C.iohookCreateContext(ctrl)
	if ctx == 0 {
		b.closeDisplays()
		return ioherr.New(ioherr.XRecordCreate)
	}
	b.ctx = ctx

	activeMu.Lock()
	active = b
	activeSink = sink
	activeMode = mode
	activeMu.Unlock()

	sink.HookEnabled()

	if C.iohookEnableContext(data, ctx) == 0 {
		sink.HookDisabled()
		b.teardown()
		return ioherr.New(ioherr.XRecordEnable)
	}

	sink.HookDisabled()
	b.teardown()
	return nil
}

// pollInitialMask queries modifier keys, pointer buttons, and lock LEDs at
// hook start, per spec §4.2's requirement to recover correct modifier state
// rather than assume everything starts released.
func (b *backend) pollInitialMask() model.ModifierMask {
	var mask model.ModifierMask

	var keymap [32]byte
	C.iohookQueryKeymap(b.ctrlDpy, (*C.char)(unsafe.Pointer(&keymap[0])))
	down := func(vc model.VirtualCode) bool {
		native, ok := vcode.VCToNative(vc)
		if !ok {
			return false
		}
		return keymap[native/8]&(1<<(native%8)) != 0
	}
	for _, vc := range []model.VirtualCode{
		model.VCShiftL, model.VCShiftR, model.VCCtrlL, model.VCCtrlR,
		model.VCAltL, model.VCAltR, model.VCMetaL, model.VCMetaR,
	} {
		if down(vc) {
			mask |= model.MaskForModifierVC(vc)
		}
	}

	const (
		button1Mask = 1 << 8
		button2Mask = 1 << 9
		button3Mask = 1 << 10
		button4Mask = 1 << 11
		button5Mask = 1 << 12
	)
	pointerMask := uint32(C.iohookPointerButtonMask(b.ctrlDpy))
	for bit, m := range map[uint32]model.ModifierMask{
		button1Mask: model.MaskButton1, button2Mask: model.MaskButton2,
		button3Mask: model.MaskButton3, button4Mask: model.MaskButton4,
		button5Mask: model.MaskButton5,
	} {
		if pointerMask&bit != 0 {
			mask |= m
		}
	}

	indicators := uint32(C.iohookIndicatorState(b.ctrlDpy))
	if indicators&0x1 != 0 {
		mask |= model.MaskCapsLock
	}
	if indicators&0x2 != 0 {
		mask |= model.MaskNumLock
	}
	if indicators&0x4 != 0 {
		mask |= model.MaskScrollLock
	}

	return mask
}

func (b *backend) discoverKeycodes() {
	var min, max C.int
	C.iohookKeycodeRange(b.ctrlDpy, &min, &max)

	names := make(map[uint8]string)
	buf := make([]byte, 5)
	cbuf := (*C.char)(unsafe.Pointer(&buf[0]))
	for kc := int(min); kc <= int(max) && kc < 255; kc++ {
		if C.iohookKeyName(b.ctrlDpy, C.int(kc), cbuf) != 0 {
			// Xkb stores key names in a char[4] field, NUL-padded when the
			// name is shorter than 4 characters; trim that padding so the
			// discovered name matches xkbNameToVC's keys exactly regardless
			// of length.
			name := strings.TrimRight(string(buf[:4]), "\x00")
			names[uint8(kc)] = name
		}
	}
	vcode.Discover(names)
}

func (b *backend) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrlDpy != nil && b.ctx != 0 {
		C.iohookDisableContext(b.ctrlDpy, b.ctx)
	}
}

func (b *backend) teardown() {
	activeMu.Lock()
	if active == b {
		active = nil
		activeSink = nil
	}
	activeMu.Unlock()
	b.closeDisplays()
}

func (b *backend) closeDisplays() {
	if b.dataDpy != nil {
		C.XCloseDisplay(b.dataDpy)
		b.dataDpy = nil
	}
	if b.ctrlDpy != nil {
		C.XCloseDisplay(b.ctrlDpy)
		b.ctrlDpy = nil
	}
}

var (
	activeSink Sink
	activeMode Mode
)

//export goRecordCallback
func goRecordCallback(typ, detail C.uchar, state C.ushort, x, y C.short, t C.ulong) {
	activeMu.Lock()
	b := active
	sink := activeSink
	mode := activeMode
	activeMu.Unlock()
	if b == nil || sink == nil {
		return
	}

	now := time.Now().UnixNano()
	_ = t

	switch byte(typ) {
	case xKeyPress, xKeyRelease:
		if mode == ModeMouseOnly {
			return
		}
		sink.KeyEvent(KeyEvent{
			Down:     byte(typ) == xKeyPress,
			NativeU8: uint8(detail),
			Time:     now,
		})
	case xButtonPress, xButtonRelease:
		if mode == ModeKeyboardOnly {
			return
		}
		btn := int(detail)
		if byte(typ) == xButtonPress {
			switch btn {
			case btnWheelUp:
				sink.MouseWheel(MouseWheelEvent{Vertical: true, Rotation: -1, Delta: 1, X: int16(x), Y: int16(y), Time: now})
				return
			case btnWheelDown:
				sink.MouseWheel(MouseWheelEvent{Vertical: true, Rotation: 1, Delta: 1, X: int16(x), Y: int16(y), Time: now})
				return
			case btnWheelLeft:
				sink.MouseWheel(MouseWheelEvent{Vertical: false, Rotation: -1, Delta: 1, X: int16(x), Y: int16(y), Time: now})
				return
			case btnWheelRight:
				sink.MouseWheel(MouseWheelEvent{Vertical: false, Rotation: 1, Delta: 1, X: int16(x), Y: int16(y), Time: now})
				return
			}
		}
		norm := normalizeButton(btn)
		if norm == 0 {
			logging.L("capture").Warn("dropping event for unmapped physical button", "button", btn)
			return
		}
		sink.MouseButton(MouseButtonEvent{
			Down:   byte(typ) == xButtonPress,
			Button: norm,
			X:      int16(x),
			Y:      int16(y),
			Time:   now,
		})
	case xMotionNotify:
		if mode == ModeKeyboardOnly {
			return
		}
		sink.MouseMove(MouseMoveEvent{X: int16(x), Y: int16(y), Time: now})
	}
}

//go:build linux

package synth

/*
#cgo pkg-config: x11 xtst
#include <X11/Xlib.h>
#include <X11/Xutil.h>
#include <X11/extensions/XTest.h>
#include <string.h>

static Display *iohookSynthDisplay = NULL;

static int iohookSynthInit(void) {
	if (iohookSynthDisplay) return 0;
	iohookSynthDisplay = XOpenDisplay(NULL);
	return iohookSynthDisplay ? 0 : -1;
}

static void iohookFakeKey(unsigned int keycode, int press) {
	XTestFakeKeyEvent(iohookSynthDisplay, keycode, press ? True : False, 0);
	XFlush(iohookSynthDisplay);
}

static void iohookFakeButton(unsigned int button, int press) {
	XTestFakeButtonEvent(iohookSynthDisplay, button, press ? True : False, 0);
	XFlush(iohookSynthDisplay);
}

static void iohookFakeMotion(int x, int y) {
	XTestFakeMotionEvent(iohookSynthDisplay, -1, x, y, 0);
	XFlush(iohookSynthDisplay);
}

static void iohookQueryPointer(int *x, int *y) {
	Window root, child;
	int rootX, rootY, winX, winY;
	unsigned int mask;
	XQueryPointer(iohookSynthDisplay, DefaultRootWindow(iohookSynthDisplay), &root, &child,
		&rootX, &rootY, &winX, &winY, &mask);
	*x = rootX;
	*y = rootY;
}

static int iohookUnusedKeycode(int *min, int *max) {
	XDisplayKeycodes(iohookSynthDisplay, min, max);
	int keysymsPerKeycode;
	KeySym *map = XGetKeyboardMapping(iohookSynthDisplay, (KeyCode)*min, *max - *min + 1, &keysymsPerKeycode);
	int found = -1;
	for (int kc = *min; kc <= *max && found < 0; kc++) {
		int any = 0;
		for (int i = 0; i < keysymsPerKeycode; i++) {
			if (map[(kc - *min) * keysymsPerKeycode + i] != NoSymbol) {
				any = 1;
				break;
			}
		}
		if (!any) found = kc;
	}
	XFree(map);
	return found;
}

static void iohookRemapKeycode(unsigned int keycode, KeySym keysym) {
	KeySym syms[4] = {keysym, keysym, keysym, keysym};
	XChangeKeyboardMapping(iohookSynthDisplay, keycode, 4, syms, 1);
	XSync(iohookSynthDisplay, False);
}

static void iohookRestoreKeycode(unsigned int keycode) {
	KeySym syms[4] = {NoSymbol, NoSymbol, NoSymbol, NoSymbol};
	XChangeKeyboardMapping(iohookSynthDisplay, keycode, 4, syms, 1);
	XSync(iohookSynthDisplay, False);
}
*/
import "C"

import (
	"time"

	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

// defaultPostTextDelay is the per-character inter-keystroke delay for text
// injection (spec §6: 50,000,000 ns default), overridable via
// SetPostTextDelay.
const defaultPostTextDelay = 50 * time.Millisecond

var postTextDelay = int64(defaultPostTextDelay)

// GetPostTextDelay returns the configured per-character delay, in
// nanoseconds, for X11 text injection.
func GetPostTextDelay() int64 { return postTextDelay }

// SetPostTextDelay overrides the per-character delay, in nanoseconds.
func SetPostTextDelay(ns int64) { postTextDelay = ns }

type injector struct{}

func New() Injector {
	C.iohookSynthInit()
	return injector{}
}

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
	C.iohookFakeKey(C.uint(native), boolToC(ev.Type == model.KeyPressed))
	return nil
}

func postMouseButton(ev *model.VirtualEvent, moveFirst bool) error {
	if moveFirst {
		if err := postMouseMove(ev.X, ev.Y); err != nil {
			return err
		}
	}
	down := ev.Type == model.MousePressed || ev.Type == model.MousePressedIgnoreCoords
	if ev.Button < 1 || ev.Button > 5 {
		return ioherr.New(ioherr.Failure)
	}
	C.iohookFakeButton(C.uint(ev.Button), boolToC(down))
	return nil
}

func postMouseMove(x, y int16) error {
	C.iohookFakeMotion(C.int(x), C.int(y))
	return nil
}

func postMouseRelative(dx, dy int16) error {
	var cx, cy C.int
	C.iohookQueryPointer(&cx, &cy)
	return postMouseMove(int16(cx)+dx, int16(cy)+dy)
}

// postWheel maps vertical/horizontal rotation onto the X11 wheel
// pseudo-buttons (4/5 vertical, 6/7 horizontal), per spec §4.7.
func postWheel(ev *model.VirtualEvent) error {
	button := 4
	if ev.WheelDirection == model.WheelHorizontal {
		button = 6
	}
	if ev.Rotation > 0 {
		button++
	}
	C.iohookFakeButton(C.uint(button), 1)
	C.iohookFakeButton(C.uint(button), 0)
	return nil
}

// PostText locates an unused keycode, remaps all four shift levels to each
// target keysym in turn, fakes a press+release with the configured
// inter-character delay, then restores the keycode to NoSymbol (spec §4.7).
func (injector) PostText(units []uint16) error {
	if len(units) == 0 {
		return ioherr.New(ioherr.NullText)
	}

	var min, max C.int
	kc := C.iohookUnusedKeycode(&min, &max)
	if kc < 0 {
		return ioherr.New(ioherr.Failure)
	}

	delay := time.Duration(postTextDelay)
	for _, u := range units {
		C.iohookRemapKeycode(C.uint(kc), C.KeySym(unicodeToKeysym(u)))
		C.iohookFakeKey(C.uint(kc), 1)
		C.iohookFakeKey(C.uint(kc), 0)
		time.Sleep(delay)
	}
	C.iohookRestoreKeycode(C.uint(kc))
	return nil
}

// unicodeToKeysym maps a UTF-16 code unit to its X11 keysym, per the
// convention that codepoints above Latin-1 live at 0x01000000+codepoint.
func unicodeToKeysym(u uint16) uint32 {
	if u <= 0xFF {
		return uint32(u)
	}
	return 0x01000000 + uint32(u)
}

func boolToC(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

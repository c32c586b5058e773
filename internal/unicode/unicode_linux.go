//go:build linux

package unicode

/*
#cgo pkg-config: x11
#include <X11/Xlib.h>
#include <X11/Xutil.h>
#include <stdlib.h>
#include <string.h>

static Display *iohookUnicodeDisplay = NULL;
static XIC iohookIC = NULL;
static XIM iohookIM = NULL;

static int iohookUnicodeInit(void) {
	if (iohookUnicodeDisplay) return 0;
	iohookUnicodeDisplay = XOpenDisplay(NULL);
	if (!iohookUnicodeDisplay) return -1;
	iohookIM = XOpenIM(iohookUnicodeDisplay, NULL, NULL, NULL);
	if (!iohookIM) return -1;
	Window root = DefaultRootWindow(iohookUnicodeDisplay);
	iohookIC = XCreateIC(iohookIM, XNInputStyle, XIMPreeditNothing | XIMStatusNothing,
		XNClientWindow, root, XNFocusWindow, root, NULL);
	return iohookIC ? 0 : -1;
}

// iohookLookup builds a synthetic XKeyPressedEvent from the RECORD-decoded
// keycode/state and resolves it with Xutf8LookupString, per spec §4.5's
// "freshly-created input context for KeyPress" rule.
static int iohookLookup(unsigned int keycode, unsigned int state, char *out, int outCap) {
	if (!iohookIM) return 0;
	XKeyPressedEvent ev;
	memset(&ev, 0, sizeof(ev));
	ev.type = KeyPress;
	ev.display = iohookUnicodeDisplay;
	ev.root = DefaultRootWindow(iohookUnicodeDisplay);
	ev.window = ev.root;
	ev.state = state;
	ev.keycode = keycode;
	ev.same_screen = True;

	XIC ic = XCreateIC(iohookIM, XNInputStyle, XIMPreeditNothing | XIMStatusNothing,
		XNClientWindow, ev.root, XNFocusWindow, ev.root, NULL);
	if (!ic) return 0;

	KeySym keysym;
	Status status;
	int n = Xutf8LookupString(ic, &ev, out, outCap, &keysym, &status);
	XDestroyIC(ic);
	if (status == XBufferOverflow) return -1;
	return n;
}
*/
import "C"

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/zhaoq-v/iohook/internal/model"
)

const (
	shiftMask   = 1 << 0
	lockMask    = 1 << 1
	controlMask = 1 << 2
)

var initErr error

func ensureInit() {
	if initErr != nil {
		return
	}
	if C.iohookUnicodeInit() != 0 {
		initErr = errInitFailed
	}
}

type initError struct{}

func (initError) Error() string { return "X11 input context init failed" }

var errInitFailed error = initError{}

// Resolve looks up the typed UTF-16 code unit(s) for an X11 keycode under
// the given modifier mask using Xutf8LookupString (spec §4.5), expanding
// any codepoint above U+FFFF into a surrogate pair.
func Resolve(native uint32, mask model.ModifierMask) []uint16 {
	ensureInit()
	if initErr != nil {
		return nil
	}

	state := C.uint(0)
	if mask&model.MaskShift != 0 {
		state |= shiftMask
	}
	if mask&model.MaskCapsLock != 0 {
		state |= lockMask
	}
	if mask&model.MaskCtrl != 0 {
		state |= controlMask
	}

	var buf [32]C.char
	n := C.iohookLookup(C.uint(native), state, &buf[0], C.int(len(buf)))
	if n <= 0 {
		return nil
	}

	raw := make([]byte, n)
	for i := 0; i < int(n); i++ {
		raw[i] = byte(buf[i])
	}

	var units []uint16
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size <= 1 {
			break
		}
		raw = raw[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			units = append(units, uint16(r1), uint16(r2))
		} else {
			units = append(units, uint16(r))
		}
	}
	return units
}

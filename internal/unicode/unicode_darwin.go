//go:build darwin

package unicode

/*
#cgo LDFLAGS: -framework Carbon -framework CoreFoundation
#include <Carbon/Carbon.h>

static const UCKeyboardLayout *iohookCurrentLayoutData(void) {
	TISInputSourceRef source = TISCopyCurrentKeyboardInputSource();
	if (!source) return NULL;
	CFDataRef data = (CFDataRef)TISGetInputSourceProperty(source, kTISPropertyUnicodeKeyLayoutData);
	CFRelease(source);
	if (!data) return NULL;
	return (const UCKeyboardLayout *)CFDataGetBytePtr(data);
}

static OSStatus iohookTranslate(const UCKeyboardLayout *layout, UInt16 keyCode, UInt16 action,
	UInt32 modifierFlags, UInt32 *deadKeyState, UniChar *out, UniCharCount outCap, UniCharCount *outLen) {
	return UCKeyTranslate(layout, keyCode, action, modifierFlags, LMGetKbdType(),
		0, deadKeyState, outCap, outLen, out);
}
*/
import "C"

import (
	"github.com/zhaoq-v/iohook/internal/mainthread"
	"github.com/zhaoq-v/iohook/internal/model"
)

const (
	kUCKeyActionDown = 0

	// shiftKeyBit is the device-independent Shift bit within UCKeyTranslate's
	// modifierKeyState, per Carbon's Events.h layout (bits 8-13, shifted
	// right by 8 in the value UCKeyTranslate expects). CapsLock is applied
	// manually below rather than passed through this mask.
	shiftKeyBit = 1 << 1
)

var deadKeyState C.UInt32

// Resolve translates a macOS kVK_* code under the current TIS keyboard
// layout into 0-N UTF-16 code units. Per spec §4.5, Command/Control/Option
// bits are disabled in the flags handed to the translator (so Cmd-A still
// resolves to 'a') and CapsLock is applied manually by uppercasing.
func Resolve(native uint32, mask model.ModifierMask) []uint16 {
	var result []uint16
	mainthread.Run(func() {
		result = resolve(native, mask)
	})
	return result
}

func resolve(native uint32, mask model.ModifierMask) []uint16 {
	layout := C.iohookCurrentLayoutData()
	if layout == nil {
		return nil
	}

	var flags C.UInt32
	if mask&model.MaskShift != 0 {
		flags |= shiftKeyBit
	}

	var buf [8]C.UniChar
	var outLen C.UniCharCount
	status := C.iohookTranslate(layout, C.UInt16(native), kUCKeyActionDown, flags,
		&deadKeyState, &buf[0], C.UniCharCount(len(buf)), &outLen)
	if status != 0 || outLen == 0 {
		return nil
	}

	out := make([]uint16, outLen)
	for i := range out {
		out[i] = uint16(buf[i])
	}
	if mask&model.MaskCapsLock != 0 {
		for i, u := range out {
			out[i] = uppercaseUTF16(u)
		}
	}
	return out
}

func uppercaseUTF16(u uint16) uint16 {
	if u >= 'a' && u <= 'z' {
		return u - ('a' - 'A')
	}
	return u
}

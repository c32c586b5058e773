//go:build windows

// Package unicode implements C6: deriving the typed character(s) for a key
// press from the current keyboard layout and modifier/dead-key state.
package unicode

import (
	"syscall"
	"unsafe"

	"github.com/zhaoq-v/iohook/internal/model"
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procGetKeyboardState      = user32.NewProc("GetKeyboardState")
	procMapVirtualKeyExW      = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx           = user32.NewProc("ToUnicodeEx")
	procGetKeyboardLayout     = user32.NewProc("GetKeyboardLayout")
	procGetForegroundWindow   = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcID = user32.NewProc("GetWindowThreadProcessId")
)

const (
	mapvkVKToVSCEx  = 4
	guiUnsuppress   = 0x4 // don't change keyboard state, suppress Alt handling in newer SDKs where supported
	vkShift         = 0x10
	vkControl       = 0x11
	vkMenu          = 0x12
	vkCapital       = 0x14
	vkNumLock       = 0x90
)

// Resolve translates a Windows VK code under the foreground layout into 0-N
// UTF-16 code units, using ToUnicodeEx's "no side effects" flag so repeated
// resolution does not disturb dead-key state for real typing (spec §4.5).
func Resolve(native uint32, mask model.ModifierMask) []uint16 {
	layout := foregroundLayout()

	scan, _, _ := procMapVirtualKeyExW.Call(uintptr(native), mapvkVKToVSCEx, layout)

	var state [256]byte
	procGetKeyboardState.Call(uintptr(unsafe.Pointer(&state[0])))
	applyMaskToState(&state, mask)

	var buf [8]uint16
	n, _, _ := procToUnicodeEx.Call(
		uintptr(native),
		scan,
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		guiUnsuppress,
		layout,
	)
	count := int32(n)
	if count <= 0 {
		return nil
	}
	return append([]uint16(nil), buf[:count]...)
}

func applyMaskToState(state *[256]byte, mask model.ModifierMask) {
	if mask&model.MaskShift != 0 {
		state[vkShift] = 0x80
	}
	if mask&model.MaskCtrl != 0 {
		state[vkControl] = 0x80
	}
	if mask&model.MaskAlt != 0 {
		state[vkMenu] = 0x80
	}
	if mask&model.MaskCapsLock != 0 {
		state[vkCapital] = 0x01
	}
	if mask&model.MaskNumLock != 0 {
		state[vkNumLock] = 0x01
	}
}

func foregroundLayout() uintptr {
	fg, _, _ := procGetForegroundWindow.Call()
	if fg == 0 {
		layout, _, _ := procGetKeyboardLayout.Call(0)
		return layout
	}
	var pid uint32
	tid, _, _ := procGetWindowThreadProcID.Call(fg, uintptr(unsafe.Pointer(&pid)))
	layout, _, _ := procGetKeyboardLayout.Call(tid)
	return layout
}

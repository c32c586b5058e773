//go:build linux

package vcode

import (
	"sync"

	"github.com/zhaoq-v/iohook/internal/model"
)

// xkbNameToVC maps the Xkb symbolic key name (as returned by XkbKeyName,
// with the char[4] field's trailing NUL padding trimmed off by the caller)
// to a VirtualCode. Two names may alias the same VC — e.g. both "BKSL" and
// "AC12" map to VC_BACK_SLASH on layouts that carry both — per spec §4.1,
// the runtime table keeps the first populated native code.
var xkbNameToVC = map[string]model.VirtualCode{
	"TLDE": model.VCBackquote,
	"AE01": model.VC1, "AE02": model.VC2, "AE03": model.VC3, "AE04": model.VC4,
	"AE05": model.VC5, "AE06": model.VC6, "AE07": model.VC7, "AE08": model.VC8,
	"AE09": model.VC9, "AE10": model.VC0,
	"AE11": model.VCMinus, "AE12": model.VCEquals,
	"BKSP": model.VCBackspace, "TAB": model.VCTab,
	"AD01": model.VCQ, "AD02": model.VCW, "AD03": model.VCE, "AD04": model.VCR,
	"AD05": model.VCT, "AD06": model.VCY, "AD07": model.VCU, "AD08": model.VCI,
	"AD09": model.VCO, "AD10": model.VCP,
	"AD11": model.VCOpenBracket, "AD12": model.VCCloseBracket,
	"RTRN": model.VCEnter,
	"AC01": model.VCA, "AC02": model.VCS, "AC03": model.VCD, "AC04": model.VCF,
	"AC05": model.VCG, "AC06": model.VCH, "AC07": model.VCJ, "AC08": model.VCK,
	"AC09": model.VCL,
	"AC10": model.VCSemicolon, "AC11": model.VCQuote,
	"BKSL": model.VCBackSlash, "AC12": model.VCBackSlash,
	"LFSH": model.VCShiftL,
	"AB01": model.VCZ, "AB02": model.VCX, "AB03": model.VCC, "AB04": model.VCV,
	"AB05": model.VCB, "AB06": model.VCN, "AB07": model.VCM,
	"AB08": model.VCComma, "AB09": model.VCPeriod, "AB10": model.VCSlash,
	"RTSH": model.VCShiftR,
	"LALT": model.VCAltL, "RALT": model.VCAltR,
	"LCTL": model.VCCtrlL, "RCTL": model.VCCtrlR,
	"LWIN": model.VCMetaL, "RWIN": model.VCMetaR,
	"CAPS": model.VCCapsLock, "NMLK": model.VCNumLock, "SCLK": model.VCScroll,
	"SPCE": model.VCSpace, "ESC": model.VCEscape,
	"UP": model.VCUp, "DOWN": model.VCDown, "LEFT": model.VCLeft, "RGHT": model.VCRight,
	"HOME": model.VCHome, "END": model.VCEnd, "PGUP": model.VCPageUp, "PGDN": model.VCPageDown,
	"INS": model.VCInsert, "DELE": model.VCDelete,
	"KP0": model.VCKP0, "KP1": model.VCKP1, "KP2": model.VCKP2, "KP3": model.VCKP3,
	"KP4": model.VCKP4, "KP5": model.VCKP5, "KP6": model.VCKP6, "KP7": model.VCKP7,
	"KP8": model.VCKP8, "KP9": model.VCKP9,
	"KPDL": model.VCKPDecimal, "KPEN": model.VCKPEnter, "KPAD": model.VCKPAdd,
	"KPSU": model.VCKPSubtract, "KPMU": model.VCKPMultiply, "KPDV": model.VCKPDivide,
	"MUTE": model.VCVolumeMute, "VOLU": model.VCVolumeUp, "VOLD": model.VCVolumeDown,
	"FK01": model.VCF1, "FK02": model.VCF2, "FK03": model.VCF3, "FK04": model.VCF4,
	"FK05": model.VCF5, "FK06": model.VCF6, "FK07": model.VCF7, "FK08": model.VCF8,
	"FK09": model.VCF9, "FK10": model.VCF10, "FK11": model.VCF11, "FK12": model.VCF12,
}

var (
	mu         sync.RWMutex
	nativeToVC = map[uint8]model.VirtualCode{}
	vcToNative = map[model.VirtualCode]uint8{}
	discovered bool
)

// Discover rebuilds the runtime native-keycode table from the Xkb symbolic
// names the capture backend read by walking [minKeycode, maxKeycode] (spec
// §4.1). Call at hook start and again on a keyboard-mapping change.
func Discover(names map[uint8]string) {
	mu.Lock()
	defer mu.Unlock()

	nativeToVC = make(map[uint8]model.VirtualCode, len(names))
	vcToNative = make(map[model.VirtualCode]uint8, len(names))

	// Deterministic iteration by keycode so the "first match wins" rule for
	// VC aliases (BKSL vs AC12) is reproducible across runs.
	for kc := uint8(0); kc < 255; kc++ {
		name, ok := names[kc]
		if !ok {
			continue
		}
		vc, ok := xkbNameToVC[name]
		if !ok {
			continue
		}
		nativeToVC[kc] = vc
		if _, taken := vcToNative[vc]; !taken {
			vcToNative[vc] = kc
		}
	}
	discovered = true
}

// Discovered reports whether Discover has populated the table yet.
func Discovered() bool {
	mu.RLock()
	defer mu.RUnlock()
	return discovered
}

// NativeToVC translates a runtime-discovered X11 keycode to a VirtualCode.
func NativeToVC(native uint8) model.VirtualCode {
	mu.RLock()
	defer mu.RUnlock()
	if vc, ok := nativeToVC[native]; ok {
		return vc
	}
	return model.VCUndefined
}

// VCToNative returns the native X11 keycode for vc, or ok=false if unmapped
// (including when Discover has not run yet).
func VCToNative(vc model.VirtualCode) (native uint8, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	native, ok = vcToNative[vc]
	return
}

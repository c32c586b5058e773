//go:build windows

// Package vcode implements C1: the bidirectional native-code <-> VirtualCode
// tables, grounded on the teacher's input_windows.go VK_* constant block.
package vcode

import "github.com/zhaoq-v/iohook/internal/model"

// Windows VK_* constants not already declared by internal/synth's own table
// (vcode owns the canonical set; synth imports this package).
const (
	vkBack      = 0x08
	vkTab       = 0x09
	vkReturn    = 0x0D
	vkShift     = 0x10
	vkControl   = 0x11
	vkMenu      = 0x12 // Alt
	vkCapital   = 0x14
	vkEscape    = 0x1B
	vkSpace     = 0x20
	vkPrior     = 0x21 // Page Up
	vkNext      = 0x22 // Page Down
	vkEnd       = 0x23
	vkHome      = 0x24
	vkLeft      = 0x25
	vkUp        = 0x26
	vkRight     = 0x27
	vkDown      = 0x28
	vkInsert    = 0x2D
	vkDelete    = 0x2E
	vk0         = 0x30
	vk9         = 0x39
	vkA         = 0x41
	vkZ         = 0x5A
	vkLWin      = 0x5B
	vkRWin      = 0x5C
	vkApps      = 0x5D // context menu
	vkNumpad0   = 0x60
	vkNumpad9   = 0x69
	vkMultiply  = 0x6A
	vkAdd       = 0x6B
	vkSubtract  = 0x6D
	vkDecimal   = 0x6E
	vkDivide    = 0x6F
	vkF1        = 0x70
	vkF24       = 0x87
	vkNumlock   = 0x90
	vkScroll    = 0x91
	vkLShift    = 0xA0
	vkRShift    = 0xA1
	vkLControl  = 0xA2
	vkRControl  = 0xA3
	vkLMenu     = 0xA4
	vkRMenu     = 0xA5
	vkVolMute   = 0xAD
	vkVolDown   = 0xAE
	vkVolUp     = 0xAF
	vkMediaNext = 0xB0
	vkMediaPrev = 0xB1
	vkMediaStop = 0xB2
	vkMediaPlay = 0xB3
	vkBrBack    = 0xA6
	vkBrFwd     = 0xA7
	vkBrHome    = 0xAC
	vkOEM1      = 0xBA // ;:
	vkOEMPlus   = 0xBB
	vkOEMComma  = 0xBC
	vkOEMMinus  = 0xBD
	vkOEMPeriod = 0xBE
	vkOEM2      = 0xBF // /?
	vkOEM3      = 0xC0 // `~
	vkOEM4      = 0xDB // [{
	vkOEM5      = 0xDC // \|
	vkOEM6      = 0xDD // ]}
	vkOEM7      = 0xDE // '"
)

type entry struct {
	vc     model.VirtualCode
	native uint32
}

// table lists native->VC in priority order: the first match for a given
// native code wins on lookup, matching the spec's multi-valued note (both
// VK_SHIFT and VK_LSHIFT map to VC_SHIFT_L).
var table = []entry{
	{model.VCEscape, vkEscape},
	{model.VCBackspace, vkBack},
	{model.VCTab, vkTab},
	{model.VCEnter, vkReturn},
	{model.VCShiftL, vkShift},
	{model.VCShiftL, vkLShift},
	{model.VCShiftR, vkRShift},
	{model.VCCtrlL, vkControl},
	{model.VCCtrlL, vkLControl},
	{model.VCCtrlR, vkRControl},
	{model.VCAltL, vkMenu},
	{model.VCAltL, vkLMenu},
	{model.VCAltR, vkRMenu},
	{model.VCCapsLock, vkCapital},
	{model.VCSpace, vkSpace},
	{model.VCPageUp, vkPrior},
	{model.VCPageDown, vkNext},
	{model.VCEnd, vkEnd},
	{model.VCHome, vkHome},
	{model.VCLeft, vkLeft},
	{model.VCUp, vkUp},
	{model.VCRight, vkRight},
	{model.VCDown, vkDown},
	{model.VCInsert, vkInsert},
	{model.VCDelete, vkDelete},
	{model.VCMetaL, vkLWin},
	{model.VCMetaR, vkRWin},
	{model.VCContext, vkApps},
	{model.VCKPMultiply, vkMultiply},
	{model.VCKPAdd, vkAdd},
	{model.VCKPSubtract, vkSubtract},
	{model.VCKPDecimal, vkDecimal},
	{model.VCKPDivide, vkDivide},
	{model.VCNumLock, vkNumlock},
	{model.VCScroll, vkScroll},
	{model.VCVolumeMute, vkVolMute},
	{model.VCVolumeDown, vkVolDown},
	{model.VCVolumeUp, vkVolUp},
	{model.VCMediaNext, vkMediaNext},
	{model.VCMediaPrev, vkMediaPrev},
	{model.VCMediaStop, vkMediaStop},
	{model.VCMediaPlay, vkMediaPlay},
	{model.VCBrowserBack, vkBrBack},
	{model.VCBrowserFwd, vkBrFwd},
	{model.VCBrowserHome, vkBrHome},
	{model.VCSemicolon, vkOEM1},
	{model.VCEquals, vkOEMPlus},
	{model.VCComma, vkOEMComma},
	{model.VCMinus, vkOEMMinus},
	{model.VCPeriod, vkOEMPeriod},
	{model.VCSlash, vkOEM2},
	{model.VCBackquote, vkOEM3},
	{model.VCOpenBracket, vkOEM4},
	{model.VCBackSlash, vkOEM5},
	{model.VCCloseBracket, vkOEM6},
	{model.VCQuote, vkOEM7},
}

var nativeToVC = map[uint32]model.VirtualCode{}
var vcToNative = map[model.VirtualCode]uint32{}

func init() {
	for _, e := range table {
		if _, ok := nativeToVC[e.native]; !ok {
			nativeToVC[e.native] = e.vc
		}
		if _, ok := vcToNative[e.vc]; !ok {
			vcToNative[e.vc] = e.native
		}
	}
	for vk := uint32(vk0); vk <= vk9; vk++ {
		vc := model.VC0 + model.VirtualCode(vk-vk0)
		if vk == vk0 {
			vc = model.VC0
		} else {
			vc = model.VC1 + model.VirtualCode(vk-vk0-1)
		}
		nativeToVC[vk] = vc
		vcToNative[vc] = vk
	}
	for vk := uint32(vkA); vk <= vkZ; vk++ {
		vc := letterVC(vk)
		nativeToVC[vk] = vc
		vcToNative[vc] = vk
	}
	kp := map[uint32]model.VirtualCode{
		vkNumpad0: model.VCKP0, vkNumpad0 + 1: model.VCKP1, vkNumpad0 + 2: model.VCKP2,
		vkNumpad0 + 3: model.VCKP3, vkNumpad0 + 4: model.VCKP4, vkNumpad0 + 5: model.VCKP5,
		vkNumpad0 + 6: model.VCKP6, vkNumpad0 + 7: model.VCKP7, vkNumpad0 + 8: model.VCKP8,
		vkNumpad0 + 9: model.VCKP9,
	}
	for vk, vc := range kp {
		nativeToVC[vk] = vc
		vcToNative[vc] = vk
	}
	for vk := uint32(vkF1); vk < vkF1+10; vk++ {
		vc := model.VCF1 + model.VirtualCode(vk-vkF1)
		nativeToVC[vk] = vc
		vcToNative[vc] = vk
	}
	nativeToVC[0x7A] = model.VCF11
	vcToNative[model.VCF11] = 0x7A
	nativeToVC[0x7B] = model.VCF12
	vcToNative[model.VCF12] = 0x7B
	for vk := uint32(0x7C); vk <= vkF24; vk++ {
		vc := model.VCF13 + model.VirtualCode(vk-0x7C)
		nativeToVC[vk] = vc
		vcToNative[vc] = vk
	}
}

// letterVC maps a VK A-Z code (alphabetic: VK_A..VK_Z) to the model
// package's scancode-ordered VC for that letter.
func letterVC(vk uint32) model.VirtualCode {
	byLetter := map[byte]model.VirtualCode{
		'Q': model.VCQ, 'W': model.VCW, 'E': model.VCE, 'R': model.VCR, 'T': model.VCT,
		'Y': model.VCY, 'U': model.VCU, 'I': model.VCI, 'O': model.VCO, 'P': model.VCP,
		'A': model.VCA, 'S': model.VCS, 'D': model.VCD, 'F': model.VCF, 'G': model.VCG,
		'H': model.VCH, 'J': model.VCJ, 'K': model.VCK, 'L': model.VCL,
		'Z': model.VCZ, 'X': model.VCX, 'C': model.VCC, 'V': model.VCV, 'B': model.VCB,
		'N': model.VCN, 'M': model.VCM,
	}
	return byLetter[byte('A'+(vk-vkA))]
}

// refineEnter applies the Windows-specific refinement from spec
// §4.1: the extended-key flag on VK_RETURN promotes it to VC_KP_ENTER.
func refineEnter(vc model.VirtualCode, extended bool) model.VirtualCode {
	if vc == model.VCEnter && extended {
		return model.VCKPEnter
	}
	return vc
}

// NativeToVC translates a Windows VK code (plus the low-level hook's
// extended-key flag) to a VirtualCode.
func NativeToVC(native uint32, extended bool) model.VirtualCode {
	vc, ok := nativeToVC[native]
	if !ok {
		return model.VCUndefined
	}
	return refineEnter(vc, extended)
}

// VCToNative returns the native VK code for vc, or ok=false if unmapped.
func VCToNative(vc model.VirtualCode) (native uint32, ok bool) {
	if vc == model.VCKPEnter {
		return vkReturn, true
	}
	native, ok = vcToNative[vc]
	return
}

//go:build darwin

package vcode

import "github.com/zhaoq-v/iohook/internal/model"

// macOS HIToolbox kVK_* constants, grounded on the kVK_* usage seen in the
// pack's CGEventTap-based hotkey recorder.
const (
	kVKA              = 0x00
	kVKS              = 0x01
	kVKD              = 0x02
	kVKF              = 0x03
	kVKH              = 0x04
	kVKG              = 0x05
	kVKZ              = 0x06
	kVKX              = 0x07
	kVKC              = 0x08
	kVKV              = 0x09
	kVKB              = 0x0B
	kVKQ              = 0x0C
	kVKW              = 0x0D
	kVKE              = 0x0E
	kVKR              = 0x0F
	kVKY              = 0x10
	kVKT              = 0x11
	kVK1              = 0x12
	kVK2              = 0x13
	kVK3              = 0x14
	kVK4              = 0x15
	kVK6              = 0x16
	kVK5              = 0x17
	kVKEquals         = 0x18
	kVK9              = 0x19
	kVK7              = 0x1A
	kVKMinus          = 0x1B
	kVK8              = 0x1C
	kVK0              = 0x1D
	kVKRightBracket   = 0x1E
	kVKO              = 0x1F
	kVKU              = 0x20
	kVKLeftBracket    = 0x21
	kVKI              = 0x22
	kVKP              = 0x23
	kVKReturn         = 0x24
	kVKL              = 0x25
	kVKJ              = 0x26
	kVKQuote          = 0x27
	kVKK              = 0x28
	kVKSemicolon      = 0x29
	kVKBackslash      = 0x2A
	kVKComma          = 0x2B
	kVKSlash          = 0x2C
	kVKN              = 0x2D
	kVKM              = 0x2E
	kVKPeriod         = 0x2F
	kVKTab            = 0x30
	kVKSpace          = 0x31
	kVKGrave          = 0x32
	kVKDelete         = 0x33
	kVKEscape         = 0x35
	kVKRightCommand   = 0x36
	kVKCommand        = 0x37
	kVKShift          = 0x38
	kVKCapsLock       = 0x39
	kVKOption         = 0x3A
	kVKControl        = 0x3B
	kVKRightShift     = 0x3C
	kVKRightOption    = 0x3D
	kVKRightControl   = 0x3E
	kVKFunction       = 0x3F
	kVKKeypadDecimal  = 0x41
	kVKKeypadMultiply = 0x43
	kVKKeypadPlus     = 0x45
	kVKKeypadClear    = 0x47
	kVKVolumeUp       = 0x48
	kVKVolumeDown     = 0x49
	kVKMute           = 0x4A
	kVKKeypadDivide   = 0x4B
	kVKKeypadEnter    = 0x4C
	kVKKeypadMinus    = 0x4E
	kVKKeypadEquals   = 0x51
	kVKKeypad0        = 0x52
	kVKKeypad1        = 0x53
	kVKKeypad2        = 0x54
	kVKKeypad3        = 0x55
	kVKKeypad4        = 0x56
	kVKKeypad5        = 0x57
	kVKKeypad6        = 0x58
	kVKKeypad7        = 0x59
	kVKKeypad8        = 0x5B
	kVKKeypad9        = 0x5C
	kVKF5             = 0x60
	kVKF6             = 0x61
	kVKF7             = 0x62
	kVKF3             = 0x63
	kVKF8             = 0x64
	kVKF9             = 0x65
	kVKF11            = 0x67
	kVKF13            = 0x69
	kVKF16            = 0x6A
	kVKF14            = 0x6B
	kVKF10            = 0x6D
	kVKF12            = 0x6F
	kVKF15            = 0x71
	kVKHelp           = 0x72
	kVKHome           = 0x73
	kVKPageUp         = 0x74
	kVKForwardDelete  = 0x75
	kVKF4             = 0x76
	kVKEnd            = 0x77
	kVKF2             = 0x78
	kVKPageDown       = 0x79
	kVKF1             = 0x7A
	kVKLeftArrow      = 0x7B
	kVKRightArrow     = 0x7C
	kVKDownArrow      = 0x7D
	kVKUpArrow        = 0x7E
)

var table = []entry{
	{model.VCA, kVKA}, {model.VCS, kVKS}, {model.VCD, kVKD}, {model.VCF, kVKF},
	{model.VCH, kVKH}, {model.VCG, kVKG}, {model.VCZ, kVKZ}, {model.VCX, kVKX},
	{model.VCC, kVKC}, {model.VCV, kVKV}, {model.VCB, kVKB}, {model.VCQ, kVKQ},
	{model.VCW, kVKW}, {model.VCE, kVKE}, {model.VCR, kVKR}, {model.VCY, kVKY},
	{model.VCT, kVKT}, {model.VC1, kVK1}, {model.VC2, kVK2}, {model.VC3, kVK3},
	{model.VC4, kVK4}, {model.VC6, kVK6}, {model.VC5, kVK5}, {model.VCEquals, kVKEquals},
	{model.VC9, kVK9}, {model.VC7, kVK7}, {model.VCMinus, kVKMinus}, {model.VC8, kVK8},
	{model.VC0, kVK0}, {model.VCCloseBracket, kVKRightBracket}, {model.VCO, kVKO},
	{model.VCU, kVKU}, {model.VCOpenBracket, kVKLeftBracket}, {model.VCI, kVKI},
	{model.VCP, kVKP}, {model.VCEnter, kVKReturn}, {model.VCL, kVKL}, {model.VCJ, kVKJ},
	{model.VCQuote, kVKQuote}, {model.VCK, kVKK}, {model.VCSemicolon, kVKSemicolon},
	{model.VCBackSlash, kVKBackslash}, {model.VCComma, kVKComma}, {model.VCSlash, kVKSlash},
	{model.VCN, kVKN}, {model.VCM, kVKM}, {model.VCPeriod, kVKPeriod}, {model.VCTab, kVKTab},
	{model.VCSpace, kVKSpace}, {model.VCBackquote, kVKGrave}, {model.VCBackspace, kVKDelete},
	{model.VCEscape, kVKEscape}, {model.VCMetaR, kVKRightCommand}, {model.VCMetaL, kVKCommand},
	{model.VCShiftL, kVKShift}, {model.VCCapsLock, kVKCapsLock}, {model.VCAltL, kVKOption},
	{model.VCCtrlL, kVKControl}, {model.VCShiftR, kVKRightShift}, {model.VCAltR, kVKRightOption},
	{model.VCCtrlR, kVKRightControl}, {model.VCKPDecimal, kVKKeypadDecimal},
	{model.VCKPMultiply, kVKKeypadMultiply}, {model.VCKPAdd, kVKKeypadPlus},
	{model.VCVolumeUp, kVKVolumeUp}, {model.VCVolumeDown, kVKVolumeDown}, {model.VCVolumeMute, kVKMute},
	{model.VCKPDivide, kVKKeypadDivide}, {model.VCKPEnter, kVKKeypadEnter},
	{model.VCKPSubtract, kVKKeypadMinus}, {model.VCKP0, kVKKeypad0}, {model.VCKP1, kVKKeypad1},
	{model.VCKP2, kVKKeypad2}, {model.VCKP3, kVKKeypad3}, {model.VCKP4, kVKKeypad4},
	{model.VCKP5, kVKKeypad5}, {model.VCKP6, kVKKeypad6}, {model.VCKP7, kVKKeypad7},
	{model.VCKP8, kVKKeypad8}, {model.VCKP9, kVKKeypad9},
	{model.VCF5, kVKF5}, {model.VCF6, kVKF6}, {model.VCF7, kVKF7}, {model.VCF3, kVKF3},
	{model.VCF8, kVKF8}, {model.VCF9, kVKF9}, {model.VCF11, kVKF11}, {model.VCF13, kVKF13},
	{model.VCF16, kVKF16}, {model.VCF14, kVKF14}, {model.VCF10, kVKF10}, {model.VCF12, kVKF12},
	{model.VCF15, kVKF15}, {model.VCHome, kVKHome}, {model.VCPageUp, kVKPageUp},
	{model.VCDelete, kVKForwardDelete}, {model.VCF4, kVKF4}, {model.VCEnd, kVKEnd},
	{model.VCF2, kVKF2}, {model.VCPageDown, kVKPageDown}, {model.VCF1, kVKF1},
	{model.VCLeft, kVKLeftArrow}, {model.VCRight, kVKRightArrow}, {model.VCDown, kVKDownArrow},
	{model.VCUp, kVKUpArrow},
}

type entry struct {
	vc     model.VirtualCode
	native uint32
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
}

// NativeToVC translates a macOS kVK_* keycode to a VirtualCode.
func NativeToVC(native uint32) model.VirtualCode {
	if vc, ok := nativeToVC[native]; ok {
		return vc
	}
	return model.VCUndefined
}

// VCToNative returns the native kVK_* keycode for vc, or ok=false if unmapped.
func VCToNative(vc model.VirtualCode) (native uint32, ok bool) {
	native, ok = vcToNative[vc]
	return
}

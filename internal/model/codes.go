// Package model holds the data types shared across every iohook component:
// the virtual code space, the modifier mask, and the VirtualEvent record.
// It has no dependency on any other internal package so that both the
// public iohook package and the platform backends (capture, synth, vcode,
// unicode) can import it without creating an import cycle.
package model

// VirtualCode is a stable, platform-independent identifier for a physical
// key or logical input action (spec §3). VCUndefined means "no mapping".
type VirtualCode uint16

const (
	VCUndefined VirtualCode = 0x0000

	// Function row.
	VCEscape VirtualCode = 0x0001
	VCF1     VirtualCode = 0x003B
	VCF2     VirtualCode = 0x003C
	VCF3     VirtualCode = 0x003D
	VCF4     VirtualCode = 0x003E
	VCF5     VirtualCode = 0x003F
	VCF6     VirtualCode = 0x0040
	VCF7     VirtualCode = 0x0041
	VCF8     VirtualCode = 0x0042
	VCF9     VirtualCode = 0x0043
	VCF10    VirtualCode = 0x0044
	VCF11    VirtualCode = 0x0057
	VCF12    VirtualCode = 0x0058
	VCF13    VirtualCode = 0x005B
	VCF14    VirtualCode = 0x005C
	VCF15    VirtualCode = 0x005D
	VCF16    VirtualCode = 0x005E
	VCF17    VirtualCode = 0x005F
	VCF18    VirtualCode = 0x0060
	VCF19    VirtualCode = 0x0061
	VCF20    VirtualCode = 0x0062
	VCF21    VirtualCode = 0x0063
	VCF22    VirtualCode = 0x0064
	VCF23    VirtualCode = 0x0065
	VCF24    VirtualCode = 0x0066

	// Alphanumeric row.
	VCBackquote    VirtualCode = 0x0029
	VC1            VirtualCode = 0x0002
	VC2            VirtualCode = 0x0003
	VC3            VirtualCode = 0x0004
	VC4            VirtualCode = 0x0005
	VC5            VirtualCode = 0x0006
	VC6            VirtualCode = 0x0007
	VC7            VirtualCode = 0x0008
	VC8            VirtualCode = 0x0009
	VC9            VirtualCode = 0x000A
	VC0            VirtualCode = 0x000B
	VCMinus        VirtualCode = 0x000C
	VCEquals       VirtualCode = 0x000D
	VCBackspace    VirtualCode = 0x000E
	VCTab          VirtualCode = 0x000F
	VCQ            VirtualCode = 0x0010
	VCW            VirtualCode = 0x0011
	VCE            VirtualCode = 0x0012
	VCR            VirtualCode = 0x0013
	VCT            VirtualCode = 0x0014
	VCY            VirtualCode = 0x0015
	VCU            VirtualCode = 0x0016
	VCI            VirtualCode = 0x0017
	VCO            VirtualCode = 0x0018
	VCP            VirtualCode = 0x0019
	VCOpenBracket  VirtualCode = 0x001A
	VCCloseBracket VirtualCode = 0x001B
	VCEnter        VirtualCode = 0x001C
	VCA            VirtualCode = 0x001E
	VCS            VirtualCode = 0x001F
	VCD            VirtualCode = 0x0020
	VCF            VirtualCode = 0x0021
	VCG            VirtualCode = 0x0022
	VCH            VirtualCode = 0x0023
	VCJ            VirtualCode = 0x0024
	VCK            VirtualCode = 0x0025
	VCL            VirtualCode = 0x0026
	VCSemicolon    VirtualCode = 0x0027
	VCQuote        VirtualCode = 0x0028
	VCBackSlash    VirtualCode = 0x002B
	VCZ            VirtualCode = 0x002C
	VCX            VirtualCode = 0x002D
	VCC            VirtualCode = 0x002E
	VCV            VirtualCode = 0x002F
	VCB            VirtualCode = 0x0030
	VCN            VirtualCode = 0x0031
	VCM            VirtualCode = 0x0032
	VCComma        VirtualCode = 0x0033
	VCPeriod       VirtualCode = 0x0034
	VCSlash        VirtualCode = 0x0035
	VCSpace        VirtualCode = 0x0039

	// Edit/cursor block.
	VCInsert   VirtualCode = 0x00D2
	VCDelete   VirtualCode = 0x00D3
	VCHome     VirtualCode = 0x00C7
	VCEnd      VirtualCode = 0x00CF
	VCPageUp   VirtualCode = 0x00C9
	VCPageDown VirtualCode = 0x00D1
	VCUp       VirtualCode = 0x00C8
	VCDown     VirtualCode = 0x00D0
	VCLeft     VirtualCode = 0x00CB
	VCRight    VirtualCode = 0x00CD

	// Numpad.
	VCNumLock     VirtualCode = 0x0045
	VCKPDivide    VirtualCode = 0x00B5
	VCKPMultiply  VirtualCode = 0x0037
	VCKPSubtract  VirtualCode = 0x004A
	VCKPAdd       VirtualCode = 0x004E
	VCKPEnter     VirtualCode = 0x009C
	VCKPDecimal   VirtualCode = 0x0053
	VCKP0         VirtualCode = 0x0052
	VCKP1         VirtualCode = 0x004F
	VCKP2         VirtualCode = 0x0050
	VCKP3         VirtualCode = 0x0051
	VCKP4         VirtualCode = 0x004B
	VCKP5         VirtualCode = 0x004C
	VCKP6         VirtualCode = 0x004D
	VCKP7         VirtualCode = 0x0047
	VCKP8         VirtualCode = 0x0048
	VCKP9         VirtualCode = 0x0049

	// Modifiers, distinct L/R variants.
	VCShiftL   VirtualCode = 0x002A
	VCShiftR   VirtualCode = 0x0036
	VCCtrlL    VirtualCode = 0x001D
	VCCtrlR    VirtualCode = 0x009D
	VCAltL     VirtualCode = 0x0038
	VCAltR     VirtualCode = 0x0138
	VCMetaL    VirtualCode = 0x00DB
	VCMetaR    VirtualCode = 0x00DC
	VCContext  VirtualCode = 0x00DD
	VCCapsLock VirtualCode = 0x003A
	VCScroll   VirtualCode = 0x0046

	// Media / browser keys.
	VCVolumeMute  VirtualCode = 0x00A0
	VCVolumeDown  VirtualCode = 0x00AE
	VCVolumeUp    VirtualCode = 0x00B0
	VCMediaPlay   VirtualCode = 0x00A2
	VCMediaStop   VirtualCode = 0x00A4
	VCMediaNext   VirtualCode = 0x00A9
	VCMediaPrev   VirtualCode = 0x00A8
	VCBrowserBack VirtualCode = 0x00EA
	VCBrowserFwd  VirtualCode = 0x00E9
	VCBrowserHome VirtualCode = 0x00B2

	// IME / Asian input keys.
	VCKatakana VirtualCode = 0x0070
	VCKana     VirtualCode = 0x0072
	VCHenkan   VirtualCode = 0x0079
	VCMuhenkan VirtualCode = 0x007B
	VCYen      VirtualCode = 0x007D
	VCUnderbar VirtualCode = 0x0073
)

// Package iohook is the public, flat procedural surface C8 exposes: start
// and stop a capture session, register a dispatch/log callback, inject
// synthetic events, and read the small set of system metrics spec.md
// groups under "simple passthroughs" (spec §6).
//
// Only one session may be active at a time (spec §9: "process-wide globals
// ... model as fields of a singleton session object; forbid parallel
// sessions"). Run/RunKeyboard/RunMouse/Stop operate on that single,
// package-level Session.
package iohook

import "github.com/zhaoq-v/iohook/internal/model"

// Data model aliases (spec §3), re-exported so callers never need to import
// internal/model directly.
type (
	VirtualCode    = model.VirtualCode
	ModifierMask   = model.ModifierMask
	EventType      = model.EventType
	WheelType      = model.WheelType
	WheelDirection = model.WheelDirection
	VirtualEvent   = model.VirtualEvent
	DispatchFunc   = model.DispatchFunc
)

// CharUndefined marks a keyboard event with no typed character.
const CharUndefined = model.CharUndefined

// Virtual code constants (spec 3, C1).
const (
	VCUndefined    VirtualCode = model.VCUndefined
	VCEscape       VirtualCode = model.VCEscape
	VCF1           VirtualCode = model.VCF1
	VCF2           VirtualCode = model.VCF2
	VCF3           VirtualCode = model.VCF3
	VCF4           VirtualCode = model.VCF4
	VCF5           VirtualCode = model.VCF5
	VCF6           VirtualCode = model.VCF6
	VCF7           VirtualCode = model.VCF7
	VCF8           VirtualCode = model.VCF8
	VCF9           VirtualCode = model.VCF9
	VCF10          VirtualCode = model.VCF10
	VCF11          VirtualCode = model.VCF11
	VCF12          VirtualCode = model.VCF12
	VCF13          VirtualCode = model.VCF13
	VCF14          VirtualCode = model.VCF14
	VCF15          VirtualCode = model.VCF15
	VCF16          VirtualCode = model.VCF16
	VCF17          VirtualCode = model.VCF17
	VCF18          VirtualCode = model.VCF18
	VCF19          VirtualCode = model.VCF19
	VCF20          VirtualCode = model.VCF20
	VCF21          VirtualCode = model.VCF21
	VCF22          VirtualCode = model.VCF22
	VCF23          VirtualCode = model.VCF23
	VCF24          VirtualCode = model.VCF24
	VCBackquote    VirtualCode = model.VCBackquote
	VC1            VirtualCode = model.VC1
	VC2            VirtualCode = model.VC2
	VC3            VirtualCode = model.VC3
	VC4            VirtualCode = model.VC4
	VC5            VirtualCode = model.VC5
	VC6            VirtualCode = model.VC6
	VC7            VirtualCode = model.VC7
	VC8            VirtualCode = model.VC8
	VC9            VirtualCode = model.VC9
	VC0            VirtualCode = model.VC0
	VCMinus        VirtualCode = model.VCMinus
	VCEquals       VirtualCode = model.VCEquals
	VCBackspace    VirtualCode = model.VCBackspace
	VCTab          VirtualCode = model.VCTab
	VCQ            VirtualCode = model.VCQ
	VCW            VirtualCode = model.VCW
	VCE            VirtualCode = model.VCE
	VCR            VirtualCode = model.VCR
	VCT            VirtualCode = model.VCT
	VCY            VirtualCode = model.VCY
	VCU            VirtualCode = model.VCU
	VCI            VirtualCode = model.VCI
	VCO            VirtualCode = model.VCO
	VCP            VirtualCode = model.VCP
	VCOpenBracket  VirtualCode = model.VCOpenBracket
	VCCloseBracket VirtualCode = model.VCCloseBracket
	VCEnter        VirtualCode = model.VCEnter
	VCA            VirtualCode = model.VCA
	VCS            VirtualCode = model.VCS
	VCD            VirtualCode = model.VCD
	VCF            VirtualCode = model.VCF
	VCG            VirtualCode = model.VCG
	VCH            VirtualCode = model.VCH
	VCJ            VirtualCode = model.VCJ
	VCK            VirtualCode = model.VCK
	VCL            VirtualCode = model.VCL
	VCSemicolon    VirtualCode = model.VCSemicolon
	VCQuote        VirtualCode = model.VCQuote
	VCBackSlash    VirtualCode = model.VCBackSlash
	VCZ            VirtualCode = model.VCZ
	VCX            VirtualCode = model.VCX
	VCC            VirtualCode = model.VCC
	VCV            VirtualCode = model.VCV
	VCB            VirtualCode = model.VCB
	VCN            VirtualCode = model.VCN
	VCM            VirtualCode = model.VCM
	VCComma        VirtualCode = model.VCComma
	VCPeriod       VirtualCode = model.VCPeriod
	VCSlash        VirtualCode = model.VCSlash
	VCSpace        VirtualCode = model.VCSpace
	VCInsert       VirtualCode = model.VCInsert
	VCDelete       VirtualCode = model.VCDelete
	VCHome         VirtualCode = model.VCHome
	VCEnd          VirtualCode = model.VCEnd
	VCPageUp       VirtualCode = model.VCPageUp
	VCPageDown     VirtualCode = model.VCPageDown
	VCUp           VirtualCode = model.VCUp
	VCDown         VirtualCode = model.VCDown
	VCLeft         VirtualCode = model.VCLeft
	VCRight        VirtualCode = model.VCRight
	VCNumLock      VirtualCode = model.VCNumLock
	VCKPDivide     VirtualCode = model.VCKPDivide
	VCKPMultiply   VirtualCode = model.VCKPMultiply
	VCKPSubtract   VirtualCode = model.VCKPSubtract
	VCKPAdd        VirtualCode = model.VCKPAdd
	VCKPEnter      VirtualCode = model.VCKPEnter
	VCKPDecimal    VirtualCode = model.VCKPDecimal
	VCKP0          VirtualCode = model.VCKP0
	VCKP1          VirtualCode = model.VCKP1
	VCKP2          VirtualCode = model.VCKP2
	VCKP3          VirtualCode = model.VCKP3
	VCKP4          VirtualCode = model.VCKP4
	VCKP5          VirtualCode = model.VCKP5
	VCKP6          VirtualCode = model.VCKP6
	VCKP7          VirtualCode = model.VCKP7
	VCKP8          VirtualCode = model.VCKP8
	VCKP9          VirtualCode = model.VCKP9
	VCShiftL       VirtualCode = model.VCShiftL
	VCShiftR       VirtualCode = model.VCShiftR
	VCCtrlL        VirtualCode = model.VCCtrlL
	VCCtrlR        VirtualCode = model.VCCtrlR
	VCAltL         VirtualCode = model.VCAltL
	VCAltR         VirtualCode = model.VCAltR
	VCMetaL        VirtualCode = model.VCMetaL
	VCMetaR        VirtualCode = model.VCMetaR
	VCContext      VirtualCode = model.VCContext
	VCCapsLock     VirtualCode = model.VCCapsLock
	VCScroll       VirtualCode = model.VCScroll
	VCVolumeMute   VirtualCode = model.VCVolumeMute
	VCVolumeDown   VirtualCode = model.VCVolumeDown
	VCVolumeUp     VirtualCode = model.VCVolumeUp
	VCMediaPlay    VirtualCode = model.VCMediaPlay
	VCMediaStop    VirtualCode = model.VCMediaStop
	VCMediaNext    VirtualCode = model.VCMediaNext
	VCMediaPrev    VirtualCode = model.VCMediaPrev
	VCBrowserBack  VirtualCode = model.VCBrowserBack
	VCBrowserFwd   VirtualCode = model.VCBrowserFwd
	VCBrowserHome  VirtualCode = model.VCBrowserHome
	VCKatakana     VirtualCode = model.VCKatakana
	VCKana         VirtualCode = model.VCKana
	VCHenkan       VirtualCode = model.VCHenkan
	VCMuhenkan     VirtualCode = model.VCMuhenkan
	VCYen          VirtualCode = model.VCYen
	VCUnderbar     VirtualCode = model.VCUnderbar
)

// Modifier mask constants (spec 3, C2).
const (
	MaskShiftL     ModifierMask = model.MaskShiftL
	MaskShiftR     ModifierMask = model.MaskShiftR
	MaskCtrlL      ModifierMask = model.MaskCtrlL
	MaskCtrlR      ModifierMask = model.MaskCtrlR
	MaskMetaL      ModifierMask = model.MaskMetaL
	MaskMetaR      ModifierMask = model.MaskMetaR
	MaskAltL       ModifierMask = model.MaskAltL
	MaskAltR       ModifierMask = model.MaskAltR
	MaskButton1    ModifierMask = model.MaskButton1
	MaskButton2    ModifierMask = model.MaskButton2
	MaskButton3    ModifierMask = model.MaskButton3
	MaskButton4    ModifierMask = model.MaskButton4
	MaskButton5    ModifierMask = model.MaskButton5
	MaskNumLock    ModifierMask = model.MaskNumLock
	MaskCapsLock   ModifierMask = model.MaskCapsLock
	MaskScrollLock ModifierMask = model.MaskScrollLock
)

// Either-side modifier mask combinations (spec §3).
const (
	MaskShift ModifierMask = model.MaskShift
	MaskCtrl  ModifierMask = model.MaskCtrl
	MaskMeta  ModifierMask = model.MaskMeta
	MaskAlt   ModifierMask = model.MaskAlt
)

// Event type constants (spec 3).
const (
	HookEnabled                EventType = model.HookEnabled
	HookDisabled               EventType = model.HookDisabled
	KeyTyped                   EventType = model.KeyTyped
	KeyPressed                 EventType = model.KeyPressed
	KeyReleased                EventType = model.KeyReleased
	MouseClicked               EventType = model.MouseClicked
	MousePressed               EventType = model.MousePressed
	MouseReleased              EventType = model.MouseReleased
	MouseMoved                 EventType = model.MouseMoved
	MouseDragged               EventType = model.MouseDragged
	MouseWheel                 EventType = model.MouseWheel
	MousePressedIgnoreCoords   EventType = model.MousePressedIgnoreCoords
	MouseReleasedIgnoreCoords  EventType = model.MouseReleasedIgnoreCoords
	MouseMovedRelativeToCursor EventType = model.MouseMovedRelativeToCursor
)

// Wheel sub-type constants (spec 3).
const (
	WheelUnitScroll  WheelType = model.WheelUnitScroll
	WheelBlockScroll WheelType = model.WheelBlockScroll
)

const (
	WheelVertical   WheelDirection = model.WheelVertical
	WheelHorizontal WheelDirection = model.WheelHorizontal
)

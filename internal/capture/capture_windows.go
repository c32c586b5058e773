//go:build windows

package capture

import (
	"sync"
	"syscall"
	"unsafe"

	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/logging"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
	"github.com/zhaoq-v/iohook/internal/monitor"
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	wmMouseMove    = 0x0200
	wmLButtonDown  = 0x0201
	wmLButtonUp    = 0x0202
	wmRButtonDown  = 0x0204
	wmRButtonUp    = 0x0205
	wmMButtonDown  = 0x0207
	wmMButtonUp    = 0x0208
	wmMouseWheel   = 0x020A
	wmXButtonDown  = 0x020B
	wmXButtonUp    = 0x020C
	wmMouseHWheel  = 0x020E
	wmDisplayChang = 0x007E
	wmClose        = 0x0010
	wmDestroy      = 0x0002
	wmQuit         = 0x0012
	wmUser         = 0x0400

	xbutton1 = 0x0001
	xbutton2 = 0x0002

	llKHFExtended = 0x01

	vkLShift    = 0xA0
	vkRShift    = 0xA1
	vkLControl  = 0xA2
	vkRControl  = 0xA3
	vkLMenu     = 0xA4
	vkRMenu     = 0xA5
	vkLWin      = 0x5B
	vkRWin      = 0x5C
	vkCapital   = 0x14
	vkNumlock   = 0x90
	vkScroll    = 0x91
	vkLButton   = 0x01
	vkRButton   = 0x02
	vkMButton   = 0x04
	vkXButton1  = 0x05
	vkXButton2  = 0x06
)

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procSetWindowsHookEx  = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHook = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx    = user32.NewProc("CallNextHookEx")
	procGetMessage        = user32.NewProc("GetMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessage   = user32.NewProc("DispatchMessageW")
	procPostThreadMessage = user32.NewProc("PostThreadMessageW")
	procPostMessage       = user32.NewProc("PostMessageW")
	procDefWindowProc     = user32.NewProc("DefWindowProcW")
	procCreateWindowEx    = user32.NewProc("CreateWindowExW")
	procDestroyWindow     = user32.NewProc("DestroyWindow")
	procRegisterClass     = user32.NewProc("RegisterClassExW")
	procGetModuleHandle   = kernel32.NewProc("GetModuleHandleW")
	procGetCurrentThread  = kernel32.NewProc("GetCurrentThreadId")
	procGetKeyState       = user32.NewProc("GetKeyState")
)

type kbdllhookstruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msllhookstruct struct {
	Pt          point
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type wndclassex struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

// backend implements Backend for Windows low-level hooks + an invisible
// message-only window, grounded on the teacher's syscall.NewLazyDLL binding
// style (internal/remote/desktop/input_windows.go) and the hook-callback
// shape from the pack's clipqueue input listener.
type backend struct {
	mu         sync.Mutex
	kbHook     uintptr
	mouseHook  uintptr
	hwnd       uintptr
	threadID   uint32
	stopCalled bool
}

func New() Backend { return &backend{} }

func (b *backend) Run(mode Mode, sink Sink) error {
	b.mu.Lock()
	tid, _, _ := procGetCurrentThread.Call()
	b.threadID = uint32(tid)
	b.mu.Unlock()

	monitor.Refresh()
	globalSink = sink

	hwnd, err := b.createMessageWindow()
	if err != nil {
		return err
	}
	b.hwnd = hwnd

	if mode == ModeBoth || mode == ModeKeyboardOnly {
		h, err := b.installKeyboardHook(sink)
		if err != nil {
			b.teardown()
			return err
		}
		b.kbHook = h
	}
	if mode == ModeBoth || mode == ModeMouseOnly {
		h, err := b.installMouseHook(sink)
		if err != nil {
			// Keyboard-only may still proceed without the mouse hook
			// (spec §4.3: "a mid-run failure on one platform channel
			// does not stop the other").
			logging.L("capture").Warn("mouse hook install failed", "err", err)
		} else {
			b.mouseHook = h
		}
	}

	modstate.Init(pollInitialMask())
	sink.HookEnabled()

	b.pumpMessages()
	return nil
}

func (b *backend) pumpMessages() {
	var m msg
	for {
		r, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(r) <= 0 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
	if globalSink != nil {
		globalSink.HookDisabled()
	}
	b.teardown()
}

// getKeyState reports whether vk is currently held down, via the high-order
// bit of GetKeyState's result.
func getKeyState(vk int) bool {
	r, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(r) < 0
}

// getKeyToggled reports whether vk's toggle state (caps/num/scroll lock) is
// currently on, via the low-order bit of GetKeyState's result.
func getKeyToggled(vk int) bool {
	r, _, _ := procGetKeyState.Call(uintptr(vk))
	return r&1 != 0
}

// pollInitialMask queries modifier keys, mouse buttons, and lock-key toggle
// state at hook start, per spec §4.2's requirement to recover correct
// modifier state rather than assume everything starts released.
func pollInitialMask() model.ModifierMask {
	var mask model.ModifierMask

	for vk, m := range map[int]model.ModifierMask{
		vkLShift: model.MaskShiftL, vkRShift: model.MaskShiftR,
		vkLControl: model.MaskCtrlL, vkRControl: model.MaskCtrlR,
		vkLMenu: model.MaskAltL, vkRMenu: model.MaskAltR,
		vkLWin: model.MaskMetaL, vkRWin: model.MaskMetaR,
	} {
		if getKeyState(vk) {
			mask |= m
		}
	}

	for vk, m := range map[int]model.ModifierMask{
		vkLButton: model.MaskButton1, vkRButton: model.MaskButton2,
		vkMButton: model.MaskButton3, vkXButton1: model.MaskButton4,
		vkXButton2: model.MaskButton5,
	} {
		if getKeyState(vk) {
			mask |= m
		}
	}

	if getKeyToggled(vkCapital) {
		mask |= model.MaskCapsLock
	}
	if getKeyToggled(vkNumlock) {
		mask |= model.MaskNumLock
	}
	if getKeyToggled(vkScroll) {
		mask |= model.MaskScrollLock
	}

	return mask
}

func (b *backend) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopCalled {
		return
	}
	b.stopCalled = true
	if b.hwnd != 0 {
		procPostMessage.Call(b.hwnd, wmClose, 0, 0)
	}
	if b.threadID != 0 {
		procPostThreadMessage.Call(uintptr(b.threadID), wmQuit, 0, 0)
	}
}

func (b *backend) teardown() {
	if b.kbHook != 0 {
		procUnhookWindowsHook.Call(b.kbHook)
		b.kbHook = 0
	}
	if b.mouseHook != 0 {
		procUnhookWindowsHook.Call(b.mouseHook)
		b.mouseHook = 0
	}
	if b.hwnd != 0 {
		procDestroyWindow.Call(b.hwnd)
		b.hwnd = 0
	}
}

func (b *backend) installKeyboardHook(sink Sink) (uintptr, error) {
	callback := func(nCode int, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			kb := (*kbdllhookstruct)(unsafe.Pointer(lParam))
			down := wParam == wmKeyDown || wParam == wmSysKeyDown
			up := wParam == wmKeyUp || wParam == wmSysKeyUp
			if down || up {
				ev := KeyEvent{
					Down:     down,
					Native:   kb.VkCode,
					Extended: kb.Flags&llKHFExtended != 0,
					Time:     int64(kb.Time),
				}
				if sink.KeyEvent(ev) {
					return 1
				}
			}
		}
		r, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return r
	}

	h, _, err := procSetWindowsHookEx.Call(
		whKeyboardLL,
		syscall.NewCallback(callback),
		0,
		0,
	)
	if h == 0 {
		return 0, ioherr.Wrap(ioherr.WinHookInstall, err)
	}
	return h, nil
}

func (b *backend) installMouseHook(sink Sink) (uintptr, error) {
	callback := func(nCode int, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			m := (*msllhookstruct)(unsafe.Pointer(lParam))
			x, y := int16(m.Pt.X), int16(m.Pt.Y)
			consumed := false

			switch wParam {
			case wmMouseMove:
				consumed = sink.MouseMove(MouseMoveEvent{X: x, Y: y, Time: int64(m.Time)})
			case wmLButtonDown:
				consumed = sink.MouseButton(MouseButtonEvent{Down: true, Button: 1, X: x, Y: y, Time: int64(m.Time)})
			case wmLButtonUp:
				consumed = sink.MouseButton(MouseButtonEvent{Down: false, Button: 1, X: x, Y: y, Time: int64(m.Time)})
			case wmRButtonDown:
				consumed = sink.MouseButton(MouseButtonEvent{Down: true, Button: 2, X: x, Y: y, Time: int64(m.Time)})
			case wmRButtonUp:
				consumed = sink.MouseButton(MouseButtonEvent{Down: false, Button: 2, X: x, Y: y, Time: int64(m.Time)})
			case wmMButtonDown:
				consumed = sink.MouseButton(MouseButtonEvent{Down: true, Button: 3, X: x, Y: y, Time: int64(m.Time)})
			case wmMButtonUp:
				consumed = sink.MouseButton(MouseButtonEvent{Down: false, Button: 3, X: x, Y: y, Time: int64(m.Time)})
			case wmXButtonDown:
				btn := xButtonIndex(m.MouseData)
				consumed = sink.MouseButton(MouseButtonEvent{Down: true, Button: btn, X: x, Y: y, Time: int64(m.Time)})
			case wmXButtonUp:
				btn := xButtonIndex(m.MouseData)
				consumed = sink.MouseButton(MouseButtonEvent{Down: false, Button: btn, X: x, Y: y, Time: int64(m.Time)})
			case wmMouseWheel:
				rot := int16(m.MouseData >> 16)
				consumed = sink.MouseWheel(MouseWheelEvent{Vertical: true, Rotation: rot, Delta: int32(rot), X: x, Y: y, Time: int64(m.Time)})
			case wmMouseHWheel:
				rot := int16(m.MouseData >> 16)
				consumed = sink.MouseWheel(MouseWheelEvent{Vertical: false, Rotation: rot, Delta: int32(rot), X: x, Y: y, Time: int64(m.Time)})
			}

			if consumed {
				return 1
			}
		}
		r, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return r
	}

	h, _, err := procSetWindowsHookEx.Call(
		whMouseLL,
		syscall.NewCallback(callback),
		0,
		0,
	)
	if h == 0 {
		return 0, ioherr.Wrap(ioherr.WinHookInstall, err)
	}
	return h, nil
}

// xButtonIndex decodes the high word of MouseData for WM_XBUTTONDOWN/UP into
// a 1-based button index: XBUTTON1 -> 4, XBUTTON2 -> 5. The source's habit
// of hard-coding button 5 for any unrecognized XBUTTON value is the bug
// flagged as an open question; this decodes the real value instead.
func xButtonIndex(mouseData uint32) int {
	switch uint16(mouseData >> 16) {
	case xbutton1:
		return 4
	case xbutton2:
		return 5
	default:
		return int(uint16(mouseData>>16)) + 3
	}
}

var messageWndProc = syscall.NewCallback(func(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	switch message {
	case wmDisplayChang:
		monitor.Refresh()
		if globalSink != nil {
			globalSink.DisplayChanged()
		}
		return 0
	case wmClose:
		procDestroyWindow.Call(hwnd)
		return 0
	case wmDestroy:
		procPostThreadMessage.Call(uintptr(procGetCurrentThreadID()), wmQuit, 0, 0)
		return 0
	}
	r, _, _ := procDefWindowProc.Call(hwnd, uintptr(message), wParam, lParam)
	return r
})

// globalSink lets the message-only window's WndProc reach the active Sink
// for WM_DISPLAYCHANGE notifications; at most one session is ever active
// (spec §1 Non-goals), so a package-level pointer is safe.
var globalSink Sink

func procGetCurrentThreadID() uint32 {
	tid, _, _ := procGetCurrentThread.Call()
	return uint32(tid)
}

func (b *backend) createMessageWindow() (uintptr, error) {
	inst, _, _ := procGetModuleHandle.Call(0)
	if inst == 0 {
		return 0, ioherr.New(ioherr.WinModule)
	}

	className, _ := syscall.UTF16PtrFromString("IOHookMessageWindow")
	var wc wndclassex
	wc.Size = uint32(unsafe.Sizeof(wc))
	wc.WndProc = messageWndProc
	wc.Instance = inst
	wc.ClassName = className
	procRegisterClass.Call(uintptr(unsafe.Pointer(&wc)))

	const hwndMessage = ^uintptr(2) + 1 // -3, HWND_MESSAGE
	hwnd, _, err := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		0,
		0, 0, 0, 0, 0,
		hwndMessage,
		0,
		inst,
		0,
	)
	if hwnd == 0 {
		return 0, ioherr.Wrap(ioherr.WinWindow, err)
	}
	return hwnd, nil
}

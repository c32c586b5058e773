//go:build windows

package synth

import (
	"syscall"
	"unsafe"

	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/monitor"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	mouseeventfMove       = 0x0001
	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040
	mouseeventfXDown      = 0x0080
	mouseeventfXUp        = 0x0100
	mouseeventfWheel      = 0x0800
	mouseeventfHWheel     = 0x01000
	mouseeventfAbsolute   = 0x8000
	mouseeventfVirtualDsk = 0x4000

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
	keyeventfUnicode     = 0x0004

	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79

	xbutton1 = 0x0001
	xbutton2 = 0x0002
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procSendInput        = user32.NewProc("SendInput")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
)

type mouseInputRecord struct {
	inputType uint32
	_         uint32
	dx, dy    int32
	mouseData uint32
	dwFlags   uint32
	time      uint32
	extraInfo uintptr
}

type keybdInputRecord struct {
	inputType uint32
	_         uint32
	wVk       uint16
	wScan     uint16
	dwFlags   uint32
	time      uint32
	extraInfo uintptr
}

type point struct{ X, Y int32 }

type injector struct{}

func New() Injector { return injector{} }

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
	var flags uint32
	if ev.Type == model.KeyReleased {
		flags |= keyeventfKeyUp
	}
	rec := keybdInputRecord{inputType: inputKeyboard, wVk: uint16(native), dwFlags: flags}
	return sendInputs(unsafe.Pointer(&rec), unsafe.Sizeof(rec), 1)
}

// postMouseButton optionally moves the cursor to the event's coordinates
// before the press/release, per spec §4.7; the _IGNORE_COORDS variants skip
// the move step.
func postMouseButton(ev *model.VirtualEvent, moveFirst bool) error {
	if moveFirst {
		if err := postMouseMove(ev.X, ev.Y); err != nil {
			return err
		}
	}

	down := ev.Type == model.MousePressed || ev.Type == model.MousePressedIgnoreCoords
	var flags uint32
	var mouseData uint32
	switch ev.Button {
	case 1:
		flags = pick(down, mouseeventfLeftDown, mouseeventfLeftUp)
	case 2:
		flags = pick(down, mouseeventfRightDown, mouseeventfRightUp)
	case 3:
		flags = pick(down, mouseeventfMiddleDown, mouseeventfMiddleUp)
	case 4:
		flags = pick(down, mouseeventfXDown, mouseeventfXUp)
		mouseData = xbutton1
	case 5:
		flags = pick(down, mouseeventfXDown, mouseeventfXUp)
		mouseData = xbutton2
	default:
		return ioherr.New(ioherr.Failure)
	}

	rec := mouseInputRecord{inputType: inputMouse, dwFlags: flags, mouseData: mouseData}
	return sendInputs(unsafe.Pointer(&rec), unsafe.Sizeof(rec), 1)
}

func pick(down bool, onDown, onUp uint32) uint32 {
	if down {
		return onDown
	}
	return onUp
}

func postMouseMove(x, y int16) error {
	dx, dy := normalize(x, y)
	rec := mouseInputRecord{
		inputType: inputMouse,
		dx:        dx, dy: dy,
		dwFlags: mouseeventfMove | mouseeventfAbsolute | mouseeventfVirtualDsk,
	}
	return sendInputs(unsafe.Pointer(&rec), unsafe.Sizeof(rec), 1)
}

func postMouseRelative(dx, dy int16) error {
	var cur point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&cur)))
	return postMouseMove(int16(cur.X)+dx, int16(cur.Y)+dy)
}

func postWheel(ev *model.VirtualEvent) error {
	flags := uint32(mouseeventfWheel)
	if ev.WheelDirection == model.WheelHorizontal {
		flags = mouseeventfHWheel
	}
	rec := mouseInputRecord{inputType: inputMouse, dwFlags: flags, mouseData: uint32(int32(ev.Rotation))}
	return sendInputs(unsafe.Pointer(&rec), unsafe.Sizeof(rec), 1)
}

// normalize maps a virtual-screen (x, y) into the [0, 65535] absolute space
// SendInput requires for MOUSEEVENTF_ABSOLUTE|MOUSEEVENTF_VIRTUALDESK (spec
// §4.7, testable property 7).
func normalize(x, y int16) (int32, int32) {
	width, _, _ := procGetSystemMetrics.Call(smCXVirtualScreen)
	height, _, _ := procGetSystemMetrics.Call(smCYVirtualScreen)
	left, top := monitor.Origin()

	nx := int32(x) + abs32(left)
	ny := int32(y) + abs32(top)

	if width == 0 || height == 0 {
		return 0, 0
	}
	return mulDiv(nx, 65535, int32(width)), mulDiv(ny, 65535, int32(height))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func mulDiv(v, num, den int32) int32 {
	return int32(int64(v) * int64(num) / int64(den))
}

func (injector) PostText(units []uint16) error {
	if len(units) == 0 {
		return ioherr.New(ioherr.NullText)
	}
	recs := make([]keybdInputRecord, 0, len(units)*2)
	for _, u := range units {
		recs = append(recs,
			keybdInputRecord{inputType: inputKeyboard, wScan: u, dwFlags: keyeventfUnicode},
			keybdInputRecord{inputType: inputKeyboard, wScan: u, dwFlags: keyeventfUnicode | keyeventfKeyUp},
		)
	}
	return sendInputs(unsafe.Pointer(&recs[0]), unsafe.Sizeof(recs[0]), uint32(len(recs)))
}

func sendInputs(ptr unsafe.Pointer, size uintptr, n uint32) error {
	ret, _, err := procSendInput.Call(uintptr(n), uintptr(ptr), size)
	if ret == 0 {
		return ioherr.Wrap(ioherr.Failure, err)
	}
	return nil
}

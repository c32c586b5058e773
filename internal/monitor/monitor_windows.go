//go:build windows

// Package monitor implements C3 (the Windows-only virtual-screen origin
// cache used by coordinate normalization, spec §4.7) plus, on every
// platform, the monitor enumeration and keyboard/pointer system-metric
// passthroughs behind create_screen_info and get_auto_repeat_rate/delay
// etc. (spec §6). The origin cache is grounded on the teacher's
// syscall.NewLazyDLL binding style (internal/remote/desktop/input_windows.go)
// rather than its DXGI-based ListMonitors, which enumerates far more than
// the single cached origin C3 needs (see DESIGN.md).
package monitor

import (
	"sync"
	"syscall"
	"unsafe"
)

var (
	user32              = syscall.NewLazyDLL("user32.dll")
	procEnumDisplayMons = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW = user32.NewProc("GetMonitorInfoW")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfo struct {
	Size    uint32
	Monitor rect
	WorkPos rect
	Flags   uint32
	Device  [32]uint16
}

var (
	mu       sync.RWMutex
	leftOrig int32
	topOrig  int32
)

// Refresh walks every attached monitor and caches the most-negative
// virtual-screen (left, top) origin. Call at hook start and again on
// WM_DISPLAYCHANGE.
func Refresh() {
	var left, top int32

	cb := syscall.NewCallback(func(hMonitor uintptr, hdc uintptr, lprc uintptr, lParam uintptr) uintptr {
		var info monitorInfo
		info.Size = uint32(unsafe.Sizeof(info))
		procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
		if info.Monitor.Left < left {
			left = info.Monitor.Left
		}
		if info.Monitor.Top < top {
			top = info.Monitor.Top
		}
		return 1 // continue enumeration
	})

	procEnumDisplayMons.Call(0, 0, cb, 0)

	mu.Lock()
	leftOrig, topOrig = left, top
	mu.Unlock()
}

// Origin returns the cached (left, top) of the most-negative virtual-screen
// coordinate observed across all monitors.
func Origin() (left, top int32) {
	mu.RLock()
	defer mu.RUnlock()
	return leftOrig, topOrig
}

// ScreenInfo describes one attached monitor, for create_screen_info (spec §6).
type ScreenInfo struct {
	X, Y, Width, Height int32
	IsPrimary           bool
}

const monitorInfofPrimary = 0x1

// Enumerate walks every attached monitor and returns its bounds, the same
// EnumDisplayMonitors pass Refresh makes, kept separate since most callers of
// Refresh only need the cached origin, not a full per-monitor breakdown.
func Enumerate() []ScreenInfo {
	var screens []ScreenInfo

	cb := syscall.NewCallback(func(hMonitor uintptr, hdc uintptr, lprc uintptr, lParam uintptr) uintptr {
		var info monitorInfo
		info.Size = uint32(unsafe.Sizeof(info))
		procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
		screens = append(screens, ScreenInfo{
			X:         info.Monitor.Left,
			Y:         info.Monitor.Top,
			Width:     info.Monitor.Right - info.Monitor.Left,
			Height:    info.Monitor.Bottom - info.Monitor.Top,
			IsPrimary: info.Flags&monitorInfofPrimary != 0,
		})
		return 1
	})

	procEnumDisplayMons.Call(0, 0, cb, 0)
	return screens
}

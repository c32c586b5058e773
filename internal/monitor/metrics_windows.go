//go:build windows

package monitor

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// System-metric passthroughs (spec §6), grounded on the teacher's
// wallpaper_windows.go SystemParametersInfoW wiring, rebuilt on
// golang.org/x/sys/windows's LazyDLL in place of the teacher's raw
// syscall.NewLazyDLL so this one new concern exercises the dependency
// SPEC_FULL.md calls out for Windows typed wrappers.
const (
	spiGetKeyboardSpeed = 0x000A
	spiGetKeyboardDelay = 0x0016
	spiGetMouse         = 0x0003
	spiGetMouseSpeed    = 0x0070
)

var (
	metricsUser32             = windows.NewLazySystemDLL("user32.dll")
	procMetricsSPI            = metricsUser32.NewProc("SystemParametersInfoW")
	procMetricsGetDoubleClick = metricsUser32.NewProc("GetDoubleClickTime")
)

// GetAutoRepeatRate returns the configured keyboard repeat rate, 0 (slowest)
// to 31 (fastest), per SPI_GETKEYBOARDSPEED.
func GetAutoRepeatRate() int32 {
	var speed uint32
	procMetricsSPI.Call(spiGetKeyboardSpeed, 0, uintptr(unsafe.Pointer(&speed)), 0)
	return int32(speed)
}

// GetAutoRepeatDelay returns the configured keyboard repeat delay, 0
// (shortest) to 3 (longest), per SPI_GETKEYBOARDDELAY.
func GetAutoRepeatDelay() int32 {
	var delay uint32
	procMetricsSPI.Call(spiGetKeyboardDelay, 0, uintptr(unsafe.Pointer(&delay)), 0)
	return int32(delay)
}

// GetPointerAccelerationThreshold returns the first SPI_GETMOUSE threshold
// (mickeys before the first acceleration step applies).
func GetPointerAccelerationThreshold() int32 {
	var params [3]int32
	procMetricsSPI.Call(spiGetMouse, 0, uintptr(unsafe.Pointer(&params[0])), 0)
	return params[0]
}

// GetPointerAccelerationMultiplier returns the SPI_GETMOUSE acceleration
// level: 0 (off), 1 or 2 (increasingly aggressive).
func GetPointerAccelerationMultiplier() int32 {
	var params [3]int32
	procMetricsSPI.Call(spiGetMouse, 0, uintptr(unsafe.Pointer(&params[0])), 0)
	return params[2]
}

// GetPointerSensitivity returns the SPI_GETMOUSESPEED pointer speed, 1
// (slowest) to 20 (fastest).
func GetPointerSensitivity() int32 {
	var speed uint32
	procMetricsSPI.Call(spiGetMouseSpeed, 0, uintptr(unsafe.Pointer(&speed)), 0)
	return int32(speed)
}

// GetMultiClickTime returns the maximum interval, in milliseconds, between
// clicks of a multi-click sequence.
func GetMultiClickTime() int32 {
	ret, _, _ := procMetricsGetDoubleClick.Call()
	return int32(ret)
}

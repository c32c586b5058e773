//go:build linux

package monitor

/*
#cgo pkg-config: x11 xtst xrandr
#include <X11/Xlib.h>
#include <X11/XKBlib.h>
#include <X11/extensions/Xrandr.h>

static Display *iohookMetricsDisplay = NULL;

static int iohookMetricsInit(void) {
	if (iohookMetricsDisplay) return 0;
	iohookMetricsDisplay = XOpenDisplay(NULL);
	return iohookMetricsDisplay ? 0 : -1;
}

static void iohookXkbRepeat(int *delayMs, int *intervalMs) {
	XkbDescPtr desc = XkbAllocKeyboard();
	if (!desc) return;
	XkbGetControls(iohookMetricsDisplay, XkbRepeatKeysMask, desc);
	if (desc->ctrls) {
		*delayMs = desc->ctrls->repeat_delay;
		*intervalMs = desc->ctrls->repeat_interval;
	}
	XkbFreeKeyboard(desc, 0, True);
}

static void iohookPointerControl(int *accelNum, int *accelDenom, int *threshold) {
	XGetPointerControl(iohookMetricsDisplay, accelNum, accelDenom, threshold);
}

static int iohookScreenCount(void) {
	int event, error;
	if (!XRRQueryExtension(iohookMetricsDisplay, &event, &error)) return 1;
	XRRScreenResources *res = XRRGetScreenResourcesCurrent(iohookMetricsDisplay,
		DefaultRootWindow(iohookMetricsDisplay));
	if (!res) return 1;
	int n = res->noutput;
	XRRFreeScreenResources(res);
	return n > 0 ? n : 1;
}

static void iohookScreenBounds(int index, int *x, int *y, int *w, int *h, int *primary) {
	Window root = DefaultRootWindow(iohookMetricsDisplay);
	XRRScreenResources *res = XRRGetScreenResourcesCurrent(iohookMetricsDisplay, root);
	RROutput primaryOutput = XRRGetOutputPrimary(iohookMetricsDisplay, root);
	if (!res || index >= res->noutput) {
		*x = 0; *y = 0;
		*w = DisplayWidth(iohookMetricsDisplay, DefaultScreen(iohookMetricsDisplay));
		*h = DisplayHeight(iohookMetricsDisplay, DefaultScreen(iohookMetricsDisplay));
		*primary = 1;
		if (res) XRRFreeScreenResources(res);
		return;
	}
	RROutput output = res->outputs[index];
	XRROutputInfo *info = XRRGetOutputInfo(iohookMetricsDisplay, res, output);
	if (info && info->crtc) {
		XRRCrtcInfo *crtc = XRRGetCrtcInfo(iohookMetricsDisplay, res, info->crtc);
		*x = crtc->x; *y = crtc->y; *w = crtc->width; *h = crtc->height;
		XRRFreeCrtcInfo(crtc);
	} else {
		*x = 0; *y = 0; *w = 0; *h = 0;
	}
	*primary = (output == primaryOutput) ? 1 : 0;
	if (info) XRRFreeOutputInfo(info);
	XRRFreeScreenResources(res);
}
*/
import "C"

// Refresh and Origin are no-ops on Linux: coordinate normalization (spec
// §4.7) is Windows-only (C3). Kept so root-package session code can call
// monitor.Refresh()/Origin() without a platform build tag of its own.
func Refresh() {}

func Origin() (left, top int32) { return 0, 0 }

// ScreenInfo describes one RandR output, for create_screen_info (spec §6).
type ScreenInfo struct {
	X, Y, Width, Height int32
	IsPrimary           bool
}

func init() {
	C.iohookMetricsInit()
}

// Enumerate lists every RandR output, grounded on the same Xlib cgo
// conventions as capture_linux.go/synth_linux.go.
func Enumerate() []ScreenInfo {
	n := int(C.iohookScreenCount())
	screens := make([]ScreenInfo, 0, n)
	for i := 0; i < n; i++ {
		var x, y, w, h, primary C.int
		C.iohookScreenBounds(C.int(i), &x, &y, &w, &h, &primary)
		screens = append(screens, ScreenInfo{
			X: int32(x), Y: int32(y), Width: int32(w), Height: int32(h),
			IsPrimary: primary != 0,
		})
	}
	return screens
}

// System-metric passthroughs (spec §6), via XkbGetControls (repeat rate/delay)
// and XGetPointerControl (acceleration), the two Xlib calls libuiohook's own
// X11 backend reaches for; grounded on the cgo/Xlib conventions shared with
// capture_linux.go and synth_linux.go.
func GetAutoRepeatDelay() int32 {
	var delay, interval C.int
	C.iohookXkbRepeat(&delay, &interval)
	return int32(delay)
}

func GetAutoRepeatRate() int32 {
	var delay, interval C.int
	C.iohookXkbRepeat(&delay, &interval)
	if interval == 0 {
		return 0
	}
	return int32(1000 / interval)
}

func GetPointerAccelerationMultiplier() int32 {
	var num, denom, threshold C.int
	C.iohookPointerControl(&num, &denom, &threshold)
	if denom == 0 {
		return 0
	}
	return int32(num / denom)
}

func GetPointerAccelerationThreshold() int32 {
	var num, denom, threshold C.int
	C.iohookPointerControl(&num, &denom, &threshold)
	return int32(threshold)
}

func GetPointerSensitivity() int32 {
	var num, denom, threshold C.int
	C.iohookPointerControl(&num, &denom, &threshold)
	return int32(denom)
}

// GetMultiClickTime returns the multi-click interval in milliseconds. X11
// has no standard query for this (it is a toolkit/desktop-environment
// setting, not a core protocol value), so this mirrors libuiohook's fallback
// default of 200ms rather than reading a nonexistent property.
func GetMultiClickTime() int32 {
	return 200
}

//go:build darwin

package monitor

/*
#cgo LDFLAGS: -framework CoreFoundation -framework CoreGraphics
#include <CoreFoundation/CoreFoundation.h>
#include <CoreGraphics/CoreGraphics.h>

static double iohookPrefDouble(CFStringRef key, double fallback) {
	CFPropertyListRef value = CFPreferencesCopyValue(key, CFSTR(".GlobalPreferences"),
		kCFPreferencesCurrentUser, kCFPreferencesAnyHost);
	if (!value) return fallback;
	double out = fallback;
	if (CFGetTypeID(value) == CFNumberGetTypeID()) {
		CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, &out);
	}
	CFRelease(value);
	return out;
}

static int iohookDisplayCount(void) {
	uint32_t count = 0;
	CGGetActiveDisplayList(0, NULL, &count);
	return (int)count;
}

static void iohookDisplayBounds(int index, double *x, double *y, double *w, double *h, int *primary) {
	CGDirectDisplayID ids[64];
	uint32_t count = 0;
	CGGetActiveDisplayList(64, ids, &count);
	if ((uint32_t)index >= count) return;
	CGRect b = CGDisplayBounds(ids[index]);
	*x = b.origin.x;
	*y = b.origin.y;
	*w = b.size.width;
	*h = b.size.height;
	*primary = CGDisplayIsMain(ids[index]) ? 1 : 0;
}
*/
import "C"

// Refresh and Origin are no-ops on macOS: coordinate normalization (spec
// §4.7) is Windows-only (C3). Kept so root-package session code can call
// monitor.Refresh()/Origin() without a platform build tag of its own.
func Refresh() {}

func Origin() (left, top int32) { return 0, 0 }

// ScreenInfo describes one active display, for create_screen_info (spec §6).
type ScreenInfo struct {
	X, Y, Width, Height int32
	IsPrimary           bool
}

// Enumerate lists every active display via CGGetActiveDisplayList.
func Enumerate() []ScreenInfo {
	n := int(C.iohookDisplayCount())
	screens := make([]ScreenInfo, 0, n)
	for i := 0; i < n; i++ {
		var x, y, w, h C.double
		var primary C.int
		C.iohookDisplayBounds(C.int(i), &x, &y, &w, &h, &primary)
		screens = append(screens, ScreenInfo{
			X: int32(x), Y: int32(y), Width: int32(w), Height: int32(h),
			IsPrimary: primary != 0,
		})
	}
	return screens
}

// System-metric passthroughs (spec §6). No pack example reads macOS global
// keyboard/mouse preferences, so these are grounded on the general
// CFPreferences/CoreGraphics cgo conventions already used by capture_darwin.go
// and mainthread_darwin.go rather than on a specific prior-art file (see
// DESIGN.md).
func GetAutoRepeatRate() int32 {
	// KeyRepeat is in 2ms units (NSEvent legacy scale); lower is faster.
	return int32(C.iohookPrefDouble(C.CFSTR("KeyRepeat"), 6))
}

func GetAutoRepeatDelay() int32 {
	return int32(C.iohookPrefDouble(C.CFSTR("InitialKeyRepeat"), 25))
}

func GetPointerAccelerationMultiplier() int32 {
	return int32(C.iohookPrefDouble(C.CFSTR("com.apple.mouse.scaling"), 1) * 100)
}

func GetPointerAccelerationThreshold() int32 {
	return int32(C.iohookPrefDouble(C.CFSTR("com.apple.mouse.linear"), 0))
}

func GetPointerSensitivity() int32 {
	return int32(C.iohookPrefDouble(C.CFSTR("com.apple.trackpad.scaling"), 1) * 100)
}

func GetMultiClickTime() int32 {
	return int32(C.iohookPrefDouble(C.CFSTR("com.apple.mouse.doubleClickThreshold"), 0.5) * 1000)
}

//go:build linux

package vcode

import (
	"testing"

	"github.com/zhaoq-v/iohook/internal/model"
)

// TestDiscoverRoundTrip exercises testable property 1: for any native code
// n that Discover maps to a VC, VCToNative(NativeToVC(n)) == n when n is
// the canonical (first) keycode for that VC.
func TestDiscoverRoundTrip(t *testing.T) {
	names := map[uint8]string{
		38: "AC01", // VCA
		25: "AD03", // VCE
		36: "RTRN", // VCEnter
		50: "LFSH", // VCShiftL
	}
	Discover(names)

	if !Discovered() {
		t.Fatal("Discovered() = false after Discover")
	}

	cases := []struct {
		native uint8
		want   model.VirtualCode
	}{
		{38, model.VCA},
		{25, model.VCE},
		{36, model.VCEnter},
		{50, model.VCShiftL},
	}
	for _, c := range cases {
		if got := NativeToVC(c.native); got != c.want {
			t.Errorf("NativeToVC(%d) = %v, want %v", c.native, got, c.want)
		}
		native, ok := VCToNative(c.want)
		if !ok || native != c.native {
			t.Errorf("VCToNative(%v) = (%d, %v), want (%d, true)", c.want, native, ok, c.native)
		}
	}
}

// TestDiscoverResolvesUnpaddedShortNames covers the fixed name-padding bug:
// both a key whose Xkb name is naturally 4 characters ("LFSH") and ones
// whose real NUL-padded names are shorter than 4 ("TAB", "UP", "KP0") must
// resolve once trimmed, since xkbNameToVC stores all short names unpadded.
func TestDiscoverResolvesUnpaddedShortNames(t *testing.T) {
	names := map[uint8]string{
		23: "TAB",
		98: "UP",
		90: "KP0",
		50: "LFSH",
	}
	Discover(names)

	cases := []struct {
		native uint8
		want   model.VirtualCode
	}{
		{23, model.VCTab},
		{98, model.VCUp},
		{90, model.VCKP0},
		{50, model.VCShiftL},
	}
	for _, c := range cases {
		if got := NativeToVC(c.native); got != c.want {
			t.Errorf("NativeToVC(%d) = %v, want %v", c.native, got, c.want)
		}
	}
}

func TestNativeToVCUnmapped(t *testing.T) {
	Discover(map[uint8]string{38: "AC01"})
	if got := NativeToVC(255); got != model.VCUndefined {
		t.Errorf("NativeToVC(255) = %v, want VCUndefined", got)
	}
}

// TestDiscoverAliasPrefersFirstKeycode covers the documented BKSL/AC12 alias
// rule: the lower keycode wins VCToNative's reverse mapping.
func TestDiscoverAliasPrefersFirstKeycode(t *testing.T) {
	names := map[uint8]string{
		51:  "BKSL",
		52:  "AC12",
	}
	Discover(names)

	native, ok := VCToNative(model.VCBackSlash)
	if !ok {
		t.Fatal("VCToNative(VCBackSlash) not ok")
	}
	if native != 51 {
		t.Errorf("VCToNative(VCBackSlash) = %d, want 51 (first keycode iterated)", native)
	}
	if got := NativeToVC(52); got != model.VCBackSlash {
		t.Errorf("NativeToVC(52) = %v, want VCBackSlash", got)
	}
}

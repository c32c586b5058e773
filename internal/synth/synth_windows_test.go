//go:build windows

package synth

import "testing"

// TestMulDiv covers the scaling arithmetic normalize uses to map a
// virtual-screen coordinate into SendInput's [0, 65535] absolute space
// (spec §4.7, testable property 7). The rest of normalize depends on
// GetSystemMetrics/monitor.Origin, both live Windows API calls with no
// injectable seam, so it is exercised as an integration scenario rather
// than a pure unit test here.
func TestMulDiv(t *testing.T) {
	cases := []struct {
		v, num, den int32
		want        int32
	}{
		{0, 65535, 1920, 0},
		{1920, 65535, 1920, 65535},
		{960, 65535, 1920, 32767},
	}
	for _, c := range cases {
		if got := mulDiv(c.v, c.num, c.den); got != c.want {
			t.Errorf("mulDiv(%d, %d, %d) = %d, want %d", c.v, c.num, c.den, got, c.want)
		}
	}
}

func TestAbs32(t *testing.T) {
	cases := []struct{ v, want int32 }{
		{0, 0}, {5, 5}, {-5, 5}, {-1920, 1920},
	}
	for _, c := range cases {
		if got := abs32(c.v); got != c.want {
			t.Errorf("abs32(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

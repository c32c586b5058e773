//go:build linux

package capture

import "testing"

func TestNormalizeButton(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{1, 1}, {2, 2}, {3, 3},
		{btnBack, 4}, {btnForward, 5},
		{btnWheelUp, 0}, {btnWheelDown, 0}, {btnWheelLeft, 0}, {btnWheelRight, 0},
		{10, 0}, {0, 0},
	}
	for _, c := range cases {
		if got := normalizeButton(c.in); got != c.want {
			t.Errorf("normalizeButton(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

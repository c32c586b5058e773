//go:build linux

package dispatch

import (
	"os"
	"testing"

	"github.com/zhaoq-v/iohook/internal/capture"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

func init() {
	vcode.Discover(map[uint8]string{
		38: "AC01", // VCA
		50: "LFSH", // VCShiftL
	})
}

func recorder() (*Dispatcher, *[]model.VirtualEvent) {
	var events []model.VirtualEvent
	d := New(func(ev *model.VirtualEvent) bool {
		events = append(events, *ev)
		return false
	})
	return d, &events
}

// TestKeyEventMaskReflectsState covers testable property 2/3: the Mask
// field of every dispatched event equals internal/modstate's value at
// dispatch time, for both the modifier key itself and a following
// unrelated key.
func TestKeyEventMaskReflectsState(t *testing.T) {
	modstate.Reset()
	defer modstate.Reset()

	d, events := recorder()

	d.KeyEvent(capture.KeyEvent{Down: true, NativeU8: 50}) // ShiftL down
	d.KeyEvent(capture.KeyEvent{Down: true, NativeU8: 38})  // A down while shift held

	if len(*events) < 2 {
		t.Fatalf("expected at least 2 events, got %d", len(*events))
	}
	shiftPress := (*events)[0]
	if shiftPress.Mask&model.MaskShiftL == 0 {
		t.Errorf("ShiftL press event Mask = %v, want MaskShiftL bit set", shiftPress.Mask)
	}

	aPress := (*events)[1]
	if aPress.Mask&model.MaskShiftL == 0 {
		t.Errorf("A press event Mask = %v, want MaskShiftL bit carried over", aPress.Mask)
	}
	if aPress.KeyCode != model.VCA {
		t.Errorf("A press KeyCode = %v, want VCA", aPress.KeyCode)
	}
}

// TestKeyEventReleaseClearsMask confirms Unset runs on key-up so a later
// event's Mask no longer carries the released modifier's bit.
func TestKeyEventReleaseClearsMask(t *testing.T) {
	modstate.Reset()
	defer modstate.Reset()

	d, events := recorder()
	d.KeyEvent(capture.KeyEvent{Down: true, NativeU8: 50})
	d.KeyEvent(capture.KeyEvent{Down: false, NativeU8: 50})
	d.KeyEvent(capture.KeyEvent{Down: true, NativeU8: 38})

	last := (*events)[len(*events)-1]
	if last.Mask&model.MaskShiftL != 0 {
		t.Errorf("event Mask = %v, want MaskShiftL bit cleared after release", last.Mask)
	}
}

// TestMouseMoveClassifiesDrag covers testable property 4 (S3): a
// MOUSE_MOVED becomes MOUSE_DRAGGED whenever any button mask bit is held.
func TestMouseMoveClassifiesDrag(t *testing.T) {
	modstate.Reset()
	defer modstate.Reset()

	d, events := recorder()

	d.MouseMove(capture.MouseMoveEvent{X: 1, Y: 1})
	d.MouseButton(capture.MouseButtonEvent{Down: true, Button: 1, X: 1, Y: 1})
	d.MouseMove(capture.MouseMoveEvent{X: 2, Y: 2})
	d.MouseButton(capture.MouseButtonEvent{Down: false, Button: 1, X: 2, Y: 2})
	d.MouseMove(capture.MouseMoveEvent{X: 3, Y: 3})

	got := make([]model.EventType, len(*events))
	for i, ev := range *events {
		got[i] = ev.Type
	}
	want := []model.EventType{
		model.MouseMoved,
		model.MousePressed,
		model.MouseDragged,
		model.MouseReleased,
		model.MouseMoved,
	}
	if len(got) != len(want) {
		t.Fatalf("event sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestMouseButtonClickSameCoordinates covers the click-window logic: a
// release at the same coordinates as its press additionally dispatches
// MOUSE_CLICKED right after MOUSE_RELEASED.
func TestMouseButtonClickSameCoordinates(t *testing.T) {
	modstate.Reset()
	defer modstate.Reset()

	d, events := recorder()
	d.MouseButton(capture.MouseButtonEvent{Down: true, Button: 1, X: 5, Y: 5, Time: 1})
	d.MouseButton(capture.MouseButtonEvent{Down: false, Button: 1, X: 5, Y: 5, Time: 2})

	if len(*events) != 3 {
		t.Fatalf("expected press+release+click = 3 events, got %d", len(*events))
	}
	if (*events)[2].Type != model.MouseClicked {
		t.Errorf("third event = %v, want MouseClicked", (*events)[2].Type)
	}
}

// TestKeyEventTypedCharacter is an integration-level case requiring a live
// X11 input method (internal/unicode.Resolve dials XOpenIM/XCreateIC); it
// is skipped outside an X11 session since Resolve returns nil without one.
func TestKeyEventTypedCharacter(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no DISPLAY; unicode.Resolve requires a live X11 connection")
	}

	modstate.Reset()
	defer modstate.Reset()

	d, events := recorder()
	d.KeyEvent(capture.KeyEvent{Down: true, NativeU8: 38})

	var typed *model.VirtualEvent
	for i := range *events {
		if (*events)[i].Type == model.KeyTyped {
			typed = &(*events)[i]
			break
		}
	}
	if typed == nil {
		t.Fatal("expected a KEY_TYPED follow-up event")
	}
	if typed.KeyChar != uint16('a') {
		t.Errorf("KeyChar = %q, want 'a'", typed.KeyChar)
	}
}

package dispatch

import (
	"testing"

	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
)

func TestHookEnabledDisabledDispatch(t *testing.T) {
	modstate.Reset()
	defer modstate.Reset()

	var events []model.VirtualEvent
	d := New(func(ev *model.VirtualEvent) bool {
		events = append(events, *ev)
		return false
	})

	modstate.Set(model.MaskCapsLock)
	d.HookEnabled()
	d.HookDisabled()

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != model.HookEnabled {
		t.Errorf("events[0].Type = %v, want HookEnabled", events[0].Type)
	}
	if events[1].Type != model.HookDisabled {
		t.Errorf("events[1].Type = %v, want HookDisabled", events[1].Type)
	}
	if events[0].Mask != model.MaskCapsLock {
		t.Errorf("events[0].Mask = %v, want %v", events[0].Mask, model.MaskCapsLock)
	}
}

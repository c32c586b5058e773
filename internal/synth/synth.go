// Package synth implements C7: translating a VirtualEvent into one or more
// native input injections, including Windows multi-monitor coordinate
// normalization and per-platform Unicode text injection (spec §4.7).
package synth

import "github.com/zhaoq-v/iohook/internal/model"

// Injector is the platform synthesis engine. PostEvent and PostText mirror
// the post_event/post_text external calls (spec §6); both return a status
// rather than silently succeeding, including on macOS (spec §9 open
// question: the source's post_text does not report failure there).
type Injector interface {
	PostEvent(ev *model.VirtualEvent) error
	PostText(units []uint16) error
}

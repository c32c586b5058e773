//go:build linux

package iohook

import "github.com/zhaoq-v/iohook/internal/synth"

// GetPostTextDelayX11 returns the per-character delay, in nanoseconds, used
// by PostText's X11 keycode-remap injection (spec §6).
func GetPostTextDelayX11() int64 { return synth.GetPostTextDelay() }

// SetPostTextDelayX11 overrides the per-character delay, in nanoseconds.
func SetPostTextDelayX11(ns int64) { synth.SetPostTextDelay(ns) }

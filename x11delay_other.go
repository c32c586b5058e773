//go:build !linux

package iohook

// GetPostTextDelayX11 and SetPostTextDelayX11 are X11-only (spec §6); on
// Windows and macOS PostText has no equivalent per-character pacing
// control, so these are no-ops.
func GetPostTextDelayX11() int64 { return 0 }

func SetPostTextDelayX11(ns int64) {}

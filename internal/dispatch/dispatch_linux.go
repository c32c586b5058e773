//go:build linux

package dispatch

import (
	"github.com/zhaoq-v/iohook/internal/capture"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/unicode"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

func translateVC(ev capture.KeyEvent) model.VirtualCode {
	return vcode.NativeToVC(ev.NativeU8)
}

func resolveChars(ev capture.KeyEvent, mask model.ModifierMask) []uint16 {
	return unicode.Resolve(uint32(ev.NativeU8), mask)
}

func nativeRaw(ev capture.KeyEvent) uint32 {
	return uint32(ev.NativeU8)
}

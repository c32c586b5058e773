//go:build windows

package dispatch

import (
	"github.com/zhaoq-v/iohook/internal/capture"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/unicode"
	"github.com/zhaoq-v/iohook/internal/vcode"
)

func translateVC(ev capture.KeyEvent) model.VirtualCode {
	return vcode.NativeToVC(ev.Native, ev.Extended)
}

func resolveChars(ev capture.KeyEvent, mask model.ModifierMask) []uint16 {
	return unicode.Resolve(ev.Native, mask)
}

func nativeRaw(ev capture.KeyEvent) uint32 {
	return ev.Native
}

package iohook

import "github.com/zhaoq-v/iohook/internal/ioherr"

// Error is the stable-taxonomy error every external call can return (spec
// §7); Code matches the numeric values the external interface documents.
type Error = ioherr.Error

// ErrCode re-exports the stable numeric error taxonomy (spec §7).
type ErrCode = ioherr.Code

const (
	ErrSuccess        = ioherr.Success
	ErrFailure        = ioherr.Failure
	ErrOutOfMemory    = ioherr.OutOfMemory
	ErrNullText       = ioherr.NullText
	ErrXOpenDisplay   = ioherr.XOpenDisplay
	ErrXRecordMissing = ioherr.XRecordMissing
	ErrXRecordAlloc   = ioherr.XRecordAlloc
	ErrXRecordCreate  = ioherr.XRecordCreate
	ErrXRecordEnable  = ioherr.XRecordEnable
	ErrXRecordGet     = ioherr.XRecordGet
	ErrWinHookInstall = ioherr.WinHookInstall
	ErrWinModule      = ioherr.WinModule
	ErrWinWindow      = ioherr.WinWindow
	ErrMacAXDisabled  = ioherr.MacAXDisabled
	ErrMacEventTap    = ioherr.MacEventTap
	ErrMacRunLoopSrc  = ioherr.MacRunLoopSrc
	ErrMacRunLoopGet  = ioherr.MacRunLoopGet
	ErrMacRunLoopObs  = ioherr.MacRunLoopObs
)

// Package ioherr carries the stable numeric error taxonomy hook callers rely
// on to distinguish failure kinds without string matching.
package ioherr

import "fmt"

// Code is a stable numeric error kind, safe to switch on across versions.
type Code uint8

const (
	Success        Code = 0x00
	Failure        Code = 0x01
	OutOfMemory    Code = 0x02
	NullText       Code = 0x03
	XOpenDisplay   Code = 0x20
	XRecordMissing Code = 0x21
	XRecordAlloc   Code = 0x22
	XRecordCreate  Code = 0x23
	XRecordEnable  Code = 0x24
	XRecordGet     Code = 0x25
	WinHookInstall Code = 0x30
	WinModule      Code = 0x31
	WinWindow      Code = 0x32
	MacAXDisabled  Code = 0x40
	MacEventTap    Code = 0x41
	MacRunLoopSrc  Code = 0x42
	MacRunLoopGet  Code = 0x43
	MacRunLoopObs  Code = 0x44
)

var names = map[Code]string{
	Success:        "success",
	Failure:        "generic failure",
	OutOfMemory:    "out of memory",
	NullText:       "null text",
	XOpenDisplay:   "could not open X display",
	XRecordMissing: "X RECORD extension not available",
	XRecordAlloc:   "X RECORD range allocation failed",
	XRecordCreate:  "X RECORD context creation failed",
	XRecordEnable:  "X RECORD context enable failed",
	XRecordGet:     "X RECORD version query failed",
	WinHookInstall: "SetWindowsHookEx failed",
	WinModule:      "could not resolve module HINSTANCE",
	WinWindow:      "invisible window creation failed",
	MacAXDisabled:  "accessibility permission not granted",
	MacEventTap:    "CGEventTapCreate failed",
	MacRunLoopSrc:  "run loop source creation failed",
	MacRunLoopGet:  "could not obtain the main run loop",
	MacRunLoopObs:  "run loop observer setup failed",
}

// Error is a hook-taxonomy error: a stable Code plus an optional underlying
// cause from the platform API that produced it.
type Error struct {
	Code  Code
	Cause error
}

func New(code Code) *Error { return &Error{Code: code} }

func Wrap(code Code, cause error) *Error { return &Error{Code: code, Cause: cause} }

func (e *Error) Error() string {
	name, ok := names[e.Code]
	if !ok {
		name = fmt.Sprintf("error 0x%02x", uint8(e.Code))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", name, e.Cause)
	}
	return name
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether err carries the given Code, unwrapping as needed.
func Is(err error, code Code) bool {
	var ioe *Error
	for err != nil {
		if ioe2, ok := err.(*Error); ok {
			ioe = ioe2
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return ioe != nil && ioe.Code == code
}

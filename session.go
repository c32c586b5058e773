package iohook

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/zhaoq-v/iohook/internal/capture"
	"github.com/zhaoq-v/iohook/internal/dispatch"
	"github.com/zhaoq-v/iohook/internal/ioherr"
	"github.com/zhaoq-v/iohook/internal/lifecycle"
	"github.com/zhaoq-v/iohook/internal/logging"
	"github.com/zhaoq-v/iohook/internal/model"
	"github.com/zhaoq-v/iohook/internal/modstate"
	"github.com/zhaoq-v/iohook/internal/monitor"
	"github.com/zhaoq-v/iohook/internal/synth"
)

// LogLevel is the severity passed to a registered logger callback.
type LogLevel = slog.Level

const (
	LogDebug = slog.LevelDebug
	LogInfo  = slog.LevelInfo
	LogWarn  = slog.LevelWarn
	LogError = slog.LevelError
)

// ErrAlreadyRunning is returned by Run/RunKeyboard/RunMouse when a session
// is already active (spec §9: "forbid parallel sessions").
var ErrAlreadyRunning = errors.New("iohook: a session is already running")

// ErrNoDispatchProc is returned by Run/RunKeyboard/RunMouse when no handler
// has been registered via SetDispatchProc (spec §6: "Must be called before
// run").
var ErrNoDispatchProc = errors.New("iohook: SetDispatchProc must be called before run")

// session is C8's lifecycle controller: the single active capture/dispatch
// pipeline, grounded on the teacher's internal/remote/desktop.Session
// stopOnce/cleanupOnce/done-channel skeleton (here lifted into
// internal/lifecycle and generalized from one WebRTC session to one hook
// session).
type session struct {
	mu         sync.Mutex
	ctrl       lifecycle.Controller
	dispatchFn model.DispatchFunc
	backend    capture.Backend
}

var active = &session{}

// newBackend is a seam for tests: overriding it with a fake capture.Backend
// exercises Run/Stop lifecycle without a real OS hook, the way the
// teacher's SessionManager.OnSASRequest is an overridable func field rather
// than a hardcoded call.
var newBackend = capture.New

// SetDispatchProc installs the event handler invoked synchronously for
// every normalized event (spec §6 set_dispatch_proc). Must be called before
// Run/RunKeyboard/RunMouse. The C source's companion "user" pointer has no
// idiomatic Go equivalent; callers should close over whatever state fn
// needs instead.
func SetDispatchProc(fn DispatchFunc) {
	active.mu.Lock()
	defer active.mu.Unlock()
	active.dispatchFn = fn
}

// SetLoggerProc installs the library's log-sink callback (spec §6
// set_logger_proc). Every internal diagnostic logged via internal/logging,
// plus anything the caller's own code logs through the same mechanism,
// reaches fn alongside whatever local sink Init configured. A nil fn
// uninstalls the callback.
func SetLoggerProc(fn func(level LogLevel, user any, format string, args ...any), user any) {
	logging.SetProc(logging.ProcFunc(fn), user)
}

// Run starts a combined keyboard+mouse capture session and blocks until
// Stop is called or installation fails.
func Run() error { return run(capture.ModeBoth) }

// RunKeyboard starts a keyboard-only capture session.
func RunKeyboard() error { return run(capture.ModeKeyboardOnly) }

// RunMouse starts a mouse-only capture session.
func RunMouse() error { return run(capture.ModeMouseOnly) }

func run(mode capture.Mode) error {
	active.mu.Lock()
	fn := active.dispatchFn
	active.mu.Unlock()
	if fn == nil {
		return ErrNoDispatchProc
	}
	if !active.ctrl.TryStart() {
		return ErrAlreadyRunning
	}

	modstate.Reset()
	monitor.Refresh()

	d := dispatch.New(fn)
	backend := newBackend()

	active.mu.Lock()
	active.backend = backend
	active.mu.Unlock()

	err := backend.Run(mode, d)

	active.ctrl.Stop(func() {
		active.mu.Lock()
		active.backend = nil
		active.mu.Unlock()
		modstate.Reset()
	})

	return err
}

// Stop ends the active session, if any. Safe to call even when no session
// is running.
func Stop() {
	active.mu.Lock()
	b := active.backend
	active.mu.Unlock()
	if b != nil {
		b.Stop()
	}
}

// Running reports whether a capture session is currently active.
func Running() bool {
	return active.ctrl.Running()
}

// GetModifiers returns the current modifier/button mask (spec §8
// invariants 2-3: every dispatched event's Mask equals this value at the
// moment the dispatcher sees it).
func GetModifiers() ModifierMask {
	return modstate.Get()
}

var (
	injectorOnce sync.Once
	injector     synth.Injector
)

func getInjector() synth.Injector {
	injectorOnce.Do(func() { injector = synth.New() })
	return injector
}

// PostEvent injects a synthetic event into the OS input stream (spec §6
// post_event). Loopback is not suppressed: if a capture session is active,
// the injected event will be observed again as a fresh capture event (spec
// §5 Ordering) — callers must guard against echo themselves.
func PostEvent(ev *VirtualEvent) error {
	return getInjector().PostEvent(ev)
}

// PostText injects a sequence of UTF-16 code units as keystrokes (spec §6
// post_text).
func PostText(units []uint16) error {
	if len(units) == 0 {
		return ioherr.New(ioherr.NullText)
	}
	return getInjector().PostText(units)
}

// ScreenInfo describes one attached display (spec §6 create_screen_info).
type ScreenInfo = monitor.ScreenInfo

// CreateScreenInfo enumerates every attached display. Unlike the C
// create_screen_info(&count) convention, the caller does not need to free
// anything: the returned slice is garbage collected like any other Go
// value.
func CreateScreenInfo() []ScreenInfo {
	return monitor.Enumerate()
}

// GetAutoRepeatRate returns the host's configured keyboard repeat rate.
func GetAutoRepeatRate() int32 { return monitor.GetAutoRepeatRate() }

// GetAutoRepeatDelay returns the host's configured keyboard repeat delay.
func GetAutoRepeatDelay() int32 { return monitor.GetAutoRepeatDelay() }

// GetPointerAccelerationMultiplier returns the host's pointer acceleration
// level.
func GetPointerAccelerationMultiplier() int32 { return monitor.GetPointerAccelerationMultiplier() }

// GetPointerAccelerationThreshold returns the host's pointer acceleration
// threshold.
func GetPointerAccelerationThreshold() int32 { return monitor.GetPointerAccelerationThreshold() }

// GetPointerSensitivity returns the host's pointer sensitivity setting.
func GetPointerSensitivity() int32 { return monitor.GetPointerSensitivity() }

// GetMultiClickTime returns the maximum interval, in milliseconds, between
// clicks of a multi-click sequence.
func GetMultiClickTime() int32 { return monitor.GetMultiClickTime() }

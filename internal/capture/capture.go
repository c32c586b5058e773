// Package capture implements C4: the platform-specific native capture
// backends that install OS hooks and stream decoded raw events to a Sink
// from a single dedicated thread (spec §4.3).
package capture

// KeyEvent is a decoded low-level keyboard event, prior to VC translation.
type KeyEvent struct {
	Down     bool
	Native   uint32 // Windows VK_* / macOS kVK_*
	NativeU8 uint8  // X11 keycode; only populated on linux
	Extended bool   // Windows low-level-hook extended-key flag
	Time     int64
}

// MouseButtonEvent is a decoded mouse button transition.
type MouseButtonEvent struct {
	Down   bool
	Button int // 1-5
	X, Y   int16
	Time   int64
}

// MouseMoveEvent is a decoded pointer-move sample.
type MouseMoveEvent struct {
	X, Y int16
	Time int64
}

// MouseWheelEvent is a decoded scroll sample.
type MouseWheelEvent struct {
	Vertical bool
	Rotation int16
	Delta    int32
	X, Y     int16
	Time     int64
}

// Sink receives decoded events from a Backend and reports whether each one
// was consumed. The capture backend forwards the verdict to the OS.
type Sink interface {
	KeyEvent(ev KeyEvent) (consumed bool)
	MouseButton(ev MouseButtonEvent) (consumed bool)
	MouseMove(ev MouseMoveEvent) (consumed bool)
	MouseWheel(ev MouseWheelEvent) (consumed bool)
	DisplayChanged()

	// HookEnabled/HookDisabled bracket a Run call: a Backend calls
	// HookEnabled once the native hook is installed and initial modifier
	// state has been polled, and HookDisabled immediately before tearing
	// the hook down (spec §3: HOOK_ENABLED/HOOK_DISABLED).
	HookEnabled()
	HookDisabled()
}

// Mode restricts a Backend to keyboard-only, mouse-only, or both, matching
// run / run_keyboard / run_mouse (spec §6).
type Mode uint8

const (
	ModeBoth Mode = iota
	ModeKeyboardOnly
	ModeMouseOnly
)

// Backend is a platform capture pipeline. Run blocks until Stop is called
// from another goroutine or installation fails.
type Backend interface {
	Run(mode Mode, sink Sink) error
	Stop()
}

package iohook

import (
	"sync"
	"testing"
	"time"

	"github.com/zhaoq-v/iohook/internal/capture"
)

// fakeBackend is a stub capture.Backend, the same shape as the teacher's
// stubEncoder in desktop's adaptive_test.go: it satisfies the interface and
// lets the test drive events and teardown explicitly instead of depending
// on a real OS hook.
type fakeBackend struct {
	mu       sync.Mutex
	sink     capture.Sink
	stopped  chan struct{}
	stopOnce sync.Once
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{stopped: make(chan struct{})}
}

func (f *fakeBackend) Run(mode capture.Mode, sink capture.Sink) error {
	f.mu.Lock()
	f.sink = sink
	f.mu.Unlock()
	<-f.stopped
	return nil
}

func (f *fakeBackend) Stop() {
	f.stopOnce.Do(func() { close(f.stopped) })
}

func (f *fakeBackend) currentSink() capture.Sink {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sink
}

func withFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := newFakeBackend()
	prev := newBackend
	newBackend = func() capture.Backend { return fb }
	t.Cleanup(func() { newBackend = prev })
	return fb
}

func resetSession(t *testing.T) {
	t.Helper()
	active.mu.Lock()
	active.dispatchFn = nil
	active.backend = nil
	active.mu.Unlock()
}

func TestRunRequiresDispatchProc(t *testing.T) {
	resetSession(t)
	withFakeBackend(t)

	if err := Run(); err != ErrNoDispatchProc {
		t.Fatalf("expected ErrNoDispatchProc, got %v", err)
	}
}

func TestRunStopLifecycle(t *testing.T) {
	resetSession(t)
	fb := withFakeBackend(t)

	var mu sync.Mutex
	var seen []EventType
	SetDispatchProc(func(ev *VirtualEvent) bool {
		mu.Lock()
		seen = append(seen, ev.Type)
		mu.Unlock()
		return false
	})

	done := make(chan error, 1)
	go func() { done <- Run() }()

	waitFor(t, func() bool { return fb.currentSink() != nil })

	if !Running() {
		t.Fatalf("expected Running() true while Run is blocked")
	}

	fb.currentSink().KeyEvent(capture.KeyEvent{Down: true, NativeU8: 38, Native: 38})

	Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	if Running() {
		t.Fatalf("expected Running() false after Stop")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) == 0 {
		t.Fatalf("expected at least one dispatched event")
	}
	if seen[0] != KeyPressed {
		t.Fatalf("expected first event KeyPressed, got %v", seen[0])
	}
}

func TestRunRejectsConcurrentSession(t *testing.T) {
	resetSession(t)
	fb := withFakeBackend(t)
	SetDispatchProc(func(ev *VirtualEvent) bool { return false })

	done := make(chan error, 1)
	go func() { done <- Run() }()
	waitFor(t, func() bool { return fb.currentSink() != nil })

	if err := Run(); err != ErrAlreadyRunning {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	Stop()
	<-done
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

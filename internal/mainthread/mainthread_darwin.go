//go:build darwin

// Package mainthread implements the macOS-only marshaling required by
// spec §4.6: the Text Input Source APIs consulted by internal/unicode must
// run on the process main run loop, but the hook thread is not the main
// thread. Run provides the preferred dispatch_sync_f path; RunViaRunLoop is
// the CFRunLoopSource/condition-variable fallback kept for older OS floors
// (spec §9 notes the dispatch path should be depended on directly on a
// modern reimplementation rather than resolved via dlsym).
package mainthread

/*
#cgo LDFLAGS: -framework CoreFoundation
#include <dispatch/dispatch.h>
#include <CoreFoundation/CoreFoundation.h>

extern void goMainThreadTrampoline(void *ctx);

static void iohookDispatchSyncMain(void *ctx) {
	dispatch_sync_f(dispatch_get_main_queue(), ctx, goMainThreadTrampoline);
}

// Fallback path state: a run-loop source signaled from the hook thread, and
// an observer on kCFRunLoopExit that unblocks a waiting hook thread if the
// main loop tears down mid-wait.
static CFRunLoopSourceRef fallbackSource = NULL;
static void *fallbackCtx = NULL;

extern void goFallbackPerform(void);
extern void goFallbackObserve(void);

static void fallbackPerformCB(void *info) {
	goFallbackPerform();
}

static void fallbackObserveCB(CFRunLoopObserverRef observer, CFRunLoopActivity activity, void *info) {
	goFallbackObserve();
}

static int iohookInstallFallback(void) {
	CFRunLoopSourceContext ctx;
	memset(&ctx, 0, sizeof(ctx));
	ctx.perform = fallbackPerformCB;
	fallbackSource = CFRunLoopSourceCreate(kCFAllocatorDefault, 0, &ctx);
	if (!fallbackSource) return -1;
	CFRunLoopAddSource(CFRunLoopGetMain(), fallbackSource, kCFRunLoopCommonModes);

	CFRunLoopObserverRef obs = CFRunLoopObserverCreate(kCFAllocatorDefault, kCFRunLoopExit, false, 0, fallbackObserveCB, NULL);
	if (obs) {
		CFRunLoopAddObserver(CFRunLoopGetMain(), obs, kCFRunLoopCommonModes);
	}
	return 0;
}

static void iohookSignalFallback(void) {
	if (fallbackSource) {
		CFRunLoopSourceSignal(fallbackSource);
		CFRunLoopWakeUp(CFRunLoopGetMain());
	}
}
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"unsafe"
)

//export goMainThreadTrampoline
func goMainThreadTrampoline(ctx unsafe.Pointer) {
	h := *(*cgo.Handle)(ctx)
	fn := h.Value().(func())
	fn()
}

// Run executes fn synchronously on the main queue via dispatch_sync_f, the
// preferred path. Safe to call from the hook thread.
func Run(fn func()) {
	h := cgo.NewHandle(fn)
	defer h.Delete()
	C.iohookDispatchSyncMain(unsafe.Pointer(&h))
}

var (
	fallbackMu       sync.Mutex
	fallbackCond     = sync.NewCond(&fallbackMu)
	fallbackFn       func()
	fallbackDone     bool
	fallbackInstall  sync.Once
	fallbackInstalOK bool
)

// RunViaRunLoop is the CFRunLoopSource/condition-variable fallback described
// in spec §4.6, for targets where dispatch_sync_f cannot be depended on
// directly. The hook thread signals the source and blocks on a condition
// variable; the main-thread callback (or a kCFRunLoopExit observer, if the
// main loop tears down first) broadcasts to release it.
func RunViaRunLoop(fn func()) {
	fallbackInstall.Do(func() {
		fallbackInstalOK = C.iohookInstallFallback() == 0
	})
	if !fallbackInstalOK {
		fn()
		return
	}

	fallbackMu.Lock()
	fallbackFn = fn
	fallbackDone = false
	fallbackMu.Unlock()

	C.iohookSignalFallback()

	fallbackMu.Lock()
	for !fallbackDone {
		fallbackCond.Wait()
	}
	fallbackMu.Unlock()
}

//export goFallbackPerform
func goFallbackPerform() {
	fallbackMu.Lock()
	fn := fallbackFn
	fallbackMu.Unlock()
	if fn != nil {
		fn()
	}
	fallbackMu.Lock()
	fallbackDone = true
	fallbackMu.Unlock()
	fallbackCond.Broadcast()
}

//export goFallbackObserve
func goFallbackObserve() {
	fallbackMu.Lock()
	fallbackDone = true
	fallbackMu.Unlock()
	fallbackCond.Broadcast()
}

// Package modstate holds the process-wide modifier/button mask (spec C2).
//
// The hook thread is the sole writer; Get is safe to call concurrently from
// other goroutines (including a user dispatcher calling into the synthesis
// engine) with at-least-happens-before ordering relative to the most recent
// Set/Unset, per spec §4.2.
package modstate

import (
	"sync/atomic"

	"github.com/zhaoq-v/iohook/internal/model"
)

var current atomic.Uint32

// Set ORs mask into the global state and returns the new value.
func Set(mask model.ModifierMask) model.ModifierMask {
	for {
		old := current.Load()
		next := old | uint32(mask)
		if current.CompareAndSwap(old, next) {
			return model.ModifierMask(next)
		}
	}
}

// Unset AND-NOTs mask out of the global state and returns the new value.
func Unset(mask model.ModifierMask) model.ModifierMask {
	for {
		old := current.Load()
		next := old &^ uint32(mask)
		if current.CompareAndSwap(old, next) {
			return model.ModifierMask(next)
		}
	}
}

// Get returns the current modifier/button mask.
func Get() model.ModifierMask {
	return model.ModifierMask(current.Load())
}

// Reset clears the mask to 0 (hook stop, spec §3 Lifecycle).
func Reset() {
	current.Store(0)
}

// Init sets the mask to the given value (hook start, after polling OS state
// per spec §4.2).
func Init(mask model.ModifierMask) {
	current.Store(uint32(mask))
}

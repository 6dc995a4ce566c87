// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

import "sync/atomic"

// Resume is the one-shot handle a [Yielder] uses to continue a scheduler
// run after a tick. Invoking it either continues the current drain loop
// (synchronous resumption) or re-enters the scheduler from a host callback
// (deferred resumption).
//
// Resume enforces affine semantics: Invoke may be called at most once.
// Calling Invoke twice panics. Use Discard to explicitly abandon the run.
// One-shot enforcement is what keeps the completion continuation single-fire
// even against a policy that resumes twice.
type Resume struct {
	used atomic.Uintptr
	fn   func()
}

func newResume(fn func()) *Resume {
	return &Resume{fn: fn}
}

// Invoke continues the scheduler run.
// Panics if the handle has already been invoked or discarded.
func (r *Resume) Invoke() {
	if r.used.Add(1) != 1 {
		panic("conc: resume invoked twice")
	}
	r.fn()
}

// TryInvoke attempts to continue the scheduler run.
// Returns true on success, or false if the handle has already been used.
func (r *Resume) TryInvoke() bool {
	if r.used.Add(1) != 1 {
		return false
	}
	r.fn()
	return true
}

// Discard marks the handle as consumed without resuming.
// The run is abandoned: queued strands are dropped and the completion
// continuation is never invoked.
func (r *Resume) Discard() {
	r.used.Store(1)
}

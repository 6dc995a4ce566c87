// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

// Action is the interface for discrete schedulable units.
// Exactly three variants exist: [Atomic], [Fork], and [Stop].
// Dispatch uses type switches, not tags — Action is a pure marker interface.
//
// The marker method is unexported, so no variant can be added outside this
// package: an unknown action reaching the scheduler is a compile-time
// impossibility rather than a runtime log line. The one remaining hole is a
// nil Action, which the scheduler treats as a fatal invariant violation.
type Action interface {
	action() // unexported marker method
}

// Atomic wraps one indivisible synchronous step.
// Ticking it runs Step to completion without preemption; the result is the
// next action for the same strand.
type Atomic struct {
	// Step performs the tick and returns the strand's next action.
	Step func() Action
}

func (Atomic) action() {}

// Fork splits one strand into two independently scheduled strands.
// The scheduler enqueues Left then Right at the tail, so the branches are
// adjacent in round-robin order.
type Fork struct {
	Left  Action
	Right Action
}

func (Fork) action() {}

// Stop terminates a strand. The scheduler drops it from the queue.
type Stop struct{}

func (Stop) action() {}

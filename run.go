// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

import "time"

// Entry points pairing the scheduler with each yield policy.
// All five drain the same queue with the same semantics; done is invoked
// exactly once, with the unit value, when the queue empties.

// Run drains the queue synchronously within one call stack.
func (r *RoundRobin) Run(done func(struct{})) {
	r.RunWith(Sync(), done)
}

// RunDeferred drains the queue one tick per host turn, scheduling each
// resumption through d.
func (r *RoundRobin) RunDeferred(d Deferrer, done func(struct{})) {
	r.RunWith(Deferred(d), done)
}

// RunBatched drains the queue n ticks per host turn, deferring through d
// after each batch.
func (r *RoundRobin) RunBatched(n int, d Deferrer, done func(struct{})) {
	r.RunWith(Batched(n, d), done)
}

// RunTimeBoxed drains the queue in time-boxed bursts: ticks run
// synchronously until box elapses on the clock now (nil selects
// [time.Now]), then resumption is deferred through d.
func (r *RoundRobin) RunTimeBoxed(box time.Duration, now func() time.Time, d Deferrer, done func(struct{})) {
	r.RunWith(TimeBoxed(box, now, d), done)
}

// RunFrameSynced drains the queue one batch of ticks per rendered frame,
// deferring through the host's display-refresh callback.
func (r *RoundRobin) RunFrameSynced(frame Deferrer, done func(struct{})) {
	r.RunWith(FrameSynced(frame), done)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

import "fmt"

// RoundRobin interprets queued actions one tick at a time under strict FIFO
// fairness: each queued strand gets exactly one tick before any strand is
// revisited. No priority, no depth-first bias.
//
// A RoundRobin holds one queue and an optional strand-failure channel; it
// carries no global state, so independent runs can coexist.
type RoundRobin struct {
	queue *Queue[Action]

	// OnStrandError, when set, receives each strand failure as it occurs.
	// When nil, failures accumulate and are retrievable via StrandErrors.
	// Must be set before the run starts.
	OnStrandError func(error)

	errs []error
}

// NewRoundRobin creates a scheduler seeded with a single action.
// Seed a computation with NewRoundRobin(Reify(m)).
func NewRoundRobin(seed Action) *RoundRobin {
	return &RoundRobin{queue: NewQueue[Action](seed)}
}

// NewRoundRobinQueue creates a scheduler over a pre-built queue.
// The scheduler takes ownership: the queue must not be mutated elsewhere
// for the duration of the run.
func NewRoundRobinQueue(q *Queue[Action]) *RoundRobin {
	return &RoundRobin{queue: q}
}

// StrandErrors returns the failures collected so far, in occurrence order.
// Empty unless strands failed while OnStrandError was nil.
func (r *RoundRobin) StrandErrors() []error {
	return r.errs
}

// RunWith drains the queue under the given yield policy, invoking done
// exactly once with the unit value when the queue empties. A nil done is
// treated as a no-op continuation.
//
// RunWith returns as soon as the policy defers resumption; the run then
// continues from the host callback the policy scheduled. With [Sync] the
// queue drains before RunWith returns.
func (r *RoundRobin) RunWith(y Yielder, done func(struct{})) {
	if done == nil {
		done = func(struct{}) {}
	}
	r.runF(y, done)
}

// runF interprets one action per iteration until the queue empties,
// consulting the yield policy between ticks. Synchronous resumption is
// trampolined into the loop; deferred resumption re-enters runF from the
// host callback.
func (r *RoundRobin) runF(y Yielder, done func(struct{})) {
	for {
		if r.queue.Len() == 0 {
			done(struct{}{})
			return
		}
		r.tick()

		sync := false
		inline := true
		res := newResume(func() {
			if inline {
				sync = true
				return
			}
			r.runF(y, done)
		})
		y.Yield(res)
		inline = false
		if !sync {
			return
		}
	}
}

// tick dequeues one action and interprets it exactly once.
func (r *RoundRobin) tick() {
	next, ok := r.queue.Dequeue()
	if !ok {
		return
	}
	switch a := next.(type) {
	case Atomic:
		r.queue.Enqueue(r.step(a))
	case Fork:
		r.queue.Enqueue(a.Left)
		r.queue.Enqueue(a.Right)
	case Stop:
		// strand dropped
	default:
		panic("conc: unknown action in scheduler queue")
	}
}

// step runs one atomic tick. A panic in the step body fails only the
// owning strand: the panic is converted to an error, reported through the
// side channel, and the strand proceeds as if it had produced [Stop].
func (r *RoundRobin) step(a Atomic) (next Action) {
	defer func() {
		if v := recover(); v != nil {
			r.fail(v)
			next = Stop{}
		}
	}()
	return a.Step()
}

// fail surfaces a recovered strand panic through the error channel.
func (r *RoundRobin) fail(v any) {
	var err error
	if e, ok := v.(error); ok {
		err = fmt.Errorf("conc: strand failed: %w", e)
	} else {
		err = fmt.Errorf("conc: strand failed: %v", v)
	}
	if r.OnStrandError != nil {
		r.OnStrandError(err)
		return
	}
	r.errs = append(r.errs, err)
}

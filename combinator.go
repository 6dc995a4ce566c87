// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

// Combinators bridging the computation world and the action world.
// Atom/Halt/Spawn/Par build computations; Reify converts a computation
// into a single schedulable action.

// Atom lifts a zero-argument synchronous side-effecting function into a
// computation. Running it produces an [Atomic] whose tick calls fn once and
// feeds the result to the continuation.
//
// The payload runs to completion without preemption once its tick starts,
// so it must be non-blocking and return promptly. Closures captured by
// payloads must not share mutable data across strands unless externally
// synchronized.
func Atom[A any](fn func() A) Cont[A] {
	return func(k func(A) Action) Action {
		return Atomic{Step: func() Action {
			return k(fn())
		}}
	}
}

// Halt is a computation that ignores its continuation and terminates the
// current strand. Nothing sequenced after Halt runs.
func Halt[A any]() Cont[A] {
	return func(func(A) Action) Action {
		return Stop{}
	}
}

// stopCont discards a computation's result and terminates the strand.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func stopCont[A any](A) Action { return Stop{} }

// Reify converts a computation into a single [Atomic] action.
// Ticking it runs m with a continuation that always yields [Stop]: the
// strand terminates once m fully resolves. Any strands m spawns meanwhile
// are already independent, separately queued strands and are unaffected.
func Reify[A any](m Cont[A]) Action {
	return Atomic{Step: func() Action {
		return m(stopCont[A])
	}}
}

// Spawn runs m as an independent strand.
// Running the returned computation produces Fork(Reify(m), k(unit)): the
// spawned computation is scheduled separately while the calling strand
// immediately proceeds without waiting for it.
func Spawn[A any](m Cont[A]) Cont[struct{}] {
	return func(k func(struct{}) Action) Action {
		return Fork{Left: Reify(m), Right: k(struct{}{})}
	}
}

// Par runs two computations as separate strands that both invoke the same
// continuation. The strand of the caller splits in two: everything
// sequenced after Par runs once per branch.
//
// Par is eager at construction time: both step functions are applied to the
// continuation when the enclosing tick builds the Fork, not deferred to the
// branches' own ticks. Side effects placed in computation-building code
// rather than inside [Atom] payloads therefore execute before either branch
// is scheduled, violating interleaving guarantees. Keep all effects inside
// Atom payloads.
func Par[A any](m, n Cont[A]) Cont[A] {
	return func(k func(A) Action) Action {
		return Fork{Left: m(k), Right: n(k)}
	}
}

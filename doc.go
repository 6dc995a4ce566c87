// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conc provides a deterministic, single-threaded cooperative
// concurrency primitive in Go.
//
// The core type [Cont] represents a continuation-passing computation whose
// answer type is [Action], a schedulable unit. A round-robin scheduler
// interprets queued actions one tick at a time, interleaving logically
// independent computations without preemption, goroutines, or locks.
//
// # Design Philosophy
//
// conc provides:
//   - A minimal but complete action algebra: [Atomic] | [Fork] | [Stop]
//   - Strict FIFO round-robin fairness with O(1) queue operations
//   - Pluggable yield policies controlling when ticks hand control back
//     to the host loop, without changing queue semantics
//
// "Concurrency" here is an abstraction over interleaved synchronous ticks
// within one call stack or across successive host-loop turns. Exactly one
// action is ticked at a time, so no locking is required and ordering is
// fully deterministic given the same sequence of forks.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return]: Lift a pure value into a computation
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Return(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Construction:
//
//   - [Suspend]: Create a computation from a raw CPS step function
//   - [Atom]: Lift a synchronous side-effecting function into one tick
//   - [Halt]: Terminate the current strand
//   - [Spawn]: Run a computation as an independent strand
//   - [Par]: Run two computations against the same continuation
//   - [Reify]: Convert a computation into a single schedulable [Action]
//
// # Scheduling
//
// [RoundRobin] owns a [Queue] of pending actions (strands) and interprets
// exactly one per tick:
//
//   - [Atomic]: tick it, enqueue the resulting action at the tail
//   - [Fork]: enqueue both branches at the tail, left then right
//   - [Stop]: drop the strand
//
// Each queued strand gets exactly one tick before any strand is revisited.
// A run ends exactly when the queue empties; the completion continuation is
// invoked exactly once with the unit value.
//
// Constructors:
//
//   - [NewRoundRobin]: seed from a single action
//   - [NewRoundRobinQueue]: seed from a pre-built queue
//
// # Yield Policies
//
// A [Yielder] decides, after each tick, whether the scheduler resumes
// immediately or defers resumption to the host. All policies are observably
// equivalent in final value and effect sequence; they differ only in timing
// relative to host callbacks.
//
//   - [Sync]: drain the whole queue within one call stack
//   - [Deferred]: yield to the host once per tick
//   - [Batched]: resume synchronously n-1 times, defer on the nth
//   - [TimeBoxed]: defer once a wall-clock budget is exceeded
//   - [FrameSynced]: pace batches of ticks to the host's display refresh
//
// The host supplies a [Deferrer] (schedule a callback for "later") and,
// for [TimeBoxed], a monotonic clock. Entry points: [RoundRobin.Run],
// [RoundRobin.RunDeferred], [RoundRobin.RunBatched], [RoundRobin.RunTimeBoxed],
// [RoundRobin.RunFrameSynced], and the general seam [RoundRobin.RunWith].
//
// # Affine Resumption
//
// The scheduler hands its yield policy a one-shot [Resume] handle:
//
//   - [Resume.Invoke]: continue the run (panics on reuse)
//   - [Resume.TryInvoke]: non-panicking variant
//   - [Resume.Discard]: abandon the run without resuming
//
// One-shot enforcement keeps the completion continuation single-fire even
// against a policy that resumes twice.
//
// # Failure Semantics
//
// A panic inside an [Atom] payload aborts only the failing strand: the
// strand is treated as if it produced [Stop], and the failure is surfaced
// through [RoundRobin.OnStrandError] or [RoundRobin.StrandErrors]. Sibling
// strands are logically independent and keep running.
//
// An [Atomic] whose tick always returns another non-terminating [Atomic]
// runs forever. The scheduler does not detect this; liveness of atom
// payloads is caller responsibility. Atom payloads run to completion
// without preemption once started, so they must be non-blocking and must
// keep all side effects inside the payload itself — in particular, [Par]
// evaluates both branch step functions at construction time.
//
// The core holds no global state: multiple independent scheduler runs can
// coexist.
//
// # Example
//
//	var out []string
//	say := func(s string) conc.Cont[struct{}] {
//		return conc.Atom(func() struct{} { out = append(out, s); return struct{}{} })
//	}
//	prog := conc.Then(conc.Spawn(say("x")), conc.Spawn(say("y")))
//	conc.NewRoundRobin(conc.Reify(prog)).Run(func(struct{}) {})
//	// out == []string{"x", "y"}
package conc

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

import "time"

// Yield policies control when the scheduler hands control back to the host
// loop between ticks. All policies are observably equivalent in final
// continuation value and in the sequence of performed effects; they differ
// only in timing relative to host callbacks.

// Deferrer schedules a zero-argument callback for "later": after the
// current host work, or before the host's next display refresh. The host
// environment supplies it — an event-loop post function, a timer wheel,
// an animation-frame hook.
//
// A Deferrer must invoke each callback at most once, and not before it
// returns.
type Deferrer func(fn func())

// Yielder decides, after each scheduler tick, when the next tick may run.
// It either invokes the handle synchronously (the drain loop continues on
// the current call stack) or passes it to a host deferrer (the run resumes
// from a host callback). Dropping the handle abandons the run.
type Yielder interface {
	Yield(r *Resume)
}

// frameBudget is the tick budget FrameSynced allots to one rendered frame,
// assuming a 60Hz refresh.
const frameBudget = time.Second / 60

type syncYielder struct{}

func (syncYielder) Yield(r *Resume) { r.Invoke() }

// Sync resumes immediately after every tick: the whole queue drains within
// one call stack, blocking host-level events until the run completes.
func Sync() Yielder { return syncYielder{} }

type deferredYielder struct {
	d Deferrer
}

func (y deferredYielder) Yield(r *Resume) { y.d(r.Invoke) }

// Deferred schedules every resumption through d: the scheduler yields to
// the host once per tick.
func Deferred(d Deferrer) Yielder { return deferredYielder{d: d} }

type batchedYielder struct {
	n     int
	count int
	d     Deferrer
}

func (y *batchedYielder) Yield(r *Resume) {
	y.count++
	if y.count < y.n {
		r.Invoke()
		return
	}
	y.count = 0
	y.d(r.Invoke)
}

// Batched resumes synchronously n-1 times and defers on the nth tick,
// resetting the counter after each defer. Batched(1, d) is equivalent to
// [Deferred]. Panics if n < 1.
func Batched(n int, d Deferrer) Yielder {
	if n < 1 {
		panic("conc: batch size must be positive")
	}
	return &batchedYielder{n: n, d: d}
}

type timeBoxedYielder struct {
	box  time.Duration
	now  func() time.Time
	d    Deferrer
	mark time.Time
}

func (y *timeBoxedYielder) Yield(r *Resume) {
	if y.mark.IsZero() {
		y.mark = y.now()
	}
	if y.now().Sub(y.mark) < y.box {
		r.Invoke()
		return
	}
	y.d(func() {
		y.mark = y.now() // restart the box at resumption, not at defer
		r.Invoke()
	})
}

// TimeBoxed resumes synchronously while the elapsed wall-clock time since
// the last defer stays under box, then defers through d and restarts the
// clock when the deferred resumption runs. now supplies the monotonic
// clock; nil selects [time.Now], whose readings carry Go's monotonic clock.
func TimeBoxed(box time.Duration, now func() time.Time, d Deferrer) Yielder {
	if now == nil {
		now = time.Now
	}
	return &timeBoxedYielder{box: box, now: now, d: d}
}

// FrameSynced defers through the host's display-refresh callback, pacing
// batches of ticks to one per rendered frame: ticks run synchronously for
// up to one 60Hz frame interval, then resumption waits for the next frame.
func FrameSynced(frame Deferrer) Yielder {
	return &timeBoxedYielder{box: frameBudget, now: time.Now, d: frame}
}

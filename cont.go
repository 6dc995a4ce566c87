// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

// Cont represents a continuation-passing computation producing a value of
// type A, with the answer type fixed to [Action].
//
// The function receives a continuation k of type func(A) Action, which
// represents "the rest of the strand". Applying k to a value of type A
// produces the action the scheduler interprets next.
//
// Building a Cont performs no side effect; effects belong inside [Atom]
// payloads, where they run one per tick under the scheduler.
type Cont[A any] func(k func(A) Action) Action

// Return lifts a pure value into a computation.
// The resulting computation immediately passes the value to its continuation
// with no suspension: no tick is consumed.
func Return[A any](a A) Cont[A] {
	return func(k func(A) Action) Action {
		return k(a)
	}
}

// Suspend creates a computation from a raw CPS step function.
// This is the primitive constructor for computations that need direct
// access to the continuation. The step function must return a valid
// action for any continuation it is given.
func Suspend[A any](f func(k func(A) Action) Action) Cont[A] {
	return Cont[A](f)
}

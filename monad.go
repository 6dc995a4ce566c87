// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

// Monad operations for computations.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate closure allocations.

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to get a new computation.
//
// Bind is lazy: f is not invoked until m actually produces a value, so
// unbounded recursive chains of atoms unwind one tick at a time under the
// scheduler instead of forcing eager recursion at construction time.
func Bind[A, B any](m Cont[A], f func(A) Cont[B]) Cont[B] {
	return func(k func(B) Action) Action {
		return m(func(a A) Action {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a computation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure (does not need its own tick).
func Map[A, B any](m Cont[A], f func(A) B) Cont[B] {
	return func(k func(B) Action) Action {
		return m(func(a A) Action {
			return k(f(a))
		})
	}
}

// Then sequences two computations, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m Cont[A], n Cont[B]) Cont[B] {
	return func(k func(B) Action) Action {
		return m(func(_ A) Action {
			return n(k)
		})
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc_test

import (
	"testing"

	conc "github.com/avieth/PoorMansConcurrency"
)

func TestReturnEval(t *testing.T) {
	got := eval(conc.Return(42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestReturnEvalString(t *testing.T) {
	got := eval(conc.Return("hello"))
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestReturnNoSuspension(t *testing.T) {
	// Return passes its value straight to the continuation: no tick.
	called := false
	act := conc.Return(7)(func(x int) conc.Action {
		called = true
		if x != 7 {
			t.Fatalf("got %d, want 7", x)
		}
		return conc.Stop{}
	})
	if !called {
		t.Fatal("continuation not invoked")
	}
	if _, ok := act.(conc.Stop); !ok {
		t.Fatalf("got %T, want Stop", act)
	}
}

func TestBindSimple(t *testing.T) {
	m := conc.Bind(conc.Return(10), func(x int) conc.Cont[int] {
		return conc.Return(x * 2)
	})
	got := eval(m)
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestBindChain(t *testing.T) {
	m := conc.Bind(conc.Return(5), func(x int) conc.Cont[int] {
		return conc.Bind(conc.Return(x+1), func(y int) conc.Cont[int] {
			return conc.Return(y * 2)
		})
	})
	got := eval(m)
	if got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestBindLeftIdentity(t *testing.T) {
	// Bind(Return(a), f) ≡ f(a)
	a := 7
	f := func(x int) conc.Cont[int] {
		return conc.Return(x * 3)
	}

	left := eval(conc.Bind(conc.Return(a), f))
	right := eval(f(a))

	if left != right {
		t.Fatalf("left identity failed: %d != %d", left, right)
	}
}

func TestBindRightIdentity(t *testing.T) {
	// Bind(m, Return) ≡ m
	m := conc.Return(42)

	left := eval(conc.Bind(m, func(x int) conc.Cont[int] {
		return conc.Return(x)
	}))
	right := eval(m)

	if left != right {
		t.Fatalf("right identity failed: %d != %d", left, right)
	}
}

func TestBindAssociativity(t *testing.T) {
	// Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
	m := conc.Return(2)
	f := func(x int) conc.Cont[int] {
		return conc.Return(x + 3)
	}
	g := func(x int) conc.Cont[int] {
		return conc.Return(x * 2)
	}

	left := eval(conc.Bind(conc.Bind(m, f), g))
	right := eval(conc.Bind(m, func(x int) conc.Cont[int] {
		return conc.Bind(f(x), g)
	}))

	if left != right {
		t.Fatalf("associativity failed: %d != %d", left, right)
	}
}

func TestBindIsLazy(t *testing.T) {
	// f must not run until the atom produces a value under the scheduler.
	ran := false
	m := conc.Bind(conc.Atom(func() int { return 1 }), func(x int) conc.Cont[int] {
		ran = true
		return conc.Return(x + 1)
	})
	if ran {
		t.Fatal("Bind evaluated f at construction time")
	}
	act := conc.Reify(m)
	if ran {
		t.Fatal("Reify evaluated f before the atom ticked")
	}
	conc.NewRoundRobin(act).Run(nil)
	if !ran {
		t.Fatal("f never ran")
	}
}

func TestMap(t *testing.T) {
	m := conc.Map(conc.Return(10), func(x int) int {
		return x * 3
	})
	got := eval(m)
	if got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestMapOverAtom(t *testing.T) {
	m := conc.Map(conc.Atom(func() int { return 4 }), func(x int) string {
		if x != 4 {
			t.Fatalf("got %d, want 4", x)
		}
		return "four"
	})
	got := eval(m)
	if got != "four" {
		t.Fatalf("got %q, want %q", got, "four")
	}
}

func TestThenDiscardsFirst(t *testing.T) {
	var out []string
	m := conc.Then(say(&out, "first"), conc.Return("second"))
	got := eval(m)
	if got != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}
	if len(out) != 1 || out[0] != "first" {
		t.Fatalf("first effect missing: %v", out)
	}
}

func TestSuspend(t *testing.T) {
	m := conc.Suspend(func(k func(int) conc.Action) conc.Action {
		return k(42)
	})
	got := eval(m)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestSuspendCustomAtomic(t *testing.T) {
	// A raw CPS function may suspend itself behind an Atomic.
	m := conc.Suspend(func(k func(int) conc.Action) conc.Action {
		return conc.Atomic{Step: func() conc.Action {
			return k(9)
		}}
	})
	got := eval(m)
	if got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestAtomRunsOncePerTick(t *testing.T) {
	count := 0
	m := conc.Atom(func() int {
		count++
		return count
	})
	got := eval(m)
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if count != 1 {
		t.Fatalf("atom ran %d times, want 1", count)
	}
}

func TestAtomNoEffectAtConstruction(t *testing.T) {
	ran := false
	m := conc.Atom(func() struct{} {
		ran = true
		return struct{}{}
	})
	act := conc.Reify(m)
	if ran {
		t.Fatal("atom payload ran before any tick")
	}
	_ = act
}

func TestHaltIgnoresContinuation(t *testing.T) {
	var out []string
	m := conc.Then(say(&out, "a"), conc.Then(conc.Halt[struct{}](), say(&out, "b")))
	conc.NewRoundRobin(conc.Reify(m)).Run(nil)
	if len(out) != 1 || out[0] != "a" {
		t.Fatalf("got %v, want [a]", out)
	}
}

func TestHaltAction(t *testing.T) {
	act := conc.Halt[int]()(func(int) conc.Action {
		t.Fatal("continuation invoked")
		return conc.Stop{}
	})
	if _, ok := act.(conc.Stop); !ok {
		t.Fatalf("got %T, want Stop", act)
	}
}

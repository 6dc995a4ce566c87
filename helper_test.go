// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc_test

import (
	"fmt"
	"time"

	conc "github.com/avieth/PoorMansConcurrency"
)

// eval runs a computation synchronously to completion and returns its
// produced value. The value is captured by a trailing atom so the capture
// itself is a scheduled effect, not construction-time work.
func eval[A any](m conc.Cont[A]) A {
	var out A
	prog := conc.Bind(m, func(a A) conc.Cont[struct{}] {
		return conc.Atom(func() struct{} {
			out = a
			return struct{}{}
		})
	})
	conc.NewRoundRobin(conc.Reify(prog)).Run(nil)
	return out
}

// say appends s to *out as one atomic tick.
func say(out *[]string, s string) conc.Cont[struct{}] {
	return conc.Atom(func() struct{} {
		*out = append(*out, s)
		return struct{}{}
	})
}

// sayN chains n atoms appending "<prefix>1".."<prefix>n" to *out.
func sayN(out *[]string, prefix string, n int) conc.Cont[struct{}] {
	m := say(out, fmt.Sprintf("%s%d", prefix, 1))
	for i := 2; i <= n; i++ {
		m = conc.Then(m, say(out, fmt.Sprintf("%s%d", prefix, i)))
	}
	return m
}

// hostLoop is a minimal fake host environment: Post models "defer to
// later", Drain runs posted callbacks in order until none remain.
// Callbacks posted while draining run in the same drain.
type hostLoop struct {
	pending []func()
	posted  int
}

func (l *hostLoop) Post(fn func()) {
	l.pending = append(l.pending, fn)
	l.posted++
}

func (l *hostLoop) Drain() {
	for len(l.pending) > 0 {
		fn := l.pending[0]
		l.pending = l.pending[1:]
		fn()
	}
}

// fakeClock is a deterministic monotonic clock advancing by step on every
// reading.
type fakeClock struct {
	at   time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.at = c.at.Add(c.step)
	return c.at
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conc

// minQueueCap is the initial ring capacity; must be a power of two.
const minQueueCap = 8

// Queue is a growable FIFO ring buffer with O(1) Enqueue and Dequeue.
// The scheduler uses Queue[Action] to hold pending strands.
//
// Queue is not safe for concurrent use. During a scheduler run the queue
// is mutated only by the scheduler, on a single logical thread of control.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// NewQueue creates a queue seeded with the given items in order.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range items {
		q.Enqueue(v)
	}
	return q
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)&(len(q.buf)-1)] = v
	q.size++
}

// Dequeue removes and returns the head item.
// Returns (zero, false) when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the slot for collection
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.size--
	return v, true
}

// grow doubles the ring capacity, relinking wrapped contents contiguously.
func (q *Queue[T]) grow() {
	capacity := len(q.buf) * 2
	if capacity == 0 {
		capacity = minQueueCap
	}
	buf := make([]T, capacity)
	n := copy(buf, q.buf[q.head:])
	copy(buf[n:], q.buf[:q.head])
	q.buf = buf
	q.head = 0
}

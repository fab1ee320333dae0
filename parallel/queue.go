package parallel

import (
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Put after Close.
var ErrQueueClosed = errors.New("parallel: queue closed")

// BoundedQueue is a FIFO with fixed capacity. Put blocks while the queue is
// full and Take blocks while it is empty.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	buf      []T
	head     int
	size     int
	closed   bool
}

// NewBoundedQueue creates a queue holding at most capacity items.
// Panics if capacity < 1.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		panic("parallel: queue capacity must be positive")
	}
	q := &BoundedQueue[T]{buf: make([]T, capacity)}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Put appends v, blocking while the queue is full.
func (q *BoundedQueue[T]) Put(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == len(q.buf) && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return ErrQueueClosed
	}

	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
	q.notEmpty.Signal()
	return nil
}

// Take removes the oldest item, blocking while the queue is empty.
// ok is false once the queue is closed and drained.
func (q *BoundedQueue[T]) Take() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if q.size == 0 {
		return v, false
	}
	return q.pop(), true
}

func (q *BoundedQueue[T]) pop() T {
	var zero T
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	q.notFull.Signal()
	return v
}

// Close stops further Puts and wakes all blocked callers. Items already
// queued can still be taken.
func (q *BoundedQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

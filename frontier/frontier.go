package frontier

import "fmt"

// New returns an empty Frontier using discipline d.
func New[T any](d Discipline) (Frontier[T], error) {
	switch d {
	case Stack:
		return NewStack[T](), nil
	case Queue:
		return NewQueue[T](), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownDiscipline, d)
}

// StackFrontier is a LIFO Frontier backed by a slice.
type StackFrontier[T any] struct {
	items []T
}

// NewStack returns an empty LIFO frontier.
func NewStack[T any]() *StackFrontier[T] {
	return &StackFrontier[T]{}
}

// Store pushes v on top.
func (s *StackFrontier[T]) Store(v T) {
	s.items = append(s.items, v)
}

// Retrieve pops the top value.
func (s *StackFrontier[T]) Retrieve() T {
	n := len(s.items)
	if n == 0 {
		panic(ErrEmpty)
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]
	return v
}

// IsEmpty reports whether the stack is empty.
func (s *StackFrontier[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the stack size.
func (s *StackFrontier[T]) Len() int { return len(s.items) }

// QueueFrontier is a FIFO Frontier backed by a growable ring buffer.
type QueueFrontier[T any] struct {
	buf   []T
	head  int
	count int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T any]() *QueueFrontier[T] {
	return &QueueFrontier[T]{}
}

// Store appends v at the tail.
func (q *QueueFrontier[T]) Store(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
}

// Retrieve removes the value at the head.
func (q *QueueFrontier[T]) Retrieve() T {
	if q.count == 0 {
		panic(ErrEmpty)
	}
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return v
}

// IsEmpty reports whether the queue is empty.
func (q *QueueFrontier[T]) IsEmpty() bool { return q.count == 0 }

// Len returns the queue size.
func (q *QueueFrontier[T]) Len() int { return q.count }

// grow doubles the buffer, unrolling the ring so head restarts at 0.
func (q *QueueFrontier[T]) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = 16
	}
	buf := make([]T, size)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}

// Package async provides a small future type for work that must run to
// completion once dispatched.
package async

import "context"

// Task is the pending result of a function started with Go.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn in its own goroutine and returns a handle to its result.
func Go[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.value, t.err = fn()
	}()
	return t
}

// Done is closed once the result is available.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await suspends until the task finishes or ctx ends. When ctx ends first the
// task keeps running and ctx.Err() is returned.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

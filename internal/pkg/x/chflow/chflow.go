// Package chflow provides context-aware helpers for channel operations and
// waits, so blocking steps always respect cancellation and deadlines.
package chflow

import (
	"context"
	"time"
)

// Receive waits to receive a value from ch or for ctx to be done.
// It returns the value (zero value if canceled) and whether the receive succeeded.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send data on ch unless ctx is done first.
// It returns true if the value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Sleep pauses for d or until ctx is done, whichever happens first.
// It returns false if ctx ended the wait. A non-positive d returns immediately
// with the context state.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

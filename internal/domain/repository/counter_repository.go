package repository

import "context"

// CounterRepository hands out values from named monotonic sequences
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new
	// value. Concurrent callers always receive distinct values.
	Next(ctx context.Context, name string) (int64, error)
}

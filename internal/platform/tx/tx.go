package tx

import "context"

// Manager brackets work spanning more than one store, such as deleting a
// session together with its content rows or a template with its links.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

// NoopManager runs the function without a transaction. The shared SQLite
// handle allows a single connection, which already serializes writers.
type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

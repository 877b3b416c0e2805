// Package tenant carries the current request's tenant id through the call
// chain. The id rides the request context, so concurrent requests in the
// same process never see each other's tenant.
package tenant

import "context"

type ctxKey struct{}

// WithID returns a context carrying the given tenant id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID extracts the tenant id from ctx. The second return is false when the
// context carries none.
func ID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}

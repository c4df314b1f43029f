package emitter

import "context"

type exchangeIDKey struct{}

// WithExchangeID returns a context carrying the id of the HTTP exchange being emitted.
// Sinks use it to correlate the request and response records.
func WithExchangeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, exchangeIDKey{}, id)
}

// ExchangeID returns the exchange id stored in ctx, or an empty string.
func ExchangeID(ctx context.Context) string {
	id, _ := ctx.Value(exchangeIDKey{}).(string)

	return id
}

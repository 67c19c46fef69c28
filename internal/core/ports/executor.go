package ports

import "context"

// Credentials authorize a single request against one capability group.
type Credentials struct {
	MerchantID int
	Passcode   string
}

// Executor performs the network call for a request and returns the raw response body.
// Implementations decide how non-success status codes are reported.
type Executor interface {
	Execute(ctx context.Context, method, url string, body []byte, creds Credentials) ([]byte, error)
}

// Codec turns payloads into wire bytes and back.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type requestIDKey struct{}

// WithRequestID attaches the id an Executor should send with the request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

package reqctx

import (
	"context"
	"time"
)

// ctxKey is unexported so no other package can collide with our keys.
type ctxKey int

const (
	keyRequestMeta ctxKey = iota
	keyClaims
	keyTenant
)

// RequestMeta is the per-request metadata captured by the HTTP middleware
// before any handler runs.
type RequestMeta struct {
	// RequestID is the X-Request-Id value, generated when the client did
	// not send one.
	RequestID string

	// ClientIP may come from X-Forwarded-For behind a proxy.
	ClientIP string

	UserAgent string

	RequestedAt time.Time
}

// WithRequestMeta stores request metadata in the context.
func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext returns the metadata set by WithRequestMeta. The
// second return is false outside an HTTP request.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	v := ctx.Value(keyRequestMeta)
	if v == nil {
		return nil, false
	}
	meta, ok := v.(*RequestMeta)
	return meta, ok
}

// RequestIDFromContext returns just the request ID, or "" when no metadata
// is present.
func RequestIDFromContext(ctx context.Context) string {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok || meta == nil {
		return ""
	}
	return meta.RequestID
}

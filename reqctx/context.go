package reqctx

import "context"

// Context key type
type contextKey string

const requestIDKey contextKey = "request_id"
const clientIPKey contextKey = "client_ip"

// SetRequestID adds the correlation id to request context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the correlation id from request context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// SetClientIP adds the caller address to request context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the caller address from request context
func GetClientIP(ctx context.Context) string {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok {
		return "unknown"
	}
	return ip
}

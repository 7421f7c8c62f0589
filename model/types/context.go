package types

import "context"

type invocationContextKey string

// InvocationContextKey holds values describing the command line being executed.
var InvocationContextKey = invocationContextKey("invocation-context")

// EnsureInvocationContext returns a context carrying an invocation value map
// with the supplied key/value pairs added. Values inherited from ctx are
// copied, so the parent context is never modified.
func EnsureInvocationContext(ctx context.Context, pairs ...string) context.Context {
	values := map[string]string{}
	if inherited, ok := ctx.Value(InvocationContextKey).(map[string]string); ok {
		for k, v := range inherited {
			values[k] = v
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		values[pairs[i]] = pairs[i+1]
	}
	return context.WithValue(ctx, InvocationContextKey, values)
}

// InvocationValue returns a value stored with EnsureInvocationContext.
func InvocationValue(ctx context.Context, key string) string {
	if ctx == nil {
		return ""
	}
	values, ok := ctx.Value(InvocationContextKey).(map[string]string)
	if !ok {
		return ""
	}
	return values[key]
}

// Invocation value keys.
const (
	InvocationIDKey   = "id"
	InvocationLineKey = "line"
)

package event

import "context"

type invocationIDKey struct{}

// WithInvocationID tags the context with the identifier of the tool
// invocation driving the current command.
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, invocationID)
}

// InvocationIDFromContext returns the invocation identifier carried by the
// context, or empty when the command was not driven by a tool call.
func InvocationIDFromContext(ctx context.Context) string {
	invocationID, _ := ctx.Value(invocationIDKey{}).(string)
	return invocationID
}

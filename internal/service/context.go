package service

import "context"

type actorKey struct{}

// WithActor stamps the acting operator's email onto ctx. The HTTP layer sets
// it after resolving the session; audit entries read it back.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

// ActorFrom returns the acting operator's email, or "unknown" when the
// context carries none.
func ActorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

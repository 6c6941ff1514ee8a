// Package context provides request-scoped values: tracing info and the
// acting user's role. The role travels with the request context so the
// query layer never reads ambient session state.
package context

import "context"

type actorRoleKey struct{}

// WithActorRole stores the actor's raw role string in context.
func WithActorRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, actorRoleKey{}, role)
}

// ActorRoleValue returns the raw role string from context, if set.
func ActorRoleValue(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(actorRoleKey{}).(string); ok {
		return v, true
	}
	return "", false
}

package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with what the request is for, e.g.
// "motivation" or "daily-boss". The logging decorator records it on the
// event timeline.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag, or "" when untagged.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return ""
}

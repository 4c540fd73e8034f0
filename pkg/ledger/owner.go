package ledger

import "context"

// Owner is a verified owner identity. Handlers construct one only after
// authenticating the request, so any service call carrying an Owner is
// operating on behalf of an authenticated user rather than a raw id string.
type Owner string

func (o Owner) String() string { return string(o) }

type ownerCtxKey struct{}

// WithOwner returns a context carrying the verified owner identity.
func WithOwner(ctx context.Context, owner Owner) context.Context {
	return context.WithValue(ctx, ownerCtxKey{}, owner)
}

// OwnerFromContext extracts the verified owner identity, if any.
func OwnerFromContext(ctx context.Context) (Owner, bool) {
	owner, ok := ctx.Value(ownerCtxKey{}).(Owner)
	return owner, ok && owner != ""
}

package auth

import "context"

type contextKey struct{}

var accountIDKey = contextKey{}

func ContextWithAccountID(ctx context.Context, accountID int) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromContext returns the account id set by the auth middleware.
func AccountIDFromContext(ctx context.Context) (int, bool) {
	accountID, ok := ctx.Value(accountIDKey).(int)
	return accountID, ok
}

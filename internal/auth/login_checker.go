package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// LoginChecker resolves session tokens to account ids.
type LoginChecker struct {
	redisClient *redis.Client
}

func NewLoginChecker(redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		redisClient: redisClient,
	}
}

// AccountID returns the account id behind the session token,
// or ErrNotLoggedIn if the session is missing or expired.
func (lc *LoginChecker) AccountID(ctx context.Context, token string) (int, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}

	accountID, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return 0, fmt.Errorf("parse account id: %w", err)
	}

	return accountID, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avolkov/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	ResetTokenTTL    = time.Hour
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
	resetKeyPrefix   = "fittrack-pass-reset||"
)

var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrInvalidResetToken = errors.New("invalid reset token")
)

// Service issues and revokes opaque session tokens, stored in redis
// with the account id as the value and a native TTL.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, accountID int) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, accountID, as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return true, nil
}

// CreatePasswordResetToken issues a short-lived token mapped to the account.
func (as *Service) CreatePasswordResetToken(ctx context.Context, accountID int) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	resetKey := resetKeyPrefix + token
	if err := as.redisClient.Set(ctx, resetKey, accountID, ResetTokenTTL).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// ConsumePasswordResetToken resolves and invalidates a reset token.
func (as *Service) ConsumePasswordResetToken(ctx context.Context, token string) (int, error) {
	resetKey := resetKeyPrefix + token
	cmd := as.redisClient.Get(ctx, resetKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrInvalidResetToken
		}
		return 0, err
	}

	accountID, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return 0, fmt.Errorf("parse account id: %w", err)
	}

	if err := as.redisClient.Del(ctx, resetKey).Err(); err != nil {
		return 0, err
	}

	return accountID, nil
}

// ScanAndClean will run through all session tokens and remove from the
// sessions set those whose session key expired
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		existsRes, err := as.redisClient.Exists(ctx, sessionKey).Result()
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if existsRes > 0 {
			continue
		}

		log.Warnf("=>\twill clean the expired session with token: %s", token)
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}

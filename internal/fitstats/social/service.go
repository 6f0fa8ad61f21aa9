package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avolkov/fittrack/internal/accounts"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=social_test

const (
	// LeaderboardSize caps how many entries a leaderboard returns.
	LeaderboardSize = 10

	leaderboardCacheExpireSeconds = 60
)

// AddFriendStatus tells the client how an add-by-email attempt went.
type AddFriendStatus string

const (
	AddFriendOK       AddFriendStatus = "ok"
	AddFriendNotFound AddFriendStatus = "not-found"
	AddFriendSelfAdd  AddFriendStatus = "self-add"
)

type socialRepo interface {
	TopByExercise(ctx context.Context, exercise string, limit int) ([]LeaderboardEntry, error)
	AddFriend(ctx context.Context, accountID, friendID int) error
	Friends(ctx context.Context, accountID int, today string) ([]FriendEntry, error)
}

type accountLookup interface {
	GetByEmail(ctx context.Context, email string) (*accounts.Account, error)
}

type Service struct {
	repo     socialRepo
	accounts accountLookup
	cache    *freecache.Cache
	now      func() time.Time
}

func NewService(repo socialRepo, accounts accountLookup) *Service {
	megabyte := 1024 * 1024
	return &Service{
		repo:     repo,
		accounts: accounts,
		cache:    freecache.NewCache(10 * megabyte),
		now:      time.Now,
	}
}

// Leaderboard returns the top accounts for an exercise. Results are
// cached for a minute, the board does not need to move in real time.
func (s *Service) Leaderboard(ctx context.Context, exercise string) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "social.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte("leaderboard::" + exercise)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var entries []LeaderboardEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			log.Tracef("leaderboard for %s served from cache", exercise)
			return entries, nil
		}
		s.cache.Del(cacheKey)
	}

	entries, err := s.repo.TopByExercise(ctx, exercise, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("top by exercise: %w", err)
	}
	if entries == nil {
		entries = []LeaderboardEntry{}
	}

	if entriesJSON, err := json.Marshal(entries); err == nil {
		if err := s.cache.Set(cacheKey, entriesJSON, leaderboardCacheExpireSeconds); err != nil {
			log.Errorf("failed to cache leaderboard for %s: %s", exercise, err)
		}
	}

	return entries, nil
}

// AddFriend links the account to another one found by email. The link
// is one directional, the other side keeps their own list.
func (s *Service) AddFriend(ctx context.Context, accountID int, email string) (_ AddFriendStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "social.addFriend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	friend, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return AddFriendNotFound, nil
		}
		return "", fmt.Errorf("get account by email: %w", err)
	}

	if friend.ID == accountID {
		return AddFriendSelfAdd, nil
	}

	if err := s.repo.AddFriend(ctx, accountID, friend.ID); err != nil {
		return "", fmt.Errorf("add friend: %w", err)
	}

	log.Debugf("account %d: friend added: %d", accountID, friend.ID)
	return AddFriendOK, nil
}

func (s *Service) Friends(ctx context.Context, accountID int) (_ []FriendEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "social.friends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.repo.Friends(ctx, accountID, pkg.DateString(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	if entries == nil {
		entries = []FriendEntry{}
	}
	return entries, nil
}

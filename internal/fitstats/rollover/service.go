package rollover

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avolkov/fittrack/internal/fitstats/history"
	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/telemetry/metrics"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=rollover_test

type profileRepo interface {
	Get(ctx context.Context, accountID int) (*profile.Profile, error)
	Create(ctx context.Context, p *profile.Profile) error
	Update(ctx context.Context, p *profile.Profile) error
}

type historyRepo interface {
	Insert(ctx context.Context, record history.Record) error
}

// Service reconciles profiles on access and persists the outcome.
// The snapshot is written before the profile row moves forward, so a
// crash in between re-runs the rollover on the next visit and the
// write once history insert absorbs the duplicate.
type Service struct {
	profiles profileRepo
	snaps    historyRepo
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewService(profiles profileRepo, snaps historyRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		profiles: profiles,
		snaps:    snaps,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// GetProfile returns the account's profile advanced to today, creating
// a default one on first access.
func (s *Service) GetProfile(ctx context.Context, accountID int) (_ *profile.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rollover.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := pkg.DateString(s.now())

	stored, err := s.profiles.Get(ctx, accountID)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	result, err := Reconcile(accountID, stored, today)
	if err != nil {
		return nil, err
	}

	switch result.Decision {
	case DecisionCreate:
		if err := s.profiles.Create(ctx, result.Profile); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		log.Debugf("account %d: default profile created for %s", accountID, today)
	case DecisionNoop:
		if result.Migrated {
			if err := s.profiles.Update(ctx, result.Profile); err != nil {
				return nil, fmt.Errorf("persist migrated profile: %w", err)
			}
		}
	case DecisionRollover:
		if result.Snapshot != nil {
			if err := s.snaps.Insert(ctx, *result.Snapshot); err != nil {
				return nil, fmt.Errorf("insert history snapshot: %w", err)
			}
			s.metrics.CounterHistorySnapshots.Inc()
		}
		if err := s.profiles.Update(ctx, result.Profile); err != nil {
			return nil, fmt.Errorf("persist rolled over profile: %w", err)
		}
		s.metrics.CounterRollovers.Inc()
		log.Debugf(
			"account %d: rolled over to %s, streak %d",
			accountID, today, result.Profile.Streak,
		)
	}

	return result.Profile, nil
}

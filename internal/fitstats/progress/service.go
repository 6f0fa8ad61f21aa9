package progress

import (
	"context"
	"fmt"

	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/fitstats/rank"
	"github.com/avolkov/fittrack/internal/telemetry/metrics"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type reconciler interface {
	GetProfile(ctx context.Context, accountID int) (*profile.Profile, error)
}

type profileRepo interface {
	Update(ctx context.Context, p *profile.Profile) error
}

type statsRepo interface {
	AddToGlobalCount(ctx context.Context, accountID int, exercise string, amount int) error
}

// Result is the outcome of one logged set.
type Result struct {
	Profile *profile.Profile `json:"profile"`
	// GoalReached is true only for the set that crosses the daily target.
	GoalReached bool        `json:"goalReached"`
	Rank        rank.Status `json:"rank"`
}

type Service struct {
	reconciler reconciler
	profiles   profileRepo
	stats      statsRepo
	metrics    *metrics.Manager
}

func NewService(
	reconciler reconciler,
	profiles profileRepo,
	stats statsRepo,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		reconciler: reconciler,
		profiles:   profiles,
		stats:      stats,
		metrics:    metricsManager,
	}
}

// LogProgress adds amount to the exercise's daily count and all lifetime
// totals. A non-positive amount changes nothing and is not an error, the
// unchanged profile comes back as is. Counts only ever grow, there is no
// undo.
func (s *Service) LogProgress(ctx context.Context, accountID int, exerciseName string, amount int) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.reconciler.GetProfile(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	exercise, err := p.Exercise(exerciseName)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return &Result{Profile: p, Rank: rank.StatusFor(p.TotalXP)}, nil
	}

	countBefore := exercise.Count
	exercise.Count += amount
	exercise.Lifetime += amount
	p.TotalLifetimeCount += amount
	p.TotalXP += float64(amount) * exercise.XPPerRep

	goalReached := countBefore < exercise.Target && exercise.Count >= exercise.Target

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := s.stats.AddToGlobalCount(ctx, accountID, exerciseName, amount); err != nil {
		// leaderboard counts are best effort, the profile write is the
		// source of truth
		log.Errorf("account %d: failed to bump global count for %s: %s", accountID, exerciseName, err)
	}

	s.metrics.CounterProgressLogs.Inc()
	if goalReached {
		s.metrics.CounterGoalsReached.Inc()
	}

	log.Debugf(
		"account %d: +%d %s, count %d/%d, goal reached: %t",
		accountID, amount, exerciseName, exercise.Count, exercise.Target, goalReached,
	)

	return &Result{Profile: p, GoalReached: goalReached, Rank: rank.StatusFor(p.TotalXP)}, nil
}

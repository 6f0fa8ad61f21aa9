package rollover

import (
	"fmt"

	"github.com/avolkov/fittrack/internal/fitstats/history"
	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/pkg"
)

// Decision says what reconciliation concluded for a profile.
type Decision int

const (
	// DecisionCreate means no profile existed and a fresh one was seeded.
	DecisionCreate Decision = iota
	// DecisionNoop means the profile is already on today's date.
	DecisionNoop
	// DecisionRollover means at least one day passed since the last visit
	// and the profile was advanced to today.
	DecisionRollover
)

func (d Decision) String() string {
	switch d {
	case DecisionCreate:
		return "create"
	case DecisionNoop:
		return "noop"
	case DecisionRollover:
		return "rollover"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Result carries the reconciled profile and, when the closed day had
// activity, the snapshot that must be written to history.
type Result struct {
	Decision Decision
	Profile  *profile.Profile
	// Snapshot is non-nil only for rollovers of a day with activity.
	Snapshot *history.Record
	Migrated bool
}

// Reconcile advances a stored profile to today. It is a pure function:
// persistence of the result is the caller's concern.
//
// On rollover the closed day's counts are snapshotted (if any exercise
// was done), every daily count resets to zero and the streak is updated:
// it grows by one only when the closed day is literally yesterday and
// had activity, stays put when yesterday was simply opened and left
// idle, and drops to zero after a gap of two or more days.
func Reconcile(accountID int, stored *profile.Profile, today string) (*Result, error) {
	todayDate, err := pkg.ParseDateString(today)
	if err != nil {
		return nil, fmt.Errorf("parse today: %w", err)
	}

	if stored == nil {
		return &Result{
			Decision: DecisionCreate,
			Profile:  profile.New(accountID, today),
		}, nil
	}

	migrated := profile.Migrate(stored)

	// lastDate never moves backwards, a skewed clock must not rewind it
	if stored.LastDate >= today {
		return &Result{
			Decision: DecisionNoop,
			Profile:  stored,
			Migrated: migrated,
		}, nil
	}

	var snapshot *history.Record
	if stored.HasActivity() {
		snapshot = &history.Record{
			AccountID: accountID,
			Date:      stored.LastDate,
			Exercises: stored.CloneExercises(),
		}
	}

	yesterday := pkg.DateString(todayDate.AddDate(0, 0, -1))
	switch {
	case stored.LastDate == yesterday && stored.HasActivity():
		stored.Streak++
	case stored.LastDate == yesterday:
		// yesterday was opened but idle, streak neither grows nor breaks
	default:
		stored.Streak = 0
	}

	for i := range stored.Exercises {
		stored.Exercises[i].Count = 0
	}
	stored.LastDate = today

	return &Result{
		Decision: DecisionRollover,
		Profile:  stored,
		Snapshot: snapshot,
		Migrated: migrated,
	}, nil
}

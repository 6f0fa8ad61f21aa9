package history

import (
	"time"

	"github.com/avolkov/fittrack/internal/fitstats/profile"
)

// MaxRecords caps how far back a history listing reaches.
const MaxRecords = 365

// Record is a finalized snapshot of one day's exercise counts.
// Records are write once, one per account per calendar date.
type Record struct {
	AccountID int                `json:"-"`
	Date      string             `json:"date"`
	Exercises []profile.Exercise `json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ExerciseCount returns the recorded count for the named exercise,
// zero if the exercise was not tracked that day.
func (r Record) ExerciseCount(name string) int {
	for i := range r.Exercises {
		if r.Exercises[i].Name == name {
			return r.Exercises[i].Count
		}
	}
	return 0
}

// TotalCount sums the day's counts over all exercises.
func (r Record) TotalCount() int {
	var total int
	for i := range r.Exercises {
		total += r.Exercises[i].Count
	}
	return total
}

package social

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeaderboardEntry is one row of an exercise leaderboard, ordered by
// lifetime count.
type LeaderboardEntry struct {
	Position    int    `json:"position"`
	DisplayName string `json:"displayName"`
	Count       int    `json:"count"`
}

// FriendEntry is one row of an account's friend list.
type FriendEntry struct {
	DisplayName string  `json:"displayName"`
	Email       string  `json:"email"`
	TotalXP     float64 `json:"totalXP"`
	TodayCount  int     `json:"todayCount"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) TopByExercise(ctx context.Context, exercise string, limit int) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "socialRepo.topByExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT display_name, count
			FROM global_stat
			WHERE exercise = $1 AND count > 0
			ORDER BY count DESC, display_name ASC
			LIMIT $2`,
		exercise, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		if err = rows.Scan(&entry.DisplayName, &entry.Count); err != nil {
			return nil, err
		}
		entry.Position = len(entries) + 1
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) AddFriend(ctx context.Context, accountID, friendID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "socialRepo.addFriend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// adding the same friend twice is fine and changes nothing
	_, err = r.db.Exec(ctx,
		`INSERT INTO friend (account_id, friend_id)
			VALUES ($1, $2)
			ON CONFLICT (account_id, friend_id) DO NOTHING`,
		accountID, friendID,
	)
	return err
}

// Friends lists an account's friends with their XP and the count they
// logged today. A friend whose profile still sits on an older date has
// logged nothing today, whatever their stored daily counts say.
func (r *Repo) Friends(ctx context.Context, accountID int, today string) (_ []FriendEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "socialRepo.friends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT a.display_name, a.email,
				COALESCE(p.total_xp, 0), COALESCE(p.last_date, ''), COALESCE(p.exercises, '[]')
			FROM friend f
			JOIN account a ON a.id = f.friend_id
			LEFT JOIN profile p ON p.account_id = f.friend_id
			WHERE f.account_id = $1
			ORDER BY COALESCE(p.total_xp, 0) DESC, a.display_name ASC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []FriendEntry
	for rows.Next() {
		var (
			entry         FriendEntry
			lastDate      string
			exercisesJSON []byte
		)
		if err = rows.Scan(&entry.DisplayName, &entry.Email, &entry.TotalXP, &lastDate, &exercisesJSON); err != nil {
			return nil, err
		}

		if lastDate == today {
			var exercises []profile.Exercise
			if err = json.Unmarshal(exercisesJSON, &exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for %s: %w", entry.Email, err)
			}
			for i := range exercises {
				entry.TodayCount += exercises[i].Count
			}
		}

		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

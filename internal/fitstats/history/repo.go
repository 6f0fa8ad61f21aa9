package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Insert stores a daily snapshot. A record already present for the
// same account and date is left untouched, so rollover retries and
// concurrent logins cannot produce duplicates.
func (r *Repo) Insert(ctx context.Context, record Record) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "historyRepo.insert")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJSON, err := json.Marshal(record.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO history (account_id, date, exercises)
			VALUES ($1, $2, $3)
			ON CONFLICT (account_id, date) DO NOTHING`,
		record.AccountID, record.Date, exercisesJSON,
	)
	return err
}

// List returns the most recent records first, at most limit of them.
// A non-positive or too large limit falls back to MaxRecords.
func (r *Repo) List(ctx context.Context, accountID int, limit int) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "historyRepo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 || limit > MaxRecords {
		limit = MaxRecords
	}

	rows, err := r.db.Query(ctx,
		`SELECT account_id, date, exercises, created_at
			FROM history
			WHERE account_id = $1
			ORDER BY date DESC
			LIMIT $2`,
		accountID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record        Record
			exercisesJSON []byte
		)
		if err = rows.Scan(&record.AccountID, &record.Date, &exercisesJSON, &record.CreatedAt); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(exercisesJSON, &record.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises for %s: %w", record.Date, err)
		}
		if record.Exercises == nil {
			record.Exercises = []profile.Exercise{}
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListSince returns records with date >= since, most recent first.
func (r *Repo) ListSince(ctx context.Context, accountID int, since string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "historyRepo.listSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT account_id, date, exercises, created_at
			FROM history
			WHERE account_id = $1 AND date >= $2
			ORDER BY date DESC
			LIMIT $3`,
		accountID, since, MaxRecords,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record        Record
			exercisesJSON []byte
		)
		if err = rows.Scan(&record.AccountID, &record.Date, &exercisesJSON, &record.CreatedAt); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(exercisesJSON, &record.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises for %s: %w", record.Date, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

package progress

import (
	"context"

	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepo maintains per account, per exercise lifetime counts used
// by the leaderboards.
type StatsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepo(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) AddToGlobalCount(ctx context.Context, accountID int, exercise string, amount int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsRepo.addToGlobalCount")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`INSERT INTO global_stat (account_id, exercise, display_name, count)
			VALUES ($1, $2, (SELECT display_name FROM account WHERE id = $1), $3)
			ON CONFLICT (account_id, exercise) DO UPDATE
			SET count = global_stat.count + EXCLUDED.count,
				display_name = EXCLUDED.display_name`,
		accountID, exercise, amount,
	)
	return err
}

package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Get(ctx context.Context, accountID int) (*Profile, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileRepo.get")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		p             Profile
		exercisesJSON []byte
		settingsJSON  []byte
	)
	err = r.db.QueryRow(ctx,
		`SELECT account_id, exercises, last_date, streak, total_lifetime_count, total_xp, settings, schema_version
			FROM profile
			WHERE account_id = $1`,
		accountID,
	).Scan(
		&p.AccountID, &exercisesJSON, &p.LastDate, &p.Streak,
		&p.TotalLifetimeCount, &p.TotalXP, &settingsJSON, &p.SchemaVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if err = json.Unmarshal(exercisesJSON, &p.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	if err = json.Unmarshal(settingsJSON, &p.Settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return &p, nil
}

func (r *Repo) Create(ctx context.Context, p *Profile) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileRepo.create")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJSON, settingsJSON, err := marshalProfileDocs(p)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profile
			(account_id, exercises, last_date, streak, total_lifetime_count, total_xp, settings, schema_version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.AccountID, exercisesJSON, p.LastDate, p.Streak,
		p.TotalLifetimeCount, p.TotalXP, settingsJSON, p.SchemaVersion,
	)
	return err
}

func (r *Repo) Update(ctx context.Context, p *Profile) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileRepo.update")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJSON, settingsJSON, err := marshalProfileDocs(p)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE profile
			SET exercises = $2, last_date = $3, streak = $4,
				total_lifetime_count = $5, total_xp = $6, settings = $7, schema_version = $8
			WHERE account_id = $1`,
		p.AccountID, exercisesJSON, p.LastDate, p.Streak,
		p.TotalLifetimeCount, p.TotalXP, settingsJSON, p.SchemaVersion,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrProfileNotFound
		return err
	}
	return nil
}

func (r *Repo) UpdateSettings(ctx context.Context, accountID int, settings Settings) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileRepo.updateSettings")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE profile SET settings = $2 WHERE account_id = $1`,
		accountID, settingsJSON,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrProfileNotFound
		return err
	}
	return nil
}

func marshalProfileDocs(p *Profile) (exercisesJSON, settingsJSON []byte, err error) {
	exercisesJSON, err = json.Marshal(p.Exercises)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal exercises: %w", err)
	}
	settingsJSON, err = json.Marshal(p.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal settings: %w", err)
	}
	return exercisesJSON, settingsJSON, nil
}

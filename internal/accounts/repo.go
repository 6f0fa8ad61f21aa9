package accounts

import (
	"context"
	"errors"

	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, email, displayName, passwordHash string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "accountsRepo.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var account Account
	err = r.db.QueryRow(ctx,
		`INSERT INTO account (email, display_name, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id, email, display_name, password_hash, created_at`,
		email, displayName, passwordHash,
	).Scan(&account.ID, &account.Email, &account.DisplayName, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &account, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "accountsRepo.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var account Account
	err = r.db.QueryRow(ctx,
		`SELECT id, email, display_name, password_hash, created_at
			FROM account
			WHERE email = $1`,
		email,
	).Scan(&account.ID, &account.Email, &account.DisplayName, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (r *Repo) GetByID(ctx context.Context, id int) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "accountsRepo.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var account Account
	err = r.db.QueryRow(ctx,
		`SELECT id, email, display_name, password_hash, created_at
			FROM account
			WHERE id = $1`,
		id,
	).Scan(&account.ID, &account.Email, &account.DisplayName, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (r *Repo) UpdateDisplayName(ctx context.Context, id int, displayName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "accountsRepo.updateDisplayName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE account SET display_name = $2 WHERE id = $1`,
		id, displayName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrAccountNotFound
		return err
	}

	// keep the denormalized leaderboard names in sync
	_, err = r.db.Exec(ctx,
		`UPDATE global_stat SET display_name = $2 WHERE account_id = $1`,
		id, displayName,
	)
	return err
}

func (r *Repo) UpdatePassword(ctx context.Context, id int, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "accountsRepo.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE account SET password_hash = $2 WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrAccountNotFound
		return err
	}
	return nil
}

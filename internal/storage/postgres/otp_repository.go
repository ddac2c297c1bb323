package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

type OTPRepository struct {
	pool *pgxpool.Pool
}

func NewOTPRepository(pool *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{pool: pool}
}

// UpsertCode stores the record, replacing any active code for the email.
func (r *OTPRepository) UpsertCode(ctx context.Context, record domain.OTPRecord) error {
	const stmt = `
INSERT INTO otp_codes (email, code, expires_at, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`

	_, err := r.pool.Exec(ctx, stmt, record.Email, record.Code, record.ExpiresAt, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert otp code: %w", err)
	}
	return nil
}

func (r *OTPRepository) FindByEmail(ctx context.Context, email string) (*domain.OTPRecord, error) {
	const query = `SELECT email, code, expires_at, created_at FROM otp_codes WHERE email = $1`

	var rec domain.OTPRecord
	err := r.pool.QueryRow(ctx, query, email).Scan(&rec.Email, &rec.Code, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find otp code: %w", err)
	}
	return &rec, nil
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM otp_codes WHERE email = $1`, email); err != nil {
		return fmt.Errorf("delete otp code: %w", err)
	}
	return nil
}

// DeleteExpired removes codes whose window has passed. Called by the
// background sweeper; redemption handles expiry on its own regardless.
func (r *OTPRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM otp_codes WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired otp codes: %w", err)
	}
	return tag.RowsAffected(), nil
}

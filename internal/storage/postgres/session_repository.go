package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO sessions (token, user_email, expires_at, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, session.Token, session.UserEmail, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	const query = `SELECT token, user_email, expires_at, created_at FROM sessions WHERE token = $1`

	var s domain.Session
	err := r.pool.QueryRow(ctx, query, token).Scan(&s.Token, &s.UserEmail, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, nil
		}
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		if isInvalidUUID(err) {
			return nil
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired drops sessions past their expiry. Called by the sweeper.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

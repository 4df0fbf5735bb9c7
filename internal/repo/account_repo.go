package repo

import (
	"context"

	dom "github.com/DoaaAltair/Elite-Home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepo provides account persistence.
type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.Account, error)
	Create(ctx context.Context, username, passwordDigest string) (dom.Account, error)
}

// PGAccountRepo implements AccountRepo with Postgres.
type PGAccountRepo struct {
	db *pgxpool.Pool
}

// NewPGAccountRepo returns a new PGAccountRepo.
func NewPGAccountRepo(db *pgxpool.Pool) *PGAccountRepo {
	return &PGAccountRepo{db: db}
}

// GetByUsername returns the account by username. Lookup is case-sensitive.
func (r *PGAccountRepo) GetByUsername(ctx context.Context, username string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_digest, created_at FROM accounts WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordDigest, &a.CreatedAt)
	return a, err
}

// Create inserts a new account and returns it.
func (r *PGAccountRepo) Create(ctx context.Context, username, passwordDigest string) (dom.Account, error) {
	query := `
		INSERT INTO accounts (username, password_digest)
		VALUES ($1, $2)
		RETURNING id, username, password_digest, created_at`
	var a dom.Account
	err := r.db.QueryRow(ctx, query, username, passwordDigest).Scan(
		&a.ID, &a.Username, &a.PasswordDigest, &a.CreatedAt,
	)
	return a, err
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viniciusbarbosa/agendabarber-api/internal/model"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser inserts a new user. Returns ErrDuplicateEmail when the email
	// is already taken.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail retrieves a user by email. Returns ErrNotFound when no
	// user exists.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// SetResetToken stores a reset token and its expiry on the user,
	// overwriting any previous token.
	SetResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// GetUserByResetToken retrieves the user holding the given reset token.
	// Returns ErrNotFound when no user holds it.
	GetUserByResetToken(ctx context.Context, token string) (*model.User, error)

	// ConsumePasswordReset sets the new password hash and clears the reset
	// token in a single compare-and-swap update. Returns false when the token
	// no longer matches, i.e. it was consumed or replaced concurrently.
	ConsumePasswordReset(ctx context.Context, userID int64, token, passwordHash string) (bool, error)
}

const uniqueViolation = "23505"

type userPostgresRepository struct {
	pool *pgxpool.Pool
}

// NewUserPostgresRepository creates a Postgres-backed UserRepository.
func NewUserPostgresRepository(pool *pgxpool.Pool) UserRepository {
	return &userPostgresRepository{pool: pool}
}

func (r *userPostgresRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *userPostgresRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, reset_token, reset_expires, created_at
		FROM users
		WHERE email = $1`

	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userPostgresRepository) SetResetToken(
	ctx context.Context,
	userID int64,
	token string,
	expiresAt time.Time,
) error {
	query := `
		UPDATE users
		SET reset_token = $1, reset_expires = $2
		WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, token, expiresAt, userID)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userPostgresRepository) GetUserByResetToken(ctx context.Context, token string) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, reset_token, reset_expires, created_at
		FROM users
		WHERE reset_token = $1`

	return r.scanUser(r.pool.QueryRow(ctx, query, token))
}

func (r *userPostgresRepository) ConsumePasswordReset(
	ctx context.Context,
	userID int64,
	token, passwordHash string,
) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_expires = NULL
		WHERE id = $2 AND reset_token = $3`

	tag, err := r.pool.Exec(ctx, query, passwordHash, userID, token)
	if err != nil {
		return false, fmt.Errorf("consume reset token: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *userPostgresRepository) scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.ResetToken,
		&user.ResetExpires,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

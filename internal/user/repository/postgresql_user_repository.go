// Package repository implements data persistence for user accounts.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
	userDomain "github.com/septer/septer/internal/user/domain"
)

// pqUniqueViolation is the SQLSTATE reported for duplicate keys.
const pqUniqueViolation = "23505"

// PostgreSQLUserRepository implements User persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User. A duplicate email returns ErrUserAlreadyExists.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, email, password, role, api_key, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Password,
		user.Role.String(),
		user.APIKey,
		user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a User by ID.
func (p *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password, role, api_key, created_at FROM users WHERE id = $1`

	return p.scanOne(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByEmail retrieves a User by its (lower-cased) email.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password, role, api_key, created_at FROM users WHERE email = $1`

	return p.scanOne(querier.QueryRowContext(ctx, query, email), "failed to get user by email")
}

// UpdateAPIKey stores the (already sealed) LLM API key of a user.
func (p *PostgreSQLUserRepository) UpdateAPIKey(ctx context.Context, id uuid.UUID, apiKey string) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users SET api_key = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, apiKey, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user api key")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return userDomain.ErrUserNotFound
	}
	return nil
}

// List retrieves users ordered by creation time with pagination support.
// Returns an empty slice when no users are found.
func (p *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password, role, api_key, created_at
			  FROM users
			  ORDER BY created_at ASC, id ASC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*userDomain.User, 0)
	for rows.Next() {
		var user userDomain.User
		var role string
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Password,
			&role,
			&user.APIKey,
			&user.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user row")
		}
		if user.Role, err = parseStoredRole(role); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating user rows")
	}

	return users, nil
}

func (p *PostgreSQLUserRepository) scanOne(row *sql.Row, message string) (*userDomain.User, error) {
	var user userDomain.User
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&role,
		&user.APIKey,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}

	if user.Role, err = parseStoredRole(role); err != nil {
		return nil, err
	}
	return &user, nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL User repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

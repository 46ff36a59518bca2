package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
	userDomain "github.com/septer/septer/internal/user/domain"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLUserRepository implements User persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User. A duplicate email returns ErrUserAlreadyExists.
func (m *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `INSERT INTO users (id, email, password, role, api_key, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Email,
		user.Password,
		user.Role.String(),
		user.APIKey,
		user.CreatedAt,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a User by ID.
func (m *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT id, email, password, role, api_key, created_at FROM users WHERE id = ?`

	return m.scanOne(querier.QueryRowContext(ctx, query, idBytes), "failed to get user by id")
}

// GetByEmail retrieves a User by its (lower-cased) email.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, password, role, api_key, created_at FROM users WHERE email = ?`

	return m.scanOne(querier.QueryRowContext(ctx, query, email), "failed to get user by email")
}

// UpdateAPIKey stores the (already sealed) LLM API key of a user.
//
// MySQL reports zero affected rows when the value is unchanged, so a
// missing user is detected with an existence check instead.
func (m *MySQLUserRepository) UpdateAPIKey(ctx context.Context, id uuid.UUID, apiKey string) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	var exists int
	err = querier.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, idBytes).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userDomain.ErrUserNotFound
		}
		return apperrors.Wrap(err, "failed to check user")
	}

	if _, err := querier.ExecContext(ctx, `UPDATE users SET api_key = ? WHERE id = ?`, apiKey, idBytes); err != nil {
		return apperrors.Wrap(err, "failed to update user api key")
	}
	return nil
}

// List retrieves users ordered by creation time with pagination support.
// Returns an empty slice when no users are found.
func (m *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, password, role, api_key, created_at
			  FROM users
			  ORDER BY created_at ASC, id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*userDomain.User, 0)
	for rows.Next() {
		user, err := m.scan(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user row")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating user rows")
	}

	return users, nil
}

func (m *MySQLUserRepository) scanOne(row *sql.Row, message string) (*userDomain.User, error) {
	user, err := m.scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	return user, nil
}

func (m *MySQLUserRepository) scan(scan func(dest ...any) error) (*userDomain.User, error) {
	var user userDomain.User
	var idBytes []byte
	var role string

	if err := scan(&idBytes, &user.Email, &user.Password, &role, &user.APIKey, &user.CreatedAt); err != nil {
		return nil, err
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	var err error
	if user.Role, err = parseStoredRole(role); err != nil {
		return nil, err
	}
	return &user, nil
}

// NewMySQLUserRepository creates a new MySQL User repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/septer/septer/internal/auth/domain"
	userDomain "github.com/septer/septer/internal/user/domain"
)

func newMySQLRepoWithMock(t *testing.T) (*MySQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewMySQLUserRepository(db), mock
}

func binaryID(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLUserRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLRepoWithMock(t)
		user := newTestUser()

		mock.ExpectExec(`INSERT INTO users \(id, email, password, role, api_key, created_at\)`).
			WithArgs(binaryID(t, user.ID), user.Email, user.Password, "Hunter", nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), user))
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		repo, mock := newMySQLRepoWithMock(t)

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := repo.Create(context.Background(), newTestUser())
		assert.ErrorIs(t, err, userDomain.ErrUserAlreadyExists)
	})
}

func TestMySQLUserRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLRepoWithMock(t)
		user := newTestUser()

		mock.ExpectQuery(`FROM users WHERE id = \?`).
			WithArgs(binaryID(t, user.ID)).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(binaryID(t, user.ID), user.Email, user.Password, "Hunter", nil, user.CreatedAt))

		got, err := repo.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, authDomain.RoleHunter, got.Role)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLRepoWithMock(t)

		mock.ExpectQuery(`FROM users WHERE id = \?`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	})
}

func TestMySQLUserRepository_GetByEmail(t *testing.T) {
	repo, mock := newMySQLRepoWithMock(t)
	user := newTestUser()

	mock.ExpectQuery(`FROM users WHERE email = \?`).
		WithArgs(user.Email).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(binaryID(t, user.ID), user.Email, user.Password, "Guardian", "key", user.CreatedAt))

	got, err := repo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, authDomain.RoleGuardian, got.Role)
	assert.True(t, got.HasAPIKey())
}

func TestMySQLUserRepository_UpdateAPIKey(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLRepoWithMock(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT 1 FROM users WHERE id = \?`).
			WithArgs(binaryID(t, id)).
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
		mock.ExpectExec(`UPDATE users SET api_key = \? WHERE id = \?`).
			WithArgs("key", binaryID(t, id)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.UpdateAPIKey(context.Background(), id, "key"))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLRepoWithMock(t)

		mock.ExpectQuery(`SELECT 1 FROM users WHERE id = \?`).WillReturnError(sql.ErrNoRows)

		err := repo.UpdateAPIKey(context.Background(), uuid.Must(uuid.NewV7()), "key")
		assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	})
}

func TestMySQLUserRepository_List(t *testing.T) {
	repo, mock := newMySQLRepoWithMock(t)
	user := newTestUser()

	mock.ExpectQuery(`LIMIT \? OFFSET \?`).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(binaryID(t, user.ID), user.Email, user.Password, "Hunter", nil, user.CreatedAt))

	users, err := repo.List(context.Background(), 20, 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)
}

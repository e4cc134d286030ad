package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user-1", "siti", "siti@example.com", "hashed", nil, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	user := &domain.User{
		ID:           "user-1",
		Username:     "siti",
		Email:        "siti@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
	}

	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.User{
		ID:           "user-1",
		Username:     "siti",
		Email:        "siti@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("siti").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "password_hash", "full_name", "is_active", "created_at", "updated_at",
		}).AddRow("user-1", "siti", "siti@example.com", "hashed", "Siti Rahma", true, now, now))

	user, err := repo.GetByUsername(context.Background(), "siti")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	require.NotNil(t, user.FullName)
	assert.Equal(t, "Siti Rahma", *user.FullName)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "password_hash", "full_name", "is_active", "created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

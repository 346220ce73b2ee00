package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO User").
		WithArgs("Asha", "asha@example.com", "hash", "9800000000").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'asha@example.com' for key 'email'"})

	_, err = UserRepository{DB: db}.Create(context.Background(), models.User{
		Name: "Asha", Email: "asha@example.com", PasswordHash: "hash", Phone: "9800000000",
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, domain.KindConflict, domain.Kind(err))
}

func TestUserFindByEmailIncludesHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("FROM User WHERE email = \\?").WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "password", "phone", "created_at"}).
			AddRow(3, "Asha", "asha@example.com", "$2a$10$hash", "9800000000", created))

	u, err := UserRepository{DB: db}.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.ID(3), u.ID)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
}

func TestUserFindByIDAndUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE User SET name = \\?, phone = \\? WHERE user_id = \\?").
		WithArgs("Asha R", "9811111111", domain.ID(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM User WHERE user_id = \\?").WithArgs(domain.ID(3)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "created_at"}).
			AddRow(3, "Asha R", "asha@example.com", "9811111111", time.Now()))
	mock.ExpectQuery("FROM User WHERE user_id = \\?").WithArgs(domain.ID(4)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "created_at"}))

	repo := UserRepository{DB: db}
	ctx := context.Background()
	require.NoError(t, repo.UpdateProfile(ctx, 3, "Asha R", "9811111111"))

	u, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Asha R", u.Name)
	assert.Empty(t, u.PasswordHash)

	_, err = repo.FindByID(ctx, 4)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

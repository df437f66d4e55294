package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/Vedant222005/Messmate/internal/db/mocks"
	"github.com/Vedant222005/Messmate/internal/domain"
	"github.com/Vedant222005/Messmate/internal/repository/postgresql"
)

func testUser() *domain.User {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           "user-123",
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		user := testUser()

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(user.ID),
			gomock.Eq(user.Name),
			gomock.Eq(user.Email),
			gomock.Eq(user.PasswordHash),
			gomock.Eq(user.Role),
			gomock.Eq(user.Phone),
			gomock.Eq(user.Address),
			gomock.Eq(user.CreatedAt),
			gomock.Eq(user.UpdatedAt),
		).Return(nil, nil)

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23505"})

		err := repo.Create(ctx, testUser())
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, testUser())
		assert.Equal(t, expectedErr, err)
	})
}

func TestUserRepo_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("user found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		expected := testUser()

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(expected.Email)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*domain.User) = *expected
				return nil
			})

		user, err := repo.GetByEmail(ctx, expected.Email)
		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepo_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		user := testUser()
		user.Phone = "9999999999"

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(user.Name),
			gomock.Eq(user.Phone),
			gomock.Eq(user.Address),
			gomock.Eq(user.UpdatedAt),
			gomock.Eq(user.ID),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateProfile(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("no rows updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateProfile(ctx, testUser())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

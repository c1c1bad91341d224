package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"tcp-user-service/internal/domain/user"
	apperrors "tcp-user-service/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Migrate the schema
	require.NoError(t, Migrate(db))

	return db
}

func setupTestRepo(t *testing.T) *UserRepoPG {
	return NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
}

func TestUserRepoPG_CreateAssignsID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.GetByID(context.Background(), 12345)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepoPG_List(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("empty table yields empty non-nil slice", func(t *testing.T) {
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, users)
		assert.Len(t, users, 0)
	})

	t.Run("returns all rows", func(t *testing.T) {
		seed := []user.User{
			{Name: "John Doe", Email: "john@example.com"},
			{Name: "Jane Smith", Email: "jane@example.com"},
			{Name: "Admin User", Email: "admin@example.com"},
		}
		for i := range seed {
			_, err := repo.Create(ctx, &seed[i])
			require.NoError(t, err)
		}

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		for _, u := range users {
			assert.NotZero(t, u.ID, "stored users always carry a non-null id")
		}
	})
}

func TestUserRepoPG_Update(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	err = repo.Update(ctx, &user.User{ID: id, Name: "John Updated", Email: "updated@example.com"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "John Updated", got.Name)
	assert.Equal(t, "updated@example.com", got.Email)
	assert.Equal(t, id, got.ID, "id is immutable across updates")
}

func TestUserRepoPG_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	t.Run("existing row reports one affected", func(t *testing.T) {
		affected, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("already-deleted row reports zero affected", func(t *testing.T) {
		affected, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("zero id reports zero affected", func(t *testing.T) {
		affected, err := repo.Delete(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestSharedProvider(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	provider := NewSharedProvider(db, log)
	ctx := context.Background()

	repo, release, err := provider.Acquire(ctx)
	require.NoError(t, err)
	defer release()

	id, err := repo.Create(ctx, &user.User{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	// Data persists across acquisitions on the shared handle.
	repo2, release2, err := provider.Acquire(ctx)
	require.NoError(t, err)
	defer release2()

	got, err := repo2.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KN-gho/timebudget/internal/db"
	"github.com/KN-gho/timebudget/internal/diary/repository"
	"github.com/KN-gho/timebudget/internal/diary/repository/sqlite"
	userRepoPkg "github.com/KN-gho/timebudget/internal/user/repository"
	userSQLite "github.com/KN-gho/timebudget/internal/user/repository/sqlite"
	"github.com/KN-gho/timebudget/pkg/log"
)

func newRepo(t *testing.T) (repository.Repository, string) {
	t.Helper()
	sqlDB, err := db.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	users := userSQLite.New(sqlDB, log.NewNop())
	owner, err := users.CreateUser(context.Background(), userRepoPkg.CreateUserOptions{Name: "taro"})
	require.NoError(t, err)

	return sqlite.New(sqlDB, log.NewNop()), owner.ID
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAndGetEntry(t *testing.T) {
	repo, owner := newRepo(t)
	ctx := context.Background()

	created, err := repo.CreateEntry(ctx, repository.CreateEntryOptions{
		UserID: owner, Date: date(2025, 6, 10), Content: "よく眠れた",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetEntry(ctx, owner, date(2025, 6, 10))
	require.NoError(t, err)
	require.Equal(t, "よく眠れた", got.Content)
	require.Equal(t, date(2025, 6, 10), got.Date)

	missing, err := repo.GetEntry(ctx, owner, date(2025, 6, 11))
	require.NoError(t, err)
	require.Empty(t, missing.ID)
}

func TestCreateEntryUniquePerDate(t *testing.T) {
	repo, owner := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateEntry(ctx, repository.CreateEntryOptions{
		UserID: owner, Date: date(2025, 6, 10), Content: "a",
	})
	require.NoError(t, err)

	_, err = repo.CreateEntry(ctx, repository.CreateEntryOptions{
		UserID: owner, Date: date(2025, 6, 10), Content: "b",
	})
	require.ErrorIs(t, err, repository.ErrFailedToInsert)
}

func TestUpdateEntry(t *testing.T) {
	repo, owner := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateEntry(ctx, repository.CreateEntryOptions{
		UserID: owner, Date: date(2025, 6, 10), Content: "before",
	})
	require.NoError(t, err)

	updated, err := repo.UpdateEntry(ctx, repository.UpdateEntryOptions{
		UserID: owner, Date: date(2025, 6, 10), Content: "after",
	})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Content)

	ghost, err := repo.UpdateEntry(ctx, repository.UpdateEntryOptions{
		UserID: owner, Date: date(2025, 6, 11), Content: "x",
	})
	require.NoError(t, err)
	require.Empty(t, ghost.ID)
}

func TestDeleteEntry(t *testing.T) {
	repo, owner := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateEntry(ctx, repository.CreateEntryOptions{
		UserID: owner, Date: date(2025, 6, 10), Content: "x",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEntry(ctx, owner, date(2025, 6, 10)))

	got, err := repo.GetEntry(ctx, owner, date(2025, 6, 10))
	require.NoError(t, err)
	require.Empty(t, got.ID)
}

func TestListRecentNewestFirst(t *testing.T) {
	repo, owner := newRepo(t)
	ctx := context.Background()

	for d := 1; d <= 5; d++ {
		_, err := repo.CreateEntry(ctx, repository.CreateEntryOptions{
			UserID: owner, Date: date(2025, 6, d), Content: "x",
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListRecent(ctx, owner, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, date(2025, 6, 5), entries[0].Date)
	require.Equal(t, date(2025, 6, 3), entries[2].Date)
}

func TestListRangeInclusive(t *testing.T) {
	repo, owner := newRepo(t)
	ctx := context.Background()

	for _, d := range []time.Time{date(2025, 5, 31), date(2025, 6, 1), date(2025, 6, 30), date(2025, 7, 1)} {
		_, err := repo.CreateEntry(ctx, repository.CreateEntryOptions{
			UserID: owner, Date: d, Content: "x",
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListRange(ctx, owner, date(2025, 6, 1), date(2025, 6, 30))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, date(2025, 6, 1), entries[0].Date)
	require.Equal(t, date(2025, 6, 30), entries[1].Date)
}

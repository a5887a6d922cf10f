package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradehub/tradehub-api/internal/domain/model"
	"github.com/tradehub/tradehub-api/internal/testutil"
)

func TestTradespersonRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTradespersonRepo(db)

		tp, err := repo.Create(ctx, testutil.NewTradespersonRequest().
			WithName("Pat", "Pipes").
			WithTrade("Plumbing").
			WithPostcode("LS1 4DY").
			Build())
		require.NoError(t, err)
		require.NotEmpty(t, tp.ID)
		assert.Equal(t, "Pat", tp.FirstName)
		assert.NotZero(t, tp.CreatedAt)

		got, err := repo.GetByID(ctx, tp.ID)
		require.NoError(t, err)
		assert.Equal(t, tp.Email, got.Email)
	})
}

func TestTradespersonRepo_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewTradespersonRepo(db)

		_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTradespersonNotFound))
	})
}

func TestTradespersonRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTradespersonRepo(db)

		plumber, err := repo.Create(ctx, testutil.NewTradespersonRequest().
			WithTrade("Plumbing").
			WithPostcode("M1 2AB").
			Build())
		require.NoError(t, err)

		_, err = repo.Create(ctx, testutil.NewTradespersonRequest().
			WithTrade("Electrical").
			WithPostcode("SW1A 1AA").
			Build())
		require.NoError(t, err)

		// Trade filter goes through the same synonym expansion as jobs.
		people, total, err := repo.List(ctx, &model.TradespeopleListOptions{Trade: "plumb"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, people, 1)
		assert.Equal(t, plumber.ID, people[0].ID)

		people, total, err = repo.List(ctx, &model.TradespeopleListOptions{Location: "sw1a"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, people, 1)
		assert.Equal(t, "Electrical", people[0].Trade)

		// Unfiltered listing counts everyone.
		_, total, err = repo.List(ctx, &model.TradespeopleListOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestTradespersonRepo_List_Pagination(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTradespersonRepo(db)

		for range 3 {
			_, err := repo.Create(ctx, testutil.NewTradespersonRequest().Build())
			require.NoError(t, err)
		}

		people, total, err := repo.List(ctx, &model.TradespeopleListOptions{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, people, 2)

		people, total, err = repo.List(ctx, &model.TradespeopleListOptions{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, people, 1)
	})
}

package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// newPostgresStorage starts a throwaway postgres, migrates it and returns a
// Storage over it.
func newPostgresStorage(t *testing.T) *storage.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("spend_tracker"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	result, err := storage.RunMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), result.PreMigrationVersion)
	assert.Equal(t, uint(2), result.PostMigrationVersion)

	again, err := storage.RunMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, result.PostMigrationVersion, again.PreMigrationVersion)

	return storage.NewStorageFromDB(db)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func insertTransaction(t *testing.T, store *storage.Storage, amount string, date time.Time, cat category.Category) *sqlconfig.Transaction {
	t.Helper()
	row, err := store.Transactions.Insert(context.Background(), &sqlconfig.TransactionCreate{
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		Description: "test " + amount,
		Category:    cat,
	})
	require.NoError(t, err)
	return row
}

func TestPostgres_Transactions(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	january := insertTransaction(t, store, "50", day(2024, time.January, 5), category.Food)
	february := insertTransaction(t, store, "20", day(2024, time.February, 10), category.Food)
	older := insertTransaction(t, store, "15.25", day(2023, time.December, 31), category.Travel)

	assert.Less(t, january.Seq, february.Seq)
	assert.Less(t, february.Seq, older.Seq)

	count, err := store.Transactions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	byDate, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{Limit: 10, Order: sqlconfig.OrderByDateDesc})
	require.NoError(t, err)
	require.Len(t, byDate, 3)
	assert.Equal(t, february.ID, byDate[0].ID)
	assert.Equal(t, older.ID, byDate[2].ID)

	recent, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{Limit: 2, Order: sqlconfig.OrderByInsertionDesc})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, older.ID, recent[0].ID)
	assert.Equal(t, february.ID, recent[1].ID)

	byCategory, err := store.Transactions.SumByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, category.Food, byCategory[0].Category)
	assert.True(t, byCategory[0].Total.Equal(decimal.RequireFromString("70")))
	assert.Equal(t, category.Travel, byCategory[1].Category)

	byMonth, err := store.Transactions.SumByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, byMonth, 3)
	assert.Equal(t, 1, byMonth[0].Month)
	assert.True(t, byMonth[0].Total.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 12, byMonth[2].Month)
}

func TestPostgres_TransactionUpdateAndDelete(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	row := insertTransaction(t, store, "10", day(2024, time.March, 1), category.Recurring)

	updated, err := store.Transactions.Update(ctx, row.ID, &sqlconfig.TransactionUpdate{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, row.Description, updated.Description)

	missing, err := store.Transactions.Update(ctx, uuid.Must(uuid.NewV4()), &sqlconfig.TransactionUpdate{})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := store.Transactions.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Transactions.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgres_BudgetPeriodIsUnique(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	create := &sqlconfig.BudgetCreate{Category: category.Food, Month: 1, Year: 2024, Budget: decimal.RequireFromString("100")}
	first, err := store.Budgets.Insert(ctx, create)
	require.NoError(t, err)

	_, err = store.Budgets.Insert(ctx, create)
	assert.True(t, errors.Is(err, sqlconfig.ErrDuplicatePeriod))

	found, err := store.Budgets.FindByPeriod(ctx, sqlconfig.BudgetPeriod{Category: category.Food, Month: 1, Year: 2024})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)

	count, err := store.Budgets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostgres_WriterRollback(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	_, err = writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{Category: category.Travel, Month: 6, Year: 2024, Budget: decimal.RequireFromString("500")})
	require.NoError(t, err)
	require.NoError(t, writer.Rollback())

	count, err := store.Budgets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	writer, err = store.Write(ctx)
	require.NoError(t, err)
	_, err = writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{Category: category.Travel, Month: 6, Year: 2024, Budget: decimal.RequireFromString("500")})
	require.NoError(t, err)
	require.NoError(t, writer.Commit())

	budgets, err := store.Budgets.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, category.Travel, budgets[0].Category)
}

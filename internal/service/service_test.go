package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/spend-tracker/internal/operator"
	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
	"github.com/carson-networks/spend-tracker/internal/storage/storagetest"
)

type testEnv struct {
	svc          *Service
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	opener       *storagetest.Opener
}

// newTestEnv wires both services over table mocks. Writes go through a real
// single-worker operator.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	transactions := sqlconfig.NewMockITransactionTable(t)
	budgets := sqlconfig.NewMockIBudgetTable(t)

	opener := storagetest.NewOpener(transactions, budgets)
	d := operator.NewOperatorDelegator(opener, 1)
	d.Start()
	t.Cleanup(d.Stop)

	store := &storage.Storage{Transactions: transactions, Budgets: budgets}
	return &testEnv{
		svc:          NewService(store, d),
		transactions: transactions,
		budgets:      budgets,
		opener:       opener,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

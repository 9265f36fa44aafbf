// Package storagetest provides store doubles for tests that drive writes
// through storage.Writer without a database.
package storagetest

import (
	"context"
	"sync"

	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// Tx records how a store transaction was finished.
type Tx struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	CommitErr error
}

func (t *Tx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.commits++
	return t.CommitErr
}

func (t *Tx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollbacks++
	return nil
}

func (t *Tx) Commits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commits
}

func (t *Tx) Rollbacks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rollbacks
}

// Opener hands out Writers over fixed tables, all sharing one Tx.
type Opener struct {
	Tx           *Tx
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
	OpenErr      error
}

func NewOpener(transactions sqlconfig.ITransactionTable, budgets sqlconfig.IBudgetTable) *Opener {
	return &Opener{
		Tx:           &Tx{},
		Transactions: transactions,
		Budgets:      budgets,
	}
}

func (o *Opener) Write(ctx context.Context) (*storage.Writer, error) {
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	return storage.NewWriterWithTables(o.Tx, o.Transactions, o.Budgets), nil
}

package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// Committer finishes a store transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open store transaction.
type Writer struct {
	tx           Committer
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Budgets:      sqlconfig.NewBudgetsTable(tx),
	}
}

// NewWriterWithTables builds a Writer over arbitrary table implementations.
func NewWriterWithTables(tx Committer, transactions sqlconfig.ITransactionTable, budgets sqlconfig.IBudgetTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Budgets:      budgets,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

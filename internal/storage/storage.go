package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/spend-tracker/internal/config"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// Storage is the record store. Reads go straight to the tables; writes go
// through a Writer obtained from Write.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable

	exec bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened postgres handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Budgets:      sqlconfig.NewBudgetsTable(exec),
		exec:         exec,
	}
}

// Write opens a store transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

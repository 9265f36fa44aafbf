package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-tracker/internal/category"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID         `db:"id"`
	Seq         int64             `db:"seq"`
	Amount      decimal.Decimal   `db:"amount"`
	Date        time.Time         `db:"date"`
	Description string            `db:"description"`
	Category    category.Category `db:"category"`
	CreatedAt   time.Time         `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    category.Category
}

// TransactionUpdate carries the fields to overwrite. Unset fields are left alone.
type TransactionUpdate struct {
	Amount      omit.Val[decimal.Decimal]
	Date        omit.Val[time.Time]
	Description omit.Val[string]
	Category    omit.Val[category.Category]
}

// TransactionOrder selects the sort used by List.
type TransactionOrder int

const (
	// OrderByDateDesc sorts newest transaction date first.
	OrderByDateDesc TransactionOrder = iota
	// OrderByInsertionDesc sorts the most recently inserted record first.
	OrderByInsertionDesc
)

// TransactionFilter specifies paging and ordering for listing transactions.
type TransactionFilter struct {
	Limit  int
	Offset int
	Order  TransactionOrder
}

// CategoryTotal is one row of a sum grouped by category.
type CategoryTotal struct {
	Category category.Category `db:"category"`
	Total    decimal.Decimal   `db:"total"`
}

// MonthTotal is one row of a sum grouped by calendar month.
type MonthTotal struct {
	Month int             `db:"month"`
	Total decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
// Lookups that match nothing return a nil record and a nil error.
// The testify mock in mock_ITransactionTable.go is maintained by hand.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SumByCategory(ctx context.Context) ([]*CategoryTotal, error)
	SumByMonth(ctx context.Context) ([]*MonthTotal, error)
}

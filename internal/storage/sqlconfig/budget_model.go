package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-tracker/internal/category"
)

// ErrDuplicatePeriod is returned when a write would create a second budget
// for the same category, month and year.
var ErrDuplicatePeriod = errors.New("budget period already exists")

// Budget represents a budget record.
type Budget struct {
	ID        uuid.UUID         `db:"id"`
	Seq       int64             `db:"seq"`
	Category  category.Category `db:"category"`
	Month     int               `db:"month"`
	Year      int               `db:"year"`
	Budget    decimal.Decimal   `db:"budget"`
	CreatedAt time.Time         `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	Category category.Category
	Month    int
	Year     int
	Budget   decimal.Decimal
}

// BudgetUpdate carries the fields to overwrite. Unset fields are left alone.
type BudgetUpdate struct {
	Category omit.Val[category.Category]
	Month    omit.Val[int]
	Year     omit.Val[int]
	Budget   omit.Val[decimal.Decimal]
}

// BudgetPeriod identifies the budgeting cycle of one category.
type BudgetPeriod struct {
	Category category.Category
	Month    int
	Year     int
}

// BudgetFilter specifies paging for listing budgets.
type BudgetFilter struct {
	Limit  int
	Offset int
}

// IBudgetTable defines the interface for budget storage operations.
// Lookups that match nothing return a nil record and a nil error.
// The testify mock in mock_IBudgetTable.go is maintained by hand.
type IBudgetTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	FindByPeriod(ctx context.Context, period BudgetPeriod) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SumByCategory(ctx context.Context) ([]*CategoryTotal, error)
}

package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID       uuid.UUID
	Category category.Category
	Month    int
	Year     int
	Budget   decimal.Decimal
}

// BudgetInput holds caller supplied fields. Nil means the field was not
// provided.
type BudgetInput struct {
	Category *string
	Month    *int
	Year     *int
	Budget   *decimal.Decimal
}

// BudgetPage is one page of the period ordered budget listing.
type BudgetPage struct {
	Budgets     []Budget
	TotalPages  int
	CurrentPage int
}

// BudgetComparison pairs cumulative spend with cumulative budget for a category.
type BudgetComparison struct {
	Category category.Category
	Actual   decimal.Decimal
	Budget   decimal.Decimal
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:       row.ID,
		Category: row.Category,
		Month:    row.Month,
		Year:     row.Year,
		Budget:   row.Budget,
	}
}

func budgetsFromStorage(rows []*sqlconfig.Budget) []Budget {
	result := make([]Budget, len(rows))
	for i, row := range rows {
		result[i] = budgetFromStorage(row)
	}
	return result
}

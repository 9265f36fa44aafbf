package budget

import (
	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/service"
)

const tag = "Budgets"

// Budget is the API response model for a budget.
type Budget struct {
	ID       string               `json:"_id" doc:"Budget UUID"`
	Category apiutil.CategoryName `json:"category" doc:"Spending category"`
	Month    int                  `json:"month" doc:"Calendar month, 1-12"`
	Year     int                  `json:"year" doc:"Calendar year"`
	Budget   apiutil.Money        `json:"budget" doc:"Amount allotted for the period"`
}

// BudgetBody is the request body for creating or updating a budget.
type BudgetBody struct {
	_        struct{}       `json:"-" additionalProperties:"true"`
	Category *string        `json:"category,omitempty" required:"false" doc:"Spending category"`
	Month    *int           `json:"month,omitempty" required:"false" doc:"Calendar month, 1-12"`
	Year     *int           `json:"year,omitempty" required:"false" doc:"Calendar year"`
	Budget   *apiutil.Money `json:"budget,omitempty" required:"false" doc:"Amount allotted for the period"`
}

func (b *BudgetBody) toInput() service.BudgetInput {
	return service.BudgetInput{
		Category: b.Category,
		Month:    b.Month,
		Year:     b.Year,
		Budget:   b.Budget.DecimalPtr(),
	}
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:       b.ID.String(),
		Category: apiutil.NewCategoryName(b.Category),
		Month:    b.Month,
		Year:     b.Year,
		Budget:   apiutil.NewMoney(b.Budget),
	}
}

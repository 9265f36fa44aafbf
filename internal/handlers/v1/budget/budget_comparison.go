package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// Comparison is the budget-vs-actual entry for one category.
type Comparison struct {
	Category apiutil.CategoryName `json:"category" doc:"Spending category"`
	Actual   apiutil.Money        `json:"actual" doc:"Total spent in the category"`
	Budget   apiutil.Money        `json:"budget" doc:"Total budgeted for the category across all periods"`
}

// BudgetComparisonOutput is the Huma output for the budget comparison.
type BudgetComparisonOutput struct {
	Body []Comparison
}

type budgetComparer interface {
	BudgetComparison(ctx context.Context) ([]service.BudgetComparison, error)
}

// BudgetComparisonHandler handles GET /api/budgets/comparison.
type BudgetComparisonHandler struct {
	BudgetService budgetComparer
}

func NewBudgetComparisonHandler(svc budgetComparer) *BudgetComparisonHandler {
	return &BudgetComparisonHandler{BudgetService: svc}
}

// Register registers the budget comparison endpoint with the Huma API.
func (h *BudgetComparisonHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-comparison",
		Method:      http.MethodGet,
		Path:        "/api/budgets/comparison",
		Summary:     "Budget vs actual",
		Description: "Pairs total spend with total budget for every category that has either.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *BudgetComparisonHandler) handle(ctx context.Context, _ *struct{}) (*BudgetComparisonOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("budgetComparisonMs")
	comparison, err := h.BudgetService.BudgetComparison(ctx)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	body := make([]Comparison, len(comparison))
	for i, c := range comparison {
		body[i] = Comparison{
			Category: apiutil.NewCategoryName(c.Category),
			Actual:   apiutil.NewMoney(c.Actual),
			Budget:   apiutil.NewMoney(c.Budget),
		}
	}
	logData.AddData("categoryCount", len(body))
	return &BudgetComparisonOutput{Body: body}, nil
}

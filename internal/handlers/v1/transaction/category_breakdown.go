package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// CategoryTotal is one entry of the category breakdown.
type CategoryTotal struct {
	Category apiutil.CategoryName `json:"category" doc:"Spending category"`
	Total    apiutil.Money        `json:"total" doc:"Sum of all transactions in the category"`
}

// CategoryBreakdownOutput is the Huma output for the category breakdown.
type CategoryBreakdownOutput struct {
	Body []CategoryTotal
}

// categoryBreakdowner is the interface for summing spend by category.
type categoryBreakdowner interface {
	CategoryBreakdown(ctx context.Context) ([]service.CategoryTotal, error)
}

// CategoryBreakdownHandler handles GET /api/transactions/category-breakdown.
type CategoryBreakdownHandler struct {
	TransactionService categoryBreakdowner
}

// NewCategoryBreakdownHandler creates a new CategoryBreakdownHandler.
func NewCategoryBreakdownHandler(svc categoryBreakdowner) *CategoryBreakdownHandler {
	return &CategoryBreakdownHandler{TransactionService: svc}
}

// Register registers the category breakdown endpoint with the Huma API.
func (h *CategoryBreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-breakdown",
		Method:      http.MethodGet,
		Path:        "/api/transactions/category-breakdown",
		Summary:     "Spend by category",
		Description: "Sums transaction amounts per category. Categories without transactions are omitted.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *CategoryBreakdownHandler) handle(ctx context.Context, _ *struct{}) (*CategoryBreakdownOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("categoryBreakdownMs")
	totals, err := h.TransactionService.CategoryBreakdown(ctx)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	body := make([]CategoryTotal, len(totals))
	for i, t := range totals {
		body[i] = CategoryTotal{Category: apiutil.NewCategoryName(t.Category), Total: apiutil.NewMoney(t.Total)}
	}
	logData.AddData("categoryCount", len(body))
	return &CategoryBreakdownOutput{Body: body}, nil
}

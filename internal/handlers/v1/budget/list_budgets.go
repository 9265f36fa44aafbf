package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Page  string `query:"page" doc:"1-based page number, defaults to 1"`
	Limit string `query:"limit" doc:"Page size, defaults to 10"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets     []Budget `json:"budgets" doc:"Page of budgets, oldest period first"`
	TotalPages  int      `json:"totalPages" doc:"Number of pages at this limit"`
	CurrentPage int      `json:"currentPage" doc:"Page returned"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

type budgetLister interface {
	ListBudgets(ctx context.Context, page, limit string) (*service.BudgetPage, error)
}

// ListBudgetsHandler handles GET /api/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budgets",
		Summary:     "List budgets",
		Description: "Returns a page of budgets ordered by year, then month.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listBudgetsMs")
	page, err := h.BudgetService.ListBudgets(ctx, input.Page, input.Limit)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	budgets := make([]Budget, len(page.Budgets))
	for i, b := range page.Budgets {
		budgets[i] = fromService(b)
	}

	logData.AddData("budgetCount", len(budgets))
	return &ListBudgetsOutput{Body: ListBudgetsResponseBody{
		Budgets:     budgets,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	}}, nil
}

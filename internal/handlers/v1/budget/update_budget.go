package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body BudgetBody
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Body Budget
}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, id string, input service.BudgetInput) (*service.Budget, error)
}

// UpdateBudgetHandler handles PUT /api/budgets/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/api/budgets/{id}",
		Summary:     "Update budget",
		Description: "Overwrites the provided fields of a budget.",
		Tags:        []string{tag},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("budgetID", input.ID)

	stopTimer := logData.AddTiming("updateBudgetMs")
	budget, err := h.BudgetService.UpdateBudget(ctx, input.ID, input.Body.toInput())
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}
	if budget == nil {
		return nil, apiutil.NewError(http.StatusNotFound, "Budget not found")
	}

	return &UpdateBudgetOutput{Body: fromService(*budget)}, nil
}

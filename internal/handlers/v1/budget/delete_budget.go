package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Body apiutil.MessageBody
}

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, id string) error
}

// DeleteBudgetHandler handles DELETE /api/budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/api/budgets/{id}",
		Summary:     "Delete budget",
		Tags:        []string{tag},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("budgetID", input.ID)

	if err := h.BudgetService.DeleteBudget(ctx, input.ID); err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	return &DeleteBudgetOutput{Body: apiutil.MessageBody{Message: "Budget deleted successfully"}}, nil
}

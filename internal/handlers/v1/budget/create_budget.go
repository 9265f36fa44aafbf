package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body BudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body Budget
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, input service.BudgetInput) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /api/budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/api/budgets",
		Summary:       "Create budget",
		Description:   "Creates the budget for a category and month. Fails with 409 if that period already has one.",
		Tags:          []string{tag},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createBudgetMs")
	budget, err := h.BudgetService.CreateBudget(ctx, input.Body.toInput())
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	logData.AddData("budgetID", budget.ID.String())
	return &CreateBudgetOutput{Body: fromService(*budget)}, nil
}
